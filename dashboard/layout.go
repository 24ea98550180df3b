package dashboard

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/LilVoxy/launch_dashboard/config"
	"github.com/LilVoxy/launch_dashboard/models"
	"github.com/LilVoxy/launch_dashboard/reactive"
)

// Типы компонентов страницы
const (
	ComponentDiv         = "Div"
	ComponentH1          = "H1"
	ComponentBr          = "Br"
	ComponentP           = "P"
	ComponentDropdown    = "Dropdown"
	ComponentRangeSlider = "RangeSlider"
	ComponentGraph       = "Graph"
)

// Component - узел дерева страницы
type Component struct {
	Type     string         `json:"type"`
	ID       string         `json:"id,omitempty"`
	Props    map[string]any `json:"props,omitempty"`
	Children []Component    `json:"children,omitempty"`
}

// Option - элемент выпадающего списка
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// BuildLayout строит статическое дерево страницы. Вызывается один раз при старте.
func BuildLayout(table *models.LaunchTable, ui config.UIConfig) Component {
	options := []Option{{Label: AllSites, Value: AllSites}}
	for _, site := range table.Sites() {
		options = append(options, Option{Label: site, Value: site})
	}

	marks := make(map[string]string)
	for v := ui.SliderMin; v <= ui.SliderMax; v += ui.SliderStep {
		label := strconv.FormatFloat(v, 'f', -1, 64)
		marks[label] = label + " Kg"
	}

	return Component{
		Type: ComponentDiv,
		Children: []Component{
			{
				Type: ComponentH1,
				Props: map[string]any{
					"children": ui.Title,
					"style": map[string]any{
						"textAlign": "center",
						"color":     "#503D36",
						"font-size": 40,
					},
				},
			},
			{Type: ComponentBr},
			{
				Type: ComponentDropdown,
				ID:   SiteDropdownID,
				Props: map[string]any{
					"options":     options,
					"value":       ui.DefaultSite,
					"placeholder": "Launch Sites",
					"searchable":  true,
				},
			},
			{Type: ComponentDiv, Children: []Component{{Type: ComponentGraph, ID: PieChartID}}},
			{Type: ComponentBr},
			{Type: ComponentP, Props: map[string]any{"children": "Payload range (Kg):"}},
			{
				Type: ComponentRangeSlider,
				ID:   PayloadSliderID,
				Props: map[string]any{
					"min":   ui.SliderMin,
					"max":   ui.SliderMax,
					"step":  ui.SliderStep,
					"marks": marks,
					"value": []float64{ui.DefaultRange[0], ui.DefaultRange[1]},
				},
			},
			{Type: ComponentDiv, ID: SliderOutputID},
			{Type: ComponentDiv, Children: []Component{{Type: ComponentGraph, ID: ScatterChartID}}},
		},
	}
}

// Find ищет компонент по идентификатору
func (c Component) Find(id string) (Component, bool) {
	if c.ID == id {
		return c, true
	}
	for _, child := range c.Children {
		if found, ok := child.Find(id); ok {
			return found, true
		}
	}
	return Component{}, false
}

// InitialState собирает значения входов по умолчанию из дерева страницы
func InitialState(layout Component, inputs []reactive.Dependency) (reactive.State, error) {
	state := make(reactive.State, len(inputs))
	for _, in := range inputs {
		component, ok := layout.Find(in.ID)
		if !ok {
			return nil, fmt.Errorf("компонент %q не найден на странице", in.ID)
		}
		raw, err := json.Marshal(component.Props[in.Property])
		if err != nil {
			return nil, fmt.Errorf("значение %s: %w", in, err)
		}
		state[in] = raw
	}
	return state, nil
}
