package dashboard

import (
	"encoding/json"
	"fmt"

	"github.com/LilVoxy/launch_dashboard/models"
	"github.com/LilVoxy/launch_dashboard/reactive"
)

// RegisterCallbacks связывает выпадающий список и слайдер с диаграммами и
// текстом выбранного интервала
func RegisterCallbacks(controller *reactive.Controller, table *models.LaunchTable, opts ScatterOptions) error {
	callbacks := []reactive.Callback{
		{
			Output: PieOutput,
			Inputs: []reactive.Dependency{SiteInput},
			Handler: func(inputs []json.RawMessage) (any, error) {
				site, err := decodeSite(inputs[0])
				if err != nil {
					return nil, err
				}
				return PieChart(table, site), nil
			},
		},
		{
			Output: ScatterOutput,
			Inputs: []reactive.Dependency{SiteInput, PayloadInput},
			Handler: func(inputs []json.RawMessage) (any, error) {
				site, err := decodeSite(inputs[0])
				if err != nil {
					return nil, err
				}
				values, err := decodeRange(inputs[1])
				if err != nil {
					return nil, err
				}
				return ScatterChart(table, site, NewPayloadRange(values[0], values[1]), opts), nil
			},
		},
		{
			Output: EchoOutput,
			Inputs: []reactive.Dependency{PayloadInput},
			Handler: func(inputs []json.RawMessage) (any, error) {
				values, err := decodeRange(inputs[0])
				if err != nil {
					return nil, err
				}
				return SelectionEcho(values), nil
			},
		},
	}

	for _, cb := range callbacks {
		if err := controller.Register(cb); err != nil {
			return err
		}
	}
	return nil
}

// decodeSite принимает строку или null (очищенный список)
func decodeSite(raw json.RawMessage) (string, error) {
	var site *string
	if err := json.Unmarshal(raw, &site); err != nil {
		return "", fmt.Errorf("некорректное значение площадки: %w", err)
	}
	if site == nil {
		return "", nil
	}
	return *site, nil
}

// decodeRange принимает массив из двух чисел
func decodeRange(raw json.RawMessage) ([]float64, error) {
	var values []float64
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("некорректный интервал нагрузки: %w", err)
	}
	if len(values) != 2 {
		return nil, fmt.Errorf("интервал нагрузки должен содержать 2 значения, получено %d", len(values))
	}
	return values, nil
}
