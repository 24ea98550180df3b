package dashboard

// Figure - описание диаграммы в формате plotly.js (data + layout)
type Figure struct {
	Data   []Trace      `json:"data"`
	Layout FigureLayout `json:"layout"`
}

// Trace - один набор данных диаграммы
type Trace struct {
	Type   string    `json:"type"`
	Name   string    `json:"name,omitempty"`
	Mode   string    `json:"mode,omitempty"`
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`
	X      []float64 `json:"x,omitempty"`
	Y      []float64 `json:"y,omitempty"`
	Marker *Marker   `json:"marker,omitempty"`
	Line   *Line     `json:"line,omitempty"`
}

// Marker задает цвет и размер точек
type Marker struct {
	Color    string    `json:"color,omitempty"`
	Size     []float64 `json:"size,omitempty"`
	SizeMode string    `json:"sizemode,omitempty"`
	SizeRef  float64   `json:"sizeref,omitempty"`
}

// Line задает стиль линии тренда
type Line struct {
	Color string `json:"color,omitempty"`
	Dash  string `json:"dash,omitempty"`
}

// FigureLayout - оформление диаграммы
type FigureLayout struct {
	Title  *Text   `json:"title,omitempty"`
	XAxis  *Axis   `json:"xaxis,omitempty"`
	YAxis  *Axis   `json:"yaxis,omitempty"`
	Legend *Legend `json:"legend,omitempty"`
}

// Text - подпись
type Text struct {
	Text string `json:"text"`
}

// Axis - ось координат
type Axis struct {
	Title Text `json:"title"`
}

// Legend - легенда
type Legend struct {
	Title      Text   `json:"title"`
	ItemSizing string `json:"itemsizing,omitempty"`
}

// Палитра по умолчанию plotly.js
var qualitativePalette = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// paletteColor возвращает цвет группы по ее порядковому номеру
func paletteColor(i int) string {
	return qualitativePalette[i%len(qualitativePalette)]
}
