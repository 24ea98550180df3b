// Package render рисует диаграммы дашборда в PNG на стороне сервера.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/LilVoxy/launch_dashboard/dashboard"
)

// ErrEmptyChart - в диаграмме нет данных для рисования
var ErrEmptyChart = errors.New("нет данных для диаграммы")

// Размеры изображения по умолчанию
const (
	DefaultWidth  = 800
	DefaultHeight = 480

	maxDotWidth = 10
)

// Size - размер изображения в пикселях
type Size struct {
	Width  int
	Height int
}

// PiePNG рисует круговую диаграмму
func PiePNG(w io.Writer, fig dashboard.Figure, size Size) error {
	if len(fig.Data) == 0 {
		return ErrEmptyChart
	}
	trace := fig.Data[0]

	var values []chart.Value
	total := 0.0
	for i, v := range trace.Values {
		if v <= 0 {
			continue
		}
		total += v
		values = append(values, chart.Value{Label: trace.Labels[i], Value: v})
	}
	if total == 0 {
		return ErrEmptyChart
	}

	pie := chart.PieChart{
		Title:  titleOf(fig),
		Width:  size.Width,
		Height: size.Height,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("ошибка рисования круговой диаграммы: %w", err)
	}
	return nil
}

// ScatterPNG рисует точечную диаграмму: одна серия на версию ускорителя
func ScatterPNG(w io.Writer, fig dashboard.Figure, size Size) error {
	var series []chart.Series
	maxSize := 0.0
	for _, t := range fig.Data {
		if t.Marker == nil {
			continue
		}
		for _, s := range t.Marker.Size {
			maxSize = math.Max(maxSize, s)
		}
	}

	for i, t := range fig.Data {
		if len(t.X) == 0 {
			continue
		}
		if t.Mode == "lines" {
			series = append(series, chart.ContinuousSeries{
				Name:    t.Name,
				XValues: t.X,
				YValues: t.Y,
				Style:   chart.Style{StrokeColor: chart.ColorAlternateGray, StrokeDashArray: []float64{5, 5}},
			})
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    t.Name,
			XValues: t.X,
			YValues: t.Y,
			Style:   pointStyle(chart.GetDefaultColor(i), t, maxSize),
		})
	}
	if len(series) == 0 {
		return ErrEmptyChart
	}

	xName, yName := "", ""
	if fig.Layout.XAxis != nil {
		xName = fig.Layout.XAxis.Title.Text
	}
	if fig.Layout.YAxis != nil {
		yName = fig.Layout.YAxis.Title.Text
	}

	ch := chart.Chart{
		Title:      titleOf(fig),
		Width:      size.Width,
		Height:     size.Height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.XAxis{Name: xName, Range: xRange(fig.Data)},
		YAxis:      chart.YAxis{Name: yName, Range: &chart.ContinuousRange{Min: -0.5, Max: 1.5}},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("ошибка рисования точечной диаграммы: %w", err)
	}
	return nil
}

// pointStyle рисует только точки, размер пропорционален массе нагрузки
func pointStyle(col drawing.Color, t dashboard.Trace, maxSize float64) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotColor:    col,
		DotWidth:    maxDotWidth / 2,
		DotWidthProvider: func(_, _ chart.Range, index int, _, _ float64) float64 {
			if maxSize <= 0 || index >= len(t.Marker.Size) {
				return maxDotWidth / 2
			}
			// Площадь точки пропорциональна массе
			return math.Max(1, maxDotWidth*math.Sqrt(t.Marker.Size[index]/maxSize))
		},
	}
}

// xRange расширяет вырожденный интервал, иначе go-chart не построит ось
func xRange(traces []dashboard.Trace) *chart.ContinuousRange {
	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, t := range traces {
		for _, x := range t.X {
			minX = math.Min(minX, x)
			maxX = math.Max(maxX, x)
		}
	}
	if minX == maxX {
		minX, maxX = minX-1, maxX+1
	}
	return &chart.ContinuousRange{Min: minX, Max: maxX}
}

func titleOf(fig dashboard.Figure) string {
	if fig.Layout.Title == nil {
		return ""
	}
	return fig.Layout.Title.Text
}
