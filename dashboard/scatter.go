package dashboard

import (
	"github.com/LilVoxy/launch_dashboard/analysis"
	"github.com/LilVoxy/launch_dashboard/models"
)

// Максимальный диаметр точки в пикселях
const maxMarkerSize = 20

// PayloadRange - выбранный на слайдере интервал масс (границы не включаются)
type PayloadRange struct {
	Low  float64
	High float64
}

// NewPayloadRange упорядочивает значения слайдера
func NewPayloadRange(a, b float64) PayloadRange {
	if a > b {
		a, b = b, a
	}
	return PayloadRange{Low: a, High: b}
}

// Contains проверяет Low < mass < High
func (r PayloadRange) Contains(mass float64) bool {
	return mass > r.Low && mass < r.High
}

// ScatterOptions - дополнительные параметры точечной диаграммы
type ScatterOptions struct {
	Trendline bool
}

// ScatterChart строит диаграмму "масса нагрузки - исход" с раскраской по
// версии ускорителя. Запуски с массой, равной границе интервала, не попадают
// в выборку.
func ScatterChart(table *models.LaunchTable, site string, rng PayloadRange, opts ScatterOptions) Figure {
	var traces []Trace
	group := make(map[string]int)
	var points []analysis.DataPoint
	maxPayload := 0.0

	table.Each(func(r models.LaunchRecord) {
		if !rng.Contains(r.PayloadMassKg) {
			return
		}
		if site != AllSites && r.LaunchSite != site {
			return
		}

		token := r.BoosterVersionToken()
		i, ok := group[token]
		if !ok {
			i = len(traces)
			group[token] = i
			traces = append(traces, Trace{
				Type:   "scatter",
				Name:   token,
				Mode:   "markers",
				Marker: &Marker{Color: paletteColor(i), SizeMode: "area"},
			})
		}

		t := &traces[i]
		t.X = append(t.X, r.PayloadMassKg)
		t.Y = append(t.Y, float64(r.Class))
		t.Marker.Size = append(t.Marker.Size, r.PayloadMassKg)

		points = append(points, analysis.DataPoint{X: r.PayloadMassKg, Y: float64(r.Class)})
		if r.PayloadMassKg > maxPayload {
			maxPayload = r.PayloadMassKg
		}
	})

	// Масштаб площади точки, как в plotly express: самая тяжелая нагрузка
	// рисуется точкой диаметром maxMarkerSize
	sizeRef := 1.0
	if maxPayload > 0 {
		sizeRef = 2 * maxPayload / (maxMarkerSize * maxMarkerSize)
	}
	for i := range traces {
		traces[i].Marker.SizeRef = sizeRef
	}

	if opts.Trendline {
		if trend, ok := trendlineTrace(points); ok {
			traces = append(traces, trend)
		}
	}

	if traces == nil {
		traces = []Trace{}
	}
	return Figure{
		Data: traces,
		Layout: FigureLayout{
			XAxis:  &Axis{Title: Text{Text: payloadAxisTitle}},
			YAxis:  &Axis{Title: Text{Text: classAxisTitle}},
			Legend: &Legend{Title: Text{Text: boosterLegendName}, ItemSizing: "constant"},
		},
	}
}

// trendlineTrace строит линию МНК по всем отобранным точкам
func trendlineTrace(points []analysis.DataPoint) (Trace, bool) {
	result, err := analysis.LinearRegression(points)
	if err != nil {
		return Trace{}, false
	}

	minX, maxX := points[0].X, points[0].X
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
	}

	return Trace{
		Type: "scatter",
		Name: "OLS trendline",
		Mode: "lines",
		X:    []float64{minX, maxX},
		Y:    []float64{result.Predict(minX), result.Predict(maxX)},
		Line: &Line{Color: "#444444", Dash: "dash"},
	}, true
}
