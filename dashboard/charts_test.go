package dashboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LilVoxy/launch_dashboard/models"
)

func testTable() *models.LaunchTable {
	return models.NewLaunchTable([]models.LaunchRecord{
		{FlightNumber: 1, LaunchSite: "CCAFS LC-40", BoosterVersion: "F9 v1.0  B0003", PayloadMassKg: 0, Class: 0},
		{FlightNumber: 2, LaunchSite: "CCAFS LC-40", BoosterVersion: "F9 v1.1  B1003", PayloadMassKg: 500, Class: 0},
		{FlightNumber: 3, LaunchSite: "KSC LC-39A", BoosterVersion: "F9 FT B1031.1", PayloadMassKg: 2490, Class: 1},
		{FlightNumber: 4, LaunchSite: "CCAFS LC-40", BoosterVersion: "F9 FT B1021.1", PayloadMassKg: 3136, Class: 1},
		{FlightNumber: 5, LaunchSite: "VAFB SLC-4E", BoosterVersion: "F9 v1.1  B1003", PayloadMassKg: 5000, Class: 0},
		{FlightNumber: 6, LaunchSite: "KSC LC-39A", BoosterVersion: "F9 B4 B1039.2", PayloadMassKg: 9600, Class: 1},
		{FlightNumber: 7, LaunchSite: "KSC LC-39A", BoosterVersion: "F9 FT B1035.1", PayloadMassKg: 2205, Class: 0},
	})
}

func TestPieChartAllSites(t *testing.T) {
	fig := PieChart(testTable(), AllSites)

	want := Figure{
		Data: []Trace{{
			Type:   "pie",
			Labels: []string{"CCAFS LC-40", "KSC LC-39A", "VAFB SLC-4E"},
			Values: []float64{1, 2, 0},
		}},
		Layout: FigureLayout{Title: &Text{Text: "Success Launches for site All Sites"}},
	}
	if diff := cmp.Diff(want, fig); diff != "" {
		t.Errorf("PieChart() mismatch (-want +got):\n%s", diff)
	}
}

func TestPieChartSingleSite(t *testing.T) {
	fig := PieChart(testTable(), "KSC LC-39A")

	want := Figure{
		Data: []Trace{{
			Type:   "pie",
			Labels: []string{"0", "1"},
			Values: []float64{1, 2},
		}},
		Layout: FigureLayout{Title: &Text{Text: "Success Launches for site KSC LC-39A"}},
	}
	if diff := cmp.Diff(want, fig); diff != "" {
		t.Errorf("PieChart() mismatch (-want +got):\n%s", diff)
	}
}

func TestPieChartSliceCountMatchesDistinctSites(t *testing.T) {
	table := testTable()
	fig := PieChart(table, AllSites)

	require.Len(t, fig.Data, 1)
	assert.Len(t, fig.Data[0].Labels, len(table.Sites()))
}

func TestPieChartSiteValuesSumToRowCount(t *testing.T) {
	table := testTable()
	rows := make(map[string]int)
	table.Each(func(r models.LaunchRecord) { rows[r.LaunchSite]++ })

	for _, site := range table.Sites() {
		t.Run(site, func(t *testing.T) {
			fig := PieChart(table, site)
			total := 0.0
			for _, v := range fig.Data[0].Values {
				total += v
			}
			assert.Equal(t, float64(rows[site]), total)
		})
	}
}

func TestPieChartUnknownSite(t *testing.T) {
	for _, site := range []string{"ALL", "", "Boca Chica"} {
		fig := PieChart(testTable(), site)
		require.Len(t, fig.Data, 1)
		assert.Empty(t, fig.Data[0].Labels)
		assert.Empty(t, fig.Data[0].Values)
		assert.Equal(t, "Success Launches for site "+site, fig.Layout.Title.Text)
	}
}

func TestScatterChartAllSites(t *testing.T) {
	fig := ScatterChart(testTable(), AllSites, NewPayloadRange(0, 5000), ScatterOptions{})

	sizeRef := 2 * 3136.0 / 400
	want := Figure{
		Data: []Trace{
			{
				Type:   "scatter",
				Name:   "v1.1",
				Mode:   "markers",
				X:      []float64{500},
				Y:      []float64{0},
				Marker: &Marker{Color: "#636efa", Size: []float64{500}, SizeMode: "area", SizeRef: sizeRef},
			},
			{
				Type:   "scatter",
				Name:   "FT",
				Mode:   "markers",
				X:      []float64{2490, 3136, 2205},
				Y:      []float64{1, 1, 0},
				Marker: &Marker{Color: "#EF553B", Size: []float64{2490, 3136, 2205}, SizeMode: "area", SizeRef: sizeRef},
			},
		},
		Layout: FigureLayout{
			XAxis:  &Axis{Title: Text{Text: "Payload Mass (kg)"}},
			YAxis:  &Axis{Title: Text{Text: "class"}},
			Legend: &Legend{Title: Text{Text: "Booster_Version"}, ItemSizing: "constant"},
		},
	}
	if diff := cmp.Diff(want, fig); diff != "" {
		t.Errorf("ScatterChart() mismatch (-want +got):\n%s", diff)
	}
}

func TestScatterChartBoundsAreExclusive(t *testing.T) {
	table := testTable()

	tests := []struct {
		name string
		rng  PayloadRange
	}{
		{"default range", NewPayloadRange(0, 5000)},
		{"reversed slider values", NewPayloadRange(5000, 0)},
		{"exact payload bounds", NewPayloadRange(500, 9600)},
		{"empty interval", NewPayloadRange(2490, 2490)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig := ScatterChart(table, AllSites, tt.rng, ScatterOptions{})
			for _, trace := range fig.Data {
				for _, x := range trace.X {
					assert.Greater(t, x, tt.rng.Low)
					assert.Less(t, x, tt.rng.High)
				}
			}
		})
	}

	fig := ScatterChart(table, AllSites, NewPayloadRange(500, 9600), ScatterOptions{})
	var xs []float64
	for _, trace := range fig.Data {
		xs = append(xs, trace.X...)
	}
	assert.ElementsMatch(t, []float64{2490, 3136, 5000, 2205}, xs)
}

func TestScatterChartFiltersBySite(t *testing.T) {
	fig := ScatterChart(testTable(), "KSC LC-39A", NewPayloadRange(0, 10000), ScatterOptions{})

	require.Len(t, fig.Data, 2)
	assert.Equal(t, "FT", fig.Data[0].Name)
	assert.Equal(t, []float64{2490, 2205}, fig.Data[0].X)
	assert.Equal(t, "B4", fig.Data[1].Name)
	assert.Equal(t, []float64{9600}, fig.Data[1].X)
	assert.Equal(t, 2*9600.0/400, fig.Data[1].Marker.SizeRef)
}

func TestScatterChartNoMatches(t *testing.T) {
	for _, site := range []string{"ALL", "Boca Chica"} {
		fig := ScatterChart(testTable(), site, NewPayloadRange(0, 10000), ScatterOptions{Trendline: true})
		assert.NotNil(t, fig.Data)
		assert.Empty(t, fig.Data)
		assert.NotNil(t, fig.Layout.XAxis)
	}
}

func TestScatterChartTrendline(t *testing.T) {
	fig := ScatterChart(testTable(), AllSites, NewPayloadRange(0, 10000), ScatterOptions{Trendline: true})

	require.NotEmpty(t, fig.Data)
	trend := fig.Data[len(fig.Data)-1]
	assert.Equal(t, "OLS trendline", trend.Name)
	assert.Equal(t, "lines", trend.Mode)
	assert.Equal(t, []float64{500, 9600}, trend.X)
	require.Len(t, trend.Y, 2)
	assert.Less(t, trend.Y[0], trend.Y[1])
	assert.Equal(t, &Line{Color: "#444444", Dash: "dash"}, trend.Line)

	// одной точки недостаточно для линии тренда
	single := ScatterChart(testTable(), "VAFB SLC-4E", NewPayloadRange(0, 10000), ScatterOptions{Trendline: true})
	require.Len(t, single.Data, 1)
	assert.Equal(t, "v1.1", single.Data[0].Name)
}

func TestChartsAreIdempotent(t *testing.T) {
	table := testTable()
	before := table.Records()
	rng := NewPayloadRange(0, 10000)

	first := ScatterChart(table, AllSites, rng, ScatterOptions{Trendline: true})
	second := ScatterChart(table, AllSites, rng, ScatterOptions{Trendline: true})
	if diff := cmp.Diff(first, second, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("repeated ScatterChart() differs (-first +second):\n%s", diff)
	}
	assert.Equal(t, PieChart(table, "CCAFS LC-40"), PieChart(table, "CCAFS LC-40"))
	assert.Equal(t, before, table.Records())
}

func TestSelectionEcho(t *testing.T) {
	tests := []struct {
		values []float64
		want   string
	}{
		{[]float64{0, 5000}, `You have selected "[0, 5000]"`},
		{[]float64{3000, 1000}, `You have selected "[3000, 1000]"`},
		{[]float64{0, 10000}, `You have selected "[0, 10000]"`},
		{[]float64{2500.5, 7000}, `You have selected "[2500.5, 7000]"`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectionEcho(tt.values))
		})
	}
}

func TestPieChartSuccessesSplitPerSite(t *testing.T) {
	table := models.NewLaunchTable([]models.LaunchRecord{
		{LaunchSite: "CCAFS LC-40", BoosterVersion: "F9 v1.0  B0003", PayloadMassKg: 0, Class: 1},
		{LaunchSite: "KSC LC-39A", BoosterVersion: "F9 FT B1031.1", PayloadMassKg: 2490, Class: 0},
		{LaunchSite: "CCAFS LC-40", BoosterVersion: "F9 FT B1021.1", PayloadMassKg: 3136, Class: 1},
	})

	fig := PieChart(table, AllSites)
	require.Len(t, fig.Data, 1)
	assert.Equal(t, []string{"CCAFS LC-40", "KSC LC-39A"}, fig.Data[0].Labels)
	assert.Equal(t, []float64{2, 0}, fig.Data[0].Values)

	// сумма по площадкам совпадает с числом успешных запусков каждой площадки
	for i, site := range fig.Data[0].Labels {
		successes := 0.0
		for j, label := range PieChart(table, site).Data[0].Labels {
			if label == "1" {
				successes = PieChart(table, site).Data[0].Values[j]
			}
		}
		assert.Equal(t, successes, fig.Data[0].Values[i], site)
	}
}
