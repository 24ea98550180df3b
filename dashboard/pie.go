package dashboard

import (
	"sort"
	"strconv"

	"github.com/LilVoxy/launch_dashboard/models"
)

// PieChart строит круговую диаграмму успешных запусков.
//
// Для "All Sites" - один сектор на площадку со значением, равным сумме class
// (числу успешных запусков). Для конкретной площадки - сектора по значениям
// class с числом запусков каждого исхода. Неизвестная площадка дает пустую
// диаграмму.
func PieChart(table *models.LaunchTable, site string) Figure {
	var trace Trace
	if site == AllSites {
		trace = successesBySite(table)
	} else {
		trace = outcomesForSite(table, site)
	}

	return Figure{
		Data: []Trace{trace},
		Layout: FigureLayout{
			Title: &Text{Text: pieTitlePrefix + site},
		},
	}
}

func successesBySite(table *models.LaunchTable) Trace {
	trace := Trace{Type: "pie", Labels: []string{}, Values: []float64{}}
	position := make(map[string]int)

	table.Each(func(r models.LaunchRecord) {
		i, ok := position[r.LaunchSite]
		if !ok {
			i = len(trace.Labels)
			position[r.LaunchSite] = i
			trace.Labels = append(trace.Labels, r.LaunchSite)
			trace.Values = append(trace.Values, 0)
		}
		trace.Values[i] += float64(r.Class)
	})
	return trace
}

func outcomesForSite(table *models.LaunchTable, site string) Trace {
	counts := make(map[int]int)
	table.Each(func(r models.LaunchRecord) {
		if r.LaunchSite == site {
			counts[r.Class]++
		}
	})

	classes := make([]int, 0, len(counts))
	for class := range counts {
		classes = append(classes, class)
	}
	sort.Ints(classes)

	trace := Trace{Type: "pie", Labels: []string{}, Values: []float64{}}
	for _, class := range classes {
		trace.Labels = append(trace.Labels, strconv.Itoa(class))
		trace.Values = append(trace.Values, float64(counts[class]))
	}
	return trace
}
