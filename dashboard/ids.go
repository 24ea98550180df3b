package dashboard

import "github.com/LilVoxy/launch_dashboard/reactive"

// Идентификаторы компонентов страницы
const (
	SiteDropdownID    = "site-dropdown"
	PayloadSliderID   = "payload-slider"
	PieChartID        = "success-pie-chart"
	ScatterChartID    = "success-payload-scatter-chart"
	SliderOutputID    = "slider-output-container"
	AllSites          = "All Sites"
	pieTitlePrefix    = "Success Launches for site "
	payloadAxisTitle  = "Payload Mass (kg)"
	classAxisTitle    = "class"
	boosterLegendName = "Booster_Version"
)

// Свойства, участвующие в обработчиках
var (
	SiteInput     = reactive.Dependency{ID: SiteDropdownID, Property: "value"}
	PayloadInput  = reactive.Dependency{ID: PayloadSliderID, Property: "value"}
	PieOutput     = reactive.Dependency{ID: PieChartID, Property: "figure"}
	ScatterOutput = reactive.Dependency{ID: ScatterChartID, Property: "figure"}
	EchoOutput    = reactive.Dependency{ID: SliderOutputID, Property: "children"}
)
