// routes/api_routes.go
package routes

import (
	"github.com/gorilla/mux"

	"github.com/LilVoxy/launch_dashboard/config"
	"github.com/LilVoxy/launch_dashboard/dashboard"
	"github.com/LilVoxy/launch_dashboard/middleware"
	"github.com/LilVoxy/launch_dashboard/models"
	"github.com/LilVoxy/launch_dashboard/reactive"
	"github.com/LilVoxy/launch_dashboard/utils"
	"github.com/LilVoxy/launch_dashboard/websocket"
)

// Dependencies - все, что нужно обработчикам HTTP
type Dependencies struct {
	Table      *models.LaunchTable
	Layout     dashboard.Component
	Controller *reactive.Controller
	Initial    reactive.State
	WSManager  *websocket.Manager
	UI         config.UIConfig
	Scatter    dashboard.ScatterOptions
	Logger     *utils.DashboardLogger
}

// SetupRoutes настраивает все маршруты страницы, API и WebSocket
func SetupRoutes(router *mux.Router, deps Dependencies) {
	// Применяем middleware
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.LoggingMiddleware(deps.Logger))

	// WebSocket соединения
	if deps.WSManager != nil {
		router.HandleFunc("/ws", deps.WSManager.HandleConnections)
	}

	// Описание страницы и обработчиков
	router.HandleFunc("/api/layout", GetLayoutHandler(deps)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/dependencies", GetDependenciesHandler(deps)).Methods("GET", "OPTIONS")

	// Пересчет одного выхода
	router.HandleFunc("/api/update", UpdateComponentHandler(deps)).Methods("POST", "OPTIONS")

	// Данные и изображения диаграмм
	router.HandleFunc("/api/launches", GetLaunchesHandler(deps)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/charts/{chart:pie|scatter}.png", GetChartPNGHandler(deps)).Methods("GET")
	router.HandleFunc("/api/health", GetHealthHandler(deps)).Methods("GET")

	// Страница дашборда
	router.HandleFunc("/", GetIndexHandler(deps)).Methods("GET")
}
