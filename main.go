// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/LilVoxy/launch_dashboard/config"
	"github.com/LilVoxy/launch_dashboard/dashboard"
	"github.com/LilVoxy/launch_dashboard/extractors"
	"github.com/LilVoxy/launch_dashboard/reactive"
	"github.com/LilVoxy/launch_dashboard/routes"
	"github.com/LilVoxy/launch_dashboard/utils"
	"github.com/LilVoxy/launch_dashboard/websocket"
)

var (
	configPath string
	dataPath   string
	addr       string
	source     string
	trendline  bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "launch_dashboard",
	Short: "Интерактивный дашборд по таблице запусков SpaceX",
	Long: `Загружает таблицу запусков один раз при старте и обслуживает страницу
с круговой диаграммой успешных запусков, слайдером массы полезной нагрузки
и точечной диаграммой "масса - исход".

Без флагов читает spacex_launch_dash.csv и слушает 127.0.0.1:8050.`,
	SilenceUsage: true,
	RunE:         runServer,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML-файл конфигурации")
	rootCmd.Flags().StringVar(&dataPath, "data", "", "CSV-файл с таблицей запусков")
	rootCmd.Flags().StringVar(&addr, "addr", "", "адрес HTTP-сервера (host:port)")
	rootCmd.Flags().StringVar(&source, "source", "", "источник таблицы: csv или mysql")
	rootCmd.Flags().BoolVar(&trendline, "trendline", false, "линия тренда на точечной диаграмме")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "подробное логирование")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig собирает конфигурацию: значения по умолчанию, файл, флаги
func loadConfig(cmd *cobra.Command) (config.DashboardConfig, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data.CSVPath = dataPath
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = addr
	}
	if flags.Changed("source") {
		cfg.Data.Source = source
	}
	if flags.Changed("trendline") {
		cfg.UI.Trendline = trendline
	}
	if flags.Changed("verbose") {
		cfg.EnableDetailedLogging = verbose
	}
	return cfg, cfg.Validate()
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("ошибка конфигурации: %w", err)
	}

	logger, err := utils.NewDashboardLogger(cfg.EnableDetailedLogging, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("ошибка инициализации логгера: %w", err)
	}
	defer logger.Sync()

	logger.Info("Запуск дашборда...")

	// Контекст отменяется сигналом завершения
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Таблица загружается один раз; ошибка здесь фатальна
	table, err := extractors.NewExtractor(cfg.Data, logger).Extract(ctx)
	if err != nil {
		logger.Error("❌ Не удалось загрузить таблицу запусков: %v", err)
		return err
	}

	// Статическое дерево страницы и обработчики
	layout := dashboard.BuildLayout(table, cfg.UI)
	scatterOpts := dashboard.ScatterOptions{Trendline: cfg.UI.Trendline}

	controller := reactive.NewController()
	if err := dashboard.RegisterCallbacks(controller, table, scatterOpts); err != nil {
		return fmt.Errorf("ошибка регистрации обработчиков: %w", err)
	}

	initial, err := dashboard.InitialState(layout, []reactive.Dependency{dashboard.SiteInput, dashboard.PayloadInput})
	if err != nil {
		return fmt.Errorf("ошибка построения страницы: %w", err)
	}

	// Менеджер WebSocket
	wsManager := websocket.NewManager(controller, initial, cfg.WebSocket, logger)

	// Создаем маршрутизатор
	router := mux.NewRouter()
	routes.SetupRoutes(router, routes.Dependencies{
		Table:      table,
		Layout:     layout,
		Controller: controller,
		Initial:    initial,
		WSManager:  wsManager,
		UI:         cfg.UI,
		Scatter:    scatterOpts,
		Logger:     logger,
	})

	// Настраиваем сервер
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return wsManager.Run(gctx)
	})

	g.Go(func() error {
		logger.Info("✅ Сервер запущен на http://%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ошибка запуска сервера: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("⚠️ Получен сигнал завершения, закрываем соединения...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("❌ %v", err)
		return err
	}

	logger.Info("👋 Сервер остановлен")
	return nil
}
