package extractors

import (
	"context"
	"fmt"
	"time"

	"github.com/LilVoxy/launch_dashboard/config"
	"github.com/LilVoxy/launch_dashboard/database"
	"github.com/LilVoxy/launch_dashboard/models"
	"github.com/LilVoxy/launch_dashboard/utils"
)

// Extractor загружает таблицу запусков из настроенного источника
type Extractor struct {
	config config.DataConfig
	logger *utils.DashboardLogger
}

// NewExtractor создает новый экземпляр Extractor
func NewExtractor(cfg config.DataConfig, logger *utils.DashboardLogger) *Extractor {
	return &Extractor{
		config: cfg,
		logger: logger,
	}
}

// Extract загружает таблицу один раз
func (e *Extractor) Extract(ctx context.Context) (*models.LaunchTable, error) {
	startTime := time.Now()

	var table *models.LaunchTable
	var err error

	switch e.config.Source {
	case config.SourceCSV:
		e.logger.LogLoadStart(e.config.Source, e.config.CSVPath)
		table, err = LoadCSV(e.config.CSVPath)
	case config.SourceMySQL:
		dbConfig := e.config.Database
		e.logger.LogLoadStart(e.config.Source, fmt.Sprintf("%s:%d/%s.%s", dbConfig.Host, dbConfig.Port, dbConfig.DBName, dbConfig.Table))
		table, err = e.extractFromDatabase(ctx)
	default:
		err = fmt.Errorf("неизвестный источник данных: %q", e.config.Source)
	}
	if err != nil {
		e.logger.Error("Ошибка при загрузке таблицы запусков: %v", err)
		return nil, fmt.Errorf("ошибка загрузки таблицы запусков: %w", err)
	}

	if table.Len() == 0 {
		e.logger.Warn("⚠️ Таблица запусков пуста, диаграммы будут пустыми")
	}

	e.logger.LogLoadComplete(startTime, table.Len(), len(table.Sites()))
	return table, nil
}

func (e *Extractor) extractFromDatabase(ctx context.Context) (*models.LaunchTable, error) {
	db, err := config.ConnectDatabase(ctx, e.config.Database)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			e.logger.Error("Ошибка при закрытии соединения с базой данных: %v", err)
		}
	}()

	return database.LoadLaunches(ctx, db, e.config.Database.Table)
}
