package utils

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DashboardLogger представляет логгер дашборда
type DashboardLogger struct {
	sugar     *zap.SugaredLogger
	isVerbose bool
}

// NewDashboardLogger создает новый экземпляр логгера.
// Если logFile не пуст, записи дублируются в файл.
func NewDashboardLogger(verbose bool, logFile string) (*DashboardLogger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if logFile != "" {
		config.OutputPaths = append(config.OutputPaths, logFile)
		config.ErrorOutputPaths = append(config.ErrorOutputPaths, logFile)
	}

	logger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &DashboardLogger{
		sugar:     logger.Sugar(),
		isVerbose: verbose,
	}, nil
}

// NewNopLogger возвращает логгер, который ничего не пишет
func NewNopLogger() *DashboardLogger {
	return &DashboardLogger{sugar: zap.NewNop().Sugar()}
}

// NewLoggerFromZap оборачивает готовый zap-логгер
func NewLoggerFromZap(logger *zap.Logger, verbose bool) *DashboardLogger {
	return &DashboardLogger{sugar: logger.Sugar(), isVerbose: verbose}
}

// Info логирует информационное сообщение
func (l *DashboardLogger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Warn логирует предупреждение
func (l *DashboardLogger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

// Error логирует сообщение об ошибке
func (l *DashboardLogger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Debug логирует отладочное сообщение (только если включен verbose режим)
func (l *DashboardLogger) Debug(format string, v ...interface{}) {
	if !l.isVerbose {
		return
	}
	l.sugar.Debugf(format, v...)
}

// Sync сбрасывает буферы логгера
func (l *DashboardLogger) Sync() {
	_ = l.sugar.Sync()
}

// LogLoadStart логирует начало загрузки таблицы запусков
func (l *DashboardLogger) LogLoadStart(source, location string) {
	l.Info("Загрузка таблицы запусков: источник=%s, расположение=%s", source, location)
}

// LogLoadComplete логирует завершение загрузки таблицы запусков
func (l *DashboardLogger) LogLoadComplete(startTime time.Time, rows int, sites int) {
	l.Info("✅ Таблица запусков загружена. Длительность: %v", time.Since(startTime))
	l.Info("Загружено: %d записей, %d площадок", rows, sites)
}
