package utils

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger(verbose bool) (*DashboardLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewLoggerFromZap(zap.New(core), verbose), logs
}

func TestDebugRequiresVerbose(t *testing.T) {
	quiet, quietLogs := observedLogger(false)
	quiet.Debug("пропущено %d", 1)
	quiet.Info("записано %d", 2)

	require.Equal(t, 1, quietLogs.Len())
	assert.Equal(t, "записано 2", quietLogs.All()[0].Message)

	verbose, verboseLogs := observedLogger(true)
	verbose.Debug("записано %d", 3)

	require.Equal(t, 1, verboseLogs.Len())
	assert.Equal(t, zapcore.DebugLevel, verboseLogs.All()[0].Level)
}

func TestLevels(t *testing.T) {
	logger, logs := observedLogger(false)
	logger.Warn("предупреждение")
	logger.Error("ошибка: %v", "boom")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "ошибка: boom", entries[1].Message)
}

func TestLogLoadComplete(t *testing.T) {
	logger, logs := observedLogger(false)
	logger.LogLoadStart("csv", "spacex_launch_dash.csv")
	logger.LogLoadComplete(time.Now(), 56, 4)

	assert.Equal(t, 1, logs.FilterMessage("Загружено: 56 записей, 4 площадок").Len())
	assert.Equal(t, 3, logs.Len())
}

func TestNewDashboardLoggerWithFile(t *testing.T) {
	logger, err := NewDashboardLogger(true, filepath.Join(t.TempDir(), "dashboard.log"))
	require.NoError(t, err)
	logger.Info("старт")
	logger.Sync()
}
