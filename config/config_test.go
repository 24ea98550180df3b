package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDefaults(t *testing.T) {
	cfg := GetConfig()

	assert.Equal(t, "127.0.0.1:8050", cfg.Server.Addr)
	assert.Equal(t, SourceCSV, cfg.Data.Source)
	assert.Equal(t, "spacex_launch_dash.csv", cfg.Data.CSVPath)
	assert.Equal(t, "ALL", cfg.UI.DefaultSite)
	assert.Equal(t, 0.0, cfg.UI.SliderMin)
	assert.Equal(t, 10000.0, cfg.UI.SliderMax)
	assert.Equal(t, 1000.0, cfg.UI.SliderStep)
	assert.Equal(t, [2]float64{0, 5000}, cfg.UI.DefaultRange)
	assert.False(t, cfg.UI.Trendline)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, GetConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	content := `
server:
  addr: 0.0.0.0:9000
data:
  source: mysql
  database:
    host: db
    password: secret
ui:
  default_site: All Sites
  default_range: [1000, 8000]
  trendline: true
websocket:
  sweep_interval: 10s
enable_detailed_logging: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, SourceMySQL, cfg.Data.Source)
	assert.Equal(t, "db", cfg.Data.Database.Host)
	assert.Equal(t, 3306, cfg.Data.Database.Port)
	assert.Equal(t, "spacex_launches", cfg.Data.Database.Table)
	assert.Equal(t, "All Sites", cfg.UI.DefaultSite)
	assert.Equal(t, [2]float64{1000, 8000}, cfg.UI.DefaultRange)
	assert.Equal(t, 10000.0, cfg.UI.SliderMax)
	assert.True(t, cfg.UI.Trendline)
	assert.Equal(t, 10*time.Second, cfg.WebSocket.SweepInterval)
	assert.Equal(t, 65*time.Second, cfg.WebSocket.InactivityTimeout)
	assert.True(t, cfg.EnableDetailedLogging)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("server: [not a map"), 0o600))
	_, err = LoadConfig(broken)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("data:\n  source: parquet\n"), 0o600))
	_, err = LoadConfig(invalid)
	assert.Error(t, err)

	offScale := filepath.Join(dir, "off_scale.yaml")
	require.NoError(t, os.WriteFile(offScale, []byte("ui:\n  default_range: [0, 50000]\n"), 0o600))
	_, err = LoadConfig(offScale)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *DashboardConfig)
	}{
		{"empty csv path", func(c *DashboardConfig) { c.Data.CSVPath = "" }},
		{"mysql without table", func(c *DashboardConfig) {
			c.Data.Source = SourceMySQL
			c.Data.Database.Table = ""
		}},
		{"zero slider step", func(c *DashboardConfig) { c.UI.SliderStep = 0 }},
		{"inverted slider bounds", func(c *DashboardConfig) { c.UI.SliderMax = c.UI.SliderMin }},
		{"default range above max", func(c *DashboardConfig) { c.UI.DefaultRange = [2]float64{0, 50000} }},
		{"default range below min", func(c *DashboardConfig) { c.UI.DefaultRange = [2]float64{-1000, 5000} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	c := DefaultDatabaseConfig
	c.Host = "db"
	c.Port = 3307
	c.Password = "secret"

	assert.Equal(t, "root:secret@tcp(db:3307)/spacex?parseTime=true", c.DSN())
}
