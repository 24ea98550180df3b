package extractors

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LilVoxy/launch_dashboard/config"
	"github.com/LilVoxy/launch_dashboard/utils"
)

func TestExtractFromCSV(t *testing.T) {
	cfg := config.DataConfig{
		Source:  config.SourceCSV,
		CSVPath: filepath.Join("testdata", "spacex_launch_dash.csv"),
	}

	table, err := NewExtractor(cfg, utils.NewNopLogger()).Extract(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, table.Len())
}

func TestExtractUnknownSource(t *testing.T) {
	cfg := config.DataConfig{Source: "parquet"}

	_, err := NewExtractor(cfg, utils.NewNopLogger()).Extract(context.Background())
	assert.Error(t, err)
}

func TestExtractMissingFileIsFatal(t *testing.T) {
	cfg := config.DataConfig{
		Source:  config.SourceCSV,
		CSVPath: filepath.Join(t.TempDir(), "missing.csv"),
	}

	table, err := NewExtractor(cfg, utils.NewNopLogger()).Extract(context.Background())
	assert.Error(t, err)
	assert.Nil(t, table)
}
