package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrapath/config"
	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/terrain"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terrapath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, config.Validate(cfg))

	costs, err := cfg.CostTable()
	require.NoError(t, err)
	assert.Equal(t, terrain.DefaultCostTable(), costs)

	set, err := cfg.ImpassableSet()
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
server:
  addr: ":9090"
  rate_limit: 5
  max_cells: 1000
search:
  connectivity: 4
  diagonal_scaling: true
  max_expansions: 500
  timeout: 250ms
logging:
  level: debug
  format: json
costs:
  water: 2000
  road: 10
impassable:
  - urban
  - "7"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5.0, cfg.Server.RateLimit)
	assert.Equal(t, config.DefaultRateBurst, cfg.Server.RateBurst)
	assert.Equal(t, 1000, cfg.Server.MaxCells)
	assert.Equal(t, 4, cfg.Search.Connectivity)
	assert.True(t, cfg.Search.DiagonalScaling)
	assert.Equal(t, 250*time.Millisecond, cfg.Search.Timeout)
	assert.Equal(t, "json", cfg.Logging.Format)

	costs, err := cfg.CostTable()
	require.NoError(t, err)
	assert.Equal(t, 2000.0, costs[terrain.Water])
	assert.Equal(t, 10.0, costs[terrain.Road])
	assert.Equal(t, 500.0, costs[terrain.Forest])

	set, err := cfg.ImpassableSet()
	require.NoError(t, err)
	assert.Equal(t, []terrain.Class{terrain.Urban, terrain.Class(7)}, set.Sorted())

	opts := cfg.PlannerOptions()
	assert.Equal(t, gridgraph.Conn4, opts.Conn)
	assert.True(t, opts.ScaleDiagonal)
	assert.Equal(t, 500, opts.MaxExpansions)
	assert.Equal(t, 250*time.Millisecond, opts.Timeout)
	assert.Equal(t, 1000, opts.MaxCells)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TERRAPATH_SERVER_ADDR", "127.0.0.1:7000")
	t.Setenv("TERRAPATH_SEARCH_CONNECTIVITY", "4")

	path := writeFile(t, "server:\n  addr: \":9090\"\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
	assert.Equal(t, 4, cfg.Search.Connectivity)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"connectivity": "search:\n  connectivity: 6\n",
		"format":       "logging:\n  format: xml\n",
		"negative":     "search:\n  max_expansions: -1\n",
		"cost":         "costs:\n  water: -5\n",
		"class name":   "impassable:\n  - lava\n",
		"cost class":   "costs:\n  lava: 3\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := config.Load(missing)
	require.Error(t, err)

	cfg, err := config.LoadWithDefaults(missing)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, config.DefaultConnectivity, cfg.Search.Connectivity)
	assert.False(t, cfg.Search.DiagonalScaling)
	assert.False(t, cfg.PlannerOptions().ScaleDiagonal)
}

func TestValidate_Nil(t *testing.T) {
	require.ErrorIs(t, config.Validate(nil), config.ErrInvalidConfig)
}
