package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/napolitain/solver-geode/internal/solver/geode"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, geode.DefaultHorizon, cfg.Horizon)
	require.Equal(t, "dfs", cfg.Order)
	require.NoError(t, cfg.Validate())

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)
	require.Equal(t, geode.Options{Order: geode.DepthFirst}, opts)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geode.json")
	data := `{"horizon": 32, "order": "bfs", "memoize": true, "top_n": 3, "show_path": true}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 32, cfg.Horizon)
	require.Equal(t, 3, cfg.TopN)
	require.Equal(t, 0, cfg.Workers)

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)
	require.Equal(t, geode.BreadthFirst, opts.Order)
	require.True(t, opts.Memoize)
	require.True(t, opts.RecordPath)
	require.False(t, opts.NoBound)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{horizon"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero horizon", func(c *Config) { c.Horizon = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"negative budget", func(c *Config) { c.MaxStates = -1 }},
		{"negative top", func(c *Config) { c.TopN = -2 }},
		{"unknown order", func(c *Config) { c.Order = "astar" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	cfg := Default()
	cfg.Order = "astar"
	_, err := cfg.SolverOptions()
	require.ErrorIs(t, err, ErrInvalidConfig)
}
