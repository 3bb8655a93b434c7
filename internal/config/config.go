package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/napolitain/solver-geode/internal/solver/geode"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of one solver run
type Config struct {
	Input     string `json:"input"`      // blueprint file; empty = built-in examples
	Horizon   int    `json:"horizon"`    // steps per blueprint
	Workers   int    `json:"workers"`    // 0 = one per CPU
	Order     string `json:"order"`      // dfs | bfs
	Memoize   bool   `json:"memoize"`
	NoBound   bool   `json:"no_bound"`
	MaxStates int    `json:"max_states"` // 0 = unlimited
	TopN      int    `json:"top_n"`      // solve only the first N blueprints; 0 = all
	ShowPath  bool   `json:"show_path"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Horizon: geode.DefaultHorizon,
		Order:   geode.DepthFirst.String(),
	}
}

// Load reads a JSON config file on top of the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Horizon < 1 {
		return fmt.Errorf("%w: horizon must be at least 1, got %d", ErrInvalidConfig, c.Horizon)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.MaxStates < 0 {
		return fmt.Errorf("%w: max_states must not be negative, got %d", ErrInvalidConfig, c.MaxStates)
	}
	if c.TopN < 0 {
		return fmt.Errorf("%w: top_n must not be negative, got %d", ErrInvalidConfig, c.TopN)
	}
	if _, err := geode.ParseOrder(c.Order); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// SolverOptions converts the config into search options
func (c *Config) SolverOptions() (geode.Options, error) {
	order, err := geode.ParseOrder(c.Order)
	if err != nil {
		return geode.Options{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return geode.Options{
		Order:      order,
		Memoize:    c.Memoize,
		NoBound:    c.NoBound,
		MaxStates:  c.MaxStates,
		RecordPath: c.ShowPath,
	}, nil
}
