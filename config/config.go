// Package config loads service and CLI settings from YAML files and
// TERRAPATH_* environment variables via viper.
package config

import (
	"time"

	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/planner"
	"github.com/katalvlaran/terrapath/terrain"
)

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Search  SearchConfig  `mapstructure:"search" yaml:"search"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Costs overrides entries of the default cost table, keyed by class name or id.
	Costs map[string]float64 `mapstructure:"costs" yaml:"costs,omitempty"`

	// Impassable lists classes rendered as walls, by name or id.
	Impassable []string `mapstructure:"impassable" yaml:"impassable,omitempty"`
}

// ServerConfig contains HTTP service settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout" validate:"min=1s"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout" validate:"min=1s"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" validate:"min=1s"`
	RateLimit       float64       `mapstructure:"rate_limit" yaml:"rate_limit" validate:"min=0"`
	RateBurst       int           `mapstructure:"rate_burst" yaml:"rate_burst" validate:"min=1"`
	MaxCells        int           `mapstructure:"max_cells" yaml:"max_cells" validate:"min=0"`
	BatchWorkers    int           `mapstructure:"batch_workers" yaml:"batch_workers" validate:"min=0,max=256"`
	MaxBatch        int           `mapstructure:"max_batch" yaml:"max_batch" validate:"min=1"`
}

// SearchConfig contains pathfinding defaults.
type SearchConfig struct {
	Connectivity    int           `mapstructure:"connectivity" yaml:"connectivity" validate:"oneof=4 8"`
	DiagonalScaling bool          `mapstructure:"diagonal_scaling" yaml:"diagonal_scaling"`
	MaxExpansions   int           `mapstructure:"max_expansions" yaml:"max_expansions" validate:"min=0"`
	Timeout         time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"min=0s"`
	SimplifyEpsilon float64       `mapstructure:"simplify_epsilon" yaml:"simplify_epsilon"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

// CostTable returns the default table with Costs applied on top.
func (c *Config) CostTable() (terrain.CostTable, error) {
	t := terrain.DefaultCostTable()
	if len(c.Costs) == 0 {
		return t, nil
	}
	overrides, err := terrain.FromNames(c.Costs)
	if err != nil {
		return nil, err
	}
	t.Update(overrides)
	if err = t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// ImpassableSet resolves Impassable into a class set.
func (c *Config) ImpassableSet() (terrain.ClassSet, error) {
	set := terrain.NewClassSet()
	for _, name := range c.Impassable {
		cl, err := terrain.ParseClass(name)
		if err != nil {
			return nil, err
		}
		set[cl] = struct{}{}
	}

	return set, nil
}

// PlannerOptions converts the search section into planner options.
func (c *Config) PlannerOptions() planner.Options {
	conn := gridgraph.Conn8
	if c.Search.Connectivity == 4 {
		conn = gridgraph.Conn4
	}

	return planner.Options{
		Conn:            conn,
		ScaleDiagonal:   c.Search.DiagonalScaling,
		MaxExpansions:   c.Search.MaxExpansions,
		Timeout:         c.Search.Timeout,
		MaxCells:        c.Server.MaxCells,
		SimplifyEpsilon: c.Search.SimplifyEpsilon,
	}
}
