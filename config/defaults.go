package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default configuration values.
const (
	DefaultAddr            = ":8080"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
	DefaultRateLimit       = 20.0
	DefaultRateBurst       = 40
	DefaultMaxCells        = 4_000_000
	DefaultMaxBatch        = 64
	DefaultConnectivity    = 8
	DefaultSearchTimeout   = 5 * time.Second
	DefaultSimplifyEpsilon = 0.5
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			RateLimit:       DefaultRateLimit,
			RateBurst:       DefaultRateBurst,
			MaxCells:        DefaultMaxCells,
			MaxBatch:        DefaultMaxBatch,
		},
		Search: SearchConfig{
			Connectivity:    DefaultConnectivity,
			DiagonalScaling: false,
			Timeout:         DefaultSearchTimeout,
			SimplifyEpsilon: DefaultSimplifyEpsilon,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// setDefaults registers every scalar key so file values, defaults and
// TERRAPATH_* variables all resolve through viper.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.rate_limit", d.Server.RateLimit)
	v.SetDefault("server.rate_burst", d.Server.RateBurst)
	v.SetDefault("server.max_cells", d.Server.MaxCells)
	v.SetDefault("server.batch_workers", d.Server.BatchWorkers)
	v.SetDefault("server.max_batch", d.Server.MaxBatch)
	v.SetDefault("search.connectivity", d.Search.Connectivity)
	v.SetDefault("search.diagonal_scaling", d.Search.DiagonalScaling)
	v.SetDefault("search.max_expansions", d.Search.MaxExpansions)
	v.SetDefault("search.timeout", d.Search.Timeout)
	v.SetDefault("search.simplify_epsilon", d.Search.SimplifyEpsilon)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}
