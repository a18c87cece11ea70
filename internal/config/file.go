// This file contains the optional TOML configuration file layer.

package config

import (
	"flag"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/stathisch/mullroot/internal/errors"
)

// fileConfig mirrors AppConfig with pointer fields so that absent keys can
// be distinguished from zero values.
type fileConfig struct {
	X0              *float64 `toml:"x0"`
	X1              *float64 `toml:"x1"`
	Iterations      *int     `toml:"iterations"`
	ToleranceDigits *int     `toml:"tolerance"`
	Timeout         *string  `toml:"timeout"`
	Quiet           *bool    `toml:"quiet"`
	Verbose         *bool    `toml:"verbose"`
	OutputFile      *string  `toml:"output"`
	MetricsAddr     *string  `toml:"metrics_addr"`
}

// fileOverride declares how one config-file key maps onto AppConfig,
// mirroring the envOverrides table.
type fileOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, fileConfig)
}

// fileOverrides maps every supported file key to its flag aliases and env
// key so that the file layer only fills values neither layer above has set.
var fileOverrides = []fileOverride{
	{"X0", []string{"x0"}, func(c *AppConfig, f fileConfig) {
		if f.X0 != nil {
			c.X0 = *f.X0
		}
	}},
	{"X1", []string{"x1"}, func(c *AppConfig, f fileConfig) {
		if f.X1 != nil {
			c.X1 = *f.X1
		}
	}},
	{"ITERATIONS", []string{"iterations", "i"}, func(c *AppConfig, f fileConfig) {
		if f.Iterations != nil {
			c.Iterations = *f.Iterations
		}
	}},
	{"TOLERANCE", []string{"tolerance", "t"}, func(c *AppConfig, f fileConfig) {
		if f.ToleranceDigits != nil {
			c.ToleranceDigits = *f.ToleranceDigits
		}
	}},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, f fileConfig) {
		if f.Timeout != nil {
			if parsed, err := time.ParseDuration(*f.Timeout); err == nil {
				c.Timeout = parsed
			}
		}
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, f fileConfig) {
		if f.Quiet != nil {
			c.Quiet = *f.Quiet
		}
	}},
	{"VERBOSE", []string{"verbose", "v"}, func(c *AppConfig, f fileConfig) {
		if f.Verbose != nil {
			c.Verbose = *f.Verbose
		}
	}},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, f fileConfig) {
		if f.OutputFile != nil {
			c.OutputFile = *f.OutputFile
		}
	}},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, f fileConfig) {
		if f.MetricsAddr != nil {
			c.MetricsAddr = *f.MetricsAddr
		}
	}},
}

// applyFileOverrides loads the TOML configuration file, if one is
// configured, and applies its values to every field that was set neither by
// a command-line flag nor by an environment variable.
//
// Parameters:
//   - cfg: The configuration to fill.
//   - fs: The parsed flag set, consulted for explicitly set flags.
//   - envApplied: The env keys the environment layer applied.
//
// Returns:
//   - error: A ConfigError if the file cannot be read or parsed.
func applyFileOverrides(cfg *AppConfig, fs *flag.FlagSet, envApplied map[string]bool) error {
	if cfg.ConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(cfg.ConfigFile)
	if err != nil {
		return apperrors.NewConfigError("reading config file %s: %v", cfg.ConfigFile, err)
	}

	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return apperrors.NewConfigError("parsing config file %s: %v", cfg.ConfigFile, err)
	}

	for _, o := range fileOverrides {
		if isFlagSetAny(fs, o.flags...) || envApplied[o.envKey] {
			continue
		}
		o.apply(cfg, file)
	}
	return nil
}
