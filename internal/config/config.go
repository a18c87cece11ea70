// Package config defines the application configuration and its resolution
// chain: command-line flags take priority over environment variables, which
// take priority over an optional TOML configuration file, which takes
// priority over the built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/stathisch/mullroot/internal/errors"
	"github.com/stathisch/mullroot/internal/muller"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "MULLROOT_"

// Default parameter values mirror the documented reference run of the
// method: f(x) = x^6 - 2 started at (1, 2) with a budget of 20 and
// 15-digit tolerance.
const (
	DefaultX0              = 1.0
	DefaultX1              = 2.0
	DefaultIterations      = 20
	DefaultToleranceDigits = 15
	DefaultTimeout         = 30 * time.Second
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// X0 and X1 are the two distinct starting abscissae.
	X0 float64
	// X1 is the second starting abscissa.
	X1 float64
	// Iterations is the solver iteration budget.
	Iterations int
	// ToleranceDigits is the requested precision in decimal digits.
	ToleranceDigits int
	// Timeout bounds the total run duration.
	Timeout time.Duration
	// Quiet suppresses everything except the final root value.
	Quiet bool
	// Verbose enables additional diagnostics (memory stats, debug logs).
	Verbose bool
	// TUI launches the interactive terminal UI instead of a one-shot solve.
	TUI bool
	// OutputFile is an optional path the result report is written to.
	OutputFile string
	// MetricsAddr, when set, serves Prometheus metrics on that address.
	MetricsAddr string
	// ConfigFile is an optional TOML file supplying defaults.
	ConfigFile string
}

// DefaultConfig returns the built-in defaults.
//
// Returns:
//   - AppConfig: The default configuration.
func DefaultConfig() AppConfig {
	return AppConfig{
		X0:              DefaultX0,
		X1:              DefaultX1,
		Iterations:      DefaultIterations,
		ToleranceDigits: DefaultToleranceDigits,
		Timeout:         DefaultTimeout,
	}
}

// ParseConfig parses command-line arguments and resolves the full
// configuration chain (flags > environment > config file > defaults).
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: The writer for flag parse errors and usage text.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when --help was requested, or a parse/load error.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.Float64Var(&cfg.X0, "x0", cfg.X0, "first starting point")
	fs.Float64Var(&cfg.X1, "x1", cfg.X1, "second starting point (must differ from x0)")
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "iteration budget (2 < i <= 1000000)")
	fs.IntVar(&cfg.Iterations, "i", cfg.Iterations, "iteration budget (shorthand)")
	fs.IntVar(&cfg.ToleranceDigits, "tolerance", cfg.ToleranceDigits, "tolerance in decimal digits (0 < t <= 40)")
	fs.IntVar(&cfg.ToleranceDigits, "t", cfg.ToleranceDigits, "tolerance in decimal digits (shorthand)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "maximum run duration")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "print only the final root value")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "print only the final root value (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose diagnostics")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "enable verbose diagnostics (shorthand)")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "launch the interactive terminal UI")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "write the result report to a file")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "write the result report to a file (shorthand)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address (e.g. :9090)")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "TOML configuration file")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	envApplied := applyEnvOverrides(&cfg, fs)

	if err := applyFileOverrides(&cfg, fs, envApplied); err != nil {
		return AppConfig{}, err
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errWriter, "%s: %v\n", programName, err)
		return AppConfig{}, err
	}

	return cfg, nil
}

// Validate checks the configuration ranges. It duplicates the solver's own
// parameter validation so that bad input is rejected before any run state
// is set up.
//
// Returns:
//   - error: A ConfigError describing the first violation, or nil.
func (c AppConfig) Validate() error {
	if c.X0 == c.X1 {
		return apperrors.NewConfigError("values x0, x1 should be different")
	}
	if c.Iterations <= muller.MinIterations || c.Iterations > muller.MaxIterations {
		return apperrors.NewConfigError("iterations value: 2<i<=%d", muller.MaxIterations)
	}
	if c.ToleranceDigits <= 0 || c.ToleranceDigits > muller.MaxToleranceDigits {
		return apperrors.NewConfigError("tolerance value: 0<t<=%d", muller.MaxToleranceDigits)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// SolverParams converts the configuration to solver parameters bound to the
// given target function.
//
// Parameters:
//   - f: The target function.
//
// Returns:
//   - muller.Params: The solver parameters.
func (c AppConfig) SolverParams(f muller.Func) muller.Params {
	return muller.Params{
		X0:              c.X0,
		X1:              c.X1,
		MaxIterations:   c.Iterations,
		ToleranceDigits: c.ToleranceDigits,
		F:               f,
	}
}
