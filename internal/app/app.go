// Package app wires configuration, logging, orchestration and presentation
// into the runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"math"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/stathisch/mullroot/internal/config"
	"github.com/stathisch/mullroot/internal/logging"
	"github.com/stathisch/mullroot/internal/muller"
	"github.com/stathisch/mullroot/internal/tui"
)

// DefaultTarget is the reference target function f(x) = x^6 - 2. Its real
// roots are at x = ±2^(1/6).
func DefaultTarget(x float64) float64 {
	return math.Pow(x, 6) - 2
}

// Application represents the mullroot application instance.
type Application struct {
	Config    config.AppConfig
	Target    muller.Func
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithTarget sets a custom target function for the application.
func WithTarget(f muller.Func) AppOption {
	return func(a *Application) { a.Target = f }
}

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full command line, program name included.
//   - errWriter: The writer for flag parse errors and usage text.
//   - opts: Optional overrides for the target function and logger.
//
// Returns:
//   - *Application: The configured application.
//   - error: flag.ErrHelp when --help was requested, or a config error.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Target == nil {
		app.Target = DefaultTarget
	}
	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}

	programName := "mullroot"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
//
// Parameters:
//   - ctx: The base context of the run.
//   - out: The writer for result output.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if a.Config.TUI {
		return a.runTUI(ctx)
	}

	return a.runSolve(ctx, out)
}

// runTUI launches the interactive terminal mode.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, a.Target,
		a.Config.X0, a.Config.X1, a.Config.Iterations, a.Config.ToleranceDigits)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
