package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/stathisch/mullroot/internal/cli"
	apperrors "github.com/stathisch/mullroot/internal/errors"
	"github.com/stathisch/mullroot/internal/logging"
	"github.com/stathisch/mullroot/internal/metrics"
	"github.com/stathisch/mullroot/internal/orchestration"
)

// runSolve orchestrates a one-shot solve: lifecycle setup, execution,
// instrumentation and presentation.
func (a *Application) runSolve(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	bundle := metrics.NewMetrics()
	if a.Config.MetricsAddr != "" {
		shutdown := a.serveMetrics(bundle)
		defer shutdown()
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	params := a.Config.SolverParams(a.Target)
	a.Logger.Debug("starting solve",
		logging.Float64("x0", params.X0),
		logging.Float64("x1", params.X1),
		logging.Int("max_iterations", params.MaxIterations),
		logging.Int("tolerance_digits", params.ToleranceDigits))

	outcome := orchestration.ExecuteSolve(ctx, params, progressReporter, progressOut)
	bundle.ObserveSolve(outcomeLabel(outcome), outcome.Result.IterationsUsed, outcome.Duration)

	return a.presentOutcome(outcome, before, collector, out)
}

// presentOutcome renders the outcome and maps it to an exit code.
func (a *Application) presentOutcome(outcome orchestration.SolveOutcome, before metrics.MemorySnapshot, collector *metrics.MemoryCollector, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}

	if outcome.Err != nil {
		a.Logger.Error("solve failed", outcome.Err, logging.String("run_id", outcome.RunID))
		return presenter.HandleError(outcome.Err, outcome.Duration, a.ErrWriter)
	}

	a.Logger.Debug("solve finished",
		logging.String("run_id", outcome.RunID),
		logging.Float64("root", outcome.Result.Root),
		logging.Int("iterations_used", outcome.Result.IterationsUsed))

	if a.Config.Quiet {
		cli.DisplayQuietResult(out, outcome)
		return a.saveResultIfNeeded(outcome, out)
	}

	presenter.PresentHistory(outcome, out)
	fmt.Fprintln(out)
	presenter.PresentSummary(outcome, a.Config.Verbose, out)

	if a.Config.Verbose {
		after := collector.Snapshot()
		fmt.Fprintf(out, "Heap growth: %.1f KiB\n", float64(after.HeapGrowth(before))/1024)
	}

	return a.saveResultIfNeeded(outcome, out)
}

// saveResultIfNeeded writes the report file when an output path is set.
func (a *Application) saveResultIfNeeded(outcome orchestration.SolveOutcome, out io.Writer) int {
	if a.Config.OutputFile == "" {
		return apperrors.ExitSuccess
	}
	if err := cli.WriteResultToFile(outcome, a.Config.OutputFile); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if !a.Config.Quiet {
		fmt.Fprintf(out, "\nResult saved to: %s\n", a.Config.OutputFile)
	}
	return apperrors.ExitSuccess
}

// serveMetrics starts the Prometheus endpoint and returns its shutdown hook.
func (a *Application) serveMetrics(bundle *metrics.Metrics) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", bundle.Handler())
	server := &http.Server{Addr: a.Config.MetricsAddr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.Error("metrics server stopped", err, logging.String("addr", a.Config.MetricsAddr))
		}
	}()
	a.Logger.Info("serving metrics", logging.String("addr", a.Config.MetricsAddr))

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}
}

// outcomeLabel maps a solve outcome to its metrics label.
func outcomeLabel(outcome orchestration.SolveOutcome) string {
	switch {
	case outcome.Err == nil && outcome.Result.Converged:
		return metrics.OutcomeConverged
	case outcome.Err == nil:
		return metrics.OutcomeNotConverged
	case apperrors.IsContextError(outcome.Err):
		return metrics.OutcomeCanceled
	}

	var degeneracy apperrors.DegeneracyError
	if errors.As(outcome.Err, &degeneracy) {
		return metrics.OutcomeDegenerate
	}
	return metrics.OutcomeInvalid
}
