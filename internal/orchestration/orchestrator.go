package orchestration

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/stathisch/mullroot/internal/muller"
	"github.com/stathisch/mullroot/internal/progress"
)

// tracerName identifies this package's OpenTelemetry tracer.
const tracerName = "github.com/stathisch/mullroot/internal/orchestration"

// ProgressBufferSize is the capacity of the progress channel. A buffered
// channel keeps the solver loop from blocking when the UI is slow to consume
// updates; the solver typically terminates in well under this many
// iterations anyway.
const ProgressBufferSize = 64

// SolveOutcome encapsulates the outcome of a single solve run. It is the
// shared domain type between the orchestration and presentation layers.
type SolveOutcome struct {
	// RunID uniquely identifies this run in logs and traces.
	RunID string
	// Params are the validated inputs of the run.
	Params muller.Params
	// Result is the terminal solver outcome. It is meaningful only when Err
	// is nil.
	Result muller.Result
	// Duration is the time taken to complete the solve.
	Duration time.Duration
	// Err contains any error that occurred during the run.
	Err error
}

// ExecuteSolve runs a single Müller solve with progress streaming.
//
// The solve itself is a synchronous compute loop; it runs in its own
// goroutine under an errgroup so that per-iteration updates can be consumed
// concurrently by the ProgressReporter. The run is wrapped in an
// OpenTelemetry span carrying the inputs and the outcome, and tagged with a
// fresh run ID.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - params: The solver parameters.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - SolveOutcome: The run outcome including timing and any error.
func ExecuteSolve(ctx context.Context, params muller.Params, reporter ProgressReporter, out io.Writer) SolveOutcome {
	runID := uuid.NewString()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "muller.solve",
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.Float64("muller.x0", params.X0),
			attribute.Float64("muller.x1", params.X1),
			attribute.Int("muller.max_iterations", params.MaxIterations),
			attribute.Int("muller.tolerance_digits", params.ToleranceDigits),
		))
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	progressChan := make(chan progress.Update, ProgressBufferSize)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, out)

	outcome := SolveOutcome{RunID: runID, Params: params}

	g.Go(func() error {
		startTime := time.Now()
		res, err := muller.Solve(ctx, params, func(iteration int, estimate float64) {
			progressChan <- progress.Update{Iteration: iteration, Estimate: estimate}
		})
		outcome.Result = res
		outcome.Duration = time.Since(startTime)
		outcome.Err = err
		return nil
	})

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	if outcome.Err != nil {
		span.RecordError(outcome.Err)
		span.SetStatus(codes.Error, outcome.Err.Error())
		return outcome
	}

	span.SetAttributes(
		attribute.Bool("muller.converged", outcome.Result.Converged),
		attribute.Int("muller.iterations_used", outcome.Result.IterationsUsed),
		attribute.Float64("muller.root", outcome.Result.Root),
	)
	span.SetStatus(codes.Ok, "")
	return outcome
}
