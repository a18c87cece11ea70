package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/stathisch/mullroot/internal/progress"
)

// ProgressReporter defines the interface for displaying solve progress.
// This interface decouples the orchestration layer from the presentation
// layer: implementations handle the visual representation (spinner, TUI
// messages) while orchestration focuses on running the solve.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving per-iteration updates from the solver.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.Update, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, out io.Writer) {
	f(wg, progressChan, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting a solve outcome.
// It decouples orchestration from presentation concerns, allowing different
// output formats (CLI table, TUI view) without modifying the run logic.
type ResultPresenter interface {
	// PresentHistory displays the per-iteration history table.
	PresentHistory(outcome SolveOutcome, out io.Writer)

	// PresentSummary displays the convergence summary and final root value.
	PresentSummary(outcome SolveOutcome, verbose bool, out io.Writer)
}

// ErrorHandler handles solve errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
