package cli

import (
	"fmt"
	"io"
	"time"

	apperrors "github.com/stathisch/mullroot/internal/errors"
	"github.com/stathisch/mullroot/internal/format"
	"github.com/stathisch/mullroot/internal/orchestration"
)

// CLIResultPresenter implements orchestration.ResultPresenter and
// orchestration.ErrorHandler for command-line output. It renders the
// iteration history in the fixed-width table layout of the original method
// demonstration and a colorized convergence summary.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentHistory displays the per-iteration statistical table: one row per
// reported iteration index with the abscissa, function value, and the two
// divided-difference coefficients in fixed-width scientific notation.
func (CLIResultPresenter) PresentHistory(outcome orchestration.SolveOutcome, out io.Writer) {
	hist := outcome.Result.History

	fmt.Fprintf(out, "%-11s%-25s%-25s", "|step]", "|x]", "|f(x)]")
	fmt.Fprintf(out, "%-25s%-s\n", "|d]", "|c]")

	for i := 0; i < hist.Len(); i++ {
		fmt.Fprintf(out, "| %08d | %s | %s ", i+1, format.Scientific(hist.X[i]), format.Scientific(hist.Y[i]))
		fmt.Fprintf(out, "| %s | %s\n", format.Scientific(hist.D[i]), format.Scientific(hist.C[i]))
	}
}

// PresentSummary displays the convergence outcome and the final root value.
// Non-convergence is presented as an outcome, not an error: the best-effort
// estimate is still shown.
func (CLIResultPresenter) PresentSummary(outcome orchestration.SolveOutcome, verbose bool, out io.Writer) {
	res := outcome.Result

	if res.Converged {
		fmt.Fprintf(out, "%sMethod has converged to a root.%s\n", colorGreen(), colorReset())
	} else {
		fmt.Fprintf(out, "%sMethod did not reach the allowed tolerance.%s\n", colorYellow(), colorReset())
	}

	fmt.Fprintf(out, "Root x = %+.12e\n", res.Root)
	fmt.Fprintf(out, "Iterations used: %d (%s)\n", res.IterationsUsed, format.FormatExecutionDuration(outcome.Duration))

	if verbose {
		fmt.Fprintf(out, "%sRun ID: %s%s\n", colorCyan(), outcome.RunID, colorReset())
	}
}

// HandleError prints the error and maps it to the process exit code.
//
// Parameters:
//   - err: The solve or configuration error.
//   - duration: How long the run lasted before failing.
//   - out: The output writer.
//
// Returns:
//   - int: The exit code for the process.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	if apperrors.IsContextError(err) {
		fmt.Fprintf(out, "%sRun canceled after %s.%s\n", colorRed(), format.FormatExecutionDuration(duration), colorReset())
	} else {
		fmt.Fprintf(out, "%sError: %v%s\n", colorRed(), err, colorReset())
	}
	return apperrors.ExitCodeFor(err)
}
