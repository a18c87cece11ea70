// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/stathisch/mullroot/internal/orchestration"
)

// DisplayQuietResult outputs a result in quiet mode: the bare root value on
// a single line, suitable for scripting.
//
// Parameters:
//   - out: The output writer.
//   - outcome: The solve outcome.
func DisplayQuietResult(out io.Writer, outcome orchestration.SolveOutcome) {
	fmt.Fprintf(out, "%+.12e\n", outcome.Result.Root)
}

// WriteResultToFile writes a solve report to a file: a commented header
// followed by the summary and the full iteration table.
//
// Parameters:
//   - outcome: The solve outcome to report.
//   - path: The destination file path.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(outcome orchestration.SolveOutcome, path string) error {
	if path == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	res := outcome.Result
	fmt.Fprintf(file, "# Muller's Root-Finding Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Run ID: %s\n", outcome.RunID)
	fmt.Fprintf(file, "# Interval: (%g, %g)\n", outcome.Params.X0, outcome.Params.X1)
	fmt.Fprintf(file, "# Budget: %d iterations, %d tolerance digits\n", outcome.Params.MaxIterations, outcome.Params.ToleranceDigits)
	fmt.Fprintf(file, "# Duration: %s\n", outcome.Duration)
	fmt.Fprintf(file, "# Converged: %v\n", res.Converged)
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "Root x = %+.12e\n\n", res.Root)

	CLIResultPresenter{}.PresentHistory(outcome, file)
	return nil
}
