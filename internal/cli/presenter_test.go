package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/stathisch/mullroot/internal/errors"
	"github.com/stathisch/mullroot/internal/muller"
	"github.com/stathisch/mullroot/internal/orchestration"
)

// disableColors turns off ANSI colors for deterministic assertions.
func disableColors(t *testing.T) {
	t.Helper()
	original := colorsEnabled
	colorsEnabled = false
	t.Cleanup(func() { colorsEnabled = original })
}

// sampleOutcome builds a small converged outcome with a hand-rolled history.
func sampleOutcome() orchestration.SolveOutcome {
	return orchestration.SolveOutcome{
		RunID: "test-run",
		Params: muller.Params{
			X0: -1, X1: 1, MaxIterations: 10, ToleranceDigits: 12,
		},
		Result: muller.Result{
			Converged:      true,
			Root:           0,
			RootIndex:      3,
			IterationsUsed: 2,
			History: muller.History{
				X: []float64{-1, 1, 0},
				Y: []float64{-1, 1, 0},
				C: []float64{1, 1, 0},
				D: []float64{0, 0, 0},
			},
		},
		Duration: 50 * time.Microsecond,
	}
}

// TestPresentHistory verifies the fixed-width table layout.
func TestPresentHistory(t *testing.T) {
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentHistory(sampleOutcome(), &buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("table has %d lines, want header + 3 rows", len(lines))
	}

	header := lines[0]
	for _, col := range []string{"|step]", "|x]", "|f(x)]", "|d]", "|c]"} {
		if !strings.Contains(header, col) {
			t.Errorf("header should contain %q, got %q", col, header)
		}
	}

	wantFirstRow := "| 00000001 | -0001.000000000000e+00 | -0001.000000000000e+00 | +0000.000000000000e+00 | +0001.000000000000e+00"
	if lines[1] != wantFirstRow {
		t.Errorf("first row = %q, want %q", lines[1], wantFirstRow)
	}

	if !strings.HasPrefix(lines[3], "| 00000003 | +0000.000000000000e+00 ") {
		t.Errorf("third row = %q, want step 3 with x = 0", lines[3])
	}
}

// TestPresentSummary verifies both terminal outcomes.
func TestPresentSummary(t *testing.T) {
	disableColors(t)

	t.Run("converged", func(t *testing.T) {
		var buf bytes.Buffer
		CLIResultPresenter{}.PresentSummary(sampleOutcome(), false, &buf)

		output := buf.String()
		if !strings.Contains(output, "Method has converged to a root.") {
			t.Errorf("summary should report convergence, got: %s", output)
		}
		if !strings.Contains(output, "Root x = +0.000000000000e+00") {
			t.Errorf("summary should contain the root, got: %s", output)
		}
		if !strings.Contains(output, "Iterations used: 2") {
			t.Errorf("summary should contain iterations used, got: %s", output)
		}
		if strings.Contains(output, "Run ID") {
			t.Error("run ID should only appear in verbose mode")
		}
	})

	t.Run("not converged", func(t *testing.T) {
		outcome := sampleOutcome()
		outcome.Result.Converged = false

		var buf bytes.Buffer
		CLIResultPresenter{}.PresentSummary(outcome, false, &buf)

		if !strings.Contains(buf.String(), "Method did not reach the allowed tolerance.") {
			t.Errorf("summary should report non-convergence, got: %s", buf.String())
		}
	})

	t.Run("verbose includes run ID", func(t *testing.T) {
		var buf bytes.Buffer
		CLIResultPresenter{}.PresentSummary(sampleOutcome(), true, &buf)

		if !strings.Contains(buf.String(), "Run ID: test-run") {
			t.Errorf("verbose summary should contain the run ID, got: %s", buf.String())
		}
	})
}

// TestHandleError verifies message selection and exit-code mapping.
func TestHandleError(t *testing.T) {
	disableColors(t)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{"validation", apperrors.ValidationError{Field: "x1", Message: "must differ from x0"}, apperrors.ExitErrorConfig, "Error:"},
		{"degeneracy", apperrors.DegeneracyError{Iteration: 4, Term: "step denominator"}, apperrors.ExitErrorDegeneracy, "numeric degeneracy"},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled, "canceled"},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := CLIResultPresenter{}.HandleError(tt.err, time.Millisecond, &buf)

			if code != tt.wantCode {
				t.Errorf("HandleError() = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(buf.String(), tt.wantText) {
				t.Errorf("output should contain %q, got: %s", tt.wantText, buf.String())
			}
		})
	}
}
