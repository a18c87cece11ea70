package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDisplayQuietResult verifies the single-line scripting output.
func TestDisplayQuietResult(t *testing.T) {
	var buf bytes.Buffer
	DisplayQuietResult(&buf, sampleOutcome())

	if got, want := buf.String(), "+0.000000000000e+00\n"; got != want {
		t.Errorf("DisplayQuietResult output = %q, want %q", got, want)
	}
}

// TestWriteResultToFile verifies the report file content and directory
// creation.
func TestWriteResultToFile(t *testing.T) {
	t.Run("empty path is a no-op", func(t *testing.T) {
		if err := WriteResultToFile(sampleOutcome(), ""); err != nil {
			t.Errorf("WriteResultToFile(\"\") error = %v", err)
		}
	})

	t.Run("writes header, summary and table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reports", "run.txt")

		if err := WriteResultToFile(sampleOutcome(), path); err != nil {
			t.Fatalf("WriteResultToFile() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading report: %v", err)
		}
		content := string(data)

		for _, want := range []string{
			"# Muller's Root-Finding Result",
			"# Run ID: test-run",
			"# Interval: (-1, 1)",
			"# Converged: true",
			"Root x = +0.000000000000e+00",
			"|step]",
			"| 00000003 |",
		} {
			if !strings.Contains(content, want) {
				t.Errorf("report should contain %q, got:\n%s", want, content)
			}
		}
	})
}
