package format

import (
	"testing"
	"time"
)

// TestFormatExecutionDuration tests duration formatting across magnitudes.
func TestFormatExecutionDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"microseconds", 250 * time.Microsecond, "250µs"},
		{"milliseconds", 42 * time.Millisecond, "42ms"},
		{"seconds", 3 * time.Second, "3s"},
		{"zero", 0, "0µs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatExecutionDuration(tt.d); got != tt.want {
				t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

// TestScientific tests the fixed-width scientific layout of the iteration table.
func TestScientific(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"positive", 1.122462048309, "+0001.122462048309e+00"},
		{"negative", -1.122462048309, "-0001.122462048309e+00"},
		{"zero", 0, "+0000.000000000000e+00"},
		{"small", 0.0005, "+0005.000000000000e-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scientific(tt.v)
			if got != tt.want {
				t.Errorf("Scientific(%g) = %q, want %q", tt.v, got, tt.want)
			}
			if len(got) != 22 {
				t.Errorf("Scientific(%g) width = %d, want 22", tt.v, len(got))
			}
		})
	}
}
