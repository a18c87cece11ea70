package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// Scientific formats a value in the fixed-width signed scientific notation
// used by the iteration table: an explicit sign, 12 fractional digits, and
// zero-padding to 22 characters (e.g. "+0001.122462048309e+00").
//
// Parameters:
//   - v: The value to format.
//
// Returns:
//   - string: The fixed-width representation.
func Scientific(v float64) string {
	return fmt.Sprintf("%+022.12e", v)
}
