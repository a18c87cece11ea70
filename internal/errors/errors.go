package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
//
// Note that a solve that exhausts its iteration budget without converging is
// still a successful run: non-convergence is a valid terminal outcome, not a
// process failure.
const (
	ExitSuccess         = 0   // Indicates successful execution (converged or not).
	ExitErrorGeneric    = 1   // Indicates a generic error.
	ExitErrorDegeneracy = 3   // Indicates the recurrence hit a degenerate denominator.
	ExitErrorConfig     = 4   // Indicates a configuration or input validation error.
	ExitErrorCanceled   = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// parameter failed validation and provides a human-readable explanation.
// Validation errors are detected before any iteration state exists; no
// partial computation is performed.
type ValidationError struct {
	// Field is the name of the parameter that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
//
// Returns:
//   - string: The error message string.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// SolveError encapsulates a solver error while preserving the original cause.
// This allows for structured error handling and inspection of what went wrong
// during the root-finding run.
type SolveError struct {
	// Cause is the underlying error that triggered this solve error.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e SolveError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the SolveError.
func (e SolveError) Unwrap() error { return e.Cause }

// DegeneracyError represents a numeric degeneracy inside the Müller
// recurrence: a divided-difference or step-formula denominator evaluated to
// zero, or an estimate left the representable range. It captures the
// iteration index and the term that degenerated for diagnostic purposes.
type DegeneracyError struct {
	// Iteration is the iteration index at which the degeneracy occurred.
	Iteration int
	// Term identifies the degenerate quantity (e.g., "step denominator").
	Term string
}

// Error returns a formatted message describing the degeneracy.
//
// Returns:
//   - string: The error message string.
func (e DegeneracyError) Error() string {
	return fmt.Sprintf("numeric degeneracy at iteration %d: %s", e.Iteration, e.Term)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code the application should
// terminate with. A nil error maps to ExitSuccess.
//
// Parameters:
//   - err: The error to classify.
//
// Returns:
//   - int: The corresponding exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if IsContextError(err) {
		return ExitErrorCanceled
	}
	var degErr DegeneracyError
	if errors.As(err, &degErr) {
		return ExitErrorDegeneracy
	}
	var valErr ValidationError
	var cfgErr ConfigError
	if errors.As(err, &valErr) || errors.As(err, &cfgErr) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
