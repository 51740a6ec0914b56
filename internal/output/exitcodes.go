// Package output provides structured output and error handling for the nxhuman CLI.
package output

import "errors"

// Exit codes:
// 0 = Success (including --help and --version)
// 1 = Any error during the main write sequence
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitError is an error that carries an exit code and an optional
// human-readable hint for the CLI.
type ExitError struct {
	Code    int
	Message string
	Hint    string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewError creates a failure error (exit code 1).
func NewError(message string) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Message: message,
	}
}

// NewErrorWithCause creates a failure error wrapping an underlying cause.
// The cause is classified into a short hint (permission, disk space,
// invalid path) when recognized.
func NewErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Message: message,
		Hint:    Hint(cause),
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitFailure for any error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}
