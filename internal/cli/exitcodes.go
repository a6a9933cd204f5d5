package cli

import (
	"errors"

	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/seed"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: unexpected failures or any error that doesn't fit below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing or malformed arguments, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested board or item does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: --data that is not a JSON object, bad --set pairs, unreadable seed files.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: unknown or missing groups, invalid config values.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command.
// Reported is set once the error has been shown to the user.
type ExitCodeError struct {
	Code     int
	Err      error
	Reported bool
}

// Error implements the error interface.
func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode attaches an exit code to err
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{Code: code, Err: err}
}

// UsageError marks err as a usage mistake
func UsageError(err error) error {
	return WithExitCode(ExitUsage, err)
}

// DataError marks err as bad input data
func DataError(err error) error {
	return WithExitCode(ExitDataErr, err)
}

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	// group errors are NotFoundErrors too, so they are checked first
	case errors.Is(err, board.ErrGroupNotFound), errors.Is(err, board.ErrMissingGroupID):
		return ExitValidation
	case errors.Is(err, board.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitValidation
	case errors.Is(err, seed.ErrUnknownFormat), errors.Is(err, board.ErrInvalidField):
		return ExitDataErr
	default:
		return ExitError
	}
}

// errorCode is the machine-readable code shown in JSON error output
func errorCode(exitCode int) string {
	switch exitCode {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "INVALID_DATA"
	case ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "ERROR"
	}
}
