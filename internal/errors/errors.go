package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, process spawn, permissions, etc.).
	ExitSystem = 2
)

// Re-exported constructors and helpers from cockroachdb/errors.
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Is    = crdb.Is
	As    = crdb.As
	Mark  = crdb.Mark
	Join  = crdb.Join
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = crdb.New("resource not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")

	// ErrEditorNotFound indicates no editor matched the requested id or path.
	ErrEditorNotFound = crdb.New("editor not found")

	// ErrInvalidEditorPath indicates a path failed validation.
	ErrInvalidEditorPath = crdb.New("invalid editor path")

	// ErrLaunchFailed indicates an editor process could not be started.
	ErrLaunchFailed = crdb.New("editor launch failed")
)

// ExitError carries the process exit code of a failed command and an
// optional next step for the user. A nil Err means the command already
// reported its outcome and only the code matters.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

// NewExitError returns an ExitError without a suggestion.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewExitErrorWithSuggestion returns an ExitError with a suggestion.
func NewExitErrorWithSuggestion(err error, code int, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: code, Suggestion: suggestion}
}

// NewUserError reports bad input or usage (ExitUser).
func NewUserError(err error, suggestion string) *ExitError {
	return NewExitErrorWithSuggestion(err, ExitUser, suggestion)
}

// NewSystemError reports an environment failure such as I/O or process
// start (ExitSystem).
func NewSystemError(err error, suggestion string) *ExitError {
	return NewExitErrorWithSuggestion(err, ExitSystem, suggestion)
}

// NewConfigError reports a configuration that failed to load or validate.
func NewConfigError(err error) *ExitError {
	return NewUserError(err, "Run: edfind doctor")
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for err: ExitSuccess for nil, the code of
// the first ExitError in the chain, and ExitUser otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUser
}
