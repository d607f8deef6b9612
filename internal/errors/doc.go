// Package errors provides error handling conventions for the edfind CLI.
//
// This package re-exports the constructors and inspection helpers of
// github.com/cockroachdb/errors so that every package wraps errors the same
// way, defines sentinel errors for common failure conditions, and provides an
// ExitError type for CLI exit code handling.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, edferrors.ErrEditorNotFound) {
//	    // handle missing editor
//	}
//
// # Exit Codes
//
// The package defines standard exit codes for CLI applications:
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, process spawn, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional suggestion.
// It supports unwrapping via [Unwrap] and [As]:
//
//	err := edferrors.NewUserError(edferrors.ErrInvalidConfig, "Check your config file")
//	var exitErr *edferrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
