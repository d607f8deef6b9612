// Package logging provides structured logging for edfind using slog.
//
// The package supports text and JSON output formats, verbosity-derived log
// levels (including a [LevelTrace] below debug for per-probe chatter), and
// helpers for carrying a logger through a [context.Context]. The discovery
// engine and the application scanners take a *slog.Logger as their
// diagnostic sink; nothing in the core logs through a global.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Format: logging.FormatText,
//	})
//	logger.Debug("probing", "command", "cursor")
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	engine := discovery.New(h, discovery.WithLogger(logging.ForTest(t)))
//
// # Quiet Mode
//
// Use [NewDiscard] when log output should be suppressed entirely.
package logging
