// Package commands implements the CLI commands for edfind.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/edfind/cmd"
	"github.com/thoreinstein/edfind/internal/config"
	"github.com/thoreinstein/edfind/internal/errors"
	"github.com/thoreinstein/edfind/internal/logging"
)

// EnvDebug enables debug (1, true) or trace (2) logging when no -v flag is given.
const EnvDebug = "EDFIND_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// loadedConfig is the configuration read at startup.
var loadedConfig = config.Default()

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.ResolvedVersion()
	rootCmd.SetVersionTemplate("edfind version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, err := config.Load("")
	if err != nil {
		configLoadErr = err
		loadedConfig = config.Default()
		return
	}
	configLoadErr = nil
	loadedConfig = cfg
}

var rootCmd = &cobra.Command{
	Use:   "edfind",
	Short: "Find, validate and launch VS Code-family editors",
	Long: `edfind discovers the VS Code-family editors installed on this machine
(Visual Studio Code, Cursor, Windsurf, Antigravity, CatPaw and Trae), checks
that configured editor paths are usable, and opens files in them.

Discovery probes the editor commands on PATH and, in the comprehensive and
smart tiers, scans the operating system's application directories.`,
	Example: `  # List installed editors
  edfind discover

  # Check a path
  edfind validate /usr/local/bin/code

  # Open a file at a line
  edfind open main.go --line 42

  See Also: edfind doctor, edfind config`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	level := slog.LevelError
	if !quiet {
		v := verbosity
		if v == 0 {
			v = envVerbosity()
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = logging.HandlerFor(logging.Format(logFormat), cmd.ErrOrStderr(), opts)

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// The log file is always JSON.
		handler = logging.NewMultiHandler(handler, logging.HandlerFor(logging.FormatJSON, f, opts))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// envVerbosity maps EDFIND_DEBUG to a -v count: 1 or true is debug, 2 is
// trace. Flags take precedence.
func envVerbosity() int {
	switch os.Getenv(EnvDebug) {
	case "1", "true":
		return 2
	case "2":
		return 3
	default:
		return 0
	}
}

// checkConfig reports a configuration that failed to load. Commands that
// must work with a broken config file are exempt.
func checkConfig(cmd *cobra.Command, _ []string) error {
	switch cmd.Name() {
	case "help", "version", "doctor", "path", "gen-doc":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}

// Run executes the root command and returns the process exit code, printing
// any error and its suggestion to w.
func Run(w io.Writer) int {
	err := rootCmd.Execute()
	if err == nil {
		return errors.ExitSuccess
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return errors.ExitCode(err)
	}
	if exitErr.Err != nil {
		fmt.Fprintf(w, "Error: %v\n", exitErr.Err)
	}
	if exitErr.Suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", exitErr.Suggestion)
	}
	return exitErr.Code
}
