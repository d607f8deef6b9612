package launch

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/edfind/internal/advisor"
	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/errors"
	"github.com/thoreinstein/edfind/internal/host"
	"github.com/thoreinstein/edfind/internal/logging"
	"github.com/thoreinstein/edfind/internal/validate"
)

// Process is a started editor process.
type Process interface {
	Release() error
}

// Starter starts a process without waiting for it.
type Starter interface {
	Start(ctx context.Context, name string, args []string) (Process, error)
}

// ExecStarter starts processes with os/exec, detached from the terminal.
type ExecStarter struct{}

// Start implements Starter.
func (ExecStarter) Start(_ context.Context, name string, args []string) (Process, error) {
	// The editor outlives this process, so it must not be bound to ctx.
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd.Process, nil
}

var _ Process = (*os.Process)(nil)

// Target is the file to open.
type Target struct {
	Path     string
	Position editor.Position
}

// Launcher opens files in editors.
type Launcher struct {
	host    *host.Host
	starter Starter
	logger  *slog.Logger
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithStarter replaces the process starter.
func WithStarter(s Starter) Option {
	return func(l *Launcher) { l.starter = s }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Launcher) { l.logger = logging.OrDiscard(logger) }
}

// New returns a Launcher for h.
func New(h *host.Host, opts ...Option) *Launcher {
	l := &Launcher{host: h, starter: ExecStarter{}, logger: logging.NewDiscard()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Command returns the program and arguments that open target in cfg.
// macOS application bundles go through `open -a`.
func (l *Launcher) Command(cfg editor.Config, target Target) (string, []string) {
	args := editor.LaunchArgs(cfg.Type(), target.Path, target.Position, cfg.CustomArgs)
	if l.host.IsDarwin() && host.IsAppBundlePath(cfg.ExecutablePath) {
		return "open", append([]string{"-a", strings.TrimRight(cfg.ExecutablePath, "/"), "--args"}, args...)
	}
	return cfg.ExecutablePath, args
}

// Open starts cfg on target and releases the process.
func (l *Launcher) Open(ctx context.Context, cfg editor.Config, target Target) error {
	if !cfg.IsValid() {
		return errors.Wrapf(errors.ErrInvalidEditorPath, "editor %q has no executable path", cfg.ID)
	}

	name, args := l.Command(cfg, target)
	l.logger.Debug("launching editor", "editor", cfg.ID, "command", name, "args", args)

	proc, err := l.starter.Start(ctx, name, args)
	if err != nil {
		return errors.Wrapf(errors.Mark(err, errors.ErrLaunchFailed), "launching %s", cfg.DisplayName)
	}
	if err := proc.Release(); err != nil {
		l.logger.Debug("releasing editor process", "error", err)
	}
	return nil
}

// OpenWithDiagnosis opens target and, on failure, returns the advisor's
// report alongside the error. The target's existence decides whether a
// failure is reported as a missing file.
func (l *Launcher) OpenWithDiagnosis(ctx context.Context, cfg editor.Config, target Target) (*advisor.Report, error) {
	err := l.Open(ctx, cfg, target)
	if err == nil {
		return nil, nil
	}

	if errors.Is(err, errors.ErrInvalidEditorPath) {
		report := advisor.DiagnoseValidation(l.host.GOOS, cfg.ExecutablePath, validate.Invalid{
			Code:   validate.CodeBlank,
			Reason: err.Error(),
		})
		return &report, err
	}

	op := advisor.OpLaunch
	if target.Path != "" {
		op = advisor.OpOpenFile
	}
	report := advisor.Diagnose(advisor.ErrorContext{
		Err:           err,
		Operation:     op,
		EditorName:    cfg.DisplayName,
		EditorPath:    cfg.ExecutablePath,
		TargetPath:    target.Path,
		TargetMissing: target.Path != "" && !host.Exists(l.host.FS, target.Path),
		GOOS:          l.host.GOOS,
	})
	return &report, err
}
