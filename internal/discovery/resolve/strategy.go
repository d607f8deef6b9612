package resolve

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
	"github.com/thoreinstein/edfind/internal/logging"
)

// Strategy resolves editor commands on one operating system.
type Strategy interface {
	// Discover probes every canonical editor command.
	Discover(ctx context.Context) []editor.Config
	// ValidatePath accepts an existing executable and infers its type.
	ValidatePath(path string) (editor.Config, bool)
	// IsSupported reports whether the strategy applies to the host.
	IsSupported() bool
	// Name identifies the strategy in logs and debug output.
	Name() string
}

// Option configures a strategy.
type Option func(*prober)

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *prober) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithTimeout sets the per-probe bound.
func WithTimeout(d time.Duration) Option {
	return func(p *prober) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithSearchPaths prepends extra directories to PATH for every probe.
func WithSearchPaths(dirs ...string) Option {
	return func(p *prober) {
		p.searchPaths = append(p.searchPaths, dirs...)
	}
}

// All returns the strategy for every supported operating system in a fixed
// order. Callers filter with IsSupported.
func All(h *host.Host, opts ...Option) []Strategy {
	return []Strategy{
		NewLinux(h, opts...),
		NewDarwin(h, opts...),
		NewWindows(h, opts...),
	}
}

// prober holds what the per-OS strategies share: the host, the probe bound
// and the output rules of one resolution tool.
type prober struct {
	host        *host.Host
	logger      *slog.Logger
	timeout     time.Duration
	searchPaths []string

	goos string
	tool string
	// notFound are output markers the tool prints for a missing command.
	notFound []string
	// mustExist requires the resolved path to exist on disk.
	mustExist bool
}

func newProber(h *host.Host, goos, tool string, opts []Option) prober {
	p := prober{
		host:    h,
		logger:  logging.NewDiscard(),
		timeout: host.DefaultProbeTimeout,
		goos:    goos,
		tool:    tool,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func (p *prober) supported() bool {
	return p.host != nil && p.host.GOOS == p.goos
}

// discover probes each catalog command with the given PATH override.
func (p *prober) discover(ctx context.Context, pathEnv string) []editor.Config {
	var env []string
	if pathEnv != "" {
		env = []string{"PATH=" + pathEnv}
	}

	var found []editor.Config
	for _, t := range editor.Types() {
		for _, name := range t.Commands() {
			if ctx.Err() != nil {
				p.logger.Log(ctx, logging.LevelTrace, "probe skipped", "tool", p.tool, "command", name, "reason", ctx.Err())
				continue
			}
			path, ok := p.probe(ctx, name, env)
			if !ok {
				continue
			}
			p.logger.Debug("command resolved", "tool", p.tool, "command", name, "path", path)
			found = append(found, editor.NewDiscoveredAs(t, path))
		}
	}
	return found
}

// probe runs the tool for one command and applies the acceptance rules.
func (p *prober) probe(ctx context.Context, name string, env []string) (string, bool) {
	out, err := p.host.Runner.Run(ctx, host.Command{
		Name:    p.tool,
		Args:    []string{name},
		Env:     env,
		Timeout: p.timeout,
	})
	if err != nil {
		p.logger.Log(ctx, logging.LevelTrace, "probe failed", "tool", p.tool, "command", name, "error", err)
		return "", false
	}
	if out.ExitCode != 0 {
		p.logger.Log(ctx, logging.LevelTrace, "probe exited", "tool", p.tool, "command", name, "code", out.ExitCode)
		return "", false
	}

	path, ok := p.parse(name, out.Stdout)
	if !ok {
		p.logger.Log(ctx, logging.LevelTrace, "probe output rejected", "tool", p.tool, "command", name)
	}
	return path, ok
}

// parse extracts the first resolved path from the tool output.
func (p *prober) parse(name, stdout string) (string, bool) {
	text := strings.TrimSpace(stdout)
	if text == "" {
		return "", false
	}
	for _, marker := range p.notFound {
		marker = strings.ReplaceAll(marker, "{name}", name)
		if strings.Contains(text, marker) {
			return "", false
		}
	}

	first := strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
	if !host.IsAbs(p.goos, first) {
		return "", false
	}
	if p.mustExist && !host.Exists(p.host.FS, first) {
		return "", false
	}
	return first, true
}

// validatePath accepts an existing runnable file and infers its type.
func (p *prober) validatePath(path string) (editor.Config, bool) {
	if strings.TrimSpace(path) == "" || p.host == nil {
		return editor.Config{}, false
	}
	if !host.IsRunnable(p.host.FS, p.host.GOOS, path) {
		return editor.Config{}, false
	}
	return editor.NewDiscovered(path), true
}

// probePath returns PATH with the search paths and extra prepended, each
// directory appearing once. It returns "" when nothing is added.
func (p *prober) probePath(extra ...string) string {
	dirs := append(append([]string{}, p.searchPaths...), extra...)
	if len(dirs) == 0 {
		return ""
	}
	return AugmentPath(p.goos, p.host.Env.Getenv("PATH"), dirs)
}

// AugmentPath prepends dirs to the PATH value current. Directories already
// present in current, or repeated in dirs, are added once.
func AugmentPath(goos, current string, dirs []string) string {
	existing := host.SplitPathList(goos, current)
	seen := make(map[string]bool, len(existing)+len(dirs))
	for _, d := range existing {
		seen[host.PathKey(goos, d)] = true
	}

	var prefix []string
	for _, d := range dirs {
		key := host.PathKey(goos, d)
		if d == "" || seen[key] {
			continue
		}
		seen[key] = true
		prefix = append(prefix, d)
	}

	return strings.Join(append(prefix, existing...), host.PathListSeparator(goos))
}
