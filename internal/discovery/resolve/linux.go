package resolve

import (
	"context"

	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
)

// Linux resolves commands with which.
type Linux struct {
	prober
}

var _ Strategy = (*Linux)(nil)

// NewLinux returns the Linux strategy.
func NewLinux(h *host.Host, opts ...Option) *Linux {
	p := newProber(h, host.Linux, "which", opts)
	p.notFound = []string{"not found", "no {name} in"}
	return &Linux{prober: p}
}

// Discover implements Strategy.
func (l *Linux) Discover(ctx context.Context) []editor.Config {
	return l.discover(ctx, l.probePath())
}

// ValidatePath implements Strategy.
func (l *Linux) ValidatePath(path string) (editor.Config, bool) {
	return l.validatePath(path)
}

// IsSupported implements Strategy.
func (l *Linux) IsSupported() bool { return l.supported() }

// Name implements Strategy.
func (l *Linux) Name() string { return "linux-which" }
