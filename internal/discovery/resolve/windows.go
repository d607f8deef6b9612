package resolve

import (
	"context"

	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
)

// Windows resolves commands with where. The first reported path must still
// exist on disk.
type Windows struct {
	prober
}

var _ Strategy = (*Windows)(nil)

// NewWindows returns the Windows strategy.
func NewWindows(h *host.Host, opts ...Option) *Windows {
	p := newProber(h, host.Windows, "where", opts)
	p.notFound = []string{"Could not find"}
	p.mustExist = true
	return &Windows{prober: p}
}

// Discover implements Strategy.
func (w *Windows) Discover(ctx context.Context) []editor.Config {
	return w.discover(ctx, w.probePath())
}

// ValidatePath implements Strategy.
func (w *Windows) ValidatePath(path string) (editor.Config, bool) {
	return w.validatePath(path)
}

// IsSupported implements Strategy.
func (w *Windows) IsSupported() bool { return w.supported() }

// Name implements Strategy.
func (w *Windows) Name() string { return "windows-where" }
