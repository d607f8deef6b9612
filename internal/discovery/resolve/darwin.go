package resolve

import (
	"context"
	"path/filepath"

	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
)

// Homebrew and system bin directories probed on macOS in addition to PATH.
const (
	HomebrewBin = "/opt/homebrew/bin"
	LocalBin    = "/usr/local/bin"
)

// Darwin resolves commands with which, using a PATH augmented with the
// Homebrew prefix and each editor's bundled bin folder. GUI sessions on macOS
// often inherit a PATH without them.
type Darwin struct {
	prober
}

var _ Strategy = (*Darwin)(nil)

// NewDarwin returns the macOS strategy.
func NewDarwin(h *host.Host, opts ...Option) *Darwin {
	p := newProber(h, host.Darwin, "which", opts)
	p.notFound = []string{"not found", "no {name} in"}
	return &Darwin{prober: p}
}

// BundledBinDirs returns the bin folders shipped inside each editor's
// application bundle under /Applications.
func BundledBinDirs() []string {
	types := editor.Types()
	dirs := make([]string, 0, len(types))
	for _, t := range types {
		dirs = append(dirs, filepath.Join("/Applications", t.DisplayName()+".app", "Contents", "Resources", "app", "bin"))
	}
	return dirs
}

// Discover implements Strategy.
func (d *Darwin) Discover(ctx context.Context) []editor.Config {
	extra := append([]string{HomebrewBin, LocalBin}, BundledBinDirs()...)
	return d.discover(ctx, d.probePath(extra...))
}

// ValidatePath implements Strategy. Application bundles with an embedded
// executable are accepted as well as plain executables.
func (d *Darwin) ValidatePath(path string) (editor.Config, bool) {
	if d.host != nil && host.IsAppBundlePath(path) && host.BundleExecutable(d.host.FS, path) != "" {
		return editor.NewDiscovered(path), true
	}
	return d.validatePath(path)
}

// IsSupported implements Strategy.
func (d *Darwin) IsSupported() bool { return d.supported() }

// Name implements Strategy.
func (d *Darwin) Name() string { return "darwin-which" }
