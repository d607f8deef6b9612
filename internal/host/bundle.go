package host

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// IsAppBundlePath reports whether p names a macOS application bundle.
func IsAppBundlePath(p string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimRight(p, "/")), ".app")
}

// BundleExecutable returns the executable embedded in a macOS bundle:
// Contents/MacOS/<bundle name> when it is executable, otherwise the first
// executable entry of Contents/MacOS in name order. It returns "" when the
// bundle has none.
func BundleExecutable(fsys afero.Fs, bundle string) string {
	macOS := filepath.Join(bundle, "Contents", "MacOS")
	name := strings.TrimSuffix(filepath.Base(bundle), filepath.Ext(bundle))

	preferred := filepath.Join(macOS, name)
	if IsExecutable(fsys, preferred) {
		return preferred
	}

	for _, entry := range ReadDir(fsys, macOS) {
		if entry.IsDir() {
			continue
		}
		candidate := filepath.Join(macOS, entry.Name())
		if IsExecutable(fsys, candidate) {
			return candidate
		}
	}
	return ""
}
