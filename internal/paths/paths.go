package paths

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG roots.
const AppName = "edfind"

// ConfigDir returns the edfind directory under the XDG config home
// (~/.config on Linux, ~/Library/Application Support on macOS and
// %LOCALAPPDATA% on Windows).
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ConfigFile returns the default configuration file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// CacheDir returns the edfind directory under the XDG cache home.
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// DiscoveryCacheFile returns the path of the Smart-tier discovery cache.
func DiscoveryCacheFile() string {
	return filepath.Join(CacheDir(), "discovery.json")
}

// ExpandHome expands a leading "~" or "~/" using home. "~user" forms and
// paths without a tilde are returned unchanged.
func ExpandHome(path, home string) string {
	switch {
	case home == "" || !strings.HasPrefix(path, "~"):
		return path
	case path == "~":
		return home
	case path[1] == '/' || path[1] == '\\':
		return filepath.Join(home, path[2:])
	default:
		return path
	}
}
