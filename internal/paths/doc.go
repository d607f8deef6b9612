// Package paths provides cross-platform path resolution for edfind's own
// files: its configuration file and the Smart-tier discovery cache.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance.
// On Linux paths follow XDG conventions (~/.config, ~/.cache); on macOS and
// Windows xdg maps them to the native locations.
//
//	paths.ConfigFile()         // <ConfigHome>/edfind/config.yaml
//	paths.DiscoveryCacheFile() // <CacheHome>/edfind/discovery.json
//
// It also provides [ExpandHome] for "~"-prefixed paths found in
// configuration files.
package paths
