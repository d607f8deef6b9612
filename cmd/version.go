// Package cmd holds the edfind build metadata.
package cmd

import "runtime/debug"

// Set by the release build via -ldflags "-X github.com/thoreinstein/edfind/cmd.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// ResolvedVersion returns Version, or the module version recorded by
// `go install` when no version was stamped at link time.
func ResolvedVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
