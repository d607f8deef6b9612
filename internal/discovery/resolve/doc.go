// Package resolve finds editors through the operating system's command
// resolution utility: which on Linux and macOS, where on Windows.
//
// Each canonical editor command is probed once with a bounded wait. A probe
// that fails in any way contributes nothing; Discover never returns an error.
// The macOS strategy also probes with an augmented PATH that covers Homebrew
// and the command-line folders bundled inside each editor's .app.
package resolve
