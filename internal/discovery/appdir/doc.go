// Package appdir discovers editors from installation metadata rather than
// PATH: application bundles on macOS, install directories and the registry
// on Windows, desktop entries, bin directories and dpkg on Linux.
//
// Every candidate passes [editor.IsKnownEditorName] before it is accepted.
// Sources fail silently; a failure is logged at debug level and the source
// contributes nothing.
package appdir
