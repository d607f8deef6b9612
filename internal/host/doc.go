// Package host abstracts the machine edfind is inspecting: its filesystem,
// its process-spawn primitive, its environment and its OS identity.
//
// Every discovery heuristic and the path validator take a [Host] instead of
// touching os, os/exec or runtime directly, so a macOS application scan or a
// Windows registry query can be exercised from a Linux test with an
// afero.MemMapFs and a scripted [Runner].
package host
