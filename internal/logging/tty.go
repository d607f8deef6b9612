package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fder is implemented by *os.File and terminal wrappers.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether v (a reader or writer) is attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI colors should be written to w.
func SupportsColor(w io.Writer) bool {
	return colorAllowed(os.LookupEnv, IsTerminal(w))
}

// colorAllowed applies NO_COLOR (https://no-color.org) and TERM=dumb on top
// of the terminal check.
func colorAllowed(lookup func(string) (string, bool), terminal bool) bool {
	if _, set := lookup("NO_COLOR"); set {
		return false
	}
	if v, _ := lookup("TERM"); v == "dumb" {
		return false
	}
	return terminal
}
