package appdir

import (
	"strings"
)

// DesktopEntry holds the fields read from a freedesktop .desktop file.
type DesktopEntry struct {
	Name       string
	Exec       string
	Comment    string
	Icon       string
	Categories string
}

// ParseDesktopEntry extracts Name, Exec, Comment, Icon and Categories from
// the [Desktop Entry] group. Localized keys (Name[de]=) and other groups
// are ignored; the first occurrence of a key wins. It reports false when
// the file has no [Desktop Entry] group.
func ParseDesktopEntry(data string) (DesktopEntry, bool) {
	var e DesktopEntry
	fields := map[string]*string{
		"Name=":       &e.Name,
		"Exec=":       &e.Exec,
		"Comment=":    &e.Comment,
		"Icon=":       &e.Icon,
		"Categories=": &e.Categories,
	}

	inEntry, seen := false, false
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") {
			inEntry = line == "[Desktop Entry]"
			seen = seen || inEntry
			continue
		}
		if !inEntry {
			continue
		}
		for prefix, dst := range fields {
			if *dst == "" && strings.HasPrefix(line, prefix) {
				*dst = strings.TrimSpace(strings.TrimPrefix(line, prefix))
			}
		}
	}
	return e, seen
}

// ExecCommand returns the program of an Exec value: its first token without
// quotes. Field codes such as %F never appear in the first token.
func ExecCommand(exec string) string {
	exec = strings.TrimSpace(exec)
	if exec == "" {
		return ""
	}
	if exec[0] == '"' {
		if end := strings.IndexByte(exec[1:], '"'); end >= 0 {
			return exec[1 : end+1]
		}
	}
	if i := strings.IndexAny(exec, " \t"); i >= 0 {
		return exec[:i]
	}
	return exec
}
