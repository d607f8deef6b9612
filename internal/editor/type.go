package editor

import (
	"path/filepath"
	"strings"
)

// Type identifies an editor variant.
type Type string

// Known editor variants. Declaration order is detection order.
const (
	VSCode      Type = "vscode"
	Cursor      Type = "cursor"
	Windsurf    Type = "windsurf"
	Antigravity Type = "antigravity"
	CatPaw      Type = "catpaw"
	Trae        Type = "trae"
	Custom      Type = "custom"
)

type typeInfo struct {
	displayName string
	// commands are the canonical executable names, without extension.
	commands []string
	// patterns are lower-case substrings that identify the type in a path.
	patterns []string
}

var catalog = map[Type]typeInfo{
	VSCode: {
		displayName: "Visual Studio Code",
		commands:    []string{"code"},
		patterns:    []string{"visual studio code", "vscode", "vs code"},
	},
	Cursor: {
		displayName: "Cursor",
		commands:    []string{"cursor"},
		patterns:    []string{"cursor"},
	},
	Windsurf: {
		displayName: "Windsurf",
		commands:    []string{"windsurf"},
		patterns:    []string{"windsurf"},
	},
	Antigravity: {
		displayName: "Antigravity",
		commands:    []string{"antigravity"},
		patterns:    []string{"antigravity"},
	},
	CatPaw: {
		displayName: "CatPaw",
		commands:    []string{"catpaw"},
		patterns:    []string{"catpaw"},
	},
	Trae: {
		displayName: "Trae",
		commands:    []string{"trae"},
		patterns:    []string{"trae"},
	},
}

// Types returns the known, non-custom editor types in detection order.
func Types() []Type {
	return []Type{VSCode, Cursor, Windsurf, Antigravity, CatPaw, Trae}
}

// ParseType returns the Type for id, or false if id is not a catalog entry.
// "custom" is accepted.
func ParseType(id string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(id)))
	if t == Custom {
		return t, true
	}
	_, ok := catalog[t]
	return t, ok
}

// ID returns the type identifier.
func (t Type) ID() string { return string(t) }

// DisplayName returns the human-readable name. Custom returns "Custom Editor".
func (t Type) DisplayName() string {
	if info, ok := catalog[t]; ok {
		return info.displayName
	}
	return "Custom Editor"
}

// Commands returns the canonical executable names for the type.
func (t Type) Commands() []string {
	info, ok := catalog[t]
	if !ok {
		return nil
	}
	return append([]string(nil), info.commands...)
}

// Matches reports whether path identifies this type: either a lower-cased
// pattern occurs in the path, or its base name (without a Windows
// extension) is one of the canonical commands. Custom matches nothing.
func (t Type) Matches(path string) bool {
	info, ok := catalog[t]
	if !ok || path == "" {
		return false
	}
	lower := strings.ToLower(path)
	for _, p := range info.patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	base := commandName(lower)
	for _, c := range info.commands {
		if base == c {
			return true
		}
	}
	return false
}

// DetectFromPath returns the first known type matching path, or Custom.
func DetectFromPath(path string) Type {
	for _, t := range Types() {
		if t.Matches(path) {
			return t
		}
	}
	return Custom
}

// commandName returns the last path element of lower with any Windows
// executable extension removed. Both separators are honored.
func commandName(lower string) string {
	if i := strings.LastIndexAny(lower, `/\`); i >= 0 {
		lower = lower[i+1:]
	}
	switch ext := filepath.Ext(lower); ext {
	case ".exe", ".cmd", ".bat":
		lower = strings.TrimSuffix(lower, ext)
	}
	return lower
}

// Commands returns the full command-resolution catalog in probe order.
func Commands() []string {
	var out []string
	for _, t := range Types() {
		out = append(out, catalog[t].commands...)
	}
	return out
}
