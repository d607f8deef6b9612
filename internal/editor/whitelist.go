package editor

import "strings"

// Keywords that identify VS Code forks anywhere in a name.
var forkKeywords = []string{"cursor", "windsurf", "antigravity", "catpaw", "trae"}

// Words that disqualify a bare "code" match: unrelated tools whose names
// end in "code".
var codeExclusions = []string{"findinput", "tool"}

// IsKnownEditorName is the strict acceptance rule shared by every
// discovery source. name may be a file name, an application name or a
// full path; the comparison is case-insensitive.
//
// A name is accepted when it
//   - contains "visual studio code" or "vscode", or
//   - is exactly "code" or "code.exe", or ends with a separator-prefixed
//     "code" or "code.exe", and contains neither "findinput" nor "tool", or
//   - contains one of cursor, windsurf, antigravity, catpaw, trae.
func IsKnownEditorName(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return false
	}

	if strings.Contains(lower, "visual studio code") || strings.Contains(lower, "vscode") {
		return true
	}

	if isBareCode(lower) && !containsAny(lower, codeExclusions) {
		return true
	}

	return containsAny(lower, forkKeywords)
}

func isBareCode(lower string) bool {
	if lower == "code" || lower == "code.exe" {
		return true
	}
	for _, suffix := range []string{"/code", `\code`, "/code.exe", `\code.exe`} {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
