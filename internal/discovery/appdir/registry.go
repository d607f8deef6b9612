package appdir

import (
	"regexp"
	"strings"
)

// RegistryKey is one key of `reg query` output with its values.
type RegistryKey struct {
	Path   string
	Values map[string]string
}

// regValueLine matches "    <name>    REG_<type>    <data>".
var regValueLine = regexp.MustCompile(`^\s+(.+?)\s+(REG_[A-Z_]+)(?:\s+(.*))?$`)

// ParseRegQuery parses the line-oriented output of `reg query <key> /s`.
// Keys without values are kept so callers can inspect the key name.
func ParseRegQuery(output string) []RegistryKey {
	var keys []RegistryKey
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "HKEY_") {
			keys = append(keys, RegistryKey{Path: strings.TrimSpace(line), Values: map[string]string{}})
			continue
		}
		if len(keys) == 0 {
			continue
		}
		m := regValueLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		keys[len(keys)-1].Values[strings.TrimSpace(m[1])] = strings.TrimSpace(m[3])
	}
	return keys
}

// Name returns the last segment of the key path.
func (k RegistryKey) Name() string {
	return windowsBase(k.Path)
}

// windowsBase returns the last element of a path using either separator.
func windowsBase(p string) string {
	p = strings.TrimRight(p, `\/`)
	if i := strings.LastIndexAny(p, `\/`); i >= 0 {
		return p[i+1:]
	}
	return p
}
