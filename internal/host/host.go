package host

import (
	"os"
	"runtime"
	"strings"

	"github.com/spf13/afero"
)

// Supported operating system identifiers, as reported by runtime.GOOS.
const (
	Darwin  = "darwin"
	Windows = "windows"
	Linux   = "linux"
)

// Env provides environment variable access.
type Env interface {
	Getenv(key string) string
}

// OSEnv reads the process environment.
type OSEnv struct{}

// Getenv implements Env.
func (OSEnv) Getenv(key string) string { return os.Getenv(key) }

// MapEnv is a fixed environment, used in tests and for augmented probes.
type MapEnv map[string]string

// Getenv implements Env.
func (m MapEnv) Getenv(key string) string { return m[key] }

// Host bundles the primitives discovery and validation depend on.
type Host struct {
	FS     afero.Fs
	Runner Runner
	Env    Env
	GOOS   string
	Home   string
}

// Local returns a Host backed by the real machine.
func Local() *Host {
	home, _ := os.UserHomeDir()
	return &Host{
		FS:     afero.NewOsFs(),
		Runner: NewExecRunner(),
		Env:    OSEnv{},
		GOOS:   runtime.GOOS,
		Home:   home,
	}
}

// IsDarwin reports whether the host is macOS.
func (h *Host) IsDarwin() bool { return h.GOOS == Darwin }

// IsWindows reports whether the host is Windows.
func (h *Host) IsWindows() bool { return h.GOOS == Windows }

// PathList splits the host's PATH variable.
func (h *Host) PathList() []string {
	return SplitPathList(h.GOOS, h.Env.Getenv("PATH"))
}

// PathListSeparator returns the PATH separator for goos.
func PathListSeparator(goos string) string {
	if goos == Windows {
		return ";"
	}
	return ":"
}

// SplitPathList splits a PATH value for goos, dropping empty entries.
func SplitPathList(goos, value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, PathListSeparator(goos))
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsAbs reports whether p is absolute on goos. Windows accepts drive-letter,
// UNC and rooted forms.
func IsAbs(goos, p string) bool {
	if p == "" {
		return false
	}
	if goos != Windows {
		return p[0] == '/'
	}
	if p[0] == '/' || p[0] == '\\' {
		return true
	}
	return len(p) >= 3 && isLetter(p[0]) && p[1] == ':' && (p[2] == '\\' || p[2] == '/')
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// PathKey normalizes p for deduplication. Windows paths compare
// case-insensitively and with either separator.
func PathKey(goos, p string) string {
	p = strings.TrimSpace(p)
	if goos == Windows {
		p = strings.ToLower(strings.ReplaceAll(p, "/", `\`))
		return strings.TrimRight(p, `\`)
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	return p
}
