package editor

import "strings"

// AppMetadata is what an application scan learns about an installation
// before it is turned into a Config.
type AppMetadata struct {
	AppName         string
	AppPath         string
	ExecutablePath  string
	Version         string
	BundleID        string
	DisplayName     string
	Description     string
	InstallLocation string
}

// DetectEditorType detects the type from the most specific field first:
// bundle id, application name, display name, then the executable path.
func (m AppMetadata) DetectEditorType() Type {
	candidates := []string{m.BundleID, m.AppName, m.DisplayName, m.AppPath, m.ExecutablePath}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if t := DetectFromPath(c); t != Custom {
			return t
		}
	}
	return Custom
}

// ToConfig converts the metadata into an auto-discovered Config.
// exists reports whether the executable is present; a missing executable
// yields false.
func (m AppMetadata) ToConfig(exists func(string) bool) (Config, bool) {
	if m.ExecutablePath == "" || (exists != nil && !exists(m.ExecutablePath)) {
		return Config{}, false
	}

	t := m.DetectEditorType()
	cfg := Config{
		ID:               t.ID(),
		DisplayName:      t.DisplayName(),
		ExecutablePath:   m.ExecutablePath,
		Version:          m.Version,
		IsAutoDiscovered: true,
	}
	if t == Custom {
		cfg.ID = slug(firstNonEmpty(m.AppName, m.DisplayName))
		cfg.DisplayName = firstNonEmpty(m.DisplayName, m.AppName)
	}
	return cfg, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// slug lower-cases s and replaces runs of non-alphanumerics with "-".
func slug(s string) string {
	s = strings.TrimSuffix(strings.ToLower(s), ".app")
	var b strings.Builder
	dash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return Custom.ID()
	}
	return out
}
