package editor

import (
	"slices"
	"testing"
)

func TestConfig_IsValid(t *testing.T) {
	if (Config{ExecutablePath: "  "}).IsValid() {
		t.Error("blank path should be invalid")
	}
	if !(Config{ExecutablePath: "/usr/bin/code"}).IsValid() {
		t.Error("non-blank path should be valid")
	}
}

func TestNewDiscovered(t *testing.T) {
	cfg := NewDiscovered("/usr/local/bin/cursor")
	if cfg.ID != "cursor" || cfg.DisplayName != "Cursor" || !cfg.IsAutoDiscovered {
		t.Errorf("NewDiscovered() = %+v", cfg)
	}

	custom := NewDiscovered("/opt/editors/zed")
	if custom.ID != "custom" || custom.DisplayName != "zed" {
		t.Errorf("NewDiscovered(custom) = %+v", custom)
	}
}

func TestConfig_Type(t *testing.T) {
	if got := (Config{ID: "windsurf", ExecutablePath: "/x/y"}).Type(); got != Windsurf {
		t.Errorf("Type() = %q, want windsurf", got)
	}
	if got := (Config{ID: "work-editor", ExecutablePath: "/opt/cursor/bin/cursor"}).Type(); got != Cursor {
		t.Errorf("Type() = %q, want cursor", got)
	}
}

func TestAppMetadata_ToConfig(t *testing.T) {
	exists := func(p string) bool { return p == "/Applications/Cursor.app/Contents/MacOS/Cursor" }

	cfg, ok := AppMetadata{
		AppName:        "Cursor.app",
		AppPath:        "/Applications/Cursor.app",
		ExecutablePath: "/Applications/Cursor.app/Contents/MacOS/Cursor",
		Version:        "0.42.3",
	}.ToConfig(exists)
	if !ok {
		t.Fatal("ToConfig() returned false")
	}
	if cfg.ID != "cursor" || cfg.Version != "0.42.3" || !cfg.IsAutoDiscovered {
		t.Errorf("ToConfig() = %+v", cfg)
	}

	if _, ok := (AppMetadata{AppName: "Cursor.app", ExecutablePath: "/gone"}).ToConfig(exists); ok {
		t.Error("ToConfig() should reject a missing executable")
	}
}

func TestAppMetadata_DetectEditorType(t *testing.T) {
	m := AppMetadata{BundleID: "com.microsoft.VSCode", AppName: "Electron", ExecutablePath: "/x/Electron"}
	if got := m.DetectEditorType(); got != VSCode {
		t.Errorf("DetectEditorType() = %q, want vscode", got)
	}

	custom, ok := AppMetadata{AppName: "My Editor.app", ExecutablePath: "/x/edit"}.ToConfig(nil)
	if !ok || custom.ID != "my-editor" || custom.DisplayName != "My Editor.app" {
		t.Errorf("ToConfig(custom) = %+v, %v", custom, ok)
	}
}

func TestLaunchArgs(t *testing.T) {
	tests := []struct {
		name   string
		typ    Type
		target string
		pos    Position
		custom []string
		want   []string
	}{
		{"plain", Cursor, "main.go", Position{}, nil, []string{"main.go"}},
		{"line", VSCode, "main.go", Position{Line: 12}, nil, []string{"--goto", "main.go:12"}},
		{"line and column", Trae, "main.go", Position{Line: 12, Column: 4}, nil, []string{"--goto", "main.go:12:4"}},
		{"custom args first", Windsurf, "a.txt", Position{Line: 1}, []string{"--new-window"}, []string{"--new-window", "--goto", "a.txt:1"}},
		{"custom editor ignores position", Custom, "a.txt", Position{Line: 3}, nil, []string{"a.txt"}},
		{"no target", Cursor, "", Position{Line: 3}, []string{"-n"}, []string{"-n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LaunchArgs(tt.typ, tt.target, tt.pos, tt.custom); !slices.Equal(got, tt.want) {
				t.Errorf("LaunchArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}
