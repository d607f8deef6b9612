package editor

import (
	"slices"
	"testing"
)

func TestDetectFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Type
	}{
		{"/usr/bin/code", VSCode},
		{`C:\Users\dev\AppData\Local\Programs\Microsoft VS Code\Code.exe`, VSCode},
		{"/Applications/Visual Studio Code.app/Contents/MacOS/Electron", VSCode},
		{"/Applications/Cursor.app/Contents/MacOS/Cursor", Cursor},
		{"/usr/local/bin/cursor", Cursor},
		{"/opt/Windsurf/bin/windsurf", Windsurf},
		{"/Applications/Antigravity.app", Antigravity},
		{`D:\CatPaw\CatPaw.exe`, CatPaw},
		{"/usr/bin/trae", Trae},
		{"/usr/bin/vim", Custom},
		{"", Custom},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectFromPath(tt.path); got != tt.want {
				t.Errorf("DetectFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestDetectFromPath_ExactlyOneType(t *testing.T) {
	paths := []string{"/usr/bin/code", "/usr/bin/cursor", "/opt/windsurf/windsurf", "/usr/bin/nano"}
	for _, p := range paths {
		detected := DetectFromPath(p)
		if detected == Custom {
			continue
		}
		if !detected.Matches(p) {
			t.Errorf("DetectFromPath(%q) = %q but %q.Matches() is false", p, detected, detected)
		}
	}
}

func TestType_Metadata(t *testing.T) {
	if VSCode.DisplayName() != "Visual Studio Code" {
		t.Errorf("VSCode.DisplayName() = %q", VSCode.DisplayName())
	}
	if Custom.DisplayName() != "Custom Editor" {
		t.Errorf("Custom.DisplayName() = %q", Custom.DisplayName())
	}
	if Custom.Matches("/usr/bin/custom") {
		t.Error("Custom should match nothing")
	}
	if Custom.Commands() != nil {
		t.Error("Custom should have no commands")
	}

	want := []string{"code", "cursor", "windsurf", "antigravity", "catpaw", "trae"}
	if got := Commands(); !slices.Equal(got, want) {
		t.Errorf("Commands() = %v, want %v", got, want)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		id     string
		want   Type
		wantOK bool
	}{
		{"cursor", Cursor, true},
		{" VSCode ", VSCode, true},
		{"custom", Custom, true},
		{"sublime", Type("sublime"), false},
	}
	for _, tt := range tests {
		got, ok := ParseType(tt.id)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseType(%q) = (%q, %v), want (%q, %v)", tt.id, got, ok, tt.want, tt.wantOK)
		}
	}
}
