package editor

import "testing"

func TestIsKnownEditorName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Visual Studio Code.app", true},
		{"visual studio code - insiders.app", true},
		{"com.microsoft.vscode", true},
		{"vscode-insiders", true},
		{"code", true},
		{"Code.exe", true},
		{"/usr/bin/code", true},
		{`C:\Program Files\Microsoft VS Code\Code.exe`, true},
		{"cursor-nightly", true},
		{"Cursor.app", true},
		{"Windsurf", true},
		{"Antigravity.exe", true},
		{"CatPaw.app", true},
		{"Trae CN.app", true},

		{"my-code-tool.exe", false},
		{"findinput.exe", false},
		{"/usr/bin/findinputcode", false},
		{`C:\tools\code`, false},
		{"/opt/tool/code", false},
		{"xcode", false},
		{"Xcode.app", false},
		{"vscodium", false},
		{"/usr/bin/codium", false},
		{"codeblocks", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKnownEditorName(tt.name); got != tt.want {
				t.Errorf("IsKnownEditorName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
