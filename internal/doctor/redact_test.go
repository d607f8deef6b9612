package doctor

import (
	"slices"
	"testing"
)

func TestShouldMask(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"--api-token", true},
		{"--github_token", true},
		{"--license-key", true},
		{"--secret", true},
		{"--password", true},
		{"--auth", true},
		{"--private", true},

		{"--new-window", false},
		{"--profile", false},
		{"--goto", false},
		{"--user-data-dir", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := ShouldMask(tt.key); got != tt.want {
				t.Errorf("ShouldMask(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestMaskValue(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"", "********"},
		{"abcd", "********"},
		{"abcde", "****bcde"},
		{"ghp_1234567890", "****7890"},
	}
	for _, tt := range tests {
		if got := MaskValue(tt.value); got != tt.want {
			t.Errorf("MaskValue(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestMaskArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"nil", nil, nil},
		{"plain", []string{"--new-window", "--profile", "work"}, []string{"--new-window", "--profile", "work"}},
		{"assigned secret", []string{"--api-token=abcdef123"}, []string{"--api-token=****f123"}},
		{"separate secret", []string{"--password", "hunter22", "--wait"}, []string{"--password", "****er22", "--wait"}},
		{"bare flag followed by flag", []string{"--auth", "--wait"}, []string{"--auth", "--wait"}},
		{"token value", []string{"--header=ghp_abcdefgh"}, []string{"--header=****efgh"}},
		{"token positional", []string{"sk-abcdefgh"}, []string{"****efgh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskArgs(tt.args); !slices.Equal(got, tt.want) {
				t.Errorf("MaskArgs(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestMaskArgs_DoesNotModifyInput(t *testing.T) {
	args := []string{"--token=abcdefgh"}
	MaskArgs(args)
	if args[0] != "--token=abcdefgh" {
		t.Errorf("input modified: %q", args[0])
	}
}

func TestRedactHome(t *testing.T) {
	tests := []struct {
		path string
		home string
		want string
	}{
		{"/home/dev/.local/bin/code", "/home/dev", "~/.local/bin/code"},
		{"/home/dev", "/home/dev/", "~"},
		{"/home/developer/code", "/home/dev", "/home/developer/code"},
		{`C:\Users\dev\AppData\code.exe`, `C:\Users\dev`, `~\AppData\code.exe`},
		{"/usr/bin/code", "", "/usr/bin/code"},
		{"", "/home/dev", ""},
	}
	for _, tt := range tests {
		if got := RedactHome(tt.path, tt.home); got != tt.want {
			t.Errorf("RedactHome(%q, %q) = %q, want %q", tt.path, tt.home, got, tt.want)
		}
	}
}

func TestContainsTokenPrefix(t *testing.T) {
	if !ContainsTokenPrefix("xoxb-123") {
		t.Error("expected slack token to match")
	}
	if ContainsTokenPrefix("skip") {
		t.Error("unexpected match for skip")
	}
}
