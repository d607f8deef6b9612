package doctor

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/thoreinstein/edfind/internal/discovery"
	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
)

func TestConfiguredEditorsCheck(t *testing.T) {
	h := newHost(t, host.Linux, map[string]os.FileMode{
		"/usr/bin/code":     0o755,
		"/opt/cursor/bin":   os.ModeDir | 0o755,
		"/opt/tools/myedit": 0o644,
	})

	tests := []struct {
		name        string
		editors     []editor.Config
		defaultID   string
		discovered  []editor.Config
		wantStatus  Severity
		wantIssues  int
		wantHintHas string
	}{
		{
			name:       "nothing configured",
			wantStatus: SeverityInfo,
		},
		{
			name:       "valid editor",
			editors:    []editor.Config{{ID: "vscode", ExecutablePath: "/usr/bin/code"}},
			wantStatus: SeverityPass,
		},
		{
			name:        "missing editor",
			editors:     []editor.Config{{ID: "cursor", ExecutablePath: "/opt/cursor/cursor"}},
			wantStatus:  SeverityError,
			wantIssues:  1,
			wantHintHas: "which cursor",
		},
		{
			name:        "directory instead of executable",
			editors:     []editor.Config{{ID: "cursor", ExecutablePath: "/opt/cursor/bin"}},
			wantStatus:  SeverityError,
			wantIssues:  1,
			wantHintHas: "inside the installation directory",
		},
		{
			name:       "not executable",
			editors:    []editor.Config{{ID: "mine", ExecutablePath: "/opt/tools/myedit"}},
			wantStatus: SeverityWarning,
			wantIssues: 1,
		},
		{
			name:       "type mismatch",
			editors:    []editor.Config{{ID: "cursor", ExecutablePath: "/usr/bin/code"}},
			wantStatus: SeverityWarning,
			wantIssues: 1,
		},
		{
			name:       "default is configured",
			editors:    []editor.Config{{ID: "vscode", ExecutablePath: "/usr/bin/code"}},
			defaultID:  "vscode",
			wantStatus: SeverityPass,
		},
		{
			name:       "default discovered",
			defaultID:  "windsurf",
			discovered: []editor.Config{editor.NewDiscovered("/usr/bin/windsurf")},
			wantStatus: SeverityPass,
		},
		{
			name:        "default missing",
			defaultID:   "windsurf",
			discovered:  []editor.Config{editor.NewDiscovered("/usr/bin/code")},
			wantStatus:  SeverityWarning,
			wantIssues:  1,
			wantHintHas: "default_editor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := discovererFunc(func(tier discovery.Tier) []editor.Config {
				if tier != discovery.Fast {
					t.Errorf("Discover tier = %q, want fast", tier)
				}
				return tt.discovered
			})

			result := NewConfiguredEditorsCheck(h, tt.editors, tt.defaultID, d).Run(context.Background())
			if result.Status != tt.wantStatus {
				t.Fatalf("Status = %v, want %v (%s)", result.Status, tt.wantStatus, result.Message)
			}

			var issues []map[string]any
			if v, ok := result.Details["issues"]; ok {
				issues = v.([]map[string]any)
			}
			if len(issues) != tt.wantIssues {
				t.Errorf("issues = %v, want %d", issues, tt.wantIssues)
			}
			if tt.wantHintHas != "" && !strings.Contains(result.FixHint, tt.wantHintHas) {
				t.Errorf("FixHint = %q, want it to contain %q", result.FixHint, tt.wantHintHas)
			}
		})
	}
}

func TestConfiguredEditorsCheck_NilDiscoverer(t *testing.T) {
	h := newHost(t, host.Linux, nil)

	result := NewConfiguredEditorsCheck(h, nil, "trae", nil).Run(context.Background())
	if result.Status != SeverityPass {
		t.Errorf("Status = %v, want pass when discovery is unavailable", result.Status)
	}
}

func TestConfiguredEditorsCheck_MasksArgs(t *testing.T) {
	h := newHost(t, host.Linux, nil)
	editors := []editor.Config{{
		ID:             "work",
		ExecutablePath: "/opt/work/code",
		CustomArgs:     []string{"--profile", "work", "--sync-token=abcdef123456"},
	}}

	result := NewConfiguredEditorsCheck(h, editors, "", nil).Run(context.Background())

	issues, ok := result.Details["issues"].([]map[string]any)
	if !ok || len(issues) != 1 {
		t.Fatalf("issues = %#v, want one", result.Details["issues"])
	}
	args, _ := issues[0]["args"].([]string)
	want := []string{"--profile", "work", "--sync-token=****3456"}
	if strings.Join(args, " ") != strings.Join(want, " ") {
		t.Errorf("args = %q, want %q", args, want)
	}
}
