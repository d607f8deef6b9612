package doctor

import (
	"context"
	"os"
	"testing"

	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
)

func modeOf(t *testing.T, h *host.Host, path string) os.FileMode {
	t.Helper()
	info, err := h.FS.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	return info.Mode().Perm()
}

func TestExecutablePermissionCheck(t *testing.T) {
	h := newHost(t, host.Linux, map[string]os.FileMode{
		"/usr/bin/code":     0o755,
		"/opt/bad/cursor":   0o646,
		"/opt/open/trae":    0o777,
		"/opt/cursor":       os.ModeDir | 0o755,
		"/opt/noexec/agent": 0o644,
	})

	tests := []struct {
		name        string
		editors     []editor.Config
		wantStatus  Severity
		wantIssues  int
		wantChecked int
		wantFixable bool
	}{
		{
			name:        "clean",
			editors:     []editor.Config{{ID: "vscode", ExecutablePath: "/usr/bin/code"}},
			wantStatus:  SeverityPass,
			wantChecked: 1,
		},
		{
			name:        "world-writable",
			editors:     []editor.Config{{ID: "trae", ExecutablePath: "/opt/open/trae"}},
			wantStatus:  SeverityWarning,
			wantIssues:  1,
			wantChecked: 1,
			wantFixable: true,
		},
		{
			name:        "not executable",
			editors:     []editor.Config{{ID: "agent", ExecutablePath: "/opt/noexec/agent"}},
			wantStatus:  SeverityError,
			wantIssues:  1,
			wantChecked: 1,
			wantFixable: true,
		},
		{
			name:        "both problems",
			editors:     []editor.Config{{ID: "cursor", ExecutablePath: "/opt/bad/cursor"}},
			wantStatus:  SeverityError,
			wantIssues:  2,
			wantChecked: 1,
			wantFixable: true,
		},
		{
			name: "missing, directory and bundle skipped",
			editors: []editor.Config{
				{ID: "gone", ExecutablePath: "/opt/gone/code"},
				{ID: "cursor", ExecutablePath: "/opt/cursor"},
				{ID: "cursor", ExecutablePath: "/Applications/Cursor.app"},
				{ID: "blank"},
			},
			wantStatus: SeverityPass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewExecutablePermissionCheck(h, tt.editors)
			result := c.Run(context.Background())

			if result.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v (%s)", result.Status, tt.wantStatus, result.Message)
			}
			if result.Fixable != tt.wantFixable {
				t.Errorf("Fixable = %v, want %v", result.Fixable, tt.wantFixable)
			}
			if c.CountFixable() != tt.wantIssues {
				t.Errorf("CountFixable() = %d, want %d", c.CountFixable(), tt.wantIssues)
			}
			if tt.wantIssues > 0 {
				if got := result.Details["checked_paths"]; got != tt.wantChecked {
					t.Errorf("checked_paths = %v, want %d", got, tt.wantChecked)
				}
			}
		})
	}
}

func TestExecutablePermissionCheck_Fix(t *testing.T) {
	h := newHost(t, host.Linux, map[string]os.FileMode{
		"/opt/bad/cursor": 0o646,
	})
	editors := []editor.Config{{ID: "cursor", ExecutablePath: "/opt/bad/cursor"}}

	c := NewExecutablePermissionCheck(h, editors)
	c.Run(context.Background())
	if !c.CanFix() {
		t.Fatal("CanFix() = false, want true")
	}

	results := c.Fix()
	if len(results) != 2 {
		t.Fatalf("Fix() returned %d results, want 2", len(results))
	}
	for _, r := range results {
		if !r.Fixed || r.Error != nil {
			t.Errorf("Fix() result %+v, want fixed", r)
		}
	}
	if got := modeOf(t, h, "/opt/bad/cursor"); got != 0o755 {
		t.Errorf("mode after fix = %04o, want 0755", got)
	}

	rerun := NewExecutablePermissionCheck(h, editors).Run(context.Background())
	if rerun.Status != SeverityPass {
		t.Errorf("Status after fix = %v, want pass", rerun.Status)
	}
}

func TestPermissionFixer_Errors(t *testing.T) {
	h := newHost(t, host.Linux, map[string]os.FileMode{"/usr/bin/code": 0o755})

	f := &PermissionFixer{fs: h.FS}
	f.setIssues([]pathIssue{
		{Path: "/usr/bin/code", Problem: "strange", Fixable: true},
		{Path: "/missing", Problem: problemNotExecutable, Fixable: true},
		{Path: "/usr/bin/code", Problem: problemNotExecutable, Fixable: false},
	})

	results := f.Fix()
	if len(results) != 2 {
		t.Fatalf("Fix() returned %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Fixed || r.Error == nil {
			t.Errorf("Fix() result %+v, want failure", r)
		}
	}
}

func TestExecutablePermissionCheck_Windows(t *testing.T) {
	h := newHost(t, host.Windows, map[string]os.FileMode{"/win/code.exe": 0o666})

	c := NewExecutablePermissionCheck(h, []editor.Config{{ID: "vscode", ExecutablePath: "/win/code.exe"}})
	result := c.Run(context.Background())
	if result.Status != SeverityInfo {
		t.Errorf("Status = %v, want info", result.Status)
	}
	if c.CanFix() {
		t.Error("CanFix() = true on windows")
	}
}
