package appdir

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/thoreinstein/edfind/internal/host"
	"github.com/thoreinstein/edfind/internal/host/mocks"
	"github.com/thoreinstein/edfind/internal/logging"
)

const vscodePlist = `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>CFBundleDisplayName</key>
	<string>Code</string>
	<key>CFBundleExecutable</key>
	<string>Electron</string>
	<key>CFBundleIdentifier</key>
	<string>com.microsoft.VSCode</string>
	<key>CFBundleShortVersionString</key>
	<string>1.95.3</string>
</dict>
</plist>`

func TestDarwin_CursorWithoutPath(t *testing.T) {
	h := newHost(t, host.Darwin, nil, nil, map[string]file{
		"/Applications/Cursor.app/Contents/MacOS/Cursor": exe(),
	})

	got := NewDarwin(h, WithLogger(logging.ForTest(t))).DiscoverEditors(context.Background())
	if len(got) != 1 {
		t.Fatalf("DiscoverEditors() = %+v, want one editor", got)
	}
	cfg := got[0]
	if cfg.ID != "cursor" || !cfg.IsAutoDiscovered || !strings.HasSuffix(cfg.ExecutablePath, "/Contents/MacOS/Cursor") {
		t.Errorf("DiscoverEditors()[0] = %+v", cfg)
	}
}

func TestDarwin_ScanApplications(t *testing.T) {
	h := newHost(t, host.Darwin, nil, nil, map[string]file{
		"/Applications/Visual Studio Code.app/Contents/MacOS/Electron":  exe(),
		"/Applications/Visual Studio Code.app/Contents/Info.plist":      text(vscodePlist),
		"/Applications/Safari.app/Contents/MacOS/Safari":                exe(),
		"/Applications/Trae.app/Contents/Resources/trae.icns":           text("icon"),
		"/Applications/XcodeTool.app/Contents/MacOS/XcodeTool":          exe(),
		"/home/dev/Applications/Windsurf.app/Contents/MacOS/Windsurf":   exe(),
		"/home/dev/Applications/Windsurf.app/Contents/MacOS/helper.txt": text("x"),
	})

	got := NewDarwin(h).DiscoverEditors(context.Background())
	want := []string{
		"/Applications/Visual Studio Code.app/Contents/MacOS/Electron",
		"/home/dev/Applications/Windsurf.app/Contents/MacOS/Windsurf",
	}
	if !slices.Equal(paths(got), want) {
		t.Fatalf("DiscoverEditors() paths = %v, want %v", paths(got), want)
	}
	if got[0].ID != "vscode" || got[0].Version != "1.95.3" {
		t.Errorf("vscode config = %+v, want id vscode version 1.95.3", got[0])
	}
	if got[1].ID != "windsurf" {
		t.Errorf("windsurf config = %+v", got[1])
	}
}

func TestDarwin_Spotlight(t *testing.T) {
	runner := mocks.NewRunner(t)
	runner.OnCommand("mdfind", SpotlightQuery).Return(host.Output{
		Stdout: "/Applications/Cursor.app\n/Volumes/Work/Apps/Trae.app\n/Volumes/Work/Apps/Notes.app\n",
	}, nil)

	h := newHost(t, host.Darwin, runner, nil, map[string]file{
		"/Applications/Cursor.app/Contents/MacOS/Cursor":    exe(),
		"/Volumes/Work/Apps/Trae.app/Contents/MacOS/Trae":   exe(),
		"/Volumes/Work/Apps/Notes.app/Contents/MacOS/Notes": exe(),
	})

	got := NewDarwin(h, WithSpotlight(true)).DiscoverEditors(context.Background())
	want := []string{
		"/Applications/Cursor.app/Contents/MacOS/Cursor",
		"/Volumes/Work/Apps/Trae.app/Contents/MacOS/Trae",
	}
	if !slices.Equal(paths(got), want) {
		t.Errorf("DiscoverEditors() paths = %v, want %v", paths(got), want)
	}
}

func TestDarwin_SpotlightFailure(t *testing.T) {
	runner := mocks.NewRunner(t)
	runner.OnCommand("mdfind", SpotlightQuery).Return(host.Output{}, host.ErrTimeout)

	h := newHost(t, host.Darwin, runner, nil, map[string]file{
		"/Applications/Cursor.app/Contents/MacOS/Cursor": exe(),
	})
	if got := NewDarwin(h, WithSpotlight(true)).DiscoverEditors(context.Background()); len(got) != 1 {
		t.Errorf("DiscoverEditors() = %v, want the scanned bundle only", paths(got))
	}
}

func TestParseInfoPlist(t *testing.T) {
	info := ParseInfoPlist(vscodePlist)
	if info.BundleID != "com.microsoft.VSCode" || info.DisplayName != "Code" || info.Version != "1.95.3" {
		t.Errorf("ParseInfoPlist() = %+v", info)
	}

	fallback := ParseInfoPlist(`<key>CFBundleName</key> <string>Cursor</string>
<key>CFBundleVersion</key>
	<string>0.42</string>`)
	if fallback.DisplayName != "Cursor" || fallback.Version != "0.42" || fallback.BundleID != "" {
		t.Errorf("ParseInfoPlist(fallback) = %+v", fallback)
	}

	if empty := ParseInfoPlist("not a plist"); empty != (BundleInfo{}) {
		t.Errorf("ParseInfoPlist(garbage) = %+v, want zero", empty)
	}
}
