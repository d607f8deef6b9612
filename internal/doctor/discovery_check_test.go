package doctor

import (
	"context"
	"testing"

	"github.com/thoreinstein/edfind/internal/discovery"
	"github.com/thoreinstein/edfind/internal/editor"
)

func TestEditorDiscoveryCheck(t *testing.T) {
	t.Run("editors found", func(t *testing.T) {
		var gotTier discovery.Tier
		d := discovererFunc(func(tier discovery.Tier) []editor.Config {
			gotTier = tier
			return []editor.Config{
				editor.NewDiscovered("/usr/bin/code"),
				editor.NewDiscovered("/home/dev/.local/bin/cursor"),
			}
		})

		c := NewEditorDiscoveryCheck(d, "/home/dev")
		result := c.Run(context.Background())

		if gotTier != discovery.Comprehensive {
			t.Errorf("Discover tier = %q, want comprehensive", gotTier)
		}
		if result.Status != SeverityPass {
			t.Errorf("Status = %v, want pass", result.Status)
		}
		if result.Message != "2 editor(s) found" {
			t.Errorf("Message = %q", result.Message)
		}
		found := result.Details["editors"].([]map[string]any)
		if found[1]["path"] != "~/.local/bin/cursor" {
			t.Errorf("path = %v, want home redacted", found[1]["path"])
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		d := discovererFunc(func(discovery.Tier) []editor.Config { return nil })

		result := NewEditorDiscoveryCheck(d, "").Run(context.Background())
		if result.Status != SeverityWarning {
			t.Errorf("Status = %v, want warning", result.Status)
		}
		if result.FixHint == "" {
			t.Error("expected a fix hint")
		}
	})
}

func TestEditorDiscoveryCheck_Identity(t *testing.T) {
	c := NewEditorDiscoveryCheck(nil, "")
	if c.Name() != "editor-discovery" || c.Category() != "discovery" {
		t.Errorf("Name/Category = %q/%q", c.Name(), c.Category())
	}
}
