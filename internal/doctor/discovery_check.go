package doctor

import (
	"context"
	"fmt"

	"github.com/thoreinstein/edfind/internal/discovery"
	"github.com/thoreinstein/edfind/internal/editor"
)

// Discoverer runs editor discovery. *discovery.Engine satisfies it.
type Discoverer interface {
	Discover(ctx context.Context, tier discovery.Tier) []editor.Config
}

// EditorDiscoveryCheck reports the editors found by a comprehensive
// discovery run.
type EditorDiscoveryCheck struct {
	discoverer Discoverer
	home       string
}

var _ Check = (*EditorDiscoveryCheck)(nil)

// NewEditorDiscoveryCheck creates a discovery check. home is used to shorten
// reported paths and may be empty.
func NewEditorDiscoveryCheck(d Discoverer, home string) *EditorDiscoveryCheck {
	return &EditorDiscoveryCheck{discoverer: d, home: home}
}

// Name returns the unique identifier for this check.
func (c *EditorDiscoveryCheck) Name() string {
	return "editor-discovery"
}

// Category returns the grouping for this check.
func (c *EditorDiscoveryCheck) Category() string {
	return "discovery"
}

// Run executes the discovery and summarizes the result.
func (c *EditorDiscoveryCheck) Run(ctx context.Context) *CheckResult {
	editors := c.discoverer.Discover(ctx, discovery.Comprehensive)

	found := make([]map[string]any, 0, len(editors))
	for _, e := range editors {
		found = append(found, map[string]any{
			"id":   e.ID,
			"name": e.DisplayName,
			"path": RedactHome(e.ExecutablePath, c.home),
		})
	}

	if len(editors) == 0 {
		result := newResult(c, SeverityWarning, "no editors found")
		result.Details["editors"] = found
		result.FixHint = "install a VS Code-family editor, or add one under editors: in the config file"
		return result
	}

	result := newResult(c, SeverityPass, fmt.Sprintf("%d editor(s) found", len(editors)))
	result.Details["editors"] = found
	return result
}
