package doctor

import (
	"context"
	"fmt"

	"github.com/thoreinstein/edfind/internal/discovery/appdir"
	"github.com/thoreinstein/edfind/internal/discovery/resolve"
	"github.com/thoreinstein/edfind/internal/host"
)

// HostCheck reports which discovery sources support the current operating
// system.
type HostCheck struct {
	goos       string
	strategies []resolve.Strategy
	services   []appdir.Service
}

var _ Check = (*HostCheck)(nil)

// NewHostCheck creates a host check over the default discovery sources.
func NewHostCheck(h *host.Host) *HostCheck {
	return &HostCheck{
		goos:       h.GOOS,
		strategies: resolve.All(h),
		services:   appdir.All(h),
	}
}

// Name returns the unique identifier for this check.
func (c *HostCheck) Name() string {
	return "host-support"
}

// Category returns the grouping for this check.
func (c *HostCheck) Category() string {
	return "discovery"
}

// Run lists the supported strategies and services.
func (c *HostCheck) Run(_ context.Context) *CheckResult {
	var strategies, services []string
	for _, s := range c.strategies {
		if s.IsSupported() {
			strategies = append(strategies, s.Name())
		}
	}
	for _, s := range c.services {
		if s.IsSupported() {
			services = append(services, s.Name())
		}
	}

	if len(strategies) == 0 && len(services) == 0 {
		result := newResult(c, SeverityWarning, fmt.Sprintf("editor discovery is not supported on %s", c.goos))
		result.Details["os"] = c.goos
		result.FixHint = "add editors manually under editors: in the config file"
		return result
	}

	result := newResult(c, SeverityPass, fmt.Sprintf("%s: %d strategy(ies), %d application service(s)", c.goos, len(strategies), len(services)))
	result.Details["os"] = c.goos
	result.Details["strategies"] = strategies
	result.Details["services"] = services
	return result
}
