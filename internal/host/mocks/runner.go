// Package mocks provides testify mocks for the host primitives.
package mocks

import (
	"context"
	"slices"

	"github.com/stretchr/testify/mock"

	"github.com/thoreinstein/edfind/internal/host"
)

// Runner is a testify mock of host.Runner.
type Runner struct {
	mock.Mock
}

var _ host.Runner = (*Runner)(nil)

// NewRunner creates a Runner whose expectations are asserted on cleanup.
func NewRunner(t interface {
	mock.TestingT
	Cleanup(func())
}) *Runner {
	m := &Runner{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Run implements host.Runner.
func (m *Runner) Run(ctx context.Context, cmd host.Command) (host.Output, error) {
	args := m.Called(ctx, cmd)
	out, _ := args.Get(0).(host.Output)
	return out, args.Error(1)
}

// OnCommand registers an expectation for a command name and exact args.
func (m *Runner) OnCommand(name string, args ...string) *mock.Call {
	return m.On("Run", mock.Anything, mock.MatchedBy(func(c host.Command) bool {
		return c.Name == name && slices.Equal(c.Args, args)
	}))
}

// OnAnyCommand registers a fallback for every other invocation. Register it
// after the specific expectations.
func (m *Runner) OnAnyCommand() *mock.Call {
	return m.On("Run", mock.Anything, mock.Anything).Maybe()
}
