package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"

	"github.com/thoreinstein/edfind/internal/discovery"
	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
	"github.com/thoreinstein/edfind/internal/host/mocks"
)

// mockCheck is a testify mock of Check.
type mockCheck struct {
	mock.Mock
}

func newMockCheck(t *testing.T, name string) *mockCheck {
	m := &mockCheck{}
	m.Test(t)
	m.On("Name").Return(name).Maybe()
	m.On("Category").Return("test").Maybe()
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockCheck) Name() string     { return m.Called().String(0) }
func (m *mockCheck) Category() string { return m.Called().String(0) }

func (m *mockCheck) Run(ctx context.Context) *CheckResult {
	return m.Called(ctx).Get(0).(*CheckResult)
}

// discovererFunc adapts a function to Discoverer.
type discovererFunc func(tier discovery.Tier) []editor.Config

func (f discovererFunc) Discover(_ context.Context, tier discovery.Tier) []editor.Config {
	return f(tier)
}

// newHost returns a host whose filesystem holds files with the given modes.
func newHost(t *testing.T, goos string, files map[string]os.FileMode) *host.Host {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for path, mode := range files {
		if mode.IsDir() {
			if err := fsys.MkdirAll(path, mode.Perm()); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := afero.WriteFile(fsys, path, []byte("#!/bin/sh\n"), mode); err != nil {
			t.Fatal(err)
		}
		// Chmod applies the exact bits regardless of umask.
		if err := fsys.Chmod(path, mode); err != nil {
			t.Fatal(err)
		}
	}
	return &host.Host{
		FS:     fsys,
		Runner: mocks.NewRunner(t),
		Env:    host.MapEnv{"PATH": "/usr/bin"},
		GOOS:   goos,
		Home:   "/home/dev",
	}
}
