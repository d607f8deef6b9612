package host

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/cockroachdb/errors"
)

// DefaultProbeTimeout bounds a single command-resolution probe.
const DefaultProbeTimeout = 2 * time.Second

// ErrTimeout is returned when a command does not exit within its bound.
var ErrTimeout = errors.New("command timeout")

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	// Env entries (KEY=VALUE) override the inherited environment.
	Env []string
	// Timeout bounds the wait; zero means DefaultProbeTimeout.
	Timeout time.Duration
}

// Output is the captured result of a finished command.
type Output struct {
	Stdout   string
	ExitCode int
}

// Runner spawns a process and waits for it with a bounded wait.
// A non-zero exit is reported through Output.ExitCode, not as an error;
// errors mean the process could not be started or did not finish in time.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Output, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner returns the os/exec backed Runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, c Command) (Output, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	// Children that inherit stdout must not hold Wait open past the kill.
	cmd.WaitDelay = 250 * time.Millisecond

	err := cmd.Run()
	if ctx.Err() != nil {
		return Output{}, errors.Wrapf(ErrTimeout, "%s after %s", c.Name, timeout)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Output{Stdout: stdout.String(), ExitCode: exitErr.ExitCode()}, nil
		}
		return Output{}, errors.Wrapf(err, "running %s", c.Name)
	}

	return Output{Stdout: stdout.String()}, nil
}
