// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"github.com/cpavlidis/nx-monorepo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec. Commands share the
// configured standard streams, which default to the process's own.
type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option configures an Executor.
type Option func(*Executor)

// WithStreams overrides the streams handed to child processes.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// NewExecutor creates a new Executor.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the command and waits for it to finish. There is no timeout;
// only cancellation of ctx stops a running command.
func (e *Executor) Run(ctx context.Context, c domain.Command) error {
	if c.Name == "" {
		return domain.ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...) //nolint:gosec // command comes from workspace configuration
	cmd.Dir = c.Dir
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		return zerr.With(
			zerr.With(zerr.Wrap(errors.Join(domain.ErrCommandFailed, err), c.String()), "exit_code", exitCode),
			"command", c.Name,
		)
	}

	return nil
}

// DryRunExecutor implements ports.Executor by announcing commands instead of
// running them.
type DryRunExecutor struct {
	reporter ports.Reporter
}

// NewDryRunExecutor creates a new DryRunExecutor.
func NewDryRunExecutor(reporter ports.Reporter) *DryRunExecutor {
	return &DryRunExecutor{reporter: reporter}
}

// Run reports the command line without executing it.
func (e *DryRunExecutor) Run(_ context.Context, c domain.Command) error {
	if c.Name == "" {
		return domain.ErrEmptyCommand
	}

	msg := "would run: " + c.String()
	if c.Dir != "" {
		msg += " (in " + c.Dir + ")"
	}
	e.reporter.Info(msg)

	return nil
}
