// Package adapter implements the external collaborators of the grading
// engine: process execution, the build toolchain, the test runner and
// the result sink.
package adapter

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"golang.org/x/sync/errgroup"
)

// ExecResult captures one finished (or timed out) external process.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
}

// CommandRunner abstracts external process execution so the pipeline is
// testable without spawning anything.
type CommandRunner interface {
	// Run executes name with args in dir, bounded by ctx. A non-zero
	// exit is reported through ExecResult, not the error; the error is
	// reserved for failures to start or to read the output streams.
	Run(ctx context.Context, dir, name string, args ...string) (ExecResult, error)
}

// LocalCommandRunner executes commands on the local host via os/exec.
type LocalCommandRunner struct{}

// NewLocalCommandRunner constructs a LocalCommandRunner.
func NewLocalCommandRunner() *LocalCommandRunner {
	return &LocalCommandRunner{}
}

// Run executes the command, draining stdout and stderr concurrently so
// neither pipe can block the process.
func (r *LocalCommandRunner) Run(ctx context.Context, dir, name string, args ...string) (ExecResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return ExecResult{}, err
	}

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return ExecResult{}, err
	}

	if err := cmd.Start(); err != nil {
		return ExecResult{}, err
	}

	var stdout, stderr []byte

	var group errgroup.Group

	group.Go(func() error {
		var readErr error
		stdout, readErr = io.ReadAll(stdoutPipe)

		return readErr
	})

	group.Go(func() error {
		var readErr error
		stderr, readErr = io.ReadAll(stderrPipe)

		return readErr
	})

	readErr := group.Wait()
	waitErr := cmd.Wait()

	result := ExecResult{
		Stdout:   string(stdout),
		Stderr:   string(stderr),
		TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
	}

	if readErr != nil {
		return result, readErr
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}

		return result, waitErr
	}

	return result, nil
}
