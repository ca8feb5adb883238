// Package shell provides the process executor adapter.
package shell

import (
	"context"
	"io"
	"os/exec"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Executor implements ports.Executor using os/exec.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Run starts the command and waits for it to finish.
//
// Child output is streamed to the provided writers verbatim; the runner
// attaches no meaning to it. The pipes are pumped explicitly so that a
// context cancellation kills the process and Run still returns once the
// remaining buffered output has been drained.
func (e *Executor) Run(ctx context.Context, command *domain.Command, stdout, stderr io.Writer) error {
	if len(command.Argv) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, command.Argv[0], command.Argv[1:]...) //nolint:gosec // user provided command
	cmd.Dir = command.Dir
	cmd.Env = command.Env

	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stdout pipe")
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		startErr := zerr.Wrap(err, "failed to start command")
		return zerr.With(startErr, "argv", command.Argv)
	}

	var g errgroup.Group
	g.Go(func() error {
		_, copyErr := io.Copy(stdout, outPipe)
		return copyErr
	})
	g.Go(func() error {
		_, copyErr := io.Copy(stderr, errPipe)
		return copyErr
	})

	// Drain before Wait: Wait closes the pipes.
	pumpErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		exitCode := -1 // Unknown or signal
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		failErr := zerr.Wrap(err, domain.ErrCommandFailed.Error())
		failErr = zerr.With(failErr, "argv", command.Argv)
		return zerr.With(failErr, "exit_code", exitCode)
	}

	return pumpErr
}
