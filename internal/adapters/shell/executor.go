// Package shell runs task descriptors as child processes.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/antscan/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec, attaching a PTY when enabled.
type Executor struct {
	logger ports.Logger
	usePTY bool
}

// NewExecutor creates a new Executor. With usePTY set, tasks run on a pseudo terminal
// so the build tool keeps its colours; hosts without PTY support fall back to pipes.
func NewExecutor(logger ports.Logger, usePTY bool) *Executor {
	return &Executor{
		logger: logger,
		usePTY: usePTY,
	}
}

// Execute runs the task's command line in its working directory and waits for it.
func (e *Executor) Execute(ctx context.Context, task *domain.Task, stdout, stderr io.Writer) error {
	if task.Execution.Command == "" {
		return zerr.With(domain.ErrEmptyCommand, "task", task.Name)
	}
	argv := task.Execution.Argv()

	e.logger.Debug("running " + task.Execution.String() + " in " + task.Execution.Options.Cwd)

	var err error
	if e.usePTY {
		err = runPTY(ctx, argv, task.Execution.Options.Cwd, stdout)
		if errors.Is(err, pty.ErrUnsupported) {
			e.logger.Debug("pty unsupported on this host, using pipes")
			err = runPipes(ctx, argv, task.Execution.Options.Cwd, stdout, stderr)
		}
	} else {
		err = runPipes(ctx, argv, task.Execution.Options.Cwd, stdout, stderr)
	}

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.Wrap(err, domain.ErrTaskExecutionFailed.Error())
		err = zerr.With(err, "task", task.Name)
		return zerr.With(err, "exit_code", exitCode)
	}
	return nil
}

func command(ctx context.Context, argv []string, dir string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // command comes from the task descriptor
	cmd.Dir = dir
	cmd.Env = os.Environ()
	return cmd
}

func runPipes(ctx context.Context, argv []string, dir string, stdout, stderr io.Writer) error {
	cmd := command(ctx, argv, dir)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// runPTY merges stdout and stderr, as a terminal would.
func runPTY(ctx context.Context, argv []string, dir string, stdout io.Writer) error {
	cmd := command(ctx, argv, dir)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the master returns EIO once the child side closes.
		_, _ = io.Copy(stdout, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone
	_ = ptmx.Close()
	return err
}
