package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// ErrNotFound is returned by runners when a command's executable
// could not be found or started.
var ErrNotFound = errors.New("toolchain: executable not found")

// Command is a single process invocation.
type Command struct {
	// Name is the executable name or path.
	Name string
	// Args are the arguments, without the executable name.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds extra KEY=value pairs added to the inherited environment.
	Env []string
	// Stdout and Stderr receive the process output. Nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Outcome is the result of a process that ran to completion.
type Outcome struct {
	ExitCode int
}

// Success reports whether the process exited with status zero.
func (o Outcome) Success() bool {
	return o.ExitCode == 0
}

// Err returns an *ExitError for a non-zero outcome and nil otherwise.
func (o Outcome) Err(name string) error {
	if o.Success() {
		return nil
	}
	return &ExitError{Name: name, Code: o.ExitCode}
}

// ExitError reports a process that started but exited with a non-zero status.
type ExitError struct {
	Name string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("toolchain: %s exited with status %d", e.Name, e.Code)
}

// A Runner starts a command and waits for it to finish.
//
// A returned error means the command could not be run at all; such errors
// wrap ErrNotFound when the executable is missing. A command that ran and
// failed is reported through a non-zero Outcome and a nil error.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Outcome, error)
}

var execCommandContext = exec.CommandContext

// ExecRunner runs commands as child processes of the current process.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

// Run starts the command and blocks until it exits. The child gets no stdin.
func (ExecRunner) Run(ctx context.Context, c Command) (Outcome, error) {
	cmd := execCommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	slog.Debug("running command", "cmd", c.String(), "dir", c.Dir)

	err := cmd.Run()
	if err == nil {
		return Outcome{}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Outcome{ExitCode: exitErr.ExitCode()}, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return Outcome{ExitCode: -1}, ctxErr
	}

	return Outcome{ExitCode: -1}, fmt.Errorf("%w: %s: %w", ErrNotFound, c.Name, err)
}
