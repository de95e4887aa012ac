// Package toolchaintest provides a scripted toolchain.Runner for tests.
package toolchaintest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"git-shippr/pkg/toolchain"
)

// Response scripts how the Runner answers a command.
type Response struct {
	// ExitCode is the exit status reported when the command "runs".
	ExitCode int
	// Err, if set, is returned as if the command could not be started.
	Err error
	// Do is called before the outcome is returned, for side effects
	// such as writing the build output.
	Do func(cmd toolchain.Command) error
}

// Exit answers with the given exit status.
func Exit(code int) Response {
	return Response{ExitCode: code}
}

// Missing answers as if the executable was not installed.
func Missing() Response {
	return Response{Err: fmt.Errorf("%w: exec: executable file not found in $PATH", toolchain.ErrNotFound)}
}

// WriteOutput answers with a zero exit status after writing content to the
// path following the "-o" argument, relative to the command's directory.
func WriteOutput(content []byte) Response {
	return Response{Do: func(cmd toolchain.Command) error {
		path := OutputPath(cmd)
		if path == "" {
			return fmt.Errorf("toolchaintest: no -o argument in %q", cmd.String())
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(cmd.Dir, path)
		}
		return os.WriteFile(path, content, 0o755)
	}}
}

// OutputPath returns the argument following "-o", or an empty string.
func OutputPath(cmd toolchain.Command) string {
	for i := 0; i+1 < len(cmd.Args); i++ {
		if cmd.Args[i] == "-o" {
			return cmd.Args[i+1]
		}
	}
	return ""
}

// Runner records every command and answers with the Response registered
// for the command's first argument (the subcommand). Commands without a
// registered response exit with status zero.
type Runner struct {
	Responses map[string]Response
	Calls     []toolchain.Command
}

var _ toolchain.Runner = (*Runner)(nil)

// NewRunner returns a Runner answering with the given responses, keyed by subcommand.
func NewRunner(responses map[string]Response) *Runner {
	return &Runner{Responses: responses}
}

func (r *Runner) Run(ctx context.Context, cmd toolchain.Command) (toolchain.Outcome, error) {
	r.Calls = append(r.Calls, cmd)

	if err := ctx.Err(); err != nil {
		return toolchain.Outcome{ExitCode: -1}, err
	}

	resp, ok := r.Responses[subcommand(cmd)]
	if !ok {
		return toolchain.Outcome{}, nil
	}
	if resp.Err != nil {
		return toolchain.Outcome{ExitCode: -1}, resp.Err
	}
	if resp.Do != nil {
		if err := resp.Do(cmd); err != nil {
			return toolchain.Outcome{ExitCode: -1}, err
		}
	}

	return toolchain.Outcome{ExitCode: resp.ExitCode}, nil
}

// CallsTo returns the recorded commands with the given subcommand.
func (r *Runner) CallsTo(sub string) []toolchain.Command {
	var calls []toolchain.Command
	for _, c := range r.Calls {
		if subcommand(c) == sub {
			calls = append(calls, c)
		}
	}
	return calls
}

func subcommand(cmd toolchain.Command) string {
	if len(cmd.Args) == 0 {
		return ""
	}
	return cmd.Args[0]
}
