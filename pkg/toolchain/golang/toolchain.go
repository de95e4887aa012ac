package golang

import (
	"context"
	"fmt"
	"strings"

	"git-shippr/pkg/toolchain"
)

func parseOptions(outputPath string, opts *toolchain.BuildOptions) []string {
	args := []string{"-o", outputPath}
	if opts == nil {
		return args
	}

	flags := make(toolchain.Flags)
	if opts.Trimpath {
		flags.Toggle("trimpath")
	}
	flags.Set("ldflags", nonEmpty(opts.LinkerFlags)...)
	flags.Set("tags", nonEmpty(strings.Join(opts.Tags, ","))...)
	flags.Merge(opts.Flags)
	// The output path is fixed by the request.
	flags.Delete("o")

	return append(args, parseFlags(flags)...)
}

func parseFlags(flags toolchain.Flags) []string {
	const flagStart = "-"
	var out []string

	flags.Range(func(flag string, values []string, isToggle bool) {
		if isToggle {
			out = append(out, flagStart+flag)
			return
		}

		for _, value := range values {
			out = append(out, flagStart+flag, value)
		}
	})

	return out
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

// Toolchain is the Go toolchain, driven through the go command.
type Toolchain struct {
	info   toolchain.Info
	runner toolchain.Runner
}

var _ toolchain.Toolchain = (*Toolchain)(nil)

// New creates a Go toolchain that invokes the executable with the given name,
// or the executable at the given path, through runner. A nil runner starts
// real processes.
func New(pathOrExec string, runner toolchain.Runner) *Toolchain {
	if pathOrExec == "" {
		pathOrExec = toolchainName
	}
	if runner == nil {
		runner = toolchain.ExecRunner{}
	}

	return &Toolchain{
		info: toolchain.Info{
			Name:        toolchainName,
			DisplayName: displayName,
			Executable:  pathOrExec,
			InstallURL:  installURL,
		},
		runner: runner,
	}
}

// Probe runs "go version" with its output discarded.
func (t *Toolchain) Probe(ctx context.Context) error {
	cmd := toolchain.Command{Name: t.info.Executable, Args: []string{"version"}}

	outcome, err := t.runner.Run(ctx, cmd)
	if err == nil {
		err = outcome.Err(t.info.Executable)
	}
	if err != nil {
		return fmt.Errorf("go: failed to probe toolchain: %w", err)
	}

	return nil
}

// BuildCommand returns the "go build" invocation for the request.
func (t *Toolchain) BuildCommand(req toolchain.BuildRequest) toolchain.Command {
	args := append([]string{"build"}, parseOptions(req.Output, req.Options)...)
	args = append(args, req.Entry)

	return toolchain.Command{
		Name:   t.info.Executable,
		Args:   args,
		Dir:    req.Dir,
		Stdout: req.Stdout,
		Stderr: req.Stderr,
	}
}

// Build runs "go build" for the request and waits for it to finish.
func (t *Toolchain) Build(ctx context.Context, req toolchain.BuildRequest) error {
	outcome, err := t.runner.Run(ctx, t.BuildCommand(req))
	if err == nil {
		err = outcome.Err(t.info.Executable)
	}
	if err != nil {
		return fmt.Errorf("go: failed to build %s: %w", req.Entry, err)
	}

	return nil
}

func (t *Toolchain) Info() toolchain.Info {
	return t.info
}
