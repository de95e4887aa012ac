package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"git-shippr/pkg/toolchain"
)

// Config configures a bootstrap run. Empty fields take their defaults.
type Config struct {
	Root      string                  // Project root. Made absolute by New.
	Name      string                  // Executable base name. Defaults to DefaultName.
	Entry     string                  // Entry point relative to Root. Defaults to DefaultEntry.
	Dist      string                  // Output directory relative to Root. Defaults to DefaultDist.
	Platform  Platform                // Platform the executable is named for.
	RerunHint string                  // Shown when the toolchain is missing. Defaults to DefaultRerunHint.
	Options   *toolchain.BuildOptions // Optional build flags.
	Stdout    io.Writer               // Receives the toolchain's output. Defaults to os.Stdout.
	Stderr    io.Writer               // Receives the toolchain's errors. Defaults to os.Stderr.
}

func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Entry == "" {
		c.Entry = DefaultEntry
	}
	if c.Dist == "" {
		c.Dist = DefaultDist
	}
	if c.RerunHint == "" {
		c.RerunHint = DefaultRerunHint
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	return c
}

// Result is returned after a successful run.
type Result struct {
	Program string // Executable base name.
	Path    string // Absolute path of the executable.
	Size    int64  // Size of the executable in bytes.
}

// Orchestrator probes a toolchain and builds a single executable with it.
type Orchestrator struct {
	cfg       Config
	toolchain toolchain.Toolchain
	target    BuildTarget
}

// New creates an Orchestrator that builds with tc according to cfg.
func New(cfg Config, tc toolchain.Toolchain) (*Orchestrator, error) {
	if tc == nil {
		return nil, errors.New("bootstrap: nil toolchain")
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: failed to resolve project root: %w", err)
	}
	cfg.Root = root
	cfg = cfg.withDefaults()

	return &Orchestrator{
		cfg:       cfg,
		toolchain: tc,
		target:    ResolveTarget(cfg),
	}, nil
}

// Target returns the resolved build target.
func (o *Orchestrator) Target() BuildTarget {
	return o.target
}

// Run probes the toolchain, prepares the output directory and builds the
// executable, in that order. It stops at the first failure.
//
// A missing or broken toolchain yields an *UnavailableError before anything
// is written to disk. A failed build yields a *BuildError.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	info := o.toolchain.Info()

	slog.Debug("probing toolchain", "toolchain", info.Name, "executable", info.Executable)

	if err := o.toolchain.Probe(ctx); err != nil {
		slog.Debug("toolchain unavailable", "toolchain", info.Name, "error", err)
		return nil, &UnavailableError{
			Toolchain: info,
			Program:   o.cfg.Name,
			RerunHint: o.cfg.RerunHint,
			Err:       err,
		}
	}

	if err := PrepareOutputDir(o.target.OutputDirectory); err != nil {
		return nil, err
	}

	out := o.target.OutputPath()
	req := toolchain.BuildRequest{
		Dir:     o.cfg.Root,
		Entry:   o.target.SourceEntryPoint,
		Output:  out,
		Options: o.cfg.Options,
		Stdout:  o.cfg.Stdout,
		Stderr:  o.cfg.Stderr,
	}

	slog.Debug("building",
		"entry", req.Entry,
		"output", out,
		"platform", o.cfg.Platform,
	)

	if err := o.toolchain.Build(ctx, req); err != nil {
		return nil, o.buildError(err)
	}

	stat, err := os.Stat(out)
	if err != nil {
		return nil, o.buildError(fmt.Errorf("bootstrap: executable missing after build: %w", err))
	}

	return &Result{Program: o.cfg.Name, Path: out, Size: stat.Size()}, nil
}

func (o *Orchestrator) buildError(err error) error {
	slog.Debug("build failed", "error", err)
	return &BuildError{Toolchain: o.toolchain.Info(), Program: o.cfg.Name, Err: err}
}
