package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// DefaultName is the base name of the built executable.
	DefaultName = "shippr"

	// DefaultEntry is the package compiled into the executable, relative to the project root.
	DefaultEntry = "./cmd/git-shippr"

	// DefaultDist is the output directory, relative to the project root.
	DefaultDist = "dist"

	// DefaultRerunHint is the command users are told to re-run after installing the toolchain.
	DefaultRerunHint = "npm install"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755
)

// BuildTarget describes where a build reads from and writes to.
type BuildTarget struct {
	SourceEntryPoint string // Entry point, relative to the project root.
	OutputDirectory  string // Directory the executable is written to.
	OutputFileName   string // Executable file name, with the platform suffix.
}

// OutputPath returns the full path of the executable.
func (t BuildTarget) OutputPath() string {
	return filepath.Join(t.OutputDirectory, t.OutputFileName)
}

// ResolveTarget computes the build target for the configuration.
//
// The output directory is <Root>/<Dist> and the file name is Name followed by
// the platform's executable suffix. Empty fields take their defaults.
func ResolveTarget(cfg Config) BuildTarget {
	cfg = cfg.withDefaults()

	return BuildTarget{
		SourceEntryPoint: cfg.Entry,
		OutputDirectory:  filepath.Join(cfg.Root, cfg.Dist),
		OutputFileName:   cfg.Name + cfg.Platform.ExecutableSuffix(),
	}
}

// PrepareOutputDir creates dir and any missing parents. It is a no-op when
// dir already exists.
func PrepareOutputDir(dir string) error {
	slog.Debug("preparing output directory", "dir", dir)

	if err := os.MkdirAll(dir, DefaultDirMode); err != nil {
		return fmt.Errorf("bootstrap: failed to prepare output directory: %w", err)
	}
	return nil
}
