package bootstrap

import (
	"errors"
	"fmt"

	"git-shippr/pkg/toolchain"
)

var (
	ErrToolchainUnavailable = errors.New("toolchain unavailable")
	ErrBuildFailed          = errors.New("build failed")
)

// UnavailableError is returned when the toolchain cannot be invoked. Its
// message tells the user what to install and where to get it.
type UnavailableError struct {
	Toolchain toolchain.Info
	Program   string // Name of the program being installed.
	RerunHint string // Command to re-run once the toolchain is installed.
	Err       error  // Probe failure.
}

func (e *UnavailableError) Error() string {
	rerun := "try again"
	if e.RerunHint != "" {
		rerun = fmt.Sprintf("re-run `%s`", e.RerunHint)
	}

	return fmt.Sprintf("%s toolchain is required to install %s. Please install %s (%s) and %s.",
		e.Toolchain.DisplayName, e.Program, e.Toolchain.DisplayName, e.Toolchain.InstallURL, rerun)
}

func (e *UnavailableError) Unwrap() []error {
	return []error{ErrToolchainUnavailable, e.Err}
}

// BuildError is returned when the build fails. The toolchain's own output has
// already been shown to the user, so the message only points at it.
type BuildError struct {
	Toolchain toolchain.Info
	Program   string
	Err       error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("Failed to build %s binary with %s. See output above.", e.Program, e.Toolchain.DisplayName)
}

func (e *BuildError) Unwrap() []error {
	return []error{ErrBuildFailed, e.Err}
}
