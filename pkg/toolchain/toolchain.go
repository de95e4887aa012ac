package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// A Toolchain can check its own presence on the host and build a program
// from source into a single executable.
type Toolchain interface {
	// Probe checks whether the toolchain can be invoked on the host.
	// A nil error means the toolchain is available. Output produced by the
	// toolchain while probing is discarded.
	Probe(ctx context.Context) error
	// Build compiles the entry point described by the request into the
	// request's output path. The toolchain's output streams are connected
	// to the writers in the request.
	Build(ctx context.Context, req BuildRequest) error
	// Info returns some information about the toolchain.
	Info() Info
}

// Info holds some information about the underlying toolchain.
type Info struct {
	// Name the toolchain is registered under.
	Name string
	// DisplayName is the human readable name of the toolchain, used in diagnostics.
	DisplayName string
	// Executable is the name or path of the executable that is invoked.
	Executable string
	// InstallURL points users to where the toolchain can be downloaded.
	InstallURL string
}

// BuildRequest describes a single build.
type BuildRequest struct {
	// Dir is the working directory of the build, usually the project root.
	Dir string
	// Entry is the source entry point, relative to Dir.
	Entry string
	// Output is the path of the executable to produce.
	Output string
	// Options customize the build. They may be nil.
	Options *BuildOptions
	// Stdout and Stderr receive the toolchain's output.
	// If nil, the output is discarded.
	Stdout io.Writer
	Stderr io.Writer
}

// BuildOptions customizes the build in a toolchain-agnostic way.
// Each option is translated to the toolchain-specific flags.
type BuildOptions struct {
	// Trimpath removes file system paths from the resulting executable.
	Trimpath bool
	// LinkerFlags are passed verbatim to the linker.
	LinkerFlags string
	// Tags are build constraints to satisfy during the build.
	Tags []string
	// Flags can be used to specify other toolchain options that are not available
	// in BuildOptions. These flags are not translated, so toolchains may not be
	// able to be used interchangeably when this option is used. They also override
	// any flags set by the fields from BuildOptions.
	Flags Flags
}

// Constructor is a function that constructs a Toolchain driving the given executable.
// It takes either a path to the executable or the executable's name, and the runner
// used to start processes.
type Constructor func(pathOrExecutableName string, runner Runner) Toolchain

var (
	toolchains      = map[string]Constructor{}
	toolchainsNames []string // provide ordered iteration for the map
	toolchainsMutex sync.RWMutex
)

// NewToolchain initializes the toolchain registered under the given name.
// The executable defaults to the toolchain's name if empty. If runner is nil,
// processes are started with an ExecRunner.
func NewToolchain(name, executable string, runner Runner) (Toolchain, error) {
	toolchainsMutex.RLock()
	constructor := toolchains[name]
	toolchainsMutex.RUnlock()

	if constructor == nil {
		return nil, fmt.Errorf("toolchain: missing toolchain %q, forgotten import?", name)
	}

	if executable == "" {
		executable = name
	}
	if runner == nil {
		runner = ExecRunner{}
	}

	return constructor(executable, runner), nil
}

// Names returns the names of the registered toolchains, in registration order.
func Names() []string {
	toolchainsMutex.RLock()
	defer toolchainsMutex.RUnlock()

	return append([]string(nil), toolchainsNames...)
}

// RegisterToolchain adds a Toolchain implementation for usage.
// If an implementation with the same name already exists or the provided
// constructor is nil, this function panics. If the name has path separators
// or path list separators, this function panics.
//
// The provided name is used as the default executable name.
func RegisterToolchain(name string, constructor Constructor) {
	toolchainsMutex.Lock()
	defer toolchainsMutex.Unlock()

	if !isValidImplementationName(name) {
		panic(fmt.Sprintf("toolchain: toolchain name %q has invalid characters", name))
	}

	if toolchains[name] != nil {
		panic(fmt.Sprintf("toolchain: toolchain %q is already registered", name))
	}

	if constructor == nil {
		panic(fmt.Sprintf("toolchain: constructor provided for toolchain %q is nil", name))
	}

	toolchains[name] = constructor
	toolchainsNames = append(toolchainsNames, name)
}

func isValidImplementationName(name string) bool {
	return name != "" && !strings.ContainsAny(name, string([]rune{os.PathSeparator, '/', os.PathListSeparator}))
}
