package toolchain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"git-shippr/pkg/toolchain"
	"git-shippr/pkg/toolchain/toolchaintest"
)

type stubToolchain struct {
	executable string
	runner     toolchain.Runner
}

func (s *stubToolchain) Probe(ctx context.Context) error { return nil }

func (s *stubToolchain) Build(ctx context.Context, req toolchain.BuildRequest) error { return nil }

func (s *stubToolchain) Info() toolchain.Info {
	return toolchain.Info{Name: "stub", Executable: s.executable}
}

func newStub(pathOrExec string, runner toolchain.Runner) toolchain.Toolchain {
	return &stubToolchain{executable: pathOrExec, runner: runner}
}

func init() {
	toolchain.RegisterToolchain("stub", newStub)
}

func TestNewToolchain(t *testing.T) {
	runner := toolchaintest.NewRunner(nil)

	tc, err := toolchain.NewToolchain("stub", "", runner)
	require.NoError(t, err)

	stub := tc.(*stubToolchain)
	require.Equal(t, "stub", stub.executable)
	require.Same(t, runner, stub.runner)
}

func TestNewToolchain_Executable(t *testing.T) {
	tc, err := toolchain.NewToolchain("stub", "/opt/stub/bin/stub", nil)
	require.NoError(t, err)

	stub := tc.(*stubToolchain)
	require.Equal(t, "/opt/stub/bin/stub", stub.executable)
	require.IsType(t, toolchain.ExecRunner{}, stub.runner)
}

func TestNewToolchain_Missing(t *testing.T) {
	_, err := toolchain.NewToolchain("cobol", "", nil)
	require.ErrorContains(t, err, `missing toolchain "cobol"`)
}

func TestNames(t *testing.T) {
	require.Contains(t, toolchain.Names(), "stub")
}

func TestRegisterToolchain_Panics(t *testing.T) {
	tests := []struct {
		name        string
		tcName      string
		constructor toolchain.Constructor
	}{
		{name: "Duplicate", tcName: "stub", constructor: newStub},
		{name: "NilConstructor", tcName: "stub-nil", constructor: nil},
		{name: "PathSeparator", tcName: "bin/stub", constructor: newStub},
		{name: "Empty", tcName: "", constructor: newStub},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Panics(t, func() {
				toolchain.RegisterToolchain(test.tcName, test.constructor)
			})
		})
	}
}
