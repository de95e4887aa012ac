package toolchain_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"git-shippr/pkg/toolchain"
)

const helperEnv = "SHIPPR_WANT_HELPER_PROCESS"

// helperCommand runs this test binary as a fake toolchain. The helper
// prints its working directory to stdout, "stderr" to stderr, and exits
// with the given code.
func helperCommand(code int) toolchain.Command {
	return toolchain.Command{
		Name: os.Args[0],
		Args: []string{"-test.run=TestHelperProcess", "--", strconv.Itoa(code)},
		Env:  []string{helperEnv + "=1"},
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}

	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	code := 0
	if len(args) > 1 {
		code, _ = strconv.Atoi(args[1])
	}

	wd, _ := os.Getwd()
	fmt.Fprint(os.Stdout, wd)
	fmt.Fprint(os.Stderr, "stderr")
	os.Exit(code)
}

func TestExecRunner_Success(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	cmd := helperCommand(0)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	outcome, err := toolchain.ExecRunner{}.Run(context.Background(), cmd)
	require.NoError(t, err)
	require.True(t, outcome.Success())
	require.NoError(t, outcome.Err("helper"))

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(stdout.String())
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, "stderr", stderr.String())
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	outcome, err := toolchain.ExecRunner{}.Run(context.Background(), helperCommand(3))
	require.NoError(t, err)
	require.False(t, outcome.Success())
	require.Equal(t, 3, outcome.ExitCode)

	var exitErr *toolchain.ExitError
	require.ErrorAs(t, outcome.Err("helper"), &exitErr)
	require.Equal(t, 3, exitErr.Code)
	require.EqualError(t, exitErr, "toolchain: helper exited with status 3")
}

func TestExecRunner_NotFound(t *testing.T) {
	cmd := toolchain.Command{Name: "shippr-definitely-not-installed", Args: []string{"version"}}

	outcome, err := toolchain.ExecRunner{}.Run(context.Background(), cmd)
	require.ErrorIs(t, err, toolchain.ErrNotFound)
	require.False(t, outcome.Success())
}

func TestCommand_String(t *testing.T) {
	cmd := toolchain.Command{Name: "go", Args: []string{"build", "-o", "dist/shippr", "./cmd/git-shippr"}}
	require.Equal(t, "go build -o dist/shippr ./cmd/git-shippr", cmd.String())
}
