package toolchain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git-shippr/pkg/toolchain"
)

type rangedFlag struct {
	name     string
	values   []string
	isToggle bool
}

func collect(flags toolchain.Flags) []rangedFlag {
	var out []rangedFlag
	flags.Range(func(name string, values []string, isToggle bool) {
		out = append(out, rangedFlag{name, values, isToggle})
	})
	return out
}

func TestFlags_RangeKeepsFirstSetOrder(t *testing.T) {
	flags := make(toolchain.Flags)
	flags.Toggle("trimpath")
	flags.Set("ldflags", "-s -w")
	flags.Set("tags", "netgo")
	flags.Set("ldflags", "-s")

	require.Equal(t, []rangedFlag{
		{"trimpath", nil, true},
		{"ldflags", []string{"-s"}, false},
		{"tags", []string{"netgo"}, false},
	}, collect(flags))
}

func TestFlags_SetWithoutValuesIsNoop(t *testing.T) {
	flags := make(toolchain.Flags)
	flags.Set("tags")

	require.False(t, flags.Has("tags"))
	require.Empty(t, collect(flags))
}

func TestFlags_Merge(t *testing.T) {
	flags := make(toolchain.Flags)
	flags.Set("ldflags", "-s")
	flags.Toggle("trimpath")

	other := make(toolchain.Flags)
	other.Set("ldflags", "-w")
	other.Toggle("race")

	flags.Merge(other)

	require.Equal(t, []string{"-w"}, flags.Get("ldflags"))
	require.Equal(t, []rangedFlag{
		{"ldflags", []string{"-w"}, false},
		{"trimpath", nil, true},
		{"race", nil, true},
	}, collect(flags))
}

func TestFlags_MergeNil(t *testing.T) {
	flags := make(toolchain.Flags)
	flags.Set("tags", "a")
	flags.Merge(nil)

	require.Equal(t, []string{"a"}, flags.Get("tags"))
}

func TestFlags_Delete(t *testing.T) {
	flags := make(toolchain.Flags)
	flags.Set("o", "out")
	flags.Set("tags", "a")
	flags.Delete("o")

	require.False(t, flags.Has("o"))
	require.Nil(t, flags.Get("o"))
	require.Equal(t, []rangedFlag{{"tags", []string{"a"}, false}}, collect(flags))
}
