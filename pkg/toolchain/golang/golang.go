/*
Package golang provides a toolchain implementation that uses
the Go distribution installed on the host system.

It registers the "go" toolchain.
*/
package golang

import (
	"git-shippr/pkg/toolchain"
)

const (
	toolchainName = "go"
	displayName   = "Go"
	installURL    = "https://go.dev/dl/"
)

func init() {
	toolchain.RegisterToolchain(toolchainName, func(pathOrExecutableName string, runner toolchain.Runner) toolchain.Toolchain {
		return New(pathOrExecutableName, runner)
	})
}
