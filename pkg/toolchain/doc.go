/*
Package toolchain provides a set of utilities to detect and drive
native build toolchains. It abstracts their usage under convenient
interfaces so a bootstrap step can probe for a toolchain and build
a program with it without knowing which toolchain it talks to.

Implementations register themselves with RegisterToolchain, usually from
an init function, and are looked up by name with NewToolchain:

	import _ "git-shippr/pkg/toolchain/golang"

	tc, err := toolchain.NewToolchain("go", "", nil)

Processes are started through a Runner. ExecRunner starts real child
processes; the toolchaintest package provides a scripted Runner for tests.
*/
package toolchain
