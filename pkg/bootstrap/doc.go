// Package bootstrap builds a program from source at install time.
//
// A run is a fixed sequence of stages: the toolchain is probed, the output
// directory is created, the toolchain builds the entry point into a
// platform-named executable, and the outcome is reported. The first failing
// stage aborts the run; nothing is retried.
//
// The executable lands at <root>/dist/<name>, with a ".exe" suffix on
// Windows, where a wrapper script can find it:
//
//	tc, err := toolchain.NewToolchain("go", "", nil)
//	if err != nil {
//	    return err
//	}
//	o, err := bootstrap.New(bootstrap.Config{
//	    Root:     ".",
//	    Platform: bootstrap.HostPlatform(),
//	}, tc)
//	if err != nil {
//	    return err
//	}
//	os.Exit(bootstrap.Execute(ctx, o, bootstrap.Reporter{Out: os.Stdout, Err: os.Stderr}))
package bootstrap
