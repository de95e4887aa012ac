package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/gookit/color"
	"golang.org/x/term"

	"git-shippr/pkg/bootstrap"
	"git-shippr/pkg/toolchain"
	_ "git-shippr/pkg/toolchain/golang"
)

var version = "" // Set via -ldflags "-X main.version=...".

var cli struct {
	Root       string   `short:"r" env:"SHIPPR_ROOT" default:"." type:"existingdir" help:"Project root containing the sources." placeholder:"DIR"`
	Toolchain  string   `env:"SHIPPR_TOOLCHAIN" default:"go" enum:"${toolchains}" help:"Toolchain used for the build (${toolchains})."`
	Executable string   `env:"SHIPPR_TOOLCHAIN_PATH" help:"Path or name of the toolchain executable. Defaults to the toolchain name." placeholder:"PATH"`
	Name       string   `default:"${name}" help:"Base name of the built executable."`
	Entry      string   `default:"${entry}" help:"Entry point to build, relative to the root."`
	Dist       string   `default:"${dist}" help:"Output directory, relative to the root."`
	Platform   string   `env:"SHIPPR_PLATFORM" default:"${goos}" help:"Platform the executable is named for."`
	Rerun      string   `default:"${rerun}" help:"Command suggested after installing a missing toolchain."`
	Trimpath   bool     `env:"SHIPPR_TRIMPATH" help:"Remove file system paths from the executable."`
	Ldflags    string   `env:"SHIPPR_LDFLAGS" help:"Flags passed to the linker."`
	Tags       []string `env:"SHIPPR_TAGS" help:"Build tags."`
	Debug      bool     `short:"d" env:"SHIPPR_DEBUG" help:"Enable debug output."`
	NoColor    bool     `env:"SHIPPR_NO_COLOR" help:"Disable colored output."`

	Version kong.VersionFlag `help:"Show version information."`
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	kong.Parse(&cli,
		kong.Name("shippr-install"),
		kong.Description("Builds the shippr executable from source into the dist directory."),
		kong.UsageOnError(),
		kong.Vars{
			"version":    versionString(),
			"toolchains": strings.Join(toolchain.Names(), ","),
			"goos":       runtime.GOOS,
			"name":       bootstrap.DefaultName,
			"entry":      bootstrap.DefaultEntry,
			"dist":       bootstrap.DefaultDist,
			"rerun":      bootstrap.DefaultRerunHint,
		},
	)

	slog.SetDefault(logger())
	color.Enable = !cli.NoColor && os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stderr.Fd()))

	slog.Debug("shippr-install is running",
		"version", versionString(),
		"pid", os.Getpid(),
		"args", os.Args,
	)

	tc, err := toolchain.NewToolchain(cli.Toolchain, cli.Executable, toolchain.ExecRunner{})
	if err != nil {
		slog.Error(err.Error())
		return 1
	}

	o, err := bootstrap.New(bootstrap.Config{
		Root:      cli.Root,
		Name:      cli.Name,
		Entry:     cli.Entry,
		Dist:      cli.Dist,
		Platform:  bootstrap.ParsePlatform(cli.Platform),
		RerunHint: cli.Rerun,
		Options: &toolchain.BuildOptions{
			Trimpath:    cli.Trimpath,
			LinkerFlags: cli.Ldflags,
			Tags:        cli.Tags,
		},
	}, tc)
	if err != nil {
		slog.Error(err.Error())
		return 1
	}

	return bootstrap.Execute(ctx, o, bootstrap.Reporter{Out: os.Stdout, Err: os.Stderr})
}

// Creates a text logger on stderr. Only warnings and errors are shown unless
// debug output is enabled, so the console carries just the install messages.
func logger() *slog.Logger {
	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func versionString() string {
	v := strings.TrimPrefix(strings.TrimSpace(version), "v")
	if v == "" {
		return "(local)"
	}
	return v
}
