package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/euchre/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	NoColor  bool             `help:"Disable colored output"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play a match against three bots in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Play bot-only matches and report statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("euchre"),
		kong.Description("Four-seat euchre against computer opponents"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kongVars(),
	)
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func kongVars() kong.Vars {
	return kong.Vars{
		"version":     version,
		"config_file": config.DefaultFilename,
	}
}
