package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"drawpoker.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	LogFile  string `help:"Log file for the interactive game (overrides config)"`
	NoColor  bool   `help:"Disable colors"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play draw poker in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Deal many hands and report how often each category comes up"`
	Classify ClassifyCmd      `cmd:"" help:"Classify a five-card hand"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("drawpoker"),
		kong.Description("Five-card draw poker with jokers"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
