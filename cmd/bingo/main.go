package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Open the interactive game"`
	Cards    CardsCmd         `cmd:"" help:"Print cards for paper play"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate rounds and report how long they take"`
	Pool     PoolCmd          `cmd:"" help:"Validate and list an item catalog"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bingo"),
		kong.Description("Party bingo for a host and any number of guests"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
