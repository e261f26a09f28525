package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Keep score for a game in the terminal"`
	Rounds  RoundsCmd        `cmd:"" help:"Print the round sequence for a starting hand size"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ohell"),
		kong.Description("Scorekeeper for O'Hell, the trick-prediction card game"),
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
