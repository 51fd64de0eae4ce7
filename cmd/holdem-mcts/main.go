package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Estimate    EstimateCmd    `cmd:"" default:"withargs" help:"Estimate win probability for a starting hand"`
	Interactive InteractiveCmd `cmd:"" help:"Interactive estimator session"`
	Table       TableCmd       `cmd:"" help:"Print the ground-truth starting-hand table"`
	Benchmark   BenchmarkCmd   `cmd:"" help:"Compare MCTS estimates against ground truth over repeated trials"`
	Serve       ServeCmd       `cmd:"" help:"Serve estimates over websocket"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-mcts"),
		kong.Description("Heads-up Texas Hold'em win probability estimation via Monte Carlo Tree Search"),
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
