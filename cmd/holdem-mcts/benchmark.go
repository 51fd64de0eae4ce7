package main

import (
	"fmt"
	"os"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-mcts/internal/analysis"
	"github.com/lox/holdem-mcts/internal/deck"
	"github.com/lox/holdem-mcts/internal/mcts"
	"github.com/lox/holdem-mcts/internal/statistics"
)

// BenchmarkCmd runs repeated seeded estimates for a list of hands and
// reports how far the estimates land from the ground-truth table. Trials are
// independent searches, so they fan out across workers; each search itself
// stays single-threaded.
type BenchmarkCmd struct {
	Hands       []string `default:"AsAh,KsKh,AsKs,AsKh,QsJs,7s2h" help:"Hands to benchmark"`
	Trials      int      `default:"10" help:"Seeded trials per hand"`
	Iterations  int      `short:"i" default:"1000" help:"MCTS iterations per trial"`
	Seed        int64    `default:"1" help:"Base seed; trial k uses seed+k"`
	Concurrency int      `default:"4" help:"Concurrent trials"`
	Verbose     bool     `short:"V" help:"Verbose logging"`
}

type benchmarkRow struct {
	hand      string
	hole      []deck.Card
	truth     float64
	estimates statistics.Summary
	errors    statistics.Summary
}

func (c *BenchmarkCmd) Run() error {
	logger := log.New(os.Stderr)
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	rows := make([]*benchmarkRow, 0, len(c.Hands))
	for _, hand := range c.Hands {
		hole, err := deck.ParseHoleCards(hand)
		if err != nil {
			return fmt.Errorf("hand %q: %w", hand, err)
		}
		truth, err := analysis.GroundTruthOdds(hole)
		if err != nil {
			return err
		}
		rows = append(rows, &benchmarkRow{hand: hand, hole: hole, truth: truth})
	}

	logger.Info("Benchmarking",
		"hands", len(rows),
		"trials", c.Trials,
		"iterations", c.Iterations,
		"seed", c.Seed)

	start := time.Now()
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(c.Concurrency)

	for _, row := range rows {
		for trial := 0; trial < c.Trials; trial++ {
			seed := c.Seed + int64(trial)
			g.Go(func() error {
				estimate, err := mcts.EstimateWinProbability(row.hole, c.Iterations, mcts.Config{Seed: seed})
				if err != nil {
					return fmt.Errorf("hand %s seed %d: %w", row.hand, seed, err)
				}

				result := statistics.Trial{
					Estimate:    estimate,
					GroundTruth: row.truth,
					Iterations:  c.Iterations,
					Seed:        seed,
				}
				logger.Debug("Trial complete",
					"hand", row.hand,
					"seed", seed,
					"estimate", estimate,
					"absError", result.AbsError())

				mu.Lock()
				row.estimates.Add(estimate)
				row.errors.Add(result.AbsError())
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	duration := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("truth"),
		headerStyle.Render("mean estimate"),
		headerStyle.Render("mean |err|"),
		headerStyle.Render("max |err|"),
		headerStyle.Render("95% CI (mean est)"))

	for _, row := range rows {
		lower, upper := row.estimates.ConfidenceInterval95()
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			handStyle.Render(row.hand),
			truthStyle.Render(fmt.Sprintf("%.3f", row.truth)),
			winStyle.Render(fmt.Sprintf("%.3f", row.estimates.Mean())),
			diffStyle.Render(fmt.Sprintf("%.3f", row.errors.Mean())),
			diffStyle.Render(fmt.Sprintf("%.3f", row.errors.Max())),
			fmt.Sprintf("[%.3f, %.3f]", lower, upper))
	}
	w.Flush()

	fmt.Printf("\n%d trials in %v\n", len(rows)*c.Trials, duration.Truncate(time.Millisecond))
	return nil
}
