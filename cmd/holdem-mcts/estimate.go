package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lox/holdem-mcts/internal/analysis"
	"github.com/lox/holdem-mcts/internal/deck"
	"github.com/lox/holdem-mcts/internal/mcts"
)

// EstimateCmd estimates the win probability for one starting hand and
// compares it against the ground-truth table.
type EstimateCmd struct {
	Hand        string  `arg:"" help:"Hole cards in 4-character format, e.g. AsKh"`
	Iterations  int     `short:"i" default:"1000" help:"Number of MCTS iterations"`
	Seed        int64   `help:"Random seed for reproducible results (0 for time-based)"`
	Exploration float64 `help:"UCB1 exploration constant (default √2)"`
	MaxChildren int     `help:"Cap on children generated per expansion" default:"1000"`
}

func (c *EstimateCmd) Run() error {
	hole, err := deck.ParseHoleCards(c.Hand)
	if err != nil {
		return fmt.Errorf("parsing hole cards: %w", err)
	}

	truth, err := analysis.GroundTruthOdds(hole)
	if err != nil {
		return err
	}

	start := time.Now()
	estimate, err := mcts.EstimateWinProbability(hole, c.Iterations, mcts.Config{
		Exploration: c.Exploration,
		MaxChildren: c.MaxChildren,
		Seed:        c.Seed,
	})
	if err != nil {
		return err
	}
	duration := time.Since(start)

	diff := estimate - truth
	if diff < 0 {
		diff = -diff
	}

	fmt.Printf("%s  %s\n\n", headerStyle.Render("hand"), formatCards(hole))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("mcts estimate"), winStyle.Render(fmt.Sprintf("%.1f%%", estimate*100)))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("ground truth"), truthStyle.Render(fmt.Sprintf("%.1f%%", truth*100)))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("difference"), diffStyle.Render(fmt.Sprintf("%.1f%%", diff*100)))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("strength"), handStyle.Render(strengthVerdict(truth)))
	w.Flush()

	fmt.Printf("\n%d iterations in %v\n", c.Iterations, duration.Truncate(time.Millisecond))
	return nil
}
