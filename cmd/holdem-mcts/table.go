package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lox/holdem-mcts/internal/analysis"
)

// TableCmd prints the ground-truth heads-up equity table, best hands first.
type TableCmd struct {
	Limit int `short:"n" help:"Show only the top N hands (0 for all)"`
}

func (c *TableCmd) Run() error {
	classes := analysis.Classes()
	if c.Limit > 0 && c.Limit < len(classes) {
		classes = classes[:c.Limit]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("rank"),
		headerStyle.Render("hand"),
		headerStyle.Render("equity"))

	for i, class := range classes {
		fmt.Fprintf(w, "%d\t%s\t%s\n",
			i+1,
			handStyle.Render(class.Label),
			truthStyle.Render(fmt.Sprintf("%.1f%%", class.Equity*100)))
	}

	return w.Flush()
}
