// Package analysis holds the static ground-truth heads-up equity table for
// all 169 starting-hand classes, used to benchmark the search engine's
// estimates. The table is package-level immutable data, built once and safe
// to share across concurrent readers without synchronization.
package analysis

import (
	"fmt"
	"sort"

	"github.com/lox/holdem-mcts/internal/deck"
)

// handClass normalizes two hole cards to (higher rank, lower rank, suited).
type handClass struct {
	High   deck.Rank
	Low    deck.Rank
	Suited bool
}

// Label renders the usual starting-hand shorthand: "AA", "AKs", "72o".
func (c handClass) Label() string {
	if c.High == c.Low {
		return fmt.Sprintf("%s%s", c.High, c.Low)
	}
	if c.Suited {
		return fmt.Sprintf("%s%ss", c.High, c.Low)
	}
	return fmt.Sprintf("%s%so", c.High, c.Low)
}

// Class describes one starting-hand class and its ground-truth equity, for
// reporting.
type Class struct {
	Label  string
	High   deck.Rank
	Low    deck.Rank
	Suited bool
	Equity float64
}

// GroundTruthOdds returns the precomputed heads-up equity for a pair of hole
// cards. The lookup normalizes to higher rank first and checks suitedness.
// Falls back to 0.5 if the class were somehow missing; the table is complete
// over all 169 classes, and a test asserts that.
func GroundTruthOdds(hole []deck.Card) (float64, error) {
	if len(hole) != 2 {
		return 0, fmt.Errorf("need exactly 2 hole cards, got %d", len(hole))
	}

	class := classify(hole[0], hole[1])
	odds, ok := headsUpOdds[class]
	if !ok {
		return 0.5, nil
	}
	return odds, nil
}

// Classes returns every starting-hand class sorted by equity, best first.
func Classes() []Class {
	classes := make([]Class, 0, len(headsUpOdds))
	for class, equity := range headsUpOdds {
		classes = append(classes, Class{
			Label:  class.Label(),
			High:   class.High,
			Low:    class.Low,
			Suited: class.Suited,
			Equity: equity,
		})
	}
	sort.Slice(classes, func(i, j int) bool {
		if classes[i].Equity != classes[j].Equity {
			return classes[i].Equity > classes[j].Equity
		}
		return classes[i].Label < classes[j].Label
	})
	return classes
}

func classify(a, b deck.Card) handClass {
	high, low := a.Rank, b.Rank
	if high < low {
		high, low = low, high
	}
	return handClass{
		High:   high,
		Low:    low,
		Suited: a.Suit == b.Suit,
	}
}

// headsUpOdds is the heads-up (2-player) preflop win rate for every starting
// hand class. Pocket pairs are keyed offsuit since two cards of one rank can
// never share a suit.
var headsUpOdds = map[handClass]float64{
	// Pocket pairs
	{deck.Ace, deck.Ace, false}: 0.853, {deck.King, deck.King, false}: 0.826,
	{deck.Queen, deck.Queen, false}: 0.799, {deck.Jack, deck.Jack, false}: 0.773,
	{deck.Ten, deck.Ten, false}: 0.747, {deck.Nine, deck.Nine, false}: 0.720,
	{deck.Eight, deck.Eight, false}: 0.693, {deck.Seven, deck.Seven, false}: 0.666,
	{deck.Six, deck.Six, false}: 0.639, {deck.Five, deck.Five, false}: 0.612,
	{deck.Four, deck.Four, false}: 0.585, {deck.Three, deck.Three, false}: 0.559,
	{deck.Two, deck.Two, false}: 0.532,

	// Ace combinations
	{deck.Ace, deck.King, true}: 0.669, {deck.Ace, deck.King, false}: 0.653,
	{deck.Ace, deck.Queen, true}: 0.660, {deck.Ace, deck.Queen, false}: 0.643,
	{deck.Ace, deck.Jack, true}: 0.651, {deck.Ace, deck.Jack, false}: 0.633,
	{deck.Ace, deck.Ten, true}: 0.641, {deck.Ace, deck.Ten, false}: 0.622,
	{deck.Ace, deck.Nine, true}: 0.629, {deck.Ace, deck.Nine, false}: 0.609,
	{deck.Ace, deck.Eight, true}: 0.618, {deck.Ace, deck.Eight, false}: 0.597,
	{deck.Ace, deck.Seven, true}: 0.607, {deck.Ace, deck.Seven, false}: 0.585,
	{deck.Ace, deck.Six, true}: 0.596, {deck.Ace, deck.Six, false}: 0.573,
	{deck.Ace, deck.Five, true}: 0.587, {deck.Ace, deck.Five, false}: 0.563,
	{deck.Ace, deck.Four, true}: 0.578, {deck.Ace, deck.Four, false}: 0.554,
	{deck.Ace, deck.Three, true}: 0.570, {deck.Ace, deck.Three, false}: 0.545,
	{deck.Ace, deck.Two, true}: 0.562, {deck.Ace, deck.Two, false}: 0.537,

	// King combinations
	{deck.King, deck.Queen, true}: 0.628, {deck.King, deck.Queen, false}: 0.610,
	{deck.King, deck.Jack, true}: 0.619, {deck.King, deck.Jack, false}: 0.600,
	{deck.King, deck.Ten, true}: 0.609, {deck.King, deck.Ten, false}: 0.589,
	{deck.King, deck.Nine, true}: 0.597, {deck.King, deck.Nine, false}: 0.576,
	{deck.King, deck.Eight, true}: 0.586, {deck.King, deck.Eight, false}: 0.564,
	{deck.King, deck.Seven, true}: 0.575, {deck.King, deck.Seven, false}: 0.552,
	{deck.King, deck.Six, true}: 0.564, {deck.King, deck.Six, false}: 0.540,
	{deck.King, deck.Five, true}: 0.554, {deck.King, deck.Five, false}: 0.529,
	{deck.King, deck.Four, true}: 0.544, {deck.King, deck.Four, false}: 0.519,
	{deck.King, deck.Three, true}: 0.535, {deck.King, deck.Three, false}: 0.509,
	{deck.King, deck.Two, true}: 0.527, {deck.King, deck.Two, false}: 0.500,

	// Queen combinations
	{deck.Queen, deck.Jack, true}: 0.597, {deck.Queen, deck.Jack, false}: 0.579,
	{deck.Queen, deck.Ten, true}: 0.587, {deck.Queen, deck.Ten, false}: 0.568,
	{deck.Queen, deck.Nine, true}: 0.575, {deck.Queen, deck.Nine, false}: 0.555,
	{deck.Queen, deck.Eight, true}: 0.564, {deck.Queen, deck.Eight, false}: 0.543,
	{deck.Queen, deck.Seven, true}: 0.553, {deck.Queen, deck.Seven, false}: 0.531,
	{deck.Queen, deck.Six, true}: 0.542, {deck.Queen, deck.Six, false}: 0.519,
	{deck.Queen, deck.Five, true}: 0.532, {deck.Queen, deck.Five, false}: 0.508,
	{deck.Queen, deck.Four, true}: 0.522, {deck.Queen, deck.Four, false}: 0.498,
	{deck.Queen, deck.Three, true}: 0.513, {deck.Queen, deck.Three, false}: 0.488,
	{deck.Queen, deck.Two, true}: 0.505, {deck.Queen, deck.Two, false}: 0.479,

	// Jack combinations
	{deck.Jack, deck.Ten, true}: 0.565, {deck.Jack, deck.Ten, false}: 0.546,
	{deck.Jack, deck.Nine, true}: 0.553, {deck.Jack, deck.Nine, false}: 0.533,
	{deck.Jack, deck.Eight, true}: 0.542, {deck.Jack, deck.Eight, false}: 0.521,
	{deck.Jack, deck.Seven, true}: 0.531, {deck.Jack, deck.Seven, false}: 0.509,
	{deck.Jack, deck.Six, true}: 0.520, {deck.Jack, deck.Six, false}: 0.498,
	{deck.Jack, deck.Five, true}: 0.510, {deck.Jack, deck.Five, false}: 0.487,
	{deck.Jack, deck.Four, true}: 0.500, {deck.Jack, deck.Four, false}: 0.477,
	{deck.Jack, deck.Three, true}: 0.491, {deck.Jack, deck.Three, false}: 0.467,
	{deck.Jack, deck.Two, true}: 0.483, {deck.Jack, deck.Two, false}: 0.458,

	// Ten combinations
	{deck.Ten, deck.Nine, true}: 0.531, {deck.Ten, deck.Nine, false}: 0.511,
	{deck.Ten, deck.Eight, true}: 0.520, {deck.Ten, deck.Eight, false}: 0.499,
	{deck.Ten, deck.Seven, true}: 0.509, {deck.Ten, deck.Seven, false}: 0.488,
	{deck.Ten, deck.Six, true}: 0.498, {deck.Ten, deck.Six, false}: 0.476,
	{deck.Ten, deck.Five, true}: 0.488, {deck.Ten, deck.Five, false}: 0.465,
	{deck.Ten, deck.Four, true}: 0.478, {deck.Ten, deck.Four, false}: 0.455,
	{deck.Ten, deck.Three, true}: 0.469, {deck.Ten, deck.Three, false}: 0.445,
	{deck.Ten, deck.Two, true}: 0.461, {deck.Ten, deck.Two, false}: 0.436,

	// Nine combinations
	{deck.Nine, deck.Eight, true}: 0.498, {deck.Nine, deck.Eight, false}: 0.477,
	{deck.Nine, deck.Seven, true}: 0.487, {deck.Nine, deck.Seven, false}: 0.466,
	{deck.Nine, deck.Six, true}: 0.476, {deck.Nine, deck.Six, false}: 0.454,
	{deck.Nine, deck.Five, true}: 0.466, {deck.Nine, deck.Five, false}: 0.443,
	{deck.Nine, deck.Four, true}: 0.456, {deck.Nine, deck.Four, false}: 0.433,
	{deck.Nine, deck.Three, true}: 0.447, {deck.Nine, deck.Three, false}: 0.423,
	{deck.Nine, deck.Two, true}: 0.439, {deck.Nine, deck.Two, false}: 0.414,

	// Eight combinations
	{deck.Eight, deck.Seven, true}: 0.465, {deck.Eight, deck.Seven, false}: 0.444,
	{deck.Eight, deck.Six, true}: 0.454, {deck.Eight, deck.Six, false}: 0.432,
	{deck.Eight, deck.Five, true}: 0.444, {deck.Eight, deck.Five, false}: 0.421,
	{deck.Eight, deck.Four, true}: 0.434, {deck.Eight, deck.Four, false}: 0.411,
	{deck.Eight, deck.Three, true}: 0.425, {deck.Eight, deck.Three, false}: 0.401,
	{deck.Eight, deck.Two, true}: 0.417, {deck.Eight, deck.Two, false}: 0.392,

	// Seven combinations
	{deck.Seven, deck.Six, true}: 0.432, {deck.Seven, deck.Six, false}: 0.410,
	{deck.Seven, deck.Five, true}: 0.422, {deck.Seven, deck.Five, false}: 0.399,
	{deck.Seven, deck.Four, true}: 0.412, {deck.Seven, deck.Four, false}: 0.389,
	{deck.Seven, deck.Three, true}: 0.403, {deck.Seven, deck.Three, false}: 0.379,
	{deck.Seven, deck.Two, true}: 0.395, {deck.Seven, deck.Two, false}: 0.370,

	// Six combinations
	{deck.Six, deck.Five, true}: 0.400, {deck.Six, deck.Five, false}: 0.377,
	{deck.Six, deck.Four, true}: 0.390, {deck.Six, deck.Four, false}: 0.367,
	{deck.Six, deck.Three, true}: 0.381, {deck.Six, deck.Three, false}: 0.357,
	{deck.Six, deck.Two, true}: 0.373, {deck.Six, deck.Two, false}: 0.348,

	// Five combinations
	{deck.Five, deck.Four, true}: 0.368, {deck.Five, deck.Four, false}: 0.345,
	{deck.Five, deck.Three, true}: 0.359, {deck.Five, deck.Three, false}: 0.335,
	{deck.Five, deck.Two, true}: 0.351, {deck.Five, deck.Two, false}: 0.326,

	// Four combinations
	{deck.Four, deck.Three, true}: 0.337, {deck.Four, deck.Three, false}: 0.313,
	{deck.Four, deck.Two, true}: 0.329, {deck.Four, deck.Two, false}: 0.304,

	// Three-Two
	{deck.Three, deck.Two, true}: 0.307, {deck.Three, deck.Two, false}: 0.282,
}
