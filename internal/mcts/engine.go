// Package mcts estimates heads-up hold'em win probability by Monte Carlo
// Tree Search over the unknown opponent hole cards and community reveals.
// Opponent cards and future streets are drawn uniformly at random, never
// adversarially, so the root value converges on the hand's raw equity.
package mcts

import (
	"fmt"
	"math"
	rand "math/rand/v2"
	"sort"

	"github.com/lox/holdem-mcts/internal/deck"
	"github.com/lox/holdem-mcts/internal/game"
	"github.com/lox/holdem-mcts/internal/randutil"
)

const (
	// DefaultExploration is the UCB1 exploration constant.
	DefaultExploration = math.Sqrt2

	// DefaultMaxChildren caps how many children a node materialises on
	// expansion. Larger candidate sets are subsampled uniformly.
	DefaultMaxChildren = 1000
)

// Config tunes the search. The zero value picks defaults and a time-based
// seed.
type Config struct {
	// Exploration is the UCB1 exploration constant c.
	Exploration float64

	// MaxChildren caps the number of children created per expansion.
	MaxChildren int

	// Seed makes the search deterministic when non-zero.
	Seed int64

	// Progress, when set, is called every ProgressEvery iterations with
	// (completed, total). Search runs each iteration atomically, so the
	// callback only ever observes a consistent tree boundary.
	Progress      func(done, total int)
	ProgressEvery int
}

func (c Config) withDefaults() Config {
	if c.Exploration == 0 {
		c.Exploration = DefaultExploration
	}
	if c.MaxChildren == 0 {
		c.MaxChildren = DefaultMaxChildren
	}
	return c
}

// Engine runs searches. An Engine is single-threaded: one Search call runs
// to completion before the next, and the tree it builds is private to that
// call.
type Engine struct {
	cfg Config
	rng *rand.Rand
}

// New creates an engine from the given config.
func New(cfg Config) *Engine {
	cfg = cfg.withDefaults()

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = randutil.New(cfg.Seed)
	} else {
		rng = randutil.NewFromTime()
	}

	return &Engine{cfg: cfg, rng: rng}
}

// Search runs the given number of selection, expansion, simulation and
// backpropagation cycles from the initial state and returns the estimated
// win probability in [0,1]. With zero iterations the root is never visited
// and the estimate is exactly 0.5.
func (e *Engine) Search(initial *game.GameState, iterations int) (float64, error) {
	t := newTree(initial.Clone())

	for i := 0; i < iterations; i++ {
		id := e.selectNode(t)

		// Lazy expansion: a node's first visit is always a direct
		// rollout. Only once it has been visited do we pay for
		// generating its children.
		if n := t.at(id); !n.terminal() && !n.expanded && n.visits > 0 {
			var err error
			id, err = e.expand(t, id)
			if err != nil {
				return 0, err
			}
		}

		outcome, err := e.simulate(t.at(id).state)
		if err != nil {
			return 0, err
		}

		backpropagate(t, id, outcome)

		if e.cfg.Progress != nil && e.cfg.ProgressEvery > 0 && (i+1)%e.cfg.ProgressEvery == 0 {
			e.cfg.Progress(i+1, iterations)
		}
	}

	root := t.at(0)
	if root.visits == 0 {
		return 0.5, nil
	}
	return root.wins / float64(root.visits), nil
}

// selectNode descends from the root by UCB1 until it reaches a terminal or
// childless node. A child with zero visits scores infinite and is always
// preferred; once every child has a visit the parent's count is at least
// one, so the logarithm argument never drops below 1.
func (e *Engine) selectNode(t *tree) nodeID {
	id := nodeID(0)
	for {
		n := t.at(id)
		if n.terminal() || !n.expanded || len(n.children) == 0 {
			return id
		}

		best := n.children[0]
		bestValue := math.Inf(-1)
		for _, child := range n.children {
			value := e.ucb1(n, t.at(child))
			if value > bestValue {
				best = child
				bestValue = value
			}
		}
		id = best
	}
}

// ucb1 scores a child for selection: exploitation (observed win rate) plus
// exploration weighted by how under-sampled the child is.
func (e *Engine) ucb1(parent, child *node) float64 {
	if child.visits == 0 {
		return math.Inf(1)
	}
	exploitation := child.wins / float64(child.visits)
	exploration := e.cfg.Exploration * math.Sqrt(math.Log(float64(parent.visits))/float64(child.visits))
	return exploitation + exploration
}

// expand materialises the node's children per the stage policy, then hands
// back one uniformly-chosen child to roll out.
func (e *Engine) expand(t *tree, id nodeID) (nodeID, error) {
	states, err := e.childStates(t.at(id).state)
	if err != nil {
		return 0, err
	}

	for _, state := range states {
		t.add(id, state)
	}
	n := t.at(id)
	n.expanded = true

	if len(n.children) == 0 {
		return id, nil
	}
	return n.children[e.rng.IntN(len(n.children))], nil
}

// childStates generates the successor deal states for one stage step:
// opponent hole cards after preflop, then flop, turn and river. Candidate
// combinations beyond MaxChildren are subsampled uniformly via a partial
// shuffle before any state is materialised.
func (e *Engine) childStates(state *game.GameState) ([]*game.GameState, error) {
	d := deck.NewExcluding(e.rng, state.KnownCards())
	avail := d.Remaining()

	var draw int
	switch state.Stage() {
	case game.Preflop:
		draw = 2
	case game.OpponentDealt:
		draw = 3
	case game.FlopDealt, game.TurnDealt:
		draw = 1
	default:
		return nil, fmt.Errorf("cannot expand stage %s", state.Stage())
	}

	combos := sampleCombos(e.rng, len(avail), draw, e.cfg.MaxChildren)

	states := make([]*game.GameState, 0, len(combos))
	for _, combo := range combos {
		child := state.Clone()
		var err error
		switch state.Stage() {
		case game.Preflop:
			err = child.SetOpponentHole([]deck.Card{avail[combo[0]], avail[combo[1]]})
		case game.OpponentDealt:
			err = child.SetFlop([]deck.Card{avail[combo[0]], avail[combo[1]], avail[combo[2]]})
		case game.FlopDealt:
			err = child.SetTurn(avail[combo[0]])
		case game.TurnDealt:
			err = child.SetRiver(avail[combo[0]])
		}
		if err != nil {
			return nil, err
		}
		states = append(states, child)
	}

	return states, nil
}

// simulate rolls a state out to showdown: assign random opponent cards if
// they are still unknown, deal the remaining community cards from a deck
// excluding everything known, and score the showdown. Wins map to 1, ties
// to 0.5, losses to 0.
func (e *Engine) simulate(state *game.GameState) (float64, error) {
	rollout := state.Clone()

	if len(rollout.OpponentHole()) == 0 {
		d := deck.NewExcluding(e.rng, rollout.KnownCards())
		cards, err := d.Draw(2)
		if err != nil {
			return 0, err
		}
		if err := rollout.SetOpponentHole(cards); err != nil {
			return 0, err
		}
	}

	// Fresh deck so the opponent's cards just assigned are excluded too.
	d := deck.NewExcluding(e.rng, rollout.KnownCards())
	if err := rollout.AdvanceToShowdown(d); err != nil {
		return 0, err
	}

	result, err := rollout.EvaluateWinner()
	if err != nil {
		return 0, err
	}

	switch {
	case result > 0:
		return 1.0, nil
	case result < 0:
		return 0.0, nil
	default:
		return 0.5, nil
	}
}

// backpropagate adds the outcome to every node from id up to the root.
func backpropagate(t *tree, id nodeID, outcome float64) {
	for id != noParent {
		n := t.at(id)
		n.update(outcome)
		id = n.parent
	}
}

// EstimateWinProbability is the caller-facing wrapper: build the initial
// deal state for the hero's hole cards and search it.
func EstimateWinProbability(hole []deck.Card, iterations int, cfg Config) (float64, error) {
	state, err := game.New(hole)
	if err != nil {
		return 0, err
	}
	return New(cfg).Search(state, iterations)
}

// sampleCombos returns k-element subsets of [0, n), sorted ascending. When
// the full candidate set fits within limit it is enumerated exhaustively;
// otherwise limit distinct subsets are drawn uniformly at random, which is
// equivalent to shuffle-then-truncate over the full enumeration without
// materialising it.
func sampleCombos(rng *rand.Rand, n, k, limit int) [][]int {
	total := binomial(n, k)
	if total <= limit {
		return enumerateCombos(n, k)
	}

	seen := make(map[[3]int]bool, limit)
	combos := make([][]int, 0, limit)
	for len(combos) < limit {
		picked := randutil.SampleIndices(rng, n, k)
		sort.Ints(picked)

		var key [3]int
		copy(key[:], picked)
		if seen[key] {
			continue
		}
		seen[key] = true
		combos = append(combos, picked)
	}
	return combos
}

// enumerateCombos lists every k-subset of [0, n) for k up to 3.
func enumerateCombos(n, k int) [][]int {
	var combos [][]int
	switch k {
	case 1:
		for i := 0; i < n; i++ {
			combos = append(combos, []int{i})
		}
	case 2:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				combos = append(combos, []int{i, j})
			}
		}
	case 3:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				for l := j + 1; l < n; l++ {
					combos = append(combos, []int{i, j, l})
				}
			}
		}
	}
	return combos
}

func binomial(n, k int) int {
	if k > n {
		return 0
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}
