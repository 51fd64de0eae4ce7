package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-mcts/internal/deck"
	"github.com/lox/holdem-mcts/internal/game"
)

func testState(t *testing.T) *game.GameState {
	t.Helper()
	state, err := game.New(deck.MustParseCards("AsKh"))
	require.NoError(t, err)
	return state
}

func TestTreeAdd(t *testing.T) {
	tr := newTree(testState(t))

	root := tr.at(0)
	assert.Equal(t, noParent, root.parent)
	assert.Empty(t, root.children)

	a := tr.add(0, testState(t))
	b := tr.add(0, testState(t))
	c := tr.add(a, testState(t))

	assert.Equal(t, []nodeID{a, b}, tr.at(0).children)
	assert.Equal(t, []nodeID{c}, tr.at(a).children)
	assert.Equal(t, nodeID(0), tr.at(a).parent)
	assert.Equal(t, a, tr.at(c).parent)
}

func TestNodeUpdate(t *testing.T) {
	n := &node{}
	n.update(1.0)
	n.update(0.5)
	n.update(0.0)

	assert.Equal(t, 3, n.visits)
	assert.Equal(t, 1.5, n.wins)
}

func TestNodeTerminal(t *testing.T) {
	state := testState(t)
	n := &node{state: state}
	assert.False(t, n.terminal())

	require.NoError(t, state.SetOpponentHole(deck.MustParseCards("QdQc")))
	cards := deck.MustParseCards("2s7h9dJc3h")
	require.NoError(t, state.SetFlop(cards[:3]))
	require.NoError(t, state.SetTurn(cards[3]))
	require.NoError(t, state.SetRiver(cards[4]))
	assert.True(t, n.terminal())
}

func TestBackpropagate(t *testing.T) {
	tr := newTree(testState(t))
	a := tr.add(0, testState(t))
	b := tr.add(a, testState(t))

	backpropagate(tr, b, 1.0)
	backpropagate(tr, a, 0.5)

	assert.Equal(t, 2, tr.at(0).visits)
	assert.Equal(t, 1.5, tr.at(0).wins)
	assert.Equal(t, 2, tr.at(a).visits)
	assert.Equal(t, 1.5, tr.at(a).wins)
	assert.Equal(t, 1, tr.at(b).visits)
	assert.Equal(t, 1.0, tr.at(b).wins)
}
