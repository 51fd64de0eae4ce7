package mcts

import "github.com/lox/holdem-mcts/internal/game"

// nodeID indexes a node within a tree's arena.
type nodeID = int32

const noParent nodeID = -1

// node is one search-tree node. Nodes live in the tree's arena and refer to
// their parent and children by index, so there are no pointer cycles to
// manage; the whole arena is dropped when a search completes.
type node struct {
	state    *game.GameState
	parent   nodeID
	children []nodeID
	visits   int
	wins     float64
	expanded bool
}

// terminal reports whether this node's deal has reached showdown.
func (n *node) terminal() bool {
	return n.state.Stage() == game.Showdown
}

// update folds one rollout outcome into the node's statistics.
func (n *node) update(outcome float64) {
	n.visits++
	n.wins += outcome
}

// tree is an arena of nodes. Index 0 is always the root.
type tree struct {
	nodes []node
}

func newTree(root *game.GameState) *tree {
	return &tree{
		nodes: []node{{state: root, parent: noParent}},
	}
}

// add appends a child of parent to the arena and returns its id.
func (t *tree) add(parent nodeID, state *game.GameState) nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{state: state, parent: parent})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// at returns the node with the given id. The pointer is only valid until the
// next add, which may grow the arena.
func (t *tree) at(id nodeID) *node {
	return &t.nodes[id]
}
