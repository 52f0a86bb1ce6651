package searcher

import "chainreaction/game"

// Nodes are stored in the tree's arena and refer to each other by index.
type nodeID int

const rootID nodeID = 0

// node is one ply: the settled board after move, and the player to move from it.
type node struct {
	board    *game.Board
	depth    int
	player   game.Player
	move     game.Move // Zero value for the root
	children []nodeID  // Row-major order of the moves
	score    int
	scored   bool
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

// maximizing nodes sit at even depths, the root's player to move.
func (n *node) maximizing() bool {
	return n.depth%2 == 0
}
