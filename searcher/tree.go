package searcher

import (
	"chainreaction/experiments/metrics"
	"chainreaction/game"
	"chainreaction/overflow"
	"chainreaction/queue"

	"github.com/rs/zerolog/log"
)

type Option func(t *GameTree)

// GameTree expands every legal continuation to a fixed height and picks a move
// by plain minimax. It is built once per request and discarded afterwards.
type GameTree struct {
	height   int
	resolver game.Resolver
	evaluate game.Evaluate
	metrics  metrics.Collector
	nodes    []node
}

func WithHeight(height int) Option {
	return func(t *GameTree) {
		if height > 0 {
			t.height = height
		}
	}
}

func WithResolver(resolver game.Resolver) Option {
	return func(t *GameTree) {
		if resolver != nil {
			t.resolver = resolver
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(t *GameTree) {
		if evaluate != nil {
			t.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(t *GameTree) {
		t.metrics = metrics.NewCollector()
	}
}

// NewGameTree builds the full tree below a copy of board with player to move.
func NewGameTree(board *game.Board, player game.Player, options ...Option) *GameTree {
	t := &GameTree{ // Default values
		height:   DefaultHeight,
		resolver: overflow.NewStandard(),
		evaluate: game.EvaluateMass,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(t)
	}

	t.metrics.Start(t.height)
	t.addNode(node{board: board.Copy(), depth: 0, player: player})
	t.build(rootID, t.height)
	return t
}

func (t *GameTree) Height() int {
	return t.height
}

// Size is the number of nodes currently held by the tree.
func (t *GameTree) Size() int {
	return len(t.nodes)
}

func (t *GameTree) Metrics() metrics.SearchMetric {
	return t.metrics.Complete()
}

func (t *GameTree) addNode(n node) nodeID {
	t.nodes = append(t.nodes, n)
	t.metrics.AddNode()
	return nodeID(len(t.nodes) - 1)
}

func (t *GameTree) build(id nodeID, height int) {
	if height == 0 {
		return
	}

	// Appending children may move the arena; keep what we need by value.
	board, player, depth := t.nodes[id].board, t.nodes[id].player, t.nodes[id].depth
	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			if !board.IsLegal(row, col, player) {
				continue
			}
			next := board.Copy()
			next.Place(row, col, player)
			next = t.settle(next)

			child := t.addNode(node{
				board:  next,
				depth:  depth + 1,
				player: player.Opponent(),
				move:   game.Move{Row: row, Col: col},
			})
			t.nodes[id].children = append(t.nodes[id].children, child)
			t.build(child, height-1)
		}
	}
}

// settle runs any cascade on board to completion and returns the final frame.
func (t *GameTree) settle(board *game.Board) *game.Board {
	if !t.resolver.HasOverflow(board) {
		return board
	}
	trace := queue.New[*game.Board]()
	trace.Enqueue(board)
	t.resolver.Resolve(board, trace)

	settled := board
	for !trace.IsEmpty() {
		settled, _ = trace.Dequeue()
	}
	return settled
}

// minimax scores leaves from their own player's perspective, and takes the
// max of the children at even depths, the min at odd depths.
func (t *GameTree) minimax(id nodeID) int {
	n := &t.nodes[id]
	if n.isLeaf() {
		n.score = t.evaluate(n.board, n.player)
		n.scored = true
		t.metrics.AddLeaf()
		return n.score
	}

	best := t.minimax(n.children[0])
	for _, child := range n.children[1:] {
		score := t.minimax(child)
		if n.maximizing() {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	n.score = best
	n.scored = true
	return n.score
}

// GetMove returns the root move with the highest minimax score, the first in
// row-major order on ties. It returns false when there is no legal move.
func (t *GameTree) GetMove() (game.Move, bool) {
	if len(t.nodes) == 0 {
		return game.Move{}, false
	}

	var bestMove game.Move
	bestScore := 0
	found := false
	for _, child := range t.nodes[rootID].children {
		score := t.minimax(child)
		if !found || score > bestScore {
			bestScore = score
			bestMove = t.nodes[child].move
			found = true
		}
	}

	if found {
		log.Debug().Msgf("player %d picks %v with score %d out of %d nodes", t.nodes[rootID].player, bestMove, bestScore, len(t.nodes))
	}
	return bestMove, found
}

// Clear releases every node, children before parents.
func (t *GameTree) Clear() {
	if len(t.nodes) > 0 {
		t.release(rootID)
	}
	t.nodes = nil
}

func (t *GameTree) release(id nodeID) {
	for _, child := range t.nodes[id].children {
		t.release(child)
	}
	t.nodes[id] = node{}
}
