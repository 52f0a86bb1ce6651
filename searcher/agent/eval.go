package agent

import (
	"chainreaction/experiments/metrics"
	"chainreaction/game"
	"chainreaction/searcher"
)

type treeAgent struct {
	height   int
	evaluate game.Evaluate
}

// NewTreeAgent returns an agent that searches a fresh game tree of the given
// height for every move.
func NewTreeAgent(height int, evaluate game.Evaluate) Agent {
	return treeAgent{height: height, evaluate: evaluate}
}

func (a treeAgent) FindMove(board *game.Board, player game.Player) (game.Move, metrics.SearchMetric, bool) {
	tree := searcher.NewGameTree(board, player,
		searcher.WithHeight(a.height),
		searcher.WithEvaluationFn(a.evaluate),
		searcher.WithMetrics(),
	)
	defer tree.Clear()

	move, ok := tree.GetMove()
	return move, tree.Metrics(), ok
}
