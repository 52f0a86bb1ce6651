package agent

import (
	"chainreaction/experiments/metrics"
	"chainreaction/game"
)

type Agent interface {
	// FindMove returns a move for player on board and the search metrics (if
	// collected), or false when player has no legal move
	FindMove(board *game.Board, player game.Player) (game.Move, metrics.SearchMetric, bool)
}
