package engine

import (
	"errors"
	"fmt"

	"chainreaction/experiments/metrics"
	"chainreaction/game"
)

var ErrIllegalMove = errors.New("illegal move")

type Engine interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Play places player's piece at move and resolves the resulting cascade,
// pushing every intermediate board on trace. It returns the number of cascade
// rounds.
func Play(board *game.Board, player game.Player, move game.Move, resolver game.Resolver, trace game.Trace) (int, error) {
	if !board.IsLegal(move.Row, move.Col, player) {
		return 0, fmt.Errorf("%w: %v cannot play %v", ErrIllegalMove, player, move)
	}
	board.Place(move.Row, move.Col, player)
	if !resolver.HasOverflow(board) {
		return 0, nil
	}
	return resolver.Resolve(board, trace), nil
}
