package agent

import (
	"chainreaction/experiments/metrics"
	"chainreaction/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board *game.Board, player game.Player) (game.Move, metrics.SearchMetric, bool) {
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, false
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, true
}
