package engine

import (
	"errors"
	"testing"

	"chainreaction/experiments/metrics"
	"chainreaction/game"
	"chainreaction/overflow"
	"chainreaction/queue"
	"chainreaction/searcher/agent"

	"github.com/stretchr/testify/require"
)

// scripted plays a fixed list of moves, then reports no move.
type scripted struct {
	moves []game.Move
}

func (s *scripted) FindMove(*game.Board, game.Player) (game.Move, metrics.SearchMetric, bool) {
	if len(s.moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, false
	}
	move := s.moves[0]
	s.moves = s.moves[1:]
	return move, metrics.SearchMetric{}, true
}

func TestPlay(t *testing.T) {
	t.Run("legal placement without cascade", func(t *testing.T) {
		b := game.NewStartingBoard(3, 3)

		rounds, err := Play(b, game.PlayerTwo, game.Move{Row: 1, Col: 1}, overflow.NewStandard(), nil)

		require.NoError(t, err)
		require.Equal(t, 0, rounds)
		require.Equal(t, -1, b.Get(1, 1))
	})

	t.Run("placement triggering a cascade", func(t *testing.T) {
		b := game.NewStartingBoard(3, 3)
		trace := queue.New[*game.Board]()

		rounds, err := Play(b, game.PlayerOne, game.Move{Row: 0, Col: 0}, overflow.NewStandard(), trace)

		require.NoError(t, err)
		require.Equal(t, 1, rounds)
		require.Equal(t, 1, trace.Len(), "One frame per cascade round")
		require.Equal(t, [][]int{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}}, b.Rows())
	})

	t.Run("illegal placement", func(t *testing.T) {
		b := game.NewStartingBoard(3, 3)

		_, err := Play(b, game.PlayerOne, game.Move{Row: 2, Col: 2}, overflow.NewStandard(), nil)

		require.True(t, errors.Is(err, ErrIllegalMove))
		require.True(t, game.NewStartingBoard(3, 3).Equal(b), "Illegal move should leave the board untouched")
	})
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics without two agents", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine([]agent.Agent{agent.NewRandomAgent(1)}, game.NewStartingBoard(3, 3))
		})
	})

	t.Run("random agents finish a game", func(t *testing.T) {
		e := LocalEngine([]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)}, game.NewStartingBoard(3, 3))

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, winner, gameMetric.Winner)
		require.Equal(t, game.PlayerOne, gameMetric.StartingPlayer)
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.LessOrEqual(t, len(moveMetrics), e.MaxTurns)
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			if i%2 == 0 {
				require.Equal(t, game.PlayerOne, mm.Player, "Players should alternate")
			} else {
				require.Equal(t, game.PlayerTwo, mm.Player, "Players should alternate")
			}
		}
		if winner != game.NoPlayer {
			require.Equal(t, winner, e.Board.Winner())
			require.Equal(t, moveMetrics[len(moveMetrics)-1].BoardHash, e.Board.Hash())
		}
	})

	t.Run("illegal move forfeits", func(t *testing.T) {
		p1 := &scripted{moves: []game.Move{{Row: 1, Col: 1}}}
		p2 := &scripted{moves: []game.Move{{Row: 1, Col: 1}}} // Owned by player one by then
		e := LocalEngine([]agent.Agent{p1, p2}, game.NewStartingBoard(3, 3))

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.PlayerOne, winner)
		require.True(t, gameMetric.Forfeit)
		require.Len(t, moveMetrics, 1)
	})

	t.Run("no move forfeits", func(t *testing.T) {
		e := LocalEngine([]agent.Agent{&scripted{}, &scripted{}}, game.NewStartingBoard(3, 3))

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.PlayerTwo, winner)
		require.True(t, gameMetric.Forfeit)
		require.Empty(t, moveMetrics)
	})

	t.Run("move limit ends in a draw", func(t *testing.T) {
		e := LocalEngine([]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)}, game.NewStartingBoard(5, 6))
		e.MaxTurns = 2

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.NoPlayer, winner)
		require.False(t, gameMetric.Forfeit)
		require.Len(t, moveMetrics, 2)
	})

	t.Run("cascade frames reach the hook", func(t *testing.T) {
		p1 := &scripted{moves: []game.Move{{Row: 0, Col: 0}}}
		e := LocalEngine([]agent.Agent{p1, &scripted{}}, game.NewStartingBoard(3, 3))
		frames := 0
		e.OnFrame = func(step int, frame *game.Board) {
			require.Equal(t, 1, step)
			frames++
		}

		_, _, moveMetrics := e.Run()

		require.Equal(t, 1, frames)
		require.Equal(t, 1, moveMetrics[0].CascadeRounds)
	})

	t.Run("tree agent only plays legal moves", func(t *testing.T) {
		e := LocalEngine([]agent.Agent{agent.NewTreeAgent(2, game.EvaluateMass), agent.NewRandomAgent(3)}, game.NewStartingBoard(3, 3))
		e.MaxTurns = 6

		_, gameMetric, moveMetrics := e.Run()

		require.False(t, gameMetric.Forfeit)
		require.Greater(t, moveMetrics[0].Nodes, 1)
	})
}
