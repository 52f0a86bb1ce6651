package agent

import (
	"testing"

	"chainreaction/game"
	"chainreaction/searcher"

	"github.com/stretchr/testify/require"
)

func TestTreeAgent(t *testing.T) {
	t.Run("plays the game tree's move", func(t *testing.T) {
		b := game.NewStartingBoard(3, 3)
		a := NewTreeAgent(2, game.EvaluateMass)

		got, metric, ok := a.FindMove(b, game.PlayerTwo)
		want, _ := searcher.NewGameTree(b, game.PlayerTwo, searcher.WithHeight(2)).GetMove()

		require.True(t, ok)
		require.Equal(t, want, got)
		require.Equal(t, 2, metric.Height)
		require.Greater(t, metric.Nodes, 1, "Search metrics should be collected")
		require.Greater(t, metric.Leaves, 0)
	})

	t.Run("no legal move", func(t *testing.T) {
		b, err := game.FromRows([][]int{{1, 1}, {1, 1}})
		require.NoError(t, err)

		_, _, ok := NewTreeAgent(2, game.EvaluateMass).FindMove(b, game.PlayerTwo)

		require.False(t, ok)
	})

	t.Run("does not modify the board", func(t *testing.T) {
		b := game.NewStartingBoard(3, 3)

		NewTreeAgent(2, game.EvaluateCells).FindMove(b, game.PlayerOne)

		require.True(t, game.NewStartingBoard(3, 3).Equal(b))
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		b, err := game.FromRows([][]int{{1, -1, 0}, {-1, 0, 1}})
		require.NoError(t, err)
		a := NewRandomAgent(1)

		for i := 0; i < 50; i++ {
			move, _, ok := a.FindMove(b, game.PlayerTwo)
			require.True(t, ok)
			require.True(t, b.IsLegal(move.Row, move.Col, game.PlayerTwo))
		}
	})

	t.Run("same seed same moves", func(t *testing.T) {
		b := game.NewBoard(4, 4)
		a1 := NewRandomAgent(42)
		a2 := NewRandomAgent(42)

		for i := 0; i < 10; i++ {
			m1, _, _ := a1.FindMove(b, game.PlayerOne)
			m2, _, _ := a2.FindMove(b, game.PlayerOne)
			require.Equal(t, m1, m2)
		}
	})

	t.Run("no legal move", func(t *testing.T) {
		b, err := game.FromRows([][]int{{-1, -1}, {-1, -1}})
		require.NoError(t, err)

		_, _, ok := NewRandomAgent(1).FindMove(b, game.PlayerOne)

		require.False(t, ok)
	})
}
