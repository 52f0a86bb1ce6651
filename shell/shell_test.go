package shell

import (
	"bytes"
	"errors"
	"testing"

	"chainreaction/engine"
	"chainreaction/game"
	"chainreaction/meta"

	"github.com/stretchr/testify/require"
)

func newTestController(rows, cols int) (*ShellController, *bytes.Buffer) {
	out := &bytes.Buffer{}
	sc := NewShellController(Settings{Rows: rows, Cols: cols, Height: 2}, out)
	return sc, out
}

func setBoard(t *testing.T, sc *ShellController, rows [][]int, step int) {
	t.Helper()
	b, err := game.FromRows(rows)
	require.NoError(t, err)
	sc.board = b
	sc.step = step
}

func TestNewShellController(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		sc := NewShellController(Settings{Rows: 3, Cols: 3, Height: 42}, &bytes.Buffer{})

		require.Equal(t, meta.TreeHeight, sc.Height(), "Out of range height should fall back to the default")
		require.Equal(t, game.PlayerOne, sc.Turn())
		require.True(t, game.NewStartingBoard(3, 3).Equal(sc.Board()))
	})
}

func TestExecute(t *testing.T) {
	t.Run("show", func(t *testing.T) {
		sc, out := newTestController(3, 3)

		require.NoError(t, sc.Execute("show"))

		require.Contains(t, out.String(), sc.Board().String())
		require.Contains(t, out.String(), "Player1 to move")
	})

	t.Run("empty line", func(t *testing.T) {
		sc, out := newTestController(3, 3)

		require.NoError(t, sc.Execute("   "))
		require.Empty(t, out.String())
	})

	t.Run("move is answered by the AI", func(t *testing.T) {
		sc, out := newTestController(3, 3)

		require.NoError(t, sc.Execute("move 0 0"))

		require.Contains(t, out.String(), "Player1 plays (0, 0), 1 cascade frames")
		require.Contains(t, out.String(), "Player2 plays")
		require.Equal(t, game.PlayerOne, sc.Turn(), "Human should be back on move after the AI reply")
	})

	t.Run("quoted arguments", func(t *testing.T) {
		sc, _ := newTestController(3, 3)

		require.NoError(t, sc.Execute(`move "1" '1'`))
		require.Equal(t, 1, sc.Board().Get(1, 1))
	})

	t.Run("illegal move", func(t *testing.T) {
		sc, _ := newTestController(3, 3)

		err := sc.Execute("move 2 2")

		require.True(t, errors.Is(err, engine.ErrIllegalMove))
		require.Equal(t, game.PlayerOne, sc.Turn())
		require.True(t, game.NewStartingBoard(3, 3).Equal(sc.Board()))
	})

	t.Run("malformed move", func(t *testing.T) {
		sc, _ := newTestController(3, 3)

		require.Error(t, sc.Execute("move 1"))
		require.Error(t, sc.Execute("move a 1"))
		require.Error(t, sc.Execute("move 1 b"))
		require.Error(t, sc.Execute(`move "1 1`), "Unterminated quote")
	})

	t.Run("ai plays the side to move", func(t *testing.T) {
		sc, out := newTestController(3, 3)

		require.NoError(t, sc.Execute("ai"))

		require.Equal(t, game.PlayerTwo, sc.Turn())
		require.Contains(t, out.String(), "Player1 plays")
	})

	t.Run("winning move ends the game", func(t *testing.T) {
		sc, out := newTestController(2, 2)
		setBoard(t, sc, [][]int{{0, 1}, {1, -1}}, 2)

		require.NoError(t, sc.Execute("move 0 1"))

		require.Equal(t, game.PlayerOne, sc.Winner())
		require.Contains(t, out.String(), "Player1 wins!")
		require.NotContains(t, out.String(), "Player2 plays", "AI should not reply once the game is won")
		require.True(t, errors.Is(sc.Execute("ai"), errGameOver))
		require.True(t, errors.Is(sc.Execute("move 0 0"), errGameOver))
	})

	t.Run("ai without a legal move loses", func(t *testing.T) {
		sc, _ := newTestController(2, 2)
		setBoard(t, sc, [][]int{{-1, -1}, {-1, -1}}, 2)

		require.NoError(t, sc.Execute("ai"))

		require.Equal(t, game.PlayerTwo, sc.Winner())
	})

	t.Run("height", func(t *testing.T) {
		sc, _ := newTestController(3, 3)

		require.NoError(t, sc.Execute("height 3"))
		require.Equal(t, 3, sc.Height())

		require.Error(t, sc.Execute("height 7"))
		require.Error(t, sc.Execute("height 1"))
		require.Error(t, sc.Execute("height x"))
		require.Error(t, sc.Execute("height"))
		require.Equal(t, 3, sc.Height())
	})

	t.Run("new game", func(t *testing.T) {
		sc, _ := newTestController(3, 3)
		require.NoError(t, sc.Execute("move 0 0"))

		require.NoError(t, sc.Execute("new"))

		require.True(t, game.NewStartingBoard(3, 3).Equal(sc.Board()))
		require.Equal(t, game.PlayerOne, sc.Turn())
		require.Equal(t, game.NoPlayer, sc.Winner())
	})

	t.Run("help", func(t *testing.T) {
		sc, out := newTestController(3, 3)

		require.NoError(t, sc.Execute("help"))
		require.Equal(t, helpText, out.String())
	})

	t.Run("quit", func(t *testing.T) {
		sc, _ := newTestController(3, 3)

		require.True(t, errors.Is(sc.Execute("quit"), errQuit))
	})

	t.Run("unknown command", func(t *testing.T) {
		sc, _ := newTestController(3, 3)

		require.Error(t, sc.Execute("undo"))
	})
}
