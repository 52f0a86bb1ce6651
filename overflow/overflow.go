package overflow

import (
	"chainreaction/game"
	"chainreaction/utils"

	"github.com/rs/zerolog/log"
)

// MaxRounds bounds a single resolution. Cascades on a board where both
// players still hold pieces are expected to settle well before this.
const MaxRounds = 10000

// Orthogonal neighbour offsets, in the order pieces are handed out.
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Standard is the chain reaction rule set: a cell holds at most one piece
// fewer than it has orthogonal neighbours. Once it reaches its neighbour
// count it spills one piece into every neighbour, capturing them.
type Standard struct{}

func NewStandard() Standard {
	return Standard{}
}

func neighbours(b *game.Board, row, col int) []game.Move {
	cells := make([]game.Move, 0, len(directions))
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
		if b.InBounds(r, c) {
			cells = append(cells, game.Move{Row: r, Col: c})
		}
	}
	return cells
}

// Capacity is the largest stack row, col holds without spilling: 1 in a
// corner, 2 on an edge, 3 in the interior.
func Capacity(b *game.Board, row, col int) int {
	return len(neighbours(b, row, col)) - 1
}

func overflows(b *game.Board, row, col int) bool {
	cell := b.Get(row, col)
	return cell != 0 && utils.Abs(cell) > Capacity(b, row, col)
}

func (Standard) HasOverflow(b *game.Board) bool {
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			if overflows(b, row, col) {
				return true
			}
		}
	}
	return false
}

type spill struct {
	row, col int
	owner    int
}

// Resolve spills every overflowing cell at once, round after round, until the
// board is stable or a single player owns every piece. A copy of the board is
// pushed on trace after each round; trace may be nil.
func (s Standard) Resolve(b *game.Board, trace game.Trace) int {
	rounds := 0
	for b.Owner() == game.NoPlayer {
		spills := []spill{}
		for row := 0; row < b.Height(); row++ {
			for col := 0; col < b.Width(); col++ {
				if overflows(b, row, col) {
					spills = append(spills, spill{row: row, col: col, owner: utils.Sign(b.Get(row, col))})
				}
			}
		}
		if len(spills) == 0 {
			break
		}
		if rounds == MaxRounds {
			log.Warn().Msgf("cascade did not settle after %d rounds", rounds)
			break
		}

		// All spilling cells give up their pieces before any are handed out.
		targets := make([][]game.Move, len(spills))
		for i, sp := range spills {
			targets[i] = neighbours(b, sp.row, sp.col)
			b.Set(sp.row, sp.col, b.Get(sp.row, sp.col)-sp.owner*len(targets[i]))
		}
		for i, sp := range spills {
			for _, n := range targets[i] {
				b.Set(n.Row, n.Col, (utils.Abs(b.Get(n.Row, n.Col))+1)*sp.owner)
			}
		}

		rounds++
		if trace != nil {
			trace.Enqueue(b.Copy())
		}
	}
	return rounds
}
