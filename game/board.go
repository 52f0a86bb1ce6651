package game

import (
	"encoding/binary"
	"fmt"
	"strings"

	"chainreaction/utils"

	"github.com/cespare/xxhash"
	"github.com/samber/lo"
)

type BoardHash uint64

// Board is a height x width grid of signed stack counts. Zero is empty, the
// sign is the owner and the magnitude is the number of pieces.
type Board struct {
	height int
	width  int
	cells  []int // Row-major
}

// NewBoard returns an empty board.
func NewBoard(height, width int) *Board {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", height, width))
	}
	return &Board{
		height: height,
		width:  width,
		cells:  make([]int, height*width),
	}
}

// NewStartingBoard returns a board with one piece for each player in opposite
// corners, player one top-left.
func NewStartingBoard(height, width int) *Board {
	b := NewBoard(height, width)
	b.Set(0, 0, int(PlayerOne))
	b.Set(height-1, width-1, int(PlayerTwo))
	return b
}

// FromRows builds a board from a rectangular slice of rows.
func FromRows(rows [][]int) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("board must have at least one row and one column")
	}
	width := len(rows[0])
	b := NewBoard(len(rows), width)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", i, len(row), width)
		}
		copy(b.cells[i*width:], row)
	}
	return b, nil
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

func (b *Board) Get(row, col int) int {
	return b.cells[row*b.width+col]
}

func (b *Board) Set(row, col, value int) {
	b.cells[row*b.width+col] = value
}

// Copy returns a deep copy sharing no storage with b.
func (b *Board) Copy() *Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		height: b.height,
		width:  b.width,
		cells:  cells,
	}
}

// Rows returns a copy of the board as a slice of rows.
func (b *Board) Rows() [][]int {
	rows := make([][]int, b.height)
	for i := range rows {
		rows[i] = make([]int, b.width)
		copy(rows[i], b.cells[i*b.width:(i+1)*b.width])
	}
	return rows
}

// IsLegal reports whether player may place at row, col: the cell is on the
// board and either empty or already owned by player.
func (b *Board) IsLegal(row, col int, player Player) bool {
	if !b.InBounds(row, col) {
		return false
	}
	cell := b.Get(row, col)
	return cell == 0 || utils.Sign(cell) == utils.Sign(int(player))
}

// Place adds one of player's pieces at row, col. Callers check IsLegal first.
func (b *Board) Place(row, col int, player Player) {
	b.cells[row*b.width+col] += int(player)
}

// LegalMoves lists player's legal placements in row-major order.
func (b *Board) LegalMoves(player Player) []Move {
	moves := []Move{}
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if b.IsLegal(row, col, player) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// Owner returns the single player owning every piece on the board, or
// NoPlayer if the board is empty or both players have pieces.
func (b *Board) Owner() Player {
	owner := 0
	for _, cell := range b.cells {
		if cell == 0 {
			continue
		}
		sign := utils.Sign(cell)
		if owner != 0 && sign != owner {
			return NoPlayer
		}
		owner = sign
	}
	return Player(owner)
}

// Winner is the player holding every piece, NoPlayer while the game is open.
func (b *Board) Winner() Player {
	return b.Owner()
}

func (b *Board) Hash() BoardHash {
	hasher := xxhash.New()

	binary.Write(hasher, binary.LittleEndian, int64(b.height))
	binary.Write(hasher, binary.LittleEndian, int64(b.width))
	for _, cell := range b.cells {
		binary.Write(hasher, binary.LittleEndian, int64(cell))
	}

	return BoardHash(hasher.Sum64())
}

// Equal compares size and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.height != other.height || b.width != other.width {
		return false
	}
	for i, cell := range b.cells {
		if other.cells[i] != cell {
			return false
		}
	}
	return true
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		cells := lo.Map(b.cells[row*b.width:(row+1)*b.width], func(cell int, _ int) string {
			if cell == 0 {
				return "  ."
			}
			return fmt.Sprintf("%3d", cell)
		})
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
