package game

// Player identifies a side by the sign of the cells it owns.
type Player int

const (
	PlayerOne Player = 1
	PlayerTwo Player = -1
	NoPlayer  Player = 0
)

func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "Player1"
	case PlayerTwo:
		return "Player2"
	}
	return "None"
}

// Trace receives every intermediate board produced while a cascade resolves,
// in chronological order.
type Trace interface {
	Enqueue(board *Board)
}

// Resolver owns the cascade rules: per-cell capacity and redistribution.
// Resolve mutates board in place until it is settled and returns the number
// of redistribution rounds performed (0 if the board was already stable).
type Resolver interface {
	HasOverflow(board *Board) bool
	Resolve(board *Board, trace Trace) int
}

// Scores a board from player's perspective, between -100 and 100.
type Evaluate func(board *Board, player Player) int
