package engine

import (
	"time"

	"chainreaction/experiments/metrics"
	"chainreaction/game"
	"chainreaction/meta"
	"chainreaction/overflow"
	"chainreaction/queue"
	"chainreaction/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Local struct {
	Board    *game.Board
	Player   game.Player // Player to move
	MaxTurns int
	// OnFrame, if set, receives every intermediate board of a cascade
	OnFrame  func(step int, frame *game.Board)
	agents   map[game.Player]agent.Agent
	resolver game.Resolver
}

var _ Engine = (*Local)(nil)

// LocalEngine sets up a game on board between agents[0] as player one and
// agents[1] as player two, player one to move.
func LocalEngine(agents []agent.Agent, board *game.Board) *Local {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	return &Local{
		Board:    board,
		Player:   game.PlayerOne,
		MaxTurns: meta.MaxTurns,
		agents: map[game.Player]agent.Agent{
			game.PlayerOne: agents[0],
			game.PlayerTwo: agents[1],
		},
		resolver: overflow.NewStandard(),
	}
}

// Run executes the entire game loop until a winner is found. An agent without
// a legal move, or answering with an illegal one, forfeits the game. A winner
// is only declared once both players have placed a piece.
func (e *Local) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Player,
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}
	winner := game.NoPlayer

	log.Info().Msgf("%v is starting", e.Player)

	for step := 1; step <= e.MaxTurns; step++ {
		move, searchMetric, ok := e.agents[e.Player].FindMove(e.Board.Copy(), e.Player)
		if !ok {
			log.Info().Msgf("%v has no legal move", e.Player)
			winner = e.Player.Opponent()
			gameMetric.Forfeit = true
			break
		}

		trace := queue.New[*game.Board]()
		rounds, err := Play(e.Board, e.Player, move, e.resolver, trace)
		if err != nil {
			log.Warn().Err(err).Msgf("%v forfeits", e.Player)
			winner = e.Player.Opponent()
			gameMetric.Forfeit = true
			break
		}
		for !trace.IsEmpty() {
			frame, _ := trace.Dequeue()
			if e.OnFrame != nil {
				e.OnFrame(step, frame)
			}
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:          step,
			Player:        e.Player,
			Move:          move,
			BoardHash:     e.Board.Hash(),
			CascadeRounds: rounds,
			SearchMetric:  searchMetric,
		})
		log.Debug().Msgf("step %d: %v played %v, %d cascade rounds\n%v", step, e.Player, move, rounds, e.Board)

		if step > 1 {
			if w := e.Board.Winner(); w != game.NoPlayer {
				winner = w
				break
			}
		}
		e.Player = e.Player.Opponent()
	}

	if winner == game.NoPlayer {
		log.Info().Msgf("stopped after %d moves without a winner", len(moveMetrics))
	} else {
		log.Info().Msgf("%v wins after %d moves", winner, len(moveMetrics))
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return winner, gameMetric, moveMetrics
}
