package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"chainreaction/engine"
	"chainreaction/game"
	"chainreaction/meta"
	"chainreaction/overflow"
	"chainreaction/queue"
	"chainreaction/searcher/agent"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
)

var (
	errQuit     = errors.New("quit")
	errGameOver = errors.New("the game is over, start a new one with `new`")
)

type Settings struct {
	Rows     int
	Cols     int
	Height   int
	Evaluate game.Evaluate
	Human    game.Player // Seat taken by the human, the AI plays the other one
}

// ShellController plays a human against the game tree on a text board.
type ShellController struct {
	settings Settings
	out      io.Writer
	resolver game.Resolver

	board  *game.Board
	turn   game.Player // Player to move
	step   int
	winner game.Player
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShellController(s Settings, out io.Writer) *ShellController {
	if s.Height < meta.MinTreeHeight || s.Height > meta.MaxTreeHeight {
		s.Height = meta.TreeHeight
	}
	if s.Evaluate == nil {
		s.Evaluate = game.EvaluateMass
	}
	if s.Human != game.PlayerTwo {
		s.Human = game.PlayerOne
	}

	sc := &ShellController{settings: s, out: out, resolver: overflow.NewStandard()}
	sc.reset()
	return sc
}

func (sc *ShellController) reset() {
	sc.board = game.NewStartingBoard(sc.settings.Rows, sc.settings.Cols)
	sc.turn = game.PlayerOne
	sc.step = 0
	sc.winner = game.NoPlayer
}

func (sc *ShellController) Board() *game.Board {
	return sc.board
}

func (sc *ShellController) Turn() game.Player {
	return sc.turn
}

func (sc *ShellController) Winner() game.Player {
	return sc.winner
}

func (sc *ShellController) Height() int {
	return sc.settings.Height
}

func (sc *ShellController) showMessage(format string, args ...any) {
	fmt.Fprintf(sc.out, format+"\n", args...)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: %v", err)
}

func (sc *ShellController) show() {
	sc.showMessage("%v", sc.board)
	if sc.winner != game.NoPlayer {
		sc.showMessage("%v wins!", sc.winner)
		return
	}
	sc.showMessage("%v to move", sc.turn)
}

// Execute runs a single command line.
func (sc *ShellController) Execute(line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "show":
		sc.show()
	case "move":
		if len(args) != 2 {
			return errors.New("usage: move <row> <col>")
		}
		row, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad row: %w", err)
		}
		col, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad col: %w", err)
		}
		err = sc.play(game.Move{Row: row, Col: col})
		if err != nil {
			return err
		}
		// The AI answers straight away
		if sc.winner == game.NoPlayer && sc.turn != sc.settings.Human {
			err = sc.aiMove()
			if err != nil {
				return err
			}
		}
		sc.show()
	case "ai":
		err := sc.aiMove()
		if err != nil {
			return err
		}
		sc.show()
	case "height":
		if len(args) != 1 {
			return errors.New("usage: height <n>")
		}
		height, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad height: %w", err)
		}
		if height < meta.MinTreeHeight || height > meta.MaxTreeHeight {
			return fmt.Errorf("height must be between %d and %d", meta.MinTreeHeight, meta.MaxTreeHeight)
		}
		sc.settings.Height = height
		sc.showMessage("search height set to %d", height)
	case "new":
		sc.reset()
		sc.show()
	case "help":
		usage(sc.out)
	case "quit", "exit", "bye":
		return errQuit
	default:
		log.Debug().Msgf("you said: %v", strconv.Quote(line))
		return fmt.Errorf("unknown command %q, try `help`", cmd)
	}
	return nil
}

func (sc *ShellController) aiMove() error {
	if sc.winner != game.NoPlayer {
		return errGameOver
	}
	tree := agent.NewTreeAgent(sc.settings.Height, sc.settings.Evaluate)
	move, searchMetric, ok := tree.FindMove(sc.board.Copy(), sc.turn)
	if !ok {
		// Nothing left to place on, the opponent takes the game
		sc.winner = sc.turn.Opponent()
		sc.showMessage("%v has no legal move", sc.turn)
		return nil
	}
	log.Debug().Msgf("searched %d nodes in %v", searchMetric.Nodes, searchMetric.Duration)
	return sc.play(move)
}

func (sc *ShellController) play(move game.Move) error {
	if sc.winner != game.NoPlayer {
		return errGameOver
	}

	trace := queue.New[*game.Board]()
	rounds, err := engine.Play(sc.board, sc.turn, move, sc.resolver, trace)
	if err != nil {
		return err
	}
	sc.step++
	sc.showMessage("%v plays %v, %d cascade frames", sc.turn, move, trace.Len())
	log.Debug().Msgf("step %d resolved in %d rounds", sc.step, rounds)

	if sc.step > 1 {
		sc.winner = sc.board.Winner()
	}
	sc.turn = sc.turn.Opponent()
	return nil
}

// Loop reads commands until the user quits or closes the input.
func (sc *ShellController) Loop() error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mchainreaction>\033[0m ",
		HistoryFile:     "/tmp/chainreaction.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    completer,
		Stdout:          sc.out,

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return fmt.Errorf("failed to start shell: %w", err)
	}
	defer l.Close()

	sc.show()
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		err = sc.Execute(strings.TrimSpace(line))
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			sc.showError(err)
		}
	}
	log.Debug().Msg("exiting readline loop...")
	return nil
}
