package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"chainreaction/config"
	"chainreaction/engine"
	"chainreaction/experiments"
	"chainreaction/game"
	"chainreaction/searcher/agent"
	"chainreaction/shell"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	configPath = flag.String("config", "", "path to a config file (yaml, json or toml)")
	mode       = flag.String("mode", "shell", "what to run: shell, play or experiment")
	opponent   = flag.String("opponent", "tree", "player two in play mode: tree or random")
	rows       = flag.Int("rows", 0, "board rows, overrides the config")
	cols       = flag.Int("cols", 0, "board columns, overrides the config")
	height     = flag.Int("height", 0, "search height, overrides the config")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	c, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *rows > 0 {
		c.Rows = *rows
	}
	if *cols > 0 {
		c.Cols = *cols
	}
	if *height > 0 {
		c.TreeHeight = *height
	}
	err = c.Validate()
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	zerolog.SetGlobalLevel(c.Level())

	evaluate, _ := game.EvaluatorByName(c.Evaluator)

	switch *mode {
	case "shell":
		sc := shell.NewShellController(shell.Settings{
			Rows:     c.Rows,
			Cols:     c.Cols,
			Height:   c.TreeHeight,
			Evaluate: evaluate,
		}, os.Stdout)
		err = sc.Loop()
	case "play":
		err = play(c, evaluate)
	case "experiment":
		_, err = experiments.RunHeightExperiment(experiments.Settings{
			Name:      "height",
			OutputDir: c.OutputDir,
			Rows:      c.Rows,
			Cols:      c.Cols,
			Games:     c.Games,
			MaxTurns:  c.MaxTurns,
			Heights:   c.Heights,
			Evaluator: c.Evaluator,
			Seed:      c.Seed,
		})
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

// play runs a single game between two automated players and prints the result.
func play(c *config.Config, evaluate game.Evaluate) error {
	var second agent.Agent
	switch *opponent {
	case "tree":
		second = agent.NewTreeAgent(c.TreeHeight, evaluate)
	case "random":
		second = agent.NewRandomAgent(c.Seed)
	default:
		return fmt.Errorf("unknown opponent %q", *opponent)
	}

	e := engine.LocalEngine([]agent.Agent{agent.NewTreeAgent(c.TreeHeight, evaluate), second}, game.NewStartingBoard(c.Rows, c.Cols))
	e.MaxTurns = c.MaxTurns
	e.OnFrame = func(step int, frame *game.Board) {
		log.Debug().Msgf("step %d cascade frame\n%v", step, frame)
	}

	winner, gameMetric, _ := e.Run()
	fmt.Println(e.Board)
	if winner == game.NoPlayer {
		fmt.Printf("Draw after %d moves\n", gameMetric.TotalMoves)
		return nil
	}
	fmt.Printf("%v wins after %d moves in %v\n", winner, gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}
