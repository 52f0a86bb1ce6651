package experiments

import (
	"fmt"

	"chainreaction/engine"
	"chainreaction/experiments/metrics"
	"chainreaction/game"
	"chainreaction/meta"
	"chainreaction/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	KindTree   = "tree"
	KindRandom = "random"
)

type Settings struct {
	Name      string
	OutputDir string
	Rows      int
	Cols      int
	Games     int // Per match up
	MaxTurns  int
	Heights   []int
	Evaluator string
	Seed      uint64
}

func DefaultSettings() Settings {
	return Settings{
		Name:      "height",
		OutputDir: "results",
		Rows:      meta.Rows,
		Cols:      meta.Cols,
		Games:     meta.Games,
		MaxTurns:  meta.MaxTurns,
		Heights:   []int{meta.MinTreeHeight, 3, meta.TreeHeight},
		Evaluator: "mass",
		Seed:      1,
	}
}

// RunHeightExperiment pairs a tree agent of every height against the random
// baseline, swapping seats every game, and stores the records under
// OutputDir. It returns the directory the records were written to.
func RunHeightExperiment(s Settings) (string, error) {
	if _, err := game.EvaluatorByName(s.Evaluator); err != nil {
		return "", err
	}

	baseline := metrics.AgentConfig{ID: 0, Kind: KindRandom, Seed: s.Seed}
	heightConfigs := lo.Map(s.Heights, func(height int, i int) metrics.AgentConfig {
		return metrics.AgentConfig{ID: i + 1, Kind: KindTree, Height: height, Evaluator: s.Evaluator}
	})
	matchUps := lo.Map(heightConfigs, func(config metrics.AgentConfig, _ int) []metrics.AgentConfig {
		return []metrics.AgentConfig{config, baseline}
	})

	return runExperiment(s, append([]metrics.AgentConfig{baseline}, heightConfigs...), matchUps)
}

func runExperiment(s Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	wins := map[int]int{}

	log.Info().Msgf("starting %s experiment...", s.Name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < s.Games; i++ {
			// Alternate the starting seat
			config1, config2 := matchup[0], matchup[1]
			if i%2 == 1 {
				config1, config2 = config2, config1
			}

			count++
			winner, gameMetric, moveMetrics := runGame(s, config1, config2, count)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch winner {
			case game.PlayerOne:
				wins[config1.ID]++
			case game.PlayerTwo:
				wins[config2.ID]++
			}
			log.Info().Msgf("completed matchup %d of %d game %d with winner: %v", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d, agent %d won %d of %d games", mi+1, len(matchUps), matchup[0].ID, wins[matchup[0].ID], s.Games)
	}

	log.Info().Msgf("completed %s experiment", s.Name)

	dir, err := store(s, configs, gameRecords, moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to store %s experiment: %w", s.Name, err)
	}
	return dir, nil
}

func store(s Settings, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(s.OutputDir, s.Name)
	if err != nil {
		return "", err
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", err
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(s Settings, config1, config2 metrics.AgentConfig, gameID int) (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	agents := []agent.Agent{
		createAgent(config1, gameID),
		createAgent(config2, gameID),
	}
	e := engine.LocalEngine(agents, game.NewStartingBoard(s.Rows, s.Cols))
	if s.MaxTurns > 0 {
		e.MaxTurns = s.MaxTurns
	}

	return e.Run()
}

func createAgent(config metrics.AgentConfig, gameID int) agent.Agent {
	if config.Kind == KindRandom {
		// A different but reproducible sequence every game
		return agent.NewRandomAgent(config.Seed + uint64(gameID))
	}

	evaluate, err := game.EvaluatorByName(config.Evaluator)
	if err != nil {
		panic(fmt.Sprintf("failed to create agent %d: %v", config.ID, err))
	}
	return agent.NewTreeAgent(config.Height, evaluate)
}
