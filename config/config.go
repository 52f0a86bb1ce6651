package config

import (
	"errors"
	"fmt"
	"strings"

	"chainreaction/game"
	"chainreaction/meta"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. CHAINREACTION_TREE_HEIGHT.
const EnvPrefix = "CHAINREACTION"

type Config struct {
	Rows       int    `mapstructure:"rows"`
	Cols       int    `mapstructure:"cols"`
	TreeHeight int    `mapstructure:"tree_height"`
	MaxTurns   int    `mapstructure:"max_turns"`
	Games      int    `mapstructure:"games"`
	Heights    []int  `mapstructure:"heights"` // Tree heights compared by the experiment
	Evaluator  string `mapstructure:"evaluator"`
	LogLevel   string `mapstructure:"log_level"`
	OutputDir  string `mapstructure:"output_dir"`
	Seed       uint64 `mapstructure:"seed"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("rows", meta.Rows)
	v.SetDefault("cols", meta.Cols)
	v.SetDefault("tree_height", meta.TreeHeight)
	v.SetDefault("max_turns", meta.MaxTurns)
	v.SetDefault("games", meta.Games)
	v.SetDefault("heights", []int{meta.MinTreeHeight, 3, meta.TreeHeight})
	v.SetDefault("evaluator", "mass")
	v.SetDefault("log_level", "info")
	v.SetDefault("output_dir", "results")
	v.SetDefault("seed", 1)
}

// Load reads the defaults, then the optional config file at path, then any
// CHAINREACTION_* environment variable, each overriding the previous one.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	c := &Config{}
	err := v.Unmarshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func validHeight(height int) bool {
	return height >= meta.MinTreeHeight && height <= meta.MaxTreeHeight
}

func (c *Config) Validate() error {
	errs := []error{}
	if c.Rows < 2 || c.Cols < 2 {
		errs = append(errs, fmt.Errorf("board must be at least 2x2, got %dx%d", c.Rows, c.Cols))
	}
	if !validHeight(c.TreeHeight) {
		errs = append(errs, fmt.Errorf("tree height must be between %d and %d, got %d", meta.MinTreeHeight, meta.MaxTreeHeight, c.TreeHeight))
	}
	for _, height := range c.Heights {
		if !validHeight(height) {
			errs = append(errs, fmt.Errorf("experiment height must be between %d and %d, got %d", meta.MinTreeHeight, meta.MaxTreeHeight, height))
		}
	}
	if c.Games < 1 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.MaxTurns < 1 {
		errs = append(errs, fmt.Errorf("max turns must be positive, got %d", c.MaxTurns))
	}
	if _, err := game.EvaluatorByName(c.Evaluator); err != nil {
		errs = append(errs, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("bad log level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Level is the parsed LogLevel; it assumes Validate passed.
func (c *Config) Level() zerolog.Level {
	level, _ := zerolog.ParseLevel(c.LogLevel)
	return level
}
