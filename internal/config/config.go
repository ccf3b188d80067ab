package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"pokerhands/internal/util"
)

// players are limited by the number of five-card hands in a 52-card deck
const (
	minPlayers = 2
	maxPlayers = 10
	deckSize   = 52
	handSize   = 5
)

// Config provides configuration for the poker hand evaluator
type Config struct {
	loaded bool
	Log    struct {
		Level        string `yaml:"level"`
		DisableColor bool   `yaml:"disableColor" envconfig:"disable_color"`
	} `yaml:"log"`
	Game struct {
		Players  int   `yaml:"players"`
		Seed     int64 `yaml:"seed"`
		MaxDraws int   `yaml:"maxDraws" envconfig:"max_draws"`
	} `yaml:"game"`
}

var config Config

// DefaultConfig returns the configuration used when nothing else is set
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Log.Level = "info"
	cfg.Game.Players = 4

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults are used instead.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("PH_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("ph", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	config = cfg
	config.loaded = true
	return nil
}

// Validate checks that the values are usable
func (c Config) Validate() error {
	if c.Game.Players < minPlayers || c.Game.Players > maxPlayers {
		return fmt.Errorf("game.players must be between %d and %d, got %d", minPlayers, maxPlayers, c.Game.Players)
	}

	if c.Game.Seed < 0 {
		return fmt.Errorf("game.seed cannot be < 0")
	}

	if c.Game.MaxDraws < 0 || c.Game.MaxDraws > 5 {
		return fmt.Errorf("game.maxDraws must be between 0 and 5, got %d", c.Game.MaxDraws)
	}

	// every player may draw the most cards, so the deck has to cover it
	if need := c.Game.Players * (handSize + c.Game.MaxDraws); need > deckSize {
		return fmt.Errorf("game.players and game.maxDraws need up to %d cards, the deck has %d", need, deckSize)
	}

	return nil
}
