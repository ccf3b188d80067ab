package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"pokerhands/internal/config"
	"pokerhands/internal/rng"
	"pokerhands/internal/util"
	"pokerhands/pkg/deck"
	"pokerhands/pkg/poker"
)

// Version is the build version
var Version = "v0.0.0-dev"

var (
	players    = flag.Int("players", 0, "the number of players to deal to (overrides config)")
	seed       = flag.Int64("seed", -1, "the shuffle seed, 0 for a random shuffle (overrides config)")
	draws      = flag.Int("draws", -1, "the most cards each player may replace (overrides config)")
	jsonOutput = flag.Bool("json", false, "print the results as JSON")
	hands      handFlags
)

func init() {
	flag.Var(&hands, "hand", "a player's hand in the form of id=AS,KS,QS,JS,10S (repeatable)")
}

func main() {
	flag.Parse()
	setupLogger()
	setupOutput()

	cfg := config.Instance()
	if *players > 0 {
		cfg.Game.Players = *players
	}
	if *seed >= 0 {
		cfg.Game.Seed = *seed
	}
	if *draws >= 0 {
		cfg.Game.MaxDraws = *draws
	}

	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	logrus.WithField("version", Version).Debug("starting")

	d := deck.New()
	evaluator := poker.New(d)

	var table []poker.Player
	if len(hands) > 0 {
		table = hands.players()
	} else {
		d.Shuffle(cfg.Game.Seed)
		logrus.WithFields(logrus.Fields{
			"seed": d.GetSeed(),
			"hash": d.HashCode(),
		}).Debug("shuffled deck")

		var err error
		table, err = deal(evaluator, cfg.Game.Players, cfg.Game.MaxDraws, rng.New(cfg.Game.Seed))
		if err != nil {
			logrus.WithError(err).Fatal("could not deal")
		}
	}

	results, err := evaluator.Evaluate(table)
	if err != nil {
		logrus.WithError(err).Fatal("could not evaluate hands")
	}

	if *jsonOutput {
		if err := json.NewEncoder(os.Stdout).Encode(results); err != nil {
			logrus.WithError(err).Fatal("could not encode results")
		}

		return
	}

	if err := render(table, results); err != nil {
		logrus.WithError(err).Fatal("could not render results")
	}
}

// deal gives each player a hand, then replaces up to maxDraws random cards
func deal(evaluator *poker.Evaluator, n, maxDraws int, r rng.Generator) ([]poker.Player, error) {
	names := util.GetRandomNames(r, n)
	table := make([]poker.Player, n)
	for i, name := range names {
		hand, err := evaluator.DealHand()
		if err != nil {
			return nil, err
		}

		table[i] = poker.Player{ID: name, Hand: hand}
	}

	if maxDraws == 0 {
		return table, nil
	}

	for i, player := range table {
		nDraws := r.Intn(maxDraws + 1)
		for _, pos := range pickPositions(r, len(player.Hand), nDraws) {
			hand, card, err := evaluator.Replace(player.Hand[pos], player.Hand)
			if err != nil {
				return nil, fmt.Errorf("could not replace a card for %s: %w", player.ID, err)
			}

			logrus.WithFields(logrus.Fields{
				"player":  player.ID,
				"discard": player.Hand[pos].String(),
				"draw":    card.String(),
			}).Info("drew a card")
			player.Hand = hand
		}

		table[i] = player
	}

	return table, nil
}

// pickPositions returns n distinct positions in [0, size)
func pickPositions(r rng.Generator, size, n int) []int {
	positions := make([]int, size)
	for i := range positions {
		positions[i] = i
	}

	for j := len(positions) - 1; j > 0; j-- {
		i := r.Intn(j + 1)
		positions[i], positions[j] = positions[j], positions[i]
	}

	return positions[:n]
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func setupOutput() {
	if config.Instance().Log.DisableColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableColor()
	}
}
