// Package config holds the balance of a joker poker game and loads it from
// YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/luca-patrignani/joker-poker/domain/deck"
	"github.com/luca-patrignani/joker-poker/domain/poker"
)

// Game is the balance configuration of a game.
type Game struct {
	HandSize         int           `yaml:"hand_size" json:"hand_size"`
	MaxSelection     int           `yaml:"max_selection" json:"max_selection"`
	HandsPerRound    int           `yaml:"hands_per_round" json:"hands_per_round"`
	DiscardsPerRound int           `yaml:"discards_per_round" json:"discards_per_round"`
	StartingTarget   int           `yaml:"starting_target" json:"starting_target"`
	TargetIncrement  int           `yaml:"target_increment" json:"target_increment"`
	JokersPerRound   int           `yaml:"jokers_per_round" json:"jokers_per_round"`
	RerollJokers     bool          `yaml:"reroll_jokers" json:"reroll_jokers"`
	ResolveDelay     time.Duration `yaml:"resolve_delay" json:"resolve_delay"`

	// Seed makes the deck and joker picks reproducible. Zero uses the
	// cryptographic source.
	Seed int64 `yaml:"seed" json:"seed"`
}

// Default returns the standard balance.
func Default() Game {
	r := poker.DefaultRules()
	return Game{
		HandSize:         r.HandSize,
		MaxSelection:     r.MaxSelection,
		HandsPerRound:    r.HandsPerRound,
		DiscardsPerRound: r.DiscardsPerRound,
		StartingTarget:   r.StartingTarget,
		TargetIncrement:  r.TargetIncrement,
		JokersPerRound:   r.JokersPerRound,
		RerollJokers:     r.RerollJokers,
		ResolveDelay:     1500 * time.Millisecond,
	}
}

// Casual gives more room to experiment.
func Casual() Game {
	g := Default()
	g.HandsPerRound = 5
	g.DiscardsPerRound = 4
	g.StartingTarget = 200
	g.TargetIncrement = 100
	return g
}

// Hard tightens hands and targets.
func Hard() Game {
	g := Default()
	g.HandsPerRound = 3
	g.DiscardsPerRound = 2
	g.StartingTarget = 450
	g.TargetIncrement = 200
	return g
}

// Preset returns the balance named by difficulty: "", "normal", "casual"
// or "hard".
func Preset(difficulty string) (Game, error) {
	switch difficulty {
	case "", "normal":
		return Default(), nil
	case "casual":
		return Casual(), nil
	case "hard":
		return Hard(), nil
	}
	return Game{}, fmt.Errorf("unknown difficulty %q", difficulty)
}

// Load reads a YAML file on top of base. Keys missing from the file keep
// the value they have in base.
func Load(path string, base Game) (Game, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Game{}, err
	}
	g := base
	if err := yaml.Unmarshal(b, &g); err != nil {
		return Game{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// Validate reports every inconsistent field at once.
func (g Game) Validate() error {
	var errs []error
	if g.HandSize <= 0 || g.HandSize > poker.DeckSize {
		errs = append(errs, fmt.Errorf("hand_size must be in 1..%d, got %d", poker.DeckSize, g.HandSize))
	}
	if g.MaxSelection <= 0 || g.MaxSelection > g.HandSize {
		errs = append(errs, fmt.Errorf("max_selection must be in 1..hand_size, got %d", g.MaxSelection))
	}
	if g.HandsPerRound <= 0 {
		errs = append(errs, fmt.Errorf("hands_per_round must be positive, got %d", g.HandsPerRound))
	}
	if g.DiscardsPerRound < 0 {
		errs = append(errs, fmt.Errorf("discards_per_round must not be negative, got %d", g.DiscardsPerRound))
	}
	if g.StartingTarget <= 0 {
		errs = append(errs, fmt.Errorf("starting_target must be positive, got %d", g.StartingTarget))
	}
	if g.TargetIncrement < 0 {
		errs = append(errs, fmt.Errorf("target_increment must not be negative, got %d", g.TargetIncrement))
	}
	if g.JokersPerRound < 0 || g.JokersPerRound > len(poker.JokerTypes) {
		errs = append(errs, fmt.Errorf("jokers_per_round must be in 0..%d, got %d", len(poker.JokerTypes), g.JokersPerRound))
	}
	if g.ResolveDelay < 0 {
		errs = append(errs, fmt.Errorf("resolve_delay must not be negative, got %s", g.ResolveDelay))
	}
	return errors.Join(errs...)
}

// Rules converts the balance into engine rules.
func (g Game) Rules() poker.Rules {
	return poker.Rules{
		HandSize:         g.HandSize,
		MaxSelection:     g.MaxSelection,
		HandsPerRound:    g.HandsPerRound,
		DiscardsPerRound: g.DiscardsPerRound,
		StartingTarget:   g.StartingTarget,
		TargetIncrement:  g.TargetIncrement,
		JokersPerRound:   g.JokersPerRound,
		RerollJokers:     g.RerollJokers,
	}
}

// Source returns the randomness selected by Seed.
func (g Game) Source() deck.Source {
	if g.Seed == 0 {
		return deck.NewCryptoSource()
	}
	return deck.NewSeededSource(g.Seed)
}
