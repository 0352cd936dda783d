package config

import (
	"os"
	"strconv"
	"time"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "JOKER_POKER_"

// FromEnv overrides base with the JOKER_POKER_* variables that are set.
// Malformed values are ignored. The difficulty preset is resolved by the
// caller before base is built.
func FromEnv(base Game) Game {
	cfg := base

	if val, ok := getEnvInt("HAND_SIZE"); ok && val > 0 {
		cfg.HandSize = val
	}
	if val, ok := getEnvInt("MAX_SELECTION"); ok && val > 0 {
		cfg.MaxSelection = val
	}
	if val, ok := getEnvInt("HANDS_PER_ROUND"); ok && val > 0 {
		cfg.HandsPerRound = val
	}
	if val, ok := getEnvInt("DISCARDS_PER_ROUND"); ok && val >= 0 {
		cfg.DiscardsPerRound = val
	}
	if val, ok := getEnvInt("STARTING_TARGET"); ok && val > 0 {
		cfg.StartingTarget = val
	}
	if val, ok := getEnvInt("TARGET_INCREMENT"); ok && val >= 0 {
		cfg.TargetIncrement = val
	}
	if val, ok := getEnvInt("JOKERS_PER_ROUND"); ok && val >= 0 {
		cfg.JokersPerRound = val
	}
	if val := os.Getenv(EnvPrefix + "REROLL_JOKERS"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.RerollJokers = b
		}
	}
	if val := os.Getenv(EnvPrefix + "RESOLVE_DELAY"); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d >= 0 {
			cfg.ResolveDelay = d
		}
	}
	if val := os.Getenv(EnvPrefix + "SEED"); val != "" {
		if seed, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}

	return cfg
}

func getEnvInt(key string) (int, bool) {
	val := os.Getenv(EnvPrefix + key)
	if val == "" {
		return 0, false
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return num, true
}
