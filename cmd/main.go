package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/joker-poker/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags are resolved.
type app struct {
	v      *viper.Viper
	cfg    config.Game
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "joker-poker",
		Short:         "Poker hands against a target score, bent by jokers",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// a missing .env is fine
			_ = godotenv.Load()

			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			logger, err := newLogger(a.v.GetString("log-level"))
			if err != nil {
				return err
			}
			a.logger = logger

			cfg, err := loadConfig(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger.Debug("configuration loaded",
				"difficulty", a.v.GetString("difficulty"),
				"hands", cfg.HandsPerRound,
				"discards", cfg.DiscardsPerRound,
				"target", cfg.StartingTarget,
				"seed", cfg.Seed)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "YAML file with the game balance")
	flags.String("difficulty", "normal", "balance preset: normal, casual or hard")
	flags.Int64("seed", 0, "seed for a reproducible game (0 draws from the crypto source)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")

	a.v.SetEnvPrefix(strings.TrimSuffix(config.EnvPrefix, "_"))
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd.AddCommand(newPlayCmd(a), newEvalCmd(a))
	return rootCmd
}

// loadConfig layers the balance: difficulty preset, then the YAML file,
// then JOKER_POKER_* variables, then an explicit --seed.
func loadConfig(v *viper.Viper) (config.Game, error) {
	cfg, err := config.Preset(v.GetString("difficulty"))
	if err != nil {
		return config.Game{}, err
	}
	if path := v.GetString("config"); path != "" {
		cfg, err = config.Load(path, cfg)
		if err != nil {
			return config.Game{}, err
		}
	}
	cfg = config.FromEnv(cfg)
	if v.IsSet("seed") {
		cfg.Seed = v.GetInt64("seed")
	}
	if err := cfg.Validate(); err != nil {
		return config.Game{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(level string) (*slog.Logger, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(lvl))
	return slog.New(handler), nil
}

func parseLogLevel(level string) (pterm.LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return pterm.LogLevelDebug, nil
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", level)
}
