package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/joker-poker/domain/deck"
	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/ledger"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want pterm.LogLevel
	}{
		{"debug", pterm.LogLevelDebug},
		{"", pterm.LogLevelInfo},
		{"INFO", pterm.LogLevelInfo},
		{"warning", pterm.LogLevelWarn},
		{"error", pterm.LogLevelError},
	}
	for _, tt := range tests {
		got, err := parseLogLevel(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
	_, err := parseLogLevel("loud")
	require.Error(t, err)
}

func TestLoadConfigLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("discards_per_round: 1\n"), 0o600))
	t.Setenv("JOKER_POKER_STARTING_TARGET", "250")

	v := viper.New()
	v.Set("difficulty", "casual")
	v.Set("config", path)
	v.Set("seed", int64(9))

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.HandsPerRound, "from the casual preset")
	require.Equal(t, 1, cfg.DiscardsPerRound, "from the file")
	require.Equal(t, 250, cfg.StartingTarget, "from the environment")
	require.Equal(t, int64(9), cfg.Seed)
}

func TestLoadConfigErrors(t *testing.T) {
	v := viper.New()
	v.Set("difficulty", "nightmare")
	_, err := loadConfig(v)
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_selection: 20\n"), 0o600))
	v = viper.New()
	v.Set("config", path)
	_, err = loadConfig(v)
	require.Error(t, err)
}

func TestCardLabels(t *testing.T) {
	as, err := poker.ParseCard("AS")
	require.NoError(t, err)
	hand := []poker.Card{as, as}
	labels := cardLabels(hand)
	require.Equal(t, []string{"1. A♠", "2. A♠"}, labels)
	require.Equal(t, []int{1, 0}, labelIndices(labels, []string{"2. A♠", "1. A♠", "9. K♥"}))
	require.Empty(t, labelIndices(labels, nil))
}

func TestRGBFromHex(t *testing.T) {
	rgb, err := rgbFromHex("#ff2d75")
	require.NoError(t, err)
	require.Equal(t, pterm.NewRGB(0xff, 0x2d, 0x75), rgb)

	_, err = rgbFromHex("#fff")
	require.Error(t, err)
	_, err = rgbFromHex("zzzzzz")
	require.Error(t, err)

	for _, j := range poker.JokerTypes {
		info, _ := j.Info()
		_, err := rgbFromHex(info.Color)
		require.NoError(t, err, j)
	}
}

func TestParseEvalArgs(t *testing.T) {
	cards, jokers, err := parseEvalArgs([]string{"AS", "10h", "T♦"}, []string{"chaos", "Fortune"})
	require.NoError(t, err)
	require.Len(t, cards, 3)
	require.Equal(t, []poker.JokerType{poker.Chaos, poker.Fortune}, jokers)

	_, _, err = parseEvalArgs([]string{"1S"}, nil)
	require.Error(t, err)
	_, _, err = parseEvalArgs([]string{"AS"}, []string{"jester"})
	require.ErrorIs(t, err, poker.ErrUnknownJoker)
}

func TestEvalRows(t *testing.T) {
	cards, jokers, err := parseEvalArgs([]string{"AS", "KS", "QS", "JS", "TS"}, nil)
	require.NoError(t, err)
	res, err := poker.EvaluateHand(cards, jokers)
	require.NoError(t, err)

	rows := evalRows(cards, jokers, res)
	require.Equal(t, []string{"Field", "Value"}, rows[0])
	require.Contains(t, rows, []string{"Jokers", "-"})
	require.Contains(t, rows, []string{"Hand", "Royal Flush"})
	require.Contains(t, rows, []string{"Score", "1208"})
}

func TestEvalCommand(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"eval", "AS", "AD", "--joker", "joker"})
	require.NoError(t, root.Execute())

	root = newRootCmd()
	root.SetArgs([]string{"eval", "AS", "--joker", "jester"})
	require.Error(t, root.Execute())
}

func TestSelectOnly(t *testing.T) {
	sm, err := poker.NewStateMachine(poker.WithSource(deck.NewSeededSource(4)), poker.WithJokers())
	require.NoError(t, err)

	require.NoError(t, selectOnly(sm, []int{0, 3}))
	require.Equal(t, []int{0, 3}, sm.State().Selected)

	require.NoError(t, selectOnly(sm, []int{5, 1, 99}))
	require.Equal(t, []int{5, 1}, sm.State().Selected)

	require.NoError(t, selectOnly(sm, nil))
	require.Empty(t, sm.State().Selected)
}

func TestSummaryRows(t *testing.T) {
	rows := summaryRows(ledger.Summary{})
	require.Equal(t, []string{"0", "0", "0", "0", "-"}, rows[1])

	best := poker.ScoreResult{Name: "Flush", Score: 140}
	rows = summaryRows(ledger.Summary{Rounds: 3, RoundsWon: 2, HandsPlayed: 9, Discards: 4, BestHand: &best})
	require.Equal(t, []string{"3", "2", "9", "4", "Flush (140)"}, rows[1])
}
