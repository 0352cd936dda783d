package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/joker-poker/domain/poker"
)

func newEvalCmd(a *app) *cobra.Command {
	var jokerNames []string
	cmd := &cobra.Command{
		Use:     "eval CARD...",
		Short:   "Score a set of cards with the given jokers",
		Example: "joker-poker eval AS KS QS JS TS --joker chaos --joker fortune",
		Args:    cobra.RangeArgs(1, poker.DeckSize),
		RunE: func(_ *cobra.Command, args []string) error {
			cards, jokers, err := parseEvalArgs(args, jokerNames)
			if err != nil {
				return err
			}
			res, err := poker.EvaluateHand(cards, jokers)
			if err != nil {
				return err
			}
			a.logger.Debug("hand evaluated", "hand", res.Name, "score", res.Score)
			return pterm.DefaultTable.WithHasHeader().WithData(evalRows(cards, jokers, res)).Render()
		},
	}
	cmd.Flags().StringSliceVarP(&jokerNames, "joker", "j", nil, "joker to apply, repeatable")
	return cmd
}

func parseEvalArgs(args, jokerNames []string) ([]poker.Card, []poker.JokerType, error) {
	cards := make([]poker.Card, 0, len(args))
	for _, arg := range args {
		c, err := poker.ParseCard(arg)
		if err != nil {
			return nil, nil, err
		}
		cards = append(cards, c)
	}
	jokers := make([]poker.JokerType, 0, len(jokerNames))
	for _, name := range jokerNames {
		j, err := poker.ParseJoker(name)
		if err != nil {
			return nil, nil, fmt.Errorf("--joker: %w", err)
		}
		jokers = append(jokers, j)
	}
	return cards, jokers, nil
}
