package main

import (
	"context"
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/ledger"
)

const (
	optionPlay    = "Play hand"
	optionDiscard = "Discard"
	optionReset   = "Pick other cards"
	optionQuit    = "Quit"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play rounds interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.play(cmd.Context())
		},
	}
}

func (a *app) play(ctx context.Context) error {
	sm, err := poker.NewStateMachine(
		poker.WithRules(a.cfg.Rules()),
		poker.WithSource(a.cfg.Source()),
		poker.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}
	history := ledger.New()
	defer func() { printSummary(history.Summarize()) }()
	printBanner()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := sm.State()
		switch s.Phase {
		case poker.RoundWon, poker.RoundLost:
			printState(s)
			if s.Phase == poker.RoundWon {
				pterm.Success.Printfln("Round %d won with %d points", s.Number, s.Score)
			} else {
				pterm.Warning.Printfln("Round %d lost: %d of %d points", s.Number, s.Score, s.TargetScore)
			}
			next, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Play the next round?").WithDefaultValue(true).Show()
			if !next {
				return nil
			}
			if err := sm.StartNewRound(); err != nil {
				return err
			}
			if err := history.Record(poker.ActionNewRound, sm.State()); err != nil {
				return err
			}
		case poker.InRound:
			quit, err := a.turn(ctx, sm, history)
			if err != nil || quit {
				return err
			}
		default:
			// a hand left pending by an interrupted delay
			if err := sm.Resolve(); err != nil {
				return err
			}
			if err := history.Record(poker.ActionResolve, sm.State()); err != nil {
				return err
			}
		}
	}
}

// turn lets the player pick cards and an action. It returns true when the
// player quits.
func (a *app) turn(ctx context.Context, sm *poker.StateMachine, history *ledger.Ledger) (bool, error) {
	s := sm.State()
	printState(s)

	labels := cardLabels(s.Hand)
	chosen, err := pterm.DefaultInteractiveMultiselect.
		WithDefaultText("Select up to 5 cards").
		WithOptions(labels).
		WithMaxHeight(len(labels)).
		Show()
	if err != nil {
		return false, err
	}
	if err := selectOnly(sm, labelIndices(labels, chosen)); err != nil {
		return false, err
	}
	if len(chosen) > sm.Rules().MaxSelection {
		pterm.Warning.Printfln("Only the first %d cards are kept", sm.Rules().MaxSelection)
	}

	options := []string{optionPlay}
	if sm.State().DiscardsLeft > 0 {
		options = append(options, optionDiscard)
	}
	options = append(options, optionReset, optionQuit)
	choice, err := pterm.DefaultInteractiveSelect.WithDefaultText("Select your next action").WithOptions(options).Show()
	if err != nil {
		return false, err
	}

	switch choice {
	case optionPlay:
		res, err := sm.PlayHand()
		if err != nil {
			pterm.Error.Println(err)
			return false, nil
		}
		printState(sm.State(), pterm.Panel{Data: resultInfo(res)})
		spinner, _ := pterm.DefaultSpinner.Start("Scoring ...")
		if err := sm.ResolveAfter(ctx, a.cfg.ResolveDelay); err != nil {
			spinner.Fail()
			return false, err
		}
		spinner.Success()
		return false, history.Record(poker.ActionResolve, sm.State())
	case optionDiscard:
		if err := sm.Discard(); err != nil {
			pterm.Error.Println(err)
			return false, nil
		}
		return false, history.Record(poker.ActionDiscard, sm.State())
	case optionReset:
		return false, selectOnly(sm, nil)
	case optionQuit:
		return true, nil
	}
	return false, nil
}

// selectOnly replaces the current selection with indices, in order.
func selectOnly(sm *poker.StateMachine, indices []int) error {
	for _, i := range sm.State().Selected {
		if err := sm.ToggleCardSelection(i); err != nil {
			return err
		}
	}
	for _, i := range indices {
		if err := sm.ToggleCardSelection(i); err != nil {
			if errors.Is(err, poker.ErrInvalidSelection) {
				continue
			}
			return err
		}
	}
	return nil
}
