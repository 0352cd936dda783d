package poker

import "fmt"

// checkRoundLogic validates an action against the round state without
// changing it.
func checkRoundLogic(a ActionType, index int, s *RoundState, rules Rules) error {
	if s.Phase == HandResolving && a != ActionResolve {
		return ErrResolving
	}
	switch a {
	case ActionSelect:
		if s.Phase != InRound {
			return fmt.Errorf("%w: cannot select cards in %s", ErrWrongPhase, s.Phase)
		}
		if index < 0 || index >= len(s.Hand) {
			return fmt.Errorf("%w: index %d out of hand of %d", ErrInvalidSelection, index, len(s.Hand))
		}
	case ActionPlay:
		if s.Phase != InRound {
			return fmt.Errorf("%w: cannot play in %s", ErrWrongPhase, s.Phase)
		}
		if s.HandsLeft <= 0 {
			return ErrNoHandsLeft
		}
		return checkSelection(s, rules)
	case ActionDiscard:
		if s.Phase != InRound {
			return fmt.Errorf("%w: cannot discard in %s", ErrWrongPhase, s.Phase)
		}
		if s.DiscardsLeft <= 0 {
			return ErrNoDiscardsLeft
		}
		return checkSelection(s, rules)
	case ActionResolve:
		if s.Phase != HandResolving {
			return ErrNothingPending
		}
	case ActionNewRound:
		if s.Phase != RoundWon && s.Phase != RoundLost {
			return fmt.Errorf("%w: round still in progress", ErrWrongPhase)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}
	return nil
}

func checkSelection(s *RoundState, rules Rules) error {
	n := len(s.Selected)
	if n == 0 || n > rules.MaxSelection {
		return fmt.Errorf("%w: %d cards selected, want 1 to %d", ErrInvalidSelection, n, rules.MaxSelection)
	}
	for _, i := range s.Selected {
		if i < 0 || i >= len(s.Hand) {
			return fmt.Errorf("%w: index %d out of hand of %d", ErrInvalidSelection, i, len(s.Hand))
		}
	}
	return nil
}
