package poker

import "errors"

// Errors returned by the engine. Every one of them leaves the round state
// untouched.
var (
	ErrEmptyHand        = errors.New("cannot evaluate an empty hand")
	ErrUnknownJoker     = errors.New("unknown joker")
	ErrInvalidSelection = errors.New("invalid card selection")
	ErrNoHandsLeft      = errors.New("no hands left")
	ErrNoDiscardsLeft   = errors.New("no discards left")
	ErrWrongPhase       = errors.New("action not allowed in the current phase")
	ErrResolving        = errors.New("a played hand is still resolving")
	ErrNothingPending   = errors.New("no played hand to resolve")
	ErrWrongRound       = errors.New("action belongs to another round")
	ErrUnknownAction    = errors.New("unknown action")
)
