package poker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luca-patrignani/joker-poker/domain/deck"
)

// StateMachine owns a RoundState, its deck and its jokers, and is the only
// thing allowed to mutate them. It is not safe for concurrent use: actions
// are expected one at a time from a single input loop.
type StateMachine struct {
	state   RoundState
	rules   Rules
	source  deck.Source
	deck    *PokerDeck
	pending *ScoreResult
	logger  *slog.Logger
	jokers  []JokerType
}

// Option configures a StateMachine.
type Option func(*StateMachine)

// WithRules replaces DefaultRules.
func WithRules(r Rules) Option {
	return func(sm *StateMachine) { sm.rules = r }
}

// WithSource sets the randomness used for shuffling and joker picks.
func WithSource(src deck.Source) Option {
	return func(sm *StateMachine) { sm.source = src }
}

// WithLogger sets the logger used to trace round events.
func WithLogger(l *slog.Logger) Option {
	return func(sm *StateMachine) { sm.logger = l }
}

// WithJokers fixes the jokers instead of picking them at random.
func WithJokers(jokers ...JokerType) Option {
	return func(sm *StateMachine) {
		sm.jokers = make([]JokerType, len(jokers))
		copy(sm.jokers, jokers)
	}
}

// NewStateMachine starts a game: it shuffles a deck, picks the jokers and
// deals the first hand of round 1.
func NewStateMachine(opts ...Option) (*StateMachine, error) {
	sm := &StateMachine{rules: DefaultRules()}
	for _, opt := range opts {
		opt(sm)
	}
	if sm.logger == nil {
		sm.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if sm.source == nil {
		sm.source = deck.NewCryptoSource()
	}
	if err := validateRules(sm.rules); err != nil {
		return nil, err
	}

	jokers := sm.jokers
	if jokers == nil {
		var err error
		jokers, err = PickJokers(sm.rules.JokersPerRound, sm.source)
		if err != nil {
			return nil, err
		}
	}
	for _, j := range jokers {
		if !j.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownJoker, j)
		}
	}

	d, err := NewPokerDeck(sm.source)
	if err != nil {
		return nil, err
	}
	sm.deck = d

	hand, err := sm.deck.Draw(sm.rules.HandSize)
	if err != nil {
		return nil, err
	}
	sm.state = RoundState{
		ID:           uuid.NewString(),
		Number:       1,
		Phase:        InRound,
		Hand:         hand,
		Jokers:       jokers,
		Mult:         1,
		HandsLeft:    sm.rules.HandsPerRound,
		DiscardsLeft: sm.rules.DiscardsPerRound,
		TargetScore:  sm.rules.StartingTarget,
	}
	sm.logger.Info("game started",
		"round", sm.state.ID,
		"target", sm.state.TargetScore,
		"jokers", fmt.Sprint(jokers))
	return sm, nil
}

func validateRules(r Rules) error {
	switch {
	case r.HandSize <= 0 || r.HandSize > DeckSize:
		return fmt.Errorf("invalid hand size %d", r.HandSize)
	case r.MaxSelection <= 0 || r.MaxSelection > r.HandSize:
		return fmt.Errorf("invalid max selection %d", r.MaxSelection)
	case r.HandsPerRound <= 0:
		return fmt.Errorf("invalid hands per round %d", r.HandsPerRound)
	case r.DiscardsPerRound < 0:
		return fmt.Errorf("invalid discards per round %d", r.DiscardsPerRound)
	case r.JokersPerRound < 0 || r.JokersPerRound > len(JokerTypes):
		return fmt.Errorf("invalid jokers per round %d", r.JokersPerRound)
	}
	return nil
}

// State returns a copy of the current round state.
func (sm *StateMachine) State() RoundState {
	return sm.state.clone()
}

// Rules returns the balance the game is played with.
func (sm *StateMachine) Rules() Rules {
	return sm.rules
}

// Pending returns the scored hand waiting for Resolve, if any.
func (sm *StateMachine) Pending() (ScoreResult, bool) {
	if sm.pending == nil {
		return ScoreResult{}, false
	}
	return *sm.pending, true
}

// ToggleCardSelection selects the hand card at index, or deselects it if it
// is already selected. Selecting beyond the maximum is silently ignored.
func (sm *StateMachine) ToggleCardSelection(index int) error {
	if err := checkRoundLogic(ActionSelect, index, &sm.state, sm.rules); err != nil {
		return err
	}
	s := &sm.state
	for pos, i := range s.Selected {
		if i == index {
			s.Selected = append(s.Selected[:pos:pos], s.Selected[pos+1:]...)
			return nil
		}
	}
	if len(s.Selected) >= sm.rules.MaxSelection {
		return nil
	}
	s.Selected = append(s.Selected, index)
	return nil
}

// PlayHand scores the selected cards with the round jokers and parks the
// result until Resolve commits it. The round is in HandResolving meanwhile.
func (sm *StateMachine) PlayHand() (ScoreResult, error) {
	if err := checkRoundLogic(ActionPlay, 0, &sm.state, sm.rules); err != nil {
		return ScoreResult{}, err
	}
	res, err := EvaluateHand(sm.state.SelectedCards(), sm.state.Jokers)
	if err != nil {
		return ScoreResult{}, err
	}
	sm.pending = &res
	sm.state.Phase = HandResolving
	sm.logger.Debug("hand played",
		"round", sm.state.ID,
		"hand", res.Name,
		"chips", res.Chips,
		"mult", res.Mult,
		"score", res.Score)
	return res, nil
}

// Resolve commits the pending hand: it adds the score, spends a hand,
// replaces the played cards and decides whether the round is won or lost.
func (sm *StateMachine) Resolve() error {
	if err := checkRoundLogic(ActionResolve, 0, &sm.state, sm.rules); err != nil {
		return err
	}
	if sm.pending == nil {
		return ErrNothingPending
	}
	res := *sm.pending
	if err := sm.replaceSelected(); err != nil {
		return err
	}

	s := &sm.state
	s.Score += res.Score
	s.Chips = res.Chips
	s.Mult = res.Mult
	s.HandsLeft--
	s.LastResult = &res
	sm.pending = nil

	switch {
	case s.Score >= s.TargetScore:
		s.Phase = RoundWon
		sm.logger.Info("round won", "round", s.ID, "score", s.Score, "target", s.TargetScore)
	case s.HandsLeft == 0:
		s.Phase = RoundLost
		sm.logger.Info("round lost", "round", s.ID, "score", s.Score, "target", s.TargetScore)
	default:
		s.Phase = InRound
	}
	return nil
}

// ResolveAfter waits for the display delay and then resolves the pending
// hand. It returns ctx.Err() if the context ends first; the hand then stays
// pending.
func (sm *StateMachine) ResolveAfter(ctx context.Context, delay time.Duration) error {
	if sm.pending == nil {
		return ErrNothingPending
	}
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return sm.Resolve()
}

// Discard replaces the selected cards with new ones and spends a discard.
// Score and hands are untouched.
func (sm *StateMachine) Discard() error {
	if err := checkRoundLogic(ActionDiscard, 0, &sm.state, sm.rules); err != nil {
		return err
	}
	n := len(sm.state.Selected)
	if err := sm.replaceSelected(); err != nil {
		return err
	}
	sm.state.DiscardsLeft--
	sm.logger.Debug("cards discarded", "round", sm.state.ID, "count", n, "discards_left", sm.state.DiscardsLeft)
	return nil
}

// StartNewRound deals a new round once the current one is over. After a
// win the target grows and the score goes back to zero; after a loss both
// are kept.
func (sm *StateMachine) StartNewRound() error {
	if err := checkRoundLogic(ActionNewRound, 0, &sm.state, sm.rules); err != nil {
		return err
	}
	if err := sm.deck.Regenerate(); err != nil {
		return err
	}
	hand, err := sm.deck.Draw(sm.rules.HandSize)
	if err != nil {
		return err
	}
	jokers := sm.state.Jokers
	if sm.rules.RerollJokers {
		jokers, err = PickJokers(sm.rules.JokersPerRound, sm.source)
		if err != nil {
			return err
		}
	}

	s := &sm.state
	if s.Score >= s.TargetScore {
		s.TargetScore += sm.rules.TargetIncrement
		s.Score = 0
	}
	s.ID = uuid.NewString()
	s.Number++
	s.Phase = InRound
	s.Hand = hand
	s.Selected = nil
	s.Jokers = jokers
	s.Chips = 0
	s.Mult = 1
	s.HandsLeft = sm.rules.HandsPerRound
	s.DiscardsLeft = sm.rules.DiscardsPerRound
	s.LastResult = nil
	sm.logger.Info("new round",
		"round", s.ID,
		"number", s.Number,
		"target", s.TargetScore,
		"score", s.Score)
	return nil
}

// replaceSelected removes the selected cards, keeps the others in order and
// tops the hand back up from the deck.
func (sm *StateMachine) replaceSelected() error {
	s := &sm.state
	remaining := make([]Card, 0, len(s.Hand))
	for i, c := range s.Hand {
		if !s.IsSelected(i) {
			remaining = append(remaining, c)
		}
	}
	need := sm.rules.HandSize - len(remaining)
	if need < 0 {
		need = 0
	}
	refills := sm.deck.Refills()
	drawn, err := sm.deck.Draw(need)
	if err != nil {
		return err
	}
	if sm.deck.Refills() != refills {
		sm.logger.Debug("deck regenerated", "round", s.ID, "refills", sm.deck.Refills())
	}
	s.Hand = append(remaining, drawn...)
	s.Selected = nil
	return nil
}

// Action builds a GameAction bound to the current round.
func (sm *StateMachine) Action(t ActionType, index int) GameAction {
	return GameAction{RoundID: sm.state.ID, Type: t, Index: index}
}

// Validate checks whether an action is valid in the current state.
func (sm *StateMachine) Validate(ga GameAction) error {
	if ga.RoundID != sm.state.ID {
		return fmt.Errorf("%w: expected %s, got %s", ErrWrongRound, sm.state.ID, ga.RoundID)
	}
	return checkRoundLogic(ga.Type, ga.Index, &sm.state, sm.rules)
}

// Apply validates an action and performs it.
func (sm *StateMachine) Apply(ga GameAction) error {
	if err := sm.Validate(ga); err != nil {
		return err
	}
	switch ga.Type {
	case ActionSelect:
		return sm.ToggleCardSelection(ga.Index)
	case ActionPlay:
		_, err := sm.PlayHand()
		return err
	case ActionDiscard:
		return sm.Discard()
	case ActionResolve:
		return sm.Resolve()
	case ActionNewRound:
		return sm.StartNewRound()
	}
	return fmt.Errorf("%w: %q", ErrUnknownAction, ga.Type)
}
