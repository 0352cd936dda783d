// Package poker implements the scoring engine of a poker game played
// against a target score, with jokers bending the scoring rules.
//
// # Core Types
//
// Card: a playing card with suit and rank, Ace high.
//
// PokerDeck: a shuffled 52-card deck that regenerates itself when it runs
// short.
//
// HandClassification and ScoreResult: the recognised poker hand of a set of
// played cards and its chips, multiplier and score once jokers are applied.
//
// RoundState: the snapshot of a round (hand, selection, score, counters).
//
// GameAction: an input event validated and applied by the StateMachine.
//
// # Game Flow
//
// A round starts with a hand of 8 cards. The player selects up to 5 of
// them and either plays them (spending a hand) or discards them (spending a
// discard). A played hand is scored, parked while it is displayed and then
// committed by Resolve. Reaching the target wins the round; running out of
// hands below it loses it. StartNewRound deals the next round.
//
// # Scoring
//
// Chips are the base chips of the hand plus the value of every played card;
// jokers add chips, add multiplier or scale it. The multiplier is floored
// once at the end and the score is chips times multiplier.
package poker
