package ledger

import "github.com/luca-patrignani/joker-poker/domain/poker"

// Summary aggregates a session.
type Summary struct {
	Rounds      int
	RoundsWon   int
	HandsPlayed int
	Discards    int
	BestHand    *poker.ScoreResult
}

// Summarize walks the chain and totals the session.
func (l *Ledger) Summarize() Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var sum Summary
	seen := map[string]bool{}
	for _, b := range l.blocks[1:] {
		switch b.Action {
		case poker.ActionResolve:
			sum.HandsPlayed++
			if b.Result != nil && (sum.BestHand == nil || b.Result.Score > sum.BestHand.Score) {
				res := *b.Result
				sum.BestHand = &res
			}
		case poker.ActionDiscard:
			sum.Discards++
		}
		if b.Round.Phase == poker.RoundWon && !seen[b.Round.ID] {
			seen[b.Round.ID] = true
			sum.RoundsWon++
		}
		if b.Round.Number > sum.Rounds {
			sum.Rounds = b.Round.Number
		}
	}
	return sum
}
