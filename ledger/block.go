package ledger

import "github.com/luca-patrignani/joker-poker/domain/poker"

// Block records one committed action and the round state it produced.
type Block struct {
	Index     int                `json:"index"`
	Timestamp int64              `json:"timestamp"`
	PrevHash  string             `json:"prev_hash"`
	Hash      string             `json:"hash"`
	Action    poker.ActionType   `json:"action"`
	Round     RoundSummary       `json:"round"`
	Result    *poker.ScoreResult `json:"result,omitempty"`
}

// RoundSummary is the part of a RoundState kept in the ledger.
type RoundSummary struct {
	ID           string      `json:"id"`
	Number       int         `json:"number"`
	Phase        poker.Phase `json:"phase"`
	Score        int         `json:"score"`
	TargetScore  int         `json:"target_score"`
	HandsLeft    int         `json:"hands_left"`
	DiscardsLeft int         `json:"discards_left"`
}

func summarize(s poker.RoundState) RoundSummary {
	return RoundSummary{
		ID:           s.ID,
		Number:       s.Number,
		Phase:        s.Phase,
		Score:        s.Score,
		TargetScore:  s.TargetScore,
		HandsLeft:    s.HandsLeft,
		DiscardsLeft: s.DiscardsLeft,
	}
}
