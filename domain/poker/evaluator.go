package poker

import (
	"fmt"
	"math"

	"github.com/paulhankin/poker"
)

// ScoreResult is the outcome of scoring a played hand.
type ScoreResult struct {
	Category    HandCategory
	Name        string
	Description string
	// Detail is the long description of a five card hand
	// ("straight flush, king high"), empty for other sizes.
	Detail string
	Chips  int
	Mult   int
	Score  int
}

// EvaluateHand classifies cards and scores them with the given jokers.
func EvaluateHand(cards []Card, jokers []JokerType) (ScoreResult, error) {
	hc, err := Classify(cards)
	if err != nil {
		return ScoreResult{}, err
	}
	return ScoreHand(hc, cards, jokers)
}

// ScoreHand applies the jokers, in order, on top of an existing
// classification of cards.
//
// Chips are the category chips plus the chip value of every card plus the
// joker chips. The multiplier is the category multiplier plus the additive
// joker terms, times the product of the multiplicative terms, floored once
// at the very end. The score is chips times multiplier.
func ScoreHand(hc HandClassification, cards []Card, jokers []JokerType) (ScoreResult, error) {
	if len(cards) == 0 {
		return ScoreResult{}, ErrEmptyHand
	}

	acc := accumulator{scalar: 1}
	for _, j := range jokers {
		effect, ok := jokerEffects[j]
		if !ok {
			return ScoreResult{}, fmt.Errorf("%w: %q", ErrUnknownJoker, j)
		}
		effect(&acc, cards)
	}

	chips := hc.Chips + cardChips(cards) + acc.chips
	mult := int(math.Floor(float64(hc.Mult+acc.mult) * acc.scalar))

	return ScoreResult{
		Category:    hc.Category,
		Name:        hc.Name,
		Description: hc.Description,
		Detail:      describe(cards),
		Chips:       chips,
		Mult:        mult,
		Score:       chips * mult,
	}, nil
}

func cardChips(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.ChipValue()
	}
	return total
}

// toLibraryCard converts a Card to the evaluator library representation,
// where the ace has rank 1.
func toLibraryCard(c Card) (poker.Card, error) {
	var s poker.Suit
	switch c.suit {
	case Club:
		s = poker.Club
	case Diamond:
		s = poker.Diamond
	case Heart:
		s = poker.Heart
	case Spade:
		s = poker.Spade
	default:
		var zero poker.Card
		return zero, fmt.Errorf("invalid suit %d", c.suit)
	}
	r := poker.Rank(c.rank)
	if c.rank == Ace {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}

// describe only knows five card hands; any other size yields "".
func describe(cards []Card) string {
	if len(cards) != 5 {
		return ""
	}
	lib := make([]poker.Card, 0, 5)
	seen := make(map[Card]bool)
	for _, c := range cards {
		if seen[c] {
			return ""
		}
		seen[c] = true
		lc, err := toLibraryCard(c)
		if err != nil {
			return ""
		}
		lib = append(lib, lc)
	}
	desc, err := poker.Describe(lib)
	if err != nil {
		return ""
	}
	return desc
}
