package poker

import "sort"

// HandCategory ranks the poker hands from High Card to Royal Flush.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

type handInfo struct {
	name        string
	chips       int
	mult        int
	description string
}

var handTable = map[HandCategory]handInfo{
	HighCard:      {"High Card", 5, 1, "Highest card wins"},
	Pair:          {"Pair", 10, 2, "2 cards of same rank"},
	TwoPair:       {"Two Pair", 20, 2, "2 different pairs"},
	ThreeOfAKind:  {"Three of a Kind", 30, 3, "3 cards of same rank"},
	Straight:      {"Straight", 30, 4, "5 cards in sequence"},
	Flush:         {"Flush", 35, 4, "5 cards of same suit"},
	FullHouse:     {"Full House", 40, 4, "3 of a kind + a pair"},
	FourOfAKind:   {"Four of a Kind", 60, 7, "4 cards of same rank"},
	StraightFlush: {"Straight Flush", 100, 8, "5 cards in sequence, same suit!"},
	RoyalFlush:    {"Royal Flush", 100, 8, "A-K-Q-J-10 of same suit!"},
}

func (h HandCategory) String() string {
	if info, ok := handTable[h]; ok {
		return info.name
	}
	return "Unknown"
}

// HandClassification is the category of a set of played cards together with
// the base chips and multiplier the category is worth.
type HandClassification struct {
	Category    HandCategory
	Name        string
	Chips       int
	Mult        int
	Description string
}

func classification(h HandCategory) HandClassification {
	info := handTable[h]
	return HandClassification{
		Category:    h,
		Name:        info.name,
		Chips:       info.chips,
		Mult:        info.mult,
		Description: info.description,
	}
}

// Classify returns the best category matched by cards. Categories are tried
// from the strongest down and the first match wins. Any number of cards is
// accepted: with fewer than five cards only the rank-count categories can
// match.
func Classify(cards []Card) (HandClassification, error) {
	if len(cards) == 0 {
		return HandClassification{}, ErrEmptyHand
	}

	counts := rankCounts(cards)
	flush := isFlush(cards)
	straight := isStraight(cards)

	switch {
	case flush && straight && len(cards) >= 5:
		if hasRanks(cards, 10, Jack, Queen, King, Ace) {
			return classification(RoyalFlush), nil
		}
		return classification(StraightFlush), nil
	case counts[0] >= 4:
		return classification(FourOfAKind), nil
	case counts[0] >= 3 && len(counts) > 1 && counts[1] >= 2:
		return classification(FullHouse), nil
	case flush:
		return classification(Flush), nil
	case straight:
		return classification(Straight), nil
	case counts[0] >= 3:
		return classification(ThreeOfAKind), nil
	case counts[0] >= 2 && len(counts) > 1 && counts[1] >= 2:
		return classification(TwoPair), nil
	case counts[0] >= 2:
		return classification(Pair), nil
	default:
		return classification(HighCard), nil
	}
}

// rankCounts returns how many cards share each rank, largest count first.
func rankCounts(cards []Card) []int {
	byRank := make(map[uint8]int)
	for _, c := range cards {
		byRank[c.rank]++
	}
	counts := make([]int, 0, len(byRank))
	for _, n := range byRank {
		counts = append(counts, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	return counts
}

func suitCount(cards []Card, suit uint8) int {
	n := 0
	for _, c := range cards {
		if c.suit == suit {
			n++
		}
	}
	return n
}

// isFlush reports whether at least five cards share a suit.
func isFlush(cards []Card) bool {
	if len(cards) < 5 {
		return false
	}
	for suit := uint8(Club); suit <= Spade; suit++ {
		if suitCount(cards, suit) >= 5 {
			return true
		}
	}
	return false
}

// isStraight reports whether five distinct ranks are consecutive. The ace
// also plays low in A-2-3-4-5.
func isStraight(cards []Card) bool {
	if len(cards) < 5 {
		return false
	}
	seen := make(map[uint8]bool)
	var ranks []int
	for _, c := range cards {
		if !seen[c.rank] {
			seen[c.rank] = true
			ranks = append(ranks, int(c.rank))
		}
	}
	if len(ranks) < 5 {
		return false
	}
	sort.Ints(ranks)
	for i := 0; i+4 < len(ranks); i++ {
		if ranks[i+4]-ranks[i] == 4 {
			return true
		}
	}
	return seen[Ace] && seen[2] && seen[3] && seen[4] && seen[5]
}

func hasRanks(cards []Card, ranks ...uint8) bool {
	present := make(map[uint8]bool)
	for _, c := range cards {
		present[c.rank] = true
	}
	for _, r := range ranks {
		if !present[r] {
			return false
		}
	}
	return true
}
