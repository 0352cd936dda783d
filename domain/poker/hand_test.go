package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		cards    []string
		expected HandCategory
	}{
		{"Royal Flush", []string{"10H", "JH", "QH", "KH", "AH"}, RoyalFlush},
		{"Royal Flush unordered", []string{"AS", "KS", "10S", "QS", "JS"}, RoyalFlush},
		{"Straight Flush", []string{"5C", "6C", "7C", "8C", "9C"}, StraightFlush},
		{"Wheel Straight Flush", []string{"AD", "2D", "3D", "4D", "5D"}, StraightFlush},
		{"Four of a Kind", []string{"KC", "KD", "KH", "KS", "3C"}, FourOfAKind},
		{"Four of a Kind alone", []string{"7C", "7D", "7H", "7S"}, FourOfAKind},
		{"Full House", []string{"2D", "2H", "2S", "5C", "5D"}, FullHouse},
		{"Flush", []string{"2H", "7H", "9H", "JH", "KH"}, Flush},
		{"Straight", []string{"9C", "10D", "JH", "QS", "KC"}, Straight},
		{"Wheel Straight", []string{"AC", "2D", "3H", "4S", "5C"}, Straight},
		{"Broadway Straight", []string{"10C", "JD", "QH", "KS", "AC"}, Straight},
		{"Three of a Kind", []string{"QC", "QD", "QH", "4S", "9C"}, ThreeOfAKind},
		{"Three of a Kind alone", []string{"QC", "QD", "QH"}, ThreeOfAKind},
		{"Two Pair", []string{"3C", "3D", "8H", "8S", "KC"}, TwoPair},
		{"Two Pair four cards", []string{"3C", "3D", "8H", "8S"}, TwoPair},
		{"Pair", []string{"AC", "AD"}, Pair},
		{"Pair with kickers", []string{"AC", "AD", "4H", "9S", "JC"}, Pair},
		{"High Card single", []string{"2C"}, HighCard},
		{"High Card", []string{"2C", "5D", "9H", "JS", "KC"}, HighCard},
		{"No wrap around straight", []string{"QC", "KD", "AH", "2S", "3C"}, HighCard},
		{"Four same suit is no flush", []string{"2H", "7H", "9H", "JH"}, HighCard},
		{"Four in sequence is no straight", []string{"5C", "6D", "7H", "8S"}, HighCard},
		{"Seven cards straight", []string{"2C", "2D", "3H", "4S", "5C", "6D", "KH"}, Straight},
		{"Seven cards flush", []string{"2H", "4H", "6H", "8H", "10H", "QC", "QD"}, Flush},
		{"Six cards full house", []string{"KC", "KD", "KH", "QC", "QD", "JS"}, FullHouse},
		{"Quad beats full house", []string{"9C", "9D", "9H", "9S", "4C", "4D"}, FourOfAKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc, err := Classify(cards(t, tt.cards...))
			require.NoError(t, err)
			if hc.Category != tt.expected {
				t.Errorf("Classify(%v) = %s, want %s", tt.cards, hc.Category, tt.expected)
			}
		})
	}
}

func TestClassifyBaseValues(t *testing.T) {
	tests := []struct {
		category HandCategory
		name     string
		chips    int
		mult     int
	}{
		{RoyalFlush, "Royal Flush", 100, 8},
		{StraightFlush, "Straight Flush", 100, 8},
		{FourOfAKind, "Four of a Kind", 60, 7},
		{FullHouse, "Full House", 40, 4},
		{Flush, "Flush", 35, 4},
		{Straight, "Straight", 30, 4},
		{ThreeOfAKind, "Three of a Kind", 30, 3},
		{TwoPair, "Two Pair", 20, 2},
		{Pair, "Pair", 10, 2},
		{HighCard, "High Card", 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := classification(tt.category)
			require.Equal(t, tt.name, hc.Name)
			require.Equal(t, tt.name, tt.category.String())
			require.Equal(t, tt.chips, hc.Chips)
			require.Equal(t, tt.mult, hc.Mult)
			require.NotEmpty(t, hc.Description)
		})
	}
}

func TestClassifyEveryStraightFlush(t *testing.T) {
	for suit := uint8(Club); suit <= Spade; suit++ {
		for low := uint8(2); low+4 <= Ace; low++ {
			hand := make([]Card, 0, 5)
			for r := low; r < low+5; r++ {
				hand = append(hand, Card{suit: suit, rank: r})
			}
			hc, err := Classify(hand)
			require.NoError(t, err)
			if low == 10 {
				require.Equal(t, RoyalFlush, hc.Category, hand)
				require.Equal(t, 100, hc.Chips)
				require.Equal(t, 8, hc.Mult)
			} else {
				require.Equal(t, StraightFlush, hc.Category, hand)
			}
		}
	}
}

func TestClassifyEmpty(t *testing.T) {
	_, err := Classify(nil)
	if !errors.Is(err, ErrEmptyHand) {
		t.Fatalf("expected ErrEmptyHand, got %v", err)
	}
}

func TestClassifyNeverPanicsOnSmallHands(t *testing.T) {
	d := CreateDeck()
	for n := 1; n <= 4; n++ {
		for start := 0; start+n <= len(d); start += n {
			hc, err := Classify(d[start : start+n])
			require.NoError(t, err)
			require.LessOrEqual(t, int(hc.Category), int(FourOfAKind))
			require.NotEqual(t, FullHouse, hc.Category)
			require.NotEqual(t, Flush, hc.Category)
			require.NotEqual(t, Straight, hc.Category)
		}
	}
}
