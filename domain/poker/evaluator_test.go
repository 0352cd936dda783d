package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateHandWithoutJokers(t *testing.T) {
	tests := []struct {
		name     string
		cards    []string
		category HandCategory
		chips    int
		mult     int
		score    int
	}{
		{"Pair of Aces", []string{"AC", "AD"}, Pair, 32, 2, 64},
		{"Full House", []string{"2D", "2H", "2S", "5C", "5D"}, FullHouse, 56, 4, 224},
		{"High Card", []string{"7S"}, HighCard, 12, 1, 12},
		{"Royal Flush", []string{"10H", "JH", "QH", "KH", "AH"}, RoyalFlush, 151, 8, 1208},
		{"Four Kings", []string{"KC", "KD", "KH", "KS", "3C"}, FourOfAKind, 103, 7, 721},
		{"Wheel", []string{"AC", "2D", "3H", "4S", "5C"}, Straight, 55, 4, 220},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := EvaluateHand(cards(t, tt.cards...), nil)
			require.NoError(t, err)
			require.Equal(t, tt.category, res.Category)
			require.Equal(t, tt.category.String(), res.Name)
			require.Equal(t, tt.chips, res.Chips)
			require.Equal(t, tt.mult, res.Mult)
			require.Equal(t, tt.score, res.Score)
			require.Equal(t, res.Chips*res.Mult, res.Score)
		})
	}
}

func TestEvaluateHandJokers(t *testing.T) {
	tests := []struct {
		name   string
		cards  []string
		jokers []JokerType
		chips  int
		mult   int
	}{
		{"joker adds four mult", []string{"AC", "AD"}, []JokerType{Joker}, 32, 6},
		{"joker on single card", []string{"2C"}, []JokerType{Joker}, 7, 5},
		{"greedy counts diamonds", []string{"2D", "5D", "9D"}, []JokerType{Greedy}, 21, 10},
		{"lusty counts hearts", []string{"2D", "5H", "9H"}, []JokerType{Lusty}, 21, 7},
		{"wrathful counts spades", []string{"2S", "5H", "9H"}, []JokerType{Wrathful}, 21, 4},
		{"glutton counts clubs", []string{"2S", "5H", "9H"}, []JokerType{Glutton}, 21, 1},
		{"mystic pays per card", []string{"2S", "5H", "9H"}, []JokerType{Mystic}, 66, 1},
		{"fortune adds fifty chips", []string{"2S"}, []JokerType{Fortune}, 57, 1},
		{"chaos floors", []string{"2S"}, []JokerType{Chaos}, 7, 1},
		{"chaos twice on a pair", []string{"2S", "2H"}, []JokerType{Chaos, Chaos}, 14, 4},
		{"chaos scales additive terms", []string{"AC", "AD"}, []JokerType{Chaos, Joker}, 32, 9},
		{"three jokers", []string{"KH", "KD", "KS"}, []JokerType{Lusty, Greedy, Fortune}, 110, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := EvaluateHand(cards(t, tt.cards...), tt.jokers)
			require.NoError(t, err)
			require.Equal(t, tt.chips, res.Chips)
			require.Equal(t, tt.mult, res.Mult)
			require.Equal(t, tt.chips*tt.mult, res.Score)
		})
	}
}

func TestJokerOrderDoesNotChangeScore(t *testing.T) {
	hand := cards(t, "3H", "3D", "3S", "9C", "9D")
	orders := [][]JokerType{
		{Joker, Chaos, Greedy},
		{Chaos, Greedy, Joker},
		{Greedy, Joker, Chaos},
	}
	first, err := EvaluateHand(hand, orders[0])
	require.NoError(t, err)
	for _, o := range orders[1:] {
		res, err := EvaluateHand(hand, o)
		require.NoError(t, err)
		require.Equal(t, first, res)
	}
	// (4 + 4 + 6) * 1.5
	require.Equal(t, 21, first.Mult)
}

func TestJokerAddsFourToAnyHand(t *testing.T) {
	d := CreateDeck()
	for n := 1; n <= 5; n++ {
		hand := d[:n]
		plain, err := EvaluateHand(hand, nil)
		require.NoError(t, err)
		boosted, err := EvaluateHand(hand, []JokerType{Joker})
		require.NoError(t, err)
		require.Equal(t, plain.Mult+4, boosted.Mult)
		require.Equal(t, plain.Chips, boosted.Chips)
	}
}

func TestEvaluateHandErrors(t *testing.T) {
	_, err := EvaluateHand(nil, []JokerType{Joker})
	require.True(t, errors.Is(err, ErrEmptyHand))

	_, err = EvaluateHand(cards(t, "2C"), []JokerType{"clown"})
	require.True(t, errors.Is(err, ErrUnknownJoker))

	_, err = ScoreHand(classification(Pair), nil, nil)
	require.True(t, errors.Is(err, ErrEmptyHand))
}

func TestScoreHandUsesGivenClassification(t *testing.T) {
	res, err := ScoreHand(classification(Flush), cards(t, "2C"), nil)
	require.NoError(t, err)
	require.Equal(t, "Flush", res.Name)
	require.Equal(t, 37, res.Chips)
	require.Equal(t, 4, res.Mult)
}

func TestDetailOnlyForFiveCards(t *testing.T) {
	res, err := EvaluateHand(cards(t, "10H", "JH", "QH", "KH", "AH"), nil)
	require.NoError(t, err)
	require.NotEmpty(t, res.Detail)

	res, err = EvaluateHand(cards(t, "AC", "AD"), nil)
	require.NoError(t, err)
	require.Empty(t, res.Detail)
}
