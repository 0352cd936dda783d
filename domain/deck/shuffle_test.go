package deck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShuffle(t *testing.T) {
	d := Deck{DeckSize: 52, Source: NewSeededSource(7)}
	require.NoError(t, d.PrepareDeck())
	_, err := d.DrawCard()
	require.NoError(t, err)
	require.NoError(t, d.Shuffle())
	require.Equal(t, 52, d.Remaining())

	seen := make(map[int]bool)
	for _, c := range d.Cards() {
		if c < 1 || c > 52 {
			t.Fatalf("card %d out of range", c)
		}
		if seen[c] {
			t.Fatalf("card %d appears twice", c)
		}
		seen[c] = true
	}
	require.Len(t, seen, 52)
}

func TestShuffleNotPrepared(t *testing.T) {
	d := Deck{DeckSize: 52}
	require.Error(t, d.Shuffle())
}

func TestSeededShuffleIsReproducible(t *testing.T) {
	a := Deck{DeckSize: 52, Source: NewSeededSource(42)}
	b := Deck{DeckSize: 52, Source: NewSeededSource(42)}
	require.NoError(t, a.PrepareDeck())
	require.NoError(t, b.PrepareDeck())
	require.NoError(t, a.Shuffle())
	require.NoError(t, b.Shuffle())
	require.Equal(t, a.Cards(), b.Cards())
}

func TestShuffleDefaultsToCryptoSource(t *testing.T) {
	d := Deck{DeckSize: 52}
	require.NoError(t, d.PrepareDeck())
	require.NoError(t, d.Shuffle())
	_, ok := d.Source.(*CryptoSource)
	require.True(t, ok)
	require.Len(t, d.Cards(), 52)
}

func TestCryptoSourceRange(t *testing.T) {
	src := NewCryptoSource()
	for n := 1; n <= 52; n++ {
		for i := 0; i < 20; i++ {
			v := src.Intn(n)
			if v < 0 || v >= n {
				t.Fatalf("Intn(%d) = %d", n, v)
			}
		}
	}
}

func TestPermutation(t *testing.T) {
	perm := permutation(10, NewSeededSource(1))
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, perm)
}
