package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrepareDeck(t *testing.T) {
	d := Deck{DeckSize: 52}
	require.NoError(t, d.PrepareDeck())
	require.Equal(t, 52, d.Remaining())
	cards := d.Cards()
	for i, c := range cards {
		require.Equal(t, i+1, c)
	}
}

func TestPrepareDeckInvalidSize(t *testing.T) {
	d := Deck{DeckSize: 0}
	require.Error(t, d.PrepareDeck())
}

func TestDrawCardUntilExhausted(t *testing.T) {
	d := Deck{DeckSize: 3}
	require.NoError(t, d.PrepareDeck())
	for want := 1; want <= 3; want++ {
		c, err := d.DrawCard()
		require.NoError(t, err)
		require.Equal(t, want, c)
	}
	require.Equal(t, 0, d.Remaining())
	_, err := d.DrawCard()
	if !errors.Is(err, ErrDeckExhausted) {
		t.Fatalf("expected ErrDeckExhausted, got %v", err)
	}
}

func TestCardsIsACopy(t *testing.T) {
	d := Deck{DeckSize: 5}
	require.NoError(t, d.PrepareDeck())
	cards := d.Cards()
	cards[0] = 42
	c, err := d.DrawCard()
	require.NoError(t, err)
	require.Equal(t, 1, c)
}
