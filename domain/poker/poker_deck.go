package poker

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/joker-poker/domain/deck"
)

// DeckSize is the number of cards of a standard deck.
const DeckSize = 52

// PokerDeck wraps a generic shoe of raw card numbers and deals poker Cards
// from it. When the shoe cannot serve a draw it is regenerated as a fresh
// shuffled 52-card deck: cards still in the old shoe are abandoned, so the
// supply is not conserved across refills.
type PokerDeck struct {
	*deck.Deck
	refills int
}

// NewPokerDeck creates a shuffled 52-card deck drawing its randomness from
// src. A nil src uses the cryptographic source.
func NewPokerDeck(src deck.Source) (*PokerDeck, error) {
	d := &PokerDeck{
		Deck: &deck.Deck{
			DeckSize: DeckSize,
			Source:   src,
		},
	}
	if err := d.PrepareDeck(); err != nil {
		return nil, err
	}
	if err := d.Shuffle(); err != nil {
		return nil, err
	}
	return d, nil
}

// CreateDeck returns the 52 cards of a freshly shuffled deck.
func CreateDeck() []Card {
	return CreateDeckFrom(nil)
}

// CreateDeckFrom is CreateDeck with an explicit randomness source.
func CreateDeckFrom(src deck.Source) []Card {
	d, err := NewPokerDeck(src)
	if err != nil {
		// PrepareDeck only fails for a non-positive size.
		panic(err)
	}
	out := make([]Card, 0, DeckSize)
	for _, raw := range d.Cards() {
		c, err := IntToCard(raw)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks 2-14 within each suit.
//
// Card numbering:
//   - 1-13: Clubs (Two through Ace)
//   - 14-26: Diamonds (Two through Ace)
//   - 27-39: Hearts (Two through Ace)
//   - 40-52: Spades (Two through Ace)
//
// Returns the corresponding Card or an error if the number is outside valid range.
func IntToCard(rawCard int) (Card, error) {
	if rawCard > DeckSize || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}

	suit := uint8((rawCard - 1) / 13)
	rank := uint8((rawCard-1)%13 + 2)
	return NewCard(suit, rank)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank()) - 1
}

// DrawCard deals the next card of the shoe.
func (d *PokerDeck) DrawCard() (Card, error) {
	raw, err := d.Deck.DrawCard()
	if err != nil {
		return Card{}, err
	}
	return IntToCard(raw)
}

// Draw deals n cards from the front of the deck. If fewer than n cards are
// left the deck is first regenerated, so a single draw never repeats a card.
func (d *PokerDeck) Draw(n int) ([]Card, error) {
	if n < 0 || n > DeckSize {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}
	if d.Remaining() < n {
		if err := d.Regenerate(); err != nil {
			return nil, err
		}
	}
	out := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := d.DrawCard()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Regenerate replaces the shoe with a fresh shuffled 52-card deck.
func (d *PokerDeck) Regenerate() error {
	if err := d.Shuffle(); err != nil {
		return err
	}
	d.refills++
	return nil
}

// Refills counts how many times the deck has been regenerated.
func (d *PokerDeck) Refills() int {
	return d.refills
}
