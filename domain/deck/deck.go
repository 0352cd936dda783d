package deck

import (
	"errors"
	"fmt"
)

// ErrDeckExhausted is returned by DrawCard once every card of the shoe has
// been dealt. Callers decide how to refill.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is a shoe of raw card numbers 1..DeckSize consumed from the front.
// The index of cardCollection is the dealing order, the value is the card.
type Deck struct {
	DeckSize       int
	Source         Source
	cardCollection []int
	lastDrawnCard  int
}

// PrepareDeck fills the shoe with the cards 1..DeckSize in order.
func (d *Deck) PrepareDeck() error {
	if d.DeckSize <= 0 {
		return fmt.Errorf("invalid deck size %d", d.DeckSize)
	}
	d.cardCollection = make([]int, d.DeckSize)
	for i := range d.cardCollection {
		d.cardCollection[i] = i + 1
	}
	d.lastDrawnCard = 0
	return nil
}

// DrawCard returns the next card of the shoe.
func (d *Deck) DrawCard() (int, error) {
	if d.lastDrawnCard >= len(d.cardCollection) {
		return 0, ErrDeckExhausted
	}
	card := d.cardCollection[d.lastDrawnCard]
	d.lastDrawnCard++
	return card, nil
}

// Remaining is the number of cards not yet drawn.
func (d *Deck) Remaining() int {
	return len(d.cardCollection) - d.lastDrawnCard
}

// Cards returns a copy of the cards not yet drawn, in dealing order.
func (d *Deck) Cards() []int {
	out := make([]int, d.Remaining())
	copy(out, d.cardCollection[d.lastDrawnCard:])
	return out
}
