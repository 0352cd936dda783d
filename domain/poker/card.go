package poker

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 14 // A (high; low only inside the A-2-3-4-5 straight)
)

// Card represents a playing card with suit and rank. Two cards with the
// same suit and rank are the same card.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 2-14: two through ace
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 2-14 (2-10=face value, Jack=11, Queen=12, King=13, Ace=14)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > Spade || rank < 2 || rank > Ace {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (2-14: two through ace).
func (c Card) Rank() uint8 {
	return c.rank
}

// ChipValue is what the card adds to the chips of a played hand:
// face value for 2-10, 10 for court cards, 11 for the ace.
func (c Card) ChipValue() int {
	switch {
	case c.rank == Ace:
		return 11
	case c.rank >= Jack:
		return 10
	default:
		return int(c.rank)
	}
}

func suitSymbol(suit uint8) string {
	switch suit {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

func rankSymbol(rank uint8) string {
	switch rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", rank)
	}
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	return rankSymbol(c.rank) + suitSymbol(c.suit)
}

// Pretty is String with the suit coloured for the terminal.
func (c Card) Pretty() string {
	suit := suitSymbol(c.suit)
	switch c.suit {
	case Diamond, Heart:
		suit = pterm.LightRed(suit)
	default:
		suit = pterm.Black(suit)
	}
	return rankSymbol(c.rank) + suit
}

// ParseCard reads the short notation of a card: a rank (2-10, T, J, Q, K, A)
// followed by a suit letter (C, D, H, S) or symbol (♣, ♦, ♥, ♠).
// Case is ignored, so "10h", "TH" and "10♥" are the same card.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	var suit uint8
	switch runes[len(runes)-1] {
	case 'C', '♣':
		suit = Club
	case 'D', '♦':
		suit = Diamond
	case 'H', '♥':
		suit = Heart
	case 'S', '♠':
		suit = Spade
	default:
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}

	var rank uint8
	switch r := string(runes[:len(runes)-1]); r {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "T", "10":
		rank = 10
	default:
		if len(r) != 1 || r[0] < '2' || r[0] > '9' {
			return Card{}, fmt.Errorf("invalid rank in card %q", s)
		}
		rank = r[0] - '0'
	}
	return NewCard(suit, rank)
}
