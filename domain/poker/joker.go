package poker

import (
	"fmt"
	"strings"

	"github.com/luca-patrignani/joker-poker/domain/deck"
)

// JokerType identifies one of the scoring modifiers.
type JokerType string

const (
	Joker    JokerType = "joker"
	Greedy   JokerType = "greedy"
	Lusty    JokerType = "lusty"
	Wrathful JokerType = "wrathful"
	Glutton  JokerType = "glutton"
	Mystic   JokerType = "mystic"
	Chaos    JokerType = "chaos"
	Fortune  JokerType = "fortune"
)

// JokerTypes lists every joker in its canonical order.
var JokerTypes = []JokerType{Joker, Greedy, Lusty, Wrathful, Glutton, Mystic, Chaos, Fortune}

// JokerInfo is the display data of a joker. Color is a hex RGB string.
type JokerInfo struct {
	Name   string
	Effect string
	Color  string
}

var jokerInfo = map[JokerType]JokerInfo{
	Joker:    {Name: "Joker", Effect: "+4 Mult", Color: "#ff2d75"},
	Greedy:   {Name: "Greedy Joker", Effect: "+3 Mult for each Diamond", Color: "#ffd700"},
	Lusty:    {Name: "Lusty Joker", Effect: "+3 Mult for each Heart", Color: "#ff6b9d"},
	Wrathful: {Name: "Wrathful Joker", Effect: "+3 Mult for each Spade", Color: "#4a90d9"},
	Glutton:  {Name: "Glutton Joker", Effect: "+3 Mult for each Club", Color: "#50c878"},
	Mystic:   {Name: "Mystic Joker", Effect: "+15 Chips per card played", Color: "#9b59b6"},
	Chaos:    {Name: "Chaos Joker", Effect: "x1.5 Mult", Color: "#e74c3c"},
	Fortune:  {Name: "Fortune Joker", Effect: "+50 Chips", Color: "#f39c12"},
}

// Info returns the display data of the joker.
func (j JokerType) Info() (JokerInfo, bool) {
	info, ok := jokerInfo[j]
	return info, ok
}

func (j JokerType) Valid() bool {
	_, ok := jokerEffects[j]
	return ok
}

// ParseJoker accepts the identifier of a joker ("chaos"), in any case.
func ParseJoker(s string) (JokerType, error) {
	j := JokerType(strings.ToLower(strings.TrimSpace(s)))
	if !j.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownJoker, s)
	}
	return j, nil
}

// accumulator collects joker contributions while a hand is scored.
// scalar is applied to the multiplier once every additive term is in.
type accumulator struct {
	chips  int
	mult   int
	scalar float64
}

type jokerEffect func(acc *accumulator, played []Card)

func multPerSuit(suit uint8) jokerEffect {
	return func(acc *accumulator, played []Card) {
		acc.mult += 3 * suitCount(played, suit)
	}
}

var jokerEffects = map[JokerType]jokerEffect{
	Joker:    func(acc *accumulator, _ []Card) { acc.mult += 4 },
	Greedy:   multPerSuit(Diamond),
	Lusty:    multPerSuit(Heart),
	Wrathful: multPerSuit(Spade),
	Glutton:  multPerSuit(Club),
	Mystic:   func(acc *accumulator, played []Card) { acc.chips += 15 * len(played) },
	Chaos:    func(acc *accumulator, _ []Card) { acc.scalar *= 1.5 },
	Fortune:  func(acc *accumulator, _ []Card) { acc.chips += 50 },
}

// PickJokers draws n distinct jokers at random.
func PickJokers(n int, src deck.Source) ([]JokerType, error) {
	if n < 0 || n > len(JokerTypes) {
		return nil, fmt.Errorf("cannot pick %d jokers out of %d", n, len(JokerTypes))
	}
	if src == nil {
		src = deck.NewCryptoSource()
	}
	pool := make([]JokerType, len(JokerTypes))
	copy(pool, JokerTypes)
	for i := len(pool) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n], nil
}
