package poker

// Phase is the stage of a round.
type Phase string

const (
	// InRound accepts selection, play and discard actions.
	InRound Phase = "in_round"
	// HandResolving holds a scored hand waiting to be committed; input is gated.
	HandResolving Phase = "hand_resolving"
	// RoundWon is reached when the score meets the target.
	RoundWon Phase = "round_won"
	// RoundLost is reached when no hands are left below the target.
	RoundLost Phase = "round_lost"
)

// Rules are the balance parameters of a game.
type Rules struct {
	HandSize         int
	MaxSelection     int
	HandsPerRound    int
	DiscardsPerRound int
	StartingTarget   int
	TargetIncrement  int
	JokersPerRound   int
	// RerollJokers draws new jokers at every new round instead of keeping
	// the ones picked at game start.
	RerollJokers bool
}

// DefaultRules returns the standard balance: 8 cards in hand, up to 5
// played, 4 hands and 3 discards per round, a target of 300 growing by 150
// after each won round, 3 jokers kept for the whole game.
func DefaultRules() Rules {
	return Rules{
		HandSize:         8,
		MaxSelection:     5,
		HandsPerRound:    4,
		DiscardsPerRound: 3,
		StartingTarget:   300,
		TargetIncrement:  150,
		JokersPerRound:   3,
	}
}

// RoundState is the snapshot of a round. The StateMachine owns the live
// value and hands out copies.
type RoundState struct {
	ID           string
	Number       int
	Phase        Phase
	Hand         []Card
	Selected     []int // hand indices, in selection order
	Jokers       []JokerType
	Score        int
	Chips        int // chips of the last committed play
	Mult         int // multiplier of the last committed play
	HandsLeft    int
	DiscardsLeft int
	TargetScore  int
	LastResult   *ScoreResult
}

func (r RoundState) clone() RoundState {
	out := r
	out.Hand = append([]Card(nil), r.Hand...)
	out.Selected = append([]int(nil), r.Selected...)
	out.Jokers = append([]JokerType(nil), r.Jokers...)
	if r.LastResult != nil {
		res := *r.LastResult
		out.LastResult = &res
	}
	return out
}

// IsSelected reports whether the hand card at index is selected.
func (r RoundState) IsSelected(index int) bool {
	for _, i := range r.Selected {
		if i == index {
			return true
		}
	}
	return false
}

// SelectedCards returns the selected cards in selection order.
func (r RoundState) SelectedCards() []Card {
	out := make([]Card, 0, len(r.Selected))
	for _, i := range r.Selected {
		out = append(out, r.Hand[i])
	}
	return out
}

// Progress is the score as a fraction of the target, capped at 1.
func (r RoundState) Progress() float64 {
	if r.TargetScore <= 0 {
		return 1
	}
	p := float64(r.Score) / float64(r.TargetScore)
	if p > 1 {
		return 1
	}
	return p
}
