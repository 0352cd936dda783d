package poker

import "encoding/json"

type ActionType string

const (
	ActionSelect   ActionType = "select"
	ActionPlay     ActionType = "play"
	ActionDiscard  ActionType = "discard"
	ActionResolve  ActionType = "resolve"
	ActionNewRound ActionType = "new_round"
)

// GameAction is an input event forwarded by the presentation layer.
// Index is only meaningful for ActionSelect.
type GameAction struct {
	RoundID string     `json:"round_id"`
	Type    ActionType `json:"type"`
	Index   int        `json:"index,omitempty"`
}

// ToPayload serializes the action for a front-end bridge.
func (ga GameAction) ToPayload() ([]byte, error) {
	return json.Marshal(ga)
}

// FromPayload deserializes an action produced by ToPayload.
func FromPayload(data []byte) (GameAction, error) {
	var ga GameAction
	err := json.Unmarshal(data, &ga)
	return ga, err
}
