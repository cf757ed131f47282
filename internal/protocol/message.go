// Package protocol defines the push channel envelope and validates every snapshot before it is decoded.
package protocol

import "encoding/json"

const (
	ActionBoardUpdated     = "board_updated"
	ActionGameStarted      = "game_started"
	ActionGameStateUpdated = "game_state_updated"
	ActionPlayerJoined     = "player_joined"
	ActionResponse         = "response"
	ActionError            = "error"

	ActionJoinGameRoom = "join_game_room"
	ActionGameMove     = "game_move"
)

// Message represents a websocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// CarriesSnapshot reports whether the payload is a full game state.
func (that *Message) CarriesSnapshot() bool {
	switch that.Action {
	case ActionBoardUpdated, ActionGameStarted, ActionGameStateUpdated:
		return true
	default:
		return false
	}
}

type JoinRoomPayload struct {
	GameID     string `json:"game_id"`
	PlayerName string `json:"player_name"`
}

type MovePayload struct {
	GameID      string `json:"game_id"`
	PlayerName  string `json:"player_name"`
	Line        int    `json:"line"`
	Height      int    `json:"height"`
	Orientation string `json:"orientation"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
