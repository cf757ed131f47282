package entity

// Session remembers which game a local player last entered, so the view can be resumed.
type Session struct {
	PlayerName string `json:"player_name"`
	GameID     string `json:"game_id,omitempty"`
	IsHost     bool   `json:"is_host,omitempty"`
}

func (that *Session) InGame() bool {
	return that.GameID != ""
}
