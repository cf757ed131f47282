package entity

import "time"

// Match is the local record of a finished game.
type Match struct {
	GameID     string
	PlayerName string
	Opponent   string
	Winner     string
	Bricks     int
	FreePlay   bool
	FinishedAt time.Time
}

func (that *Match) Won() bool {
	return that.Winner != "" && that.Winner == that.PlayerName
}

// NewMatch builds the record of a finished game from the point of view of playerName.
func NewMatch(state *GameState, playerName string, finishedAt time.Time) *Match {
	match := &Match{
		GameID:     state.ID,
		PlayerName: playerName,
		Winner:     state.WinnerName(),
		Bricks:     state.OccupiedCount() / 2,
		FreePlay:   state.IsFreePlay,
		FinishedAt: finishedAt,
	}

	for name := range state.Players {
		if name != playerName {
			match.Opponent = name
		}
	}

	return match
}
