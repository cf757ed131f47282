package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// BoardSize is the number of lines and heights of the board.
const BoardSize = 9

const (
	OwnerNone Owner = 0
	OwnerOne  Owner = 1
	OwnerTwo  Owner = 2
)

const (
	OrientationNone       Orientation = ""
	OrientationVertical   Orientation = "v"
	OrientationHorizontal Orientation = "h"
)

var (
	ErrUnknownOrientation = errors.New("unknown orientation")
	ErrUnknownOwner       = errors.New("unknown owner")
	ErrUnknownTimestamp   = errors.New("unknown timestamp format")
)

var jsonNull = []byte("null")

// Owner identifies which player occupies a cell. OwnerNone marks an empty cell.
type Owner int

func (that Owner) MarshalJSON() ([]byte, error) {
	if that == OwnerNone {
		return jsonNull, nil
	}

	return json.Marshal(int(that))
}

func (that *Owner) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*that = OwnerNone
		return nil
	}

	var value int
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("failed to unmarshal owner: %w", err)
	}

	owner := Owner(value)
	if owner != OwnerOne && owner != OwnerTwo {
		return fmt.Errorf("%w: %d", ErrUnknownOwner, value)
	}

	*that = owner

	return nil
}

// Orientation is the direction a brick spans: up one height or right one line.
type Orientation string

func (that Orientation) MarshalJSON() ([]byte, error) {
	if that == OrientationNone {
		return jsonNull, nil
	}

	return json.Marshal(string(that))
}

func (that *Orientation) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*that = OrientationNone
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("failed to unmarshal orientation: %w", err)
	}

	orientation := Orientation(value)
	if !orientation.IsValid() && orientation != OrientationNone {
		return fmt.Errorf("%w: %q", ErrUnknownOrientation, value)
	}

	*that = orientation

	return nil
}

func (that Orientation) IsValid() bool {
	return that == OrientationVertical || that == OrientationHorizontal
}

// Toggle flips between vertical and horizontal. None becomes vertical.
func (that Orientation) Toggle() Orientation {
	if that == OrientationVertical {
		return OrientationHorizontal
	}

	return OrientationVertical
}

func (that Orientation) String() string {
	switch that {
	case OrientationVertical:
		return "vertical"
	case OrientationHorizontal:
		return "horizontal"
	default:
		return "none"
	}
}

// Board holds the occupant of every cell, indexed [line][height].
type Board [BoardSize][BoardSize]Owner

// Orientations holds the orientation of the brick covering every cell, indexed [line][height].
type Orientations [BoardSize][BoardSize]Orientation

// Cell is a board coordinate. Line grows to the right, height grows upwards.
type Cell struct {
	Line   int `json:"line"`
	Height int `json:"height"`
}

func (that Cell) InBounds() bool {
	return that.Line >= 0 && that.Line < BoardSize && that.Height >= 0 && that.Height < BoardSize
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d,%d)", that.Line, that.Height)
}

// Move is a brick placement: the anchor cell plus the orientation.
type Move struct {
	Line        int         `json:"line"`
	Height      int         `json:"height"`
	Orientation Orientation `json:"orientation"`
}

func NewMove(cell Cell, orientation Orientation) Move {
	return Move{Line: cell.Line, Height: cell.Height, Orientation: orientation}
}

func (that Move) Anchor() Cell {
	return Cell{Line: that.Line, Height: that.Height}
}

// Cells returns the two cells the brick would cover.
func (that Move) Cells() [2]Cell {
	return spannedCells(that.Anchor(), that.Orientation)
}

// GameState is a full snapshot of a game as reported by the server.
// Snapshots are replaced wholesale on every update and never patched.
type GameState struct {
	ID            string           `json:"id"`
	Host          string           `json:"host"`
	Players       map[string]Owner `json:"players"`
	Started       bool             `json:"started"`
	CurrentPlayer string           `json:"current_player"`
	Board         Board            `json:"board"`
	Orientations  Orientations     `json:"orientations"`
	GameOver      bool             `json:"game_over"`
	Winner        Owner            `json:"winner"`
	ValidMoves    []Move           `json:"valid_moves"`
	IsFreePlay    bool             `json:"is_free_play,omitempty"`
}

func (that *GameState) PlayerCount() int {
	return len(that.Players)
}

// OwnerOf returns the owner id assigned to the player, OwnerNone when unassigned or unknown.
func (that *GameState) OwnerOf(playerName string) Owner {
	return that.Players[playerName]
}

func (that *GameState) IsTurnOf(playerName string) bool {
	return that.CurrentPlayer == playerName
}

func (that *GameState) IsOccupied(cell Cell) bool {
	if !cell.InBounds() {
		return false
	}

	return that.Board[cell.Line][cell.Height] != OwnerNone
}

func (that *GameState) OccupiedCount() int {
	count := 0

	for line := range that.Board {
		for height := range that.Board[line] {
			if that.Board[line][height] != OwnerNone {
				count++
			}
		}
	}

	return count
}

// IsLegal reports whether the move is in the server's list of legal moves.
func (that *GameState) IsLegal(move Move) bool {
	for _, valid := range that.ValidMoves {
		if valid == move {
			return true
		}
	}

	return false
}

// WinnerName returns the name of the winning player, or an empty string.
func (that *GameState) WinnerName() string {
	if that.Winner == OwnerNone {
		return ""
	}

	for name, owner := range that.Players {
		if owner == that.Winner {
			return name
		}
	}

	return ""
}

// AvailableGame is a lobby listing entry.
type AvailableGame struct {
	ID           string    `json:"id"`
	Host         string    `json:"host"`
	PlayersCount int       `json:"players_count"`
	CreatedAt    Timestamp `json:"created_at"`
}

// Timestamp accepts RFC 3339 times as well as ISO 8601 times without a zone, which are read as UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (that *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		that.Time = time.Time{}
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("failed to unmarshal timestamp: %w", err)
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			that.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownTimestamp, value)
}

func (that Timestamp) MarshalJSON() ([]byte, error) {
	if that.IsZero() {
		return jsonNull, nil
	}

	return json.Marshal(that.Format(time.RFC3339Nano))
}
