// Package staging holds the local player's move between picking a cell and the server's answer.
package staging

import (
	"github.com/rocketscienceinc/connect5-client/internal/apperror"
	"github.com/rocketscienceinc/connect5-client/internal/entity"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseStaged
	PhaseSubmitting
)

func (that Phase) String() string {
	switch that {
	case PhaseStaged:
		return "staged"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "idle"
	}
}

// Machine tracks the pending move, the preview and the orientation toggle.
// Pending and preview are set and cleared together.
type Machine struct {
	phase       Phase
	orientation entity.Orientation
	pending     *entity.Move
	preview     *entity.Move
}

func New() *Machine {
	return &Machine{orientation: entity.OrientationVertical}
}

// SelectOrientation changes the toggle used by the next Stage. A staged move keeps its orientation.
func (that *Machine) SelectOrientation(orientation entity.Orientation) {
	if orientation.IsValid() {
		that.orientation = orientation
	}
}

// ToggleOrientation flips the toggle and returns the new value.
func (that *Machine) ToggleOrientation() entity.Orientation {
	that.orientation = that.orientation.Toggle()

	return that.orientation
}

// Stage records a move at cell with the current toggle. Restaging replaces the pending move.
func (that *Machine) Stage(state *entity.GameState, localPlayer string, cell entity.Cell) (entity.Move, error) {
	switch {
	case state == nil || state.GameOver:
		return entity.Move{}, apperror.ErrGameOver
	case !state.Started:
		return entity.Move{}, apperror.ErrGameNotStarted
	case !state.IsTurnOf(localPlayer):
		return entity.Move{}, apperror.ErrNotYourTurn
	case that.phase == PhaseSubmitting:
		return entity.Move{}, apperror.ErrSubmitInFlight
	}

	move := entity.NewMove(cell, that.orientation)

	that.pending = &move
	that.preview = &move
	that.phase = PhaseStaged

	return move, nil
}

// BeginSubmit moves a staged move into flight and returns it.
func (that *Machine) BeginSubmit() (entity.Move, error) {
	switch that.phase {
	case PhaseSubmitting:
		return entity.Move{}, apperror.ErrSubmitInFlight
	case PhaseIdle:
		return entity.Move{}, apperror.ErrNoSelection
	}

	that.phase = PhaseSubmitting

	return *that.pending, nil
}

// Accept ends a successful submit and clears the move.
func (that *Machine) Accept() {
	if that.phase != PhaseSubmitting {
		return
	}

	that.clear()
}

// Reject ends a failed submit. The move stays staged so it can be retried.
func (that *Machine) Reject() {
	if that.phase != PhaseSubmitting {
		return
	}

	that.phase = PhaseStaged
}

// Undo drops the staged move.
func (that *Machine) Undo() {
	that.clear()
}

func (that *Machine) clear() {
	that.phase = PhaseIdle
	that.pending = nil
	that.preview = nil
}

func (that *Machine) Phase() Phase {
	return that.phase
}

func (that *Machine) Orientation() entity.Orientation {
	return that.orientation
}

func (that *Machine) Pending() (entity.Move, bool) {
	if that.pending == nil {
		return entity.Move{}, false
	}

	return *that.pending, true
}

func (that *Machine) Preview() (entity.Move, bool) {
	if that.preview == nil {
		return entity.Move{}, false
	}

	return *that.preview, true
}
