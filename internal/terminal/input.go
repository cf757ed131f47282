package terminal

import (
	"github.com/rocketscienceinc/connect5-client/internal/scene"
)

// Input is anything the terminal reports to the view.
type Input interface {
	isInput()
}

// Pointer is a primary button press in frame pixel coordinates.
type Pointer struct {
	X float64
	Y float64
}

// Resize carries the new frame size.
type Resize struct {
	Viewport scene.Viewport
}

type Command int

const (
	CommandVertical Command = iota + 1
	CommandHorizontal
	CommandToggle
	CommandSubmit
	CommandUndo
	CommandStart
	CommandSnapshot
	CommandQuit
)

func (that Command) String() string {
	switch that {
	case CommandVertical:
		return "vertical"
	case CommandHorizontal:
		return "horizontal"
	case CommandToggle:
		return "toggle"
	case CommandSubmit:
		return "submit"
	case CommandUndo:
		return "undo"
	case CommandStart:
		return "start"
	case CommandSnapshot:
		return "snapshot"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

func (Pointer) isInput() {}
func (Resize) isInput()  {}
func (Command) isInput() {}
