package usecase

import (
	"github.com/rocketscienceinc/connect5-client/internal/entity"
	"github.com/rocketscienceinc/connect5-client/internal/protocol"
	"github.com/rocketscienceinc/connect5-client/internal/terminal"
	"github.com/rocketscienceinc/connect5-client/internal/transport/websocket"
)

// message is anything the view loop consumes.
type message interface {
	kind() string
}

type pullResult struct {
	state   *entity.GameState
	err     error
	initial bool
}

type pushEvent struct {
	msg *protocol.Message
}

type pushStatus struct {
	status websocket.Status
}

type inputEvent struct {
	input terminal.Input
}

type frameTick struct{}

type pollTick struct{}

type sceneInit struct{}

type startTimer struct{}

type submitResult struct {
	move  entity.Move
	state *entity.GameState
	err   error
}

type startResult struct {
	state *entity.GameState
	err   error
}

func (pullResult) kind() string   { return "pull-result" }
func (pushEvent) kind() string    { return "push-event" }
func (pushStatus) kind() string   { return "push-status" }
func (inputEvent) kind() string   { return "input" }
func (frameTick) kind() string    { return "frame-tick" }
func (pollTick) kind() string     { return "poll-tick" }
func (sceneInit) kind() string    { return "scene-init" }
func (startTimer) kind() string   { return "start-timer" }
func (submitResult) kind() string { return "submit-result" }
func (startResult) kind() string  { return "start-result" }
