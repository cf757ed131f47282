package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/rocketscienceinc/connect5-client/internal/apperror"
	"github.com/rocketscienceinc/connect5-client/internal/config"
	"github.com/rocketscienceinc/connect5-client/internal/entity"
	"github.com/rocketscienceinc/connect5-client/internal/picking"
	"github.com/rocketscienceinc/connect5-client/internal/protocol"
	"github.com/rocketscienceinc/connect5-client/internal/reconciler"
	"github.com/rocketscienceinc/connect5-client/internal/scene"
	"github.com/rocketscienceinc/connect5-client/internal/shape"
	"github.com/rocketscienceinc/connect5-client/internal/staging"
	"github.com/rocketscienceinc/connect5-client/internal/terminal"
	"github.com/rocketscienceinc/connect5-client/internal/transport/websocket"
)

const (
	queueSize   = 64
	historySave = 5 * time.Second
	keyHints    = "click: stage  v/h: orientation  enter: submit  u: undo  s: start  p: snapshot  q: quit"
)

type gameAPI interface {
	GetState(ctx context.Context, gameID string) (*entity.GameState, error)
	StartGame(ctx context.Context, gameID string) (*entity.GameState, error)
	MakeMove(ctx context.Context, gameID, playerName string, move entity.Move) (*entity.GameState, error)
}

type pushChannel interface {
	Run(ctx context.Context, room protocol.JoinRoomPayload, onMessage func(*protocol.Message), onStatus func(websocket.Status)) error
	Send(action string, payload any) error
}

type display interface {
	scene.Presenter
	Viewport() scene.Viewport
	SetStatus(lines ...string)
}

type snapshotCache interface {
	Save(ctx context.Context, state *entity.GameState) error
	GetByID(ctx context.Context, id string) (*entity.GameState, error)
	DeleteByID(ctx context.Context, id string) error
}

type matchHistory interface {
	Save(ctx context.Context, match *entity.Match) (bool, error)
}

type journalWriter interface {
	Append(update reconciler.Update) error
	Flush() error
	Close() error
}

// ViewConfig names the game and the local player and carries the view timings.
type ViewConfig struct {
	GameID     string
	PlayerName string
	IsHost     bool

	PollInterval   time.Duration
	AutoStartDelay time.Duration
	SceneInitDelay time.Duration
	FrameInterval  time.Duration
	NotifyMoves    bool
	SnapshotDir    string
	Camera         config.Camera
}

// ViewDeps are the collaborators of a GameView. Push, Cache, History and Journal are optional.
type ViewDeps struct {
	API     gameAPI
	Display display
	Push    pushChannel
	Cache   snapshotCache
	History matchHistory
	Journal journalWriter
}

// GameView is the in-game screen. Every piece of its state is owned by the goroutine running Run;
// network calls and timers report back through the message queue.
type GameView struct {
	logger *slog.Logger
	cfg    ViewConfig
	deps   ViewDeps

	store   *reconciler.Store
	staging *staging.Machine
	loop    *scene.Loop
	mapper  *picking.Mapper

	messages chan message
	done     chan struct{}

	autoStart        *time.Timer
	autoStartPending bool
	autoStartFired   bool
	recorded         bool
	pushConnected    bool
	selected         *entity.Cell
	notice           string

	now func() time.Time
}

func NewGameView(logger *slog.Logger, cfg ViewConfig, deps ViewDeps) *GameView {
	log := logger.With("component", "game-view", "game_id", cfg.GameID, "player", cfg.PlayerName)

	return &GameView{
		logger:   log,
		cfg:      cfg,
		deps:     deps,
		store:    reconciler.New(log),
		staging:  staging.New(),
		loop:     scene.NewLoop(log, deps.Display, cfg.Camera),
		mapper:   picking.NewMapper(log),
		messages: make(chan message, queueSize),
		done:     make(chan struct{}),
		now:      time.Now,
	}
}

// Input queues terminal input. It is safe to call from any goroutine.
func (that *GameView) Input(input terminal.Input) {
	that.post(inputEvent{input: input})
}

// Run drives the view until ctx is done or the player quits.
func (that *GameView) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	that.subscribe(ctx)
	that.restore(ctx)

	go that.fetch(ctx, true)

	if that.deps.Push != nil {
		go that.runPush(ctx)
	}

	sceneTimer := time.AfterFunc(that.cfg.SceneInitDelay, func() { that.post(sceneInit{}) })
	pollTicker := time.NewTicker(that.cfg.PollInterval)
	frameTicker := time.NewTicker(that.cfg.FrameInterval)

	defer func() {
		sceneTimer.Stop()
		pollTicker.Stop()
		frameTicker.Stop()
		that.teardown()
	}()

	log.Info("game view started")

	for {
		var msg message

		select {
		case <-ctx.Done():
			log.Info("game view closed")
			return nil
		case <-pollTicker.C:
			msg = pollTick{}
		case <-frameTicker.C:
			msg = frameTick{}
		case msg = <-that.messages:
		}

		if quit := that.handle(ctx, msg); quit {
			log.Info("player left the game view")
			return nil
		}
	}
}

// post queues msg unless the view is gone; results that arrive after teardown are dropped.
func (that *GameView) post(msg message) {
	select {
	case that.messages <- msg:
	case <-that.done:
	}
}

func (that *GameView) teardown() {
	close(that.done)

	if that.autoStart != nil {
		that.autoStart.Stop()
	}

	that.loop.Teardown()

	if that.deps.Journal != nil {
		if err := that.deps.Journal.Close(); err != nil {
			that.logger.Error("failed to close journal", "error", err)
		}
	}
}

func (that *GameView) handle(ctx context.Context, msg message) bool {
	switch msg := msg.(type) {
	case pullResult:
		that.onPull(ctx, msg)
	case pushEvent:
		that.onPush(msg.msg)
	case pushStatus:
		that.onPushStatus(msg.status)
	case inputEvent:
		return that.onInput(ctx, msg.input)
	case frameTick:
		that.refreshStatus()
		that.loop.Tick()
	case pollTick:
		that.flushJournal()
		go that.fetch(ctx, false)
	case sceneInit:
		that.loop.Init(that.deps.Display.Viewport())
		that.rebuild(that.store.Current())
	case startTimer:
		that.onStartTimer(ctx)
	case submitResult:
		that.onSubmitResult(msg)
	case startResult:
		that.onStartResult(msg)
	}

	return false
}

func (that *GameView) fetch(ctx context.Context, initial bool) {
	state, err := that.deps.API.GetState(ctx, that.cfg.GameID)
	that.post(pullResult{state: state, err: err, initial: initial})
}

func (that *GameView) runPush(ctx context.Context) {
	room := protocol.JoinRoomPayload{GameID: that.cfg.GameID, PlayerName: that.cfg.PlayerName}

	err := that.deps.Push.Run(ctx, room,
		func(msg *protocol.Message) { that.post(pushEvent{msg: msg}) },
		func(status websocket.Status) { that.post(pushStatus{status: status}) },
	)
	if err != nil {
		that.post(pushStatus{status: websocket.Status{Connected: false, Err: err}})
	}
}

// restore shows the cached snapshot until the first pull arrives.
func (that *GameView) restore(ctx context.Context) {
	if that.deps.Cache == nil {
		return
	}

	state, err := that.deps.Cache.GetByID(ctx, that.cfg.GameID)
	if err != nil {
		that.logger.Debug("no cached snapshot", "error", err)
		return
	}

	that.store.Update(reconciler.SourceCache, "restore", state)
}

func (that *GameView) onPull(ctx context.Context, msg pullResult) {
	log := that.logger.With("method", "onPull")

	if msg.err != nil {
		if errors.Is(msg.err, apperror.ErrGameNotFound) {
			that.evict(ctx)
		}

		if msg.initial {
			log.Error("failed to load game state", "error", msg.err)
			that.notice = apperror.Message(fmt.Errorf("%w: %w", apperror.ErrLoadFailed, msg.err))
		} else {
			log.Warn("failed to poll game state", "error", msg.err)
		}

		return
	}

	event := "poll"
	if msg.initial {
		event = "load"
	}

	that.store.Update(reconciler.SourcePull, event, msg.state)
}

func (that *GameView) onPush(msg *protocol.Message) {
	log := that.logger.With("method", "onPush", "action", msg.Action)

	switch {
	case msg.CarriesSnapshot():
		state, err := protocol.DecodeSnapshot(msg.Payload)
		if err != nil {
			log.Warn("dropping push snapshot", "error", err)
			return
		}

		that.store.Update(reconciler.SourcePush, msg.Action, state)
	case msg.Action == protocol.ActionPlayerJoined:
		log.Info("player joined", "payload", string(msg.Payload))
	case msg.Action == protocol.ActionResponse:
		log.Debug("server acknowledged", "payload", string(msg.Payload))
	case msg.Action == protocol.ActionError:
		log.Warn("server reported an error", "payload", string(msg.Payload))
	default:
		log.Debug("ignoring push message")
	}
}

// evict drops the cached snapshot of a game the server no longer knows.
func (that *GameView) evict(ctx context.Context) {
	if that.deps.Cache == nil {
		return
	}

	go func() {
		if err := that.deps.Cache.DeleteByID(ctx, that.cfg.GameID); err != nil {
			that.logger.Debug("failed to evict cached snapshot", "error", err)
			return
		}

		that.logger.Info("evicted cached snapshot of a gone game")
	}()
}

func (that *GameView) flushJournal() {
	if that.deps.Journal == nil {
		return
	}

	if err := that.deps.Journal.Flush(); err != nil {
		that.logger.Warn("failed to flush journal", "error", err)
	}
}

func (that *GameView) onPushStatus(status websocket.Status) {
	that.pushConnected = status.Connected

	if !status.Connected && status.Err != nil {
		that.logger.Warn("push channel down", "attempt", status.Attempt, "error", status.Err)
	}
}

func (that *GameView) onInput(ctx context.Context, input terminal.Input) bool {
	switch input := input.(type) {
	case terminal.Pointer:
		that.onPointer(input)
	case terminal.Resize:
		that.loop.Resize(input.Viewport)
	case terminal.Command:
		return that.onCommand(ctx, input)
	}

	return false
}

func (that *GameView) onPointer(pointer terminal.Pointer) {
	state := that.store.Current()

	pick := that.mapper.Resolve(pointer.X, pointer.Y, that.loop.Camera(), that.loop.Scene().Blocks(), state)

	switch pick.Kind {
	case picking.KindShape:
		cell := pick.Cell
		that.selected = &cell
	case picking.KindCell:
		move, err := that.staging.Stage(state, that.cfg.PlayerName, pick.Cell)
		if err != nil {
			that.notice = apperror.Message(err)
			return
		}

		that.selected = nil
		that.notice = ""
		that.loop.Scene().SetPreview(scene.Preview{Move: move, Legal: state.IsLegal(move)})
	case picking.KindNone:
	}
}

func (that *GameView) onCommand(ctx context.Context, command terminal.Command) bool {
	switch command {
	case terminal.CommandVertical:
		that.staging.SelectOrientation(entity.OrientationVertical)
	case terminal.CommandHorizontal:
		that.staging.SelectOrientation(entity.OrientationHorizontal)
	case terminal.CommandToggle:
		that.staging.ToggleOrientation()
	case terminal.CommandSubmit:
		that.submit(ctx)
	case terminal.CommandUndo:
		that.staging.Undo()
		that.loop.Scene().ClearPreview()
		that.notice = ""
	case terminal.CommandStart:
		that.requestStart(ctx)
	case terminal.CommandSnapshot:
		that.snapshot()
	case terminal.CommandQuit:
		return true
	}

	return false
}

func (that *GameView) submit(ctx context.Context) {
	move, err := that.staging.BeginSubmit()
	if err != nil {
		that.notice = apperror.Message(err)
		return
	}

	that.notice = ""

	go func() {
		state, err := that.deps.API.MakeMove(ctx, that.cfg.GameID, that.cfg.PlayerName, move)
		that.post(submitResult{move: move, state: state, err: err})
	}()
}

func (that *GameView) onSubmitResult(msg submitResult) {
	log := that.logger.With("method", "onSubmitResult", "move", msg.move)

	if msg.err != nil {
		that.staging.Reject()

		if errors.Is(msg.err, apperror.ErrInvalidMove) {
			log.Info("move rejected", "error", msg.err)
			that.notice = apperror.Message(msg.err)
		} else {
			log.Error("failed to make move", "error", msg.err)
			that.notice = apperror.Message(fmt.Errorf("%w: %w", apperror.ErrMoveFailed, msg.err))
		}

		return
	}

	that.staging.Accept()
	that.notice = ""

	if _, ok := that.staging.Preview(); !ok {
		that.loop.Scene().ClearPreview()
	}

	that.store.Update(reconciler.SourceLocal, "move", msg.state)

	if that.cfg.NotifyMoves && that.deps.Push != nil {
		payload := protocol.MovePayload{
			GameID:      that.cfg.GameID,
			PlayerName:  that.cfg.PlayerName,
			Line:        msg.move.Line,
			Height:      msg.move.Height,
			Orientation: string(msg.move.Orientation),
		}

		if err := that.deps.Push.Send(protocol.ActionGameMove, payload); err != nil {
			log.Warn("failed to notify move", "error", err)
		}
	}
}

// canAutoStart reports whether the host should start the game now.
func (that *GameView) canAutoStart(state *entity.GameState) bool {
	if !that.cfg.IsHost || state == nil || state.IsFreePlay {
		return false
	}

	return !state.Started && !state.GameOver && state.PlayerCount() == 2
}

// onStartTimer starts the game if it still qualifies. A failed re-check lets a later snapshot
// schedule the timer again; a start request is sent at most once.
func (that *GameView) onStartTimer(ctx context.Context) {
	that.autoStartPending = false

	if that.autoStartFired || !that.canAutoStart(that.store.Current()) {
		that.logger.Debug("auto start no longer applies")
		return
	}

	that.autoStartFired = true
	that.requestStart(ctx)
}

func (that *GameView) requestStart(ctx context.Context) {
	state := that.store.Current()
	if !that.cfg.IsHost || state == nil || state.Started {
		return
	}

	go func() {
		state, err := that.deps.API.StartGame(ctx, that.cfg.GameID)
		that.post(startResult{state: state, err: err})
	}()
}

func (that *GameView) onStartResult(msg startResult) {
	if msg.err != nil {
		that.logger.Error("failed to start game", "error", msg.err)
		that.notice = apperror.Message(fmt.Errorf("%w: %w", apperror.ErrStartFailed, msg.err))

		return
	}

	that.store.Update(reconciler.SourceLocal, "start", msg.state)
}

func (that *GameView) snapshot() {
	name := fmt.Sprintf("connect5-%s-%s.png", that.cfg.GameID, that.now().Format("20060102-150405"))
	path := filepath.Join(that.cfg.SnapshotDir, name)

	if err := that.loop.Snapshot(path); err != nil {
		that.logger.Warn("failed to save snapshot", "error", err)
		return
	}

	that.notice = "Saved " + path
}

// subscribe wires the reaction to every accepted snapshot.
func (that *GameView) subscribe(ctx context.Context) {
	that.store.Subscribe(func(_, next *entity.GameState, _ reconciler.Update) {
		that.rebuild(next)
	})

	that.store.Subscribe(func(_, next *entity.GameState, _ reconciler.Update) {
		if that.autoStartFired || that.autoStartPending || !that.canAutoStart(next) {
			return
		}

		that.autoStartPending = true
		that.autoStart = time.AfterFunc(that.cfg.AutoStartDelay, func() { that.post(startTimer{}) })
	})

	if that.deps.Journal != nil {
		that.store.Subscribe(func(_, _ *entity.GameState, update reconciler.Update) {
			if err := that.deps.Journal.Append(update); err != nil {
				that.logger.Warn("failed to journal update", "error", err)
			}
		})
	}

	if that.deps.Cache != nil {
		that.store.Subscribe(func(_, next *entity.GameState, update reconciler.Update) {
			if update.Source == reconciler.SourceCache {
				return
			}

			go func() {
				if err := that.deps.Cache.Save(ctx, next); err != nil {
					that.logger.Debug("failed to cache snapshot", "error", err)
				}
			}()
		})
	}

	if that.deps.History != nil {
		that.store.Subscribe(func(_, next *entity.GameState, _ reconciler.Update) {
			if that.recorded || !next.GameOver {
				return
			}

			that.recorded = true
			match := entity.NewMatch(next, that.cfg.PlayerName, that.now())

			go func() {
				saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), historySave)
				defer cancel()

				if _, err := that.deps.History.Save(saveCtx, match); err != nil {
					that.logger.Error("failed to record match", "error", err)
				}
			}()
		})
	}
}

// rebuild replaces every block with the bricks of state and puts the preview back.
func (that *GameView) rebuild(state *entity.GameState) {
	if state == nil {
		return
	}

	result := shape.Reconstruct(&state.Board, &state.Orientations)
	if len(result.Malformed) > 0 {
		that.logger.Warn("snapshot has unpaired cells", "cells", result.Malformed)
	}

	sc := that.loop.Scene()
	sc.SetBlocks(scene.BuildBlocks(result.Shapes, state.OwnerOf(that.cfg.PlayerName)))

	if move, ok := that.staging.Preview(); ok {
		sc.SetPreview(scene.Preview{Move: move, Legal: state.IsLegal(move)})
	} else {
		sc.ClearPreview()
	}
}

func (that *GameView) refreshStatus() {
	that.deps.Display.SetStatus(that.statusLine(), that.noticeLine())
}

func (that *GameView) statusLine() string {
	state := that.store.Current()
	if state == nil {
		return fmt.Sprintf("Game %s | loading...", that.cfg.GameID)
	}

	parts := []string{fmt.Sprintf("Game %s", that.cfg.GameID)}

	switch {
	case state.GameOver && state.WinnerName() != "":
		parts = append(parts, fmt.Sprintf("Game over, %s wins", state.WinnerName()))
	case state.GameOver:
		parts = append(parts, "Game over")
	case !state.Started:
		parts = append(parts, fmt.Sprintf("Waiting for players (%d/2)", state.PlayerCount()))
	case state.IsTurnOf(that.cfg.PlayerName):
		parts = append(parts, "Your turn")
	default:
		parts = append(parts, fmt.Sprintf("Turn: %s", state.CurrentPlayer))
	}

	parts = append(parts, fmt.Sprintf("Orientation: %s", that.staging.Orientation()))

	if move, ok := that.staging.Pending(); ok {
		parts = append(parts, fmt.Sprintf("Pending: %s %s (%s)", move.Anchor(), move.Orientation, that.staging.Phase()))
	}

	if that.selected != nil {
		parts = append(parts, fmt.Sprintf("Selected: %s", that.selected))
	}

	if that.deps.Push != nil && !that.pushConnected {
		parts = append(parts, "Push: offline")
	}

	return strings.Join(parts, " | ")
}

func (that *GameView) noticeLine() string {
	if that.notice != "" {
		return that.notice
	}

	return keyHints
}
