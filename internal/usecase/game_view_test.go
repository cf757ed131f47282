package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connect5-client/internal/apperror"
	"github.com/rocketscienceinc/connect5-client/internal/config"
	"github.com/rocketscienceinc/connect5-client/internal/entity"
	"github.com/rocketscienceinc/connect5-client/internal/journal"
	"github.com/rocketscienceinc/connect5-client/internal/protocol"
	"github.com/rocketscienceinc/connect5-client/internal/reconciler"
	"github.com/rocketscienceinc/connect5-client/internal/scene"
	"github.com/rocketscienceinc/connect5-client/internal/staging"
	"github.com/rocketscienceinc/connect5-client/internal/terminal"
	mockedUseCase "github.com/rocketscienceinc/connect5-client/mocks/usecase"
)

var errServerDown = errors.New("server down")

type fakeDisplay struct {
	mu       sync.Mutex
	viewport scene.Viewport
	status   []string
	frames   int
	shown    chan struct{}
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{
		viewport: scene.Viewport{Width: 120, Height: 80},
		shown:    make(chan struct{}, 1),
	}
}

func (that *fakeDisplay) Present(image.Image) {
	that.mu.Lock()
	that.frames++
	that.mu.Unlock()

	select {
	case that.shown <- struct{}{}:
	default:
	}
}

func (that *fakeDisplay) Viewport() scene.Viewport {
	return that.viewport
}

func (that *fakeDisplay) SetStatus(lines ...string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.status = lines
}

func (that *fakeDisplay) lines() []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.status
}

type countingJournal struct {
	updates []reconciler.Update
	flushes int
	closed  bool
}

func (that *countingJournal) Append(update reconciler.Update) error {
	that.updates = append(that.updates, update)
	return nil
}

func (that *countingJournal) Flush() error {
	that.flushes++
	return nil
}

func (that *countingJournal) Close() error {
	that.closed = true
	return nil
}

func testViewConfig() ViewConfig {
	return ViewConfig{
		GameID:         "g1",
		PlayerName:     "alice",
		IsHost:         true,
		PollInterval:   time.Hour,
		AutoStartDelay: 10 * time.Millisecond,
		SceneInitDelay: time.Millisecond,
		FrameInterval:  5 * time.Millisecond,
		SnapshotDir:    "",
		Camera: config.Camera{
			FieldOfView: 75,
			Position:    []float64{4.5, 7, 16},
			Target:      []float64{4.5, 4, 4.5},
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runningState is a started two player game where it is alice's turn.
func runningState() *entity.GameState {
	return &entity.GameState{
		ID:            "g1",
		Host:          "alice",
		Players:       map[string]entity.Owner{"alice": entity.OwnerOne, "bob": entity.OwnerTwo},
		Started:       true,
		CurrentPlayer: "alice",
		ValidMoves:    []entity.Move{{Line: 4, Height: 4, Orientation: entity.OrientationVertical}},
	}
}

func waitingState(players ...string) *entity.GameState {
	state := &entity.GameState{ID: "g1", Host: "alice", Players: map[string]entity.Owner{}}

	for i, name := range players {
		state.Players[name] = entity.Owner(i + 1)
	}

	return state
}

func nextMessage(t *testing.T, view *GameView) message {
	t.Helper()

	select {
	case msg := <-view.messages:
		return msg
	case <-time.After(time.Second):
		require.FailNow(t, "no message posted")
		return nil
	}
}

func assertNoMessage(t *testing.T, view *GameView, wait time.Duration) {
	t.Helper()

	select {
	case msg := <-view.messages:
		assert.Failf(t, "unexpected message", "got %s", msg.kind())
	case <-time.After(wait):
	}
}

// pointAt returns the pointer position over the center of cell.
func pointAt(t *testing.T, view *GameView, cell entity.Cell) terminal.Pointer {
	t.Helper()

	camera := view.loop.Camera()
	require.NotNil(t, camera, "scene must be initialized")

	x, y, ok := camera.Project(mgl64.Vec3{float64(cell.Line) + 0.5, float64(cell.Height) + 0.5, scene.BoardDepth})
	require.True(t, ok)

	return terminal.Pointer{X: x, Y: y}
}

func newTestView(t *testing.T, api *mockedUseCase.MockgameAPI, deps ViewDeps) (*GameView, *fakeDisplay) {
	t.Helper()

	display := newFakeDisplay()
	deps.API = api
	deps.Display = display

	view := NewGameView(discardLogger(), testViewConfig(), deps)
	view.subscribe(context.Background())
	view.handle(context.Background(), sceneInit{})

	return view, display
}

func TestGameView_Pull(t *testing.T) {
	ctx := context.Background()

	t.Run("Initial load failure is shown to the player", func(t *testing.T) {
		// Given: a fresh view
		view, display := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{})

		// When: the first fetch fails
		view.handle(ctx, pullResult{err: errServerDown, initial: true})
		view.handle(ctx, frameTick{})

		// Then: the notice line carries the load failure
		require.Len(t, display.lines(), 2)
		assert.Equal(t, "Failed to load game state", display.lines()[1])
		assert.Nil(t, view.store.Current())
	})

	t.Run("Poll failure keeps the last good snapshot silently", func(t *testing.T) {
		view, display := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{})
		state := runningState()

		view.handle(ctx, pullResult{state: state, initial: true})
		view.handle(ctx, pullResult{err: errServerDown})
		view.handle(ctx, frameTick{})

		assert.Same(t, state, view.store.Current())
		assert.Equal(t, keyHints, display.lines()[1])
		assert.Contains(t, display.lines()[0], "Your turn")
	})

	t.Run("Gone game evicts the cached snapshot", func(t *testing.T) {
		// Given: a view backed by a snapshot cache
		cache := mockedUseCase.NewMocksnapshotCache(t)
		view, _ := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{Cache: cache})

		evicted := make(chan string, 1)
		cache.EXPECT().
			DeleteByID(mock.Anything, "g1").
			Run(func(_ context.Context, id string) { evicted <- id }).
			Return(nil).
			Once()

		// When: the server no longer knows the game, and a later poll only times out
		view.handle(ctx, pullResult{err: fmt.Errorf("%w: g1", apperror.ErrGameNotFound), initial: true})
		view.handle(ctx, pullResult{err: errServerDown})

		// Then: the snapshot of g1 is dropped once
		select {
		case id := <-evicted:
			assert.Equal(t, "g1", id)
		case <-time.After(time.Second):
			require.FailNow(t, "cached snapshot was not evicted")
		}

		assert.Equal(t, "Failed to load game state", view.notice)
	})

	t.Run("Poll ticks flush the journal", func(t *testing.T) {
		api := mockedUseCase.NewMockgameAPI(t)
		writer := &countingJournal{}
		view, _ := newTestView(t, api, ViewDeps{Journal: writer})

		api.EXPECT().GetState(mock.Anything, "g1").Return(runningState(), nil).Once()

		view.handle(ctx, pollTick{})
		view.handle(ctx, nextMessage(t, view))

		assert.Equal(t, 1, writer.flushes)
		require.Len(t, writer.updates, 1)
		assert.Equal(t, "poll", writer.updates[0].Event)
	})

	t.Run("Every snapshot rebuilds the blocks wholesale", func(t *testing.T) {
		// Given: a snapshot with one brick of each player
		view, _ := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{})
		state := runningState()
		state.Board[0][0], state.Board[0][1] = entity.OwnerOne, entity.OwnerOne
		state.Orientations[0][0], state.Orientations[0][1] = entity.OrientationVertical, entity.OrientationVertical
		state.Board[5][0], state.Board[6][0] = entity.OwnerTwo, entity.OwnerTwo
		state.Orientations[5][0], state.Orientations[6][0] = entity.OrientationHorizontal, entity.OrientationHorizontal

		// When: the snapshot arrives and then an empty one
		view.handle(ctx, pullResult{state: state})
		blocks := view.loop.Scene().Blocks()

		view.handle(ctx, pullResult{state: runningState()})

		// Then: only alice's brick is highlighted and the regression empties the scene
		require.Len(t, blocks, 2)

		for _, block := range blocks {
			assert.Equal(t, block.Shape.Owner == entity.OwnerOne, block.Highlighted)
		}

		assert.Empty(t, view.loop.Scene().Blocks())
	})
}

func TestGameView_Push(t *testing.T) {
	ctx := context.Background()

	t.Run("Snapshot envelopes replace the state", func(t *testing.T) {
		view, _ := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{})
		view.handle(ctx, pullResult{state: waitingState("alice")})

		pushed := runningState()
		payload, err := json.Marshal(pushed)
		require.NoError(t, err)

		view.handle(ctx, pushEvent{msg: &protocol.Message{Action: protocol.ActionGameStarted, Payload: payload}})

		require.NotNil(t, view.store.Current())
		assert.True(t, view.store.Current().Started)
		assert.Equal(t, uint64(2), view.store.Seq())
	})

	t.Run("Invalid snapshots are dropped", func(t *testing.T) {
		// Given: a view showing a running game
		view, _ := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{})
		state := runningState()
		view.handle(ctx, pullResult{state: state})

		// When: a board update with a broken board arrives, and an error envelope
		broken := json.RawMessage(`{"id":"g1","players":{},"started":true,"board":"nope","orientations":[],"game_over":false}`)
		view.handle(ctx, pushEvent{msg: &protocol.Message{Action: protocol.ActionBoardUpdated, Payload: broken}})
		view.handle(ctx, pushEvent{msg: &protocol.Message{Action: protocol.ActionError, Payload: json.RawMessage(`{"message":"x"}`)}})

		// Then: the state is untouched
		assert.Same(t, state, view.store.Current())
		assert.Equal(t, uint64(1), view.store.Seq())
	})

	t.Run("Join and acknowledgement envelopes leave the state alone", func(t *testing.T) {
		view, _ := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{})
		state := waitingState("alice")
		view.handle(ctx, pullResult{state: state})

		joined := json.RawMessage(`{"game_id":"g1","player_name":"bob"}`)
		view.handle(ctx, pushEvent{msg: &protocol.Message{Action: protocol.ActionPlayerJoined, Payload: joined}})
		view.handle(ctx, pushEvent{msg: &protocol.Message{Action: protocol.ActionResponse, Payload: json.RawMessage(`{"ok":true}`)}})

		assert.Same(t, state, view.store.Current())
		assert.Equal(t, uint64(1), view.store.Seq())
	})
}

func TestGameView_Staging(t *testing.T) {
	ctx := context.Background()
	cell := entity.Cell{Line: 4, Height: 4}
	move := entity.NewMove(cell, entity.OrientationVertical)

	t.Run("Accepted move clears the preview and applies the answer", func(t *testing.T) {
		// Given: alice's turn and a staged move at (4,4)
		api := mockedUseCase.NewMockgameAPI(t)
		view, _ := newTestView(t, api, ViewDeps{})
		view.handle(ctx, pullResult{state: runningState()})
		view.handle(ctx, inputEvent{input: pointAt(t, view, cell)})

		preview, ok := view.loop.Scene().Preview()
		require.True(t, ok)
		assert.Equal(t, move, preview.Move)
		assert.True(t, preview.Legal)

		answer := runningState()
		answer.CurrentPlayer = "bob"
		answer.Board[4][4], answer.Board[4][5] = entity.OwnerOne, entity.OwnerOne
		answer.Orientations[4][4], answer.Orientations[4][5] = entity.OrientationVertical, entity.OrientationVertical

		api.EXPECT().
			MakeMove(mock.Anything, "g1", "alice", move).
			Return(answer, nil).
			Once()

		// When: submitting and receiving the answer
		view.handle(ctx, inputEvent{input: terminal.CommandSubmit})
		assert.Equal(t, staging.PhaseSubmitting, view.staging.Phase())

		view.handle(ctx, nextMessage(t, view))

		// Then: the board shows the brick and nothing is staged
		_, ok = view.loop.Scene().Preview()
		assert.False(t, ok)
		assert.Equal(t, staging.PhaseIdle, view.staging.Phase())
		assert.Same(t, answer, view.store.Current())
		assert.Len(t, view.loop.Scene().Blocks(), 1)
	})

	t.Run("Rejected move stays staged", func(t *testing.T) {
		// Given: a staged move
		api := mockedUseCase.NewMockgameAPI(t)
		view, display := newTestView(t, api, ViewDeps{})
		state := runningState()
		view.handle(ctx, pullResult{state: state})
		view.handle(ctx, inputEvent{input: pointAt(t, view, cell)})

		api.EXPECT().
			MakeMove(mock.Anything, "g1", "alice", move).
			Return((*entity.GameState)(nil), fmt.Errorf("%w: Cell occupied", apperror.ErrInvalidMove)).
			Once()

		// When: the server rejects it
		view.handle(ctx, inputEvent{input: terminal.CommandSubmit})
		view.handle(ctx, nextMessage(t, view))
		view.handle(ctx, frameTick{})

		// Then: the move can be retried and the player sees why
		pending, ok := view.staging.Pending()
		require.True(t, ok)
		assert.Equal(t, move, pending)
		assert.Equal(t, staging.PhaseStaged, view.staging.Phase())
		assert.Equal(t, "Invalid move", display.lines()[1])
		assert.Same(t, state, view.store.Current())

		_, ok = view.loop.Scene().Preview()
		assert.True(t, ok)
	})

	t.Run("Transport failure on submit", func(t *testing.T) {
		api := mockedUseCase.NewMockgameAPI(t)
		view, _ := newTestView(t, api, ViewDeps{})
		view.handle(ctx, pullResult{state: runningState()})
		view.handle(ctx, inputEvent{input: pointAt(t, view, cell)})

		api.EXPECT().
			MakeMove(mock.Anything, "g1", "alice", move).
			Return((*entity.GameState)(nil), errServerDown).
			Once()

		view.handle(ctx, inputEvent{input: terminal.CommandSubmit})
		view.handle(ctx, nextMessage(t, view))

		assert.Equal(t, "Failed to make move", view.notice)
		assert.Equal(t, staging.PhaseStaged, view.staging.Phase())
	})

	t.Run("Second submit while in flight is refused", func(t *testing.T) {
		api := mockedUseCase.NewMockgameAPI(t)
		view, _ := newTestView(t, api, ViewDeps{})
		view.handle(ctx, pullResult{state: runningState()})
		view.handle(ctx, inputEvent{input: pointAt(t, view, cell)})

		api.EXPECT().
			MakeMove(mock.Anything, "g1", "alice", move).
			Return(runningState(), nil).
			Once()

		view.handle(ctx, inputEvent{input: terminal.CommandSubmit})
		view.handle(ctx, inputEvent{input: terminal.CommandSubmit})

		assert.Equal(t, "Move already submitted", view.notice)

		view.handle(ctx, nextMessage(t, view))
		assertNoMessage(t, view, 20*time.Millisecond)
	})

	t.Run("Guards refuse staging out of turn", func(t *testing.T) {
		// Given: it is bob's turn
		view, _ := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{})
		state := runningState()
		state.CurrentPlayer = "bob"
		view.handle(ctx, pullResult{state: state})

		// When: alice clicks a free cell
		view.handle(ctx, inputEvent{input: pointAt(t, view, cell)})

		// Then: nothing is staged
		_, ok := view.loop.Scene().Preview()
		assert.False(t, ok)
		assert.Equal(t, "Not your turn", view.notice)
	})

	t.Run("Submit without a staged move", func(t *testing.T) {
		view, _ := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{})
		view.handle(ctx, pullResult{state: runningState()})

		view.handle(ctx, inputEvent{input: terminal.CommandSubmit})

		assert.Equal(t, "No move selected", view.notice)
		assertNoMessage(t, view, 20*time.Millisecond)
	})

	t.Run("Toggle and undo", func(t *testing.T) {
		view, _ := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{})
		view.handle(ctx, pullResult{state: runningState()})

		view.handle(ctx, inputEvent{input: terminal.CommandToggle})
		view.handle(ctx, inputEvent{input: pointAt(t, view, cell)})

		pending, ok := view.staging.Pending()
		require.True(t, ok)
		assert.Equal(t, entity.OrientationHorizontal, pending.Orientation)

		preview, ok := view.loop.Scene().Preview()
		require.True(t, ok)
		assert.False(t, preview.Legal)

		view.handle(ctx, inputEvent{input: terminal.CommandUndo})

		_, ok = view.loop.Scene().Preview()
		assert.False(t, ok)
		assert.Equal(t, staging.PhaseIdle, view.staging.Phase())
	})

	t.Run("Clicking a brick selects it", func(t *testing.T) {
		view, _ := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{})
		state := runningState()
		state.Board[4][4], state.Board[4][5] = entity.OwnerTwo, entity.OwnerTwo
		state.Orientations[4][4], state.Orientations[4][5] = entity.OrientationVertical, entity.OrientationVertical
		view.handle(ctx, pullResult{state: state})

		view.handle(ctx, inputEvent{input: pointAt(t, view, cell)})

		require.NotNil(t, view.selected)
		assert.Equal(t, cell, *view.selected)
		assert.Equal(t, staging.PhaseIdle, view.staging.Phase())
	})

	t.Run("Quit command ends the loop", func(t *testing.T) {
		view, _ := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{})

		assert.True(t, view.handle(ctx, inputEvent{input: terminal.CommandQuit}))
		assert.False(t, view.handle(ctx, inputEvent{input: terminal.CommandVertical}))
	})
}

func TestGameView_AutoStart(t *testing.T) {
	ctx := context.Background()

	t.Run("Host starts a full game once", func(t *testing.T) {
		// Given: the host sees a second player join, twice
		api := mockedUseCase.NewMockgameAPI(t)
		view, _ := newTestView(t, api, ViewDeps{})

		view.handle(ctx, pullResult{state: waitingState("alice")})
		view.handle(ctx, pullResult{state: waitingState("alice", "bob")})
		view.handle(ctx, pullResult{state: waitingState("alice", "bob")})

		api.EXPECT().
			StartGame(mock.Anything, "g1").
			Return(runningState(), nil).
			Once()

		// When: the start timer fires
		timer := nextMessage(t, view)
		require.IsType(t, startTimer{}, timer)
		view.handle(ctx, timer)
		view.handle(ctx, nextMessage(t, view))

		// Then: the started game is shown and no second start is scheduled
		assert.True(t, view.store.Current().Started)

		view.handle(ctx, pullResult{state: waitingState("alice", "bob")})
		assertNoMessage(t, view, 50*time.Millisecond)
	})

	t.Run("Stale snapshot does not block a later start", func(t *testing.T) {
		// Given: bob joins, leaves before the timer fires, then joins again
		api := mockedUseCase.NewMockgameAPI(t)
		view, _ := newTestView(t, api, ViewDeps{})

		view.handle(ctx, pullResult{state: waitingState("alice", "bob")})
		view.handle(ctx, pullResult{state: waitingState("alice")})

		stale := nextMessage(t, view)
		require.IsType(t, startTimer{}, stale)
		view.handle(ctx, stale)

		view.handle(ctx, pullResult{state: waitingState("alice", "bob")})
		view.handle(ctx, pullResult{state: waitingState("alice", "bob")})

		api.EXPECT().
			StartGame(mock.Anything, "g1").
			Return(runningState(), nil).
			Once()

		// When: the rescheduled timer fires
		timer := nextMessage(t, view)
		require.IsType(t, startTimer{}, timer)
		view.handle(ctx, timer)
		view.handle(ctx, nextMessage(t, view))

		// Then: exactly one start went out and the game runs
		assert.True(t, view.store.Current().Started)
		assertNoMessage(t, view, 50*time.Millisecond)
	})

	t.Run("Timer re-checks the state before starting", func(t *testing.T) {
		api := mockedUseCase.NewMockgameAPI(t)
		view, _ := newTestView(t, api, ViewDeps{})

		view.handle(ctx, pullResult{state: waitingState("alice", "bob")})
		view.handle(ctx, pullResult{state: runningState()})

		view.handle(ctx, nextMessage(t, view))

		assertNoMessage(t, view, 20*time.Millisecond)
	})

	t.Run("Guest and free play never auto start", func(t *testing.T) {
		view, _ := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{})
		view.cfg.IsHost = false
		view.handle(ctx, pullResult{state: waitingState("alice", "bob")})

		freePlay, _ := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{})
		state := waitingState("alice", "bob")
		state.IsFreePlay = true
		freePlay.handle(ctx, pullResult{state: state})

		assertNoMessage(t, view, 30*time.Millisecond)
		assertNoMessage(t, freePlay, 30*time.Millisecond)
	})

	t.Run("Start failure is shown", func(t *testing.T) {
		view, _ := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{})

		view.handle(ctx, startResult{err: errServerDown})

		assert.Equal(t, "Failed to start game", view.notice)
	})
}

func TestGameView_History(t *testing.T) {
	ctx := context.Background()

	t.Run("Finished game is recorded once", func(t *testing.T) {
		// Given: a history store
		history := mockedUseCase.NewMockmatchHistory(t)
		view, _ := newTestView(t, mockedUseCase.NewMockgameAPI(t), ViewDeps{History: history})

		saved := make(chan *entity.Match, 2)
		history.EXPECT().
			Save(mock.Anything, mock.AnythingOfType("*entity.Match")).
			Run(func(_ context.Context, match *entity.Match) { saved <- match }).
			Return(true, nil).
			Once()

		over := runningState()
		over.GameOver = true
		over.Winner = entity.OwnerOne

		// When: two game over snapshots arrive
		view.handle(ctx, pullResult{state: runningState()})
		view.handle(ctx, pullResult{state: over})
		view.handle(ctx, pullResult{state: over})

		// Then: one match is saved, won by alice
		select {
		case match := <-saved:
			assert.Equal(t, "g1", match.GameID)
			assert.True(t, match.Won())
		case <-time.After(time.Second):
			require.FailNow(t, "match was not recorded")
		}
	})
}

func TestGameView_Run(t *testing.T) {
	t.Run("Runs until quit and journals every update", func(t *testing.T) {
		// Given: a server with a running game, a journal and an unreachable cache
		api := mockedUseCase.NewMockgameAPI(t)
		cache := mockedUseCase.NewMocksnapshotCache(t)
		display := newFakeDisplay()

		writer, err := journal.Open(t.TempDir(), "g1")
		require.NoError(t, err)

		cache.EXPECT().GetByID(mock.Anything, "g1").Return((*entity.GameState)(nil), errServerDown).Once()
		cache.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Maybe()
		api.EXPECT().GetState(mock.Anything, "g1").Return(runningState(), nil).Once()

		view := NewGameView(discardLogger(), testViewConfig(), ViewDeps{
			API:     api,
			Display: display,
			Cache:   cache,
			Journal: writer,
		})

		done := make(chan error, 1)
		go func() { done <- view.Run(context.Background()) }()

		// When: a frame has been shown and the player quits
		select {
		case <-display.shown:
		case <-time.After(2 * time.Second):
			require.FailNow(t, "no frame presented")
		}

		require.Eventually(t, func() bool {
			lines := display.lines()
			return len(lines) == 2 && lines[0] != "Game g1 | loading..."
		}, 2*time.Second, 5*time.Millisecond)

		view.Input(terminal.CommandQuit)

		// Then: Run returns, the journal holds the load and late posts do not block
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			require.FailNow(t, "view did not stop")
		}

		updates, err := journal.Read(writer.Path())
		require.NoError(t, err)
		require.Len(t, updates, 1)
		assert.Equal(t, reconciler.SourcePull, updates[0].Source)
		assert.Equal(t, "load", updates[0].Event)

		posted := make(chan struct{})
		go func() {
			view.Input(terminal.CommandSubmit)
			close(posted)
		}()

		select {
		case <-posted:
		case <-time.After(time.Second):
			require.FailNow(t, "post blocked after teardown")
		}
	})

	t.Run("Results after teardown are dropped", func(t *testing.T) {
		// Given: a staged move and a view that is already torn down with a full queue
		api := mockedUseCase.NewMockgameAPI(t)
		writer := &countingJournal{}
		view, _ := newTestView(t, api, ViewDeps{Journal: writer})
		state := runningState()
		cell := entity.Cell{Line: 4, Height: 4}

		view.handle(context.Background(), pullResult{state: state})
		view.handle(context.Background(), inputEvent{input: pointAt(t, view, cell)})
		require.Equal(t, staging.PhaseStaged, view.staging.Phase())

		view.teardown()
		assert.True(t, writer.closed)

		for range queueSize {
			view.messages <- frameTick{}
		}

		answer := runningState()
		answer.CurrentPlayer = "bob"

		// When: a move answer and a pull arrive late
		posted := make(chan struct{})
		go func() {
			view.post(submitResult{move: entity.NewMove(cell, entity.OrientationVertical), state: answer})
			view.post(pullResult{state: answer})
			close(posted)
		}()

		// Then: neither blocks nor reaches the state
		select {
		case <-posted:
		case <-time.After(time.Second):
			require.FailNow(t, "post blocked after teardown")
		}

		assert.Same(t, state, view.store.Current())
		assert.Equal(t, staging.PhaseStaged, view.staging.Phase())
		assert.Len(t, writer.updates, 1)

		for range queueSize {
			assert.IsType(t, frameTick{}, <-view.messages)
		}

		assert.Empty(t, view.messages)
	})

	t.Run("Context cancel stops the view", func(t *testing.T) {
		api := mockedUseCase.NewMockgameAPI(t)
		api.EXPECT().GetState(mock.Anything, "g1").Return(runningState(), nil).Maybe()

		view := NewGameView(discardLogger(), testViewConfig(), ViewDeps{API: api, Display: newFakeDisplay()})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- view.Run(ctx) }()

		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			require.FailNow(t, "view did not stop")
		}

		assert.False(t, view.loop.Tick())
	})
}
