// Package reconciler merges snapshots from every source into the one state the view shows.
//
// The last snapshot written wins, whatever its source. Snapshots carry no version, so the
// store never compares them; it numbers updates only to make the journal readable.
package reconciler

import (
	"log/slog"
	"time"

	"github.com/rocketscienceinc/connect5-client/internal/entity"
)

type Source string

const (
	SourcePull  Source = "pull"
	SourcePush  Source = "push"
	SourceLocal Source = "local"
	SourceCache Source = "cache"
)

// Update describes one accepted snapshot.
type Update struct {
	Seq        uint64            `json:"seq"`
	Source     Source            `json:"source"`
	Event      string            `json:"event"`
	ReceivedAt time.Time         `json:"received_at"`
	State      *entity.GameState `json:"state"`
}

// Listener is called after every accepted update. prev is nil for the first one.
type Listener func(prev, next *entity.GameState, update Update)

// Store holds the current snapshot. It is not safe for concurrent use: only the view loop touches it.
type Store struct {
	logger    *slog.Logger
	current   *entity.GameState
	seq       uint64
	listeners []Listener
	now       func() time.Time
}

func New(logger *slog.Logger) *Store {
	return &Store{
		logger: logger.With("component", "reconciler"),
		now:    time.Now,
	}
}

// Subscribe registers a listener. Listeners run in registration order.
func (that *Store) Subscribe(listener Listener) {
	that.listeners = append(that.listeners, listener)
}

// Update replaces the current snapshot with state and notifies listeners. Nil snapshots are ignored.
func (that *Store) Update(source Source, event string, state *entity.GameState) bool {
	log := that.logger.With("method", "Update", "source", source, "event", event)

	if state == nil {
		log.Debug("ignoring empty snapshot")
		return false
	}

	that.seq++

	prev := that.current
	that.current = state

	update := Update{
		Seq:        that.seq,
		Source:     source,
		Event:      event,
		ReceivedAt: that.now(),
		State:      state,
	}

	log.Debug("snapshot accepted", "seq", update.Seq, "started", state.Started, "occupied", state.OccupiedCount())

	for _, listener := range that.listeners {
		listener(prev, state, update)
	}

	return true
}

// Current returns the latest snapshot, or nil before the first update.
func (that *Store) Current() *entity.GameState {
	return that.current
}

func (that *Store) Seq() uint64 {
	return that.seq
}
