package reconciler

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connect5-client/internal/entity"
)

func newStore() *Store {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStore_Update(t *testing.T) {
	t.Run("Last write wins regardless of source", func(t *testing.T) {
		// Given: three snapshots, the last one older in content than the second
		store := newStore()
		s1 := &entity.GameState{ID: "g", CurrentPlayer: "alice"}
		s2 := &entity.GameState{ID: "g", CurrentPlayer: "bob"}
		s2.Board[0][0], s2.Board[0][1] = entity.OwnerOne, entity.OwnerOne

		// When: pull S1, push S2, then pull S1 again
		store.Update(SourcePull, "poll", s1)
		store.Update(SourcePush, "board_updated", s2)
		store.Update(SourcePull, "poll", s1)

		// Then: the state is S1 with no merging
		assert.Same(t, s1, store.Current())
		assert.Equal(t, uint64(3), store.Seq())
	})

	t.Run("Nil snapshots are ignored", func(t *testing.T) {
		store := newStore()
		state := &entity.GameState{ID: "g"}
		store.Update(SourceLocal, "move", state)

		accepted := store.Update(SourcePush, "board_updated", nil)

		assert.False(t, accepted)
		assert.Same(t, state, store.Current())
		assert.Equal(t, uint64(1), store.Seq())
	})

	t.Run("Listeners run in order with prev and next", func(t *testing.T) {
		// Given: two listeners
		store := newStore()

		var calls []string
		var seen []Update

		store.Subscribe(func(prev, next *entity.GameState, update Update) {
			calls = append(calls, "first")
			seen = append(seen, update)

			if update.Seq == 1 {
				assert.Nil(t, prev)
			} else {
				require.NotNil(t, prev)
				assert.Equal(t, "a", prev.ID)
			}
		})
		store.Subscribe(func(_, next *entity.GameState, _ Update) {
			calls = append(calls, "second:"+next.ID)
		})

		// When: two snapshots arrive
		store.Update(SourceCache, "restore", &entity.GameState{ID: "a"})
		store.Update(SourceLocal, "move", &entity.GameState{ID: "b"})

		// Then: both listeners saw both updates in order
		assert.Equal(t, []string{"first", "second:a", "first", "second:b"}, calls)
		require.Len(t, seen, 2)
		assert.Equal(t, SourceCache, seen[0].Source)
		assert.Equal(t, "move", seen[1].Event)
	})

	t.Run("Regressions are accepted", func(t *testing.T) {
		// Given: a started game
		store := newStore()
		store.Update(SourcePush, "game_started", &entity.GameState{Started: true})

		// When: a stale poll says it has not started
		store.Update(SourcePull, "poll", &entity.GameState{Started: false})

		// Then: the stale snapshot is shown
		assert.False(t, store.Current().Started)
	})
}
