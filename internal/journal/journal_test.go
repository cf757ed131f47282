package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connect5-client/internal/entity"
	"github.com/rocketscienceinc/connect5-client/internal/reconciler"
)

func TestWriter(t *testing.T) {
	t.Run("Updates round trip through zstd", func(t *testing.T) {
		// Given: a journal for game g1
		dir := t.TempDir()
		writer, err := Open(dir, "g1")
		require.NoError(t, err)

		state := &entity.GameState{ID: "g1", CurrentPlayer: "bob", Players: map[string]entity.Owner{"alice": entity.OwnerOne}}
		state.Board[3][4], state.Board[3][5] = entity.OwnerOne, entity.OwnerOne
		state.Orientations[3][4], state.Orientations[3][5] = entity.OrientationVertical, entity.OrientationVertical

		at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

		// When: two updates are appended and the journal is closed
		require.NoError(t, writer.Append(reconciler.Update{Seq: 1, Source: reconciler.SourcePull, Event: "poll", ReceivedAt: at, State: state}))
		require.NoError(t, writer.Append(reconciler.Update{Seq: 2, Source: reconciler.SourceLocal, Event: "move", ReceivedAt: at, State: state}))
		require.NoError(t, writer.Flush())
		require.NoError(t, writer.Close())

		// Then: both are read back in order
		updates, err := Read(PathFor(dir, "g1"))
		require.NoError(t, err)
		require.Len(t, updates, 2)

		assert.Equal(t, uint64(1), updates[0].Seq)
		assert.Equal(t, reconciler.SourceLocal, updates[1].Source)
		assert.Equal(t, state.Board, updates[1].State.Board)
		assert.Equal(t, state.Orientations, updates[1].State.Orientations)
		assert.True(t, at.Equal(updates[0].ReceivedAt))
	})

	t.Run("Reopening appends a new frame", func(t *testing.T) {
		dir := t.TempDir()

		for seq := uint64(1); seq <= 2; seq++ {
			writer, err := Open(dir, "g2")
			require.NoError(t, err)
			require.NoError(t, writer.Append(reconciler.Update{Seq: seq, State: &entity.GameState{ID: "g2"}}))
			require.NoError(t, writer.Close())
		}

		updates, err := Read(PathFor(dir, "g2"))
		require.NoError(t, err)
		require.Len(t, updates, 2)
		assert.Equal(t, uint64(2), updates[1].Seq)
	})

	t.Run("Append after close", func(t *testing.T) {
		writer, err := Open(t.TempDir(), "g3")
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		require.Error(t, writer.Append(reconciler.Update{}))
		require.NoError(t, writer.Close())
	})
}
