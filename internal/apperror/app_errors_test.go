package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	t.Run("Each guard has its own text", func(t *testing.T) {
		assert.Equal(t, "Game is over", Message(ErrGameOver))
		assert.Equal(t, "Not your turn", Message(ErrNotYourTurn))
		assert.Equal(t, "No move selected", Message(ErrNoSelection))
		assert.Equal(t, "Game has not started", Message(ErrGameNotStarted))
	})

	t.Run("Wrapped errors are recognised", func(t *testing.T) {
		// Given: a server rejection wrapped twice
		err := fmt.Errorf("failed to submit move: %w", fmt.Errorf("%w: Not your turn", ErrInvalidMove))

		// Then: the player sees the rejection text
		assert.Equal(t, "Invalid move", Message(err))
	})

	t.Run("Transport failures wrapped into a load failure", func(t *testing.T) {
		err := fmt.Errorf("%w: %w", ErrLoadFailed, errors.New("connection refused"))

		assert.Equal(t, "Failed to load game state", Message(err))
	})

	t.Run("Nil yields an empty message", func(t *testing.T) {
		assert.Empty(t, Message(nil))
	})

	t.Run("Unknown errors yield a generic text", func(t *testing.T) {
		assert.Equal(t, "Something went wrong", Message(errors.New("boom")))
	})
}
