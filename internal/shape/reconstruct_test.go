package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connect5-client/internal/entity"
)

type grids struct {
	board        entity.Board
	orientations entity.Orientations
}

func (that *grids) place(owner entity.Owner, move entity.Move) {
	for _, cell := range move.Cells() {
		that.board[cell.Line][cell.Height] = owner
		that.orientations[cell.Line][cell.Height] = move.Orientation
	}
}

func TestReconstruct(t *testing.T) {
	t.Run("Vertical brick is anchored at its lower cell", func(t *testing.T) {
		// Given: player one occupies (3,4) and (3,5) vertically
		g := &grids{}
		g.place(entity.OwnerOne, entity.Move{Line: 3, Height: 4, Orientation: entity.OrientationVertical})

		// When: reconstructing
		result := Reconstruct(&g.board, &g.orientations)

		// Then: exactly one shape anchored at (3,4)
		expected := []entity.Shape{{
			Owner:       entity.OwnerOne,
			Anchor:      entity.Cell{Line: 3, Height: 4},
			Orientation: entity.OrientationVertical,
		}}

		require.Equal(t, expected, result.Shapes)
		assert.Empty(t, result.Malformed)
	})

	t.Run("Horizontal brick is anchored at its left cell", func(t *testing.T) {
		// Given: player two occupies (2,0) and (3,0) horizontally
		g := &grids{}
		g.place(entity.OwnerTwo, entity.Move{Line: 2, Height: 0, Orientation: entity.OrientationHorizontal})

		// When: reconstructing
		result := Reconstruct(&g.board, &g.orientations)

		// Then: exactly one shape anchored at (2,0)
		expected := []entity.Shape{{
			Owner:       entity.OwnerTwo,
			Anchor:      entity.Cell{Line: 2, Height: 0},
			Orientation: entity.OrientationHorizontal,
		}}

		require.Equal(t, expected, result.Shapes)
		assert.Empty(t, result.Malformed)
	})

	t.Run("Empty board yields no shapes", func(t *testing.T) {
		g := &grids{}

		result := Reconstruct(&g.board, &g.orientations)

		assert.Empty(t, result.Shapes)
		assert.Empty(t, result.Malformed)
	})

	t.Run("Same owner stacked bricks are both found", func(t *testing.T) {
		// Given: two vertical bricks of player one on top of each other, and a vertical brick on a horizontal one
		g := &grids{}
		g.place(entity.OwnerOne, entity.Move{Line: 0, Height: 0, Orientation: entity.OrientationVertical})
		g.place(entity.OwnerOne, entity.Move{Line: 0, Height: 2, Orientation: entity.OrientationVertical})
		g.place(entity.OwnerTwo, entity.Move{Line: 4, Height: 0, Orientation: entity.OrientationHorizontal})
		g.place(entity.OwnerTwo, entity.Move{Line: 4, Height: 1, Orientation: entity.OrientationVertical})

		// When: reconstructing
		result := Reconstruct(&g.board, &g.orientations)

		// Then: every brick is emitted once
		require.Len(t, result.Shapes, 4)
		assert.Contains(t, result.Shapes, entity.Shape{
			Owner: entity.OwnerOne, Anchor: entity.Cell{Line: 0, Height: 2}, Orientation: entity.OrientationVertical,
		})
		assert.Contains(t, result.Shapes, entity.Shape{
			Owner: entity.OwnerTwo, Anchor: entity.Cell{Line: 4, Height: 1}, Orientation: entity.OrientationVertical,
		})
		assert.Empty(t, result.Malformed)
	})

	t.Run("Every occupied cell is covered exactly once", func(t *testing.T) {
		// Given: a crowded board of alternating players
		g := &grids{}
		moves := []entity.Move{
			{Line: 0, Height: 0, Orientation: entity.OrientationHorizontal},
			{Line: 2, Height: 0, Orientation: entity.OrientationVertical},
			{Line: 3, Height: 0, Orientation: entity.OrientationHorizontal},
			{Line: 0, Height: 1, Orientation: entity.OrientationVertical},
			{Line: 1, Height: 1, Orientation: entity.OrientationVertical},
			{Line: 7, Height: 0, Orientation: entity.OrientationHorizontal},
			{Line: 8, Height: 1, Orientation: entity.OrientationVertical},
			{Line: 3, Height: 1, Orientation: entity.OrientationVertical},
		}

		for i, move := range moves {
			owner := entity.OwnerOne
			if i%2 == 1 {
				owner = entity.OwnerTwo
			}

			g.place(owner, move)
		}

		// When: reconstructing
		result := Reconstruct(&g.board, &g.orientations)

		// Then: one shape per move, no cell covered twice, owners preserved
		require.Len(t, result.Shapes, len(moves))
		assert.Empty(t, result.Malformed)

		covered := result.Covered()
		for line := 0; line < entity.BoardSize; line++ {
			for height := 0; height < entity.BoardSize; height++ {
				cell := entity.Cell{Line: line, Height: height}

				if g.board[line][height] == entity.OwnerNone {
					assert.Zero(t, covered[cell], cell.String())
				} else {
					assert.Equal(t, 1, covered[cell], cell.String())
				}
			}
		}

		for _, shape := range result.Shapes {
			for _, cell := range shape.Cells() {
				assert.Equal(t, shape.Owner, g.board[cell.Line][cell.Height])
			}
		}
	})

	t.Run("Reconstructing twice yields the same result", func(t *testing.T) {
		g := &grids{}
		g.place(entity.OwnerOne, entity.Move{Line: 5, Height: 0, Orientation: entity.OrientationVertical})
		g.place(entity.OwnerTwo, entity.Move{Line: 6, Height: 0, Orientation: entity.OrientationHorizontal})

		first := Reconstruct(&g.board, &g.orientations)
		second := Reconstruct(&g.board, &g.orientations)

		assert.Equal(t, first, second)
	})

	t.Run("Occupied cell without orientation is reported", func(t *testing.T) {
		// Given: an occupied cell whose orientation is missing
		g := &grids{}
		g.board[1][0] = entity.OwnerOne

		// When: reconstructing
		result := Reconstruct(&g.board, &g.orientations)

		// Then: no shape is emitted and the cell is reported
		assert.Empty(t, result.Shapes)
		assert.Equal(t, []entity.Cell{{Line: 1, Height: 0}}, result.Malformed)
	})

	t.Run("Brick whose partner is off the board is reported", func(t *testing.T) {
		// Given: a horizontal half on the last line
		g := &grids{}
		g.board[8][0] = entity.OwnerTwo
		g.orientations[8][0] = entity.OrientationHorizontal

		// When: reconstructing
		result := Reconstruct(&g.board, &g.orientations)

		// Then: the lone half is reported
		assert.Empty(t, result.Shapes)
		assert.Equal(t, []entity.Cell{{Line: 8, Height: 0}}, result.Malformed)
	})
}
