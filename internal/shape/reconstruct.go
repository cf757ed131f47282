// Package shape rebuilds placed bricks from the per-cell occupancy and orientation grids.
//
// The server only reports which player occupies each cell and the orientation of the brick
// covering it; it never says which two cells belong together. Reconstruct recovers the pairs.
package shape

import (
	"github.com/rocketscienceinc/connect5-client/internal/entity"
)

// Result holds the reconstructed shapes and any occupied cells that could not be paired.
type Result struct {
	Shapes    []entity.Shape
	Malformed []entity.Cell
}

// Covered returns how many times every cell is covered by the reconstructed shapes.
func (that Result) Covered() map[entity.Cell]int {
	covered := make(map[entity.Cell]int, len(that.Shapes)*2)

	for _, shape := range that.Shapes {
		for _, cell := range shape.Cells() {
			covered[cell]++
		}
	}

	return covered
}

// Reconstruct scans the board line by line, bottom to top, and emits one shape per brick.
// It never mutates its inputs, so running it twice on the same grids yields the same result.
func Reconstruct(board *entity.Board, orientations *entity.Orientations) Result {
	var (
		result  Result
		visited [entity.BoardSize][entity.BoardSize]bool
	)

	for line := 0; line < entity.BoardSize; line++ {
		for height := 0; height < entity.BoardSize; height++ {
			owner := board[line][height]
			if owner == entity.OwnerNone || visited[line][height] {
				continue
			}

			anchor := entity.Cell{Line: line, Height: height}
			orientation := orientations[line][height]

			if !orientation.IsValid() {
				visited[line][height] = true
				result.Malformed = append(result.Malformed, anchor)

				continue
			}

			if !isAnchor(board, &visited, anchor, orientation) {
				continue
			}

			shape := entity.Shape{Owner: owner, Anchor: anchor, Orientation: orientation}
			partner := shape.Cells()[1]

			if !pairs(board, orientations, &visited, partner, owner, orientation) {
				visited[line][height] = true
				result.Malformed = append(result.Malformed, anchor)

				continue
			}

			visited[line][height] = true
			visited[partner.Line][partner.Height] = true
			result.Shapes = append(result.Shapes, shape)
		}
	}

	// skipped halves whose anchor never claimed them
	for line := 0; line < entity.BoardSize; line++ {
		for height := 0; height < entity.BoardSize; height++ {
			if board[line][height] != entity.OwnerNone && !visited[line][height] {
				result.Malformed = append(result.Malformed, entity.Cell{Line: line, Height: height})
			}
		}
	}

	return result
}

// isAnchor reports whether the cell starts a brick rather than being the second half of a
// brick anchored below (vertical) or to the left (horizontal). A same-owner neighbour only
// disqualifies the cell while that neighbour is still uncovered.
func isAnchor(board *entity.Board, visited *[entity.BoardSize][entity.BoardSize]bool, cell entity.Cell, orientation entity.Orientation) bool {
	owner := board[cell.Line][cell.Height]

	previous := cell
	if orientation == entity.OrientationVertical {
		previous.Height--
	} else {
		previous.Line--
	}

	if !previous.InBounds() {
		return true
	}

	return board[previous.Line][previous.Height] != owner || visited[previous.Line][previous.Height]
}

func pairs(
	board *entity.Board,
	orientations *entity.Orientations,
	visited *[entity.BoardSize][entity.BoardSize]bool,
	partner entity.Cell,
	owner entity.Owner,
	orientation entity.Orientation,
) bool {
	if !partner.InBounds() || visited[partner.Line][partner.Height] {
		return false
	}

	return board[partner.Line][partner.Height] == owner && orientations[partner.Line][partner.Height] == orientation
}
