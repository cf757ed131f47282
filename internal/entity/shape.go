package entity

// Shape is a placed brick reconstructed from the occupancy and orientation grids.
// The anchor is the lower cell of a vertical brick and the left cell of a horizontal one.
type Shape struct {
	Owner       Owner       `json:"owner"`
	Anchor      Cell        `json:"anchor"`
	Orientation Orientation `json:"orientation"`
}

// Cells returns the two cells covered by the shape.
func (that Shape) Cells() [2]Cell {
	return spannedCells(that.Anchor, that.Orientation)
}

func spannedCells(anchor Cell, orientation Orientation) [2]Cell {
	partner := anchor

	switch orientation {
	case OrientationHorizontal:
		partner.Line++
	default:
		partner.Height++
	}

	return [2]Cell{anchor, partner}
}
