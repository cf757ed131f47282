package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/rocketscienceinc/connect5-client/internal/entity"
)

// BoardDepth is the z coordinate of the board plane.
// Cell (l,h) is the unit cube [l,l+1]x[h,h+1]x[BoardDepth-0.5,BoardDepth+0.5].
const BoardDepth = 4.5

// Block is the render descriptor of a placed brick.
type Block struct {
	Shape       entity.Shape
	Center      mgl64.Vec3
	Size        mgl64.Vec3
	Highlighted bool
}

func NewBlock(shape entity.Shape, highlighted bool) Block {
	center, size := boxOf(shape.Anchor, shape.Orientation)

	return Block{
		Shape:       shape,
		Center:      center,
		Size:        size,
		Highlighted: highlighted,
	}
}

// BuildBlocks turns shapes into blocks. Shapes owned by local are highlighted.
func BuildBlocks(shapes []entity.Shape, local entity.Owner) []Block {
	blocks := make([]Block, 0, len(shapes))

	for _, shape := range shapes {
		blocks = append(blocks, NewBlock(shape, local != entity.OwnerNone && shape.Owner == local))
	}

	return blocks
}

// Bounds returns the min and max corners of the block's axis aligned box.
func (that Block) Bounds() (mgl64.Vec3, mgl64.Vec3) {
	half := that.Size.Mul(0.5)

	return that.Center.Sub(half), that.Center.Add(half)
}

// Preview is the translucent block shown for a staged move.
type Preview struct {
	Move entity.Move
	// Legal is true when the move is among the snapshot's valid moves.
	Legal bool
}

func (that Preview) Bounds() (mgl64.Vec3, mgl64.Vec3) {
	center, size := boxOf(that.Move.Anchor(), that.Move.Orientation)
	half := size.Mul(0.5)

	return center.Sub(half), center.Add(half)
}

func boxOf(anchor entity.Cell, orientation entity.Orientation) (mgl64.Vec3, mgl64.Vec3) {
	line, height := float64(anchor.Line), float64(anchor.Height)

	if orientation == entity.OrientationHorizontal {
		return mgl64.Vec3{line + 1, height + 0.5, BoardDepth}, mgl64.Vec3{2, 1, 1}
	}

	return mgl64.Vec3{line + 0.5, height + 1, BoardDepth}, mgl64.Vec3{1, 2, 1}
}
