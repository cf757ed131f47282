package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/rocketscienceinc/connect5-client/internal/entity"
)

// Segment is a backdrop reference line.
type Segment struct {
	From mgl64.Vec3
	To   mgl64.Vec3
}

// Scene is the persistent set of things drawn every frame: a static backdrop,
// the blocks of the current snapshot and at most one preview.
type Scene struct {
	backdrop []Segment
	blocks   []Block
	preview  *Preview
}

func New() *Scene {
	return &Scene{backdrop: buildBackdrop()}
}

// buildBackdrop lays out the grid on the board plane, where pointer hits are rounded to cells,
// and the floor line in front of it.
func buildBackdrop() []Segment {
	grid := BoardDepth
	front := BoardDepth + 0.5
	size := float64(entity.BoardSize)

	segments := make([]Segment, 0, 2*(entity.BoardSize+1)+1)

	for i := 0; i <= entity.BoardSize; i++ {
		step := float64(i)

		segments = append(segments,
			Segment{From: mgl64.Vec3{step, 0, grid}, To: mgl64.Vec3{step, size, grid}},
			Segment{From: mgl64.Vec3{0, step, grid}, To: mgl64.Vec3{size, step, grid}},
		)
	}

	return append(segments, Segment{From: mgl64.Vec3{0, 0, front}, To: mgl64.Vec3{size, 0, front}})
}

func (that *Scene) Backdrop() []Segment {
	return that.backdrop
}

// SetBlocks replaces every block. The preview is kept.
func (that *Scene) SetBlocks(blocks []Block) {
	that.blocks = blocks
}

func (that *Scene) Blocks() []Block {
	return that.blocks
}

// SetPreview replaces the preview, so at most one is ever shown.
func (that *Scene) SetPreview(preview Preview) {
	that.preview = &preview
}

func (that *Scene) ClearPreview() {
	that.preview = nil
}

func (that *Scene) Preview() (Preview, bool) {
	if that.preview == nil {
		return Preview{}, false
	}

	return *that.preview, true
}
