// Package picking maps a pointer position on the rendered frame back to a board cell.
package picking

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/rocketscienceinc/connect5-client/internal/entity"
	"github.com/rocketscienceinc/connect5-client/internal/scene"
)

type Kind int

const (
	// KindNone means the pointer hit nothing selectable.
	KindNone Kind = iota
	// KindShape means the pointer hit a placed brick; Cell is its anchor.
	KindShape
	// KindCell means the pointer hit an empty in-bounds cell.
	KindCell
)

func (that Kind) String() string {
	switch that {
	case KindShape:
		return "shape"
	case KindCell:
		return "cell"
	default:
		return "none"
	}
}

type Pick struct {
	Kind Kind
	Cell entity.Cell
}

// NoPick is returned when nothing was hit.
var NoPick = Pick{Kind: KindNone}

type Mapper struct {
	logger *slog.Logger
}

func NewMapper(logger *slog.Logger) *Mapper {
	return &Mapper{logger: logger.With("component", "picking")}
}

// Resolve casts a ray through the pixel (x, y). Blocks are tested first and the nearest hit
// wins; otherwise the ray is intersected with the board plane.
func (that *Mapper) Resolve(x, y float64, camera *scene.Camera, blocks []scene.Block, state *entity.GameState) Pick {
	if camera == nil || state == nil || camera.Viewport().IsEmpty() {
		return NoPick
	}

	ray := camera.RayAt(x, y)

	if pick, ok := pickBlock(ray, blocks); ok {
		return pick
	}

	cell, ok := pickPlane(ray)
	if !ok {
		return NoPick
	}

	if !cell.InBounds() || state.IsOccupied(cell) {
		that.logger.Debug("no pick", "cell", cell.String(), "x", x, "y", y)
		return NoPick
	}

	return Pick{Kind: KindCell, Cell: cell}
}

func pickBlock(ray scene.Ray, blocks []scene.Block) (Pick, bool) {
	nearest := math.Inf(1)
	found := false

	var pick Pick

	for _, block := range blocks {
		low, high := block.Bounds()

		distance, hit := intersectBox(ray, low, high)
		if hit && distance < nearest {
			nearest = distance
			found = true
			pick = Pick{Kind: KindShape, Cell: block.Shape.Anchor}
		}
	}

	return pick, found
}

// intersectBox is the slab test. It returns the distance to the first intersection in front of the origin.
func intersectBox(ray scene.Ray, low, high mgl64.Vec3) (float64, bool) {
	tMin, tMax := math.Inf(-1), math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin, direction := ray.Origin[axis], ray.Direction[axis]

		if direction == 0 {
			if origin < low[axis] || origin > high[axis] {
				return 0, false
			}

			continue
		}

		t1 := (low[axis] - origin) / direction
		t2 := (high[axis] - origin) / direction

		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)

		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}

	if tMin < 0 {
		return tMax, true
	}

	return tMin, true
}

// pickPlane intersects the ray with z = BoardDepth and rounds the hit to a cell.
func pickPlane(ray scene.Ray) (entity.Cell, bool) {
	if ray.Direction.Z() == 0 {
		return entity.Cell{}, false
	}

	t := (scene.BoardDepth - ray.Origin.Z()) / ray.Direction.Z()
	if t < 0 {
		return entity.Cell{}, false
	}

	point := ray.At(t)

	return entity.Cell{
		Line:   roundHalfUp(point.X() - 0.5),
		Height: roundHalfUp(point.Y() - 0.5),
	}, true
}

// roundHalfUp rounds halves towards positive infinity, so -0.5 becomes 0.
func roundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}
