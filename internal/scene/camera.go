package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/rocketscienceinc/connect5-client/internal/config"
)

const (
	nearPlane = 0.1
	farPlane  = 1000
)

// Viewport is the pixel size of the rendered frame.
type Viewport struct {
	Width  int
	Height int
}

func (that Viewport) IsEmpty() bool {
	return that.Width <= 0 || that.Height <= 0
}

func (that Viewport) Aspect() float64 {
	if that.IsEmpty() {
		return 1
	}

	return float64(that.Width) / float64(that.Height)
}

// Ray is a half line starting at Origin. Direction is normalized.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at distance t along the ray.
func (that Ray) At(t float64) mgl64.Vec3 {
	return that.Origin.Add(that.Direction.Mul(t))
}

// Camera is a perspective camera looking at the board.
type Camera struct {
	FieldOfView float64
	Position    mgl64.Vec3
	Target      mgl64.Vec3
	Up          mgl64.Vec3

	viewport Viewport
}

func NewCamera(cfg config.Camera, viewport Viewport) *Camera {
	return &Camera{
		FieldOfView: cfg.FieldOfView,
		Position:    mgl64.Vec3{cfg.Position[0], cfg.Position[1], cfg.Position[2]},
		Target:      mgl64.Vec3{cfg.Target[0], cfg.Target[1], cfg.Target[2]},
		Up:          mgl64.Vec3{0, 1, 0},
		viewport:    viewport,
	}
}

// Resize updates the aspect ratio to the new viewport.
func (that *Camera) Resize(viewport Viewport) {
	that.viewport = viewport
}

func (that *Camera) Viewport() Viewport {
	return that.viewport
}

func (that *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(that.Position, that.Target, that.Up)
}

func (that *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(that.FieldOfView), that.viewport.Aspect(), nearPlane, farPlane)
}

func (that *Camera) ViewProjection() mgl64.Mat4 {
	return that.Projection().Mul4(that.View())
}

// Project maps a world point to pixel coordinates with the origin at the top left corner.
// ok is false for points behind the camera.
func (that *Camera) Project(point mgl64.Vec3) (x, y float64, ok bool) {
	clip := that.ViewProjection().Mul4x1(point.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}

	ndc := clip.Vec3().Mul(1 / clip.W())

	x = (ndc.X() + 1) / 2 * float64(that.viewport.Width)
	y = (1 - ndc.Y()) / 2 * float64(that.viewport.Height)

	return x, y, true
}

// RayAt returns the ray from the camera through the pixel (x, y).
func (that *Camera) RayAt(x, y float64) Ray {
	nx := 2*x/float64(that.viewport.Width) - 1
	ny := 1 - 2*y/float64(that.viewport.Height)

	inverse := that.ViewProjection().Inv()

	near := mgl64.TransformCoordinate(mgl64.Vec3{nx, ny, -1}, inverse)
	far := mgl64.TransformCoordinate(mgl64.Vec3{nx, ny, 1}, inverse)

	return Ray{
		Origin:    that.Position,
		Direction: far.Sub(near).Normalize(),
	}
}
