package scene

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/fogleman/gg"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/rocketscienceinc/connect5-client/internal/entity"
)

type rgb struct {
	R, G, B float64
}

func hexRGB(value uint32) rgb {
	return rgb{
		R: float64(value>>16&0xff) / 255,
		G: float64(value>>8&0xff) / 255,
		B: float64(value&0xff) / 255,
	}
}

func (that rgb) scale(factor float64) rgb {
	return rgb{R: that.R * factor, G: that.G * factor, B: that.B * factor}
}

func (that rgb) add(amount float64) rgb {
	return rgb{R: math.Min(that.R+amount, 1), G: math.Min(that.G+amount, 1), B: math.Min(that.B+amount, 1)}
}

var (
	colorBackground = hexRGB(0x1a1a2e)
	colorGrid       = hexRGB(0x444444)
	colorEdge       = hexRGB(0x000000)
	colorPreview    = hexRGB(0xffffff)
	colorLegal      = hexRGB(0xffff00)
	colorUnverified = hexRGB(0xff9f1c)

	ownerColors = map[entity.Owner]rgb{
		entity.OwnerOne: hexRGB(0xff6b6b),
		entity.OwnerTwo: hexRGB(0x4ecdc4),
	}

	lightDirection = mgl64.Vec3{0.3, 0.6, 0.75}.Normalize()
)

const (
	ambient        = 0.4
	highlightBoost = 0.2
	previewAlpha   = 0.4
	outlineAlpha   = 0.7
)

type face struct {
	corners [4]mgl64.Vec3
	normal  mgl64.Vec3
	center  mgl64.Vec3
}

type paint struct {
	face    face
	fill    rgb
	alpha   float64
	outline rgb
	width   float64
	depth   float64
}

// Renderer rasterizes the scene into an image with flat shaded, depth sorted faces.
type Renderer struct {
	context *gg.Context
}

func NewRenderer(viewport Viewport) *Renderer {
	renderer := &Renderer{}
	renderer.Resize(viewport)

	return renderer
}

// Resize replaces the output surface with one of the new size.
func (that *Renderer) Resize(viewport Viewport) {
	viewport.Width = max(viewport.Width, 1)
	viewport.Height = max(viewport.Height, 1)

	that.context = gg.NewContext(viewport.Width, viewport.Height)
}

// Render draws one frame and returns it. The image is reused by the next call.
func (that *Renderer) Render(scene *Scene, camera *Camera) image.Image {
	dc := that.context

	dc.SetRGB(colorBackground.R, colorBackground.G, colorBackground.B)
	dc.Clear()

	dc.SetLineWidth(1)
	dc.SetRGBA(colorGrid.R, colorGrid.G, colorGrid.B, 1)

	for _, segment := range scene.Backdrop() {
		x1, y1, ok1 := camera.Project(segment.From)
		x2, y2, ok2 := camera.Project(segment.To)

		if ok1 && ok2 {
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()
		}
	}

	var paints []paint

	for _, block := range scene.Blocks() {
		base, ok := ownerColors[block.Shape.Owner]
		if !ok {
			continue
		}

		if block.Highlighted {
			base = base.add(highlightBoost)
		}

		low, high := block.Bounds()
		paints = appendBox(paints, camera, low, high, func(f face) paint {
			return paint{face: f, fill: shade(base, f.normal), alpha: 1, outline: colorEdge, width: 1}
		})
	}

	if preview, ok := scene.Preview(); ok {
		outline := colorUnverified
		if preview.Legal {
			outline = colorLegal
		}

		low, high := preview.Bounds()
		paints = appendBox(paints, camera, low, high, func(f face) paint {
			return paint{face: f, fill: shade(colorPreview, f.normal), alpha: previewAlpha, outline: outline, width: 2}
		})
	}

	// far to near
	sort.SliceStable(paints, func(i, j int) bool {
		return paints[i].depth > paints[j].depth
	})

	for _, p := range paints {
		that.drawFace(camera, p)
	}

	return dc.Image()
}

// SavePNG writes the last rendered frame to path.
func (that *Renderer) SavePNG(path string) error {
	if err := that.context.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save frame: %w", err)
	}

	return nil
}

func (that *Renderer) drawFace(camera *Camera, p paint) {
	dc := that.context

	for i, corner := range p.face.corners {
		x, y, ok := camera.Project(corner)
		if !ok {
			dc.ClearPath()
			return
		}

		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}

	dc.ClosePath()

	dc.SetRGBA(p.fill.R, p.fill.G, p.fill.B, p.alpha)
	dc.FillPreserve()

	alpha := 1.0
	if p.alpha < 1 {
		alpha = outlineAlpha
	}

	dc.SetLineWidth(p.width)
	dc.SetRGBA(p.outline.R, p.outline.G, p.outline.B, alpha)
	dc.Stroke()
}

// appendBox adds the faces of the box that point towards the camera.
func appendBox(paints []paint, camera *Camera, low, high mgl64.Vec3, style func(face) paint) []paint {
	for _, f := range boxFaces(low, high) {
		toCamera := camera.Position.Sub(f.center)
		if f.normal.Dot(toCamera) <= 0 {
			continue
		}

		p := style(f)
		p.depth = toCamera.Len()

		paints = append(paints, p)
	}

	return paints
}

func boxFaces(low, high mgl64.Vec3) [6]face {
	x0, y0, z0 := low.Elem()
	x1, y1, z1 := high.Elem()

	corners := func(a, b, c, d mgl64.Vec3) [4]mgl64.Vec3 { return [4]mgl64.Vec3{a, b, c, d} }

	faces := [6]face{
		{corners: corners(mgl64.Vec3{x0, y0, z1}, mgl64.Vec3{x1, y0, z1}, mgl64.Vec3{x1, y1, z1}, mgl64.Vec3{x0, y1, z1}), normal: mgl64.Vec3{0, 0, 1}},
		{corners: corners(mgl64.Vec3{x1, y0, z0}, mgl64.Vec3{x0, y0, z0}, mgl64.Vec3{x0, y1, z0}, mgl64.Vec3{x1, y1, z0}), normal: mgl64.Vec3{0, 0, -1}},
		{corners: corners(mgl64.Vec3{x1, y0, z1}, mgl64.Vec3{x1, y0, z0}, mgl64.Vec3{x1, y1, z0}, mgl64.Vec3{x1, y1, z1}), normal: mgl64.Vec3{1, 0, 0}},
		{corners: corners(mgl64.Vec3{x0, y0, z0}, mgl64.Vec3{x0, y0, z1}, mgl64.Vec3{x0, y1, z1}, mgl64.Vec3{x0, y1, z0}), normal: mgl64.Vec3{-1, 0, 0}},
		{corners: corners(mgl64.Vec3{x0, y1, z1}, mgl64.Vec3{x1, y1, z1}, mgl64.Vec3{x1, y1, z0}, mgl64.Vec3{x0, y1, z0}), normal: mgl64.Vec3{0, 1, 0}},
		{corners: corners(mgl64.Vec3{x0, y0, z0}, mgl64.Vec3{x1, y0, z0}, mgl64.Vec3{x1, y0, z1}, mgl64.Vec3{x0, y0, z1}), normal: mgl64.Vec3{0, -1, 0}},
	}

	for i := range faces {
		var sum mgl64.Vec3
		for _, corner := range faces[i].corners {
			sum = sum.Add(corner)
		}

		faces[i].center = sum.Mul(0.25)
	}

	return faces
}

func shade(base rgb, normal mgl64.Vec3) rgb {
	return base.scale(ambient + (1-ambient)*math.Max(0, normal.Dot(lightDirection)))
}
