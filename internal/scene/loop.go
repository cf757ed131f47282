package scene

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/rocketscienceinc/connect5-client/internal/config"
)

var ErrNotInitialized = errors.New("scene is not initialized")

// Presenter shows a rendered frame.
type Presenter interface {
	Present(frame image.Image)
}

// Loop owns the camera, the scene and the renderer. Ticks render a frame once everything is
// initialized and until the loop is torn down. It is driven by a single goroutine.
type Loop struct {
	logger    *slog.Logger
	presenter Presenter
	cameraCfg config.Camera

	scene    *Scene
	camera   *Camera
	renderer *Renderer

	viewport Viewport
	torn     bool
}

func NewLoop(logger *slog.Logger, presenter Presenter, cameraCfg config.Camera) *Loop {
	return &Loop{
		logger:    logger.With("component", "render-loop"),
		presenter: presenter,
		cameraCfg: cameraCfg,
		scene:     New(),
	}
}

// Init creates the camera and the renderer for the last known viewport.
func (that *Loop) Init(viewport Viewport) {
	if that.torn || that.Initialized() {
		return
	}

	if that.viewport.IsEmpty() {
		that.viewport = viewport
	}

	that.camera = NewCamera(that.cameraCfg, that.viewport)
	that.renderer = NewRenderer(that.viewport)

	that.logger.Debug("scene initialized", "width", that.viewport.Width, "height", that.viewport.Height)
}

func (that *Loop) Initialized() bool {
	return that.camera != nil && that.renderer != nil
}

// Resize applies the new size, or remembers it until Init.
func (that *Loop) Resize(viewport Viewport) {
	that.viewport = viewport

	if !that.Initialized() {
		return
	}

	that.camera.Resize(viewport)
	that.renderer.Resize(viewport)
}

// Tick renders and presents one frame. It reports whether a frame was drawn.
func (that *Loop) Tick() bool {
	if that.torn || !that.Initialized() {
		return false
	}

	frame := that.renderer.Render(that.scene, that.camera)
	that.presenter.Present(frame)

	return true
}

// Teardown stops all further rendering.
func (that *Loop) Teardown() {
	that.torn = true
}

// Snapshot writes the last frame to path as PNG.
func (that *Loop) Snapshot(path string) error {
	if !that.Initialized() {
		return ErrNotInitialized
	}

	if err := that.renderer.SavePNG(path); err != nil {
		return fmt.Errorf("failed to snapshot: %w", err)
	}

	return nil
}

func (that *Loop) Scene() *Scene {
	return that.scene
}

// Camera returns nil before Init.
func (that *Loop) Camera() *Camera {
	return that.camera
}
