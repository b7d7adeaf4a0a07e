// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene ties one pixel grid, one camera and one texture sync
// together and runs them once per frame tick.
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/pixelgrid"
	"github.com/gogpu/pixelgrid/camera"
	"github.com/gogpu/pixelgrid/integration/gridtex"
	"github.com/gogpu/pixelgrid/pattern"
)

// Errors returned by Scene operations.
var (
	// ErrInvalidConfig is returned when a Config cannot produce a scene.
	ErrInvalidConfig = errors.New("scene: invalid config")

	// ErrClosed is returned by Tick after Close.
	ErrClosed = errors.New("scene: closed")
)

// Config describes the initial state of a Scene.
type Config struct {
	// Width and Height are the grid dimensions in cells. Both must be positive.
	Width, Height int

	// Painter colors the grid once at creation. Nil selects pattern.Gradient.
	Painter pattern.Painter

	// Camera holds the zoom limits and sensitivity.
	Camera camera.Config

	// Scale is the initial camera scale in world units per pixel.
	// Zero means 1. The value is clamped into the camera's zoom range.
	Scale float64

	// Position is the initial world-space camera center.
	Position pixelgrid.Vec2
}

// DefaultConfig returns the demo scene: a 16x16 gradient grid viewed at
// scale 1 from the origin.
func DefaultConfig() Config {
	return Config{
		Width:   16,
		Height:  16,
		Painter: pattern.Gradient{},
		Camera:  camera.DefaultConfig(),
		Scale:   1,
	}
}

// Scene owns the grid, the camera and the texture sync.
//
// Scene is NOT safe for concurrent use. Input collected from platform
// callbacks reaches it as a camera.Frame passed to Tick.
type Scene struct {
	grid   *pixelgrid.Grid
	camera *camera.Camera
	sync   *gridtex.Sync

	// home is the camera state New produced, restored by ResetCamera.
	homePosition pixelgrid.Vec2
	homeScale    float64

	ticks  uint64
	closed bool
}

// New builds the grid, paints it, creates the camera and uploads the grid
// into a texture made by creator.
func New(cfg Config, creator gpucontext.TextureCreator) (*Scene, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	scale := cfg.Scale
	if scale == 0 {
		scale = 1
	}

	cam, err := camera.New(
		camera.WithConfig(cfg.Camera),
		camera.WithScale(scale),
		camera.WithPosition(cfg.Position),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	grid := pixelgrid.NewGrid(cfg.Width, cfg.Height)
	painter := cfg.Painter
	if painter == nil {
		painter = pattern.Gradient{}
	}
	painter.Paint(grid)

	sync, err := gridtex.New(grid, creator)
	if err != nil {
		return nil, err
	}

	pixelgrid.Logger().Info("scene: ready",
		"width", cfg.Width, "height", cfg.Height, "scale", cam.Scale())

	return &Scene{
		grid:         grid,
		camera:       cam,
		sync:         sync,
		homePosition: cam.Position(),
		homeScale:    cam.Scale(),
	}, nil
}

// Grid returns the scene's grid. Writes to it are uploaded on the next Tick.
func (s *Scene) Grid() *pixelgrid.Grid {
	return s.grid
}

// Camera returns the scene's camera.
func (s *Scene) Camera() *camera.Camera {
	return s.camera
}

// Texture returns the texture mirroring the grid, or nil after Close.
func (s *Scene) Texture() gpucontext.Texture {
	return s.sync.Texture()
}

// Uploads returns how many times the grid has been written to the texture
// after the initial upload.
func (s *Scene) Uploads() int {
	return s.sync.Uploads()
}

// Ticks returns the number of completed ticks.
func (s *Scene) Ticks() uint64 {
	return s.ticks
}

// Tick advances the scene by one frame: the camera runs zoom, pan start,
// pan update and pan end in that order, then the grid is synced to the
// texture. uploaded reports whether the texture was written.
func (s *Scene) Tick(f camera.Frame) (uploaded bool, err error) {
	if s.closed {
		return false, ErrClosed
	}
	s.camera.Update(f)
	uploaded, err = s.sync.Flush()
	if err != nil {
		return false, err
	}
	s.ticks++
	return uploaded, nil
}

// ResetCamera moves the camera back to the position and scale it had when
// the scene was created.
func (s *Scene) ResetCamera() {
	s.camera.SetPosition(s.homePosition)
	s.camera.SetScale(s.homeScale)
}

// Paint applies p to the grid. The next Tick uploads the result.
func (s *Scene) Paint(p pattern.Painter) {
	p.Paint(s.grid)
}

// SpriteMatrix places a width x height texture in world space: centered on
// the origin at one world unit per texel with Y up. It maps texel
// coordinates (top-left origin, Y down) to world coordinates.
func SpriteMatrix(width, height int) pixelgrid.Matrix {
	return pixelgrid.Compose(
		pixelgrid.Translate(-float64(width)/2, float64(height)/2),
		pixelgrid.Scale(1, -1),
	)
}

// TextureMatrix maps texel coordinates to screen pixels for the current
// camera and the given viewport size.
func (s *Scene) TextureMatrix(viewport pixelgrid.Vec2) pixelgrid.Matrix {
	return s.camera.ViewMatrix(viewport).Multiply(SpriteMatrix(s.grid.Width(), s.grid.Height()))
}

// CellAt returns the grid cell under a screen position.
// ok is false when the position falls outside the grid.
func (s *Scene) CellAt(screen, viewport pixelgrid.Vec2) (x, y int, ok bool) {
	inv, ok := s.TextureMatrix(viewport).Invert()
	if !ok {
		return 0, 0, false
	}
	texel := inv.Transform(screen)
	x, y = int(math.Floor(texel.X)), int(math.Floor(texel.Y))
	if x < 0 || x >= s.grid.Width() || y < 0 || y >= s.grid.Height() {
		return 0, 0, false
	}
	return x, y, true
}

// Close releases the texture. Close is idempotent.
func (s *Scene) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.sync.Close()
}
