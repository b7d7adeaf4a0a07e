package main

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/pixelgrid"
	"github.com/gogpu/pixelgrid/backend"
	"github.com/gogpu/pixelgrid/camera"
	"github.com/gogpu/pixelgrid/internal/config"
	"github.com/gogpu/pixelgrid/internal/termhost"
	"github.com/gogpu/pixelgrid/pattern"
	"github.com/gogpu/pixelgrid/scene"
)

// viewState is what the last presented frame showed.
type viewState struct {
	size     image.Point
	scale    float64
	position pixelgrid.Vec2
	cursor   pixelgrid.Vec2
}

// runInteractive runs the tick loop in the terminal until the user quits or
// ctx is canceled.
func runInteractive(ctx context.Context, cfg config.Config, b backend.RenderBackend) error {
	sc, err := cfg.Scene()
	if err != nil {
		return err
	}
	s, err := scene.New(sc, b.TextureCreator())
	if err != nil {
		return err
	}
	defer s.Close()

	host, err := termhost.Open()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer host.Close()

	input := camera.NewCollector(host)
	input.Attach(host)

	patterns := pattern.Names()
	current := 0
	for i, name := range patterns {
		if name == cfg.Grid.Pattern {
			current = i
		}
	}
	host.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		switch key {
		case gpucontext.KeyR:
			s.ResetCamera()
		case gpucontext.KeySpace:
			current = (current + 1) % len(patterns)
			p, err := pattern.Lookup(patterns[current], cfg.Grid.Colors, cfg.Grid.Cell)
			if err != nil {
				pixelgrid.Logger().Warn("pixelgrid: pattern", "name", patterns[current], "err", err)
				return
			}
			s.Paint(p)
		}
		host.RequestRedraw()
	})

	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()

	var (
		last viewState
		dst  *image.RGBA
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if !host.Poll() {
			return nil
		}
		f := input.Frame()
		uploaded, err := s.Tick(f)
		if err != nil {
			return err
		}

		w, h := host.Size()
		cam := s.Camera()
		now := viewState{
			size:     image.Pt(w, h),
			scale:    cam.Scale(),
			position: cam.Position(),
			cursor:   f.Cursor,
		}
		if !host.TakeRedraw() && !uploaded && now == last {
			continue
		}
		last = now

		if dst == nil || dst.Bounds().Size() != now.size {
			dst = image.NewRGBA(image.Rectangle{Max: now.size})
		}
		if err := render(b, s, dst); err != nil {
			return err
		}
		host.SetStatus(status(s, f))
		host.Present(dst)
	}
}

// status describes the camera and the cell under the cursor.
func status(s *scene.Scene, f camera.Frame) string {
	cam := s.Camera()
	text := fmt.Sprintf(" zoom %.3f  at (%.1f, %.1f)", cam.Scale(), cam.Position().X, cam.Position().Y)
	if f.HasCursor {
		if x, y, ok := s.CellAt(f.Cursor, f.Viewport); ok {
			c, _ := s.Grid().Get(x, y)
			b := c.Bytes()
			text += fmt.Sprintf("  cell (%d, %d) #%02x%02x%02x", x, y, b[0], b[1], b[2])
		}
	}
	return text + "  | wheel zoom, drag pan, space pattern, r reset, q quit"
}
