package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/pixelgrid"
	"github.com/gogpu/pixelgrid/backend"
	"github.com/gogpu/pixelgrid/camera"
	"github.com/gogpu/pixelgrid/internal/config"
	"github.com/gogpu/pixelgrid/scene"
)

// script is a synthetic window that replays a fixed gesture sequence: three
// wheel notches toward a point right of center, a drag to the lower left,
// then a horizontal stroke of white cells across the middle of the view.
type script struct {
	gpucontext.NullEventSource
	gpucontext.NullWindowProvider

	frames int

	move    func(x, y float64)
	press   func(gpucontext.MouseButton, float64, float64)
	release func(gpucontext.MouseButton, float64, float64)
	scroll  func(dx, dy float64)
}

func (s *script) OnMouseMove(fn func(x, y float64)) { s.move = fn }

func (s *script) OnMousePress(fn func(gpucontext.MouseButton, float64, float64)) { s.press = fn }

func (s *script) OnMouseRelease(fn func(gpucontext.MouseButton, float64, float64)) { s.release = fn }

func (s *script) OnScroll(fn func(dx, dy float64)) { s.scroll = fn }

// phases returns the first frame of the drag and of the stroke.
func (s *script) phases() (drag, stroke int) {
	return s.frames / 3, 2 * s.frames / 3
}

// play emits the input of frame i. It returns the screen point to paint,
// if any.
func (s *script) play(i int) (paint pixelgrid.Vec2, ok bool) {
	w, h := float64(s.W), float64(s.H)
	drag, stroke := s.phases()

	switch {
	case i < drag:
		step := max(drag/3, 1)
		if i%step == 0 && i/step < 3 {
			s.move(0.65*w, 0.4*h)
			s.scroll(0, -1)
		}
	case i < stroke:
		t := float64(i-drag) / float64(max(stroke-drag-1, 1))
		x, y := 0.5*w-0.2*w*t, 0.5*h+0.1*h*t
		switch i {
		case drag:
			s.press(gpucontext.MouseButtonLeft, x, y)
		case stroke - 1:
			s.release(gpucontext.MouseButtonLeft, x, y)
		default:
			s.move(x, y)
		}
	default:
		t := float64(i-stroke) / float64(max(s.frames-stroke-1, 1))
		return pixelgrid.V2(0.1*w+0.8*w*t, 0.5*h), true
	}
	return pixelgrid.Vec2{}, false
}

// runHeadless plays the script for the given number of ticks and writes the
// final view to output.
func runHeadless(cfg config.Config, b backend.RenderBackend, frames int, output string) error {
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}
	sc, err := cfg.Scene()
	if err != nil {
		return err
	}
	s, err := scene.New(sc, b.TextureCreator())
	if err != nil {
		return err
	}
	defer s.Close()

	src := &script{
		NullWindowProvider: gpucontext.NullWindowProvider{W: cfg.View.Width, H: cfg.View.Height},
		frames:             frames,
	}
	input := camera.NewCollector(src)
	input.Attach(src)

	log := pixelgrid.Logger()
	viewport := cfg.Viewport()
	for i := 0; i < frames; i++ {
		if p, ok := src.play(i); ok {
			if x, y, hit := s.CellAt(p, viewport); hit {
				s.Grid().Set(x, y, pixelgrid.White)
			}
		}
		if _, err := s.Tick(input.Frame()); err != nil {
			return fmt.Errorf("tick %d: %w", i, err)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, cfg.View.Width, cfg.View.Height))
	if err := render(b, s, dst); err != nil {
		return err
	}
	if err := writePNG(output, dst); err != nil {
		return err
	}

	cam := s.Camera()
	log.Info("pixelgrid: headless session written",
		"output", output,
		"ticks", s.Ticks(),
		"uploads", s.Uploads(),
		"scale", cam.Scale(),
		"position", cam.Position())
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
