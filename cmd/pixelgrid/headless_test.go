package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/pixelgrid/backend"
	"github.com/gogpu/pixelgrid/internal/config"
)

func TestRunHeadlessWritesPNG(t *testing.T) {
	b, err := backend.InitNamed(backend.BackendSoftware)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	cfg := config.Default()
	cfg.View.Width, cfg.View.Height = 160, 120
	out := filepath.Join(t.TempDir(), "view.png")

	if err := runHeadless(cfg, b, 30, out); err != nil {
		t.Fatalf("runHeadless() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got := img.Bounds().Size(); got.X != 160 || got.Y != 120 {
		t.Errorf("image size = %v, want 160x120", got)
	}
}

func TestRunHeadlessRejectsZeroFrames(t *testing.T) {
	b, err := backend.InitNamed(backend.BackendSoftware)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if err := runHeadless(config.Default(), b, 0, filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("runHeadless(frames=0) should fail")
	}
}

func TestScriptPhases(t *testing.T) {
	s := &script{frames: 30}
	s.W, s.H = 100, 100

	var scrolls, presses, releases, paints int
	s.OnScroll(func(_, dy float64) {
		if dy < 0 {
			scrolls++
		}
	})
	s.OnMouseMove(func(x, y float64) {})
	s.OnMousePress(func(b gpucontext.MouseButton, _, _ float64) {
		if b == gpucontext.MouseButtonLeft {
			presses++
		}
	})
	s.OnMouseRelease(func(gpucontext.MouseButton, float64, float64) { releases++ })

	for i := 0; i < s.frames; i++ {
		if _, ok := s.play(i); ok {
			paints++
		}
	}

	if scrolls != 3 || presses != 1 || releases != 1 {
		t.Errorf("scrolls=%d presses=%d releases=%d, want 3/1/1", scrolls, presses, releases)
	}
	if paints != 10 {
		t.Errorf("paints = %d, want 10", paints)
	}
}
