// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/gogpu/pixelgrid"
	"github.com/gogpu/pixelgrid/backend"
	"github.com/gogpu/pixelgrid/camera"
	"github.com/gogpu/pixelgrid/integration/gridtex"
	"github.com/gogpu/pixelgrid/pattern"
)

func newBackend(t *testing.T) *backend.SoftwareBackend {
	t.Helper()
	b := backend.NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(b.Close)
	return b
}

func newScene(t *testing.T, cfg Config) *Scene {
	t.Helper()
	s, err := New(cfg, newBackend(t).TextureCreator())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func texturePix(t *testing.T, s *Scene) []byte {
	t.Helper()
	tex, ok := s.Texture().(*backend.Texture)
	if !ok {
		t.Fatalf("Texture() = %T, want *backend.Texture", s.Texture())
	}
	return tex.Pix()
}

func TestNewDefault(t *testing.T) {
	s := newScene(t, DefaultConfig())

	if s.Grid().Width() != 16 || s.Grid().Height() != 16 {
		t.Errorf("grid = %dx%d, want 16x16", s.Grid().Width(), s.Grid().Height())
	}
	if s.Grid().Dirty() {
		t.Error("grid should be clean after the initial upload")
	}
	if s.Uploads() != 0 {
		t.Errorf("Uploads() = %d, want 0", s.Uploads())
	}
	if s.Camera().Scale() != 1 || !s.Camera().Position().IsZero() {
		t.Errorf("camera = scale %v at %v, want scale 1 at origin", s.Camera().Scale(), s.Camera().Position())
	}

	c, _ := s.Grid().Get(3, 4)
	if want := pixelgrid.RGB(3.0/255, 4.0/255, 0.5); c != want {
		t.Errorf("cell(3,4) = %+v, want %+v", c, want)
	}
	if !bytes.Equal(texturePix(t, s), pixelgrid.EncodeRGBA8(s.Grid())) {
		t.Error("texture bytes differ from the grid encoding")
	}
}

func TestNewNilPainterUsesGradient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Painter = nil
	s := newScene(t, cfg)

	c, _ := s.Grid().Get(1, 0)
	if want := pixelgrid.RGB(1.0/255, 0, 0.5); c != want {
		t.Errorf("cell(1,0) = %+v, want %+v", c, want)
	}
}

func TestNewErrors(t *testing.T) {
	b := newBackend(t)

	tests := []struct {
		name    string
		cfg     func() Config
		wantErr error
	}{
		{"zero width", func() Config { c := DefaultConfig(); c.Width = 0; return c }, ErrInvalidConfig},
		{"negative height", func() Config { c := DefaultConfig(); c.Height = -2; return c }, ErrInvalidConfig},
		{"inverted zoom range", func() Config {
			c := DefaultConfig()
			c.Camera = camera.Config{Sensitivity: 0.2, MinZoom: 2, MaxZoom: 1}
			return c
		}, camera.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg(), b.TextureCreator())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := New(DefaultConfig(), nil); !errors.Is(err, gridtex.ErrNilCreator) {
		t.Errorf("New(nil creator) error = %v, want ErrNilCreator", err)
	}
}

func TestTickUploadsOnlyAfterMutation(t *testing.T) {
	s := newScene(t, DefaultConfig())

	for i := 0; i < 3; i++ {
		uploaded, err := s.Tick(camera.Frame{})
		if err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
		if uploaded {
			t.Fatalf("tick %d uploaded an unchanged grid", i)
		}
	}

	s.Grid().Set(0, 0, pixelgrid.Red)

	uploaded, err := s.Tick(camera.Frame{})
	if err != nil || !uploaded {
		t.Fatalf("Tick() after Set = (%v, %v), want (true, nil)", uploaded, err)
	}
	if uploaded, _ := s.Tick(camera.Frame{}); uploaded {
		t.Error("second Tick() uploaded again")
	}
	if s.Uploads() != 1 {
		t.Errorf("Uploads() = %d, want 1", s.Uploads())
	}
	if s.Ticks() != 5 {
		t.Errorf("Ticks() = %d, want 5", s.Ticks())
	}

	pix := texturePix(t, s)
	if got := [4]byte{pix[0], pix[1], pix[2], pix[3]}; got != pixelgrid.Red.Bytes() {
		t.Errorf("texel(0,0) = %v, want red", got)
	}
}

func TestPaintUploadsNextTick(t *testing.T) {
	s := newScene(t, DefaultConfig())
	s.Paint(pattern.Solid(pixelgrid.Blue))

	uploaded, err := s.Tick(camera.Frame{})
	if err != nil || !uploaded {
		t.Fatalf("Tick() = (%v, %v), want (true, nil)", uploaded, err)
	}
	pix := texturePix(t, s)
	last := len(pix) - 4
	if got := [4]byte{pix[last], pix[last+1], pix[last+2], pix[last+3]}; got != pixelgrid.Blue.Bytes() {
		t.Errorf("last texel = %v, want blue", got)
	}
}

func TestTickRunsZoomBeforePanStart(t *testing.T) {
	s := newScene(t, DefaultConfig())

	_, err := s.Tick(camera.Frame{
		Scroll:    []float64{1},
		Cursor:    pixelgrid.V2(600, 300),
		HasCursor: true,
		Viewport:  pixelgrid.V2(800, 600),
		Pressed:   true,
	})
	if err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	if got := s.Camera().Scale(); !approx(got, 0.8) {
		t.Errorf("Scale() = %v, want 0.8", got)
	}
	session, ok := s.Camera().Session()
	if !ok {
		t.Fatal("pan session should exist after a press")
	}
	if !session.StartPosition.Approx(pixelgrid.V2(40, 0), 1e-9) {
		t.Errorf("session start position = %v, want the post-zoom position (40, 0)", session.StartPosition)
	}
}

func TestResetCamera(t *testing.T) {
	tests := []struct {
		name      string
		scale     float64
		wantScale float64
	}{
		{"zero scale means 1", 0, 1},
		{"configured scale", 0.05, 0.05},
		{"clamped scale", 100, camera.MaxZoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Scale = tt.scale
			cfg.Position = pixelgrid.V2(3, -2)
			s := newScene(t, cfg)

			s.Camera().SetPosition(pixelgrid.V2(50, 50))
			s.Camera().SetScale(camera.MinZoom)
			s.ResetCamera()

			if got := s.Camera().Scale(); got != tt.wantScale {
				t.Errorf("Scale() after reset = %v, want %v", got, tt.wantScale)
			}
			if got := s.Camera().Position(); got != pixelgrid.V2(3, -2) {
				t.Errorf("Position() after reset = %v, want (3, -2)", got)
			}
		})
	}
}

func TestCloseIdempotent(t *testing.T) {
	s, err := New(DefaultConfig(), newBackend(t).TextureCreator())
	if err != nil {
		t.Fatal(err)
	}
	tex := s.Texture().(*backend.Texture)

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if !tex.Destroyed() {
		t.Error("Close() should destroy the texture")
	}
	if _, err := s.Tick(camera.Frame{}); !errors.Is(err, ErrClosed) {
		t.Errorf("Tick() after Close error = %v, want ErrClosed", err)
	}
}

func TestSpriteMatrix(t *testing.T) {
	m := SpriteMatrix(4, 2)

	tests := []struct {
		texel, world pixelgrid.Vec2
	}{
		{pixelgrid.V2(0, 0), pixelgrid.V2(-2, 1)},
		{pixelgrid.V2(4, 2), pixelgrid.V2(2, -1)},
		{pixelgrid.V2(2, 1), pixelgrid.V2(0, 0)},
	}
	for _, tt := range tests {
		if got := m.Transform(tt.texel); !got.Approx(tt.world, 1e-12) {
			t.Errorf("SpriteMatrix(4,2) * %v = %v, want %v", tt.texel, got, tt.world)
		}
	}
}

// twoCells is a 2x1 grid (red, blue) viewed at ten pixels per cell.
func twoCells(t *testing.T) *Scene {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 2, 1
	cfg.Scale = 0.1
	cfg.Painter = pattern.PainterFunc(func(g *pixelgrid.Grid) {
		g.Set(0, 0, pixelgrid.Red)
		g.Set(1, 0, pixelgrid.Blue)
	})
	return newScene(t, cfg)
}

func TestCellAt(t *testing.T) {
	s := twoCells(t)
	viewport := pixelgrid.V2(100, 100)

	tests := []struct {
		screen pixelgrid.Vec2
		x, y   int
		ok     bool
	}{
		{pixelgrid.V2(45, 50), 0, 0, true},
		{pixelgrid.V2(55, 50), 1, 0, true},
		{pixelgrid.V2(40.5, 45.5), 0, 0, true},
		{pixelgrid.V2(10, 10), 0, 0, false},
		{pixelgrid.V2(61, 50), 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := s.CellAt(tt.screen, viewport)
		if ok != tt.ok || x != tt.x || y != tt.y {
			t.Errorf("CellAt(%v) = (%d, %d, %v), want (%d, %d, %v)", tt.screen, x, y, ok, tt.x, tt.y, tt.ok)
		}
	}
}

func TestRenderThroughBackend(t *testing.T) {
	b := newBackend(t)
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 2, 1
	cfg.Scale = 0.1
	cfg.Painter = pattern.Checker{A: pixelgrid.Red, B: pixelgrid.Blue, Size: 1}
	s, err := New(cfg, b.TextureCreator())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	viewport := pixelgrid.V2(100, 100)
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	if err := b.DrawTexture(dst, s.Texture(), s.TextureMatrix(viewport)); err != nil {
		t.Fatalf("DrawTexture() error = %v", err)
	}

	if got := dst.RGBAAt(45, 50); got.R != 255 || got.B != 0 {
		t.Errorf("pixel(45,50) = %v, want red", got)
	}
	if got := dst.RGBAAt(55, 50); got.R != 0 || got.B != 255 {
		t.Errorf("pixel(55,50) = %v, want blue", got)
	}
	if got := dst.RGBAAt(10, 10); got.A != 0 {
		t.Errorf("pixel(10,10) = %v, want untouched", got)
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
