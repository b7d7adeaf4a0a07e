package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/pixelgrid/camera"
	"github.com/gogpu/pixelgrid/pattern"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.CameraConfig() != camera.DefaultConfig() {
		t.Errorf("CameraConfig() = %+v, want camera defaults", cfg.CameraConfig())
	}
	if cfg.FrameInterval() != time.Second/30 {
		t.Errorf("FrameInterval() = %v", cfg.FrameInterval())
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("  ")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Grid.Width != Default().Grid.Width {
		t.Errorf("Load(\"\") did not return defaults: %+v", cfg)
	}
}

func TestLoadOverridesKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixelgrid.yaml")
	raw := []byte(`
grid:
  width: 32
  pattern: " Checker "
  colors: ["#000", "#fff"]
camera:
  scale: 0.5
view:
  fps: 60
`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Grid.Width != 32 || cfg.Grid.Height != 16 {
		t.Errorf("grid = %dx%d, want 32x16", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Grid.Pattern != "checker" {
		t.Errorf("pattern = %q, want normalized \"checker\"", cfg.Grid.Pattern)
	}
	if cfg.Camera.Scale != 0.5 || cfg.Camera.MaxZoom != camera.MaxZoom {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	if cfg.View.Width != 800 || cfg.FrameInterval() != time.Second/60 {
		t.Errorf("view = %+v", cfg.View)
	}

	sc, err := cfg.Scene()
	if err != nil {
		t.Fatalf("Scene() error = %v", err)
	}
	if _, ok := sc.Painter.(pattern.Checker); !ok {
		t.Errorf("Scene().Painter = %T, want pattern.Checker", sc.Painter)
	}
	if sc.Width != 32 || sc.Scale != 0.5 {
		t.Errorf("Scene() = %+v", sc)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		invalid bool
	}{
		{"malformed yaml", "grid: [", false},
		{"zero width", "grid: {width: 0}", true},
		{"unknown pattern", "grid: {pattern: plasma}", true},
		{"bad color", "grid: {pattern: blend, colors: [nope]}", true},
		{"inverted zoom", "camera: {min_zoom: 2, max_zoom: 1}", true},
		{"zero sensitivity", "camera: {sensitivity: 0}", true},
		{"negative scale", "camera: {scale: -1}", true},
		{"fps too high", "view: {fps: 1000}", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, want %v (err = %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Grid.Width = 0
	cfg.View.FPS = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 2 {
		t.Errorf("Validate() = %v, want two joined errors", err)
	}
}
