// Package config loads the demo configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gogpu/pixelgrid"
	"github.com/gogpu/pixelgrid/camera"
	"github.com/gogpu/pixelgrid/pattern"
	"github.com/gogpu/pixelgrid/scene"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is the demo configuration. Fields missing from a file keep their
// Default values.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Camera CameraConfig `yaml:"camera"`
	View   ViewConfig   `yaml:"view"`
}

// GridConfig describes the grid and how it is painted.
type GridConfig struct {
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Pattern string   `yaml:"pattern"`
	Colors  []string `yaml:"colors,omitempty"`
	Cell    int      `yaml:"cell"`
}

// CameraConfig holds the zoom parameters and the initial scale.
type CameraConfig struct {
	Sensitivity float64 `yaml:"sensitivity"`
	MinZoom     float64 `yaml:"min_zoom"`
	MaxZoom     float64 `yaml:"max_zoom"`
	Scale       float64 `yaml:"scale"`
}

// ViewConfig sizes the headless render target and paces the frame loop.
type ViewConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// Default returns the built-in configuration.
func Default() Config {
	cc := camera.DefaultConfig()
	return Config{
		Grid: GridConfig{
			Width:   16,
			Height:  16,
			Pattern: pattern.NameGradient,
			Colors:  []string{"#1d3557", "#e63946"},
			Cell:    4,
		},
		Camera: CameraConfig{
			Sensitivity: cc.Sensitivity,
			MinZoom:     cc.MinZoom,
			MaxZoom:     cc.MaxZoom,
			Scale:       0.05,
		},
		View: ViewConfig{
			Width:  800,
			Height: 600,
			FPS:    30,
		},
	}
}

// Load reads a YAML file over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Default(), err
	}
	cfg, err := Parse(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default, normalizes and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Normalize canonicalizes free-form fields.
func (c *Config) Normalize() {
	if c == nil {
		return
	}
	c.Grid.Pattern = strings.ToLower(strings.TrimSpace(c.Grid.Pattern))
	if c.Grid.Pattern == "" {
		c.Grid.Pattern = pattern.NameGradient
	}
	for i := range c.Grid.Colors {
		c.Grid.Colors[i] = strings.TrimSpace(c.Grid.Colors[i])
	}
}

// Validate reports every bad value, joined into one error wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		bad("grid size %dx%d must be positive", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.Cell < 0 {
		bad("grid cell %d must be >= 0", c.Grid.Cell)
	}
	if _, err := c.Painter(); err != nil {
		bad("grid pattern: %v", err)
	}
	if err := c.CameraConfig().Validate(); err != nil {
		bad("camera: %v", err)
	}
	if c.Camera.Scale < 0 {
		bad("camera scale %v must be >= 0", c.Camera.Scale)
	}
	if c.View.Width <= 0 || c.View.Height <= 0 {
		bad("view size %dx%d must be positive", c.View.Width, c.View.Height)
	}
	if c.View.FPS <= 0 || c.View.FPS > 240 {
		bad("view fps %d must be in [1, 240]", c.View.FPS)
	}
	return errors.Join(errs...)
}

// CameraConfig returns the zoom parameters for camera.New.
func (c Config) CameraConfig() camera.Config {
	return camera.Config{
		Sensitivity: c.Camera.Sensitivity,
		MinZoom:     c.Camera.MinZoom,
		MaxZoom:     c.Camera.MaxZoom,
	}
}

// Painter resolves the configured grid pattern.
func (c Config) Painter() (pattern.Painter, error) {
	return pattern.Lookup(c.Grid.Pattern, c.Grid.Colors, c.Grid.Cell)
}

// Scene converts the configuration into a scene.Config.
func (c Config) Scene() (scene.Config, error) {
	p, err := c.Painter()
	if err != nil {
		return scene.Config{}, err
	}
	return scene.Config{
		Width:   c.Grid.Width,
		Height:  c.Grid.Height,
		Painter: p,
		Camera:  c.CameraConfig(),
		Scale:   c.Camera.Scale,
	}, nil
}

// Viewport returns the headless render size in pixels.
func (c Config) Viewport() pixelgrid.Vec2 {
	return pixelgrid.V2(float64(c.View.Width), float64(c.View.Height))
}

// FrameInterval returns the time between ticks at the configured FPS.
func (c Config) FrameInterval() time.Duration {
	if c.View.FPS <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.View.FPS)
}
