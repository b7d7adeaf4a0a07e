// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/pixelgrid"
)

// Default zoom parameters.
const (
	// ZoomSensitivity is the fraction of the current scale one scroll unit
	// changes.
	ZoomSensitivity = 0.2

	// MinZoom is the smallest scale (most zoomed in).
	MinZoom = 0.01

	// MaxZoom is the largest scale (most zoomed out).
	MaxZoom = 1.5
)

// scaleEpsilon is the smallest scale change treated as a change.
const scaleEpsilon = 1.1920929e-07

// ErrInvalidConfig is returned when a Config violates its constraints.
var ErrInvalidConfig = errors.New("camera: invalid config")

// Config holds the zoom parameters.
type Config struct {
	// Sensitivity scales scroll input into a relative zoom step.
	Sensitivity float64

	// MinZoom and MaxZoom bound the scale.
	MinZoom float64
	MaxZoom float64
}

// DefaultConfig returns the default zoom parameters.
func DefaultConfig() Config {
	return Config{
		Sensitivity: ZoomSensitivity,
		MinZoom:     MinZoom,
		MaxZoom:     MaxZoom,
	}
}

// Validate reports whether the config can drive a camera.
func (c Config) Validate() error {
	if !(c.Sensitivity > 0) {
		return fmt.Errorf("%w: sensitivity must be positive, got %v", ErrInvalidConfig, c.Sensitivity)
	}
	if !(c.MinZoom > 0) || !(c.MaxZoom >= c.MinZoom) {
		return fmt.Errorf("%w: zoom range [%v, %v]", ErrInvalidConfig, c.MinZoom, c.MaxZoom)
	}
	return nil
}

func (c Config) clamp(scale float64) float64 {
	if scale < c.MinZoom {
		return c.MinZoom
	}
	if scale > c.MaxZoom {
		return c.MaxZoom
	}
	return scale
}

// Option configures a Camera during creation.
type Option func(*Camera)

// WithConfig sets the zoom parameters.
func WithConfig(cfg Config) Option {
	return func(c *Camera) {
		c.cfg = cfg
	}
}

// WithPosition sets the initial world position.
func WithPosition(p pixelgrid.Vec2) Option {
	return func(c *Camera) {
		c.position = p
	}
}

// WithZ sets the depth component, which no camera behavior modifies.
func WithZ(z float64) Option {
	return func(c *Camera) {
		c.z = z
	}
}

// WithScale sets the initial scale. It is clamped to the configured range.
func WithScale(s float64) Option {
	return func(c *Camera) {
		c.scale = s
	}
}

// Camera is a 2D orthographic camera with an optional pan session.
//
// Camera is NOT safe for concurrent use; it is driven from the frame loop.
type Camera struct {
	cfg      Config
	position pixelgrid.Vec2
	z        float64
	scale    float64
	pan      *PanSession
}

// New creates a camera at the world origin with scale 1.
// Returns ErrInvalidConfig if the configured zoom range is unusable.
func New(opts ...Option) (*Camera, error) {
	c := &Camera{
		cfg:   DefaultConfig(),
		scale: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	c.scale = c.cfg.clamp(c.scale)
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Camera {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Config returns the zoom parameters.
func (c *Camera) Config() Config {
	return c.cfg
}

// Position returns the world point at the viewport center.
func (c *Camera) Position() pixelgrid.Vec2 {
	return c.position
}

// SetPosition moves the camera.
func (c *Camera) SetPosition(p pixelgrid.Vec2) {
	c.position = p
}

// Z returns the depth component.
func (c *Camera) Z() float64 {
	return c.z
}

// Scale returns the world units per screen pixel.
func (c *Camera) Scale() float64 {
	return c.scale
}

// SetScale sets the scale, clamped to the configured range.
// NaN is ignored.
func (c *Camera) SetScale(s float64) {
	if math.IsNaN(s) {
		return
	}
	c.scale = c.cfg.clamp(s)
}

// Update runs the per-tick behaviors in order: Zoom, PanStart, PanUpdate,
// PanEnd.
func (c *Camera) Update(f Frame) {
	c.Zoom(f)
	c.PanStart(f)
	c.PanUpdate(f)
	c.PanEnd(f)
}
