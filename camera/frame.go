// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import "github.com/gogpu/pixelgrid"

// Frame is the input gathered during one tick.
type Frame struct {
	// Scroll holds every wheel delta received during the tick.
	// Positive values scroll up (away from the user) and zoom in.
	Scroll []float64

	// Cursor is the pointer position in screen pixels.
	// Only meaningful when HasCursor is true.
	Cursor    pixelgrid.Vec2
	HasCursor bool

	// Viewport is the window size in pixels. A zero size means no window.
	Viewport pixelgrid.Vec2

	// Pressed and Released are the primary button edges of this tick.
	Pressed  bool
	Released bool
}

// ScrollSum returns the total scroll of the tick.
func (f Frame) ScrollSum() float64 {
	var sum float64
	for _, s := range f.Scroll {
		sum += s
	}
	return sum
}

// hasViewport reports whether the frame describes a usable window.
func (f Frame) hasViewport() bool {
	return f.Viewport.X > 0 && f.Viewport.Y > 0
}

// centered converts a screen position into viewport-centered coordinates
// with Y up.
func (f Frame) centered(screen pixelgrid.Vec2) pixelgrid.Vec2 {
	return screen.Sub(f.Viewport.Div(2)).FlipY()
}
