// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"math"

	"github.com/gogpu/pixelgrid"
)

// Zoom applies the tick's scroll input, keeping the world point under the
// cursor fixed on screen. It is a no-op when there is no scroll, no cursor
// or no viewport, and when the scroll sum is not finite. Returns true if
// the scale changed.
func (c *Camera) Zoom(f Frame) bool {
	scroll := f.ScrollSum()
	if scroll == 0 || math.IsNaN(scroll) || math.IsInf(scroll, 0) {
		return false
	}
	if !f.HasCursor || !f.hasViewport() {
		return false
	}

	// The cursor is read once and reused for both world positions.
	cursor := f.centered(f.Cursor)
	before := cursor.Mul(c.scale).Add(c.position)

	delta := -scroll * c.cfg.Sensitivity
	old := c.scale
	c.scale = c.cfg.clamp(c.scale * (1 + delta))

	if math.Abs(c.scale-old) <= scaleEpsilon {
		return false
	}

	after := cursor.Mul(c.scale).Add(c.position)
	c.position = c.position.Sub(after.Sub(before))

	pixelgrid.Logger().Debug("camera: zoom",
		"scroll", scroll,
		"scale", c.scale,
		"x", c.position.X,
		"y", c.position.Y)
	return true
}
