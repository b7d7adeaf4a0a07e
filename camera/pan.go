// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import "github.com/gogpu/pixelgrid"

// PanSession is the state captured when a drag starts.
type PanSession struct {
	// StartCursor is the pointer position in screen pixels at press time.
	StartCursor pixelgrid.Vec2

	// StartPosition is the camera position at press time.
	StartPosition pixelgrid.Vec2
}

// Session returns the active pan session, if any.
func (c *Camera) Session() (PanSession, bool) {
	if c.pan == nil {
		return PanSession{}, false
	}
	return *c.pan, true
}

// Panning reports whether a pan session is active.
func (c *Camera) Panning() bool {
	return c.pan != nil
}

// PanStart begins a pan session on a primary button press with a known
// cursor. A press during an active session restarts it from the current
// state. Returns true if a session was started.
func (c *Camera) PanStart(f Frame) bool {
	if !f.Pressed || !f.HasCursor {
		return false
	}
	c.pan = &PanSession{
		StartCursor:   f.Cursor,
		StartPosition: c.position,
	}
	pixelgrid.Logger().Debug("camera: pan start",
		"cursor_x", f.Cursor.X,
		"cursor_y", f.Cursor.Y)
	return true
}

// PanUpdate moves the camera so the world point grabbed at PanStart stays
// under the cursor. The displacement is always measured from the session's
// start points, so rounding never accumulates across ticks.
// Returns true if the camera moved.
func (c *Camera) PanUpdate(f Frame) bool {
	if c.pan == nil || !f.HasCursor {
		return false
	}
	delta := f.Cursor.Sub(c.pan.StartCursor).FlipY()
	c.position = c.pan.StartPosition.Sub(delta.Mul(c.scale))
	return true
}

// PanEnd ends the pan session on a primary button release.
// Returns true if a session was ended.
func (c *Camera) PanEnd(f Frame) bool {
	if !f.Released || c.pan == nil {
		return false
	}
	c.pan = nil
	pixelgrid.Logger().Debug("camera: pan end",
		"x", c.position.X,
		"y", c.position.Y)
	return true
}
