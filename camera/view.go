// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import "github.com/gogpu/pixelgrid"

// ViewMatrix returns the world-to-screen transform for a viewport of the
// given size in pixels.
func (c *Camera) ViewMatrix(viewport pixelgrid.Vec2) pixelgrid.Matrix {
	inv := 1 / c.scale
	return pixelgrid.Compose(
		pixelgrid.Translate(viewport.X/2, viewport.Y/2),
		pixelgrid.Scale(inv, -inv),
		pixelgrid.Translate(-c.position.X, -c.position.Y),
	)
}

// ScreenToWorld converts a screen position to world coordinates.
func (c *Camera) ScreenToWorld(screen, viewport pixelgrid.Vec2) pixelgrid.Vec2 {
	centered := screen.Sub(viewport.Div(2)).FlipY()
	return centered.Mul(c.scale).Add(c.position)
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(world, viewport pixelgrid.Vec2) pixelgrid.Vec2 {
	return c.ViewMatrix(viewport).Transform(world)
}
