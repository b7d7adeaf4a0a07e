// Package pixelgrid provides a CPU-side pixel grid that is mirrored into a
// GPU texture and viewed through a pan/zoom 2D camera.
//
// # Overview
//
// The root package holds the data types shared by every sub-package:
//
//   - Grid: a width x height buffer of RGBA colors with a dirty flag
//   - RGBA: a normalized float color with a fixed RGBA8 encoding
//   - Vec2, Matrix: the small amount of 2D math the camera and renderers need
//
// Sub-packages build the demo on top:
//
//   - integration/gridtex: keeps a gpucontext texture equal to a Grid
//   - camera: cursor-anchored zoom and drag-to-pan
//   - scene: owns the one grid, camera and sync and runs them per tick
//   - pattern: procedural painters for the grid
//   - backend: texture backends; the software backend keeps textures in memory
//
// # Quick Start
//
//	g := pixelgrid.NewGrid(16, 16)
//	g.Set(3, 4, pixelgrid.RGB(1, 0, 0))
//	data := pixelgrid.EncodeRGBA8(g) // 16*16*4 bytes, row-major
//
// # Coordinate System
//
// Grid coordinates have the origin at the top-left cell, X to the right and
// Y down. World coordinates used by the camera have Y up; screen
// coordinates have the origin at the top-left of the viewport and Y down.
package pixelgrid
