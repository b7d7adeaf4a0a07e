// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gridtex keeps a GPU texture equal to the RGBA8 encoding of a
// pixelgrid.Grid.
//
// The data flow is:
//
//	Grid.Set (CPU) -> dirty flag -> Sync.Flush -> texture bytes -> renderer
//
// # Change Detection
//
// Flush is called once per frame. It re-encodes the grid only when the grid
// is dirty, so a steady grid costs one boolean check per frame. The dirty
// flag is cleared only after the texture has been written.
//
// # Texture Contract
//
// The texture is created from the grid at setup with the grid's dimensions
// and is never resized. Writes go in place when the texture exposes its
// bytes:
//
//	Pix() []byte
//
// and through gpucontext.TextureUpdater otherwise. A texture whose byte
// length no longer matches the grid is a programming error and panics.
//
// Sampling is set to nearest-neighbor (see NearestSampler) through the
// optional method:
//
//	SetSampler(gputypes.SamplerDescriptor)
//
// so every grid cell renders as a crisp block.
//
// # Integration Without Circular Imports
//
// Like the rest of gogpu, this package talks to the host only through
// gpucontext interfaces and small local interfaces, so it never imports a
// concrete windowing or GPU package.
//
// # Thread Safety
//
// Sync is NOT safe for concurrent use. It reads the grid, so grid writes
// and Flush must happen on the same goroutine (the frame loop).
package gridtex
