// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package camera implements a 2D camera with cursor-anchored zoom and
// drag-to-pan.
//
// The camera is driven once per frame by a Frame: a plain snapshot of the
// input that arrived during the tick (scroll deltas, pointer position,
// primary button edges, viewport size). Nothing in this package reads
// ambient platform state, so every behavior can be exercised by
// constructing Frames by hand.
//
// # Per-tick order
//
// Update runs the four behaviors in a fixed order:
//
//	Zoom -> PanStart -> PanUpdate -> PanEnd
//
// # Conventions
//
// Screen coordinates have the origin at the top-left of the viewport with Y
// down. World coordinates have Y up. The camera position is the world point
// shown at the viewport center, and Scale is the number of world units per
// screen pixel: smaller values zoom in.
//
// # Missing input
//
// A Frame without a cursor (pointer outside the window, focus lost, no
// window) makes cursor-dependent behaviors a silent no-op for that tick.
//
// # Platform input
//
// Collector subscribes to a gpucontext.EventSource and produces Frames, so
// the camera can be attached to any gogpu-compatible host.
package camera
