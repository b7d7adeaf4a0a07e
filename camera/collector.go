// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/pixelgrid"
)

// Collector accumulates platform input between ticks and hands it out as
// Frames.
//
// Event callbacks and Frame may run on different goroutines; Collector
// guards its state with a mutex.
type Collector struct {
	mu        sync.Mutex
	window    gpucontext.WindowProvider
	scroll    []float64
	cursor    pixelgrid.Vec2
	hasCursor bool
	pressed   bool
	released  bool
}

// NewCollector creates a collector that queries window for the viewport
// size. A nil window yields Frames without a viewport or cursor.
func NewCollector(window gpucontext.WindowProvider) *Collector {
	return &Collector{window: window}
}

// Attach subscribes to src. If src also implements
// gpucontext.PointerEventSource, pointer enter/leave events are used to
// track whether the cursor is inside the window.
func (c *Collector) Attach(src gpucontext.EventSource) {
	src.OnScroll(c.onScroll)
	src.OnMouseMove(c.onMove)
	src.OnMousePress(func(button gpucontext.MouseButton, x, y float64) {
		c.onButton(button, x, y, true)
	})
	src.OnMouseRelease(func(button gpucontext.MouseButton, x, y float64) {
		c.onButton(button, x, y, false)
	})
	src.OnFocus(func(focused bool) {
		if !focused {
			c.loseCursor()
		}
	})

	if ps, ok := src.(gpucontext.PointerEventSource); ok {
		ps.OnPointer(c.onPointer)
	}
}

func (c *Collector) onScroll(_, dy float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// gpucontext reports positive dy for scrolling down; Frame uses
	// positive for up.
	c.scroll = append(c.scroll, -dy)
}

func (c *Collector) onMove(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor = pixelgrid.V2(x, y)
	c.hasCursor = true
}

func (c *Collector) onButton(button gpucontext.MouseButton, x, y float64, down bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor = pixelgrid.V2(x, y)
	c.hasCursor = true
	if button != gpucontext.MouseButtonLeft {
		return
	}
	if down {
		c.pressed = true
	} else {
		c.released = true
	}
}

func (c *Collector) onPointer(ev gpucontext.PointerEvent) {
	switch ev.Type {
	case gpucontext.PointerLeave, gpucontext.PointerCancel:
		c.loseCursor()
	case gpucontext.PointerEnter, gpucontext.PointerMove:
		c.onMove(ev.X, ev.Y)
	}
}

func (c *Collector) loseCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasCursor = false
}

// Frame returns the input collected since the previous call and resets the
// per-tick queues. The cursor is reported only when it lies inside the
// current viewport.
func (c *Collector) Frame() Frame {
	var viewport pixelgrid.Vec2
	if c.window != nil {
		w, h := c.window.Size()
		viewport = pixelgrid.V2(float64(w), float64(h))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	f := Frame{
		Scroll:   c.scroll,
		Cursor:   c.cursor,
		Viewport: viewport,
		Pressed:  c.pressed,
		Released: c.released,
	}
	f.HasCursor = c.hasCursor && f.hasViewport() &&
		c.cursor.X >= 0 && c.cursor.X < viewport.X &&
		c.cursor.Y >= 0 && c.cursor.Y < viewport.Y

	c.scroll = nil
	c.pressed = false
	c.released = false
	return f
}
