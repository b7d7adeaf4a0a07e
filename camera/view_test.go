// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"testing"

	"github.com/gogpu/pixelgrid"
)

func TestView_RoundTrip(t *testing.T) {
	c := MustNew(WithPosition(pixelgrid.V2(12, -7)), WithScale(0.05))

	for _, s := range []pixelgrid.Vec2{
		pixelgrid.V2(0, 0),
		pixelgrid.V2(400, 300),
		pixelgrid.V2(799, 1),
	} {
		w := c.ScreenToWorld(s, viewport800x600)
		if got := c.WorldToScreen(w, viewport800x600); !got.Approx(s, 1e-9) {
			t.Errorf("round trip of %v = %v", s, got)
		}
	}
}

func TestView_Center(t *testing.T) {
	c := MustNew(WithPosition(pixelgrid.V2(5, 5)), WithScale(0.5))
	if got := c.WorldToScreen(pixelgrid.V2(5, 5), viewport800x600); !got.Approx(pixelgrid.V2(400, 300), 1e-9) {
		t.Errorf("camera position maps to %v, want viewport center", got)
	}

	// One world unit up is 1/scale pixels toward the top of the screen.
	if got := c.WorldToScreen(pixelgrid.V2(5, 6), viewport800x600); !got.Approx(pixelgrid.V2(400, 298), 1e-9) {
		t.Errorf("world (5,6) maps to %v, want (400, 298)", got)
	}
}
