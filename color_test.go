package pixelgrid

import (
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestRGBA_Bytes(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want [4]uint8
	}{
		{"opaque black", Black, [4]uint8{0, 0, 0, 255}},
		{"opaque white", White, [4]uint8{255, 255, 255, 255}},
		{"transparent", Transparent, [4]uint8{0, 0, 0, 0}},
		{"half rounds up", RGBA{0.5, 0.5, 0.5, 0.5}, [4]uint8{128, 128, 128, 128}},
		{"rounds to nearest", RGBA{1.0 / 255, 2.4 / 255, 2.6 / 255, 1}, [4]uint8{1, 2, 3, 255}},
		{"clamps high", RGBA{1.5, 2, 100, 1}, [4]uint8{255, 255, 255, 255}},
		{"clamps low", RGBA{-0.1, -1, -100, 0}, [4]uint8{0, 0, 0, 0}},
		{"nan is zero", RGBA{math.NaN(), 0, 0, 1}, [4]uint8{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Bytes(); got != tt.want {
				t.Errorf("%+v.Bytes() = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestRGBA_ColorInterface(t *testing.T) {
	r, g, b, a := Red.RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("Red.RGBA() = (%d, %d, %d, %d), want (65535, 0, 0, 65535)", r, g, b, a)
	}

	// color.Color values are premultiplied.
	r, _, _, a = RGBA{1, 0, 0, 0.5}.RGBA()
	if r != a {
		t.Errorf("half-alpha red: r = %d, a = %d, want equal (premultiplied)", r, a)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 128, B: 0, A: 255})
	want := FromBytes([4]uint8{255, 128, 0, 255})
	if got != want {
		t.Errorf("FromColor() = %+v, want %+v", got, want)
	}
	if got.Bytes() != [4]uint8{255, 128, 0, 255} {
		t.Errorf("FromColor().Bytes() = %v", got.Bytes())
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in     string
		want   [4]uint8
		wantOK bool
	}{
		{"#fff", [4]uint8{255, 255, 255, 255}, true},
		{"f008", [4]uint8{255, 0, 0, 136}, true},
		{"#1d3557", [4]uint8{0x1d, 0x35, 0x57, 255}, true},
		{"E63946CC", [4]uint8{0xe6, 0x39, 0x46, 0xcc}, true},
		{"", [4]uint8{0, 0, 0, 255}, false},
		{"#12", [4]uint8{0, 0, 0, 255}, false},
		{"#zzzzzz", [4]uint8{0, 0, 0, 255}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Hex(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Hex(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got.Bytes() != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got.Bytes(), tt.want)
			}
		})
	}
}

func TestRGBA_Lerp(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	if mid != (RGBA{0.5, 0.5, 0.5, 1}) {
		t.Errorf("Black.Lerp(White, 0.5) = %+v", mid)
	}
	if Black.Lerp(White, 0) != Black || Black.Lerp(White, 1) != White {
		t.Error("Lerp endpoints do not match")
	}
}
