package pixelgrid

import (
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Values outside the range are kept
// as-is and clamped only when the color is encoded.
type RGBA struct {
	R, G, B, A float64
}

// Bytes encodes the color as four 8-bit channels in RGBA order.
// Each channel is round(v*255) clamped to [0, 255].
func (c RGBA) Bytes() [4]uint8 {
	return [4]uint8{
		channelByte(c.R),
		channelByte(c.G),
		channelByte(c.B),
		channelByte(c.A),
	}
}

// RGBA implements the color.Color interface (alpha-premultiplied, 16-bit).
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// Color converts RGBA to a non-premultiplied color.NRGBA.
func (c RGBA) Color() color.NRGBA {
	b := c.Bytes()
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// FromBytes decodes four 8-bit RGBA channels.
func FromBytes(b [4]uint8) RGBA {
	return RGBA{
		R: float64(b[0]) / 255,
		G: float64(b[1]) / 255,
		B: float64(b[2]) / 255,
		A: float64(b[3]) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. The second result is false for malformed input.
func Hex(hex string) (RGBA, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return Black, false
	}

	return FromBytes([4]uint8{uint8(r), uint8(g), uint8(b), uint8(a)}), true
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// channelByte maps a normalized channel to a byte.
func channelByte(v float64) uint8 {
	return uint8(clamp255(math.Round(v * 255)))
}

// clamp255 restricts a value to [0, 255] range. NaN maps to 0.
func clamp255(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)

// DefaultColor is the color every cell of a new Grid starts with.
var DefaultColor = White
