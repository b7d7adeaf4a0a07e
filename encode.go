package pixelgrid

import (
	"errors"
	"fmt"
)

// BytesPerPixel is the size of one encoded cell (RGBA8).
const BytesPerPixel = 4

// ErrDimensionMismatch is reported when a byte buffer does not hold exactly
// Width*Height*BytesPerPixel bytes for the grid it is paired with.
var ErrDimensionMismatch = errors.New("pixelgrid: buffer size does not match grid dimensions")

// EncodedLen returns the number of bytes the RGBA8 encoding of g occupies.
func EncodedLen(g *Grid) int {
	return g.width * g.height * BytesPerPixel
}

// EncodeRGBA8 returns the RGBA8 encoding of g.
//
// Rows are emitted top to bottom and cells left to right, so the result has
// a row stride of Width*4 bytes. The buffer is allocated once at its final
// size.
func EncodeRGBA8(g *Grid) []byte {
	data := make([]byte, 0, EncodedLen(g))
	for _, c := range g.cells {
		b := c.Bytes()
		data = append(data, b[0], b[1], b[2], b[3])
	}
	return data
}

// EncodeRGBA8Into writes the RGBA8 encoding of g into dst.
//
// dst must be exactly EncodedLen(g) bytes long. A mismatch is a setup error
// and panics with an error wrapping ErrDimensionMismatch; the buffer is
// never partially written.
func EncodeRGBA8Into(g *Grid, dst []byte) {
	if want := EncodedLen(g); len(dst) != want {
		panic(fmt.Errorf("%w: got %d bytes, want %d (%dx%d)",
			ErrDimensionMismatch, len(dst), want, g.width, g.height))
	}
	for i, c := range g.cells {
		b := c.Bytes()
		o := i * BytesPerPixel
		dst[o+0] = b[0]
		dst[o+1] = b[1]
		dst[o+2] = b[2]
		dst[o+3] = b[3]
	}
}
