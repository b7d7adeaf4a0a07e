package pixelgrid

import (
	"fmt"
	"image"
	"image/color"
)

// Grid is a rectangular buffer of colors addressed by (x, y).
//
// Cells are stored row-major: index = y*width + x. Every successful write
// marks the grid dirty; a texture sync clears the flag after it has copied
// the cells out.
//
// Grid is NOT safe for concurrent use.
type Grid struct {
	width  int
	height int
	cells  []RGBA
	dirty  bool
}

// NewGrid creates a grid with the given dimensions, every cell set to
// DefaultColor. The new grid is dirty so that the first sync uploads it.
//
// Negative dimensions are a programming error and panic.
func NewGrid(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("pixelgrid: negative grid dimensions %dx%d", width, height))
	}
	cells := make([]RGBA, width*height)
	for i := range cells {
		cells[i] = DefaultColor
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
		dirty:  true,
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

func (g *Grid) index(x, y int) (int, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, false
	}
	return y*g.width + x, true
}

// Get returns the color at (x, y).
// The second result is false when (x, y) is outside the grid.
func (g *Grid) Get(x, y int) (RGBA, bool) {
	i, ok := g.index(x, y)
	if !ok {
		return RGBA{}, false
	}
	return g.cells[i], true
}

// Set stores c at (x, y) and marks the grid dirty.
// It returns false and writes nothing when (x, y) is outside the grid.
func (g *Grid) Set(x, y int, c RGBA) bool {
	i, ok := g.index(x, y)
	if !ok {
		return false
	}
	g.cells[i] = c
	g.dirty = true
	return true
}

// Fill sets every cell to c and marks the grid dirty.
func (g *Grid) Fill(c RGBA) {
	for i := range g.cells {
		g.cells[i] = c
	}
	g.dirty = true
}

// Dirty reports whether the grid changed since the last ClearDirty.
func (g *Grid) Dirty() bool {
	return g.dirty
}

// MarkDirty forces the next sync to re-encode the grid.
func (g *Grid) MarkDirty() {
	g.dirty = true
}

// ClearDirty resets the dirty flag. Called by the texture sync after a
// successful write.
func (g *Grid) ClearDirty() {
	g.dirty = false
}

// At implements the image.Image interface.
func (g *Grid) At(x, y int) color.Color {
	c, ok := g.Get(x, y)
	if !ok {
		return color.NRGBA{}
	}
	return c.Color()
}

// Bounds implements the image.Image interface.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// ColorModel implements the image.Image interface.
func (g *Grid) ColorModel() color.Model {
	return color.NRGBAModel
}
