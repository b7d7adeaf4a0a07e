// Package pattern provides procedural painters that fill a pixelgrid.Grid.
package pattern

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gogpu/pixelgrid"
	"github.com/lucasb-eyer/go-colorful"
)

// Errors returned by Lookup.
var (
	// ErrUnknownPattern is returned for a name that no painter is registered under.
	ErrUnknownPattern = errors.New("pattern: unknown pattern")

	// ErrBadColor is returned when a color argument cannot be parsed.
	ErrBadColor = errors.New("pattern: invalid color")
)

// Painter writes colors into every cell of a grid.
type Painter interface {
	Paint(g *pixelgrid.Grid)
}

// PainterFunc adapts an ordinary function to the Painter interface.
type PainterFunc func(g *pixelgrid.Grid)

// Paint calls f(g).
func (f PainterFunc) Paint(g *pixelgrid.Grid) {
	f(g)
}

// Gradient is the demo's default coloring: red grows with x, green grows
// with y, blue is fixed at one half. Channels saturate after 255 cells.
type Gradient struct{}

// Paint implements Painter.
func (Gradient) Paint(g *pixelgrid.Grid) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			g.Set(x, y, pixelgrid.RGB(float64(x)/255, float64(y)/255, 0.5))
		}
	}
}

// Hue sweeps the HSV hue wheel left to right and darkens from the top row to
// the bottom row, down to MinValue.
type Hue struct {
	Saturation float64
	MinValue   float64
}

// DefaultHue returns a fully saturated sweep fading to a quarter brightness.
func DefaultHue() Hue {
	return Hue{Saturation: 1, MinValue: 0.25}
}

// Paint implements Painter.
func (h Hue) Paint(g *pixelgrid.Grid) {
	w, ht := g.Width(), g.Height()
	for y := 0; y < ht; y++ {
		v := 1 - (1-h.MinValue)*fraction(y, ht)
		for x := 0; x < w; x++ {
			c := colorful.Hsv(360*float64(x)/float64(max(w, 1)), h.Saturation, v)
			g.Set(x, y, fromColorful(c, 1))
		}
	}
}

// Blend interpolates From to To across the columns in CIE-L*a*b* space.
// Alpha is interpolated linearly.
type Blend struct {
	From, To pixelgrid.RGBA
}

// Paint implements Painter.
func (b Blend) Paint(g *pixelgrid.Grid) {
	from, to := toColorful(b.From), toColorful(b.To)
	for x := 0; x < g.Width(); x++ {
		t := fraction(x, g.Width())
		c := fromColorful(from.BlendLab(to, t), b.From.A+(b.To.A-b.From.A)*t)
		for y := 0; y < g.Height(); y++ {
			g.Set(x, y, c)
		}
	}
}

// Checker alternates two colors in squares of Size cells.
type Checker struct {
	A, B pixelgrid.RGBA
	Size int
}

// Paint implements Painter. A Size below 1 is treated as 1.
func (c Checker) Paint(g *pixelgrid.Grid) {
	size := max(c.Size, 1)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if (x/size+y/size)%2 == 0 {
				g.Set(x, y, c.A)
			} else {
				g.Set(x, y, c.B)
			}
		}
	}
}

// Solid fills the grid with one color.
type Solid pixelgrid.RGBA

// Paint implements Painter.
func (s Solid) Paint(g *pixelgrid.Grid) {
	g.Fill(pixelgrid.RGBA(s))
}

// Pattern names understood by Lookup.
const (
	NameGradient = "gradient"
	NameHue      = "hue"
	NameBlend    = "blend"
	NameChecker  = "checker"
	NameSolid    = "solid"
)

var defaultColors = []string{"#1d3557", "#e63946"}

type factory func(colors []pixelgrid.RGBA, cell int) Painter

var factories = map[string]factory{
	NameGradient: func([]pixelgrid.RGBA, int) Painter { return Gradient{} },
	NameHue:      func([]pixelgrid.RGBA, int) Painter { return DefaultHue() },
	NameBlend: func(c []pixelgrid.RGBA, _ int) Painter {
		return Blend{From: c[0], To: c[1]}
	},
	NameChecker: func(c []pixelgrid.RGBA, cell int) Painter {
		return Checker{A: c[0], B: c[1], Size: cell}
	},
	NameSolid: func(c []pixelgrid.RGBA, _ int) Painter { return Solid(c[0]) },
}

// Names returns the sorted list of pattern names.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the painter registered under name (case-insensitive).
// colors are hex strings (see pixelgrid.Hex); missing entries fall back to
// a navy/red pair. cell is the square size used by the checker pattern.
// An empty name selects the gradient.
func Lookup(name string, colors []string, cell int) (Painter, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = NameGradient
	}
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownPattern, name, strings.Join(Names(), ", "))
	}

	parsed := make([]pixelgrid.RGBA, len(defaultColors))
	for i := range parsed {
		s := defaultColors[i]
		if i < len(colors) {
			s = colors[i]
		}
		c, ok := pixelgrid.Hex(s)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		parsed[i] = c
	}
	return f(parsed, cell), nil
}

// fraction maps i in [0, n) to [0, 1], with the last index at exactly 1.
func fraction(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func toColorful(c pixelgrid.RGBA) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(c colorful.Color, alpha float64) pixelgrid.RGBA {
	c = c.Clamped()
	return pixelgrid.RGBA2(c.R, c.G, c.B, alpha)
}
