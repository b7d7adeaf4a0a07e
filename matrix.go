package pixelgrid

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a 2D affine transform stored as the top two rows of a 3x3
// matrix:
//
//	| A  B  C |
//	| D  E  F |
//
// A point p maps to (A*p.X + B*p.Y + C, D*p.X + E*p.Y + F). The layout is
// the same as f64.Aff3, so a Matrix converts to x/image without reordering.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// singularDet is the determinant below which Invert gives up.
const singularDet = 1e-12

// Identity returns the transform that maps every point to itself.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a transform that offsets points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a transform that scales points by (x, y) about the origin.
// A negative y flips between Y-down screen space and Y-up world space.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Compose returns the product ms[0] * ms[1] * ... so the last matrix is
// applied first. Compose() is the identity.
func Compose(ms ...Matrix) Matrix {
	out := Identity()
	for _, m := range ms {
		out = out.Multiply(m)
	}
	return out
}

// Multiply returns m * n: n is applied first, then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// Transform maps v through m.
func (m Matrix) Transform(v Vec2) Vec2 {
	return V2(m.A*v.X+m.B*v.Y+m.C, m.D*v.X+m.E*v.Y+m.F)
}

// Invert returns the inverse of m. ok is false when m collapses the plane
// (a zero scale), in which case no point can be mapped back.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < singularDet || math.IsNaN(det) {
		return Matrix{}, false
	}
	r := 1 / det
	return Matrix{
		A: m.E * r,
		B: -m.B * r,
		C: (m.B*m.F - m.E*m.C) * r,
		D: -m.D * r,
		E: m.A * r,
		F: (m.D*m.C - m.A*m.F) * r,
	}, true
}

// Aff3 returns m in the form x/image/draw transforms take.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}
