package eigen

import (
	"math"

	"github.com/katalvlaran/xform/matrix"
)

// Tridiagonal is a symmetric tridiagonal 4×4 matrix: Diag holds the main
// diagonal, Sub the first sub-(and super-)diagonal.
type Tridiagonal struct {
	Diag [4]float64
	Sub  [3]float64
}

// Tridiagonalize reduces the symmetric matrix in scratch to tridiagonal form
// by two Householder reflections and returns the diagonal and subdiagonal.
//
// Implementation:
//   - Stage 1: reflect rows/cols 1..3 so column 0 is zero below row 1.
//   - Stage 2: reflect rows/cols 2..3 so column 1 is zero below row 2.
//
// Each stage is skipped when the norm of the column part it would reflect is
// at most matrix.Epsilon (a NaN norm is reflected, so it spreads). The Householder vector's leading component takes
// the sign of the pivot, so u₀ = x₀ + sign(x₀)·‖x‖ never cancels.
//
// scratch is overwritten: only its diagonal and first super-diagonal are
// meaningful afterwards. Only the upper triangle is read. Non-finite entries
// propagate into the result.
func Tridiagonalize(scratch *matrix.Mat4) Tridiagonal {
	m := scratch

	// Stage 1: x = (m01, m02, m03), trailing block rows/cols 1..3.
	x0, x1, x2 := m[1], m[2], m[3]
	t := x1*x1 + x2*x2
	n := math.Sqrt(x0*x0 + t)
	if n > matrix.Epsilon || math.IsNaN(n) {
		if x0 < 0 {
			n = -n
		}
		u0, u1, u2 := x0+n, x1, x2
		h := (u0*u0 + t) / 2 // uᵀu/2

		// p = B·u/h
		p0 := (m[5]*u0 + m[6]*u1 + m[7]*u2) / h
		p1 := (m[6]*u0 + m[10]*u1 + m[11]*u2) / h
		p2 := (m[7]*u0 + m[11]*u1 + m[15]*u2) / h

		// q = p − (uᵀp/2h)·u, then B' = B − u·qᵀ − q·uᵀ
		g := (u0*p0 + u1*p1 + u2*p2) / (2 * h)
		p0 -= g * u0
		p1 -= g * u1
		p2 -= g * u2

		m[5] -= 2 * p0 * u0
		m[10] -= 2 * p1 * u1
		m[15] -= 2 * p2 * u2
		m[6] -= p1*u0 + p0*u1
		m[7] -= p2*u0 + p0*u2
		m[11] -= p2*u1 + p1*u2
		m[1] = -n
	}

	// Stage 2: x = (m12, m13), trailing block rows/cols 2..3.
	x0, x1 = m[6], m[7]
	t = x1 * x1
	n = math.Sqrt(x0*x0 + t)
	if n > matrix.Epsilon || math.IsNaN(n) {
		if x0 < 0 {
			n = -n
		}
		u0, u1 := x0+n, x1
		h := (u0*u0 + t) / 2

		p0 := (m[10]*u0 + m[11]*u1) / h
		p1 := (m[11]*u0 + m[15]*u1) / h

		g := (u0*p0 + u1*p1) / (2 * h)
		p0 -= g * u0
		p1 -= g * u1

		m[10] -= 2 * p0 * u0
		m[15] -= 2 * p1 * u1
		m[11] -= p1*u0 + p0*u1
		m[6] = -n
	}

	return Tridiagonal{
		Diag: [4]float64{m[0], m[5], m[10], m[15]},
		Sub:  [3]float64{m[1], m[6], m[11]},
	}
}

// Matrix expands t back into a dense symmetric 4×4 matrix.
func (t Tridiagonal) Matrix() matrix.Mat4 {
	d, s := t.Diag, t.Sub

	return matrix.Mat4{
		d[0], s[0], 0, 0,
		s[0], d[1], s[1], 0,
		0, s[1], d[2], s[2],
		0, 0, s[2], d[3],
	}
}
