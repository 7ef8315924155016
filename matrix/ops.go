// SPDX-License-Identifier: MIT

package matrix

import "math"

// Mul2 returns the product a·b.
func Mul2(a, b Mat2) Mat2 {
	return Mat2{
		a[0]*b[0] + a[1]*b[2], a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2], a[2]*b[1] + a[3]*b[3],
	}
}

// Mul3 returns the product a·b.
// Loop order i→j→k is fixed, so results are bitwise reproducible.
func Mul3(a, b Mat3) Mat3 {
	var out Mat3
	var i, j, k int
	var acc float64
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			acc = 0
			for k = 0; k < 3; k++ {
				acc += a[i*3+k] * b[k*3+j]
			}
			out[i*3+j] = acc
		}
	}

	return out
}

// Mul4 returns the product a·b.
func Mul4(a, b Mat4) Mat4 {
	var out Mat4
	var i, j, k int
	var acc float64
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			acc = 0
			for k = 0; k < 4; k++ {
				acc += a[i*4+k] * b[k*4+j]
			}
			out[i*4+j] = acc
		}
	}

	return out
}

// MulVec4 returns m·v.
func MulVec4(m Mat4, v Vec4) Vec4 {
	var out Vec4
	var i int
	for i = 0; i < 4; i++ {
		out[i] = m[i*4]*v[0] + m[i*4+1]*v[1] + m[i*4+2]*v[2] + m[i*4+3]*v[3]
	}

	return out
}

// Transpose3 returns mᵀ.
func Transpose3(m Mat3) Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Transpose4 returns mᵀ.
func Transpose4(m Mat4) Mat4 {
	var out Mat4
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			out[j*4+i] = m[i*4+j]
		}
	}

	return out
}

// Det2 returns the determinant of m.
func Det2(m Mat2) float64 { return m[0]*m[3] - m[1]*m[2] }

// Det3 returns the determinant of m by expansion along the first row.
func Det3(m Mat3) float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Det4 returns the determinant of m via the Laplace expansion over the
// 2×2 minors of the upper and lower row pairs.
func Det4(m Mat4) float64 {
	s, c := pairMinors(&m)

	return detFromMinors(&s, &c)
}

// AllClose reports whether |a[i] − b[i]| ≤ tol for every i.
// Slices of different lengths are never close; NaN is never close to anything.
func AllClose(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= tol) {
			return false
		}
	}

	return true
}
