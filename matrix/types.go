// SPDX-License-Identifier: MIT

// Package matrix: fixed-size value types.
// This file contains ONLY the array types and their trivial constructors and
// accessors; arithmetic lives in ops.go and inverse.go.
package matrix

// Mat2 is a 2×2 matrix in row-major order: [m00 m01 m10 m11].
type Mat2 [Len2]float64

// Mat3 is a 3×3 matrix in row-major order.
type Mat3 [Len3]float64

// Mat4 is a 4×4 matrix in row-major order.
type Mat4 [Len4]float64

// Vec4 is a 4-component column vector.
type Vec4 [4]float64

// Identity2 returns the 2×2 identity.
func Identity2() Mat2 { return Mat2{1, 0, 0, 1} }

// Identity3 returns the 3×3 identity.
func Identity3() Mat3 { return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1} }

// Identity4 returns the 4×4 identity.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns m[i][j]. Indices are not checked beyond the array bounds.
func (m *Mat2) At(i, j int) float64 { return m[i*2+j] }

// At returns m[i][j].
func (m *Mat3) At(i, j int) float64 { return m[i*3+j] }

// At returns m[i][j].
func (m *Mat4) At(i, j int) float64 { return m[i*4+j] }

// Set assigns m[i][j] = v.
func (m *Mat4) Set(i, j int, v float64) { m[i*4+j] = v }

// AddDiagonal adds s to every diagonal entry of m in place.
// The eigen solver uses it to form the shifted matrix M − λI.
func (m *Mat4) AddDiagonal(s float64) {
	m[0] += s
	m[5] += s
	m[10] += s
	m[15] += s
}

// UpperLeft3 extracts the upper-left 3×3 block of a homogeneous 4×4 matrix.
func UpperLeft3(m Mat4) Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}
