// SPDX-License-Identifier: MIT
// Package matrix: closed-form inverses for 2×2, 3×3 and 4×4 matrices.
//
// All three inverters follow the same contract:
//
//	Stage 1 (Validate): optional finite check (WithValidateNaNInf).
//	Stage 2 (Determinant): closed-form det; |det| < eps ⇒ ErrSingular.
//	Stage 3 (Adjugate): signed cofactors, transposed, scaled by 1/det.
//
// Results are exact formulas, not Gaussian elimination. They are accurate
// for well-conditioned input; near the singularity threshold callers must
// not expect backward stability.
package matrix

// Inverse2 returns the inverse of a 2×2 matrix.
// Errors: ErrSingular when |det| < eps; ErrNaNInf under WithValidateNaNInf.
// Complexity: O(1).
func Inverse2(m Mat2, opts ...Option) (Mat2, error) {
	o := NewOptions(opts...)
	if err := validateInput(o, m[:]); err != nil {
		return Mat2{}, matrixErrorf(opInverse2, err)
	}

	det := Det2(m)
	if singular(det, o.eps) {
		return Mat2{}, matrixErrorf(opInverse2, ErrSingular)
	}
	inv := 1.0 / det

	return Mat2{
		m[3] * inv, -m[1] * inv,
		-m[2] * inv, m[0] * inv,
	}, nil
}

// Inverse3 returns the inverse of a 3×3 matrix.
// Errors: ErrSingular when |det| < eps; ErrNaNInf under WithValidateNaNInf.
// Complexity: O(1).
func Inverse3(m Mat3, opts ...Option) (Mat3, error) {
	o := NewOptions(opts...)
	if err := validateInput(o, m[:]); err != nil {
		return Mat3{}, matrixErrorf(opInverse3, err)
	}

	// cofactors of the first row double as the determinant expansion
	c00 := m[4]*m[8] - m[5]*m[7]
	c01 := m[5]*m[6] - m[3]*m[8]
	c02 := m[3]*m[7] - m[4]*m[6]

	det := m[0]*c00 + m[1]*c01 + m[2]*c02
	if singular(det, o.eps) {
		return Mat3{}, matrixErrorf(opInverse3, ErrSingular)
	}
	inv := 1.0 / det

	return Mat3{
		c00 * inv,
		(m[2]*m[7] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,

		c01 * inv,
		(m[0]*m[8] - m[2]*m[6]) * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,

		c02 * inv,
		(m[1]*m[6] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[1]*m[3]) * inv,
	}, nil
}

// Inverse4 returns the inverse of a 4×4 matrix.
//
// Implementation:
//   - Stage 1: twelve products of the upper row pair give its six 2×2 minors
//     s; twelve products of the lower row pair give the six minors c.
//   - Stage 2: det = Σ ±s·c (Laplace expansion by complementary minors).
//   - Stage 3: the c minors feed the first two result columns, the s minors
//     the last two, each entry being a three-term cofactor.
//
// Errors: ErrSingular when |det| < eps (same threshold as 2×2 and 3×3);
// ErrNaNInf under WithValidateNaNInf.
// Complexity: O(1), 24 products for the minors.
func Inverse4(m Mat4, opts ...Option) (Mat4, error) {
	o := NewOptions(opts...)
	if err := validateInput(o, m[:]); err != nil {
		return Mat4{}, matrixErrorf(opInverse4, err)
	}

	s, c := pairMinors(&m)
	det := detFromMinors(&s, &c)
	if singular(det, o.eps) {
		return Mat4{}, matrixErrorf(opInverse4, ErrSingular)
	}
	inv := 1.0 / det

	return Mat4{
		(m[5]*c[5] - m[6]*c[4] + m[7]*c[3]) * inv,
		(-m[1]*c[5] + m[2]*c[4] - m[3]*c[3]) * inv,
		(m[13]*s[5] - m[14]*s[4] + m[15]*s[3]) * inv,
		(-m[9]*s[5] + m[10]*s[4] - m[11]*s[3]) * inv,

		(-m[4]*c[5] + m[6]*c[2] - m[7]*c[1]) * inv,
		(m[0]*c[5] - m[2]*c[2] + m[3]*c[1]) * inv,
		(-m[12]*s[5] + m[14]*s[2] - m[15]*s[1]) * inv,
		(m[8]*s[5] - m[10]*s[2] + m[11]*s[1]) * inv,

		(m[4]*c[4] - m[5]*c[2] + m[7]*c[0]) * inv,
		(-m[0]*c[4] + m[1]*c[2] - m[3]*c[0]) * inv,
		(m[12]*s[4] - m[13]*s[2] + m[15]*s[0]) * inv,
		(-m[8]*s[4] + m[9]*s[2] - m[11]*s[0]) * inv,

		(-m[4]*c[3] + m[5]*c[1] - m[6]*c[0]) * inv,
		(m[0]*c[3] - m[1]*c[1] + m[2]*c[0]) * inv,
		(-m[12]*s[3] + m[13]*s[1] - m[14]*s[0]) * inv,
		(m[8]*s[3] - m[9]*s[1] + m[10]*s[0]) * inv,
	}, nil
}

// pairMinors returns the six 2×2 minors of rows (0,1) and of rows (2,3),
// ordered by column pair (0,1) (0,2) (0,3) (1,2) (1,3) (2,3).
func pairMinors(m *Mat4) (s, c [6]float64) {
	s[0] = m[0]*m[5] - m[4]*m[1]
	s[1] = m[0]*m[6] - m[4]*m[2]
	s[2] = m[0]*m[7] - m[4]*m[3]
	s[3] = m[1]*m[6] - m[5]*m[2]
	s[4] = m[1]*m[7] - m[5]*m[3]
	s[5] = m[2]*m[7] - m[6]*m[3]

	c[0] = m[8]*m[13] - m[12]*m[9]
	c[1] = m[8]*m[14] - m[12]*m[10]
	c[2] = m[8]*m[15] - m[12]*m[11]
	c[3] = m[9]*m[14] - m[13]*m[10]
	c[4] = m[9]*m[15] - m[13]*m[11]
	c[5] = m[10]*m[15] - m[14]*m[11]

	return s, c
}

// detFromMinors pairs each upper minor with its complementary lower minor.
func detFromMinors(s, c *[6]float64) float64 {
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// singular reports |det| < eps. NaN determinants are not singular: they
// propagate into the result, the kernel's documented non-finite policy.
func singular(det, eps float64) bool {
	return det < eps && -det < eps
}
