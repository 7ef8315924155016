package eigen

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/katalvlaran/xform/matrix"
)

// Operation tags for error wrapping.
const (
	opEigenvector = "Eigenvector"
	opDominant    = "Dominant"
)

// Candidate produces one eigenvector candidate for a shifted matrix M − λI.
type Candidate func(shifted *matrix.Mat4) matrix.Vec4

// Eigenpair is an eigenvalue with its unit eigenvector, both taken from the
// same matrix.
type Eigenpair struct {
	Value  float64
	Vector matrix.Vec4
}

// Candidates returns the ordered candidate strategies Eigenvector tries:
// rows 0, 1, 2 and 3 of the adjugate of the shifted matrix. For a rank-3
// symmetric matrix every adjugate row is a multiple of the null vector; a
// row vanishes when the null vector has a (near) zero component at that
// index, which is why the later rows exist.
// The returned slice is fresh; callers may reorder it.
func Candidates() []Candidate {
	return []Candidate{
		adjugateRow(0),
		adjugateRow(1),
		adjugateRow(2),
		adjugateRow(3),
	}
}

// adjugateRow returns the candidate whose j-th component is the cofactor
// (−1)^(k+j)·det(M without row k and column j).
func adjugateRow(k int) Candidate {
	return func(m *matrix.Mat4) matrix.Vec4 {
		var rows [3]int
		r := 0
		for i := 0; i < 4; i++ {
			if i != k {
				rows[r] = i
				r++
			}
		}

		var v matrix.Vec4
		for j := 0; j < 4; j++ {
			c := minor3(m, rows, j)
			if (k+j)%2 == 1 {
				c = -c
			}
			v[j] = c
		}

		return v
	}
}

// minor3 is the determinant of the 3×3 submatrix of m on rows, skipping column skip.
func minor3(m *matrix.Mat4, rows [3]int, skip int) float64 {
	var cols [3]int
	c := 0
	for j := 0; j < 4; j++ {
		if j != skip {
			cols[c] = j
			c++
		}
	}

	return matrix.Det3(matrix.Mat3{
		m.At(rows[0], cols[0]), m.At(rows[0], cols[1]), m.At(rows[0], cols[2]),
		m.At(rows[1], cols[0]), m.At(rows[1], cols[1]), m.At(rows[1], cols[2]),
		m.At(rows[2], cols[0]), m.At(rows[2], cols[1]), m.At(rows[2], cols[2]),
	})
}

// acceptThreshold is the squared norm a candidate must exceed:
// ((M00·M11·M22·M33 − M01²·M23²)·EigenvectorScale)², floored at matrix.Epsilon.
func acceptThreshold(m *matrix.Mat4) float64 {
	eps := (m[0]*m[5]*m[10]*m[15] - m[1]*m[1]*m[11]*m[11]) * matrix.EigenvectorScale
	eps *= eps
	if eps < matrix.Epsilon {
		eps = matrix.Epsilon
	}

	return eps
}

// Eigenvector returns the unit null vector of a shifted symmetric matrix
// M − λI, i.e. the eigenvector of M for the eigenvalue λ.
//
// Implementation:
//   - Stage 1: compute the acceptance threshold from shifted.
//   - Stage 2: evaluate Candidates() in order; the first whose squared norm
//     exceeds the threshold is normalized and returned.
//
// Errors: matrix.ErrDegenerateEigenspace when no candidate qualifies, e.g.
// when λ is a repeated eigenvalue or shifted is the zero matrix.
// The sign of the result is not normalized.
//
// Scale: the acceptance threshold is floored at matrix.Epsilon in absolute
// terms. A candidate is a cubic in the matrix entries, so well-conditioned
// matrices with entries around 1e-4 or smaller are reported as degenerate.
// Rescale such inputs towards unit magnitude first; eigenvectors are
// scale-invariant.
func Eigenvector(shifted matrix.Mat4) (matrix.Vec4, error) {
	return eigenvectorWith(&shifted, Candidates())
}

// EigenvectorOf shifts a copy of m by −λI and returns its null vector.
// m itself is not modified.
func EigenvectorOf(m matrix.Mat4, lambda float64) (matrix.Vec4, error) {
	m.AddDiagonal(-lambda)

	return eigenvectorWith(&m, Candidates())
}

// eigenvectorWith runs the candidate cascade over an explicit strategy list.
func eigenvectorWith(shifted *matrix.Mat4, candidates []Candidate) (matrix.Vec4, error) {
	eps := acceptThreshold(shifted)

	var v matrix.Vec4
	var n float64
	for _, candidate := range candidates {
		v = candidate(shifted)
		n = vecmath.DotProduct(v[:], v[:])
		if n > eps {
			vecmath.ScaleBlockInPlace(v[:], 1/math.Sqrt(n))
			return v, nil
		}
	}

	return matrix.Vec4{}, fmt.Errorf("%s: %d candidates below %g: %w",
		opEigenvector, len(candidates), eps, matrix.ErrDegenerateEigenspace)
}

// Dominant returns the largest eigenvalue of the symmetric matrix m and its
// unit eigenvector.
//
// Implementation:
//   - Stage 1: copy m into a scratch buffer and Tridiagonalize it.
//   - Stage 2: λ = LargestEigenvalue of the tridiagonal form.
//   - Stage 3: eigenvector from the untouched original, shifted by −λI.
//
// Errors: matrix.ErrDegenerateEigenspace (wrapped) from Stage 3. The
// absolute scale limit of Eigenvector applies: multiply m by a constant to
// bring its entries near 1, then divide the returned Value by it.
func Dominant(m matrix.Mat4) (Eigenpair, error) {
	scratch := m // arrays copy on assignment
	lambda := LargestEigenvalue(Tridiagonalize(&scratch))

	v, err := EigenvectorOf(m, lambda)
	if err != nil {
		return Eigenpair{Value: lambda}, fmt.Errorf("%s: %w", opDominant, err)
	}

	return Eigenpair{Value: lambda, Vector: v}, nil
}
