package eigen

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/xform/matrix"
)

const opJacobi = "Jacobi"

// Spectrum is a full eigendecomposition of a symmetric 4×4 matrix.
// Values are sorted in descending order; column i of Vectors is the unit
// eigenvector of Values[i].
type Spectrum struct {
	Values  [4]float64
	Vectors matrix.Mat4
}

// Vector returns column i of s.Vectors.
func (s *Spectrum) Vector(i int) matrix.Vec4 {
	return matrix.Vec4{s.Vectors[i], s.Vectors[4+i], s.Vectors[8+i], s.Vectors[12+i]}
}

// Jacobi computes all eigenvalues and eigenvectors of the symmetric matrix m
// by classical Jacobi rotations. It is slower than Dominant and does not
// fail on repeated eigenvalues, which makes it a diagnostic for inputs that
// Dominant rejects.
//
// Implementation:
//   - Stage 1: validate symmetry of m within tol.
//   - Stage 2: repeatedly pick the largest off-diagonal |A[p][q]| and apply
//     the plane rotation that zeroes it, accumulating rotations into V.
//   - Stage 3: stop once no off-diagonal entry exceeds tol; sort.
//
// Errors:
//   - matrix.ErrAsymmetry if |m[i][j] − m[j][i]| > tol.
//   - matrix.ErrNotConverged after maxRotations rotations.
//   - matrix.ErrNaNInf when an off-diagonal entry is or becomes NaN or ±Inf.
//     Non-finite diagonal entries with a finite off-diagonal part are
//     returned as eigenvalues unchanged.
//
// Complexity: O(1) per rotation for the fixed size; quadratic convergence.
func Jacobi(m matrix.Mat4, tol float64, maxRotations int) (Spectrum, error) {
	if err := matrix.ValidateSymmetric4(&m, tol); err != nil {
		return Spectrum{}, fmt.Errorf("%s: %w", opJacobi, err)
	}

	a := m
	v := matrix.Identity4()

	var (
		p, q          int
		maxOff        float64
		app, aqq, apq float64
		theta, t      float64
		c, s          float64
		arp, arq      float64
	)
	for rot := 0; ; rot++ {
		maxOff, p, q = largestOffDiagonal(&a)
		if math.IsNaN(maxOff) || math.IsInf(maxOff, 0) {
			return Spectrum{}, fmt.Errorf("%s: off-diagonal (%d,%d) after %d rotations: %w",
				opJacobi, p, q, rot, matrix.ErrNaNInf)
		}
		if maxOff <= tol {
			break
		}
		if rot == maxRotations {
			return Spectrum{}, fmt.Errorf("%s: off-diagonal %g after %d rotations: %w",
				opJacobi, maxOff, maxRotations, matrix.ErrNotConverged)
		}

		app, aqq, apq = a.At(p, p), a.At(q, q), a.At(p, q)
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for r := 0; r < 4; r++ {
			if r == p || r == q {
				continue
			}
			arp, arq = a.At(r, p), a.At(r, q)
			a.Set(r, p, c*arp-s*arq)
			a.Set(p, r, c*arp-s*arq)
			a.Set(r, q, s*arp+c*arq)
			a.Set(q, r, s*arp+c*arq)
		}
		a.Set(p, p, app-t*apq)
		a.Set(q, q, aqq+t*apq)
		a.Set(p, q, 0)
		a.Set(q, p, 0)

		for r := 0; r < 4; r++ {
			arp, arq = v.At(r, p), v.At(r, q)
			v.Set(r, p, c*arp-s*arq)
			v.Set(r, q, s*arp+c*arq)
		}
	}

	return sortedSpectrum(&a, &v), nil
}

// largestOffDiagonal returns max |a[i][j]| over i < j and its position.
// A NaN entry is returned as soon as it is seen.
func largestOffDiagonal(a *matrix.Mat4) (float64, int, int) {
	best, p, q := -1.0, 0, 1
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			off := math.Abs(a.At(i, j))
			if math.IsNaN(off) {
				return off, i, j
			}
			if off > best {
				best, p, q = off, i, j
			}
		}
	}

	return best, p, q
}

// sortedSpectrum orders the diagonal of a descending and permutes the
// columns of v to match.
func sortedSpectrum(a, v *matrix.Mat4) Spectrum {
	order := [4]int{0, 1, 2, 3}
	sort.SliceStable(order[:], func(i, j int) bool {
		return a.At(order[i], order[i]) > a.At(order[j], order[j])
	})

	var out Spectrum
	for k, src := range order {
		out.Values[k] = a.At(src, src)
		for r := 0; r < 4; r++ {
			out.Vectors.Set(r, k, v.At(r, src))
		}
	}

	return out
}
