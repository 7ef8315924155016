package eigen

import (
	"math"

	"github.com/katalvlaran/xform/matrix"
)

// GerschgorinBounds returns an interval [lower, upper] containing every
// eigenvalue of t: each diagonal entry ± the magnitudes of its neighbouring
// subdiagonal entries.
// Complexity: O(1).
func GerschgorinBounds(t Tridiagonal) (lower, upper float64) {
	a := t.Diag
	b0, b1, b2 := math.Abs(t.Sub[0]), math.Abs(t.Sub[1]), math.Abs(t.Sub[2])

	lower, upper = a[0]-b0, a[0]+b0
	lower = math.Min(lower, a[1]-b0-b1)
	upper = math.Max(upper, a[1]+b0+b1)
	lower = math.Min(lower, a[2]-b1-b2)
	upper = math.Max(upper, a[2]+b1+b2)
	lower = math.Min(lower, a[3]-b2)
	upper = math.Max(upper, a[3]+b2)

	return lower, upper
}

// LargestEigenvalue returns the largest eigenvalue of t by bisection of its
// Gerschgorin interval.
//
// Implementation:
//   - Stage 1: [lower, upper] = GerschgorinBounds(t).
//   - Stage 2: while upper − lower > matrix.BisectionTolerance, count the
//     eigenvalues below the midpoint with a Sturm pivot recurrence. All four
//     below ⇒ upper = mid, otherwise lower = mid.
//   - Stage 3: return the midpoint.
//
// When the midpoint rounds onto one of the bounds the interval can no longer
// shrink and that midpoint is returned immediately. The result never leaves
// the Gerschgorin interval. NaN input yields NaN.
func LargestEigenvalue(t Tridiagonal) float64 {
	lower, upper := GerschgorinBounds(t)

	var mid float64
	for math.Abs(upper-lower) > matrix.BisectionTolerance {
		mid = (upper + lower) / 2
		if mid == upper || mid == lower {
			return mid
		}
		if pivotsBelow(t, mid) < 4 {
			lower = mid
		} else {
			upper = mid
		}
	}

	return (upper + lower) / 2
}

// pivotsBelow counts the negative pivots of the LDLᵀ factorization of t − x·I,
// which equals the number of eigenvalues of t strictly below x.
// A pivot smaller in magnitude than matrix.BisectionTolerance is replaced by
// the tolerance before it is divided by.
func pivotsBelow(t Tridiagonal, x float64) int {
	a, b := t.Diag, t.Sub

	count := 0
	d := a[0] - x
	for i := 0; i < 4; i++ {
		if i > 0 {
			d = a[i] - x - b[i-1]*b[i-1]/d
		}
		if d < 0 {
			count++
		}
		if math.Abs(d) < matrix.BisectionTolerance {
			d = matrix.BisectionTolerance
		}
	}

	return count
}
