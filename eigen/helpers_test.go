package eigen_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/xform/matrix"
)

// randSymmetric returns a symmetric 4×4 matrix with entries in [-1, 1).
func randSymmetric(rng *rand.Rand) matrix.Mat4 {
	var m matrix.Mat4
	for i := 0; i < 4; i++ {
		for j := i; j < 4; j++ {
			v := 2*rng.Float64() - 1
			m.Set(i, j, v)
			m.Set(j, i, v)
		}
	}

	return m
}

// residual returns ‖M·v − λ·v‖₂.
func residual(m matrix.Mat4, lambda float64, v matrix.Vec4) float64 {
	mv := matrix.MulVec4(m, v)
	var s float64
	for i := range mv {
		d := mv[i] - lambda*v[i]
		s += d * d
	}

	return math.Sqrt(s)
}

func norm(v matrix.Vec4) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3])
}

func frobenius(m matrix.Mat4) float64 {
	var s float64
	for _, v := range m {
		s += v * v
	}

	return math.Sqrt(s)
}

// pathGraph is the tridiagonal [2 1; 1 2 1; 1 2 1; 1 2] with eigenvalues
// 2 + 2·cos(kπ/5), k = 1..4.
var pathGraph = matrix.Mat4{
	2, 1, 0, 0,
	1, 2, 1, 0,
	0, 1, 2, 1,
	0, 0, 1, 2,
}

// pathGraphMax is its largest eigenvalue, 2 + 2·cos(π/5).
var pathGraphMax = 2 + 2*math.Cos(math.Pi/5)

// requireVecClose fails with a go-cmp diff unless got ≈ want entrywise.
func requireVecClose(t testing.TB, want, got matrix.Vec4, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}
