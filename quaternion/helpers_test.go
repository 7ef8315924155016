package quaternion_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/xform/matrix"
	"github.com/katalvlaran/xform/quaternion"
)

// tolRoundTrip bounds the component error of q → R → q for exact rotations.
const tolRoundTrip = 1e-8

// requireQuat fails with a go-cmp diff unless got ≈ want component-wise.
// No sign folding: callers compare canonical forms.
func requireQuat(t testing.TB, want, got quaternion.Quaternion, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("quaternion mismatch (-want +got):\n%s", diff)
	}
}

// MustFromRotation returns FromRotation(r) or fails the test.
func MustFromRotation(t testing.TB, r matrix.Mat3) quaternion.Quaternion {
	t.Helper()
	q, err := quaternion.FromRotation(r)
	if err != nil {
		t.Fatalf("FromRotation(%v): %v", r, err)
	}

	return q
}
