// SPDX-License-Identifier: MIT
// Package matrix_test: shared helpers for the fixed-size matrix tests.
//
// Purpose:
//   - Keep test bodies short: Must* wrappers fail the test on error.
//   - Deterministic inputs: every random matrix comes from a seeded *rand.Rand.
//   - Approximate comparison through go-cmp so failures print a full diff.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/xform/matrix"
)

// tolRoundTrip bounds |M·M⁻¹ − I| for the well-conditioned random inputs below.
const tolRoundTrip = 1e-10

// MustInverse2 returns Inverse2(m) or fails the test.
func MustInverse2(t testing.TB, m matrix.Mat2) matrix.Mat2 {
	t.Helper()
	inv, err := matrix.Inverse2(m)
	if err != nil {
		t.Fatalf("Inverse2(%v): %v", m, err)
	}

	return inv
}

// MustInverse3 returns Inverse3(m) or fails the test.
func MustInverse3(t testing.TB, m matrix.Mat3) matrix.Mat3 {
	t.Helper()
	inv, err := matrix.Inverse3(m)
	if err != nil {
		t.Fatalf("Inverse3(%v): %v", m, err)
	}

	return inv
}

// MustInverse4 returns Inverse4(m) or fails the test.
func MustInverse4(t testing.TB, m matrix.Mat4) matrix.Mat4 {
	t.Helper()
	inv, err := matrix.Inverse4(m)
	if err != nil {
		t.Fatalf("Inverse4(%v): %v", m, err)
	}

	return inv
}

// fillRand fills dst with uniform values in [-1, 1) and adds bias to every
// diagonal entry of the n×n matrix it represents. A bias of n keeps the
// matrix strictly diagonally dominant, hence invertible and well conditioned.
func fillRand(rng *rand.Rand, dst []float64, n int, bias float64) {
	for i := range dst {
		dst[i] = 2*rng.Float64() - 1
	}
	for i := 0; i < n; i++ {
		dst[i*n+i] += bias
	}
}

func randMat2(rng *rand.Rand) matrix.Mat2 {
	var m matrix.Mat2
	fillRand(rng, m[:], 2, 2)

	return m
}

func randMat3(rng *rand.Rand) matrix.Mat3 {
	var m matrix.Mat3
	fillRand(rng, m[:], 3, 3)

	return m
}

func randMat4(rng *rand.Rand) matrix.Mat4 {
	var m matrix.Mat4
	fillRand(rng, m[:], 4, 4)

	return m
}

// requireClose fails the test with a go-cmp diff unless got ≈ want within tol.
func requireClose(t testing.TB, want, got []float64, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
