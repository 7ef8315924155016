// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// kernel (matrix, eigen, quaternion, kernel). Algorithms return these
// sentinels wrapped with an operation tag, tests check them via errors.Is.
// No kernel panics on user-triggered error conditions; panics are reserved
// for nonsensical option values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it greps the same in every
// package that re-uses it. Wrap with an op tag ("Inverse4: matrix: ...") at
// the boundary; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/length -> NaN/Inf (opt-in) -> asymmetry (opt-in) -> numeric failure.

var (
	// ErrSingular is returned when |det| falls below the singularity
	// epsilon during a closed-form inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDegenerateEigenspace is returned when none of the adjugate-row
	// candidates of a shifted symmetric 4×4 matrix clears its norm threshold.
	ErrDegenerateEigenspace = errors.New("matrix: degenerate eigenspace")

	// ErrDimensionMismatch indicates a flat buffer of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates a nil buffer or nil matrix pointer.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf entry when finite-value validation is
	// enabled (WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotConverged is returned when an iterative solver exhausts its
	// iteration budget before meeting its tolerance.
	ErrNotConverged = errors.New("matrix: iteration did not converge")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry beyond the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")
)

// Operation tags for uniform error wrapping.
const (
	opInverse2 = "Inverse2"
	opInverse3 = "Inverse3"
	opInverse4 = "Inverse4"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
