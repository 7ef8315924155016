// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for input checks.
//   - Keep kernels minimal by delegating length/finite/symmetry checks here.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     wrap once more with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check scans the strict upper triangle only.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateBufLen ensures a flat buffer is non-nil and has exactly n entries.
// Returns ErrNilMatrix for a nil buffer, ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateBufLen(buf []float64, n int) error {
	if buf == nil {
		return validatorErrorf("ValidateBufLen", ErrNilMatrix)
	}
	if len(buf) != n {
		return validatorErrorf("ValidateBufLen", fmt.Errorf("len %d, want %d: %w", len(buf), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateFinite ensures every value is finite.
// Returns ErrNaNInf on the first NaN or ±Inf, scanning in index order.
// Complexity: O(len(vals)).
func ValidateFinite(vals []float64) error {
	for i, v := range vals {
		if isNonFinite(v) {
			return validatorErrorf("ValidateFinite", fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}

// ValidateSymmetric4 checks |M[i][j] − M[j][i]| ≤ tol for all i < j.
// A negative tol is treated as its absolute value; a non-finite tol is a
// numeric policy violation (ErrNaNInf).
// Complexity: O(1) (six comparisons).
func ValidateSymmetric4(m *Mat4, tol float64) error {
	if m == nil {
		return validatorErrorf("ValidateSymmetric4", ErrNilMatrix)
	}
	if isNonFinite(tol) {
		return validatorErrorf("ValidateSymmetric4", ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}

	var i, j int
	var d float64
	for i = 0; i < 4; i++ {
		for j = i + 1; j < 4; j++ {
			d = m[i*4+j] - m[j*4+i]
			if d > tol || -d > tol {
				return validatorErrorf("ValidateSymmetric4", fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// validateInput applies the opt-in finite check of o to vals.
func validateInput(o Options, vals []float64) error {
	if !o.validateNaNInf {
		return nil
	}

	return ValidateFinite(vals)
}
