// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy shared by
// the inverters, the quaternion driver and the flat-buffer facade.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - NewOptions, the single resolution entry point.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Defaults reproduce the bare kernel exactly: singularity threshold is
//     Epsilon, non-finite input is NOT rejected (it propagates), symmetry is
//     NOT checked. Callers opt in to stricter policies per call.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the singularity threshold for |det|.
	DefaultEpsilon = Epsilon

	// DefaultValidateNaNInf toggles finite-value validation of inputs.
	// Off by default: NaN/Inf propagate silently into the result.
	DefaultValidateNaNInf = false

	// DefaultValidateSymmetry toggles the symmetry check on 4×4 inputs of the
	// eigen routines exposed through the flat-buffer facade.
	DefaultValidateSymmetry = false

	// DefaultSymmetryTolerance bounds |M[i][j] − M[j][i]| when symmetry is checked.
	DefaultSymmetryTolerance = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicSymmetryTolInval = "matrix: WithSymmetryTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	eps              float64 // >= 0; DefaultEpsilon
	validateNaNInf   bool    // DefaultValidateNaNInf
	validateSymmetry bool    // DefaultValidateSymmetry
	symTol           float64 // >= 0; DefaultSymmetryTolerance
}

// WithEpsilon sets the singularity threshold used by Inverse2/3/4.
// Panics when eps is negative, NaN or ±Inf.
//
// Notes:
//   - The threshold is absolute, not relative to the matrix scale.
//     Matrices with tiny entries need a matching smaller eps.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables finite-value validation: any NaN or ±Inf entry
// in an input makes the call fail with ErrNaNInf before any arithmetic.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithValidateSymmetry enables the symmetry check on symmetric-4×4 inputs.
func WithValidateSymmetry() Option {
	return func(o *Options) { o.validateSymmetry = true }
}

// WithSymmetryTolerance sets the tolerance of the symmetry check and enables it.
// Panics when tol is negative, NaN or ±Inf.
func WithSymmetryTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicSymmetryTolInval)
	}

	return func(o *Options) {
		o.symTol = tol
		o.validateSymmetry = true
	}
}

// NewOptions resolves option setters against the documented defaults.
// Setters apply in order; the last writer wins.
// Complexity: O(k) for k = len(opts).
func NewOptions(opts ...Option) Options {
	o := Options{
		eps:              DefaultEpsilon,
		validateNaNInf:   DefaultValidateNaNInf,
		validateSymmetry: DefaultValidateSymmetry,
		symTol:           DefaultSymmetryTolerance,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// Epsilon returns the effective singularity threshold.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether non-finite input must be rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ValidateSymmetry reports whether symmetric-4×4 inputs must be checked.
func (o Options) ValidateSymmetry() bool { return o.validateSymmetry }

// SymmetryTolerance returns the tolerance of the symmetry check.
func (o Options) SymmetryTolerance() float64 { return o.symTol }

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
