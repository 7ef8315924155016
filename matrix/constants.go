// SPDX-License-Identifier: MIT

package matrix

// Numeric thresholds shared by the inverters and the eigen solver.
const (
	// Epsilon is four times the float64 machine epsilon (4·2⁻⁵²).
	// Determinants below it are treated as singular, Householder columns
	// with a norm below it are treated as already reduced, and it floors the
	// eigenvector acceptance threshold.
	Epsilon = 8.8817841970012523e-16

	// BisectionTolerance is both the interval width at which the eigenvalue
	// bisection stops and the clamp applied to near-zero Sturm pivots.
	BisectionTolerance = 1e-18

	// EigenvectorScale scales the determinant estimate of a shifted matrix
	// into the squared-norm threshold an adjugate row must clear.
	EigenvectorScale = 1e-6
)

// Buffer lengths of the row-major value types.
const (
	Len2 = 4
	Len3 = 9
	Len4 = 16
)

const (
	// JacobiTolerance is the default off-diagonal magnitude below which the
	// Jacobi solver stops.
	JacobiTolerance = 1e-14

	// JacobiMaxRotations caps the number of plane rotations of one Jacobi
	// run. A symmetric 4×4 matrix typically needs fewer than 30.
	JacobiMaxRotations = 100
)
