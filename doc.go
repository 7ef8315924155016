// Package xform is a small transformation kernel: fixed-size matrix
// inverses and the symmetric 4×4 eigen solver that fits unit quaternions to
// (possibly noisy) rotation matrices.
//
// 🚀 What is inside?
//
//	matrix/       Mat2/Mat3/Mat4 value types, closed-form inverses, products,
//	              sentinel errors, numeric-policy options, validators
//	eigen/        Householder tridiagonalization, Sturm bisection for the
//	              largest eigenvalue, adjugate-row eigenvectors, Jacobi
//	quaternion/   K-matrix driver (FromRotation), trace fast path, axis-angle,
//	              uniform random sampling, Hamilton algebra
//	kernel/       flat []float64 call surface with status codes for bindings
//	cmd/quatfit   fit, invert and spectrum subcommands
//	examples/     runnable scenarios
//
// ✨ Why?
//
//   - Pure Go, stack-only arithmetic: every call is reentrant.
//   - Deterministic: fixed loop orders, named thresholds, no global state.
//   - Explicit failures: ErrSingular, ErrDegenerateEigenspace via errors.Is.
//
// Quick example:
//
//	r := matrix.RotationAbout(r3.Vector{Z: 1}, 90*s1.Degree)
//	q, err := quaternion.FromRotation(r) // ≈ (0.7071, 0, 0, 0.7071)
//
//	go get github.com/katalvlaran/xform
package xform
