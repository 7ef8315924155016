// Package matrix provides fixed-size, row-major matrix kernels for the
// transformation library: 2×2, 3×3 and 4×4 value types, closed-form
// inverses with singularity detection, products, determinants and the
// rotation helpers the quaternion driver is tested against.
//
// Matrices are plain arrays (Mat2 is [4]float64, Mat3 is [9]float64,
// Mat4 is [16]float64). They live on the stack, copy on assignment and are
// never retained by the package, so every function is reentrant and safe for
// concurrent use as long as callers do not share output buffers.
//
// The numeric thresholds used across the kernel (Epsilon,
// BisectionTolerance, EigenvectorScale) are declared once in constants.go.
// Sentinel errors live in errors.go and are matched with errors.Is.
//
// Sizes other than N ∈ {2,3,4} are intentionally not supported.
package matrix
