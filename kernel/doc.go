// Package kernel is the flat-buffer call surface of the transformation
// kernel, the narrow interface a host-language binding sits on.
//
// Every entry point takes row-major []float64 buffers of fixed length
// (4 for a 2×2 matrix or a quaternion, 9 for 3×3, 16 for 4×4), writes its
// result into a caller-supplied destination and returns an error that
// StatusOf maps onto a small set of status codes. Destinations are written
// only on success. Nothing is retained between calls.
//
//	dst := make([]float64, 4)
//	err := kernel.QuaternionFromMatrix(dst, rot9)
//	switch kernel.StatusOf(err) {
//	case kernel.StatusOK:
//	case kernel.StatusDegenerateEigenspace:
//	}
package kernel
