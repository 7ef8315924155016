// Package quaternion fits unit quaternions to 3×3 rotation candidates and
// provides the small quaternion algebra the transformation library builds on.
//
// Quaternions are stored as [4]float64 in (w, x, y, z) order.
//
// FromRotation is the robust path: it builds the symmetric K-matrix of the
// candidate and takes the eigenvector of its largest eigenvalue, which is
// the quaternion closest to the candidate in the least-squares sense even
// when the candidate is noisy or not orthonormal. FromRotationPrecise is the
// cheap trace-based path for matrices already known to be exact rotations.
//
// Results of both are canonical: w ≥ 0. q and −q encode the same rotation;
// use ApproxEqual to compare up to sign.
package quaternion
