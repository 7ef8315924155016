package quaternion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/xform/eigen"
	"github.com/katalvlaran/xform/matrix"
)

// Operation tags for error wrapping.
const (
	opFromRotation = "FromRotation"
	opFromMatrix4  = "FromMatrix4"
)

// KMatrix returns the symmetric 4×4 matrix whose dominant eigenvector, in
// (x, y, z, w) order, is the quaternion best fitting the rotation candidate r.
// Every entry is a fixed linear combination of entries of r, scaled by 1/3
// so that an exact rotation has dominant eigenvalue 1.
func KMatrix(r matrix.Mat3) matrix.Mat4 {
	m00, m01, m02 := r[0], r[1], r[2]
	m10, m11, m12 := r[3], r[4], r[5]
	m20, m21, m22 := r[6], r[7], r[8]

	k := matrix.Mat4{
		m00 - m11 - m22, m01 + m10, m02 + m20, m21 - m12,
		m01 + m10, m11 - m00 - m22, m12 + m21, m02 - m20,
		m02 + m20, m12 + m21, m22 - m00 - m11, m10 - m01,
		m21 - m12, m02 - m20, m10 - m01, m00 + m11 + m22,
	}
	for i := range k {
		k[i] /= 3
	}

	return k
}

// FromRotation returns the unit quaternion best fitting the 3×3 rotation
// candidate r, which may be noisy, scaled or otherwise not orthonormal.
//
// Implementation:
//   - Stage 1: K = KMatrix(r).
//   - Stage 2: (λ, v) = eigen.Dominant(K): tridiagonalize a copy, bisect
//     for the largest eigenvalue, extract v from the original K.
//   - Stage 3: reorder v from (x,y,z,w) to (w,x,y,z), make w ≥ 0.
//
// No check is made that λ is close to 1; FromRotationError reports it.
//
// Errors:
//   - matrix.ErrDegenerateEigenspace when the dominant eigenvalue of K is
//     repeated (e.g. r = −I or r = 0).
//   - matrix.ErrNaNInf for non-finite r under matrix.WithValidateNaNInf.
func FromRotation(r matrix.Mat3, opts ...matrix.Option) (Quaternion, error) {
	q, _, err := fromRotation(r, opts...)
	if err != nil {
		return Quaternion{}, fmt.Errorf("%s: %w", opFromRotation, err)
	}

	return q, nil
}

// FromRotationError is FromRotation that also returns the dominant
// eigenvalue of the K-matrix. It is 1 for an exact rotation and drifts away
// from 1 as r departs from orthonormality, so callers can use it as a fit
// quality measure.
func FromRotationError(r matrix.Mat3, opts ...matrix.Option) (Quaternion, float64, error) {
	q, lambda, err := fromRotation(r, opts...)
	if err != nil {
		return Quaternion{}, lambda, fmt.Errorf("%s: %w", opFromRotation, err)
	}

	return q, lambda, nil
}

// FromMatrix4 fits a quaternion to the upper-left 3×3 block of a
// homogeneous 4×4 transform; translation and projective parts are ignored.
func FromMatrix4(m matrix.Mat4, opts ...matrix.Option) (Quaternion, error) {
	q, _, err := fromRotation(matrix.UpperLeft3(m), opts...)
	if err != nil {
		return Quaternion{}, fmt.Errorf("%s: %w", opFromMatrix4, err)
	}

	return q, nil
}

func fromRotation(r matrix.Mat3, opts ...matrix.Option) (Quaternion, float64, error) {
	o := matrix.NewOptions(opts...)
	if o.ValidateNaNInf() {
		if err := matrix.ValidateFinite(r[:]); err != nil {
			return Quaternion{}, 0, err
		}
	}

	pair, err := eigen.Dominant(KMatrix(r))
	if err != nil {
		return Quaternion{}, pair.Value, err
	}
	v := pair.Vector
	q := Quaternion{v[3], v[0], v[1], v[2]}

	return q.Canonical(), pair.Value, nil
}

// FromRotationPrecise converts an exact rotation matrix with the trace
// method, picking the largest of w, x, y, z as pivot. It is faster than
// FromRotation but assumes r is orthonormal with det +1; for anything else
// the result is not the best fit and may not even be unit length before the
// final normalization.
func FromRotationPrecise(r matrix.Mat3) Quaternion {
	var q Quaternion // (x, y, z, w) while building
	var t float64

	trace := r[0] + r[4] + r[8]
	if trace > 0 {
		t = trace + 1
		q = Quaternion{r[7] - r[5], r[2] - r[6], r[3] - r[1], t}
	} else {
		i, j, k := 0, 1, 2
		if r[4] > r[0] {
			i, j, k = 1, 2, 0
		}
		if r[8] > r.At(i, i) {
			i, j, k = 2, 0, 1
		}
		t = r.At(i, i) - (r.At(j, j) + r.At(k, k)) + 1
		q[i] = t
		q[j] = r.At(i, j) + r.At(j, i)
		q[k] = r.At(k, i) + r.At(i, k)
		q[3] = r.At(k, j) - r.At(j, k)
	}

	s := 0.5 / math.Sqrt(t)
	out := Quaternion{q[3] * s, q[0] * s, q[1] * s, q[2] * s}

	return out.Normalize().Canonical()
}
