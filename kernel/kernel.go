package kernel

import (
	"fmt"

	"github.com/katalvlaran/xform/eigen"
	"github.com/katalvlaran/xform/matrix"
	"github.com/katalvlaran/xform/quaternion"
)

// Operation tags for error wrapping.
const (
	opInvert               = "kernel.Invert"
	opQuaternionFromMatrix = "kernel.QuaternionFromMatrix"
	opTridiagonalize       = "kernel.Tridiagonalize"
	opLargestEigenvalue    = "kernel.LargestEigenvalue"
	opEigenvector          = "kernel.Eigenvector"
)

// Flat lengths of the tridiagonal vectors and of a quaternion.
const (
	lenDiag = 4
	lenSub  = 3
	lenQuat = 4
)

func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Invert writes the inverse of the square matrix in src into dst.
// len(src) selects the size: 4 (2×2), 9 (3×3) or 16 (4×4); dst must have the
// same length. dst and src may alias.
//
// Errors: ErrNilMatrix / ErrDimensionMismatch (StatusBadLength),
// ErrSingular, ErrNaNInf under matrix.WithValidateNaNInf.
func Invert(dst, src []float64, opts ...matrix.Option) error {
	if src == nil {
		return kernelErrorf(opInvert, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateBufLen(dst, len(src)); err != nil {
		return kernelErrorf(opInvert, err)
	}

	switch len(src) {
	case matrix.Len2:
		var m matrix.Mat2
		copy(m[:], src)
		inv, err := matrix.Inverse2(m, opts...)
		if err != nil {
			return kernelErrorf(opInvert, err)
		}
		copy(dst, inv[:])
	case matrix.Len3:
		var m matrix.Mat3
		copy(m[:], src)
		inv, err := matrix.Inverse3(m, opts...)
		if err != nil {
			return kernelErrorf(opInvert, err)
		}
		copy(dst, inv[:])
	case matrix.Len4:
		var m matrix.Mat4
		copy(m[:], src)
		inv, err := matrix.Inverse4(m, opts...)
		if err != nil {
			return kernelErrorf(opInvert, err)
		}
		copy(dst, inv[:])
	default:
		return kernelErrorf(opInvert, fmt.Errorf("len %d not in {4, 9, 16}: %w", len(src), matrix.ErrDimensionMismatch))
	}

	return nil
}

// QuaternionFromMatrix writes into dst (length 4, order w,x,y,z) the unit
// quaternion best fitting the rotation in src: a 3×3 matrix (length 9) or
// a homogeneous 4×4 transform (length 16, upper-left 3×3 used).
//
// Errors: StatusBadLength errors, ErrDegenerateEigenspace, ErrNaNInf under
// matrix.WithValidateNaNInf.
func QuaternionFromMatrix(dst, src []float64, opts ...matrix.Option) error {
	if err := matrix.ValidateBufLen(dst, lenQuat); err != nil {
		return kernelErrorf(opQuaternionFromMatrix, err)
	}
	if src == nil {
		return kernelErrorf(opQuaternionFromMatrix, matrix.ErrNilMatrix)
	}

	var (
		q   quaternion.Quaternion
		err error
	)
	switch len(src) {
	case matrix.Len3:
		var r matrix.Mat3
		copy(r[:], src)
		q, err = quaternion.FromRotation(r, opts...)
	case matrix.Len4:
		var m matrix.Mat4
		copy(m[:], src)
		q, err = quaternion.FromMatrix4(m, opts...)
	default:
		err = fmt.Errorf("len %d not in {9, 16}: %w", len(src), matrix.ErrDimensionMismatch)
	}
	if err != nil {
		return kernelErrorf(opQuaternionFromMatrix, err)
	}
	copy(dst, q[:])

	return nil
}

// Tridiagonalize reduces the symmetric 4×4 matrix in scratch (length 16)
// and writes the diagonal (length 4) and subdiagonal (length 3).
// scratch is consumed: pass a copy if the original is still needed.
//
// Errors: StatusBadLength errors; ErrNaNInf and ErrAsymmetry when the
// corresponding validation options are set (checked before scratch is touched).
func Tridiagonalize(diag, sub, scratch []float64, opts ...matrix.Option) error {
	m, err := symmetricInput(scratch, opts...)
	if err != nil {
		return kernelErrorf(opTridiagonalize, err)
	}
	if err = matrix.ValidateBufLen(diag, lenDiag); err != nil {
		return kernelErrorf(opTridiagonalize, err)
	}
	if err = matrix.ValidateBufLen(sub, lenSub); err != nil {
		return kernelErrorf(opTridiagonalize, err)
	}

	t := eigen.Tridiagonalize(&m)
	copy(scratch, m[:])
	copy(diag, t.Diag[:])
	copy(sub, t.Sub[:])

	return nil
}

// LargestEigenvalue returns the largest eigenvalue of the symmetric
// tridiagonal matrix given by diag (length 4) and sub (length 3).
func LargestEigenvalue(diag, sub []float64, opts ...matrix.Option) (float64, error) {
	if err := matrix.ValidateBufLen(diag, lenDiag); err != nil {
		return 0, kernelErrorf(opLargestEigenvalue, err)
	}
	if err := matrix.ValidateBufLen(sub, lenSub); err != nil {
		return 0, kernelErrorf(opLargestEigenvalue, err)
	}
	o := matrix.NewOptions(opts...)
	if o.ValidateNaNInf() {
		if err := matrix.ValidateFinite(diag); err != nil {
			return 0, kernelErrorf(opLargestEigenvalue, err)
		}
		if err := matrix.ValidateFinite(sub); err != nil {
			return 0, kernelErrorf(opLargestEigenvalue, err)
		}
	}

	var t eigen.Tridiagonal
	copy(t.Diag[:], diag)
	copy(t.Sub[:], sub)

	return eigen.LargestEigenvalue(t), nil
}

// Eigenvector writes into dst (length 4) the unit null vector of the shifted
// symmetric matrix M − λI given in shifted (length 16), i.e. the eigenvector
// of M for λ. shifted is not modified.
//
// Errors: StatusBadLength errors, ErrDegenerateEigenspace, and the opt-in
// ErrNaNInf / ErrAsymmetry.
func Eigenvector(dst, shifted []float64, opts ...matrix.Option) error {
	if err := matrix.ValidateBufLen(dst, lenQuat); err != nil {
		return kernelErrorf(opEigenvector, err)
	}
	m, err := symmetricInput(shifted, opts...)
	if err != nil {
		return kernelErrorf(opEigenvector, err)
	}

	v, err := eigen.Eigenvector(m)
	if err != nil {
		return kernelErrorf(opEigenvector, err)
	}
	copy(dst, v[:])

	return nil
}

// symmetricInput copies a length-16 buffer into a Mat4 and applies the
// opt-in finite and symmetry checks.
func symmetricInput(buf []float64, opts ...matrix.Option) (matrix.Mat4, error) {
	var m matrix.Mat4
	if err := matrix.ValidateBufLen(buf, matrix.Len4); err != nil {
		return m, err
	}
	copy(m[:], buf)

	o := matrix.NewOptions(opts...)
	if o.ValidateNaNInf() {
		if err := matrix.ValidateFinite(m[:]); err != nil {
			return m, err
		}
	}
	if o.ValidateSymmetry() {
		if err := matrix.ValidateSymmetric4(&m, o.SymmetryTolerance()); err != nil {
			return m, err
		}
	}

	return m, nil
}
