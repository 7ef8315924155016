package kernel

import (
	"errors"

	"github.com/katalvlaran/xform/matrix"
)

// Status is the result code reported to bindings.
type Status int

const (
	// StatusOK reports success.
	StatusOK Status = iota
	// StatusSingular reports |det| below the singularity epsilon.
	StatusSingular
	// StatusDegenerateEigenspace reports that no eigenvector candidate qualified.
	StatusDegenerateEigenspace
	// StatusBadLength reports a nil buffer or a buffer of the wrong length.
	StatusBadLength
	// StatusNonFinite reports NaN/Inf input under matrix.WithValidateNaNInf.
	StatusNonFinite
	// StatusAsymmetric reports a non-symmetric input under matrix.WithValidateSymmetry.
	StatusAsymmetric
	// StatusUnknown reports an error outside the kernel's taxonomy.
	StatusUnknown
)

var statusNames = [...]string{
	StatusOK:                   "ok",
	StatusSingular:             "singular",
	StatusDegenerateEigenspace: "degenerate eigenspace",
	StatusBadLength:            "bad length",
	StatusNonFinite:            "non-finite",
	StatusAsymmetric:           "asymmetric",
	StatusUnknown:              "unknown",
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return statusNames[StatusUnknown]
	}

	return statusNames[s]
}

// StatusOf maps an error returned by this package (or by matrix, eigen,
// quaternion) onto its status code. nil maps to StatusOK.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, matrix.ErrSingular):
		return StatusSingular
	case errors.Is(err, matrix.ErrDegenerateEigenspace):
		return StatusDegenerateEigenspace
	case errors.Is(err, matrix.ErrDimensionMismatch), errors.Is(err, matrix.ErrNilMatrix):
		return StatusBadLength
	case errors.Is(err, matrix.ErrNaNInf):
		return StatusNonFinite
	case errors.Is(err, matrix.ErrAsymmetry):
		return StatusAsymmetric
	default:
		return StatusUnknown
	}
}
