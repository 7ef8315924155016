package eigen

import "github.com/katalvlaran/xform/matrix"

// PivotsBelow exposes the Sturm pivot count to eigen_test.
var PivotsBelow = pivotsBelow

// EigenvectorWith runs the candidate cascade over a caller-chosen list.
func EigenvectorWith(shifted matrix.Mat4, candidates []Candidate) (matrix.Vec4, error) {
	return eigenvectorWith(&shifted, candidates)
}

// AcceptThreshold exposes the candidate acceptance threshold.
func AcceptThreshold(shifted matrix.Mat4) float64 { return acceptThreshold(&shifted) }
