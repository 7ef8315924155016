package quaternion

import (
	"math"

	"github.com/katalvlaran/xform/matrix"
)

// Source supplies uniform samples in [0, 1). *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Random returns a unit quaternion uniformly distributed over rotations
// (Shoemake's subgroup algorithm, three uniform draws).
func Random(src Source) Quaternion {
	u1, u2, u3 := src.Float64(), src.Float64(), src.Float64()
	r1 := math.Sqrt(1 - u1)
	r2 := math.Sqrt(u1)
	s1, c1 := math.Sincos(2 * math.Pi * u2)
	s2, c2 := math.Sincos(2 * math.Pi * u3)

	return Quaternion{c2 * r2, s1 * r1, c1 * r1, s2 * r2}
}

// RandomRotation returns the rotation matrix of a uniformly random rotation.
func RandomRotation(src Source) matrix.Mat3 {
	return ToRotation(Random(src))
}
