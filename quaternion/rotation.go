package quaternion

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"

	"github.com/katalvlaran/xform/matrix"
)

// ToRotation returns the 3×3 rotation matrix of q. q is normalized first;
// the zero quaternion maps to the identity.
func ToRotation(q Quaternion) matrix.Mat3 {
	n := q.Dot(q)
	if n < matrix.Epsilon {
		return matrix.Identity3()
	}
	s := 2 / n
	w, x, y, z := q[0], q[1], q[2], q[3]

	return matrix.Mat3{
		1 - s*(y*y+z*z), s * (x*y - w*z), s * (x*z + w*y),
		s * (x*y + w*z), 1 - s*(x*x+z*z), s * (y*z - w*x),
		s * (x*z - w*y), s * (y*z + w*x), 1 - s*(x*x+y*y),
	}
}

// FromAxisAngle returns the unit quaternion rotating by angle about axis.
// A zero axis yields the identity.
func FromAxisAngle(axis r3.Vector, angle s1.Angle) Quaternion {
	n := axis.Norm()
	if n == 0 {
		return Identity()
	}
	sh, ch := math.Sincos(angle.Radians() / 2)
	k := sh / n

	return Quaternion{ch, axis.X * k, axis.Y * k, axis.Z * k}
}

// AxisAngle returns the rotation axis (unit) and angle in [0, 2π] encoded by
// q. For a (near) identity rotation the axis is arbitrary and X is returned.
func (q Quaternion) AxisAngle() (r3.Vector, s1.Angle) {
	q = q.Normalize()
	v := r3.Vector{X: q[1], Y: q[2], Z: q[3]}
	sinHalf := v.Norm()
	if sinHalf < matrix.Epsilon {
		return r3.Vector{X: 1}, 0
	}
	angle := 2 * math.Atan2(sinHalf, q[0])

	return v.Mul(1 / sinHalf), s1.Angle(angle)
}

// Rotate applies the rotation of q to v.
func (q Quaternion) Rotate(v r3.Vector) r3.Vector {
	r := ToRotation(q)

	return r3.Vector{
		X: r[0]*v.X + r[1]*v.Y + r[2]*v.Z,
		Y: r[3]*v.X + r[4]*v.Y + r[5]*v.Z,
		Z: r[6]*v.X + r[7]*v.Y + r[8]*v.Z,
	}
}
