// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// RotationAbout returns the 3×3 matrix rotating anticlockwise by angle about
// axis (Rodrigues' formula). The axis is normalized first; a zero axis
// yields the identity.
func RotationAbout(axis r3.Vector, angle s1.Angle) Mat3 {
	if axis.Norm2() == 0 {
		return Identity3()
	}
	u := axis.Normalize()
	sa, ca := math.Sincos(angle.Radians())
	t := 1 - ca

	return Mat3{
		ca + u.X*u.X*t, u.X*u.Y*t - u.Z*sa, u.X*u.Z*t + u.Y*sa,
		u.Y*u.X*t + u.Z*sa, ca + u.Y*u.Y*t, u.Y*u.Z*t - u.X*sa,
		u.Z*u.X*t - u.Y*sa, u.Z*u.Y*t + u.X*sa, ca + u.Z*u.Z*t,
	}
}

// Homogeneous embeds a 3×3 linear map into a 4×4 homogeneous matrix.
func Homogeneous(m Mat3) Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}
