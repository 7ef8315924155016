// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xform/matrix"
)

func TestRotationAbout_QuarterTurnZ(t *testing.T) {
	t.Parallel()

	r := matrix.RotationAbout(r3.Vector{Z: 1}, 90*s1.Degree)
	requireClose(t, []float64{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	}, r[:], 1e-15)
}

func TestRotationAbout_IsOrthonormal(t *testing.T) {
	t.Parallel()

	axes := []r3.Vector{{X: 1}, {Y: 2}, {X: 1, Y: -2, Z: 3}, {X: -0.3, Y: 0.1, Z: 0.02}}
	angles := []s1.Angle{0, 30 * s1.Degree, math.Pi * s1.Radian, -2.5}
	id := matrix.Identity3()
	for _, axis := range axes {
		for _, angle := range angles {
			r := matrix.RotationAbout(axis, angle)
			rrt := matrix.Mul3(r, matrix.Transpose3(r))
			require.True(t, matrix.AllClose(rrt[:], id[:], 1e-14), "axis %v angle %v", axis, angle)
			require.InDelta(t, 1.0, matrix.Det3(r), 1e-14)

			// the axis is fixed
			u := axis.Normalize()
			fixed := r3.Vector{
				X: r[0]*u.X + r[1]*u.Y + r[2]*u.Z,
				Y: r[3]*u.X + r[4]*u.Y + r[5]*u.Z,
				Z: r[6]*u.X + r[7]*u.Y + r[8]*u.Z,
			}
			require.InDelta(t, 0, fixed.Sub(u).Norm(), 1e-14)
		}
	}
}

func TestRotationAbout_ZeroAxis(t *testing.T) {
	t.Parallel()

	require.Equal(t, matrix.Identity3(), matrix.RotationAbout(r3.Vector{}, 1))
}

func TestHomogeneous(t *testing.T) {
	t.Parallel()

	r := matrix.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	h := matrix.Homogeneous(r)
	require.Equal(t, r, matrix.UpperLeft3(h))
	require.Equal(t, 1.0, h.At(3, 3))
	require.Equal(t, 0.0, h.At(0, 3))
	require.Equal(t, 0.0, h.At(3, 0))
}
