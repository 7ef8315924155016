package quaternion_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xform/matrix"
	"github.com/katalvlaran/xform/quaternion"
)

func TestQuaternion_Accessors(t *testing.T) {
	t.Parallel()

	q := quaternion.Quaternion{1, 2, 3, 4}
	assert.Equal(t, 1.0, q.W())
	assert.Equal(t, 2.0, q.X())
	assert.Equal(t, 3.0, q.Y())
	assert.Equal(t, 4.0, q.Z())
	assert.Equal(t, 30.0, q.Dot(q))
	assert.InDelta(t, math.Sqrt(30), q.Norm(), 1e-15)
	assert.Equal(t, quaternion.Quaternion{-1, -2, -3, -4}, q.Neg())
	assert.Equal(t, quaternion.Quaternion{1, -2, -3, -4}, q.Conj())
	assert.Equal(t, quaternion.Quaternion{1, 2, 3, 4}, q.Neg().Canonical())
}

func TestQuaternion_Normalize(t *testing.T) {
	t.Parallel()

	q := quaternion.Quaternion{0, 3, 0, 4}.Normalize()
	requireQuat(t, quaternion.Quaternion{0, 0.6, 0, 0.8}, q, 1e-15)

	var zero quaternion.Quaternion
	require.Equal(t, zero, zero.Normalize())
}

func TestQuaternion_HamiltonRules(t *testing.T) {
	t.Parallel()

	i := quaternion.Quaternion{0, 1, 0, 0}
	j := quaternion.Quaternion{0, 0, 1, 0}
	k := quaternion.Quaternion{0, 0, 0, 1}
	minusOne := quaternion.Quaternion{-1, 0, 0, 0}

	require.Equal(t, minusOne, i.Mul(i))
	require.Equal(t, minusOne, j.Mul(j))
	require.Equal(t, minusOne, k.Mul(k))
	require.Equal(t, k, i.Mul(j))
	require.Equal(t, k.Neg(), j.Mul(i))
	require.Equal(t, minusOne, i.Mul(j).Mul(k))
}

// TestQuaternion_MulComposesRotations: R(q·p) = R(q)·R(p).
func TestQuaternion_MulComposesRotations(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 200; trial++ {
		q, p := quaternion.Random(rng), quaternion.Random(rng)
		lhs := quaternion.ToRotation(q.Mul(p))
		rhs := matrix.Mul3(quaternion.ToRotation(q), quaternion.ToRotation(p))
		require.True(t, matrix.AllClose(lhs[:], rhs[:], 1e-12), "trial %d", trial)

		// conjugate is the inverse of a unit quaternion
		requireQuat(t, quaternion.Identity(), q.Mul(q.Conj()), 1e-12)
	}
}

func TestToRotation(t *testing.T) {
	t.Parallel()

	require.Equal(t, matrix.Identity3(), quaternion.ToRotation(quaternion.Identity()))
	require.Equal(t, matrix.Identity3(), quaternion.ToRotation(quaternion.Quaternion{}))

	// non-unit input is normalized: 5·q and q give the same matrix
	q := quaternion.FromAxisAngle(r3.Vector{X: 1, Y: 1}, 40*s1.Degree)
	a := quaternion.ToRotation(q)
	b := quaternion.ToRotation(quaternion.Quaternion{5 * q[0], 5 * q[1], 5 * q[2], 5 * q[3]})
	require.True(t, matrix.AllClose(a[:], b[:], 1e-14))
	require.InDelta(t, 1, matrix.Det3(a), 1e-14)
}

func TestFromAxisAngle_MatchesRotationAbout(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(8))
	for trial := 0; trial < 200; trial++ {
		axis := r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		angle := s1.Angle(2 * math.Pi * (rng.Float64() - 0.5))

		got := quaternion.ToRotation(quaternion.FromAxisAngle(axis, angle))
		want := matrix.RotationAbout(axis, angle)
		require.True(t, matrix.AllClose(want[:], got[:], 1e-12), "trial %d", trial)
	}

	require.Equal(t, quaternion.Identity(), quaternion.FromAxisAngle(r3.Vector{}, 1))
}

func TestAxisAngle_RoundTrip(t *testing.T) {
	t.Parallel()

	axis := r3.Vector{X: 0, Y: 3, Z: 4}
	q := quaternion.FromAxisAngle(axis, 120*s1.Degree)
	gotAxis, gotAngle := q.AxisAngle()
	require.InDelta(t, 120, gotAngle.Degrees(), 1e-10)
	require.InDelta(t, 0, gotAxis.Sub(axis.Normalize()).Norm(), 1e-12)

	// −q encodes the same rotation: angle 360° − θ about −axis
	negAxis, negAngle := q.Neg().AxisAngle()
	require.InDelta(t, 240, negAngle.Degrees(), 1e-10)
	require.InDelta(t, 0, negAxis.Add(axis.Normalize()).Norm(), 1e-12)

	idAxis, idAngle := quaternion.Identity().AxisAngle()
	require.Equal(t, r3.Vector{X: 1}, idAxis)
	require.Equal(t, s1.Angle(0), idAngle)
}

func TestRotate(t *testing.T) {
	t.Parallel()

	q := quaternion.FromAxisAngle(r3.Vector{Z: 1}, 90*s1.Degree)
	v := q.Rotate(r3.Vector{X: 1})
	require.InDelta(t, 0, v.Sub(r3.Vector{Y: 1}).Norm(), 1e-15)
}

func TestRandom_UnitAndSpread(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2024))
	const n = 4000
	var mean [4]float64
	for trial := 0; trial < n; trial++ {
		q := quaternion.Random(rng)
		require.InDelta(t, 1, q.Norm(), 1e-12)
		for i := range q {
			mean[i] += q[i] / n
		}
	}
	// uniform on S³: every component has zero mean (σ of the estimate ≈ 0.008)
	for i, m := range mean {
		assert.InDelta(t, 0, m, 0.05, "component %d", i)
	}

	r := quaternion.RandomRotation(rng)
	rrt := matrix.Mul3(r, matrix.Transpose3(r))
	id := matrix.Identity3()
	require.True(t, matrix.AllClose(rrt[:], id[:], 1e-12))
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	negZero := math.Copysign(0, -1)
	got := quaternion.Quaternion{negZero, -1, negZero, 0}.Canonical()
	require.Equal(t, quaternion.Quaternion{0, -1, 0, 0}, got)
	for i, c := range got {
		require.False(t, math.Signbit(c) && c == 0, "component %d is -0", i)
	}

	require.Equal(t, quaternion.Quaternion{0.5, -0.5, 0.5, -0.5},
		quaternion.Quaternion{-0.5, 0.5, -0.5, 0.5}.Canonical())
}

func TestApproxEqual(t *testing.T) {
	t.Parallel()

	q := quaternion.Quaternion{0.5, 0.5, 0.5, 0.5}
	assert.True(t, quaternion.ApproxEqual(q, q, 0))
	assert.True(t, quaternion.ApproxEqual(q, q.Neg(), 0))
	assert.False(t, quaternion.ApproxEqual(q, q.Conj(), 0.1))
	assert.False(t, quaternion.ApproxEqual(q, quaternion.Quaternion{math.NaN(), 0.5, 0.5, 0.5}, 1))
}
