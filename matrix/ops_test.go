// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xform/matrix"
)

func TestMul_IdentityIsNeutral(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	m2, m3, m4 := randMat2(rng), randMat3(rng), randMat4(rng)

	assert.Equal(t, m2, matrix.Mul2(m2, matrix.Identity2()))
	assert.Equal(t, m3, matrix.Mul3(matrix.Identity3(), m3))
	assert.Equal(t, m4, matrix.Mul4(m4, matrix.Identity4()))
	assert.Equal(t, m4, matrix.Mul4(matrix.Identity4(), m4))
}

func TestMul2_Known(t *testing.T) {
	t.Parallel()

	got := matrix.Mul2(matrix.Mat2{1, 2, 3, 4}, matrix.Mat2{5, 6, 7, 8})
	require.Equal(t, matrix.Mat2{19, 22, 43, 50}, got)
}

func TestMulVec4(t *testing.T) {
	t.Parallel()

	m := matrix.Mat4{
		1, 0, 0, 10,
		0, 2, 0, 20,
		0, 0, 3, 30,
		0, 0, 0, 1,
	}
	got := matrix.MulVec4(m, matrix.Vec4{1, 1, 1, 1})
	require.Equal(t, matrix.Vec4{11, 22, 33, 1}, got)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m3 := matrix.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	require.Equal(t, matrix.Mat3{1, 4, 7, 2, 5, 8, 3, 6, 9}, matrix.Transpose3(m3))

	rng := rand.New(rand.NewSource(2))
	m4 := randMat4(rng)
	tt := matrix.Transpose4(matrix.Transpose4(m4))
	require.Equal(t, m4, tt)
	tr := matrix.Transpose4(m4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.Equal(t, m4.At(i, j), tr.At(j, i))
		}
	}
}

func TestDet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"2x2", matrix.Det2(matrix.Mat2{4, 7, 2, 6}), 10},
		{"3x3 unimodular", matrix.Det3(matrix.Mat3{1, 2, 3, 0, 1, 4, 5, 6, 0}), 1},
		{"3x3 singular", matrix.Det3(matrix.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}), 0},
		{"4x4 diagonal", matrix.Det4(matrix.Mat4{2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 4, 0, 0, 0, 0, 5}), 120},
		{"4x4 row swap", matrix.Det4(matrix.Mat4{0, 1, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}), -1},
		{"4x4 identity", matrix.Det4(matrix.Identity4()), 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tc.want, tc.got, 1e-12)
		})
	}
}

func TestDet4_Multiplicative(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		a, b := randMat4(rng), randMat4(rng)
		want := matrix.Det4(a) * matrix.Det4(b)
		got := matrix.Det4(matrix.Mul4(a, b))
		require.InEpsilon(t, want, got, 1e-10, "trial %d", trial)
	}
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	assert.True(t, matrix.AllClose([]float64{1, 2}, []float64{1, 2 + 1e-9}, 1e-8))
	assert.False(t, matrix.AllClose([]float64{1, 2}, []float64{1, 2.1}, 1e-8))
	assert.False(t, matrix.AllClose([]float64{1}, []float64{1, 2}, 1))
	assert.False(t, matrix.AllClose([]float64{math.NaN()}, []float64{math.NaN()}, 1))
	assert.True(t, matrix.AllClose(nil, nil, 0))
}

func TestMat4_Accessors(t *testing.T) {
	t.Parallel()

	m := matrix.Identity4()
	m.Set(1, 3, 7)
	require.Equal(t, 7.0, m.At(1, 3))
	require.Equal(t, 7.0, m[7])

	m.AddDiagonal(-1)
	require.Equal(t, matrix.Mat4{0, 0, 0, 0, 0, 0, 0, 7, 0, 0, 0, 0, 0, 0, 0, 0}, m)

	h := matrix.Mat4{1, 2, 3, 9, 4, 5, 6, 9, 7, 8, 9, 9, 0, 0, 0, 1}
	require.Equal(t, matrix.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, matrix.UpperLeft3(h))

	m2 := matrix.Mat2{1, 2, 3, 4}
	m3 := matrix.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	require.Equal(t, 3.0, m2.At(1, 0))
	require.Equal(t, 6.0, m3.At(1, 2))
}
