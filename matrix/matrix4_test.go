// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

func seq4() matrix.Matrix4[int] {
	return matrix.FromValues4(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
}

func TestMatrix4_Construction(t *testing.T) {
	m := seq4()

	assert.Equal(t, vector.New4(5, 6, 7, 8), m.Col(1))
	assert.Equal(t, vector.New4(3, 7, 11, 15), m.Row(2))
	assert.Equal(t, 14, m.Value(1, 3))
	assert.Equal(t, m, matrix.FromArray4([16]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}))
	assert.Equal(t, m, matrix.New4(m[0], m[1], m[2], m[3]))
	assert.Equal(t, matrix.FromValues3(1, 2, 3, 5, 6, 7, 9, 10, 11), m.Upper3())
	assert.Equal(t, matrix.Diagonal4(1), matrix.Identity4[int]())
	assert.Equal(t, matrix.Matrix4[int]{}, matrix.Zero4[int]())
}

func TestMatrix4_Promotion(t *testing.T) {
	assert.Equal(t,
		matrix.FromValues4(1, 2, 0, 0, 3, 4, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1),
		matrix.FromMatrix2To4(matrix.FromValues2(1, 2, 3, 4)))

	m3 := matrix.FromValues3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	m4 := matrix.FromMatrix3To4(m3)
	assert.Equal(t, matrix.FromValues4(1, 2, 3, 0, 4, 5, 6, 0, 7, 8, 9, 0, 0, 0, 0, 1), m4)
	assert.Equal(t, m3, m4.Upper3())
}

func TestMatrix4_Setters(t *testing.T) {
	m := matrix.Identity4[int]()
	m.SetRow(3, vector.New4(1, 2, 3, 4))
	m.SetCol(2, vector.New4(9, 9, 9, 9))
	m.SetValue(0, 0, 5)

	require.Equal(t, matrix.FromValues4(5, 0, 0, 1, 0, 1, 0, 2, 9, 9, 9, 9, 0, 0, 0, 4), m)
}

func TestMatrix4_Arithmetic(t *testing.T) {
	a := seq4()
	id := matrix.Identity4[int]()

	assert.Equal(t, a, a.Mul(id))
	assert.Equal(t, a, id.Mul(a))
	assert.Equal(t, a.MulScalar(3), a.Add(a).Add(a))
	assert.Equal(t, a, a.MulScalar(4).DivScalar(4))
	assert.Equal(t, matrix.Zero4[int](), a.Sub(a))

	tr := matrix.Translation4(vector.New3(1, 2, 3))
	assert.Equal(t, vector.New4(2, 3, 4, 1), tr.MulVec(vector.New4(1, 1, 1, 1)))
	assert.Equal(t, vector.New4(1, 1, 1, 0), tr.MulVec(vector.New4(1, 1, 1, 0)), "directions ignore translation")
	assert.Equal(t, vector.New4(1, 1, 1, 7), tr.VecMul(vector.New4(1, 1, 1, 1)))

	// (a·b)ᵀ = bᵀ·aᵀ
	b := a.Transpose().Add(id)
	assert.Equal(t, a.Mul(b).Transpose(), b.Transpose().Mul(a.Transpose()))
}

func TestMatrix4_Determinant(t *testing.T) {
	assert.Equal(t, 0, seq4().Determinant())
	assert.Equal(t, 16.0, matrix.Diagonal4(2.0).Determinant())
	assert.Equal(t, 1, matrix.Translation4(vector.New3(4, 5, 6)).Determinant())
	assert.Equal(t, 34, seq4().Trace())

	swap := matrix.New4(vector.UnitY4[int](), vector.UnitX4[int](), vector.UnitZ4[int](), vector.UnitW4[int]())
	assert.Equal(t, -1, swap.Determinant(), "a column swap flips the sign")

	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 32; i++ {
		a, b := randMat4(rng), randMat4(rng)
		require.InEpsilon(t, a.Determinant(), a.Transpose().Determinant(), 1e-9)
		require.InEpsilon(t, a.Determinant()*b.Determinant(), a.Mul(b).Determinant(), 1e-9)
	}
}

func TestMatrix4_Inverse(t *testing.T) {
	// det = 1, so the adjugate is the exact integer inverse.
	u := matrix.Translation4(vector.New3(1, 2, 3)).Mul(matrix.FromMatrix3To4(unimodular3))
	require.Equal(t, matrix.Identity4[int](), u.Mul(u.Inverse()))
	require.Equal(t, matrix.Identity4[int](), u.Inverse().Mul(u))

	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 32; i++ {
		m := randMat4(rng)
		requireMat4Near(t, matrix.Identity4[float64](), m.Mul(m.Inverse()), tight)

		// Diagonal near 2 keeps det(m⁻¹) well above the singular threshold.
		w := m.MulScalar(0.2)
		requireMat4Near(t, w, w.Inverse().Inverse(), tight)
	}
}

func TestMatrix4_InverseSingularFallsBackToIdentity(t *testing.T) {
	require.Equal(t, matrix.Identity4[float64](), matrix.Zero4[float64]().Inverse())
	require.Equal(t, matrix.Identity4[int](), seq4().Inverse())

	_, err := seq4().TryInverse()
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.EqualError(t, err, "TryInverse4: matrix: singular matrix")

	inv, err := matrix.Diagonal4(4.0).TryInverse()
	require.NoError(t, err)
	require.Equal(t, matrix.Diagonal4(0.25), inv)
}

func TestMatrix4_InverseNearSingularFallsBackToIdentity(t *testing.T) {
	small := matrix.Diagonal4(0.05) // det 6.25e-6
	require.NotZero(t, small.Determinant())
	require.Equal(t, matrix.Identity4[float64](), small.Inverse())

	_, err := small.TryInverse()
	require.ErrorIs(t, err, matrix.ErrSingular)

	scaled := matrix.Identity4[float64]().ScaleUniform(0.01) // det 1e-6
	require.Equal(t, matrix.Identity4[float64](), scaled.Inverse())
	_, err = scaled.TryInverse()
	require.ErrorIs(t, err, matrix.ErrSingular)

	inv, err := matrix.Diagonal4(0.5).TryInverse() // det 0.0625
	require.NoError(t, err)
	requireMat4Near(t, matrix.Diagonal4(2.0), inv, tight)
	requireMat4Near(t, matrix.Diagonal4(2.0), matrix.Diagonal4(0.5).Inverse(), tight)
}

func TestMatrix4_DeterminantDecidesInverse(t *testing.T) {
	cases := []struct {
		name string
		m    matrix.Matrix4[float64]
	}{
		{"diag_0.05", matrix.Diagonal4(0.05)},
		{"diag_0.2", matrix.Diagonal4(0.2)},
		{"scale_0.01", matrix.Identity4[float64]().ScaleUniform(0.01)},
		{"scale_0.5_translate", matrix.Translation4(vector.New3(1.0, 2, 3)).ScaleUniform(0.5)},
		{"sheared_small", matrix.Shear4[float64](0.3, 0.2).ScaleXYZ(0.1, 0.1, 0.0099)},
		{"sheared_ok", matrix.Shear4[float64](0.3, 0.2).ScaleXYZ(0.1, 0.1, 0.012)},
		{"zero", matrix.Zero4[float64]()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			singular := scalar.IsZero(tc.m.Determinant())
			_, err := tc.m.TryInverse()
			assert.Equal(t, singular, err != nil)
			if singular {
				assert.Equal(t, matrix.Identity4[float64](), tc.m.Inverse())
			}
		})
	}
}

func TestMatrix4_TransposeRoundTrip(t *testing.T) {
	m := seq4()

	require.Equal(t, m, m.Transpose().Transpose())
	for i := 0; i < 4; i++ {
		require.Equal(t, m.Row(i), m.Transpose().Col(i))
	}
}
