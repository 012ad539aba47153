// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by the matrix tests.
//   - Keep random inputs well conditioned so inverse checks stay stable.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// tight is the tolerance for results that only accumulate rounding error.
var tight = scalar.WithEpsilon(1e-9)

// requireMat4Near fails the test unless got ≈ want within eps, printing
// both matrices on failure.
func requireMat4Near(t testing.TB, want, got matrix.Matrix4[float64], opts ...scalar.Option) {
	t.Helper()
	require.Truef(t, got.Near(want, opts...), "want\n%v\ngot\n%v", want, got)
}

// requireVec4Near is requireMat4Near for vectors.
func requireVec4Near(t testing.TB, want, got vector.Vector4[float64], opts ...scalar.Option) {
	t.Helper()
	require.Truef(t, got.Near(want, opts...), "want %v, got %v", want, got)
}

// MustFromSlice4 ingests vals or fails the test (fatal on error).
func MustFromSlice4(t testing.TB, vals []float64) matrix.Matrix4[float64] {
	t.Helper()
	m, err := matrix.FromSlice4(vals)
	require.NoError(t, err)

	return m
}

// randMat3 returns entries in [-1, 1) plus a dominant diagonal of 10,
// which keeps the matrix far from singular.
func randMat3(rng *rand.Rand) matrix.Matrix3[float64] {
	var m matrix.Matrix3[float64]
	for i, a := 0, m.Array(); i < len(a); i++ {
		a[i] = rng.Float64()*2 - 1
	}

	return m.Add(matrix.Diagonal3(10.0))
}

// randMat4 is randMat3 for 4×4.
func randMat4(rng *rand.Rand) matrix.Matrix4[float64] {
	var m matrix.Matrix4[float64]
	for i, a := 0, m.Array(); i < len(a); i++ {
		a[i] = rng.Float64()*2 - 1
	}

	return m.Add(matrix.Diagonal4(10.0))
}
