// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by the vector tests.
//   - Approximate comparators that report every component on failure.

package vector_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/vector"
)

// tol is the delta used by InDelta checks on float64 results.
const tol = 1e-9

// requireVec2Near fails the test unless got ≈ want under the scalar policy.
func requireVec2Near(t testing.TB, want, got vector.Vector2[float64]) {
	t.Helper()
	require.Truef(t, got.Equal(want), "want %v, got %v", want, got)
}

// requireVec3Near fails the test unless got ≈ want under the scalar policy.
func requireVec3Near(t testing.TB, want, got vector.Vector3[float64]) {
	t.Helper()
	require.Truef(t, got.Equal(want), "want %v, got %v", want, got)
}

// requireVec4Near fails the test unless got ≈ want under the scalar policy.
func requireVec4Near(t testing.TB, want, got vector.Vector4[float64]) {
	t.Helper()
	require.Truef(t, got.Equal(want), "want %v, got %v", want, got)
}

// randVec3 returns a vector with components in [-10, 10) from a seeded source.
func randVec3(rng *rand.Rand) vector.Vector3[float64] {
	return vector.New3(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
}

// randVec4 returns a vector with components in [-10, 10) from a seeded source.
func randVec4(rng *rand.Rand) vector.Vector4[float64] {
	return vector.New4(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
}
