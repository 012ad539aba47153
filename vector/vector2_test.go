// SPDX-License-Identifier: MIT
package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

func TestVector2_Constructors(t *testing.T) {
	assert.Equal(t, vector.Vector2[int]{X: 1, Y: 2}, vector.New2(1, 2))
	assert.Equal(t, vector.New2(7, 7), vector.Splat2(7))
	assert.Equal(t, vector.New2(3.5, -1.0), vector.FromArray2([2]float64{3.5, -1}))
}

func TestVector2_Arithmetic(t *testing.T) {
	a, b := vector.New2(7, 9), vector.New2(2, 4)

	assert.Equal(t, vector.New2(9, 13), a.Add(b))
	assert.Equal(t, vector.New2(5, 5), a.Sub(b))
	assert.Equal(t, vector.New2(14, 36), a.Mul(b))
	assert.Equal(t, vector.New2(3, 2), a.Div(b))
	assert.Equal(t, vector.New2(1, 1), a.Mod(b))

	assert.Equal(t, vector.New2(10, 12), a.AddScalar(3))
	assert.Equal(t, vector.New2(4, 6), a.SubScalar(3))
	assert.Equal(t, vector.New2(14, 18), a.MulScalar(2))
	assert.Equal(t, vector.New2(3, 4), a.DivScalar(2))
	assert.Equal(t, vector.New2(1, 0), a.ModScalar(3))

	assert.Equal(t, vector.New2(-4, -6), a.RSubScalar(3))
	assert.Equal(t, vector.New2(10, 7), vector.New2(2, 3).RDivScalar(21))
	assert.Equal(t, vector.New2(2, 1), vector.New2(3, 4).RModScalar(5))

	assert.Equal(t, a, a.Pos())
	assert.Equal(t, vector.New2(-7, -9), a.Neg())
}

func TestVector2_FloatMod(t *testing.T) {
	got := vector.New2(7.5, -7.5).ModScalar(2)
	assert.InDelta(t, 1.5, got.X, tol)
	assert.InDelta(t, -1.5, got.Y, tol)
}

func TestVector2_AssignAndIncDec(t *testing.T) {
	v := vector.New2(1, 2)
	v.AddAssign(vector.New2(1, 1))
	require.Equal(t, vector.New2(2, 3), v)
	v.MulScalarAssign(3)
	require.Equal(t, vector.New2(6, 9), v)
	v.SubScalarAssign(1)
	require.Equal(t, vector.New2(5, 8), v)
	v.ModAssign(vector.New2(3, 3))
	require.Equal(t, vector.New2(2, 2), v)

	require.Equal(t, vector.New2(3, 3), v.Inc())
	require.Equal(t, vector.New2(3, 3), v)
	require.Equal(t, vector.New2(2, 2), v.Dec())
	require.Equal(t, vector.New2(2, 2), v)
}

func TestVector2_Geometry(t *testing.T) {
	a, b := vector.New2(3.0, 4.0), vector.New2(1.0, 0.0)

	assert.Equal(t, 3.0, a.Dot(b))
	assert.Equal(t, 25.0, a.LengthSquared())
	assert.Equal(t, 5.0, a.Length())
	assert.Equal(t, 20.0, a.DistanceSquared(b))
	assert.InDelta(t, math.Sqrt(20), a.Distance(b), tol)
	assert.InDelta(t, 0.6, a.Angle(b), tol)
	assert.InDelta(t, 0.6, a.Cosine(b), tol)

	requireVec2Near(t, vector.New2(3.0, 0.0), a.Project(b))
	requireVec2Near(t, vector.New2(0.0, 4.0), a.Perpendicular(b))
	requireVec2Near(t, vector.New2(3.0, -4.0), a.Reflect(b))
	assert.Equal(t, -4.0, a.PerpDot(b))
}

func TestVector2_CrossIsPlanarTermsOnly(t *testing.T) {
	require.Equal(t, vector.Zero2[int](), vector.New2(1, 2).Cross(vector.New2(3, 4)))
	require.Equal(t, -2, vector.New2(1, 2).PerpDot(vector.New2(3, 4)))
}

func TestVector2_Rotate(t *testing.T) {
	got := vector.New2(1.0, 0.0).Rotate(math.Pi / 2)
	requireVec2Near(t, vector.New2(0.0, 1.0), got)

	got = vector.New2(0.0, 2.0).Rotate(math.Pi)
	requireVec2Near(t, vector.New2(0.0, -2.0), got)
}

func TestVector2_Normalize(t *testing.T) {
	n := vector.New2(3.0, 4.0).Normalize()
	requireVec2Near(t, vector.New2(0.6, 0.8), n)
	require.True(t, n.IsUnitVector())

	zero := vector.Zero2[float64]()
	require.Equal(t, zero, zero.Normalize())

	tiny := vector.New2(1e-6, 0.0)
	require.Equal(t, tiny, tiny.Normalize(), "near-null vectors are returned unchanged")

	unit := vector.New2(1.0, 0.0)
	require.Equal(t, unit, unit.Normalize())

	ten := vector.New2(3.0, 4.0).NormalizeTo(10)
	requireVec2Near(t, vector.New2(6.0, 8.0), ten)
	require.True(t, ten.IsNormalized(10))
}

func TestVector2_Predicates(t *testing.T) {
	require.True(t, vector.New2(0.00001, -0.00001).IsNullVector())
	require.False(t, vector.New2(0.1, 0.0).IsNullVector())
	require.True(t, vector.New2(0, 0).IsNullVector())

	x, y := vector.UnitX2[float64](), vector.UnitY2[float64]()
	require.True(t, x.IsOrthogonalTo(y))
	require.True(t, x.IsPerpendicularTo(y))
	require.True(t, x.IsParallelTo(x))

	// non-unit parallel vectors are not detected
	require.False(t, vector.New2(2.0, 0.0).IsParallelTo(vector.New2(3.0, 0.0)))
}

func TestVector2_MinMaxClampSignum(t *testing.T) {
	a, b := vector.New2(-3, 8), vector.New2(2, -1)

	assert.Equal(t, vector.New2(-3, -1), a.Min(b))
	assert.Equal(t, vector.New2(2, 8), a.Max(b))
	assert.Equal(t, vector.New2(3, 8), a.Abs())
	assert.Equal(t, vector.New2(0, 5), a.Clamp(vector.New2(0, 0), vector.New2(5, 5)))
	assert.Equal(t, vector.New2(-1, 1), a.Signum())
	assert.Equal(t, vector.New2(0, 0), vector.New2(0, 0).Signum())
}

func TestVector2_Lerp(t *testing.T) {
	from, to := vector.New2(0.0, 10.0), vector.New2(10.0, 20.0)

	requireVec2Near(t, vector.New2(2.5, 12.5), from.Lerp(to, 0.25))
	requireVec2Near(t, from, from.Lerp(to, 0))
	requireVec2Near(t, to, from.Lerp(to, 1))
	requireVec2Near(t, vector.New2(5.0, 20.0), from.LerpVec(to, vector.New2(0.5, 1.0)))
}

func TestVector2_Slerp(t *testing.T) {
	from, to := vector.New2(1.0, 0.0), vector.New2(0.0, 1.0)

	half := from.Slerp(to, 0.5)
	requireVec2Near(t, vector.New2(math.Sqrt2/2, math.Sqrt2/2), half)
	require.True(t, half.IsUnitVector())

	requireVec2Near(t, from, from.Slerp(to, 0))
	requireVec2Near(t, to, from.Slerp(to, 1))
}

func TestVector2_Comparisons(t *testing.T) {
	a := vector.New2(1, 2)

	require.True(t, a.Less(vector.New2(2, 3)))
	require.False(t, a.Less(vector.New2(2, 2)))
	require.True(t, a.LessEqual(vector.New2(1, 2)))
	require.True(t, a.Greater(vector.New2(0, 1)))
	require.True(t, a.GreaterEqual(vector.New2(1, 1)))
	require.False(t, a.GreaterEqual(vector.New2(1, 3)))
}

func TestVector2_EqualAndNear(t *testing.T) {
	require.True(t, vector.New2(1.0, 2.0).Equal(vector.New2(1.00005, 1.99995)))
	require.False(t, vector.New2(1.0, 2.0).Equal(vector.New2(1.001, 2.0)))
	require.True(t, vector.New2(1.0, 2.0).Near(vector.New2(1.001, 2.0), scalar.WithEpsilon(0.01)))
}

func TestOrthogonalize2(t *testing.T) {
	a := vector.New2(2.0, 0.0)
	b := vector.Orthogonalize2(a, vector.New2(1.0, 1.0))

	requireVec2Near(t, vector.New2(0.0, 1.0), b)
	require.True(t, a.IsOrthogonalTo(b))
}
