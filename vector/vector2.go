// SPDX-License-Identifier: MIT

package vector

import (
	"math"
	"unsafe"

	"github.com/katalvlaran/linalg/scalar"
)

// Vector2 is a 2-component vector.
// Fields are laid out X, Y with no padding; see Array.
type Vector2[T scalar.Scalar] struct {
	X, Y T
}

// New2 returns the vector (x, y).
func New2[T scalar.Scalar](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Splat2 broadcasts s to both components.
func Splat2[T scalar.Scalar](s T) Vector2[T] {
	return Vector2[T]{X: s, Y: s}
}

// FromArray2 builds a vector from a raw [2]T (index 0 → X).
func FromArray2[T scalar.Scalar](a [2]T) Vector2[T] {
	return Vector2[T]{X: a[0], Y: a[1]}
}

// FromSlice2 builds a vector from vals after validation.
// Errors (wrapped with "FromSlice2"):
//   - ErrNilSlice if vals == nil.
//   - ErrDimensionMismatch if len(vals) != 2.
//   - ErrNaNInf if a float component is NaN/±Inf and validation is enabled
//     (default; disable with scalar.WithNoValidateNaNInf()).
func FromSlice2[T scalar.Scalar](vals []T, opts ...scalar.Option) (Vector2[T], error) {
	if err := validateSlice(vals, 2, opts...); err != nil {
		return Vector2[T]{}, vectorErrorf(opFromSlice2, err)
	}

	return Vector2[T]{X: vals[0], Y: vals[1]}, nil
}

// Array reinterprets v as a flat [2]T sharing v's memory.
// Writes through the returned pointer are visible in v.X/v.Y and vice versa.
func (v *Vector2[T]) Array() *[2]T {
	return (*[2]T)(unsafe.Pointer(v))
}

// At returns component i (0 → X, 1 → Y). Panics if i is out of range.
func (v Vector2[T]) At(i int) T { return v.Array()[i] }

// SetAt stores s into component i. Panics if i is out of range.
func (v *Vector2[T]) SetAt(i int, s T) { v.Array()[i] = s }

// Add returns v + b.
func (v Vector2[T]) Add(b Vector2[T]) Vector2[T] { return Vector2[T]{v.X + b.X, v.Y + b.Y} }

// Sub returns v - b.
func (v Vector2[T]) Sub(b Vector2[T]) Vector2[T] { return Vector2[T]{v.X - b.X, v.Y - b.Y} }

// Mul returns the component-wise product.
func (v Vector2[T]) Mul(b Vector2[T]) Vector2[T] { return Vector2[T]{v.X * b.X, v.Y * b.Y} }

// Div returns the component-wise quotient.
func (v Vector2[T]) Div(b Vector2[T]) Vector2[T] { return Vector2[T]{v.X / b.X, v.Y / b.Y} }

// Mod returns the component-wise remainder (see scalar.Mod).
func (v Vector2[T]) Mod(b Vector2[T]) Vector2[T] {
	return Vector2[T]{scalar.Mod(v.X, b.X), scalar.Mod(v.Y, b.Y)}
}

// AddScalar returns v + (s, s).
func (v Vector2[T]) AddScalar(s T) Vector2[T] { return v.Add(Splat2(s)) }

// SubScalar returns v - (s, s).
func (v Vector2[T]) SubScalar(s T) Vector2[T] { return v.Sub(Splat2(s)) }

// MulScalar returns v * s.
func (v Vector2[T]) MulScalar(s T) Vector2[T] { return v.Mul(Splat2(s)) }

// DivScalar returns v / s.
func (v Vector2[T]) DivScalar(s T) Vector2[T] { return v.Div(Splat2(s)) }

// ModScalar returns v % (s, s).
func (v Vector2[T]) ModScalar(s T) Vector2[T] { return v.Mod(Splat2(s)) }

// RSubScalar returns (s, s) - v.
func (v Vector2[T]) RSubScalar(s T) Vector2[T] { return Splat2(s).Sub(v) }

// RDivScalar returns (s, s) / v.
func (v Vector2[T]) RDivScalar(s T) Vector2[T] { return Splat2(s).Div(v) }

// RModScalar returns (s, s) % v.
func (v Vector2[T]) RModScalar(s T) Vector2[T] { return Splat2(s).Mod(v) }

// Pos returns v unchanged (unary plus).
func (v Vector2[T]) Pos() Vector2[T] { return v }

// Neg returns -v. Unsigned components wrap.
func (v Vector2[T]) Neg() Vector2[T] { return Vector2[T]{-v.X, -v.Y} }

// AddAssign sets v = v + b.
func (v *Vector2[T]) AddAssign(b Vector2[T]) { *v = v.Add(b) }

// SubAssign sets v = v - b.
func (v *Vector2[T]) SubAssign(b Vector2[T]) { *v = v.Sub(b) }

// MulAssign sets v = v * b.
func (v *Vector2[T]) MulAssign(b Vector2[T]) { *v = v.Mul(b) }

// DivAssign sets v = v / b.
func (v *Vector2[T]) DivAssign(b Vector2[T]) { *v = v.Div(b) }

// ModAssign sets v = v % b.
func (v *Vector2[T]) ModAssign(b Vector2[T]) { *v = v.Mod(b) }

// AddScalarAssign sets v = v + s.
func (v *Vector2[T]) AddScalarAssign(s T) { *v = v.AddScalar(s) }

// SubScalarAssign sets v = v - s.
func (v *Vector2[T]) SubScalarAssign(s T) { *v = v.SubScalar(s) }

// MulScalarAssign sets v = v * s.
func (v *Vector2[T]) MulScalarAssign(s T) { *v = v.MulScalar(s) }

// DivScalarAssign sets v = v / s.
func (v *Vector2[T]) DivScalarAssign(s T) { *v = v.DivScalar(s) }

// ModScalarAssign sets v = v % s.
func (v *Vector2[T]) ModScalarAssign(s T) { *v = v.ModScalar(s) }

// Inc adds one to every component and returns the updated value.
func (v *Vector2[T]) Inc() Vector2[T] {
	*v = v.AddScalar(1)

	return *v
}

// Dec subtracts one from every component and returns the updated value.
func (v *Vector2[T]) Dec() Vector2[T] {
	*v = v.SubScalar(1)

	return *v
}

// Dot returns v·b.
func (v Vector2[T]) Dot(b Vector2[T]) T { return v.X*b.X + v.Y*b.Y }

// Cross evaluates the x/y terms of the 3-D cross product with both z
// components taken as zero, which always yields the zero vector.
// Use PerpDot for the scalar 2-D cross product.
func (v Vector2[T]) Cross(b Vector2[T]) Vector2[T] {
	var vz, bz T

	return Vector2[T]{
		X: v.Y*bz - vz*b.Y,
		Y: vz*b.X - v.X*bz,
	}
}

// PerpDot returns v.X*b.Y - v.Y*b.X, the z component of (v,0)×(b,0).
func (v Vector2[T]) PerpDot(b Vector2[T]) T { return v.X*b.Y - v.Y*b.X }

// LengthSquared returns v·v.
func (v Vector2[T]) LengthSquared() T { return v.Dot(v) }

// Length returns |v|. Integer results are truncated.
func (v Vector2[T]) Length() T { return scalar.Sqrt(v.LengthSquared()) }

// DistanceSquared returns |v-b|².
func (v Vector2[T]) DistanceSquared(b Vector2[T]) T { return v.Sub(b).LengthSquared() }

// Distance returns |v-b|.
func (v Vector2[T]) Distance(b Vector2[T]) T { return v.Sub(b).Length() }

// Normalize returns v scaled to unit length. See NormalizeTo.
func (v Vector2[T]) Normalize() Vector2[T] { return v.NormalizeTo(1) }

// NormalizeTo returns v scaled so that its length is to.
// Behavior highlights:
//   - |v| ≈ 0 → v unchanged (no division by ~zero).
//   - |v| ≈ to → v unchanged.
//   - Integer vectors scale by the truncated factor to/|v|.
func (v Vector2[T]) NormalizeTo(to T) Vector2[T] {
	l := v.Length()
	if scalar.IsZero(l) || scalar.Equal(l, to) {
		return v
	}

	return v.MulScalar(to / l)
}

// Angle returns dot(v,b)/(|v||b|), the cosine of the angle between v and b.
// Apply math.Acos to obtain radians.
func (v Vector2[T]) Angle(b Vector2[T]) T {
	return v.Dot(b) / (v.Length() * b.Length())
}

// Project returns the projection of v onto b.
func (v Vector2[T]) Project(b Vector2[T]) Vector2[T] {
	return b.MulScalar(v.Dot(b) / b.LengthSquared())
}

// Perpendicular returns the component of v perpendicular to b.
func (v Vector2[T]) Perpendicular(b Vector2[T]) Vector2[T] { return v.Sub(v.Project(b)) }

// Reflect returns the reflection of v about the direction b.
func (v Vector2[T]) Reflect(b Vector2[T]) Vector2[T] {
	p := v.Project(b)

	return p.Add(p).Sub(v)
}

// Cosine returns the dot product of the normalized vectors.
func (v Vector2[T]) Cosine(b Vector2[T]) T { return v.Normalize().Dot(b.Normalize()) }

// Rotate returns v rotated counter-clockwise by theta radians.
func (v Vector2[T]) Rotate(theta T) Vector2[T] {
	s, c := math.Sincos(float64(theta))
	x, y := float64(v.X), float64(v.Y)

	return Vector2[T]{T(c*x - s*y), T(s*x + c*y)}
}

// IsNullVector reports whether every component equals zero.
func (v Vector2[T]) IsNullVector() bool { return scalar.IsZero(v.X) && scalar.IsZero(v.Y) }

// IsUnitVector reports whether |v|² equals one.
func (v Vector2[T]) IsUnitVector() bool { return scalar.Equal(v.LengthSquared(), 1) }

// IsNormalized reports whether |v| equals to.
func (v Vector2[T]) IsNormalized(to T) bool { return scalar.Equal(v.Length(), to) }

// IsOrthogonalTo reports whether v·b equals zero.
func (v Vector2[T]) IsOrthogonalTo(b Vector2[T]) bool { return scalar.IsZero(v.Dot(b)) }

// IsPerpendicularTo is IsOrthogonalTo.
func (v Vector2[T]) IsPerpendicularTo(b Vector2[T]) bool { return v.IsOrthogonalTo(b) }

// IsParallelTo reports whether v·b equals one.
// Only parallel unit vectors are detected.
func (v Vector2[T]) IsParallelTo(b Vector2[T]) bool { return scalar.Equal(v.Dot(b), 1) }

// Abs returns the component-wise absolute value.
func (v Vector2[T]) Abs() Vector2[T] { return Vector2[T]{scalar.Abs(v.X), scalar.Abs(v.Y)} }

// Min returns the component-wise minimum.
func (v Vector2[T]) Min(b Vector2[T]) Vector2[T] {
	return Vector2[T]{scalar.Min(v.X, b.X), scalar.Min(v.Y, b.Y)}
}

// Max returns the component-wise maximum.
func (v Vector2[T]) Max(b Vector2[T]) Vector2[T] {
	return Vector2[T]{scalar.Max(v.X, b.X), scalar.Max(v.Y, b.Y)}
}

// Clamp limits every component to [lo, hi].
func (v Vector2[T]) Clamp(lo, hi Vector2[T]) Vector2[T] { return v.Min(hi).Max(lo) }

// Signum returns the component-wise sign (-1, 0 or +1).
func (v Vector2[T]) Signum() Vector2[T] { return Vector2[T]{scalar.Sign(v.X), scalar.Sign(v.Y)} }

// Lerp returns v + t*(to - v).
func (v Vector2[T]) Lerp(to Vector2[T], t T) Vector2[T] {
	return v.Add(to.Sub(v).MulScalar(t))
}

// LerpVec is Lerp with a per-component factor.
func (v Vector2[T]) LerpVec(to, t Vector2[T]) Vector2[T] {
	return v.Add(to.Sub(v).Mul(t))
}

// Slerp interpolates spherically from v to to.
// Parallel or anti-parallel inputs divide by sin(0).
func (v Vector2[T]) Slerp(to Vector2[T], t T) Vector2[T] {
	return v.SlerpVec(to, Splat2(t))
}

// SlerpVec is Slerp with a per-component factor.
func (v Vector2[T]) SlerpVec(to, t Vector2[T]) Vector2[T] {
	theta := math.Acos(float64(v.Normalize().Dot(to.Normalize())))
	return Vector2[T]{
		slerp(v.X, to.X, t.X, theta),
		slerp(v.Y, to.Y, t.Y, theta),
	}
}

// Equal reports component-wise equality under the scalar policy.
func (v Vector2[T]) Equal(b Vector2[T]) bool {
	return scalar.Equal(v.X, b.X) && scalar.Equal(v.Y, b.Y)
}

// Near is Equal with a caller-chosen tolerance.
func (v Vector2[T]) Near(b Vector2[T], opts ...scalar.Option) bool {
	return scalar.Near(v.X, b.X, opts...) && scalar.Near(v.Y, b.Y, opts...)
}

// Less reports whether every component of v is < the one in b.
func (v Vector2[T]) Less(b Vector2[T]) bool { return v.X < b.X && v.Y < b.Y }

// LessEqual reports whether every component of v is <= the one in b.
func (v Vector2[T]) LessEqual(b Vector2[T]) bool { return v.X <= b.X && v.Y <= b.Y }

// Greater reports whether every component of v is > the one in b.
func (v Vector2[T]) Greater(b Vector2[T]) bool { return v.X > b.X && v.Y > b.Y }

// GreaterEqual reports whether every component of v is >= the one in b.
func (v Vector2[T]) GreaterEqual(b Vector2[T]) bool { return v.X >= b.X && v.Y >= b.Y }

// Swizzle2 gathers two components by selector (see SwizzleIndex).
func (v Vector2[T]) Swizzle2(a, b rune) Vector2[T] {
	return Vector2[T]{v.pick(a), v.pick(b)}
}

func (v Vector2[T]) pick(c rune) T {
	i := SwizzleIndex(c)
	if i >= 2 {
		i = 0
	}

	return v.Array()[i]
}

// Orthogonalize2 returns b with its a-direction removed, normalized
// (one Gram-Schmidt step).
func Orthogonalize2[T scalar.Scalar](a, b Vector2[T]) Vector2[T] {
	return b.Sub(b.Project(a)).Normalize()
}
