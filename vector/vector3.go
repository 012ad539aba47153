// SPDX-License-Identifier: MIT

package vector

import (
	"math"
	"unsafe"

	"github.com/katalvlaran/linalg/scalar"
)

// Vector3 is a 3-component vector laid out X, Y, Z with no padding.
type Vector3[T scalar.Scalar] struct {
	X, Y, Z T
}

// New3 returns the vector (x, y, z).
func New3[T scalar.Scalar](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Splat3 broadcasts s to every component.
func Splat3[T scalar.Scalar](s T) Vector3[T] {
	return Vector3[T]{X: s, Y: s, Z: s}
}

// FromArray3 builds a vector from a raw [3]T.
func FromArray3[T scalar.Scalar](a [3]T) Vector3[T] {
	return Vector3[T]{X: a[0], Y: a[1], Z: a[2]}
}

// FromSlice3 is FromSlice2 for three components.
func FromSlice3[T scalar.Scalar](vals []T, opts ...scalar.Option) (Vector3[T], error) {
	if err := validateSlice(vals, 3, opts...); err != nil {
		return Vector3[T]{}, vectorErrorf(opFromSlice3, err)
	}

	return Vector3[T]{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// New3From2 promotes xy with the given z.
func New3From2[T scalar.Scalar](xy Vector2[T], z T) Vector3[T] {
	return Vector3[T]{X: xy.X, Y: xy.Y, Z: z}
}

// New3From1And2 builds (x, yz.X, yz.Y).
func New3From1And2[T scalar.Scalar](x T, yz Vector2[T]) Vector3[T] {
	return Vector3[T]{X: x, Y: yz.X, Z: yz.Y}
}

// XY drops Z.
func (v Vector3[T]) XY() Vector2[T] { return Vector2[T]{v.X, v.Y} }

// Array reinterprets v as a flat [3]T sharing v's memory.
func (v *Vector3[T]) Array() *[3]T {
	return (*[3]T)(unsafe.Pointer(v))
}

// At returns component i. Panics if i is out of range.
func (v Vector3[T]) At(i int) T { return v.Array()[i] }

// SetAt stores s into component i. Panics if i is out of range.
func (v *Vector3[T]) SetAt(i int, s T) { v.Array()[i] = s }

// Add returns v + b.
func (v Vector3[T]) Add(b Vector3[T]) Vector3[T] { return Vector3[T]{v.X + b.X, v.Y + b.Y, v.Z + b.Z} }

// Sub returns v - b.
func (v Vector3[T]) Sub(b Vector3[T]) Vector3[T] { return Vector3[T]{v.X - b.X, v.Y - b.Y, v.Z - b.Z} }

// Mul returns the component-wise product.
func (v Vector3[T]) Mul(b Vector3[T]) Vector3[T] { return Vector3[T]{v.X * b.X, v.Y * b.Y, v.Z * b.Z} }

// Div returns the component-wise quotient. Integer division by a zero
// component panics.
func (v Vector3[T]) Div(b Vector3[T]) Vector3[T] { return Vector3[T]{v.X / b.X, v.Y / b.Y, v.Z / b.Z} }

// Mod returns the component-wise remainder (see scalar.Mod).
func (v Vector3[T]) Mod(b Vector3[T]) Vector3[T] {
	return Vector3[T]{scalar.Mod(v.X, b.X), scalar.Mod(v.Y, b.Y), scalar.Mod(v.Z, b.Z)}
}

// AddScalar adds s to every component.
func (v Vector3[T]) AddScalar(s T) Vector3[T] { return v.Add(Splat3(s)) }

// SubScalar subtracts s from every component.
func (v Vector3[T]) SubScalar(s T) Vector3[T] { return v.Sub(Splat3(s)) }

// MulScalar returns v * s.
func (v Vector3[T]) MulScalar(s T) Vector3[T] { return v.Mul(Splat3(s)) }

// DivScalar returns v / s.
func (v Vector3[T]) DivScalar(s T) Vector3[T] { return v.Div(Splat3(s)) }

// ModScalar returns v % (s, s, s).
func (v Vector3[T]) ModScalar(s T) Vector3[T] { return v.Mod(Splat3(s)) }

// RSubScalar returns (s, s, s) - v.
func (v Vector3[T]) RSubScalar(s T) Vector3[T] { return Splat3(s).Sub(v) }

// RDivScalar returns (s, s, s) / v.
func (v Vector3[T]) RDivScalar(s T) Vector3[T] { return Splat3(s).Div(v) }

// RModScalar returns (s, s, s) % v.
func (v Vector3[T]) RModScalar(s T) Vector3[T] { return Splat3(s).Mod(v) }

// Pos returns v unchanged.
func (v Vector3[T]) Pos() Vector3[T] { return v }

// Neg returns -v. Unsigned components wrap.
func (v Vector3[T]) Neg() Vector3[T] { return Vector3[T]{-v.X, -v.Y, -v.Z} }

// AddAssign sets v = v + b.
func (v *Vector3[T]) AddAssign(b Vector3[T]) { *v = v.Add(b) }

// SubAssign sets v = v - b.
func (v *Vector3[T]) SubAssign(b Vector3[T]) { *v = v.Sub(b) }

// MulAssign sets v = v * b.
func (v *Vector3[T]) MulAssign(b Vector3[T]) { *v = v.Mul(b) }

// DivAssign sets v = v / b.
func (v *Vector3[T]) DivAssign(b Vector3[T]) { *v = v.Div(b) }

// ModAssign sets v = v % b.
func (v *Vector3[T]) ModAssign(b Vector3[T]) { *v = v.Mod(b) }

// AddScalarAssign sets v = v + s.
func (v *Vector3[T]) AddScalarAssign(s T) { *v = v.AddScalar(s) }

// SubScalarAssign sets v = v - s.
func (v *Vector3[T]) SubScalarAssign(s T) { *v = v.SubScalar(s) }

// MulScalarAssign sets v = v * s.
func (v *Vector3[T]) MulScalarAssign(s T) { *v = v.MulScalar(s) }

// DivScalarAssign sets v = v / s.
func (v *Vector3[T]) DivScalarAssign(s T) { *v = v.DivScalar(s) }

// ModScalarAssign sets v = v % s.
func (v *Vector3[T]) ModScalarAssign(s T) { *v = v.ModScalar(s) }

// Inc adds one to every component and returns the updated value.
func (v *Vector3[T]) Inc() Vector3[T] {
	*v = v.AddScalar(1)

	return *v
}

// Dec subtracts one from every component and returns the updated value.
func (v *Vector3[T]) Dec() Vector3[T] {
	*v = v.SubScalar(1)

	return *v
}

// Dot returns v·b.
func (v Vector3[T]) Dot(b Vector3[T]) T { return v.X*b.X + v.Y*b.Y + v.Z*b.Z }

// Cross returns v×b.
func (v Vector3[T]) Cross(b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*b.Z - v.Z*b.Y,
		Y: v.Z*b.X - v.X*b.Z,
		Z: v.X*b.Y - v.Y*b.X,
	}
}

// LengthSquared returns v·v.
func (v Vector3[T]) LengthSquared() T { return v.Dot(v) }

// Length returns |v|, truncated for integer T.
func (v Vector3[T]) Length() T { return scalar.Sqrt(v.LengthSquared()) }

// DistanceSquared returns |v-b|².
func (v Vector3[T]) DistanceSquared(b Vector3[T]) T { return v.Sub(b).LengthSquared() }

// Distance returns |v-b|.
func (v Vector3[T]) Distance(b Vector3[T]) T { return v.Sub(b).Length() }

// Normalize returns v scaled to unit length, or v itself when |v| ≈ 0 or |v| ≈ 1.
func (v Vector3[T]) Normalize() Vector3[T] { return v.NormalizeTo(1) }

// NormalizeTo returns v scaled to length to, or v itself when |v| ≈ 0 or |v| ≈ to.
func (v Vector3[T]) NormalizeTo(to T) Vector3[T] {
	l := v.Length()
	if scalar.IsZero(l) || scalar.Equal(l, to) {
		return v
	}

	return v.MulScalar(to / l)
}

// Angle returns the cosine of the angle between v and b.
func (v Vector3[T]) Angle(b Vector3[T]) T {
	return v.Dot(b) / (v.Length() * b.Length())
}

// Project returns the projection of v onto b. A zero b divides by zero.
func (v Vector3[T]) Project(b Vector3[T]) Vector3[T] {
	return b.MulScalar(v.Dot(b) / b.LengthSquared())
}

// Perpendicular returns v minus its projection onto b.
func (v Vector3[T]) Perpendicular(b Vector3[T]) Vector3[T] { return v.Sub(v.Project(b)) }

// Reflect mirrors v about the line through b.
func (v Vector3[T]) Reflect(b Vector3[T]) Vector3[T] {
	p := v.Project(b)

	return p.Add(p).Sub(v)
}

// Cosine returns the dot product of the normalized vectors.
func (v Vector3[T]) Cosine(b Vector3[T]) T { return v.Normalize().Dot(b.Normalize()) }

// IsNullVector reports whether every component is zero under the scalar policy.
func (v Vector3[T]) IsNullVector() bool {
	return scalar.IsZero(v.X) && scalar.IsZero(v.Y) && scalar.IsZero(v.Z)
}

// IsUnitVector reports whether |v|² equals one.
func (v Vector3[T]) IsUnitVector() bool { return scalar.Equal(v.LengthSquared(), 1) }

// IsNormalized reports whether |v| equals to.
func (v Vector3[T]) IsNormalized(to T) bool { return scalar.Equal(v.Length(), to) }

// IsOrthogonalTo reports whether v·b equals zero.
func (v Vector3[T]) IsOrthogonalTo(b Vector3[T]) bool { return scalar.IsZero(v.Dot(b)) }

// IsPerpendicularTo is IsOrthogonalTo.
func (v Vector3[T]) IsPerpendicularTo(b Vector3[T]) bool { return v.IsOrthogonalTo(b) }

// IsParallelTo reports whether v·b equals one (parallel unit vectors only).
func (v Vector3[T]) IsParallelTo(b Vector3[T]) bool { return scalar.Equal(v.Dot(b), 1) }

// Abs returns the component-wise absolute value.
func (v Vector3[T]) Abs() Vector3[T] {
	return Vector3[T]{scalar.Abs(v.X), scalar.Abs(v.Y), scalar.Abs(v.Z)}
}

// Min returns the component-wise minimum.
func (v Vector3[T]) Min(b Vector3[T]) Vector3[T] {
	return Vector3[T]{scalar.Min(v.X, b.X), scalar.Min(v.Y, b.Y), scalar.Min(v.Z, b.Z)}
}

// Max returns the component-wise maximum.
func (v Vector3[T]) Max(b Vector3[T]) Vector3[T] {
	return Vector3[T]{scalar.Max(v.X, b.X), scalar.Max(v.Y, b.Y), scalar.Max(v.Z, b.Z)}
}

// Clamp limits every component to [lo, hi].
func (v Vector3[T]) Clamp(lo, hi Vector3[T]) Vector3[T] { return v.Min(hi).Max(lo) }

// Signum returns the component-wise sign.
func (v Vector3[T]) Signum() Vector3[T] {
	return Vector3[T]{scalar.Sign(v.X), scalar.Sign(v.Y), scalar.Sign(v.Z)}
}

// Lerp returns v + t*(to - v).
func (v Vector3[T]) Lerp(to Vector3[T], t T) Vector3[T] { return v.Add(to.Sub(v).MulScalar(t)) }

// LerpVec is Lerp with a per-component factor.
func (v Vector3[T]) LerpVec(to, t Vector3[T]) Vector3[T] { return v.Add(to.Sub(v).Mul(t)) }

// Slerp interpolates spherically from v to to; (anti)parallel inputs are degenerate.
func (v Vector3[T]) Slerp(to Vector3[T], t T) Vector3[T] { return v.SlerpVec(to, Splat3(t)) }

// SlerpVec is Slerp with a per-component factor.
func (v Vector3[T]) SlerpVec(to, t Vector3[T]) Vector3[T] {
	theta := math.Acos(float64(v.Normalize().Dot(to.Normalize())))
	return Vector3[T]{
		slerp(v.X, to.X, t.X, theta),
		slerp(v.Y, to.Y, t.Y, theta),
		slerp(v.Z, to.Z, t.Z, theta),
	}
}

// Equal reports component-wise equality under the scalar policy.
func (v Vector3[T]) Equal(b Vector3[T]) bool {
	return scalar.Equal(v.X, b.X) && scalar.Equal(v.Y, b.Y) && scalar.Equal(v.Z, b.Z)
}

// Near is Equal with a caller-chosen tolerance.
func (v Vector3[T]) Near(b Vector3[T], opts ...scalar.Option) bool {
	return scalar.Near(v.X, b.X, opts...) && scalar.Near(v.Y, b.Y, opts...) && scalar.Near(v.Z, b.Z, opts...)
}

// Less reports whether every component of v is < the one in b.
func (v Vector3[T]) Less(b Vector3[T]) bool { return v.X < b.X && v.Y < b.Y && v.Z < b.Z }

// LessEqual reports whether every component of v is <= the one in b.
func (v Vector3[T]) LessEqual(b Vector3[T]) bool { return v.X <= b.X && v.Y <= b.Y && v.Z <= b.Z }

// Greater reports whether every component of v is > the one in b.
func (v Vector3[T]) Greater(b Vector3[T]) bool { return v.X > b.X && v.Y > b.Y && v.Z > b.Z }

// GreaterEqual reports whether every component of v is >= the one in b.
func (v Vector3[T]) GreaterEqual(b Vector3[T]) bool {
	return v.X >= b.X && v.Y >= b.Y && v.Z >= b.Z
}

// Swizzle2 gathers two components by selector.
func (v Vector3[T]) Swizzle2(a, b rune) Vector2[T] {
	return Vector2[T]{v.pick(a), v.pick(b)}
}

// Swizzle3 gathers three components by selector; Swizzle3('z','y','x') reverses v.
func (v Vector3[T]) Swizzle3(a, b, c rune) Vector3[T] {
	return Vector3[T]{v.pick(a), v.pick(b), v.pick(c)}
}

func (v Vector3[T]) pick(c rune) T {
	i := SwizzleIndex(c)
	if i >= 3 {
		i = 0
	}

	return v.Array()[i]
}

// Orthogonalize3 returns b made orthogonal to a and normalized.
func Orthogonalize3[T scalar.Scalar](a, b Vector3[T]) Vector3[T] {
	return b.Sub(b.Project(a)).Normalize()
}

// Orthogonalize3x3 runs Gram-Schmidt over (a, b, c) and returns the new b and c.
// a keeps its direction and is used as given.
func Orthogonalize3x3[T scalar.Scalar](a, b, c Vector3[T]) (Vector3[T], Vector3[T]) {
	b = b.Sub(b.Project(a)).Normalize()
	c = c.Sub(c.Project(a)).Sub(c.Project(b)).Normalize()

	return b, c
}
