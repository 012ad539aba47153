// SPDX-License-Identifier: MIT

package vector

import (
	"math"
	"unsafe"

	"github.com/katalvlaran/linalg/scalar"
)

// Vector4 is a 4-component vector laid out X, Y, Z, W with no padding.
// It has no cross product.
type Vector4[T scalar.Scalar] struct {
	X, Y, Z, W T
}

// New4 returns the vector (x, y, z, w).
func New4[T scalar.Scalar](x, y, z, w T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z, W: w}
}

// Splat4 broadcasts s to every component.
func Splat4[T scalar.Scalar](s T) Vector4[T] {
	return Vector4[T]{X: s, Y: s, Z: s, W: s}
}

// FromArray4 builds a vector from a raw [4]T.
func FromArray4[T scalar.Scalar](a [4]T) Vector4[T] {
	return Vector4[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// FromSlice4 is FromSlice2 for four components.
func FromSlice4[T scalar.Scalar](vals []T, opts ...scalar.Option) (Vector4[T], error) {
	if err := validateSlice(vals, 4, opts...); err != nil {
		return Vector4[T]{}, vectorErrorf(opFromSlice4, err)
	}

	return Vector4[T]{X: vals[0], Y: vals[1], Z: vals[2], W: vals[3]}, nil
}

// New4From3 promotes xyz with the given w.
func New4From3[T scalar.Scalar](xyz Vector3[T], w T) Vector4[T] {
	return Vector4[T]{X: xyz.X, Y: xyz.Y, Z: xyz.Z, W: w}
}

// New4From1And3 builds (x, yzw.X, yzw.Y, yzw.Z).
func New4From1And3[T scalar.Scalar](x T, yzw Vector3[T]) Vector4[T] {
	return Vector4[T]{X: x, Y: yzw.X, Z: yzw.Y, W: yzw.Z}
}

// New4From2And2 concatenates xy and zw.
func New4From2And2[T scalar.Scalar](xy, zw Vector2[T]) Vector4[T] {
	return Vector4[T]{X: xy.X, Y: xy.Y, Z: zw.X, W: zw.Y}
}

// New4From2 builds (xy.X, xy.Y, z, w).
func New4From2[T scalar.Scalar](xy Vector2[T], z, w T) Vector4[T] {
	return Vector4[T]{X: xy.X, Y: xy.Y, Z: z, W: w}
}

// XY returns (X, Y).
func (v Vector4[T]) XY() Vector2[T] { return Vector2[T]{v.X, v.Y} }

// ZW returns (Z, W).
func (v Vector4[T]) ZW() Vector2[T] { return Vector2[T]{v.Z, v.W} }

// XYZ drops W; for a point in homogeneous form this is the position when W is 1.
func (v Vector4[T]) XYZ() Vector3[T] { return Vector3[T]{v.X, v.Y, v.Z} }

// Array reinterprets v as a flat [4]T sharing v's memory.
func (v *Vector4[T]) Array() *[4]T {
	return (*[4]T)(unsafe.Pointer(v))
}

// At returns component i (0 → X ... 3 → W). Panics if i is out of range.
func (v Vector4[T]) At(i int) T { return v.Array()[i] }

// SetAt stores s into component i. Panics if i is out of range.
func (v *Vector4[T]) SetAt(i int, s T) { v.Array()[i] = s }

// Add returns v + b.
func (v Vector4[T]) Add(b Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + b.X, v.Y + b.Y, v.Z + b.Z, v.W + b.W}
}

// Sub returns v - b.
func (v Vector4[T]) Sub(b Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - b.X, v.Y - b.Y, v.Z - b.Z, v.W - b.W}
}

// Mul returns the component-wise product.
func (v Vector4[T]) Mul(b Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X * b.X, v.Y * b.Y, v.Z * b.Z, v.W * b.W}
}

// Div returns the component-wise quotient. Integer division by a zero
// component panics.
func (v Vector4[T]) Div(b Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X / b.X, v.Y / b.Y, v.Z / b.Z, v.W / b.W}
}

// Mod returns the component-wise remainder (see scalar.Mod).
func (v Vector4[T]) Mod(b Vector4[T]) Vector4[T] {
	return Vector4[T]{scalar.Mod(v.X, b.X), scalar.Mod(v.Y, b.Y), scalar.Mod(v.Z, b.Z), scalar.Mod(v.W, b.W)}
}

// AddScalar adds s to every component.
func (v Vector4[T]) AddScalar(s T) Vector4[T] { return v.Add(Splat4(s)) }

// SubScalar subtracts s from every component.
func (v Vector4[T]) SubScalar(s T) Vector4[T] { return v.Sub(Splat4(s)) }

// MulScalar returns v * s.
func (v Vector4[T]) MulScalar(s T) Vector4[T] { return v.Mul(Splat4(s)) }

// DivScalar returns v / s.
func (v Vector4[T]) DivScalar(s T) Vector4[T] { return v.Div(Splat4(s)) }

// ModScalar returns v % (s, s, s, s).
func (v Vector4[T]) ModScalar(s T) Vector4[T] { return v.Mod(Splat4(s)) }

// RSubScalar returns (s, s, s, s) - v.
func (v Vector4[T]) RSubScalar(s T) Vector4[T] { return Splat4(s).Sub(v) }

// RDivScalar returns (s, s, s, s) / v.
func (v Vector4[T]) RDivScalar(s T) Vector4[T] { return Splat4(s).Div(v) }

// RModScalar returns (s, s, s, s) % v.
func (v Vector4[T]) RModScalar(s T) Vector4[T] { return Splat4(s).Mod(v) }

// Pos returns v unchanged.
func (v Vector4[T]) Pos() Vector4[T] { return v }

// Neg returns -v. Unsigned components wrap.
func (v Vector4[T]) Neg() Vector4[T] { return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W} }

// AddAssign sets v = v + b.
func (v *Vector4[T]) AddAssign(b Vector4[T]) { *v = v.Add(b) }

// SubAssign sets v = v - b.
func (v *Vector4[T]) SubAssign(b Vector4[T]) { *v = v.Sub(b) }

// MulAssign sets v = v * b.
func (v *Vector4[T]) MulAssign(b Vector4[T]) { *v = v.Mul(b) }

// DivAssign sets v = v / b.
func (v *Vector4[T]) DivAssign(b Vector4[T]) { *v = v.Div(b) }

// ModAssign sets v = v % b.
func (v *Vector4[T]) ModAssign(b Vector4[T]) { *v = v.Mod(b) }

// AddScalarAssign sets v = v + s.
func (v *Vector4[T]) AddScalarAssign(s T) { *v = v.AddScalar(s) }

// SubScalarAssign sets v = v - s.
func (v *Vector4[T]) SubScalarAssign(s T) { *v = v.SubScalar(s) }

// MulScalarAssign sets v = v * s.
func (v *Vector4[T]) MulScalarAssign(s T) { *v = v.MulScalar(s) }

// DivScalarAssign sets v = v / s.
func (v *Vector4[T]) DivScalarAssign(s T) { *v = v.DivScalar(s) }

// ModScalarAssign sets v = v % s.
func (v *Vector4[T]) ModScalarAssign(s T) { *v = v.ModScalar(s) }

// Inc adds one to every component and returns the updated value.
func (v *Vector4[T]) Inc() Vector4[T] {
	*v = v.AddScalar(1)

	return *v
}

// Dec subtracts one from every component and returns the updated value.
func (v *Vector4[T]) Dec() Vector4[T] {
	*v = v.SubScalar(1)

	return *v
}

// Dot returns v·b.
func (v Vector4[T]) Dot(b Vector4[T]) T { return v.X*b.X + v.Y*b.Y + v.Z*b.Z + v.W*b.W }

// LengthSquared returns v·v.
func (v Vector4[T]) LengthSquared() T { return v.Dot(v) }

// Length returns |v|, truncated for integer T.
func (v Vector4[T]) Length() T { return scalar.Sqrt(v.LengthSquared()) }

// DistanceSquared returns |v-b|².
func (v Vector4[T]) DistanceSquared(b Vector4[T]) T { return v.Sub(b).LengthSquared() }

// Distance returns |v-b|.
func (v Vector4[T]) Distance(b Vector4[T]) T { return v.Sub(b).Length() }

// Normalize is NormalizeTo(1).
func (v Vector4[T]) Normalize() Vector4[T] { return v.NormalizeTo(1) }

// NormalizeTo returns v scaled to length to, or v itself when |v| ≈ 0 or |v| ≈ to.
func (v Vector4[T]) NormalizeTo(to T) Vector4[T] {
	l := v.Length()
	if scalar.IsZero(l) || scalar.Equal(l, to) {
		return v
	}

	return v.MulScalar(to / l)
}

// Angle returns the cosine of the angle between v and b.
func (v Vector4[T]) Angle(b Vector4[T]) T {
	return v.Dot(b) / (v.Length() * b.Length())
}

// Project returns the projection of v onto b. A zero b divides by zero.
func (v Vector4[T]) Project(b Vector4[T]) Vector4[T] {
	return b.MulScalar(v.Dot(b) / b.LengthSquared())
}

// Perpendicular returns v minus its projection onto b.
func (v Vector4[T]) Perpendicular(b Vector4[T]) Vector4[T] { return v.Sub(v.Project(b)) }

// Reflect mirrors v about the line through b.
func (v Vector4[T]) Reflect(b Vector4[T]) Vector4[T] {
	p := v.Project(b)

	return p.Add(p).Sub(v)
}

// Cosine returns the dot product of the normalized vectors.
func (v Vector4[T]) Cosine(b Vector4[T]) T { return v.Normalize().Dot(b.Normalize()) }

// IsNullVector reports whether every component is zero under the scalar policy.
func (v Vector4[T]) IsNullVector() bool {
	return scalar.IsZero(v.X) && scalar.IsZero(v.Y) && scalar.IsZero(v.Z) && scalar.IsZero(v.W)
}

// IsUnitVector reports whether |v|² equals one.
func (v Vector4[T]) IsUnitVector() bool { return scalar.Equal(v.LengthSquared(), 1) }

// IsNormalized reports whether |v| equals to.
func (v Vector4[T]) IsNormalized(to T) bool { return scalar.Equal(v.Length(), to) }

// IsOrthogonalTo reports whether v·b equals zero.
func (v Vector4[T]) IsOrthogonalTo(b Vector4[T]) bool { return scalar.IsZero(v.Dot(b)) }

// IsPerpendicularTo is IsOrthogonalTo.
func (v Vector4[T]) IsPerpendicularTo(b Vector4[T]) bool { return v.IsOrthogonalTo(b) }

// IsParallelTo reports whether v·b equals one, so only parallel unit
// vectors are detected.
func (v Vector4[T]) IsParallelTo(b Vector4[T]) bool { return scalar.Equal(v.Dot(b), 1) }

// Abs returns the component-wise absolute value.
func (v Vector4[T]) Abs() Vector4[T] {
	return Vector4[T]{scalar.Abs(v.X), scalar.Abs(v.Y), scalar.Abs(v.Z), scalar.Abs(v.W)}
}

// Min returns the component-wise minimum.
func (v Vector4[T]) Min(b Vector4[T]) Vector4[T] {
	return Vector4[T]{scalar.Min(v.X, b.X), scalar.Min(v.Y, b.Y), scalar.Min(v.Z, b.Z), scalar.Min(v.W, b.W)}
}

// Max returns the component-wise maximum.
func (v Vector4[T]) Max(b Vector4[T]) Vector4[T] {
	return Vector4[T]{scalar.Max(v.X, b.X), scalar.Max(v.Y, b.Y), scalar.Max(v.Z, b.Z), scalar.Max(v.W, b.W)}
}

// Clamp limits every component to [lo, hi].
func (v Vector4[T]) Clamp(lo, hi Vector4[T]) Vector4[T] { return v.Min(hi).Max(lo) }

// Signum returns the component-wise sign.
func (v Vector4[T]) Signum() Vector4[T] {
	return Vector4[T]{scalar.Sign(v.X), scalar.Sign(v.Y), scalar.Sign(v.Z), scalar.Sign(v.W)}
}

// Lerp returns v + t*(to - v).
func (v Vector4[T]) Lerp(to Vector4[T], t T) Vector4[T] { return v.Add(to.Sub(v).MulScalar(t)) }

// LerpVec is Lerp with a per-component factor.
func (v Vector4[T]) LerpVec(to, t Vector4[T]) Vector4[T] { return v.Add(to.Sub(v).Mul(t)) }

// Slerp interpolates spherically from v to to.
func (v Vector4[T]) Slerp(to Vector4[T], t T) Vector4[T] { return v.SlerpVec(to, Splat4(t)) }

// SlerpVec is Slerp with a per-component factor.
func (v Vector4[T]) SlerpVec(to, t Vector4[T]) Vector4[T] {
	theta := math.Acos(float64(v.Normalize().Dot(to.Normalize())))
	return Vector4[T]{
		slerp(v.X, to.X, t.X, theta),
		slerp(v.Y, to.Y, t.Y, theta),
		slerp(v.Z, to.Z, t.Z, theta),
		slerp(v.W, to.W, t.W, theta),
	}
}

// Equal reports component-wise equality under the scalar policy.
func (v Vector4[T]) Equal(b Vector4[T]) bool {
	return scalar.Equal(v.X, b.X) && scalar.Equal(v.Y, b.Y) &&
		scalar.Equal(v.Z, b.Z) && scalar.Equal(v.W, b.W)
}

// Near is Equal with a caller-chosen tolerance.
func (v Vector4[T]) Near(b Vector4[T], opts ...scalar.Option) bool {
	return scalar.Near(v.X, b.X, opts...) && scalar.Near(v.Y, b.Y, opts...) &&
		scalar.Near(v.Z, b.Z, opts...) && scalar.Near(v.W, b.W, opts...)
}

// Less reports whether every component of v is < the one in b.
func (v Vector4[T]) Less(b Vector4[T]) bool {
	return v.X < b.X && v.Y < b.Y && v.Z < b.Z && v.W < b.W
}

// LessEqual reports whether every component of v is <= the one in b.
func (v Vector4[T]) LessEqual(b Vector4[T]) bool {
	return v.X <= b.X && v.Y <= b.Y && v.Z <= b.Z && v.W <= b.W
}

// Greater reports whether every component of v is > the one in b.
func (v Vector4[T]) Greater(b Vector4[T]) bool {
	return v.X > b.X && v.Y > b.Y && v.Z > b.Z && v.W > b.W
}

// GreaterEqual reports whether every component of v is >= the one in b.
func (v Vector4[T]) GreaterEqual(b Vector4[T]) bool {
	return v.X >= b.X && v.Y >= b.Y && v.Z >= b.Z && v.W >= b.W
}

// Swizzle2 gathers two components by selector (see SwizzleIndex).
func (v Vector4[T]) Swizzle2(a, b rune) Vector2[T] {
	return Vector2[T]{v.pick(a), v.pick(b)}
}

// Swizzle3 gathers three components by selector.
func (v Vector4[T]) Swizzle3(a, b, c rune) Vector3[T] {
	return Vector3[T]{v.pick(a), v.pick(b), v.pick(c)}
}

// Swizzle4 gathers four components by selector; Swizzle4('a','b','g','r') turns RGBA into ABGR.
func (v Vector4[T]) Swizzle4(a, b, c, d rune) Vector4[T] {
	return Vector4[T]{v.pick(a), v.pick(b), v.pick(c), v.pick(d)}
}

func (v Vector4[T]) pick(c rune) T { return v.Array()[SwizzleIndex(c)] }
