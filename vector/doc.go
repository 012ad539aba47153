// SPDX-License-Identifier: MIT

// Package vector provides fixed-size generic vectors: Vector2, Vector3 and
// Vector4 over any scalar.Scalar component type.
//
// Layout:
//
//	Each vector is a struct of N same-typed fields declared X, Y[, Z][, W].
//	Go never pads between fields of one type, so a VectorN[T] occupies
//	exactly N*sizeof(T) bytes and Array() can reinterpret it as *[N]T.
//	At(i)/SetAt(i, s) go through that array, so index 0..N-1 and the named
//	fields address the same memory. Buffers of vectors can be handed to
//	graphics or numeric code expecting a flat scalar array.
//
// Semantics:
//
//	Vectors are values; every method except the *Assign/Inc/Dec/SetAt
//	family returns a new vector. Equality and the Is* predicates go
//	through scalar.Equal: exact for integers, within scalar.Epsilon for
//	floats.
//
// Degenerate cases (not errors):
//
//   - Normalize of a (near) zero vector returns it unchanged.
//   - Project/Perpendicular/Reflect onto a zero vector divide by zero:
//     NaN/Inf for floats, a runtime panic for integers.
//   - Slerp between (anti)parallel vectors divides by sin(0).
//   - Angle returns the cosine of the angle, not the angle; apply
//     math.Acos for radians.
//   - IsParallelTo tests dot ≈ 1, which only detects parallel unit vectors.
//   - Unknown swizzle selectors resolve to component 0.
//   - Out-of-range At/SetAt indices panic with Go's bounds check.
//
// Errors:
//
//	Only FromSlice2/3/4 return errors (ErrNilSlice, ErrDimensionMismatch,
//	ErrNaNInf).
package vector
