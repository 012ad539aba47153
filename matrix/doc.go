// Package matrix provides fixed-size square matrices over any scalar.Scalar.
//
// Matrix2, Matrix3 and Matrix4 are arrays of column vectors: m[i] is column
// i and aliases storage, and Array() exposes the same memory as a flat
// column-major [N*N]T, ready for upload to graphics APIs without copying.
//
// The package provides:
//
//   - Construction: Identity, Diagonal, Zero, New (from columns), FromValues
//     (scalars grouped by column), FromArray, checked FromSlice, promotion
//     FromMatrix2To3/To4, FromMatrix3To4 and demotion Upper2/Upper3.
//   - Arithmetic: Add, Sub, Mul (row·column), MulVec (M·v), VecMul (v·M),
//     MulScalar, DivScalar.
//   - Algebra: Determinant, Trace, Transpose, Inverse, TryInverse, and
//     Equal/Near under the scalar equality policy.
//   - Matrix4 builders (transform.go): Translate, Scale, Rotate (axis-angle
//     and principal axes), Skew, Perspective, Orthographic, Viewport and
//     LookAt. Builders post-multiply and return a new value:
//     m.Translate(v) == m.Mul(Translation4(v)).
//
// Degenerate inputs:
//
//   - Matrix2/Matrix3 Inverse of a singular matrix yields Inf/NaN for
//     floats and an integer division panic for integers.
//   - Matrix4 Inverse of a singular matrix returns the identity.
//   - TryInverse returns ErrSingular for every size instead.
//
// All operations are pure value computations and safe for concurrent reads.
package matrix
