// SPDX-License-Identifier: MIT

package matrix

import (
	"unsafe"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Matrix4 is a 4×4 column-major matrix: m[i] is column i and m[3] holds
// the translation of an affine transform. See transform.go for builders.
type Matrix4[T scalar.Scalar] [4]vector.Vector4[T]

// Diagonal4 returns d on the main diagonal and zero elsewhere.
func Diagonal4[T scalar.Scalar](d T) Matrix4[T] {
	return Matrix4[T]{{X: d}, {Y: d}, {Z: d}, {W: d}}
}

// Identity4 returns the 4×4 identity.
func Identity4[T scalar.Scalar]() Matrix4[T] { return Diagonal4[T](1) }

// Zero4 returns the 4×4 zero matrix.
func Zero4[T scalar.Scalar]() Matrix4[T] { return Matrix4[T]{} }

// New4 builds a matrix from its columns.
func New4[T scalar.Scalar](c0, c1, c2, c3 vector.Vector4[T]) Matrix4[T] {
	return Matrix4[T]{c0, c1, c2, c3}
}

// FromValues4 builds a matrix from sixteen scalars grouped by column:
// (a, b, c, d) is column 0, (e, f, g, h) column 1, and so on.
func FromValues4[T scalar.Scalar](a, b, c, d, e, f, g, h, i, j, k, l, mm, n, o, p T) Matrix4[T] {
	return Matrix4[T]{
		{X: a, Y: b, Z: c, W: d},
		{X: e, Y: f, Z: g, W: h},
		{X: i, Y: j, Z: k, W: l},
		{X: mm, Y: n, Z: o, W: p},
	}
}

// FromArray4 builds a matrix from a column-major [16]T.
func FromArray4[T scalar.Scalar](a [16]T) Matrix4[T] {
	var m Matrix4[T]
	*m.Array() = a

	return m
}

// FromSlice4 ingests a column-major slice of 16 scalars.
// Implementation:
//   - Stage 1: ValidateSlice (nil → length → finite).
//   - Stage 2: copy into a fresh value; vals is not retained.
//
// Errors (wrapped with "FromSlice4"):
//   - ErrNilSlice, ErrDimensionMismatch, ErrNaNInf.
//
// AI-Hints:
//   - Use this at the boundary with untrusted buffers; FromArray4 is the
//     unchecked fast path.
func FromSlice4[T scalar.Scalar](vals []T, opts ...scalar.Option) (Matrix4[T], error) {
	if err := ValidateSlice(vals, 16, opts...); err != nil {
		return Matrix4[T]{}, matrixErrorf(opFromSlice4, err)
	}

	return FromArray4([16]T(vals)), nil
}

// FromMatrix2To4 embeds m in the upper-left block of the identity.
func FromMatrix2To4[T scalar.Scalar](m Matrix2[T]) Matrix4[T] {
	return Matrix4[T]{
		vector.New4From2(m[0], 0, 0),
		vector.New4From2(m[1], 0, 0),
		vector.UnitZ4[T](),
		vector.UnitW4[T](),
	}
}

// FromMatrix3To4 embeds m in the upper-left block of the identity.
func FromMatrix3To4[T scalar.Scalar](m Matrix3[T]) Matrix4[T] {
	return Matrix4[T]{
		vector.New4From3(m[0], 0),
		vector.New4From3(m[1], 0),
		vector.New4From3(m[2], 0),
		vector.UnitW4[T](),
	}
}

// Upper3 returns the upper-left 3×3 block (the linear part of an affine transform).
func (m Matrix4[T]) Upper3() Matrix3[T] {
	return Matrix3[T]{m[0].XYZ(), m[1].XYZ(), m[2].XYZ()}
}

// Array reinterprets m as a flat column-major [16]T sharing m's memory.
// Index i addresses column i/4, row i%4.
func (m *Matrix4[T]) Array() *[16]T {
	return (*[16]T)(unsafe.Pointer(m))
}

// Col returns column i.
func (m Matrix4[T]) Col(i int) vector.Vector4[T] { return m[i] }

// Row gathers row i across the columns.
func (m Matrix4[T]) Row(i int) vector.Vector4[T] {
	return vector.New4(m[0].At(i), m[1].At(i), m[2].At(i), m[3].At(i))
}

// Value returns the entry at (row, col).
func (m Matrix4[T]) Value(row, col int) T { return m[col].At(row) }

// SetValue stores v at (row, col).
func (m *Matrix4[T]) SetValue(row, col int, v T) { m[col].SetAt(row, v) }

// SetCol replaces column i.
func (m *Matrix4[T]) SetCol(i int, v vector.Vector4[T]) { m[i] = v }

// SetRow scatters v into row i.
func (m *Matrix4[T]) SetRow(i int, v vector.Vector4[T]) {
	m[0].SetAt(i, v.X)
	m[1].SetAt(i, v.Y)
	m[2].SetAt(i, v.Z)
	m[3].SetAt(i, v.W)
}

// Add returns m + b.
func (m Matrix4[T]) Add(b Matrix4[T]) Matrix4[T] {
	return Matrix4[T]{m[0].Add(b[0]), m[1].Add(b[1]), m[2].Add(b[2]), m[3].Add(b[3])}
}

// Sub returns m - b.
func (m Matrix4[T]) Sub(b Matrix4[T]) Matrix4[T] {
	return Matrix4[T]{m[0].Sub(b[0]), m[1].Sub(b[1]), m[2].Sub(b[2]), m[3].Sub(b[3])}
}

// MulScalar scales every entry by s.
func (m Matrix4[T]) MulScalar(s T) Matrix4[T] {
	return Matrix4[T]{m[0].MulScalar(s), m[1].MulScalar(s), m[2].MulScalar(s), m[3].MulScalar(s)}
}

// DivScalar divides every entry by s.
func (m Matrix4[T]) DivScalar(s T) Matrix4[T] {
	return Matrix4[T]{m[0].DivScalar(s), m[1].DivScalar(s), m[2].DivScalar(s), m[3].DivScalar(s)}
}

// Mul returns m·b.
// Implementation:
//   - Entry (i, j) = Row(i)·b.Col(j); rows of m are gathered once per i.
//
// Behavior highlights:
//   - Not commutative: a.Mul(b) applies b first, then a, to a column vector.
//
// Complexity: 64 multiplications, no allocation.
func (m Matrix4[T]) Mul(b Matrix4[T]) Matrix4[T] {
	var r Matrix4[T]
	for i := 0; i < 4; i++ {
		row := m.Row(i)
		for j := 0; j < 4; j++ {
			r.SetValue(i, j, row.Dot(b[j]))
		}
	}

	return r
}

// MulVec returns m·v with v as a column vector.
func (m Matrix4[T]) MulVec(v vector.Vector4[T]) vector.Vector4[T] {
	return m[0].MulScalar(v.X).Add(m[1].MulScalar(v.Y)).Add(m[2].MulScalar(v.Z)).Add(m[3].MulScalar(v.W))
}

// VecMul returns v·m with v as a row vector.
func (m Matrix4[T]) VecMul(v vector.Vector4[T]) vector.Vector4[T] {
	return vector.New4(v.Dot(m[0]), v.Dot(m[1]), v.Dot(m[2]), v.Dot(m[3]))
}

// Determinant returns det(m) as the first column of m dotted with the first
// row of its adjugate. Inverse and TryInverse test this same value.
func (m Matrix4[T]) Determinant() T {
	_, det := m.adjugate()

	return det
}

// Trace returns the sum of the diagonal.
func (m Matrix4[T]) Trace() T { return m[0].X + m[1].Y + m[2].Z + m[3].W }

// Inverse returns m⁻¹, or the identity when det(m) is zero under the scalar
// policy: exactly zero for integers, |det| < scalar.Epsilon (1e-4) for floats.
// Implementation:
//   - Stage 1: build the full adjugate from 3×3 cofactors on the flat array.
//   - Stage 2: det = first column of m · first row of the adjugate.
//   - Stage 3: scalar.IsZero(det) → Identity4; else scale by 1/det.
//
// Behavior highlights:
//   - Unlike Matrix2/Matrix3, a singular input never yields NaN/Inf.
//   - The threshold is absolute, so small but regular transforms also fall
//     back: ScaleUniform(0.01) has det 1e-6 and inverts to the identity.
//     Use TryInverse to tell the fallback apart from a real inverse, or
//     rescale before inverting.
//
// Complexity: O(1), ~200 multiplications.
func (m Matrix4[T]) Inverse() Matrix4[T] {
	inv, det := m.adjugate()
	if scalar.IsZero(det) {
		return Identity4[T]()
	}

	return inv.MulScalar(1 / det)
}

// TryInverse returns ErrSingular when det(m) ≈ 0, otherwise Inverse.
func (m Matrix4[T]) TryInverse() (Matrix4[T], error) {
	inv, det := m.adjugate()
	if scalar.IsZero(det) {
		return Matrix4[T]{}, matrixErrorf(opTryInverse4, ErrSingular)
	}

	return inv.MulScalar(1 / det), nil
}

// adjugate returns adj(m) and det(m) computed from the same cofactors.
func (m Matrix4[T]) adjugate() (Matrix4[T], T) {
	s := m.Array()
	var adj Matrix4[T]
	o := adj.Array()

	o[0] = s[5]*s[10]*s[15] - s[5]*s[11]*s[14] - s[9]*s[6]*s[15] + s[9]*s[7]*s[14] + s[13]*s[6]*s[11] - s[13]*s[7]*s[10]
	o[4] = -s[4]*s[10]*s[15] + s[4]*s[11]*s[14] + s[8]*s[6]*s[15] - s[8]*s[7]*s[14] - s[12]*s[6]*s[11] + s[12]*s[7]*s[10]
	o[8] = s[4]*s[9]*s[15] - s[4]*s[11]*s[13] - s[8]*s[5]*s[15] + s[8]*s[7]*s[13] + s[12]*s[5]*s[11] - s[12]*s[7]*s[9]
	o[12] = -s[4]*s[9]*s[14] + s[4]*s[10]*s[13] + s[8]*s[5]*s[14] - s[8]*s[6]*s[13] - s[12]*s[5]*s[10] + s[12]*s[6]*s[9]

	o[1] = -s[1]*s[10]*s[15] + s[1]*s[11]*s[14] + s[9]*s[2]*s[15] - s[9]*s[3]*s[14] - s[13]*s[2]*s[11] + s[13]*s[3]*s[10]
	o[5] = s[0]*s[10]*s[15] - s[0]*s[11]*s[14] - s[8]*s[2]*s[15] + s[8]*s[3]*s[14] + s[12]*s[2]*s[11] - s[12]*s[3]*s[10]
	o[9] = -s[0]*s[9]*s[15] + s[0]*s[11]*s[13] + s[8]*s[1]*s[15] - s[8]*s[3]*s[13] - s[12]*s[1]*s[11] + s[12]*s[3]*s[9]
	o[13] = s[0]*s[9]*s[14] - s[0]*s[10]*s[13] - s[8]*s[1]*s[14] + s[8]*s[2]*s[13] + s[12]*s[1]*s[10] - s[12]*s[2]*s[9]

	o[2] = s[1]*s[6]*s[15] - s[1]*s[7]*s[14] - s[5]*s[2]*s[15] + s[5]*s[3]*s[14] + s[13]*s[2]*s[7] - s[13]*s[3]*s[6]
	o[6] = -s[0]*s[6]*s[15] + s[0]*s[7]*s[14] + s[4]*s[2]*s[15] - s[4]*s[3]*s[14] - s[12]*s[2]*s[7] + s[12]*s[3]*s[6]
	o[10] = s[0]*s[5]*s[15] - s[0]*s[7]*s[13] - s[4]*s[1]*s[15] + s[4]*s[3]*s[13] + s[12]*s[1]*s[7] - s[12]*s[3]*s[5]
	o[14] = -s[0]*s[5]*s[14] + s[0]*s[6]*s[13] + s[4]*s[1]*s[14] - s[4]*s[2]*s[13] - s[12]*s[1]*s[6] + s[12]*s[2]*s[5]

	o[3] = -s[1]*s[6]*s[11] + s[1]*s[7]*s[10] + s[5]*s[2]*s[11] - s[5]*s[3]*s[10] - s[9]*s[2]*s[7] + s[9]*s[3]*s[6]
	o[7] = s[0]*s[6]*s[11] - s[0]*s[7]*s[10] - s[4]*s[2]*s[11] + s[4]*s[3]*s[10] + s[8]*s[2]*s[7] - s[8]*s[3]*s[6]
	o[11] = -s[0]*s[5]*s[11] + s[0]*s[7]*s[9] + s[4]*s[1]*s[11] - s[4]*s[3]*s[9] - s[8]*s[1]*s[7] + s[8]*s[3]*s[5]
	o[15] = s[0]*s[5]*s[10] - s[0]*s[6]*s[9] - s[4]*s[1]*s[10] + s[4]*s[2]*s[9] + s[8]*s[1]*s[6] - s[8]*s[2]*s[5]

	det := s[0]*o[0] + s[1]*o[4] + s[2]*o[8] + s[3]*o[12]

	return adj, det
}

// Transpose swaps rows and columns.
func (m Matrix4[T]) Transpose() Matrix4[T] {
	return Matrix4[T]{m.Row(0), m.Row(1), m.Row(2), m.Row(3)}
}

// Equal reports entry-wise equality under the scalar policy.
func (m Matrix4[T]) Equal(b Matrix4[T]) bool {
	return m[0].Equal(b[0]) && m[1].Equal(b[1]) && m[2].Equal(b[2]) && m[3].Equal(b[3])
}

// Near is Equal with a caller-chosen tolerance.
func (m Matrix4[T]) Near(b Matrix4[T], opts ...scalar.Option) bool {
	return m[0].Near(b[0], opts...) && m[1].Near(b[1], opts...) &&
		m[2].Near(b[2], opts...) && m[3].Near(b[3], opts...)
}
