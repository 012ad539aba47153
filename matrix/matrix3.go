// SPDX-License-Identifier: MIT

package matrix

import (
	"unsafe"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Matrix3 is a 3×3 column-major matrix: m[i] is column i.
type Matrix3[T scalar.Scalar] [3]vector.Vector3[T]

// Diagonal3 returns d on the main diagonal and zero elsewhere.
func Diagonal3[T scalar.Scalar](d T) Matrix3[T] {
	return Matrix3[T]{{X: d}, {Y: d}, {Z: d}}
}

// Identity3 returns the 3×3 identity.
func Identity3[T scalar.Scalar]() Matrix3[T] { return Diagonal3[T](1) }

// Zero3 returns the 3×3 zero matrix.
func Zero3[T scalar.Scalar]() Matrix3[T] { return Matrix3[T]{} }

// New3 builds a matrix from its columns.
func New3[T scalar.Scalar](c0, c1, c2 vector.Vector3[T]) Matrix3[T] {
	return Matrix3[T]{c0, c1, c2}
}

// FromValues3 builds a matrix from nine scalars grouped by column.
func FromValues3[T scalar.Scalar](a, b, c, d, e, f, g, h, i T) Matrix3[T] {
	return Matrix3[T]{
		{X: a, Y: b, Z: c},
		{X: d, Y: e, Z: f},
		{X: g, Y: h, Z: i},
	}
}

// FromArray3 builds a matrix from a column-major [9]T.
func FromArray3[T scalar.Scalar](a [9]T) Matrix3[T] {
	var m Matrix3[T]
	*m.Array() = a

	return m
}

// FromSlice3 builds a matrix from a column-major slice of 9 scalars.
// Errors (wrapped with "FromSlice3"): ErrNilSlice, ErrDimensionMismatch, ErrNaNInf.
func FromSlice3[T scalar.Scalar](vals []T, opts ...scalar.Option) (Matrix3[T], error) {
	if err := ValidateSlice(vals, 9, opts...); err != nil {
		return Matrix3[T]{}, matrixErrorf(opFromSlice3, err)
	}

	return FromArray3([9]T(vals)), nil
}

// FromMatrix2To3 embeds m in the upper-left block of the identity.
func FromMatrix2To3[T scalar.Scalar](m Matrix2[T]) Matrix3[T] {
	return Matrix3[T]{
		vector.New3From2(m[0], 0),
		vector.New3From2(m[1], 0),
		vector.UnitZ3[T](),
	}
}

// Upper2 returns the upper-left 2×2 block.
func (m Matrix3[T]) Upper2() Matrix2[T] { return Matrix2[T]{m[0].XY(), m[1].XY()} }

// Array reinterprets m as a flat column-major [9]T sharing m's memory.
func (m *Matrix3[T]) Array() *[9]T {
	return (*[9]T)(unsafe.Pointer(m))
}

// Col returns column i.
func (m Matrix3[T]) Col(i int) vector.Vector3[T] { return m[i] }

// Row gathers row i across the columns.
func (m Matrix3[T]) Row(i int) vector.Vector3[T] {
	return vector.New3(m[0].At(i), m[1].At(i), m[2].At(i))
}

// Value returns the entry at (row, col).
func (m Matrix3[T]) Value(row, col int) T { return m[col].At(row) }

// SetValue stores v at (row, col).
func (m *Matrix3[T]) SetValue(row, col int, v T) { m[col].SetAt(row, v) }

// SetCol replaces column i.
func (m *Matrix3[T]) SetCol(i int, v vector.Vector3[T]) { m[i] = v }

// SetRow scatters v into row i.
func (m *Matrix3[T]) SetRow(i int, v vector.Vector3[T]) {
	m[0].SetAt(i, v.X)
	m[1].SetAt(i, v.Y)
	m[2].SetAt(i, v.Z)
}

// Add returns m + b.
func (m Matrix3[T]) Add(b Matrix3[T]) Matrix3[T] {
	return Matrix3[T]{m[0].Add(b[0]), m[1].Add(b[1]), m[2].Add(b[2])}
}

// Sub returns m - b.
func (m Matrix3[T]) Sub(b Matrix3[T]) Matrix3[T] {
	return Matrix3[T]{m[0].Sub(b[0]), m[1].Sub(b[1]), m[2].Sub(b[2])}
}

// MulScalar scales every entry by s.
func (m Matrix3[T]) MulScalar(s T) Matrix3[T] {
	return Matrix3[T]{m[0].MulScalar(s), m[1].MulScalar(s), m[2].MulScalar(s)}
}

// DivScalar divides every entry by s.
func (m Matrix3[T]) DivScalar(s T) Matrix3[T] {
	return Matrix3[T]{m[0].DivScalar(s), m[1].DivScalar(s), m[2].DivScalar(s)}
}

// Mul returns m·b, entry (i, j) = Row(i)·b.Col(j).
func (m Matrix3[T]) Mul(b Matrix3[T]) Matrix3[T] {
	var r Matrix3[T]
	for i := 0; i < 3; i++ {
		row := m.Row(i)
		for j := 0; j < 3; j++ {
			r.SetValue(i, j, row.Dot(b[j]))
		}
	}

	return r
}

// MulVec returns m·v with v as a column vector.
func (m Matrix3[T]) MulVec(v vector.Vector3[T]) vector.Vector3[T] {
	return m[0].MulScalar(v.X).Add(m[1].MulScalar(v.Y)).Add(m[2].MulScalar(v.Z))
}

// VecMul returns v·m with v as a row vector.
func (m Matrix3[T]) VecMul(v vector.Vector3[T]) vector.Vector3[T] {
	return vector.New3(v.Dot(m[0]), v.Dot(m[1]), v.Dot(m[2]))
}

// Determinant expands along the first column: the scalar triple product
// c0·(c1×c2) of the columns.
func (m Matrix3[T]) Determinant() T {
	return m[0].Dot(m[1].Cross(m[2]))
}

// Trace returns the sum of the diagonal.
func (m Matrix3[T]) Trace() T { return m[0].X + m[1].Y + m[2].Z }

// Inverse returns adj(m)/det(m).
// Implementation:
//   - Rows of the adjugate are c1×c2, c2×c0 and c0×c1 for columns c0..c2.
//   - Scale by 1/det without guarding det == 0 (Inf/NaN for floats, a
//     division panic for integers). Use TryInverse for a checked variant.
//
// Complexity: O(1), 9 cross-product terms.
func (m Matrix3[T]) Inverse() Matrix3[T] {
	d := 1 / m.Determinant()
	adj := Matrix3[T]{m[1].Cross(m[2]), m[2].Cross(m[0]), m[0].Cross(m[1])}.Transpose()

	return adj.MulScalar(d)
}

// TryInverse is Inverse that returns ErrSingular when det(m) ≈ 0.
func (m Matrix3[T]) TryInverse() (Matrix3[T], error) {
	if scalar.IsZero(m.Determinant()) {
		return Matrix3[T]{}, matrixErrorf(opTryInverse3, ErrSingular)
	}

	return m.Inverse(), nil
}

// Transpose swaps rows and columns.
func (m Matrix3[T]) Transpose() Matrix3[T] {
	return Matrix3[T]{m.Row(0), m.Row(1), m.Row(2)}
}

// Equal reports entry-wise equality under the scalar policy.
func (m Matrix3[T]) Equal(b Matrix3[T]) bool {
	return m[0].Equal(b[0]) && m[1].Equal(b[1]) && m[2].Equal(b[2])
}

// Near is Equal with a caller-chosen tolerance.
func (m Matrix3[T]) Near(b Matrix3[T], opts ...scalar.Option) bool {
	return m[0].Near(b[0], opts...) && m[1].Near(b[1], opts...) && m[2].Near(b[2], opts...)
}
