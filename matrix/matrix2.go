// SPDX-License-Identifier: MIT

package matrix

import (
	"unsafe"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Matrix2 is a 2×2 column-major matrix: m[i] is column i.
type Matrix2[T scalar.Scalar] [2]vector.Vector2[T]

// Diagonal2 returns d on the main diagonal and zero elsewhere.
func Diagonal2[T scalar.Scalar](d T) Matrix2[T] {
	return Matrix2[T]{{X: d}, {Y: d}}
}

// Identity2 returns the 2×2 identity.
func Identity2[T scalar.Scalar]() Matrix2[T] { return Diagonal2[T](1) }

// Zero2 returns the 2×2 zero matrix.
func Zero2[T scalar.Scalar]() Matrix2[T] { return Matrix2[T]{} }

// New2 builds a matrix from its columns.
func New2[T scalar.Scalar](c0, c1 vector.Vector2[T]) Matrix2[T] {
	return Matrix2[T]{c0, c1}
}

// FromValues2 builds a matrix from four scalars grouped by column:
// (a, b) is column 0 and (c, d) is column 1.
func FromValues2[T scalar.Scalar](a, b, c, d T) Matrix2[T] {
	return Matrix2[T]{{X: a, Y: b}, {X: c, Y: d}}
}

// FromArray2 builds a matrix from a column-major [4]T.
func FromArray2[T scalar.Scalar](a [4]T) Matrix2[T] {
	return FromValues2(a[0], a[1], a[2], a[3])
}

// FromSlice2 builds a matrix from a column-major slice of 4 scalars.
// Errors (wrapped with "FromSlice2"): ErrNilSlice, ErrDimensionMismatch, ErrNaNInf.
func FromSlice2[T scalar.Scalar](vals []T, opts ...scalar.Option) (Matrix2[T], error) {
	if err := ValidateSlice(vals, 4, opts...); err != nil {
		return Matrix2[T]{}, matrixErrorf(opFromSlice2, err)
	}

	return FromValues2(vals[0], vals[1], vals[2], vals[3]), nil
}

// Array reinterprets m as a flat column-major [4]T sharing m's memory.
func (m *Matrix2[T]) Array() *[4]T {
	return (*[4]T)(unsafe.Pointer(m))
}

// Col returns column i.
func (m Matrix2[T]) Col(i int) vector.Vector2[T] { return m[i] }

// Row returns row i gathered across the columns.
func (m Matrix2[T]) Row(i int) vector.Vector2[T] {
	return vector.New2(m[0].At(i), m[1].At(i))
}

// Value returns the entry at (row, col).
func (m Matrix2[T]) Value(row, col int) T { return m[col].At(row) }

// SetValue stores v at (row, col).
func (m *Matrix2[T]) SetValue(row, col int, v T) { m[col].SetAt(row, v) }

// SetCol replaces column i.
func (m *Matrix2[T]) SetCol(i int, v vector.Vector2[T]) { m[i] = v }

// SetRow replaces row i.
func (m *Matrix2[T]) SetRow(i int, v vector.Vector2[T]) {
	m[0].SetAt(i, v.X)
	m[1].SetAt(i, v.Y)
}

// Add returns m + b.
func (m Matrix2[T]) Add(b Matrix2[T]) Matrix2[T] { return Matrix2[T]{m[0].Add(b[0]), m[1].Add(b[1])} }

// Sub returns m - b.
func (m Matrix2[T]) Sub(b Matrix2[T]) Matrix2[T] { return Matrix2[T]{m[0].Sub(b[0]), m[1].Sub(b[1])} }

// MulScalar scales every entry by s.
func (m Matrix2[T]) MulScalar(s T) Matrix2[T] {
	return Matrix2[T]{m[0].MulScalar(s), m[1].MulScalar(s)}
}

// DivScalar divides every entry by s.
func (m Matrix2[T]) DivScalar(s T) Matrix2[T] {
	return Matrix2[T]{m[0].DivScalar(s), m[1].DivScalar(s)}
}

// Mul returns m·b, entry (i, j) = Row(i)·b.Col(j).
func (m Matrix2[T]) Mul(b Matrix2[T]) Matrix2[T] {
	var r Matrix2[T]
	for i := 0; i < 2; i++ {
		row := m.Row(i)
		for j := 0; j < 2; j++ {
			r.SetValue(i, j, row.Dot(b[j]))
		}
	}

	return r
}

// MulVec returns m·v with v as a column vector.
func (m Matrix2[T]) MulVec(v vector.Vector2[T]) vector.Vector2[T] {
	return m[0].MulScalar(v.X).Add(m[1].MulScalar(v.Y))
}

// VecMul returns v·m with v as a row vector.
func (m Matrix2[T]) VecMul(v vector.Vector2[T]) vector.Vector2[T] {
	return vector.New2(v.Dot(m[0]), v.Dot(m[1]))
}

// Determinant returns ad - cb for columns (a, b), (c, d).
func (m Matrix2[T]) Determinant() T {
	return m[0].X*m[1].Y - m[1].X*m[0].Y
}

// Trace returns the sum of the diagonal.
func (m Matrix2[T]) Trace() T { return m[0].X + m[1].Y }

// Inverse returns adj(m)/det(m). A zero determinant is not guarded:
// floats yield Inf/NaN, integers panic. See TryInverse.
func (m Matrix2[T]) Inverse() Matrix2[T] {
	d := 1 / m.Determinant()
	adj := FromValues2(m[1].Y, -m[0].Y, -m[1].X, m[0].X)

	return adj.MulScalar(d)
}

// TryInverse is Inverse that returns ErrSingular when det(m) ≈ 0.
func (m Matrix2[T]) TryInverse() (Matrix2[T], error) {
	if scalar.IsZero(m.Determinant()) {
		return Matrix2[T]{}, matrixErrorf(opTryInverse2, ErrSingular)
	}

	return m.Inverse(), nil
}

// Transpose returns m with rows and columns swapped.
func (m Matrix2[T]) Transpose() Matrix2[T] {
	return Matrix2[T]{m.Row(0), m.Row(1)}
}

// Equal compares column-wise under the scalar policy.
func (m Matrix2[T]) Equal(b Matrix2[T]) bool { return m[0].Equal(b[0]) && m[1].Equal(b[1]) }

// Near is Equal with a caller-chosen tolerance.
func (m Matrix2[T]) Near(b Matrix2[T], opts ...scalar.Option) bool {
	return m[0].Near(b[0], opts...) && m[1].Near(b[1], opts...)
}
