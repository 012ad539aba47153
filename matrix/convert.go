// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Convert2 converts every entry T → T2 with Go conversion rules.
func Convert2[T2, T scalar.Scalar](m Matrix2[T]) Matrix2[T2] {
	return Matrix2[T2]{vector.Convert2[T2](m[0]), vector.Convert2[T2](m[1])}
}

// Convert3 is Convert2 for Matrix3.
func Convert3[T2, T scalar.Scalar](m Matrix3[T]) Matrix3[T2] {
	return Matrix3[T2]{vector.Convert3[T2](m[0]), vector.Convert3[T2](m[1]), vector.Convert3[T2](m[2])}
}

// Convert4 is Convert2 for Matrix4.
func Convert4[T2, T scalar.Scalar](m Matrix4[T]) Matrix4[T2] {
	return Matrix4[T2]{
		vector.Convert4[T2](m[0]),
		vector.Convert4[T2](m[1]),
		vector.Convert4[T2](m[2]),
		vector.Convert4[T2](m[3]),
	}
}
