// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/linalg/scalar"

// Convert2 converts every component T → T2 with Go conversion rules
// (truncation toward zero, integer wrap-around). Not value-preserving.
func Convert2[T2, T scalar.Scalar](v Vector2[T]) Vector2[T2] {
	return Vector2[T2]{T2(v.X), T2(v.Y)}
}

// Convert3 is Convert2 for Vector3.
func Convert3[T2, T scalar.Scalar](v Vector3[T]) Vector3[T2] {
	return Vector3[T2]{T2(v.X), T2(v.Y), T2(v.Z)}
}

// Convert4 is Convert2 for Vector4.
func Convert4[T2, T scalar.Scalar](v Vector4[T]) Vector4[T2] {
	return Vector4[T2]{T2(v.X), T2(v.Y), T2(v.Z), T2(v.W)}
}

// Bools returns the mask component != 0.
func (v Vector2[T]) Bools() [2]bool { return [2]bool{v.X != 0, v.Y != 0} }

// Bools returns the mask component != 0.
func (v Vector3[T]) Bools() [3]bool { return [3]bool{v.X != 0, v.Y != 0, v.Z != 0} }

// Bools returns the mask component != 0.
func (v Vector4[T]) Bools() [4]bool { return [4]bool{v.X != 0, v.Y != 0, v.Z != 0, v.W != 0} }
