// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/linalg/scalar"

// Named vectors. Generic values cannot be package variables, so each is a
// constructor; Down/Left/Backward wrap for unsigned T.

// Zero2 returns (0, 0).
func Zero2[T scalar.Scalar]() Vector2[T] { return Vector2[T]{} }

// One2 returns (1, 1).
func One2[T scalar.Scalar]() Vector2[T] { return Splat2[T](1) }

// Up2 returns +Y.
func Up2[T scalar.Scalar]() Vector2[T] { return Vector2[T]{0, 1} }

// Right2 returns +X.
func Right2[T scalar.Scalar]() Vector2[T] { return Vector2[T]{1, 0} }

// Down2 returns -Y.
func Down2[T scalar.Scalar]() Vector2[T] { return Up2[T]().Neg() }

// Left2 returns -X.
func Left2[T scalar.Scalar]() Vector2[T] { return Right2[T]().Neg() }

// UnitX2 returns the X basis vector.
func UnitX2[T scalar.Scalar]() Vector2[T] { return Vector2[T]{1, 0} }

// UnitY2 returns the Y basis vector.
func UnitY2[T scalar.Scalar]() Vector2[T] { return Vector2[T]{0, 1} }

// Zero3 returns the zero vector.
func Zero3[T scalar.Scalar]() Vector3[T] { return Vector3[T]{} }

// One3 returns (1, 1, 1).
func One3[T scalar.Scalar]() Vector3[T] { return Splat3[T](1) }

// Up3 returns +Y, the default LookAt up direction.
func Up3[T scalar.Scalar]() Vector3[T] { return Vector3[T]{0, 1, 0} }

// Right3 returns +X.
func Right3[T scalar.Scalar]() Vector3[T] { return Vector3[T]{1, 0, 0} }

// Forward3 returns +Z.
func Forward3[T scalar.Scalar]() Vector3[T] { return Vector3[T]{0, 0, 1} }

// Down3 returns -Y.
func Down3[T scalar.Scalar]() Vector3[T] { return Up3[T]().Neg() }

// Left3 returns -X.
func Left3[T scalar.Scalar]() Vector3[T] { return Right3[T]().Neg() }

// Backward3 returns -Z.
func Backward3[T scalar.Scalar]() Vector3[T] { return Forward3[T]().Neg() }

// UnitX3 returns (1, 0, 0).
func UnitX3[T scalar.Scalar]() Vector3[T] { return Vector3[T]{1, 0, 0} }

// UnitY3 returns (0, 1, 0).
func UnitY3[T scalar.Scalar]() Vector3[T] { return Vector3[T]{0, 1, 0} }

// UnitZ3 returns (0, 0, 1).
func UnitZ3[T scalar.Scalar]() Vector3[T] { return Vector3[T]{0, 0, 1} }

// Zero4 returns the zero vector.
func Zero4[T scalar.Scalar]() Vector4[T] { return Vector4[T]{} }

// One4 returns (1, 1, 1, 1).
func One4[T scalar.Scalar]() Vector4[T] { return Splat4[T](1) }

// UnitX4 returns (1, 0, 0, 0).
func UnitX4[T scalar.Scalar]() Vector4[T] { return Vector4[T]{1, 0, 0, 0} }

// UnitY4 returns (0, 1, 0, 0).
func UnitY4[T scalar.Scalar]() Vector4[T] { return Vector4[T]{0, 1, 0, 0} }

// UnitZ4 returns (0, 0, 1, 0).
func UnitZ4[T scalar.Scalar]() Vector4[T] { return Vector4[T]{0, 0, 1, 0} }

// UnitW4 returns (0, 0, 0, 1), the homogeneous
// basis column of an affine transform.
func UnitW4[T scalar.Scalar]() Vector4[T] { return Vector4[T]{0, 0, 0, 1} }
