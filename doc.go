// Package linalg is a small, generic linear-algebra toolkit for graphics
// and simulation code: fixed-size vectors and square matrices over any
// integer or floating-point scalar.
//
// What is inside?
//
//	scalar/  the Scalar constraint, the equality policy (exact for
//	         integers, |a-b| < 1e-4 for floats), math helpers, options
//	vector/  Vector2, Vector3, Vector4 with arithmetic, geometry, swizzles
//	matrix/  Matrix2, Matrix3, Matrix4 (column-major) plus the Matrix4
//	         affine and projection builders
//
// Dependencies flow one way: scalar → vector → matrix.
//
// Quick example:
//
//	model := matrix.Identity4[float32]().
//		Translate(vector.New3[float32](0, 1, -5)).
//		RotateYDegrees(30)
//	p := model.MulVec(vector.New4[float32](1, 0, 0, 1))
//
// Every type is a plain value with a fixed, padding-free memory layout,
// so Array() hands the components to APIs that expect float buffers.
//
//	go get github.com/katalvlaran/linalg
package linalg
