// SPDX-License-Identifier: MIT

// Package scalar is the leaf of linalg: the scalar type constraint, the
// equality policy shared by every vector and matrix, and the small generic
// math helpers the higher packages are written against.
//
// What & Why:
//
//	Vectors and matrices in linalg are generic over any integer or float
//	type. Two concerns pull in opposite directions:
//	  - integers must compare exactly,
//	  - floats must tolerate the rounding that composed geometry produces
//	    (rotating a unit vector by 90° is already off by more than 1e-6).
//	The package resolves that with a single capability switch, IsFloat[T],
//	and one fixed tolerance, Epsilon = 1e-4, shared by float32 and float64.
//
// Equality:
//
//	Equal(a, b)       exact for integers, |a-b| < Epsilon for floats
//	Near(a, b, opts)  same, with a caller-chosen epsilon (WithEpsilon)
//	PolicyFor[T]()    returns the strategy (Exact or Approx) as a value
//
// Numeric helpers:
//
//	Sqrt, Abs, Sin, Cos, Tan, Acos, Mod, Min, Max, Sign, Radians, Degrees
//	route through float64 so they compile for every Scalar; integer
//	instantiations receive Go's truncating conversion of the result.
//
// Options:
//
//	Functional options (WithEpsilon, WithValidateNaNInf, WithNoValidateNaNInf)
//	configure the tolerance of Near and the NaN/Inf ingestion policy used by
//	the FromSlice constructors of the vector and matrix packages.
//
// Complexity:
//
//	Every function is O(1) and allocation-free.
package scalar
