// SPDX-License-Identifier: MIT

// Package scalar: the Scalar type constraint and the float/integer
// capability probe used to pick exact or approximate behavior.
package scalar

import "golang.org/x/exp/constraints"

// Scalar is the constraint satisfied by every component type a vector or
// matrix can hold: all signed/unsigned integers and both float widths,
// including named types whose underlying type is one of them.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float narrows Scalar to floating-point kinds.
type Float interface {
	constraints.Float
}

// IsFloat reports whether T divides with a fractional result.
// Implementation:
//   - Stage 1: compute 1/2 in T at run time.
//   - Stage 2: a non-zero quotient means T is a float kind.
//
// Behavior highlights:
//   - Works for named types (type Meters float32) where a type switch on
//     float32/float64 would miss.
//
// Complexity:
//   - Time O(1), Space O(1).
func IsFloat[T Scalar]() bool {
	var one, two T = 1, 2

	return one/two != 0
}

// IsSigned reports whether T can represent -1.
func IsSigned[T Scalar]() bool {
	var zero, one T = 0, 1

	return zero-one < zero
}
