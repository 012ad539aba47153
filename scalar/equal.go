// SPDX-License-Identifier: MIT

// Package scalar: the equality policy.
//
// Purpose:
//   - One definition of "equal" for every component comparison in linalg.
//   - Exact for integers, epsilon-tolerant for floats.
//
// AI-Hints:
//   - Equal is what vector/matrix Equal and every Is* predicate use.
//   - Use Near (or the Near methods) when a different tolerance is needed.
package scalar

import "math"

// Policy decides whether two scalars are the same value.
type Policy[T Scalar] interface {
	Equal(a, b T) bool
}

// Exact compares with ==. It is the policy for integer scalars.
type Exact[T Scalar] struct{}

// Equal reports a == b.
func (Exact[T]) Equal(a, b T) bool { return a == b }

// Approx compares within Eps. It is the policy for float scalars.
type Approx[T Scalar] struct {
	Eps float64 // open bound: |a-b| < Eps
}

// Equal reports |a-b| < p.Eps, evaluated in float64.
func (p Approx[T]) Equal(a, b T) bool {
	return math.Abs(float64(a)-float64(b)) < p.Eps
}

// Compile-time assertions for interface conformance.
var (
	_ Policy[float64] = Approx[float64]{}
	_ Policy[int]     = Exact[int]{}
)

// PolicyFor returns Approx for float kinds and Exact otherwise.
// Implementation:
//   - Stage 1: resolve options (epsilon).
//   - Stage 2: pick the strategy from IsFloat[T].
//
// Notes:
//   - The returned value is a small struct; the interface conversion is
//     the only allocation-like cost.
func PolicyFor[T Scalar](opts ...Option) Policy[T] {
	if !IsFloat[T]() {
		return Exact[T]{}
	}
	o := Resolve(opts...)

	return Approx[T]{Eps: o.eps}
}

// Equal is the package-wide equality policy:
// a == b for integers, |a-b| < Epsilon for floats.
func Equal[T Scalar](a, b T) bool {
	if IsFloat[T]() {
		return math.Abs(float64(a)-float64(b)) < Epsilon
	}

	return a == b
}

// Near is Equal with a configurable tolerance (WithEpsilon).
// Integers still compare exactly.
func Near[T Scalar](a, b T, opts ...Option) bool {
	if !IsFloat[T]() {
		return a == b
	}
	o := Resolve(opts...)

	return math.Abs(float64(a)-float64(b)) < o.eps
}

// IsZero reports Equal(a, 0).
func IsZero[T Scalar](a T) bool {
	return Equal(a, 0)
}

// IsFinite reports whether a is neither NaN nor ±Inf. Integers are always finite.
func IsFinite[T Scalar](a T) bool {
	if !IsFloat[T]() {
		return true
	}
	f := float64(a)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ValidateFinite returns ErrNaNInf for the first non-finite value in vals
// when the resolved policy validates NaN/Inf; nil otherwise.
// Complexity: O(len(vals)).
func ValidateFinite[T Scalar](vals []T, opts ...Option) error {
	o := Resolve(opts...)
	if !o.validateNaNInf || !IsFloat[T]() {
		return nil
	}
	for _, v := range vals {
		if !IsFinite(v) {
			return ErrNaNInf
		}
	}

	return nil
}
