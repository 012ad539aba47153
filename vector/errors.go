// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Only the FromSlice ingestion constructors return errors; every other
// operation is total (see doc.go for the degenerate cases). Tests check
// these with errors.Is.

package vector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

var (
	// ErrNilSlice indicates a nil slice was passed to a FromSlice constructor.
	ErrNilSlice = errors.New("vector: nil slice")

	// ErrDimensionMismatch indicates the slice length differs from the vector arity.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNaNInf aliases scalar.ErrNaNInf so errors.Is works with either name.
	ErrNaNInf = scalar.ErrNaNInf
)

// Operation tags for error wrapping (no magic strings).
const (
	opFromSlice2 = "FromSlice2"
	opFromSlice3 = "FromSlice3"
	opFromSlice4 = "FromSlice4"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSlice checks the ingestion contract shared by the FromSlice constructors:
// non-nil → exact length n → finite values (when the policy asks for it).
func validateSlice[T scalar.Scalar](vals []T, n int, opts ...scalar.Option) error {
	if vals == nil {
		return ErrNilSlice
	}
	if len(vals) != n {
		return ErrDimensionMismatch
	}

	return scalar.ValidateFinite(vals, opts...)
}
