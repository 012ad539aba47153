// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for ingestion checks.
//   - Keep constructors minimal by delegating nil/length/finite checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - The composite validator follows a fixed sequence: NotNil → Length → Finite.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// Operation tags for error wrapping (no magic strings).
const (
	opFromSlice2  = "FromSlice2"
	opFromSlice3  = "FromSlice3"
	opFromSlice4  = "FromSlice4"
	opTryInverse2 = "TryInverse2"
	opTryInverse3 = "TryInverse3"
	opTryInverse4 = "TryInverse4"
)

// matrixErrorf wraps an underlying error with the given operation tag.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSliceLen ensures vals is non-nil and holds exactly n scalars.
//
// Errors: ErrNilSlice, ErrDimensionMismatch (unwrapped).
// Complexity: O(1).
func ValidateSliceLen[T scalar.Scalar](vals []T, n int) error {
	if vals == nil {
		return ErrNilSlice
	}
	if len(vals) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSlice – Composite: NotNil → Length(n) → Finite (policy-controlled).
//
// Errors: ErrNilSlice, ErrDimensionMismatch, ErrNaNInf (unwrapped).
// Complexity: O(n).
// AI-Hints: pass scalar.WithNoValidateNaNInf() to ingest raw GPU buffers as-is.
func ValidateSlice[T scalar.Scalar](vals []T, n int, opts ...scalar.Option) error {
	if err := ValidateSliceLen(vals, n); err != nil {
		return err
	}

	return scalar.ValidateFinite(vals, opts...)
}
