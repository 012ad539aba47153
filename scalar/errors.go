// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.
// Callers match these with errors.Is; the vector and matrix packages
// re-export ErrNaNInf under their own names so a single errors.Is check
// works across the module.

package scalar

import "errors"

var (
	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy
	// requires finite input (FromSlice ingestion with validation on).
	ErrNaNInf = errors.New("scalar: NaN or Inf encountered")

	// ErrInvalidEpsilon signals a negative, NaN or infinite tolerance.
	// Returned by ValidateEpsilon; WithEpsilon panics instead.
	ErrInvalidEpsilon = errors.New("scalar: epsilon must be finite and non-negative")
)
