// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Core algebra never
// returns errors (degenerate inputs produce NaN/Inf, an integer division
// panic, or the identity fallback of Matrix4.Inverse); these sentinels are
// used by the checked entry points FromSlice* and TryInverse. Tests MUST
// match them via errors.Is.

package matrix

import (
	"errors"

	"github.com/katalvlaran/linalg/scalar"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites
// wrap with an operation tag (fmt.Errorf("FromSlice4: %w", ErrX)); callers
// still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil slice -> dimension mismatch -> NaN/Inf -> singular.

var (
	// ErrNilSlice indicates a nil slice was passed to a FromSlice constructor.
	ErrNilSlice = errors.New("matrix: nil slice")

	// ErrDimensionMismatch indicates the slice length is not N*N.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned by TryInverse when the determinant equals zero
	// under the scalar equality policy.
	ErrSingular = errors.New("matrix: singular matrix")
)

// ErrNaNInf aliases scalar.ErrNaNInf so errors.Is works with either name.
var ErrNaNInf = scalar.ErrNaNInf
