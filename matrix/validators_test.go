// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// TestValidateSliceLen covers nil inputs, matching and mismatched lengths.
func TestValidateSliceLen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		vals    []float32
		n       int
		wantErr error
	}{
		{"nil", nil, 4, matrix.ErrNilSlice},
		{"empty non-nil", []float32{}, 4, matrix.ErrDimensionMismatch},
		{"short", make([]float32, 8), 9, matrix.ErrDimensionMismatch},
		{"long", make([]float32, 17), 16, matrix.ErrDimensionMismatch},
		{"exact", make([]float32, 16), 16, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSliceLen(tc.vals, tc.n)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSlice checks the NotNil → Length → Finite priority.
func TestValidateSlice(t *testing.T) {
	t.Parallel()

	nan := []float64{1, math.NaN(), 3, 4}
	inf := []float64{1, 2, math.Inf(-1), 4}

	require.ErrorIs(t, matrix.ValidateSlice[float64](nil, 4), matrix.ErrNilSlice)
	require.ErrorIs(t, matrix.ValidateSlice([]float64{math.NaN()}, 4), matrix.ErrDimensionMismatch,
		"length is checked before finiteness")
	require.ErrorIs(t, matrix.ValidateSlice(nan, 4), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSlice(inf, 4), scalar.ErrNaNInf)
	require.NoError(t, matrix.ValidateSlice(nan, 4, scalar.WithNoValidateNaNInf()))
	require.NoError(t, matrix.ValidateSlice([]int{1, 2, 3, 4}, 4))
}
