// SPDX-License-Identifier: MIT
// Package matrix_test covers behavior shared by every matrix size:
// memory layout, checked ingestion, conversion and rendering.
package matrix_test

import (
	"errors"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

func TestLayout_ColumnMajorNoPadding(t *testing.T) {
	require.Equal(t, 4*unsafe.Sizeof(float32(0)), unsafe.Sizeof(matrix.Matrix2[float32]{}))
	require.Equal(t, 9*unsafe.Sizeof(float32(0)), unsafe.Sizeof(matrix.Matrix3[float32]{}))
	require.Equal(t, 16*unsafe.Sizeof(float32(0)), unsafe.Sizeof(matrix.Matrix4[float32]{}))
	require.Equal(t, 9*unsafe.Sizeof(int16(0)), unsafe.Sizeof(matrix.Matrix3[int16]{}))

	m := matrix.Identity4[int]()
	m.Array()[12] = 7
	require.Equal(t, 7, m[3].X, "flat index 12 is column 3, row 0")
	require.Equal(t, 7, m.Value(0, 3))

	m3 := matrix.FromValues3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, [9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, *m3.Array())

	m2 := matrix.Zero2[int]()
	m2[1].SetAt(0, 4)
	require.Equal(t, [4]int{0, 0, 4, 0}, *m2.Array())
}

func TestFromSlice(t *testing.T) {
	t.Parallel()

	vals := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	m2, err := matrix.FromSlice2(vals[:4])
	require.NoError(t, err)
	require.Equal(t, matrix.FromValues2(1.0, 2, 3, 4), m2)

	m3, err := matrix.FromSlice3(vals[:9])
	require.NoError(t, err)
	require.Equal(t, matrix.FromValues3(1.0, 2, 3, 4, 5, 6, 7, 8, 9), m3)

	m4 := MustFromSlice4(t, vals)
	require.Equal(t, matrix.FromArray4([16]float64(vals)), m4)

	vals[0] = 99
	require.Equal(t, 1.0, m4[0].X, "the slice is copied, not retained")
}

func TestFromSlice_Errors(t *testing.T) {
	t.Parallel()

	nan := make([]float64, 16)
	nan[5] = math.NaN()

	tests := []struct {
		name    string
		call    func() error
		wantErr error
		wantMsg string
	}{
		{"nil 2", func() error { _, err := matrix.FromSlice2[float32](nil); return err },
			matrix.ErrNilSlice, "FromSlice2: matrix: nil slice"},
		{"short 3", func() error { _, err := matrix.FromSlice3(make([]int, 4)); return err },
			matrix.ErrDimensionMismatch, "FromSlice3: matrix: dimension mismatch"},
		{"long 4", func() error { _, err := matrix.FromSlice4(make([]int, 17)); return err },
			matrix.ErrDimensionMismatch, "FromSlice4: matrix: dimension mismatch"},
		{"nan 4", func() error { _, err := matrix.FromSlice4(nan); return err },
			matrix.ErrNaNInf, ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
			if tc.wantMsg != "" {
				require.EqualError(t, err, tc.wantMsg)
			}
		})
	}

	m, err := matrix.FromSlice4(nan, scalar.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(m[1].Y))
}

func TestConvert(t *testing.T) {
	assert.Equal(t, matrix.Diagonal4(2), matrix.Convert4[int](matrix.Diagonal4(2.7)))
	assert.Equal(t, matrix.FromValues3[float32](1, 2, 3, 4, 5, 6, 7, 8, 9),
		matrix.Convert3[float32](matrix.FromValues3(1, 2, 3, 4, 5, 6, 7, 8, 9)))
	assert.Equal(t, matrix.FromValues2[uint8](1, 0, 255, 4),
		matrix.Convert2[uint8](matrix.FromValues2(1, 0, 255, 4)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "mat2 {vec2 {x=1, y=2},\n      vec2 {x=3, y=4}}", matrix.FromValues2(1, 2, 3, 4).String())
	assert.Equal(t,
		"mat3 {vec3 {x=1, y=0, z=0},\n      vec3 {x=0, y=1, z=0},\n      vec3 {x=0, y=0, z=1}}",
		matrix.Identity3[int]().String())
	assert.Equal(t,
		"mat4 {vec4 {x=1, y=0, z=0, w=0},\n"+
			"      vec4 {x=0, y=1, z=0, w=0},\n"+
			"      vec4 {x=0, y=0, z=1, w=0},\n"+
			"      vec4 {x=1.5, y=2, z=3, w=1}}",
		matrix.Translation4(vector.New3(1.5, 2, 3)).String())
}
