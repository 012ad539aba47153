// SPDX-License-Identifier: MIT

// Package scalar: generic math helpers.
// Every helper that needs a transcendental routes through float64 and
// converts back to T, so integer instantiations compile and truncate.
package scalar

import "math"

// Conversion factors between degrees and radians.
const (
	Deg2Rad = math.Pi / 180.0
	Rad2Deg = 180.0 / math.Pi
)

// Convert performs the numeric conversion T → T2 (truncating/wrapping per
// Go conversion rules; not value-preserving for lossy targets).
func Convert[T2, T Scalar](a T) T2 { return T2(a) }

// FromFloat converts a float64 to T.
func FromFloat[T Scalar](f float64) T { return T(f) }

// Sqrt returns √a.
func Sqrt[T Scalar](a T) T { return T(math.Sqrt(float64(a))) }

// Sin returns sin(a), a in radians.
func Sin[T Scalar](a T) T { return T(math.Sin(float64(a))) }

// Cos returns cos(a), a in radians.
func Cos[T Scalar](a T) T { return T(math.Cos(float64(a))) }

// Tan returns tan(a), a in radians.
func Tan[T Scalar](a T) T { return T(math.Tan(float64(a))) }

// Acos returns arccos(a) in radians.
func Acos[T Scalar](a T) T { return T(math.Acos(float64(a))) }

// Radians converts degrees to radians.
func Radians[T Scalar](deg T) T { return T(float64(deg) * Deg2Rad) }

// Degrees converts radians to degrees.
func Degrees[T Scalar](rad T) T { return T(float64(rad) * Rad2Deg) }

// Abs returns |a|. Unsigned values are returned unchanged.
func Abs[T Scalar](a T) T {
	if a < 0 {
		return -a
	}

	return a
}

// Min returns the smaller of a and b (b when equal).
func Min[T Scalar](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Max returns the larger of a and b (b when equal).
func Max[T Scalar](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Sign returns -1, 0 or +1 following the sign of a.
// NaN falls through both comparisons and yields 0.
func Sign[T Scalar](a T) T {
	var one T = 1
	switch {
	case a < 0:
		return -one
	case a > 0:
		return one
	default:
		return 0
	}
}

// Mod returns the remainder of a/b with the sign of a.
// Implementation:
//   - floats: math.Mod.
//   - integers: a - (a/b)*b, which equals Go's % because integer division
//     truncates toward zero.
//
// Notes:
//   - Integer b == 0 panics with the runtime's division-by-zero error.
func Mod[T Scalar](a, b T) T {
	if IsFloat[T]() {
		return T(math.Mod(float64(a), float64(b)))
	}

	return a - (a/b)*b
}
