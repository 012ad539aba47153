// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/katalvlaran/linalg/scalar"
)

// slerp blends one component: sin((1-t)θ)/sin θ · from + sin(tθ)/sin θ · to.
// θ = 0 or π gives ±Inf/NaN.
func slerp[T scalar.Scalar](from, to, t T, theta float64) T {
	s := math.Sin(theta)
	ft := float64(t)

	return T(math.Sin((1-ft)*theta)/s*float64(from) + math.Sin(ft*theta)/s*float64(to))
}
