// SPDX-License-Identifier: MIT

package vector

import "unicode"

// SwizzleIndex maps a channel selector to a component index, ignoring case:
//
//	x, r, s → 0
//	y, g, t → 1
//	z, b, p → 2
//	w, a, q → 3
//
// Any other rune maps to 0. A receiver with fewer components than the
// returned index also reads component 0.
func SwizzleIndex(c rune) int {
	switch unicode.ToLower(c) {
	case 'y', 'g', 't':
		return 1
	case 'z', 'b', 'p':
		return 2
	case 'w', 'a', 'q':
		return 3
	default:
		return 0
	}
}
