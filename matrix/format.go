// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// colSep aligns continuation columns under the first one ("matN {").
const colSep = ",\n      "

func render(name string, cols ...fmt.Stringer) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(" {")
	for i, c := range cols {
		if i > 0 {
			sb.WriteString(colSep)
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte('}')

	return sb.String()
}

// String renders one column per line:
//
//	mat2 {vec2 {x=1, y=2},
//	      vec2 {x=3, y=4}}
func (m Matrix2[T]) String() string { return render("mat2", m[0], m[1]) }

// String renders one column per line, as Matrix2.String does.
func (m Matrix3[T]) String() string { return render("mat3", m[0], m[1], m[2]) }

// String renders one column per line, as Matrix2.String does.
func (m Matrix4[T]) String() string { return render("mat4", m[0], m[1], m[2], m[3]) }
