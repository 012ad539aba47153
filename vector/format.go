// SPDX-License-Identifier: MIT

package vector

import "fmt"

// String renders v as "vec2 {x=1, y=2}".
func (v Vector2[T]) String() string {
	return fmt.Sprintf("vec2 {x=%v, y=%v}", v.X, v.Y)
}

// String renders v as "vec3 {x=1, y=2, z=3}".
func (v Vector3[T]) String() string {
	return fmt.Sprintf("vec3 {x=%v, y=%v, z=%v}", v.X, v.Y, v.Z)
}

// String renders v as "vec4 {x=1, y=2, z=3, w=4}".
func (v Vector4[T]) String() string {
	return fmt.Sprintf("vec4 {x=%v, y=%v, z=%v, w=%v}", v.X, v.Y, v.Z, v.W)
}
