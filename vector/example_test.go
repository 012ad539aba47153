// SPDX-License-Identifier: MIT
package vector_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/vector"
)

func ExampleVector3_Cross() {
	x := vector.New3(1, 0, 0)
	y := vector.New3(0, 1, 0)
	fmt.Println(x.Cross(y))
	// Output: vec3 {x=0, y=0, z=1}
}

func ExampleVector3_Swizzle3() {
	rgb := vector.New3(10, 20, 30)
	fmt.Println(rgb.Swizzle3('b', 'g', 'r'))
	fmt.Println(rgb.Swizzle2('z', 'x'))
	// Output:
	// vec3 {x=30, y=20, z=10}
	// vec2 {x=30, y=10}
}

func ExampleVector2_Normalize() {
	v := vector.New2(0.0, 5.0)
	fmt.Println(v.Normalize())
	fmt.Println(vector.Zero2[float64]().Normalize())
	// Output:
	// vec2 {x=0, y=1}
	// vec2 {x=0, y=0}
}

func ExampleVector2_Angle() {
	a, b := vector.New2(1.0, 0.0), vector.New2(1.0, 1.0)
	cos := a.Angle(b)
	fmt.Printf("cos=%.4f deg=%.1f\n", cos, math.Acos(cos)*180/math.Pi)
	// Output: cos=0.7071 deg=45.0
}

func ExampleVector4_Array() {
	v := vector.New4[float32](1, 2, 3, 4)
	arr := v.Array()
	arr[3] = 0
	fmt.Println(v.W, len(arr))
	// Output: 0 4
}
