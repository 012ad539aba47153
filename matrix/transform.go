// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Affine and projection builders for Matrix4.
//   - Raw constructors (Translation4, Rotation4, ...) plus chaining methods
//     that post-multiply the receiver: m.Translate(v) == m.Mul(Translation4(v)).
//
// Conventions:
//   - Column vectors, right-handed, counter-clockwise positive rotation.
//   - Trigonometry and projection terms are evaluated in float64 and
//     converted to T once per entry, so Degrees variants of integer
//     matrices see the exact radian value.
//   - Builders never mutate the receiver.

package matrix

import (
	"math"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Translation4 returns the identity with v in the translation column.
func Translation4[T scalar.Scalar](v vector.Vector3[T]) Matrix4[T] {
	m := Identity4[T]()
	m[3] = vector.New4From3(v, 1)

	return m
}

// Scaling4 returns diag(v.X, v.Y, v.Z, 1).
func Scaling4[T scalar.Scalar](v vector.Vector3[T]) Matrix4[T] {
	return Matrix4[T]{{X: v.X}, {Y: v.Y}, {Z: v.Z}, {W: 1}}
}

// Rotation4 returns a counter-clockwise rotation of rad radians about axis.
// Implementation:
//   - Stage 1: lift axis to float64; normalize it unless it is already unit.
//   - Stage 2: Rodrigues' formula R = cI + (1-c)·aaᵀ + s·[a]ₓ.
//
// Behavior highlights:
//   - A zero axis yields cI, a uniform scale by cos(rad); no error.
//
// AI-Hints:
//   - Use RotationX4/Y4/Z4 for the principal axes; they skip the outer product.
func Rotation4[T scalar.Scalar](rad float64, axis vector.Vector3[T]) Matrix4[T] {
	a := vector.Convert3[float64](axis)
	if !a.IsUnitVector() {
		a = a.Normalize()
	}
	s, c := math.Sincos(rad)
	t := 1 - c

	return fromFloat4[T]([16]float64{
		a.X*a.X*t + c, a.Y*a.X*t + a.Z*s, a.X*a.Z*t - a.Y*s, 0,
		a.X*a.Y*t - a.Z*s, a.Y*a.Y*t + c, a.Y*a.Z*t + a.X*s, 0,
		a.X*a.Z*t + a.Y*s, a.Y*a.Z*t - a.X*s, a.Z*a.Z*t + c, 0,
		0, 0, 0, 1,
	})
}

// RotationX4 rotates about +X: Y turns toward Z.
func RotationX4[T scalar.Scalar](rad float64) Matrix4[T] {
	s, c := math.Sincos(rad)

	return fromFloat4[T]([16]float64{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	})
}

// RotationY4 rotates about +Y: Z turns toward X.
func RotationY4[T scalar.Scalar](rad float64) Matrix4[T] {
	s, c := math.Sincos(rad)

	return fromFloat4[T]([16]float64{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	})
}

// RotationZ4 rotates about +Z: X turns toward Y.
func RotationZ4[T scalar.Scalar](rad float64) Matrix4[T] {
	s, c := math.Sincos(rad)

	return fromFloat4[T]([16]float64{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Shear4 adds tan(x)·X to Y and tan(y)·Y to X (angles in radians).
func Shear4[T scalar.Scalar](x, y float64) Matrix4[T] {
	return fromFloat4[T]([16]float64{
		1, math.Tan(x), 0, 0,
		math.Tan(y), 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Translate post-multiplies by Translation4(v).
func (m Matrix4[T]) Translate(v vector.Vector3[T]) Matrix4[T] { return m.Mul(Translation4(v)) }

// TranslateXYZ is Translate with the offset given per axis.
func (m Matrix4[T]) TranslateXYZ(x, y, z T) Matrix4[T] { return m.Translate(vector.New3(x, y, z)) }

// Scale post-multiplies by Scaling4(v).
func (m Matrix4[T]) Scale(v vector.Vector3[T]) Matrix4[T] { return m.Mul(Scaling4(v)) }

// ScaleXYZ is Scale with the factors given per axis.
func (m Matrix4[T]) ScaleXYZ(x, y, z T) Matrix4[T] { return m.Scale(vector.New3(x, y, z)) }

// ScaleUniform scales all three axes by s.
func (m Matrix4[T]) ScaleUniform(s T) Matrix4[T] { return m.Scale(vector.Splat3(s)) }

// Rotate post-multiplies by Rotation4(rad, axis).
func (m Matrix4[T]) Rotate(rad T, axis vector.Vector3[T]) Matrix4[T] {
	return m.Mul(Rotation4(float64(rad), axis))
}

// RotateDegrees is Rotate with the angle in degrees.
func (m Matrix4[T]) RotateDegrees(deg T, axis vector.Vector3[T]) Matrix4[T] {
	return m.Mul(Rotation4(float64(deg)*scalar.Deg2Rad, axis))
}

// RotateX post-multiplies by RotationX4(rad).
func (m Matrix4[T]) RotateX(rad T) Matrix4[T] { return m.Mul(RotationX4[T](float64(rad))) }

// RotateY post-multiplies by RotationY4(rad).
func (m Matrix4[T]) RotateY(rad T) Matrix4[T] { return m.Mul(RotationY4[T](float64(rad))) }

// RotateZ post-multiplies by RotationZ4(rad).
func (m Matrix4[T]) RotateZ(rad T) Matrix4[T] { return m.Mul(RotationZ4[T](float64(rad))) }

// RotateXDegrees is RotateX with the angle in degrees.
func (m Matrix4[T]) RotateXDegrees(deg T) Matrix4[T] {
	return m.Mul(RotationX4[T](float64(deg) * scalar.Deg2Rad))
}

// RotateYDegrees is RotateY with the angle in degrees.
func (m Matrix4[T]) RotateYDegrees(deg T) Matrix4[T] {
	return m.Mul(RotationY4[T](float64(deg) * scalar.Deg2Rad))
}

// RotateZDegrees is RotateZ with the angle in degrees.
func (m Matrix4[T]) RotateZDegrees(deg T) Matrix4[T] {
	return m.Mul(RotationZ4[T](float64(deg) * scalar.Deg2Rad))
}

// Skew post-multiplies by Shear4(x, y).
func (m Matrix4[T]) Skew(x, y T) Matrix4[T] { return m.Mul(Shear4[T](float64(x), float64(y))) }

// SkewDegrees is Skew with both angles in degrees.
func (m Matrix4[T]) SkewDegrees(x, y T) Matrix4[T] {
	return m.Mul(Shear4[T](float64(x)*scalar.Deg2Rad, float64(y)*scalar.Deg2Rad))
}

// SkewX is Skew(rad, 0).
func (m Matrix4[T]) SkewX(rad T) Matrix4[T] { return m.Skew(rad, 0) }

// SkewY is Skew(0, rad).
func (m Matrix4[T]) SkewY(rad T) Matrix4[T] { return m.Skew(0, rad) }

// SkewXDegrees is SkewDegrees(deg, 0).
func (m Matrix4[T]) SkewXDegrees(deg T) Matrix4[T] { return m.SkewDegrees(deg, 0) }

// SkewYDegrees is SkewDegrees(0, deg).
func (m Matrix4[T]) SkewYDegrees(deg T) Matrix4[T] { return m.SkewDegrees(0, deg) }

// Perspective post-multiplies by a right-handed perspective projection
// mapping view depth [near, far] to clip z in [-1, 1].
// Implementation:
//   - fovDeg is the full vertical field of view in degrees.
//   - Half-height of the near plane: tan(fov/2)·near.
//
// Behavior highlights:
//   - near == far, aspect == 0 or fov == 0 divide by zero (Inf/NaN for
//     floats); inputs are not validated.
func (m Matrix4[T]) Perspective(fovDeg, aspect, near, far T) Matrix4[T] {
	fov, a, n, f := float64(fovDeg)*scalar.Deg2Rad, float64(aspect), float64(near), float64(far)
	rng := math.Tan(fov/2) * n
	sx := n / (rng * a)
	sy := n / rng
	sz := -(f + n) / (f - n)
	pz := -2 * f * n / (f - n)

	return m.Mul(fromFloat4[T]([16]float64{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, -1,
		0, 0, pz, 0,
	}))
}

// Orthographic post-multiplies by the projection mapping the box
// [l,r]×[b,t]×[-near,-far] to the clip cube [-1,1]³.
func (m Matrix4[T]) Orthographic(left, right, bottom, top, near, far T) Matrix4[T] {
	return m.orthographic(float64(left), float64(right), float64(bottom), float64(top), float64(near), float64(far))
}

// Orthographic2D is Orthographic with near -1 and far 1. The depth range
// stays in float64, so unsigned T is accepted.
func (m Matrix4[T]) Orthographic2D(left, right, bottom, top T) Matrix4[T] {
	return m.orthographic(float64(left), float64(right), float64(bottom), float64(top), -1, 1)
}

func (m Matrix4[T]) orthographic(l, r, b, t, n, f float64) Matrix4[T] {
	return m.Mul(fromFloat4[T]([16]float64{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, -2 / (f - n), 0,
		-(r + l) / (r - l), -(t + b) / (t - b), -(f + n) / (f - n), 1,
	}))
}

// Frustum is an alias of Orthographic; it does not build an off-axis
// perspective frustum.
func (m Matrix4[T]) Frustum(left, right, bottom, top, near, far T) Matrix4[T] {
	return m.Orthographic(left, right, bottom, top, near, far)
}

// Viewport post-multiplies by the map from NDC to the window rectangle
// (x, y, w, h) with depth remapped to [0, 1].
func (m Matrix4[T]) Viewport(x, y, w, h T) Matrix4[T] {
	hw, hh := float64(w)/2, float64(h)/2

	return m.Mul(fromFloat4[T]([16]float64{
		hw, 0, 0, 0,
		0, hh, 0, 0,
		0, 0, 0.5, 0,
		float64(x) + hw, float64(y) + hh, 0.5, 1,
	}))
}

// LookAt is LookAtUp with +Y as up.
func (m Matrix4[T]) LookAt(eye, at vector.Vector3[T]) Matrix4[T] {
	return m.LookAtUp(eye, at, vector.Up3[T]())
}

// LookAtUp post-multiplies by the view matrix of a camera at eye looking
// toward at. The camera looks down its local -Z.
// Implementation:
//   - z = normalize(eye - at), x = normalize(up × z), y = z × x.
//   - Rows are x, y, z; the translation column is -(x·eye, y·eye, z·eye).
//
// Behavior highlights:
//   - eye == at or up parallel to the view direction yields a degenerate
//     basis (zero rows); no error is reported.
func (m Matrix4[T]) LookAtUp(eye, at, up vector.Vector3[T]) Matrix4[T] {
	e := vector.Convert3[float64](eye)
	z := e.Sub(vector.Convert3[float64](at)).Normalize()
	x := vector.Convert3[float64](up).Cross(z).Normalize()
	y := z.Cross(x)

	return m.Mul(fromFloat4[T]([16]float64{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(e), -y.Dot(e), -z.Dot(e), 1,
	}))
}

// Translation returns the translation column of an affine transform.
func (m Matrix4[T]) Translation() vector.Vector3[T] { return m[3].XYZ() }

// fromFloat4 converts a column-major float64 array to Matrix4[T].
func fromFloat4[T scalar.Scalar](a [16]float64) Matrix4[T] {
	var r Matrix4[T]
	o := r.Array()
	for i, v := range a {
		o[i] = T(v)
	}

	return r
}
