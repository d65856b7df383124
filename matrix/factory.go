// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/lvlath3d/vector"
)

// Homogeneous returns the 4×4 identity.
func Homogeneous() Matrix {
	return Matrix{
		X: vector.Set(1, 0, 0, 0),
		Y: vector.Set(0, 1, 0, 0),
		Z: vector.Set(0, 0, 1, 0),
		W: vector.Set(0, 0, 0, 1),
	}
}

// Empty returns the all-zero matrix.
func Empty() Matrix {
	return Matrix{}
}

// CreateScale returns the identity with v.X, v.Y, v.Z on the diagonal.
func CreateScale(v vector.Vector) Matrix {
	m := Homogeneous()
	m.X.X = v.X
	m.Y.Y = v.Y
	m.Z.Z = v.Z

	return m
}

// CreateTranslation returns the identity with the W row set to (v.X, v.Y, v.Z, 1).
func CreateTranslation(v vector.Vector) Matrix {
	m := Homogeneous()
	m.W.X = v.X
	m.W.Y = v.Y
	m.W.Z = v.Z

	return m
}

// CreateScaleAndTranslation combines CreateScale(scale) and
// CreateTranslation(offset) in a single identity-based matrix.
func CreateScaleAndTranslation(scale, offset vector.Vector) Matrix {
	m := Homogeneous()
	m.X.X, m.W.X = scale.X, offset.X
	m.Y.Y, m.W.Y = scale.Y, offset.Y
	m.Z.Z, m.W.Z = scale.Z, offset.Z

	return m
}

// CreateRotationXSinCos builds a rotation about X from a precomputed sine and cosine.
// Implementation:
//   - Stage 1: reset to Empty.
//   - Stage 2: write X.x = 1, W.w = 1 and the Y/Z 2×2 block.
//
// Transform(CreateRotationXSinCos(sin(a), cos(a)), v) matches v.RotateAroundX(a).
func CreateRotationXSinCos(sin, cos float32) Matrix {
	m := Empty()
	m.X.X = 1
	m.Y.Y = cos
	m.Y.Z = -sin
	m.Z.Y = sin
	m.Z.Z = cos
	m.W.W = 1

	return m
}

// CreateRotationX returns the rotation about X by angle radians.
func CreateRotationX(angle float32) Matrix {
	s, c := math32.Sincos(angle)

	return CreateRotationXSinCos(s, c)
}

// CreateRotationYSinCos builds a rotation about Y from a precomputed sine and cosine.
// Transform(CreateRotationYSinCos(sin(a), cos(a)), v) matches v.RotateAroundY(a).
func CreateRotationYSinCos(sin, cos float32) Matrix {
	m := Empty()
	m.X.X = cos
	m.X.Z = sin
	m.Y.Y = 1
	m.Z.X = -sin
	m.Z.Z = cos
	m.W.W = 1

	return m
}

// CreateRotationY returns the rotation about Y by angle radians.
func CreateRotationY(angle float32) Matrix {
	s, c := math32.Sincos(angle)

	return CreateRotationYSinCos(s, c)
}

// CreateRotationZSinCos builds a rotation about Z from a precomputed sine and cosine.
// Transform(CreateRotationZSinCos(sin(a), cos(a)), v) matches v.RotateAroundZ(a).
func CreateRotationZSinCos(sin, cos float32) Matrix {
	m := Empty()
	m.X.X = cos
	m.X.Y = -sin
	m.Y.X = sin
	m.Y.Y = cos
	m.Z.Z = 1
	m.W.W = 1

	return m
}

// CreateRotationZ returns the rotation about Z by angle radians.
func CreateRotationZ(angle float32) Matrix {
	s, c := math32.Sincos(angle)

	return CreateRotationZSinCos(s, c)
}

// CreateRotation returns the rotation by angle radians about an arbitrary axis.
// Implementation:
//   - Stage 1: normalize axis (x, y, z only; a zero axis stays zero).
//   - Stage 2: fill the 3×3 block with the axis-angle formula
//     R = cos·I + (1−cos)·a·aᵀ + sin·[a]×.
//   - Stage 3: W row = (0, 0, 0, 1), w column = 0.
//
// For the unit axes the result equals CreateRotationX/Y/Z(angle).
// A zero axis degenerates to cos·I in the 3×3 block.
func CreateRotation(axis vector.Vector, angle float32) Matrix {
	s, c := math32.Sincos(angle)
	axis.Normalize()
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Matrix{
		X: vector.Set(t*x*x+c, t*x*y-z*s, t*z*x+y*s, 0),
		Y: vector.Set(t*x*y+z*s, t*y*y+c, t*y*z-x*s, 0),
		Z: vector.Set(t*z*x-y*s, t*y*z+x*s, t*z*z+c, 0),
		W: vector.Set(0, 0, 0, 1),
	}
}
