// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvlath3d/vector"

// LookAt returns the camera basis for an eye looking at target.
// Implementation:
//   - Stage 1: forward = normalize(target − eye).
//   - Stage 2: right = normalize(forward × up); up' = right × forward.
//   - Stage 3: rows X = right, Y = up', Z = −forward (right-handed, the camera
//     looks down its local −Z), all with w = 0.
//   - Stage 4: W = (eye.x, eye.y, eye.z, 1).
//
// The result maps camera-local points to world space; View returns its inverse.
// eye == target or up parallel to the view direction degenerate to zero rows.
func LookAt(eye, target, up vector.Vector) Matrix {
	right, trueUp, back := cameraBasis(eye, target, up)

	return Matrix{
		X: right,
		Y: trueUp,
		Z: back,
		W: vector.Point(eye.X, eye.Y, eye.Z),
	}
}

// View returns the world-to-camera matrix for an eye looking at target.
// Implementation:
//   - Stage 1: build the LookAt rotation rows (right, up', −forward).
//   - Stage 2: transpose them to get the inverse rotation.
//   - Stage 3: prepend the translation by −eye, which leaves the rotated
//     negative eye position in the W row.
//
// Multiply(LookAt(e, t, u), View(e, t, u)) is the identity within float tolerance.
func View(eye, target, up vector.Vector) Matrix {
	right, trueUp, back := cameraBasis(eye, target, up)
	rot := Matrix{X: right, Y: trueUp, Z: back, W: vector.Set(0, 0, 0, 1)}
	rot.Transpose()

	return Multiply(CreateTranslation(vector.Negate(eye)), rot)
}

// cameraBasis computes the orthonormal right, up and back directions.
func cameraBasis(eye, target, up vector.Vector) (right, trueUp, back vector.Vector) {
	forward := vector.Sub(target, eye)
	forward.Normalize()
	right = vector.CrossProduct(forward, up)
	right.Normalize()
	trueUp = vector.CrossProduct(right, forward)
	back = vector.Negate(forward)

	return vector.Direction(right.X, right.Y, right.Z),
		vector.Direction(trueUp.X, trueUp.Y, trueUp.Z),
		vector.Direction(back.X, back.Y, back.Z)
}
