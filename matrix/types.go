// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvlath3d/vector"

// Epsilon is the determinant magnitude below which Invert treats a matrix as singular.
const Epsilon float32 = 1e-40

// FlatLen is the number of scalars produced by ToFlatArray and FlattenInto.
const FlatLen = 16

// Matrix is a 4×4 homogeneous transform stored as four row vectors.
//
//	X: 1 0 0 0 --> left / basis X
//	Y: 0 1 0 0 --> direction / basis Y
//	Z: 0 0 1 0 --> up / basis Z
//	W: 0 0 0 1 --> position (translation + homogeneous row)
type Matrix struct {
	X, Y, Z, W vector.Vector
}
