// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/lvlath3d/vector"
)

// Multiply returns the row-major product m1 × m2.
// Each output row is the corresponding m1 row multiplied by m2, so
// Transform(Multiply(a, b), v) == Transform(b, Transform(a, v)).
//
// Complexity: 64 multiplications, no allocations.
func Multiply(m1, m2 Matrix) Matrix {
	return Matrix{
		X: rowTimes(m1.X, m2),
		Y: rowTimes(m1.Y, m2),
		Z: rowTimes(m1.Z, m2),
		W: rowTimes(m1.W, m2),
	}
}

// Transform applies m to v as a 1×4 row vector: out[i] = Σk v[k]·m[k][i].
// All four components take part, so points (w=1) pick up the W-row translation
// and directions (w=0) do not.
func Transform(m Matrix, v vector.Vector) vector.Vector {
	return rowTimes(v, m)
}

// TransformInPlace overwrites *v with Transform(m, *v).
func TransformInPlace(m Matrix, v *vector.Vector) {
	*v = rowTimes(*v, m)
}

// rowTimes computes r × m for a single row vector r.
func rowTimes(r vector.Vector, m Matrix) vector.Vector {
	return vector.Vector{
		X: r.X*m.X.X + r.Y*m.Y.X + r.Z*m.Z.X + r.W*m.W.X,
		Y: r.X*m.X.Y + r.Y*m.Y.Y + r.Z*m.Z.Y + r.W*m.W.Y,
		Z: r.X*m.X.Z + r.Y*m.Y.Z + r.Z*m.Z.Z + r.W*m.W.Z,
		W: r.X*m.X.W + r.Y*m.Y.W + r.Z*m.Z.W + r.W*m.W.W,
	}
}

// Scale multiplies every entry of m by factor.
func (m *Matrix) Scale(factor float32) {
	m.X.Scale(factor)
	m.Y.Scale(factor)
	m.Z.Scale(factor)
	m.W.Scale(factor)
}

// Transpose mirrors m across its main diagonal in place.
func (m *Matrix) Transpose() {
	m.X.Y, m.Y.X = m.Y.X, m.X.Y
	m.X.Z, m.Z.X = m.Z.X, m.X.Z
	m.X.W, m.W.X = m.W.X, m.X.W
	m.Y.Z, m.Z.Y = m.Z.Y, m.Y.Z
	m.Y.W, m.W.Y = m.W.Y, m.Y.W
	m.Z.W, m.W.Z = m.W.Z, m.Z.W
}

// Transposed returns the transpose of m, leaving m unchanged.
func Transposed(m Matrix) Matrix {
	m.Transpose()

	return m
}

// Equals reports whether every row of m1 matches m2 under vector.Equals.
// vector.Equals ignores w, so the fourth column is not compared; use
// ApproxEqual for a full 16-entry comparison.
func Equals(m1, m2 Matrix) bool {
	return vector.Equals(m1.X, m2.X) &&
		vector.Equals(m1.Y, m2.Y) &&
		vector.Equals(m1.Z, m2.Z) &&
		vector.Equals(m1.W, m2.W)
}

// ApproxEqual reports whether all 16 entries of a and b differ by at most tol.
func ApproxEqual(a, b Matrix, tol float32) bool {
	fa, fb := ToFlatArray(a), ToFlatArray(b)
	for i := range fa {
		if math32.Abs(fa[i]-fb[i]) > tol {
			return false
		}
	}

	return true
}
