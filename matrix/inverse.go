// SPDX-License-Identifier: MIT
// Package matrix: determinant, classical adjoint and inversion by cofactor
// expansion. Entries are named by column letter and row number:
//
//	a1 b1 c1 d1   <- X
//	a2 b2 c2 d2   <- Y
//	a3 b3 c3 d3   <- Z
//	a4 b4 c4 d4   <- W

package matrix

import "github.com/chewxy/math32"

// det3 returns the determinant of the 3×3 matrix whose columns are
// (a1,a2,a3), (b1,b2,b3) and (c1,c2,c3).
func det3(a1, a2, a3, b1, b2, b3, c1, c2, c3 float32) float32 {
	return a1*(b2*c3-b3*c2) - b1*(a2*c3-a3*c2) + c1*(a2*b3-a3*b2)
}

// Determinant returns det(m) by cofactor expansion along the X row.
func Determinant(m Matrix) float32 {
	a := m.X.X * det3(m.Y.Y, m.Z.Y, m.W.Y, m.Y.Z, m.Z.Z, m.W.Z, m.Y.W, m.Z.W, m.W.W)
	b := m.X.Y * det3(m.Y.X, m.Z.X, m.W.X, m.Y.Z, m.Z.Z, m.W.Z, m.Y.W, m.Z.W, m.W.W)
	c := m.X.Z * det3(m.Y.X, m.Z.X, m.W.X, m.Y.Y, m.Z.Y, m.W.Y, m.Y.W, m.Z.W, m.W.W)
	d := m.X.W * det3(m.Y.X, m.Z.X, m.W.X, m.Y.Y, m.Z.Y, m.W.Y, m.Y.Z, m.Z.Z, m.W.Z)

	return a - b + c - d
}

// Adjoint replaces m with its classical adjoint (transpose of the cofactor matrix).
// Implementation:
//   - Stage 1: snapshot all 16 entries.
//   - Stage 2: write each cofactor C(i,j), with sign (-1)^(i+j), into slot (j,i).
//
// Complexity: 16 3×3 determinants, no allocations.
func (m *Matrix) Adjoint() {
	a1, b1, c1, d1 := m.X.X, m.X.Y, m.X.Z, m.X.W
	a2, b2, c2, d2 := m.Y.X, m.Y.Y, m.Y.Z, m.Y.W
	a3, b3, c3, d3 := m.Z.X, m.Z.Y, m.Z.Z, m.Z.W
	a4, b4, c4, d4 := m.W.X, m.W.Y, m.W.Z, m.W.W

	m.X.X = det3(b2, b3, b4, c2, c3, c4, d2, d3, d4)
	m.Y.X = -det3(a2, a3, a4, c2, c3, c4, d2, d3, d4)
	m.Z.X = det3(a2, a3, a4, b2, b3, b4, d2, d3, d4)
	m.W.X = -det3(a2, a3, a4, b2, b3, b4, c2, c3, c4)

	m.X.Y = -det3(b1, b3, b4, c1, c3, c4, d1, d3, d4)
	m.Y.Y = det3(a1, a3, a4, c1, c3, c4, d1, d3, d4)
	m.Z.Y = -det3(a1, a3, a4, b1, b3, b4, d1, d3, d4)
	m.W.Y = det3(a1, a3, a4, b1, b3, b4, c1, c3, c4)

	m.X.Z = det3(b1, b2, b4, c1, c2, c4, d1, d2, d4)
	m.Y.Z = -det3(a1, a2, a4, c1, c2, c4, d1, d2, d4)
	m.Z.Z = det3(a1, a2, a4, b1, b2, b4, d1, d2, d4)
	m.W.Z = -det3(a1, a2, a4, b1, b2, b4, c1, c2, c4)

	m.X.W = -det3(b1, b2, b3, c1, c2, c3, d1, d2, d3)
	m.Y.W = det3(a1, a2, a3, c1, c2, c3, d1, d2, d3)
	m.Z.W = -det3(a1, a2, a3, b1, b2, b3, d1, d2, d3)
	m.W.W = det3(a1, a2, a3, b1, b2, b3, c1, c2, c3)
}

// Invert replaces m with its inverse, adj(m)/det(m).
// When |det(m)| < Epsilon the matrix is singular and m becomes the identity;
// this fallback is intentional and not reported. Use Inverse to observe it.
func (m *Matrix) Invert() {
	m.invert()
}

// invert does the work of Invert and reports whether m was invertible.
func (m *Matrix) invert() bool {
	det := Determinant(*m)
	if math32.Abs(det) < Epsilon {
		*m = Homogeneous()

		return false
	}
	m.Adjoint()
	m.Scale(1 / det)

	return true
}

// Inverse returns the inverse of m and true, or the identity and false when
// m is singular. m itself is not modified.
func Inverse(m Matrix) (Matrix, bool) {
	ok := m.invert()

	return m, ok
}
