// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lvlath3d/vector"
)

// ToFlatArray copies m row by row into 16 scalars:
// X.x X.y X.z X.w, Y.x … Y.w, Z.x … Z.w, W.x … W.w.
// The copy is field by field; the struct layout is never reinterpreted.
func ToFlatArray(m Matrix) [FlatLen]float32 {
	return [FlatLen]float32{
		m.X.X, m.X.Y, m.X.Z, m.X.W,
		m.Y.X, m.Y.Y, m.Y.Z, m.Y.W,
		m.Z.X, m.Z.Y, m.Z.Z, m.Z.W,
		m.W.X, m.W.Y, m.W.Z, m.W.W,
	}
}

// FlattenInto writes ToFlatArray(m) into dst[:16].
// Returns ErrShortBuffer (wrapped) when len(dst) < 16; dst is left untouched.
func (m Matrix) FlattenInto(dst []float32) error {
	if len(dst) < FlatLen {
		return matrixErrorf(opFlattenInto, fmt.Errorf("len %d: %w", len(dst), ErrShortBuffer))
	}
	flat := ToFlatArray(m)
	copy(dst, flat[:])

	return nil
}

// ToF32 converts m into an f32.Mat4. Both are row-major, so
// ToF32(m)[4*r+c] is row r, column c of m.
func ToF32(m Matrix) f32.Mat4 {
	return f32.Mat4(ToFlatArray(m))
}

// FromF32 builds a Matrix from a row-major f32.Mat4.
func FromF32(a f32.Mat4) Matrix {
	return Matrix{
		X: vector.Set(a[0], a[1], a[2], a[3]),
		Y: vector.Set(a[4], a[5], a[6], a[7]),
		Z: vector.Set(a[8], a[9], a[10], a[11]),
		W: vector.Set(a[12], a[13], a[14], a[15]),
	}
}

// String renders the four rows in fixed-width columns for diagnostics.
func (m Matrix) String() string {
	var sb strings.Builder
	rows := [4]struct {
		name string
		v    vector.Vector
	}{{"X", m.X}, {"Y", m.Y}, {"Z", m.Z}, {"W", m.W}}
	for i, r := range rows {
		fmt.Fprintf(&sb, "%s: %20.4f i %20.4f j %20.4f k %20.4f l", r.name, r.v.X, r.v.Y, r.v.Z, r.v.W)
		if i < len(rows)-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
