package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lvlath3d/matrix"
	"github.com/katalvlaran/lvlath3d/vector"
)

// TestToFlatArray_RowMajor pins the bit-exact export order.
func TestToFlatArray_RowMajor(t *testing.T) {
	got := matrix.ToFlatArray(general())
	want := [16]float32{4, 7, 2, 3, 0, 5, 1, 2, 1, 0, 6, 1, 2, 1, 0, 3}
	assert.Equal(t, want, got)
}

// TestFlattenInto checks the caller-buffer variant and its short-buffer error.
func TestFlattenInto(t *testing.T) {
	m := matrix.CreateTranslation(vector.Point(7, 8, 9))

	dst := make([]float32, 20)
	require.NoError(t, m.FlattenInto(dst))
	assert.Equal(t, []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 7, 8, 9, 1}, dst[:16])
	assert.Equal(t, []float32{0, 0, 0, 0}, dst[16:], "tail beyond 16 untouched")

	short := make([]float32, 15)
	err := m.FlattenInto(short)
	assert.ErrorIs(t, err, matrix.ErrShortBuffer)
	assert.Equal(t, make([]float32, 15), short, "short buffer untouched")
}

// TestF32Bridge round-trips through golang.org/x/image/math/f32.
func TestF32Bridge(t *testing.T) {
	m := general()
	a := matrix.ToF32(m)
	assert.Equal(t, f32.Mat4{4, 7, 2, 3, 0, 5, 1, 2, 1, 0, 6, 1, 2, 1, 0, 3}, a)
	assert.Equal(t, float32(1), a[4*2+3], "row Z, column w")
	assert.Equal(t, m, matrix.FromF32(a))
}

// TestString renders four fixed-width rows.
func TestString(t *testing.T) {
	s := matrix.Homogeneous().String()
	lines := []string{
		"X:               1.0000 i               0.0000 j               0.0000 k               0.0000 l",
		"Y:               0.0000 i               1.0000 j               0.0000 k               0.0000 l",
		"Z:               0.0000 i               0.0000 j               1.0000 k               0.0000 l",
		"W:               0.0000 i               0.0000 j               0.0000 k               1.0000 l",
	}
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n"+lines[2]+"\n"+lines[3], s)
}
