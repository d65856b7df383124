package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlath3d/matrix"
	"github.com/katalvlaran/lvlath3d/vector"
)

var (
	sinkMatrix matrix.Matrix
	sinkVector vector.Vector
)

// BenchmarkMultiply measures one 4×4 product.
func BenchmarkMultiply(b *testing.B) {
	m1, m2 := general(), affine()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMatrix = matrix.Multiply(m1, m2)
	}
}

// BenchmarkInvert measures determinant + adjoint + scale.
func BenchmarkInvert(b *testing.B) {
	src := general()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := src
		m.Invert()
		sinkMatrix = m
	}
}

// BenchmarkTransform measures applying a matrix to a point.
func BenchmarkTransform(b *testing.B) {
	m := affine()
	v := vector.Point(1, 2, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVector = matrix.Transform(m, v)
	}
}

// BenchmarkLookAt measures camera basis construction.
func BenchmarkLookAt(b *testing.B) {
	eye, target, up := vector.Point(10, 10, 10), vector.Point(0, 0, 0), vector.Direction(0, 0, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMatrix = matrix.LookAt(eye, target, up)
	}
}
