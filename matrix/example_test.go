package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath3d/matrix"
	"github.com/katalvlaran/lvlath3d/vector"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCreateRotationZ
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Rotate the point (1,0,0) a quarter turn about Z.
//
// Convention:
//
//	Row vector times matrix; the rotation matches vector.RotateAroundZ.
func ExampleCreateRotationZ() {
	m := matrix.CreateRotationZ(vector.DegToRad(90))
	p := matrix.Transform(m, vector.Point(1, 0, 0))
	fmt.Println(vector.Equals(p, vector.Point(0, -1, 0)), p.W)
	// Output:
	// true 1
}

// ExampleMatrix_Invert inverts a scale-and-translate transform and applies it.
func ExampleMatrix_Invert() {
	m := matrix.CreateScaleAndTranslation(vector.Direction(2, 2, 2), vector.Point(1, 2, 3))
	p := matrix.Transform(m, vector.Point(1, 1, 1))

	m.Invert()
	back := matrix.Transform(m, p)
	fmt.Printf("forward=(%.1f, %.1f, %.1f) back=(%.1f, %.1f, %.1f)\n", p.X, p.Y, p.Z, back.X, back.Y, back.Z)
	// Output:
	// forward=(3.0, 4.0, 5.0) back=(1.0, 1.0, 1.0)
}

// ExampleLookAt builds a camera basis at (10,10,10) looking at the origin.
func ExampleLookAt() {
	m := matrix.LookAt(vector.Point(10, 10, 10), vector.Point(0, 0, 0), vector.Direction(0, 0, 1))
	fmt.Printf("eye=(%.0f, %.0f, %.0f, %.0f)\n", m.W.X, m.W.Y, m.W.Z, m.W.W)
	fmt.Printf("back=(%.3f, %.3f, %.3f)\n", m.Z.X, m.Z.Y, m.Z.Z)
	// Output:
	// eye=(10, 10, 10, 1)
	// back=(0.577, 0.577, 0.577)
}
