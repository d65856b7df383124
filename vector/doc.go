// Package vector provides the homogeneous 4-component Vector used across lvlath3d.
//
// 🚀 What is a Vector here?
//
//	A Vector carries x, y, z and a homogeneous w component:
//	  • w = 1 marks a point (translations apply)
//	  • w = 0 marks a direction (translations do not apply)
//
// ✨ Key features:
//   - pure value arithmetic: Add, Sub, CrossProduct, DotProduct, PerpendicularComponent
//   - measures: Norm (squared length), Length, Distance
//   - in-place mutators: Scale, Normalize, Divide, RotateAroundX/Y/Z
//   - approximate comparison with a fixed per-axis Tolerance (w is ignored)
//   - PlaneNormal for three points (right-hand rule)
//   - interop with golang.org/x/image/math/f32
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlath3d/vector"
//
//	a := vector.Point(0, 0, 0)
//	b := vector.Point(1, 0, 0)
//	c := vector.Point(1, 1, 0)
//	n := vector.PlaneNormal(a, b, c) // (0, 0, 1, 0)
//
// Degenerate math is not an error: normalizing a zero vector leaves it
// unchanged and Divide by a zero component yields ±Inf or NaN.
//
// All components are float32; scalar functions come from github.com/chewxy/math32.
package vector
