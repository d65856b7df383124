package vector

// Tolerance is the absolute per-axis tolerance used by Equals.
const Tolerance float32 = 1e-5

// Vector is a homogeneous 3D vector.
//
// Fields:
//   - X, Y, Z : cartesian components.
//   - W       : homogeneous coordinate: 1 for points, 0 for directions.
//
// The zero value is the zero direction.
type Vector struct {
	X, Y, Z, W float32
}
