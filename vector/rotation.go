package vector

import "github.com/chewxy/math32"

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 { return deg * math32.Pi / 180 }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 { return rad * 180 / math32.Pi }

// Rotation convention
//
// All three rotations turn the vector clockwise by angle when looking from
// the positive half of the axis towards the origin. This is the row-vector
// reading of the standard right-handed rotation matrix, so that
// matrix.Transform(matrix.CreateRotationX(a), v) matches v.RotateAroundX(a)
// and likewise for Y and Z.

// RotateAroundX rotates v in place about the X axis by angle radians.
// x and w are unchanged.
func (v *Vector) RotateAroundX(angle float32) {
	s, c := math32.Sincos(angle)
	y, z := v.Y, v.Z
	v.Y = c*y + s*z
	v.Z = c*z - s*y
}

// RotateAroundY rotates v in place about the Y axis by angle radians.
// y and w are unchanged.
func (v *Vector) RotateAroundY(angle float32) {
	s, c := math32.Sincos(angle)
	x, z := v.X, v.Z
	v.X = c*x - s*z
	v.Z = c*z + s*x
}

// RotateAroundZ rotates v in place about the Z axis by angle radians.
// z and w are unchanged.
func (v *Vector) RotateAroundZ(angle float32) {
	s, c := math32.Sincos(angle)
	x, y := v.X, v.Y
	v.X = c*x + s*y
	v.Y = c*y - s*x
}
