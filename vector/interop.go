package vector

import "golang.org/x/image/math/f32"

// ToF32 copies v into an f32.Vec4 in x, y, z, w order.
func ToF32(v Vector) f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

// FromF32 builds a Vector from an f32.Vec4 laid out as x, y, z, w.
func FromF32(a f32.Vec4) Vector {
	return Set(a[0], a[1], a[2], a[3])
}
