package vector

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Set returns the vector (x, y, z, w).
func Set(x, y, z, w float32) Vector {
	return Vector{X: x, Y: y, Z: z, W: w}
}

// Clone returns a value copy of src.
func Clone(src Vector) Vector {
	return Set(src.X, src.Y, src.Z, src.W)
}

// Zero returns the zero direction (0, 0, 0, 0).
func Zero() Vector { return Vector{} }

// Point returns (x, y, z, 1).
func Point(x, y, z float32) Vector { return Set(x, y, z, 1) }

// Direction returns (x, y, z, 0).
func Direction(x, y, z float32) Vector { return Set(x, y, z, 0) }

// Add returns a + b on x, y, z.
// The homogeneous component is not touched: the result keeps a.W.
func Add(a, b Vector) Vector {
	a.X += b.X
	a.Y += b.Y
	a.Z += b.Z

	return a
}

// Sub returns a - b on x, y, z. The result keeps a.W.
func Sub(a, b Vector) Vector {
	a.X -= b.X
	a.Y -= b.Y
	a.Z -= b.Z

	return a
}

// Negate returns (-x, -y, -z, w).
func Negate(v Vector) Vector {
	return Set(-v.X, -v.Y, -v.Z, v.W)
}

// Scale multiplies all four components, w included, by factor.
func (v *Vector) Scale(factor float32) {
	v.X *= factor
	v.Y *= factor
	v.Z *= factor
	v.W *= factor
}

// Scaled returns a copy of v scaled by factor (all four components).
func Scaled(v Vector, factor float32) Vector {
	v.Scale(factor)

	return v
}

// CrossProduct returns the 3D cross product a × b as a direction (w = 0).
func CrossProduct(a, b Vector) Vector {
	return Vector{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// DotProduct returns a·b over x, y, z.
func DotProduct(a, b Vector) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Norm returns the squared Euclidean length x²+y²+z².
// Use Length for the length itself.
func Norm(v Vector) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the Euclidean length of v over x, y, z.
func Length(v Vector) float32 {
	return math32.Sqrt((v.X * v.X) + (v.Y * v.Y) + (v.Z * v.Z))
}

// Normalize scales x, y, z to unit length and turns v into a direction (w = 0).
// A zero vector is left unchanged.
func (v *Vector) Normalize() {
	n := Norm(*v)
	if n == 0 {
		return
	}
	inv := 1 / math32.Sqrt(n)
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
	v.W = 0
}

// Normalized returns a normalized copy of v.
func Normalized(v Vector) Vector {
	v.Normalize()

	return v
}

// Divide divides x, y, z componentwise by divisor.
// Zero divisor components are not guarded and produce ±Inf or NaN.
func (v *Vector) Divide(divisor Vector) {
	v.X /= divisor.X
	v.Y /= divisor.Y
	v.Z /= divisor.Z
}

// PerpendicularComponent returns a minus its projection onto b, a - (a·b)·b.
// b is expected to be unit length; the result keeps a.W.
func PerpendicularComponent(a, b Vector) Vector {
	dot := DotProduct(a, b)
	a.X -= dot * b.X
	a.Y -= dot * b.Y
	a.Z -= dot * b.Z

	return a
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vector) float32 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z

	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Equals reports whether a and b match on x, y, z within Tolerance.
// The w component is not compared.
func Equals(a, b Vector) bool {
	return math32.Abs(a.X-b.X) <= Tolerance &&
		math32.Abs(a.Y-b.Y) <= Tolerance &&
		math32.Abs(a.Z-b.Z) <= Tolerance
}

// PlaneNormal returns the unit normal of the plane through a, b and c,
// normalize((b-a) × (c-a)). Collinear points yield the zero direction.
func PlaneNormal(a, b, c Vector) Vector {
	n := CrossProduct(Sub(b, a), Sub(c, a))
	n.Normalize()

	return n
}

// String renders v in fixed-width columns for diagnostics.
func (v Vector) String() string {
	return fmt.Sprintf("V: %20.4f i %20.4f j %20.4f k %20.4f l", v.X, v.Y, v.Z, v.W)
}
