// Package geom holds the small vector types used by the camera, the
// projector and the scene graph. All values are float32.
package geom

import "github.com/chewxy/math32"

// Vec3 is a 3D vector. Operations return new values.
type Vec3 struct {
	X, Y, Z float32
}

// V3 builds a Vec3.
func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Zero returns the origin.
func Zero() Vec3 { return Vec3{} }

// Up returns the world up axis (+Y).
func Up() Vec3 { return Vec3{Y: 1} }

func (v Vec3) Add(o Vec3) Vec3    { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3    { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean norm.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalized returns the unit vector in the direction of v.
// A zero-length vector is returned unchanged.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Lerp interpolates from v to o; t=0 yields v, t=1 yields o.
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return v.Add(o.Sub(v).Mul(t))
}

// Dist returns the distance between two points.
func (v Vec3) Dist(o Vec3) float32 { return o.Sub(v).Length() }

// Vec2 is a 2D vector, used by the flat top-down projection.
type Vec2 struct {
	X, Y float32
}

// V2 builds a Vec2.
func V2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// XZ drops the Y component; the orbital plane is Y=0.
func (v Vec3) XZ() Vec2 { return Vec2{X: v.X, Y: v.Z} }
