package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Vec3 is a 3D vector in world space (+Y up, forward is -Z).
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1.0 / l)
}

// LookRotation returns the yaw and pitch (radians) that orient forward
// toward target as seen from eye. Yaw 0, pitch 0 faces -Z.
func LookRotation(eye, target Vec3) (yaw, pitch float64) {
	dir := target.Sub(eye).Normalize()
	pitch = math.Asin(dir.Y)
	yaw = math.Atan2(dir.X, -dir.Z)
	return yaw, pitch
}

// Basis is an orthonormal camera frame.
type Basis struct {
	Right   Vec3
	Up      Vec3
	Forward Vec3
}

// BasisFromYawPitch builds a camera frame with world +Y as the up reference.
func BasisFromYawPitch(yaw, pitch float64) Basis {
	cy, sy := math.Cos(yaw), math.Sin(yaw)
	cp, sp := math.Cos(pitch), math.Sin(pitch)
	forward := Vec3{X: sy * cp, Y: sp, Z: -cy * cp}
	right := forward.Cross(Vec3{Y: 1}).Normalize()
	if right.Length() == 0 {
		// looking straight up or down
		right = Vec3{X: cy, Z: sy}
	}
	up := right.Cross(forward)
	return Basis{Right: right, Up: up, Forward: forward}
}

// RotateAboutX rotates v by angle radians about the world X axis.
func RotateAboutX(v Vec3, angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*c - v.Z*s,
		Z: v.Y*s + v.Z*c,
	}
}
