// Package geom2 provides the 2D vector and fuzzy-float primitives shared by
// every other package in this module: segment geometry, the intersect
// kernel, the AABB index, and the polyline core all build on this layer.
package geom2

import "math"

// Vec2 is a 2D point or direction vector.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// PerpDot returns the perpendicular dot product (2D cross product) of v and
// other: v.x*other.y - v.y*other.x.
func (v Vec2) PerpDot(other Vec2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// LengthSquared returns the squared length of v.
func (v Vec2) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns the length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns v scaled to unit length. Returns the zero vector if v is
// the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// DistanceSquaredTo returns the squared distance between v and other.
func (v Vec2) DistanceSquaredTo(other Vec2) float64 {
	return v.Sub(other).LengthSquared()
}

// DistanceTo returns the distance between v and other.
func (v Vec2) DistanceTo(other Vec2) float64 {
	return v.Sub(other).Length()
}

// FuzzyEqual reports whether v and other are equal within DefaultPosEqualEps.
func (v Vec2) FuzzyEqual(other Vec2) bool {
	return v.FuzzyEqualEps(other, DefaultPosEqualEps)
}

// FuzzyEqualEps reports whether v and other are equal within eps on both
// components.
func (v Vec2) FuzzyEqualEps(other Vec2, eps float64) bool {
	return FuzzyEqualEps(v.X, other.X, eps) && FuzzyEqualEps(v.Y, other.Y, eps)
}
