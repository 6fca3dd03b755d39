package motion

import "math"

// Vec2 is a 2D vector. Used for positions (pixels), velocities (pixels/second)
// and accelerations (pixels/second^2); no unit enforcement beyond that.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist returns the Euclidean distance between two points.
// Zero when a == b; defined for all finite inputs.
func Dist(a, b Vec2) float64 {
	return b.Sub(a).Length()
}
