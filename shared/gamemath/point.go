package gamemath

import "math"

// Point is a 2D position or vector in screen pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Len returns the euclidean length of p.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Angle returns atan2(y, x) in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Lerp returns p moved the given fraction of the way toward target.
func (p Point) Lerp(target Point, fraction float64) Point {
	return Point{
		X: Lerp(p.X, target.X, fraction),
		Y: Lerp(p.Y, target.Y, fraction),
	}
}

// Clone returns a copy. Points are values, this exists for call sites that
// want to make the snapshot explicit.
func (p Point) Clone() Point {
	return p
}

func (p Point) IsFinite() bool {
	return IsFinite(p.X) && IsFinite(p.Y)
}

// Lerp returns a moved fraction of the way toward b.
func Lerp(a, b, fraction float64) float64 {
	return a + (b-a)*fraction
}

// Clamp01 clamps v to [0, 1]. NaN clamps to 0.
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
