package gamemath

// Rect is an axis-aligned screen rectangle, origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

func (r Rect) Translate(d Point) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// IsFinite reports whether every field of r is a finite number.
func (r Rect) IsFinite() bool {
	return IsFinite(r.X) && IsFinite(r.Y) && IsFinite(r.W) && IsFinite(r.H)
}

// IsDegenerate reports a rect that cannot be used as an attraction target:
// non-finite, or with no area.
func (r Rect) IsDegenerate() bool {
	return !r.IsFinite() || r.W <= 0 || r.H <= 0
}
