package gamemath

// SmoothedScalar eases a value toward a target by a fixed fraction per tick.
// Previous holds the value before the last Update, so Delta is the movement
// made by that tick.
type SmoothedScalar struct {
	Previous float64
	Current  float64
	Target   float64
	Amount   float64 // lerp fraction per Update (0..1)
}

// NewSmoothedScalar returns a scalar at rest on v.
func NewSmoothedScalar(v, amount float64) SmoothedScalar {
	return SmoothedScalar{Previous: v, Current: v, Target: v, Amount: amount}
}

// LerpToward moves Current the given fraction of the remaining distance to
// target. The fraction is clamped to [0, 1].
func (s *SmoothedScalar) LerpToward(target, fraction float64) {
	s.Current = Lerp(s.Current, target, Clamp01(fraction))
}

// Update snapshots Previous and steps Current toward Target by Amount.
func (s *SmoothedScalar) Update() {
	s.Previous = s.Current
	s.LerpToward(s.Target, s.Amount)
}

func (s SmoothedScalar) Delta() float64 {
	return s.Current - s.Previous
}

// Reset puts the value at rest on v.
func (s *SmoothedScalar) Reset(v float64) {
	s.Previous, s.Current, s.Target = v, v, v
}

// SmoothedPoint is the 2D counterpart of SmoothedScalar.
type SmoothedPoint struct {
	Previous Point
	Current  Point
	Target   Point
	Amount   float64
}

// NewSmoothedPoint returns a point at rest on p.
func NewSmoothedPoint(p Point, amount float64) SmoothedPoint {
	return SmoothedPoint{Previous: p, Current: p, Target: p, Amount: amount}
}

func (s *SmoothedPoint) LerpToward(target Point, fraction float64) {
	s.Current = s.Current.Lerp(target, Clamp01(fraction))
}

func (s *SmoothedPoint) Update() {
	s.Previous = s.Current.Clone()
	s.LerpToward(s.Target, s.Amount)
}

// Delta is the velocity of the last Update in pixels per tick.
func (s SmoothedPoint) Delta() Point {
	return s.Current.Sub(s.Previous)
}

func (s *SmoothedPoint) Reset(p Point) {
	s.Previous, s.Current, s.Target = p, p, p
}
