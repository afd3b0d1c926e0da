package cursor

import (
	"math"

	"github.com/automoto/cursorfx/config"
	"github.com/automoto/cursorfx/shared/easing"
	"github.com/automoto/cursorfx/shared/gamemath"
)

// Mode is the follower's attraction state.
type Mode int

const (
	// Free follows the raw pointer and deforms with velocity.
	Free Mode = iota
	// Attracted is drawn toward the center of the hovered element.
	Attracted
)

func (m Mode) String() string {
	switch m {
	case Free:
		return "free"
	case Attracted:
		return "attracted"
	}
	return "unknown"
}

// State is the follower state owned by a Controller.
type State struct {
	Position    gamemath.SmoothedPoint
	Scale       gamemath.SmoothedScalar
	Mode        Mode
	HoverTarget Element
}

// scale channels of the attracted mode entry transition
const (
	chScaleX = iota
	chScaleY
	chCount
)

// Controller drives the cursor follower. It is not safe for concurrent use;
// every method is meant to run on the game loop.
type Controller struct {
	cfg      config.CursorConfig
	sink     RenderSink
	observer Observer

	state State

	pointer    gamemath.Point
	hasPointer bool

	// attracted mode deformation: running transition, last scales and the
	// rotation applied on entry. attracting is false while the hover target
	// rect is degenerate and the follower tracks the raw pointer instead.
	deform        *easing.Transition
	deformValues  [chCount]float64
	hoverRotation float64
	attracting    bool

	transform Transform
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver reports frame and hover events to o.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithStart places the follower at p before the first pointer event.
// A non-finite p is ignored.
func WithStart(p gamemath.Point) Option {
	return func(c *Controller) {
		if p.IsFinite() {
			c.state.Position.Reset(p)
		}
	}
}

// NewController returns a follower at rest at the origin, in Free mode.
func NewController(cfg config.CursorConfig, sink RenderSink, opts ...Option) *Controller {
	if sink == nil {
		sink = RenderSinkFunc(func(Transform) {})
	}
	c := &Controller{
		cfg:      cfg,
		sink:     sink,
		observer: nopObserver{},
		state: State{
			Position: gamemath.NewSmoothedPoint(gamemath.Point{}, cfg.PositionLerp),
			Scale:    gamemath.NewSmoothedScalar(cfg.DefaultScale, cfg.ScaleLerp),
			Mode:     Free,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.transform = Transform{
		X:      c.state.Position.Current.X,
		Y:      c.state.Position.Current.Y,
		ScaleX: cfg.DefaultScale,
		ScaleY: cfg.DefaultScale,
	}
	return c
}

// OnFrame advances the smoothing by one tick and writes the transform to
// the sink. dt is the tick length in seconds and only drives the
// time-based attracted mode transition.
func (c *Controller) OnFrame(dt float64) {
	c.state.Position.Update()
	c.state.Scale.Update()

	if !c.state.Position.Current.IsFinite() || !gamemath.IsFinite(c.state.Scale.Current) {
		c.recover()
		c.observer.FrameSkipped()
		return
	}

	velocity := c.state.Position.Delta()
	scale := c.state.Scale.Current

	t := Transform{
		X: c.state.Position.Current.X,
		Y: c.state.Position.Current.Y,
	}

	if c.state.Mode == Attracted && c.attracting {
		// Rotation is fixed on entry and the transition owns both scales;
		// per-frame velocity deformation is suppressed.
		if c.deform != nil {
			values, done := c.deform.Update(dt)
			copy(c.deformValues[:], values)
			if done {
				c.deform = nil
			}
		}
		t.Rotation = c.hoverRotation
		t.ScaleX = c.deformValues[chScaleX]
		t.ScaleY = c.deformValues[chScaleY]
	} else {
		d := velocity.Len() * c.cfg.VelocityFactor
		t.Rotation = velocity.Angle()
		t.ScaleX = scale + math.Min(d, c.cfg.StretchCap)
		t.ScaleY = scale - math.Min(d, c.cfg.SquashCap)
	}

	if !gamemath.IsFinite(t.ScaleX) || !gamemath.IsFinite(t.ScaleY) || !gamemath.IsFinite(t.Rotation) {
		c.recover()
		c.observer.FrameSkipped()
		return
	}

	c.transform = t
	c.sink.SetTransform(t)
	c.observer.FrameRendered()
}

// recover puts the smoothed values back on finite ground after a bad tick.
func (c *Controller) recover() {
	last := gamemath.Pt(c.transform.X, c.transform.Y)
	switch {
	case c.state.Position.Target.IsFinite():
		c.state.Position.Reset(c.state.Position.Target)
	case last.IsFinite():
		c.state.Position.Reset(last)
	default:
		c.state.Position.Reset(gamemath.Point{})
	}
	if !gamemath.IsFinite(c.state.Scale.Current) || !gamemath.IsFinite(c.state.Scale.Target) {
		c.state.Scale.Reset(c.cfg.DefaultScale)
	}
	c.deform = nil
	c.deformValues = [chCount]float64{chScaleX: c.state.Scale.Current, chScaleY: c.state.Scale.Current}
	if !gamemath.IsFinite(c.hoverRotation) {
		c.hoverRotation = 0
	}
}

// OnPointerMove records the pointer and retargets the follower.
// Non-finite coordinates are ignored.
func (c *Controller) OnPointerMove(x, y float64) {
	p := gamemath.Pt(x, y)
	if !p.IsFinite() {
		return
	}
	c.pointer = p
	c.hasPointer = true

	if c.state.Mode == Attracted {
		c.attract()
		return
	}
	c.state.Position.Target = p
	c.state.Scale.Target = c.cfg.DefaultScale
}

// OnHoverEnter switches to Attracted mode toward target.
func (c *Controller) OnHoverEnter(target Element) {
	if target == nil {
		return
	}
	c.state.Mode = Attracted
	c.state.HoverTarget = target
	c.attracting = false
	c.observer.HoverEntered(target.ID())

	if c.hasPointer {
		c.attract()
	}
}

// OnHoverLeave returns to Free mode.
func (c *Controller) OnHoverLeave() {
	c.state.Mode = Free
	c.state.HoverTarget = nil
	c.deform = nil
	c.attracting = false
	c.hoverRotation = 0

	if c.hasPointer {
		c.state.Position.Target = c.pointer
	}
	c.state.Scale.Target = c.cfg.DefaultScale
}

// attract retargets toward the hover target, snaps the rotation to the
// pointer offset and restarts the scale transition from what the follower
// shows right now. A degenerate target rect falls back to the raw pointer
// and the default scale until a later move sees a usable rect.
func (c *Controller) attract() {
	rect := c.state.HoverTarget.Rect()
	_, target, ok := Attraction(c.pointer, rect, c.cfg.Attraction)
	if !ok {
		c.attracting = false
		c.deform = nil
		c.state.Position.Target = c.pointer
		c.state.Scale.Target = c.cfg.DefaultScale
		return
	}
	c.state.Position.Target = target
	c.state.Scale.Target = c.cfg.HoverScale

	raw := c.pointer.Sub(rect.Center())
	c.hoverRotation = raw.Angle()
	to := c.hoverDeformation(raw)
	from := [chCount]float64{chScaleX: c.transform.ScaleX, chScaleY: c.transform.ScaleY}
	c.attracting = true
	tr, err := easing.NewTransition(from[:], to[:], c.cfg.HoverDuration, c.cfg.HoverEase)
	if err != nil {
		// config.Validate rejects unknown eases; jump straight to the end.
		c.deform = nil
		c.deformValues = to
		return
	}
	c.deform = tr
}

// hoverDeformation is the pair of scales the entry transition aims for:
// the hover scale stretched along and squashed across the pointer offset.
func (c *Controller) hoverDeformation(raw gamemath.Point) [chCount]float64 {
	d := raw.Len() * c.cfg.DistanceFactor
	stretch := math.Pow(math.Min(d, c.cfg.StretchDistanceCap), 3) * c.cfg.DeformGain
	squash := math.Pow(math.Min(d, c.cfg.SquashDistanceCap), 3) * c.cfg.DeformGain
	return [chCount]float64{
		chScaleX: c.cfg.HoverScale + stretch,
		chScaleY: c.cfg.HoverScale - squash,
	}
}

// Attraction computes the damped offset of pointer from the center of rect
// and the resulting follower target. The offset is strength times the raw
// pointer-to-center vector, so its length never exceeds strength times the
// raw distance. ok is false for a degenerate rect or a non-finite result.
func Attraction(pointer gamemath.Point, rect gamemath.Rect, strength float64) (offset, target gamemath.Point, ok bool) {
	if rect.IsDegenerate() || !pointer.IsFinite() {
		return gamemath.Point{}, gamemath.Point{}, false
	}
	center := rect.Center()
	offset = pointer.Sub(center).Scale(gamemath.Clamp01(strength))
	target = center.Add(offset)
	if !target.IsFinite() {
		return gamemath.Point{}, gamemath.Point{}, false
	}
	return offset, target, true
}

// State returns a copy of the follower state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Mode() Mode {
	return c.state.Mode
}

// Transform returns the transform most recently written to the sink.
func (c *Controller) Transform() Transform {
	return c.transform
}

// Pointer returns the last recorded pointer position.
func (c *Controller) Pointer() (gamemath.Point, bool) {
	return c.pointer, c.hasPointer
}

// Transitioning reports whether the attracted mode entry transition is
// still running.
func (c *Controller) Transitioning() bool {
	return c.deform != nil
}
