package cursor

import (
	"errors"

	"github.com/automoto/cursorfx/config"
	"github.com/automoto/cursorfx/shared/easing"
	"github.com/automoto/cursorfx/shared/gamemath"
)

// Hoverable is a registered element: enter/leave on its bounds toggle the
// controller's attraction, pointer movement over the outer element drives a
// parallax offset.
type Hoverable struct {
	element Element
	bounds  Element
	ctrl    *Controller
	sink    ParallaxSink
	cfg     config.ParallaxConfig

	offset   gamemath.Point
	ret      *easing.Transition
	override bool // sink currently holds an offset
}

// Register sets up every hoverable element of doc. sinkFor returns the
// parallax sink of an outer element and may be nil.
//
// An element without a bounds element is skipped with a *RegistrationError
// wrapping ErrMissingBounds. The remaining elements are still registered and
// all failures are returned joined.
func (c *Controller) Register(doc Document, cfg config.ParallaxConfig, sinkFor func(Element) ParallaxSink) ([]*Hoverable, error) {
	var (
		hoverables []*Hoverable
		errs       []error
	)
	for _, el := range doc.QueryHoverables() {
		bounds, ok := doc.QueryBounds(el)
		if !ok || bounds == nil {
			c.observer.RegistrationFailed(el.ID())
			errs = append(errs, &RegistrationError{ElementID: el.ID(), Err: ErrMissingBounds})
			continue
		}

		var sink ParallaxSink = nopParallaxSink{}
		if sinkFor != nil {
			if s := sinkFor(el); s != nil {
				sink = s
			}
		}
		hoverables = append(hoverables, &Hoverable{
			element: el,
			bounds:  bounds,
			ctrl:    c,
			sink:    sink,
			cfg:     cfg,
		})
	}
	return hoverables, errors.Join(errs...)
}

func (h *Hoverable) Element() Element { return h.element }
func (h *Hoverable) Bounds() Element  { return h.bounds }

// Offset returns the current parallax translation.
func (h *Hoverable) Offset() gamemath.Point { return h.offset }

// Returning reports whether the offset is animating back to zero.
func (h *Hoverable) Returning() bool { return h.ret != nil }

// BoundsEnter is the pointer entering the bounds element.
func (h *Hoverable) BoundsEnter() {
	h.ctrl.OnHoverEnter(h.bounds)
}

// BoundsLeave is the pointer leaving the bounds element.
func (h *Hoverable) BoundsLeave() {
	h.ctrl.OnHoverLeave()
}

// ScreenRect is the outer element's rect as drawn, translated by the
// current parallax offset.
func (h *Hoverable) ScreenRect() gamemath.Rect {
	return h.element.Rect().Translate(h.offset)
}

// PointerMove applies the parallax offset for a pointer over the outer
// element. The offset is measured from the drawn center, so it settles at
// Strength/(1+Strength) of the distance for a still pointer. It cancels a
// running return transition.
func (h *Hoverable) PointerMove(p gamemath.Point) {
	rect := h.ScreenRect()
	if rect.IsDegenerate() || !p.IsFinite() {
		return
	}
	h.ret = nil
	h.offset = p.Sub(rect.Center()).Scale(h.cfg.Strength)
	h.override = true
	h.sink.SetOffset(h.offset)
}

// PointerLeave starts easing the parallax offset back to zero.
func (h *Hoverable) PointerLeave() {
	if !h.override {
		return
	}
	tr, err := easing.NewTransition(
		[]float64{h.offset.X, h.offset.Y},
		[]float64{0, 0},
		h.cfg.ReturnDuration,
		h.cfg.ReturnEase,
	)
	if err != nil {
		h.finishReturn()
		return
	}
	h.ret = tr
	if tr.Done() {
		h.finishReturn()
	}
}

// Tick advances the return transition by dt seconds.
func (h *Hoverable) Tick(dt float64) {
	if h.ret == nil {
		return
	}
	v, done := h.ret.Update(dt)
	if done {
		h.finishReturn()
		return
	}
	h.offset = gamemath.Pt(v[0], v[1])
	h.sink.SetOffset(h.offset)
}

func (h *Hoverable) finishReturn() {
	h.ret = nil
	h.offset = gamemath.Point{}
	h.override = false
	h.sink.ClearOffset()
}
