package cursor

import "github.com/automoto/cursorfx/shared/gamemath"

// HoverTracker turns raw pointer positions into the enter, leave and move
// callbacks a browser would dispatch: bounds enter/leave first, then the
// outer element move, then the global pointer move. Targets set by a
// Dispatch are therefore in place before the next OnFrame.
type HoverTracker struct {
	ctrl       *Controller
	hit        HitTester
	hoverables []*Hoverable
	byBounds   map[string]*Hoverable

	hovered *Hoverable // bounds under the pointer
	inside  *Hoverable // outer element under the pointer
}

func NewHoverTracker(ctrl *Controller, hit HitTester, hoverables []*Hoverable) *HoverTracker {
	t := &HoverTracker{
		ctrl:       ctrl,
		hit:        hit,
		hoverables: hoverables,
		byBounds:   make(map[string]*Hoverable, len(hoverables)),
	}
	for _, h := range hoverables {
		t.byBounds[h.bounds.ID()] = h
	}
	return t
}

// Dispatch handles one pointer-move event.
func (t *HoverTracker) Dispatch(x, y float64) {
	p := gamemath.Pt(x, y)

	var next *Hoverable
	if t.hit != nil {
		if el, ok := t.hit.HitTest(x, y); ok {
			next = t.byBounds[el.ID()]
		}
	}
	if next != t.hovered {
		if t.hovered != nil {
			t.hovered.BoundsLeave()
		}
		if next != nil {
			next.BoundsEnter()
		}
		t.hovered = next
	}

	// Later elements draw on top, so they win overlaps.
	var in *Hoverable
	for i := len(t.hoverables) - 1; i >= 0; i-- {
		if t.hoverables[i].ScreenRect().Contains(p) {
			in = t.hoverables[i]
			break
		}
	}
	if in != t.inside {
		if t.inside != nil {
			t.inside.PointerLeave()
		}
		t.inside = in
	}
	if in != nil {
		in.PointerMove(p)
	}

	t.ctrl.OnPointerMove(x, y)
}

// Tick advances every hoverable's parallax return transition.
func (t *HoverTracker) Tick(dt float64) {
	for _, h := range t.hoverables {
		h.Tick(dt)
	}
}

// Hovered returns the hoverable whose bounds hold the pointer, if any.
func (t *HoverTracker) Hovered() *Hoverable {
	return t.hovered
}

func (t *HoverTracker) Hoverables() []*Hoverable {
	return t.hoverables
}
