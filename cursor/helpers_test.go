package cursor_test

import (
	"github.com/automoto/cursorfx/cursor"
	"github.com/automoto/cursorfx/shared/gamemath"
)

type fakeElement struct {
	id   string
	rect gamemath.Rect
}

func (e *fakeElement) ID() string          { return e.id }
func (e *fakeElement) Rect() gamemath.Rect { return e.rect }

type fakeDoc struct {
	hoverables []cursor.Element
	bounds     map[string]cursor.Element
}

func (d *fakeDoc) QueryHoverables() []cursor.Element { return d.hoverables }

func (d *fakeDoc) QueryBounds(parent cursor.Element) (cursor.Element, bool) {
	b, ok := d.bounds[parent.ID()]
	return b, ok
}

// rectHitTester hits the last element whose rect holds the point.
type rectHitTester []cursor.Element

func (h rectHitTester) HitTest(x, y float64) (cursor.Element, bool) {
	for i := len(h) - 1; i >= 0; i-- {
		if h[i].Rect().Contains(gamemath.Pt(x, y)) {
			return h[i], true
		}
	}
	return nil, false
}

type recordingSink struct {
	calls []cursor.Transform
}

func (s *recordingSink) SetTransform(t cursor.Transform) {
	s.calls = append(s.calls, t)
}

type recordingParallax struct {
	offsets []gamemath.Point
	cleared int
}

func (s *recordingParallax) SetOffset(p gamemath.Point) { s.offsets = append(s.offsets, p) }
func (s *recordingParallax) ClearOffset()               { s.cleared++ }

type countingObserver struct {
	rendered, skipped int
	entered, failed   []string
}

func (o *countingObserver) FrameRendered()               { o.rendered++ }
func (o *countingObserver) FrameSkipped()                { o.skipped++ }
func (o *countingObserver) HoverEntered(id string)       { o.entered = append(o.entered, id) }
func (o *countingObserver) RegistrationFailed(id string) { o.failed = append(o.failed, id) }

const tick = 1.0 / 60
