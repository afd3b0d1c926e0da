// Package cursor implements the magnetic cursor follower: a smoothed,
// velocity-deformed cursor that is drawn toward the center of hovered page
// elements, plus the parallax nudge those elements get from the pointer.
//
// The package holds no rendering or windowing code. Drawing and element
// lookup are injected through the interfaces below so the behavior can be
// driven frame by frame in tests.
package cursor

import "github.com/automoto/cursorfx/shared/gamemath"

// Element is a laid-out page element.
type Element interface {
	// ID identifies the element in diagnostics. It must be unique per document.
	ID() string
	// Rect returns the element's current screen rectangle. Implementations
	// must read live layout, callers never cache it.
	Rect() gamemath.Rect
}

// Document is the query side of the page.
type Document interface {
	// QueryHoverables returns every element flagged as hoverable.
	QueryHoverables() []Element
	// QueryBounds returns the inner bounds element of a hoverable. The bounds
	// element is the enter/leave authority for magnetic attraction.
	QueryBounds(parent Element) (Element, bool)
}

// HitTester finds the bounds element under a screen position.
type HitTester interface {
	HitTest(x, y float64) (Element, bool)
}

// Transform is the visual state written to the cursor every frame.
type Transform struct {
	X, Y     float64
	Rotation float64 // radians
	ScaleX   float64
	ScaleY   float64
}

// RenderSink applies a cursor transform immediately, with no transition.
type RenderSink interface {
	SetTransform(t Transform)
}

// ParallaxSink applies the parallax translation of one hoverable element.
type ParallaxSink interface {
	SetOffset(offset gamemath.Point)
	// ClearOffset removes any translation override from the element.
	ClearOffset()
}

// Observer receives counts of notable controller events.
type Observer interface {
	FrameRendered()
	FrameSkipped()
	HoverEntered(id string)
	RegistrationFailed(id string)
}

// RenderSinkFunc adapts a function to RenderSink.
type RenderSinkFunc func(t Transform)

func (f RenderSinkFunc) SetTransform(t Transform) { f(t) }

type nopObserver struct{}

func (nopObserver) FrameRendered()            {}
func (nopObserver) FrameSkipped()             {}
func (nopObserver) HoverEntered(string)       {}
func (nopObserver) RegistrationFailed(string) {}

type nopParallaxSink struct{}

func (nopParallaxSink) SetOffset(gamemath.Point) {}
func (nopParallaxSink) ClearOffset()             {}
