// Package layout positions elements relative to other elements and
// recomputes those positions when the window is resized.
package layout

import (
	"fmt"

	"github.com/automoto/cursorfx/shared/gamemath"
)

// Align picks the anchor edge a pinned element attaches to.
type Align int

const (
	AlignTopLeft Align = iota
	AlignTopRight
	AlignCenter
	AlignBelow // under the anchor, left edges flush
)

// ParseAlign maps the TMX property names to Align.
func ParseAlign(s string) (Align, error) {
	switch s {
	case "", "top-left":
		return AlignTopLeft, nil
	case "top-right":
		return AlignTopRight, nil
	case "center":
		return AlignCenter, nil
	case "below":
		return AlignBelow, nil
	}
	return 0, fmt.Errorf("unknown align %q", s)
}

// Box is something with a live screen rectangle.
type Box interface {
	Rect() gamemath.Rect
}

// Positioner receives the resolved top-left corner of a pinned element.
type Positioner interface {
	Box
	MoveTo(p gamemath.Point)
}

// Pin attaches Dependent to Anchor.
type Pin struct {
	Anchor    Box
	Dependent Positioner
	Align     Align
	Offset    gamemath.Point
}

// Resolve computes the dependent's top-left corner from the anchor rect
// and the dependent's own size.
func (p Pin) Resolve(anchor, dependent gamemath.Rect) gamemath.Point {
	var at gamemath.Point
	switch p.Align {
	case AlignTopLeft:
		at = gamemath.Pt(anchor.X, anchor.Y)
	case AlignTopRight:
		at = gamemath.Pt(anchor.X+anchor.W-dependent.W, anchor.Y)
	case AlignCenter:
		c := anchor.Center()
		at = gamemath.Pt(c.X-dependent.W/2, c.Y-dependent.H/2)
	case AlignBelow:
		at = gamemath.Pt(anchor.X, anchor.Y+anchor.H)
	}
	return at.Add(p.Offset)
}

// Layout holds the pins of a page and the rules that stretch elements to
// the window width.
type Layout struct {
	pins    []Pin
	fluid   []Fluid
	w, h    int
	resized int
}

// Fluid keeps an element's right edge Margin pixels from the window edge.
type Fluid struct {
	Element interface {
		Box
		Resize(w, h float64)
	}
	Margin float64
}

func New() *Layout {
	return &Layout{}
}

func (l *Layout) AddPin(p Pin) {
	l.pins = append(l.pins, p)
}

func (l *Layout) AddFluid(f Fluid) {
	l.fluid = append(l.fluid, f)
}

// OnResize reflows fluid elements to the new window size and then resolves
// every pin from its anchor's current rect. Pins are applied in insertion
// order, so a pin may anchor on an element pinned earlier.
func (l *Layout) OnResize(w, h int) {
	l.w, l.h = w, h
	l.resized++

	for _, f := range l.fluid {
		r := f.Element.Rect()
		width := float64(w) - r.X - f.Margin
		if width < 0 {
			width = 0
		}
		f.Element.Resize(width, r.H)
	}
	for _, p := range l.pins {
		anchor := p.Anchor.Rect()
		if !anchor.IsFinite() {
			continue
		}
		p.Dependent.MoveTo(p.Resolve(anchor, p.Dependent.Rect()))
	}
}

// Size returns the last window size passed to OnResize.
func (l *Layout) Size() (int, int) {
	return l.w, l.h
}

// Resizes counts OnResize calls.
func (l *Layout) Resizes() int {
	return l.resized
}
