package components

import (
	"github.com/automoto/cursorfx/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ElementData is one visual page element.
type ElementData struct {
	ID    string
	Kind  string
	Label string
	Order int // map order: draw order and intro order

	// Rect is the laid-out rectangle in screen coordinates. Parallax and the
	// intro slide are drawn on top of it and never change it.
	Rect gamemath.Rect

	// Offset is the parallax translation, zero unless the sink holds one.
	Offset gamemath.Point
}

var Element = donburi.NewComponentType[ElementData]()
