package components

import (
	"github.com/automoto/cursorfx/cursor"
	"github.com/automoto/cursorfx/metrics"
	"github.com/yohamta/donburi"
)

type CursorData struct {
	Controller *cursor.Controller
	Tracker    *cursor.HoverTracker
	Recorder   *metrics.Recorder

	// Transform is the last transform written by the controller.
	Transform cursor.Transform
	Visible   bool // false until the first transform arrives

	PointerX, PointerY int
	HasPointer         bool
}

var Cursor = donburi.NewComponentType[CursorData]()
