package components

import (
	"github.com/automoto/cursorfx/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BoundsData is the inner hit area of a hoverable element. It is stored
// relative to the owner's top-left corner so that it follows the owner
// through layout changes.
type BoundsData struct {
	ID    string
	Owner donburi.Entity
	Rel   gamemath.Rect
}

var Bounds = donburi.NewComponentType[BoundsData]()
