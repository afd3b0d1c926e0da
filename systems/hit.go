package systems

import (
	"github.com/automoto/cursorfx/components"
	"github.com/automoto/cursorfx/cursor"
	"github.com/automoto/cursorfx/shared/gamemath"
	"github.com/automoto/cursorfx/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// SpaceHitTester finds the bounds element under a point using the resolv
// space. Candidates come from the pointer object's cells and are then checked for
// real containment; on overlap the later element in page order wins.
type SpaceHitTester struct {
	world donburi.World
}

func NewSpaceHitTester(world donburi.World) *SpaceHitTester {
	return &SpaceHitTester{world: world}
}

func (h *SpaceHitTester) HitTest(x, y float64) (cursor.Element, bool) {
	spaceEntry, ok := components.Space.First(h.world)
	if !ok {
		return nil, false
	}
	space := components.Space.Get(spaceEntry)
	if space.Pointer == nil {
		return nil, false
	}

	space.Pointer.X, space.Pointer.Y = x, y
	space.Pointer.Update()
	check := space.Pointer.Check(0, 0, tags.ResolvBounds)
	if check == nil {
		return nil, false
	}

	p := gamemath.Pt(x, y)
	var (
		best      *donburi.Entry
		bestOrder = -1
	)
	for _, obj := range check.ObjectsByTags(tags.ResolvBounds) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		r := gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
		if !r.Contains(p) {
			continue
		}
		if order := ownerOrder(h.world, entry); order > bestOrder {
			best, bestOrder = entry, order
		}
	}
	if best == nil {
		return nil, false
	}
	return NewBoundsElement(h.world, best), true
}

func ownerOrder(world donburi.World, bounds *donburi.Entry) int {
	owner := world.Entry(components.Bounds.Get(bounds).Owner)
	if !owner.Valid() {
		return 0
	}
	return components.Element.Get(owner).Order
}

// SyncBounds copies every bounds rect into its collision object. Run it
// after anything moves elements.
func SyncBounds(world donburi.World) {
	donburi.NewQuery(filter.Contains(tags.Bounds, components.Bounds, components.Object)).Each(world, func(e *donburi.Entry) {
		r := NewBoundsElement(world, e).Rect()
		obj := components.Object.Get(e)
		if obj.Object == nil || !r.IsFinite() {
			return
		}
		obj.X, obj.Y, obj.W, obj.H = r.X, r.Y, r.W, r.H
		obj.Update()
	})
}
