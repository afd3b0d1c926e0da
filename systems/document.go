package systems

import (
	"sort"

	"github.com/automoto/cursorfx/components"
	"github.com/automoto/cursorfx/cursor"
	"github.com/automoto/cursorfx/shared/gamemath"
	"github.com/automoto/cursorfx/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// PageElement is a page element entity seen as a cursor.Element and as a
// layout box.
type PageElement struct {
	entry *donburi.Entry
}

func NewPageElement(entry *donburi.Entry) *PageElement {
	return &PageElement{entry: entry}
}

func (e *PageElement) Entry() *donburi.Entry { return e.entry }

func (e *PageElement) ID() string {
	return components.Element.Get(e.entry).ID
}

func (e *PageElement) Rect() gamemath.Rect {
	return components.Element.Get(e.entry).Rect
}

func (e *PageElement) MoveTo(p gamemath.Point) {
	el := components.Element.Get(e.entry)
	el.Rect.X, el.Rect.Y = p.X, p.Y
}

func (e *PageElement) Resize(w, h float64) {
	el := components.Element.Get(e.entry)
	el.Rect.W, el.Rect.H = w, h
}

// SetOffset and ClearOffset make the element its own parallax sink.
func (e *PageElement) SetOffset(p gamemath.Point) {
	components.Element.Get(e.entry).Offset = p
}

func (e *PageElement) ClearOffset() {
	components.Element.Get(e.entry).Offset = gamemath.Point{}
}

// BoundsElement is a bounds entity. Its rect is read live from its owner.
type BoundsElement struct {
	entry *donburi.Entry
	world donburi.World
}

func NewBoundsElement(world donburi.World, entry *donburi.Entry) *BoundsElement {
	return &BoundsElement{entry: entry, world: world}
}

func (b *BoundsElement) ID() string {
	return components.Bounds.Get(b.entry).ID
}

// Rect is the bounds rect on screen: it moves with the owner's layout box
// and its parallax offset.
func (b *BoundsElement) Rect() gamemath.Rect {
	data := components.Bounds.Get(b.entry)
	owner := b.world.Entry(data.Owner)
	if !owner.Valid() {
		return data.Rel
	}
	el := components.Element.Get(owner)
	return data.Rel.Translate(gamemath.Pt(el.Rect.X, el.Rect.Y)).Translate(el.Offset)
}

// Document answers the cursor package's element queries from the world.
type Document struct {
	world donburi.World
}

func NewDocument(world donburi.World) *Document {
	return &Document{world: world}
}

// QueryHoverables returns the hoverable elements in page order.
func (d *Document) QueryHoverables() []cursor.Element {
	var entries []*donburi.Entry
	donburi.NewQuery(filter.Contains(tags.Hoverable, components.Element)).Each(d.world, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return components.Element.Get(entries[i]).Order < components.Element.Get(entries[j]).Order
	})

	out := make([]cursor.Element, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewPageElement(e))
	}
	return out
}

// QueryBounds finds the bounds entity owned by el.
func (d *Document) QueryBounds(el cursor.Element) (cursor.Element, bool) {
	pe, ok := el.(*PageElement)
	if !ok {
		return nil, false
	}
	owner := pe.entry.Entity()

	var found *donburi.Entry
	donburi.NewQuery(filter.Contains(tags.Bounds, components.Bounds)).Each(d.world, func(e *donburi.Entry) {
		if found == nil && components.Bounds.Get(e).Owner == owner {
			found = e
		}
	})
	if found == nil {
		return nil, false
	}
	return NewBoundsElement(d.world, found), true
}

// ElementByID returns the element entity named id.
func (d *Document) ElementByID(id string) (*PageElement, bool) {
	var found *donburi.Entry
	donburi.NewQuery(filter.Contains(tags.Element, components.Element)).Each(d.world, func(e *donburi.Entry) {
		if found == nil && components.Element.Get(e).ID == id {
			found = e
		}
	})
	if found == nil {
		return nil, false
	}
	return NewPageElement(found), true
}

// ParallaxSinkFor returns the element itself as its parallax sink.
func ParallaxSinkFor(el cursor.Element) cursor.ParallaxSink {
	pe, ok := el.(*PageElement)
	if !ok {
		return nil
	}
	return pe
}
