package factory

import (
	"fmt"

	"github.com/automoto/cursorfx/archetypes"
	"github.com/automoto/cursorfx/components"
	"github.com/automoto/cursorfx/shared/gamemath"
	"github.com/automoto/cursorfx/shared/pagedata"
	"github.com/automoto/cursorfx/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Hit space extent. Larger than any window so resized layouts stay inside.
const (
	SpaceSize = 4096
	CellSize  = 32
)

// CreatePage spawns the collision space, one entity per page element and
// one per bounds area. The page entity holding the parsed page is returned.
func CreatePage(ecs *ecs.ECS, page *pagedata.Page) (*donburi.Entry, error) {
	CreateSpace(ecs, SpaceSize, SpaceSize, CellSize, CellSize)

	byName := make(map[string]*donburi.Entry, len(page.Elements))
	for i, el := range page.Elements {
		byName[el.Name] = CreateElement(ecs, el, i)
	}

	for _, b := range page.Bounds {
		owner, ok := byName[b.Of]
		if !ok {
			return nil, fmt.Errorf("bounds %q: owner %q not on page", b.Name, b.Of)
		}
		CreateBounds(ecs, owner, b)
	}

	entry := archetypes.Page.Spawn(ecs)
	components.Page.SetValue(entry, components.PageData{Page: page})
	return entry, nil
}

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	entry := archetypes.Space.Spawn(ecs)
	space := resolv.NewSpace(width, height, cellWidth, cellHeight)
	pointer := resolv.NewObject(0, 0, 1, 1, tags.ResolvPointer)
	space.Add(pointer)
	components.Space.SetValue(entry, components.SpaceData{Space: space, Pointer: pointer})
	return entry
}

func CreateElement(ecs *ecs.ECS, el pagedata.Element, order int) *donburi.Entry {
	a := archetypes.Element
	if el.Hoverable {
		a = archetypes.Hoverable
	}
	entry := a.Spawn(ecs)
	components.Element.SetValue(entry, components.ElementData{
		ID:    el.Name,
		Kind:  el.Kind,
		Label: el.Label,
		Order: order,
		Rect:  gamemath.Rect{X: el.X, Y: el.Y, W: el.W, H: el.H},
	})
	components.Intro.SetValue(entry, components.IntroData{Alpha: 1})
	return entry
}

// CreateBounds stores b relative to its owner and adds its collision object
// to the space.
func CreateBounds(ecs *ecs.ECS, owner *donburi.Entry, b pagedata.Bounds) *donburi.Entry {
	entry := archetypes.Bounds.Spawn(ecs)
	o := components.Element.Get(owner).Rect
	components.Bounds.SetValue(entry, components.BoundsData{
		ID:    b.Name,
		Owner: owner.Entity(),
		Rel:   gamemath.Rect{X: b.X - o.X, Y: b.Y - o.Y, W: b.W, H: b.H},
	})

	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvBounds)
	obj.Data = entry // Link for O(1) lookup
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return entry
}
