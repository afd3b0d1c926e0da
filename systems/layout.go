package systems

import (
	"fmt"

	"github.com/automoto/cursorfx/components"
	"github.com/automoto/cursorfx/shared/gamemath"
	"github.com/automoto/cursorfx/shared/layout"
	"github.com/yohamta/donburi/ecs"
)

// BuildLayout turns the page's fluid and pin properties into a layout and
// stores it on the page entity.
func BuildLayout(e *ecs.ECS) (*layout.Layout, error) {
	pageEntry, ok := components.Page.First(e.World)
	if !ok {
		return nil, fmt.Errorf("build layout: no page")
	}
	data := components.Page.Get(pageEntry)
	doc := NewDocument(e.World)

	l := layout.New()
	for _, el := range data.Page.Elements {
		pe, ok := doc.ElementByID(el.Name)
		if !ok {
			continue
		}
		if el.Fluid {
			l.AddFluid(layout.Fluid{Element: pe, Margin: el.Margin})
		}
		if el.PinTo == "" {
			continue
		}
		anchor, ok := doc.ElementByID(el.PinTo)
		if !ok {
			return nil, fmt.Errorf("pin %q: anchor %q not on page", el.Name, el.PinTo)
		}
		align, err := layout.ParseAlign(el.PinAlign)
		if err != nil {
			return nil, fmt.Errorf("pin %q: %w", el.Name, err)
		}
		l.AddPin(layout.Pin{
			Anchor:    anchor,
			Dependent: pe,
			Align:     align,
			Offset:    gamemath.Pt(el.PinDX, el.PinDY),
		})
	}
	data.Layout = l
	return l, nil
}

// ResizePage reflows the page for a w x h window when the size changed
// and moves the hit areas along.
func ResizePage(e *ecs.ECS, w, h int) {
	pageEntry, ok := components.Page.First(e.World)
	if !ok {
		return
	}
	l := components.Page.Get(pageEntry).Layout
	if l == nil {
		return
	}
	if lw, lh := l.Size(); lw == w && lh == h {
		return
	}
	l.OnResize(w, h)
	SyncBounds(e.World)
}
