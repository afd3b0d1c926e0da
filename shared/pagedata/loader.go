package pagedata

import (
	"fmt"
	"io/fs"

	"github.com/google/uuid"
	"github.com/lafriks/go-tiled"
)

// Object group names in a page TMX file.
const (
	GroupElements = "Elements"
	GroupBounds   = "Bounds"
)

// LoadPage parses a TMX page file. It takes an fs.FS so callers can pass
// the embedded assets or os.DirFS.
func LoadPage(fsys fs.FS, tmxPath string) (*Page, error) {
	pageMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	page := &Page{
		Width:  pageMap.Width * pageMap.TileWidth,
		Height: pageMap.Height * pageMap.TileHeight,
	}

	names := map[string]bool{}
	for _, og := range pageMap.ObjectGroups {
		if og.Name != GroupElements {
			continue
		}
		for _, o := range og.Objects {
			kind := o.Class
			if kind == "" {
				kind = o.Type //nolint:staticcheck // older TMX files use type=
			}
			name := o.Name
			if name == "" {
				// Unnamed elements still need an id for diagnostics.
				name = kind + "-" + uuid.NewString()
			}
			if names[name] {
				return nil, fmt.Errorf("%s: duplicate element name %q", tmxPath, name)
			}
			names[name] = true

			page.Elements = append(page.Elements, Element{
				Name:      name,
				Kind:      kind,
				Label:     o.Properties.GetString("label"),
				X:         o.X,
				Y:         o.Y,
				W:         o.Width,
				H:         o.Height,
				Hoverable: o.Properties.GetBool("hoverable"),
				Fluid:     o.Properties.GetBool("fluid"),
				Margin:    o.Properties.GetFloat("margin"),
				PinTo:     o.Properties.GetString("pin_to"),
				PinAlign:  o.Properties.GetString("pin_align"),
				PinDX:     o.Properties.GetFloat("pin_dx"),
				PinDY:     o.Properties.GetFloat("pin_dy"),
			})
		}
	}

	for _, og := range pageMap.ObjectGroups {
		if og.Name != GroupBounds {
			continue
		}
		for _, o := range og.Objects {
			of := o.Properties.GetString("of")
			if !names[of] {
				return nil, fmt.Errorf("%s: bounds object %d refers to unknown element %q", tmxPath, o.ID, of)
			}
			name := o.Name
			if name == "" {
				name = of + "-bounds"
			}
			page.Bounds = append(page.Bounds, Bounds{
				Name: name,
				Of:   of,
				X:    o.X,
				Y:    o.Y,
				W:    o.Width,
				H:    o.Height,
			})
		}
	}

	for _, e := range page.Elements {
		if e.PinTo != "" && !names[e.PinTo] {
			return nil, fmt.Errorf("%s: element %q is pinned to unknown element %q", tmxPath, e.Name, e.PinTo)
		}
	}

	return page, nil
}
