// Package pagedata parses the page layout from a TMX map.
// It does not import ebiten, so pages load in tests without a window.
package pagedata

// Page holds every element parsed from a TMX page file.
type Page struct {
	Width    int
	Height   int
	Elements []Element
	Bounds   []Bounds
}

// Element is a visual page element. Elements keep map order, which is also
// their draw and intro order.
type Element struct {
	Name      string
	Kind      string // "header", "heading", "text", "button", "link", "card"
	Label     string
	X, Y      float64
	W, H      float64
	Hoverable bool

	// Fluid elements stretch to the window width minus Margin.
	Fluid  bool
	Margin float64

	// Pin, when PinTo is set, keeps the element attached to another one.
	PinTo    string
	PinAlign string
	PinDX    float64
	PinDY    float64
}

// Bounds is the inner hit area of a hoverable element, given in page
// coordinates.
type Bounds struct {
	Name       string
	Of         string // owning element name
	X, Y, W, H float64
}

// Find returns the element named name.
func (p *Page) Find(name string) (Element, bool) {
	for _, e := range p.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return Element{}, false
}
