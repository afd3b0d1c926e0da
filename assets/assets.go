package assets

import (
	"embed"
	"image/color"

	"github.com/automoto/cursorfx/shared/pagedata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	//go:embed all:page
	pageFS embed.FS
)

// LoadPage parses an embedded page layout, e.g. "page/landing.tmx".
func LoadPage(path string) (*pagedata.Page, error) {
	return pagedata.LoadPage(pageFS, path)
}

var dotCache = map[dotKey]*ebiten.Image{}

type dotKey struct {
	radius int
	clr    color.RGBA
}

// Dot returns a filled circle image of the given radius. The circle is
// centered in the image, so pivoting on (radius, radius) rotates and
// scales it in place.
func Dot(radius float64, clr color.RGBA) *ebiten.Image {
	key := dotKey{radius: int(radius + 0.5), clr: clr}
	if img, ok := dotCache[key]; ok {
		return img
	}
	size := key.radius * 2
	img := ebiten.NewImage(size, size)
	r := float32(key.radius)
	vector.DrawFilledCircle(img, r, r, r, clr, true)
	dotCache[key] = img
	return img
}
