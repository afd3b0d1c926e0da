package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/cursorfx/components"
	cfg "github.com/automoto/cursorfx/config"
	"github.com/automoto/cursorfx/fonts"
	"github.com/automoto/cursorfx/shared/gamemath"
	"github.com/automoto/cursorfx/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"golang.org/x/image/font"
)

const (
	labelPadding = 16
	buttonStroke = 2
)

// Reused between frames to avoid allocating the draw list.
var drawList []*donburi.Entry

// DrawPage renders every element in page order with its parallax offset
// and intro fade applied.
func DrawPage(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Palette.Background)

	drawList = drawList[:0]
	donburi.NewQuery(filter.Contains(tags.Element, components.Element)).Each(e.World, func(entry *donburi.Entry) {
		drawList = append(drawList, entry)
	})
	sort.SliceStable(drawList, func(i, j int) bool {
		return components.Element.Get(drawList[i]).Order < components.Element.Get(drawList[j]).Order
	})

	hovered := hoveredElementID(e)
	for _, entry := range drawList {
		el := components.Element.Get(entry)
		alpha, rise := 1.0, 0.0
		if entry.HasComponent(components.Intro) {
			intro := components.Intro.Get(entry)
			alpha, rise = intro.Alpha, intro.Rise
		}
		if alpha <= 0 {
			continue
		}
		r := el.Rect.Translate(el.Offset).Translate(gamemath.Pt(0, rise))
		drawElement(screen, el, r, alpha, el.ID == hovered)
	}
}

func drawElement(screen *ebiten.Image, el *components.ElementData, r gamemath.Rect, alpha float64, hovered bool) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	surface := cfg.Palette.Surface
	if hovered {
		surface = cfg.Palette.SurfaceHover
	}

	switch el.Kind {
	case "header":
		vector.FillRect(screen, x, y, w, h, fade(cfg.Palette.Surface, alpha), false)
	case "button":
		vector.FillRect(screen, x, y, w, h, fade(surface, alpha), true)
		vector.StrokeRect(screen, x, y, w, h, buttonStroke, fade(cfg.Palette.Accent, alpha), true)
		drawLabel(screen, el.Label, fonts.Button.Get(), r, true, fade(cfg.Palette.Text, alpha))
	case "card":
		vector.FillRect(screen, x, y, w, h, fade(surface, alpha), true)
		drawLabel(screen, el.Label, fonts.Body.Get(), r, false, fade(cfg.Palette.Text, alpha))
	case "link":
		drawLabel(screen, el.Label, fonts.Body.Get(), r, true, fade(cfg.Palette.Accent, alpha))
		vector.FillRect(screen, x+labelPadding, y+h-4, w-2*labelPadding, 1, fade(cfg.Palette.Accent, alpha), false)
	case "heading":
		drawLabel(screen, el.Label, fonts.Headline.Get(), r, false, fade(cfg.Palette.Text, alpha))
	default:
		drawLabel(screen, el.Label, fonts.Body.Get(), r, false, fade(cfg.Palette.MutedText, alpha))
	}
}

// drawLabel writes label inside r, vertically centered, either centered or
// left-aligned with padding.
func drawLabel(screen *ebiten.Image, label string, face font.Face, r gamemath.Rect, center bool, clr color.Color) {
	if label == "" {
		return
	}
	b := text.BoundString(face, label)
	x := r.X + labelPadding
	if center {
		x = r.X + (r.W-float64(b.Dx()))/2
	}
	y := r.Y + (r.H+float64(b.Dy()))/2
	text.Draw(screen, label, face, int(x), int(y), clr)
}

// fade scales a straight-alpha color by alpha and premultiplies it.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := gamemath.Clamp01(alpha) * float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

func hoveredElementID(e *ecs.ECS) string {
	entry, ok := components.Cursor.First(e.World)
	if !ok {
		return ""
	}
	c := components.Cursor.Get(entry)
	if c.Tracker == nil {
		return ""
	}
	if h := c.Tracker.Hovered(); h != nil {
		return h.Element().ID()
	}
	return ""
}
