package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/cursorfx/components"
	cfg "github.com/automoto/cursorfx/config"
	"github.com/automoto/cursorfx/cursor"
	"github.com/automoto/cursorfx/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
)

// DrawDebug outlines every hit area and prints the follower state when the
// debug toggle is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if obj == space.Pointer {
				continue
			}
			drawOutline(screen, obj.X, obj.Y, obj.W, obj.H, cfg.Palette.BoundsOutline)
		}
	}

	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	c := components.Cursor.Get(entry)
	state := c.Controller.State()

	if state.Mode == cursor.Attracted && state.HoverTarget != nil {
		center := state.HoverTarget.Rect().Center()
		vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), 3, cfg.Palette.BoundsOutline, true)
	}

	lines := hudLines(c, state)
	if pageEntry, ok := components.Page.First(ecs.World); ok {
		if l := components.Page.Get(pageEntry).Layout; l != nil {
			w, h := l.Size()
			lines = append(lines, fmt.Sprintf("window %dx%d  resizes %d", w, h, l.Resizes()))
		}
	}
	lines = append(lines, fmt.Sprintf("tps %.1f  fps %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))

	face := fonts.Small.Get()
	for i, line := range lines {
		y := screen.Bounds().Dy() - hudMargin - (len(lines)-1-i)*hudLineHeight
		text.Draw(screen, line, face, hudMargin, y, cfg.Palette.HUDText)
	}
}

func hudLines(c *components.CursorData, state cursor.State) []string {
	mode := state.Mode.String()
	if state.HoverTarget != nil {
		mode += " (" + state.HoverTarget.ID() + ")"
	}
	pos := state.Position.Current
	vel := state.Position.Delta()
	t := c.Transform

	lines := []string{
		"mode " + mode,
		fmt.Sprintf("pos %.1f, %.1f  vel %.2f, %.2f  scale %.2f", pos.X, pos.Y, vel.X, vel.Y, state.Scale.Current),
		fmt.Sprintf("rot %.2f  sx %.2f  sy %.2f", t.Rotation, t.ScaleX, t.ScaleY),
	}
	if c.Recorder != nil {
		s := c.Recorder.Snapshot()
		lines = append(lines, fmt.Sprintf("frames %.0f  skipped %.0f  hovers %.0f  failed %.0f",
			s.FramesRendered, s.FramesSkipped, s.HoverEnters, s.RegistrationFailures))
	}
	return lines
}

func drawOutline(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
