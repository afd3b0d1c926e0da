package systems

import (
	"errors"

	"github.com/automoto/cursorfx/archetypes"
	"github.com/automoto/cursorfx/assets"
	"github.com/automoto/cursorfx/components"
	cfg "github.com/automoto/cursorfx/config"
	"github.com/automoto/cursorfx/cursor"
	"github.com/automoto/cursorfx/metrics"
	"github.com/automoto/cursorfx/shared/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var cursorDrawOp = &ebiten.DrawImageOptions{}

// CreateCursor spawns the follower, registers every hoverable element of
// the page and builds the hover tracker. Registration failures are logged
// and returned; the cursor entity is usable either way.
func CreateCursor(e *ecs.ECS, rec *metrics.Recorder) (*donburi.Entry, error) {
	entry := archetypes.Cursor.Spawn(e)

	sink := cursor.RenderSinkFunc(func(t cursor.Transform) {
		c := components.Cursor.Get(entry)
		c.Transform = t
		c.Visible = true
	})
	opts := []cursor.Option{}
	if rec != nil {
		opts = append(opts, cursor.WithObserver(rec))
	}
	ctrl := cursor.NewController(cfg.Cursor, sink, opts...)

	hoverables, err := ctrl.Register(NewDocument(e.World), cfg.Parallax, ParallaxSinkFor)
	logRegistrationErrors(err)

	components.Cursor.SetValue(entry, components.CursorData{
		Controller: ctrl,
		Tracker:    cursor.NewHoverTracker(ctrl, NewSpaceHitTester(e.World), hoverables),
		Recorder:   rec,
		Transform:  ctrl.Transform(),
	})
	logger.L().Info("cursor ready", "hoverables", len(hoverables))
	return entry, err
}

func logRegistrationErrors(err error) {
	if err == nil {
		return
	}
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	for _, err := range errs {
		var re *cursor.RegistrationError
		if errors.As(err, &re) {
			logger.L().Warn("hoverable skipped", "element", re.ElementID, "err", re.Err)
			continue
		}
		logger.L().Warn("hoverable skipped", "err", err)
	}
}

// tickSeconds is the fixed update step.
func tickSeconds() float64 {
	return 1 / float64(ebiten.TPS())
}

// UpdateCursor runs the follower frame and the parallax return
// transitions, then moves the hit areas with the parallax. It must run
// after UpdatePointer.
func UpdateCursor(e *ecs.ECS) {
	entry, ok := components.Cursor.First(e.World)
	if !ok {
		return
	}
	c := components.Cursor.Get(entry)
	dt := tickSeconds()
	c.Controller.OnFrame(dt)
	c.Tracker.Tick(dt)
	SyncBounds(e.World)
}

// DrawCursor draws the follower dot: scaled and rotated about its center,
// then placed at the transform position.
func DrawCursor(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Cursor.First(e.World)
	if !ok {
		return
	}
	c := components.Cursor.Get(entry)
	if !c.Visible || !c.HasPointer {
		return
	}

	dot := assets.Dot(cfg.Cursor.Radius, cfg.Cursor.Color)
	half := float64(dot.Bounds().Dx()) / 2
	t := c.Transform

	cursorDrawOp.GeoM.Reset()
	cursorDrawOp.GeoM.Translate(-half, -half)
	cursorDrawOp.GeoM.Scale(t.ScaleX, t.ScaleY)
	cursorDrawOp.GeoM.Rotate(t.Rotation)
	cursorDrawOp.GeoM.Translate(t.X, t.Y)
	cursorDrawOp.Filter = ebiten.FilterLinear
	screen.DrawImage(dot, cursorDrawOp)
}
