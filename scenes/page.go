package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/cursorfx/assets"
	cfg "github.com/automoto/cursorfx/config"
	"github.com/automoto/cursorfx/metrics"
	"github.com/automoto/cursorfx/shared/logger"
	"github.com/automoto/cursorfx/systems"
	"github.com/automoto/cursorfx/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PageScene shows the landing page with the cursor follower on top.
type PageScene struct {
	ecs      *ecs.ECS
	recorder *metrics.Recorder
	once     sync.Once
	err      error

	// window size seen before configure ran
	pendingW, pendingH int
}

func NewPageScene(rec *metrics.Recorder) *PageScene {
	return &PageScene{recorder: rec}
}

func (ps *PageScene) Update() error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}
	ps.ecs.Update()
	if systems.GetOrCreateSettings(ps.ecs).Quit {
		return ebiten.Termination
	}
	return nil
}

func (ps *PageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Resize reflows the page for a new window size.
func (ps *PageScene) Resize(w, h int) {
	if ps.ecs == nil {
		ps.pendingW, ps.pendingH = w, h
		return
	}
	systems.ResizePage(ps.ecs, w, h)
}

func (ps *PageScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())

	page, err := assets.LoadPage(cfg.Page.Map)
	if err != nil {
		ps.err = err
		return
	}
	if _, err := factory.CreatePage(ps.ecs, page); err != nil {
		ps.err = err
		return
	}
	if _, err := systems.BuildLayout(ps.ecs); err != nil {
		ps.err = err
		return
	}
	w, h := ps.pendingW, ps.pendingH
	if w == 0 || h == 0 {
		w, h = cfg.C.Width, cfg.C.Height
	}
	systems.ResizePage(ps.ecs, w, h)

	// Registration failures only drop the element concerned.
	if _, err := systems.CreateCursor(ps.ecs, ps.recorder); err != nil {
		logger.L().Warn("page has unregistered hoverables", "err", err)
	}
	systems.StartIntro(ps.ecs)

	// Input runs before the follower so hover targets are current.
	ps.ecs.AddSystem(systems.UpdateInput)
	ps.ecs.AddSystem(systems.UpdateActions)
	ps.ecs.AddSystem(systems.UpdatePointer)
	ps.ecs.AddSystem(systems.UpdateCursor)
	ps.ecs.AddSystem(systems.UpdateIntro)

	ps.ecs.AddRenderer(cfg.LayerPage, systems.DrawPage)
	ps.ecs.AddRenderer(cfg.LayerCursor, systems.DrawCursor)
	ps.ecs.AddRenderer(cfg.LayerDebug, systems.DrawDebug)

	logger.L().Info("page ready", "map", cfg.Page.Map, "elements", len(page.Elements), "bounds", len(page.Bounds))
}
