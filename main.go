package main

import (
	"errors"
	"log"

	"github.com/automoto/cursorfx/config"
	"github.com/automoto/cursorfx/fonts"
	"github.com/automoto/cursorfx/metrics"
	"github.com/automoto/cursorfx/scenes"
	"github.com/automoto/cursorfx/shared/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Resize(w, h int)
}

type Game struct {
	scene         Scene
	width, height int
}

func NewGame() *Game {
	return &Game{
		scene: scenes.NewPageScene(metrics.NewRecorder()),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps a 1:1 pixel mapping with the window, so a resize reflows the
// page instead of scaling it.
func (g *Game) Layout(width, height int) (int, int) {
	if width != g.width || height != g.height {
		g.width, g.height = width, height
		g.scene.Resize(width, height)
	}
	return width, height
}

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(logger.Config{Level: config.Log.Level, Format: config.Log.Format})

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(NewGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
