package systems

import (
	"github.com/automoto/cursorfx/components"
	cfg "github.com/automoto/cursorfx/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and updates the InputComponent.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// UpdateActions applies the key actions pressed this frame.
func UpdateActions(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if input.JustPressed(cfg.ActionToggleDebug) {
		settings.Debug = !settings.Debug
	}
	if input.JustPressed(cfg.ActionToggleFullscreen) {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
	}
	if input.JustPressed(cfg.ActionReplayIntro) {
		StartIntro(e)
	}
	if input.JustPressed(cfg.ActionQuit) {
		settings.Quit = true
	}
}

// UpdatePointer turns cursor movement into hover dispatch. Only changed
// positions are dispatched, the way a browser only fires pointermove on
// motion.
func UpdatePointer(e *ecs.ECS) {
	entry, ok := components.Cursor.First(e.World)
	if !ok {
		return
	}
	c := components.Cursor.Get(entry)

	x, y := ebiten.CursorPosition()
	if c.HasPointer && x == c.PointerX && y == c.PointerY {
		return
	}
	c.PointerX, c.PointerY, c.HasPointer = x, y, true
	c.Tracker.Dispatch(float64(x), float64(y))
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetOrCreateSettings returns the runtime toggles, seeded from config.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.ShowHUD,
		})
	}
	return components.Settings.Get(entry)
}
