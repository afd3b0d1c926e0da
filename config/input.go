package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical page action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleDebug
	ActionToggleFullscreen
	ActionReplayIntro
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionToggleDebug:      {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionToggleFullscreen: {Keys: []ebiten.Key{ebiten.KeyF11}},
			ActionReplayIntro:      {Keys: []ebiten.Key{ebiten.KeyR}},
			ActionQuit:             {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
	}
}
