package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds general window configuration
type Config struct {
	Width  int    `koanf:"width"`
	Height int    `koanf:"height"`
	Title  string `koanf:"title"`
}

// CursorConfig contains the cursor follower tuning values
type CursorConfig struct {
	// Smoothing
	PositionLerp float64 `koanf:"position_lerp"` // fraction of the remaining distance covered per tick
	ScaleLerp    float64 `koanf:"scale_lerp"`

	// Scale targets
	DefaultScale float64 `koanf:"default_scale"`
	HoverScale   float64 `koanf:"hover_scale"` // magnification while attracted

	// Attraction
	Attraction float64 `koanf:"attraction"` // share of the pointer-to-center vector kept while attracted

	// Free mode deformation from per-tick velocity
	VelocityFactor float64 `koanf:"velocity_factor"` // pixels/tick -> deformation
	StretchCap     float64 `koanf:"stretch_cap"`     // max added to scaleX
	SquashCap      float64 `koanf:"squash_cap"`      // max removed from scaleY

	// Attracted mode entry transition
	DistanceFactor     float64 `koanf:"distance_factor"`      // pixels -> normalized distance
	StretchDistanceCap float64 `koanf:"stretch_distance_cap"` // cap before cubing for stretch
	SquashDistanceCap  float64 `koanf:"squash_distance_cap"`  // cap before cubing for squash
	DeformGain         float64 `koanf:"deform_gain"`          // multiplier on the cubed distance
	HoverDuration      float64 `koanf:"hover_duration"`       // seconds
	HoverEase          string  `koanf:"hover_ease"`

	// Visual
	Radius float64    `koanf:"radius"`
	Color  color.RGBA `koanf:"-"`
}

// ParallaxConfig contains hoverable element parallax configuration
type ParallaxConfig struct {
	Strength       float64 `koanf:"strength"`        // offset = (pointer - center) * Strength
	ReturnDuration float64 `koanf:"return_duration"` // seconds
	ReturnEase     string  `koanf:"return_ease"`
}

// IntroConfig contains the page-load fade configuration
type IntroConfig struct {
	Delay    float64 `koanf:"delay"`    // seconds before the first element starts
	Stagger  float64 `koanf:"stagger"`  // seconds between consecutive elements
	Duration float64 `koanf:"duration"` // seconds per fade
	Rise     float64 `koanf:"rise"`     // pixels an element slides up while fading in
	Ease     string  `koanf:"ease"`
}

// PageConfig selects the embedded page layout
type PageConfig struct {
	Map string `koanf:"map"`
}

// DebugConfig contains debug options
type DebugConfig struct {
	ShowHUD bool `koanf:"show_hud"`
}

// LogConfig configures the slog handler
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // "text", "json", "console"
}

// PaletteConfig contains the page colors
type PaletteConfig struct {
	Background    color.RGBA
	Surface       color.RGBA
	SurfaceHover  color.RGBA
	Accent        color.RGBA
	Text          color.RGBA
	MutedText     color.RGBA
	BoundsOutline color.RGBA
	HUDText       color.RGBA
}

// Render layers
const (
	LayerPage ecs.LayerID = iota
	LayerCursor
	LayerDebug
)

// Global configuration instances
var C *Config
var Cursor CursorConfig
var Parallax ParallaxConfig
var Intro IntroConfig
var Page PageConfig
var Debug DebugConfig
var Log LogConfig
var Palette PaletteConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	OffWhite   = color.RGBA{R: 240, G: 236, B: 228, A: 255}
	Ink        = color.RGBA{R: 18, G: 18, B: 22, A: 255}
	Charcoal   = color.RGBA{R: 34, G: 34, B: 40, A: 255}
	Graphite   = color.RGBA{R: 52, G: 52, B: 60, A: 255}
	Grey       = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	Tangerine  = color.RGBA{R: 255, G: 106, B: 61, A: 255}
	Cyan       = color.RGBA{R: 0, G: 255, B: 255, A: 160}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "cursorfx",
	}

	// Cursor Config
	Cursor = CursorConfig{
		PositionLerp: 0.1,
		ScaleLerp:    0.1,

		DefaultScale: 1.0,
		HoverScale:   2.0,

		Attraction: 0.15,

		VelocityFactor: 0.04,
		StretchCap:     1.0,
		SquashCap:      0.3,

		DistanceFactor:     0.01,
		StretchDistanceCap: 0.6,
		SquashDistanceCap:  0.3,
		DeformGain:         3.0,
		HoverDuration:      0.5,
		HoverEase:          "power4.out",

		Radius: 10,
		Color:  Tangerine,
	}

	// Parallax Config
	Parallax = ParallaxConfig{
		Strength:       0.2,
		ReturnDuration: 1.0,
		ReturnEase:     "elastic.out",
	}

	// Intro Config
	Intro = IntroConfig{
		Delay:    0.2,
		Stagger:  0.08,
		Duration: 0.8,
		Rise:     24,
		Ease:     "power2.out",
	}

	Page = PageConfig{
		Map: "page/landing.tmx",
	}

	// Debug Config (defaults, overridable from the config file or CURSORFX_ env vars)
	Debug = DebugConfig{
		ShowHUD: false,
	}

	Log = LogConfig{
		Level:  "info",
		Format: "console",
	}

	Palette = PaletteConfig{
		Background:    Ink,
		Surface:       Charcoal,
		SurfaceHover:  Graphite,
		Accent:        Tangerine,
		Text:          OffWhite,
		MutedText:     Grey,
		BoundsOutline: Cyan,
		HUDText:       LightGreen,
	}
}
