package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/automoto/cursorfx/shared/easing"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override, e.g.
	// CURSORFX_CURSOR__HOVER_SCALE=2.5 sets cursor.hover_scale.
	EnvPrefix = "CURSORFX_"
	// EnvFile names the variable holding an optional YAML override file.
	EnvFile = EnvPrefix + "CONFIG"
)

// Settings groups every overridable section under its koanf key.
type Settings struct {
	Window   Config         `koanf:"window"`
	Cursor   CursorConfig   `koanf:"cursor"`
	Parallax ParallaxConfig `koanf:"parallax"`
	Intro    IntroConfig    `koanf:"intro"`
	Page     PageConfig     `koanf:"page"`
	Debug    DebugConfig    `koanf:"debug"`
	Log      LogConfig      `koanf:"log"`
}

// Current returns the settings held by the package globals.
func Current() Settings {
	return Settings{
		Window:   *C,
		Cursor:   Cursor,
		Parallax: Parallax,
		Intro:    Intro,
		Page:     Page,
		Debug:    Debug,
		Log:      Log,
	}
}

// Load layers overrides on top of the init() defaults and installs the
// result in the package globals. Order of precedence (low -> high):
//  1. defaults
//  2. YAML file named by CURSORFX_CONFIG, if set
//  3. CURSORFX_* environment variables
func Load() error {
	s, err := LoadSettings(os.Getenv(EnvFile))
	if err != nil {
		return err
	}
	Apply(s)
	return nil
}

// LoadSettings builds Settings from the current globals, the optional YAML
// file at path and the environment. It does not touch the globals.
func LoadSettings(path string) (*Settings, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Double underscore separates levels, single underscores are kept to
	// match the koanf tags: CURSORFX_PARALLAX__RETURN_EASE -> parallax.return_ease
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	s := Current()
	if err := k.UnmarshalWithConf("", &s, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Apply installs s in the package globals.
func Apply(s *Settings) {
	w := s.Window
	C = &w
	Cursor = s.Cursor
	Parallax = s.Parallax
	Intro = s.Intro
	Page = s.Page
	Debug = s.Debug
	Log = s.Log
}

// Validate rejects settings the effects cannot run with.
func (s *Settings) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height))
	}
	for name, v := range map[string]float64{
		"cursor.position_lerp": s.Cursor.PositionLerp,
		"cursor.scale_lerp":    s.Cursor.ScaleLerp,
		"cursor.attraction":    s.Cursor.Attraction,
	} {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, v))
		}
	}
	for name, ease := range map[string]string{
		"cursor.hover_ease":    s.Cursor.HoverEase,
		"parallax.return_ease": s.Parallax.ReturnEase,
		"intro.ease":           s.Intro.Ease,
	} {
		if _, err := easing.Lookup(ease); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if s.Page.Map == "" {
		errs = append(errs, errors.New("page.map must not be empty"))
	}
	return errors.Join(errs...)
}
