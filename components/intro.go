package components

import (
	"github.com/automoto/cursorfx/shared/easing"
	"github.com/yohamta/donburi"
)

// IntroData is the page-load fade of one element.
type IntroData struct {
	Delay      float64 // seconds left before the fade starts
	Transition *easing.Transition

	Alpha float64 // 0..1
	Rise  float64 // pixels below the resting position
}

var Intro = donburi.NewComponentType[IntroData]()
