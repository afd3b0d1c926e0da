package systems

import (
	"github.com/automoto/cursorfx/components"
	cfg "github.com/automoto/cursorfx/config"
	"github.com/automoto/cursorfx/shared/easing"
	"github.com/automoto/cursorfx/shared/logger"
	"github.com/automoto/cursorfx/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var introQuery = donburi.NewQuery(filter.Contains(tags.Element, components.Element, components.Intro))

// StartIntro hides every element and schedules its fade-in. Element n
// starts Delay + n*Stagger seconds from now.
func StartIntro(e *ecs.ECS) {
	introQuery.Each(e.World, func(entry *donburi.Entry) {
		el := components.Element.Get(entry)
		intro := components.Intro.Get(entry)

		tr, err := easing.NewTransition(
			[]float64{0, cfg.Intro.Rise},
			[]float64{1, 0},
			cfg.Intro.Duration,
			cfg.Intro.Ease,
		)
		if err != nil {
			logger.L().Warn("intro disabled", "element", el.ID, "err", err)
			*intro = components.IntroData{Alpha: 1}
			return
		}
		*intro = components.IntroData{
			Delay:      cfg.Intro.Delay + float64(el.Order)*cfg.Intro.Stagger,
			Transition: tr,
			Alpha:      0,
			Rise:       cfg.Intro.Rise,
		}
	})
}

func UpdateIntro(e *ecs.ECS) {
	dt := tickSeconds()
	introQuery.Each(e.World, func(entry *donburi.Entry) {
		advanceIntro(components.Intro.Get(entry), dt)
	})
}

func advanceIntro(intro *components.IntroData, dt float64) {
	if intro.Transition == nil {
		return
	}
	if intro.Delay > 0 {
		intro.Delay -= dt
		if intro.Delay > 0 {
			return
		}
		// carry the part of the tick left after the delay
		dt = -intro.Delay
		intro.Delay = 0
	}
	v, done := intro.Transition.Update(dt)
	if done {
		intro.Transition = nil
		intro.Alpha, intro.Rise = 1, 0
		return
	}
	intro.Alpha, intro.Rise = v[0], v[1]
}
