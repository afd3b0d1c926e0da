package cursor_test

import (
	"math"
	"testing"

	"github.com/automoto/cursorfx/config"
	"github.com/automoto/cursorfx/cursor"
	"github.com/automoto/cursorfx/shared/gamemath"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAttraction(t *testing.T) {
	rect := gamemath.Rect{X: 50, Y: 50, W: 100, H: 100} // center (100, 100)

	Convey("Pointer at the origin, target centered on (100, 100)", t, func() {
		offset, target, ok := cursor.Attraction(gamemath.Pt(0, 0), rect, 0.15)
		So(ok, ShouldBeTrue)
		So(offset.X, ShouldAlmostEqual, -15, 1e-9)
		So(offset.Y, ShouldAlmostEqual, -15, 1e-9)
		So(target.X, ShouldAlmostEqual, 85, 1e-9)
		So(target.Y, ShouldAlmostEqual, 85, 1e-9)
	})

	Convey("The offset never exceeds 15% of the raw distance", t, func() {
		for _, k := range []float64{0, 1, 37, 1e3, 1e6, 1e12} {
			p := gamemath.Pt(100+k, 100-k/2)
			offset, _, ok := cursor.Attraction(p, rect, 0.15)
			So(ok, ShouldBeTrue)
			raw := p.Sub(rect.Center()).Len()
			So(offset.Len(), ShouldBeLessThanOrEqualTo, 0.15*raw*(1+1e-12))
		}
	})

	Convey("Degenerate rects are rejected", t, func() {
		_, _, ok := cursor.Attraction(gamemath.Pt(0, 0), gamemath.Rect{X: 10, Y: 10}, 0.15)
		So(ok, ShouldBeFalse)
		_, _, ok = cursor.Attraction(gamemath.Pt(0, 0), gamemath.Rect{X: math.NaN(), W: 5, H: 5}, 0.15)
		So(ok, ShouldBeFalse)
		_, _, ok = cursor.Attraction(gamemath.Pt(0, 0), gamemath.Rect{X: math.MaxFloat64, W: math.MaxFloat64, H: 1}, 0.15)
		So(ok, ShouldBeFalse)
	})
}

func TestControllerFreeMode(t *testing.T) {
	Convey("Given a free controller at the origin", t, func() {
		cfg := config.Cursor
		sink := &recordingSink{}
		obs := &countingObserver{}
		c := cursor.NewController(cfg, sink, cursor.WithObserver(obs))

		So(c.Mode(), ShouldEqual, cursor.Free)

		Convey("A pointer move targets the raw pointer and the default scale", func() {
			c.OnPointerMove(100, 0)
			st := c.State()
			So(st.Position.Target, ShouldResemble, gamemath.Pt(100, 0))
			So(st.Scale.Target, ShouldEqual, cfg.DefaultScale)
		})

		Convey("A frame deforms along the velocity with capped contributions", func() {
			c.OnPointerMove(100, 0)
			c.OnFrame(tick)

			So(sink.calls, ShouldHaveLength, 1)
			tr := sink.calls[0]
			So(tr.X, ShouldAlmostEqual, 10, 1e-9) // 0.1 of 100
			So(tr.Y, ShouldAlmostEqual, 0, 1e-9)
			So(tr.Rotation, ShouldAlmostEqual, 0, 1e-9)
			So(tr.ScaleX, ShouldAlmostEqual, 1.4, 1e-9) // 1 + 10*0.04
			So(tr.ScaleY, ShouldAlmostEqual, 0.7, 1e-9) // 1 - min(0.4, 0.3)
			So(obs.rendered, ShouldEqual, 1)
		})

		Convey("Rotation follows the direction of travel", func() {
			c.OnPointerMove(0, 100)
			c.OnFrame(tick)
			So(c.Transform().Rotation, ShouldAlmostEqual, math.Pi/2, 1e-9)
		})

		Convey("A still frame has zero velocity and no deformation", func() {
			c.OnFrame(tick)
			So(c.State().Position.Delta(), ShouldResemble, gamemath.Point{})
			So(c.Transform().ScaleX, ShouldEqual, cfg.DefaultScale)
			So(c.Transform().ScaleY, ShouldEqual, cfg.DefaultScale)
		})

		Convey("Non-finite pointer coordinates are ignored", func() {
			c.OnPointerMove(math.NaN(), 3)
			_, ok := c.Pointer()
			So(ok, ShouldBeFalse)
			So(c.State().Position.Target, ShouldResemble, gamemath.Point{})
		})
	})
}

func TestControllerAttractedMode(t *testing.T) {
	Convey("Given a controller and a hover target centered on (100, 100)", t, func() {
		cfg := config.Cursor
		sink := &recordingSink{}
		obs := &countingObserver{}
		c := cursor.NewController(cfg, sink, cursor.WithObserver(obs))
		target := &fakeElement{id: "cta-bounds", rect: gamemath.Rect{X: 50, Y: 50, W: 100, H: 100}}

		Convey("Entering with the pointer on the exact center gives zero offset", func() {
			c.OnPointerMove(100, 100)
			c.OnHoverEnter(target)

			st := c.State()
			So(st.Mode, ShouldEqual, cursor.Attracted)
			So(st.HoverTarget, ShouldEqual, target)
			So(st.Position.Target, ShouldResemble, gamemath.Pt(100, 100))
			So(st.Scale.Target, ShouldEqual, cfg.HoverScale)
			So(obs.entered, ShouldResemble, []string{"cta-bounds"})
		})

		Convey("Pointer moves while attracted recompute the damped target", func() {
			c.OnHoverEnter(target)
			c.OnPointerMove(0, 0)
			So(c.State().Position.Target.X, ShouldAlmostEqual, 85, 1e-9)
			So(c.State().Position.Target.Y, ShouldAlmostEqual, 85, 1e-9)
		})

		Convey("The entry transition replaces velocity deformation", func() {
			c.OnPointerMove(200, 100) // raw offset (100, 0)
			c.OnHoverEnter(target)
			So(c.Transitioning(), ShouldBeTrue)

			for i := 0; i < 40; i++ { // two thirds of a second, past the 0.5s transition
				c.OnFrame(tick)
			}
			So(c.Transitioning(), ShouldBeFalse)

			tr := c.Transform()
			So(tr.Rotation, ShouldAlmostEqual, 0, 1e-9)
			So(tr.ScaleX, ShouldAlmostEqual, 2.648, 1e-4) // 2 + 0.6^3 * 3
			So(tr.ScaleY, ShouldAlmostEqual, 1.919, 1e-4) // 2 - 0.3^3 * 3

			// still moving toward the target, yet no velocity stretch
			So(c.State().Position.Delta().Len(), ShouldBeGreaterThan, 0)
		})

		Convey("Rotation snaps to the pointer offset on the first attracted frame", func() {
			c.OnPointerMove(100, 200) // raw offset (0, 100)
			c.OnFrame(tick)
			c.OnHoverEnter(target)
			c.OnFrame(tick)

			tr := c.Transform()
			So(tr.Rotation, ShouldAlmostEqual, math.Atan2(100, 0), 1e-9)
			So(c.Transitioning(), ShouldBeTrue)

			Convey("while the scales ease from the free frame toward the hover shape", func() {
				So(tr.ScaleX, ShouldBeGreaterThan, 1.0)
				So(tr.ScaleX, ShouldBeLessThan, 2.648)

				for i := 0; i < 60; i++ {
					c.OnFrame(tick)
				}
				tr = c.Transform()
				So(tr.Rotation, ShouldAlmostEqual, math.Pi/2, 1e-9)
				So(tr.ScaleX, ShouldAlmostEqual, 2.648, 1e-4)
				So(tr.ScaleY, ShouldAlmostEqual, 1.919, 1e-4)
			})
		})

		Convey("Leaving restores the raw pointer and default scale targets", func() {
			c.OnPointerMove(120, 90)
			c.OnHoverEnter(target)
			c.OnHoverLeave()

			st := c.State()
			So(st.Mode, ShouldEqual, cursor.Free)
			So(st.HoverTarget, ShouldBeNil)
			So(st.Position.Target, ShouldResemble, gamemath.Pt(120, 90))
			So(st.Scale.Target, ShouldEqual, cfg.DefaultScale)
			So(c.Transitioning(), ShouldBeFalse)
		})

		Convey("A zero-size target falls back to following the raw pointer", func() {
			flat := &fakeElement{id: "flat", rect: gamemath.Rect{X: 300, Y: 300}}
			c.OnPointerMove(10, 20)
			c.OnHoverEnter(flat)
			So(c.Mode(), ShouldEqual, cursor.Attracted)
			So(c.State().Position.Target, ShouldResemble, gamemath.Pt(10, 20))
			So(c.State().Scale.Target, ShouldEqual, cfg.DefaultScale)
			So(c.Transitioning(), ShouldBeFalse)

			c.OnFrame(tick)
			So(c.Transform().X, ShouldAlmostEqual, 1, 1e-9) // 0.1 of 10

			Convey("and keeps tracking later moves during the hover", func() {
				c.OnPointerMove(50, 60)
				So(c.State().Position.Target, ShouldResemble, gamemath.Pt(50, 60))

				c.OnFrame(tick)
				So(c.Transform().ScaleX, ShouldBeGreaterThan, cfg.DefaultScale)
			})

			Convey("and attracts once the rect gains a size", func() {
				flat.rect = gamemath.Rect{X: 0, Y: 0, W: 100, H: 100}
				c.OnPointerMove(0, 0)
				So(c.State().Position.Target.X, ShouldAlmostEqual, 42.5, 1e-9)
				So(c.State().Scale.Target, ShouldEqual, cfg.HoverScale)
				So(c.Transitioning(), ShouldBeTrue)
			})
		})

		Convey("A nil target is ignored", func() {
			c.OnHoverEnter(nil)
			So(c.Mode(), ShouldEqual, cursor.Free)
		})
	})
}

func TestControllerRecovery(t *testing.T) {
	Convey("Given a hover scale that overflows", t, func() {
		cfg := config.Cursor
		cfg.HoverScale = math.Inf(1)
		sink := &recordingSink{}
		obs := &countingObserver{}
		c := cursor.NewController(cfg, sink, cursor.WithObserver(obs))
		target := &fakeElement{id: "b", rect: gamemath.Rect{X: 50, Y: 50, W: 100, H: 100}}

		c.OnPointerMove(100, 100)
		c.OnHoverEnter(target)

		Convey("The bad frame is skipped and the state reset", func() {
			c.OnFrame(tick)
			So(obs.skipped, ShouldEqual, 1)
			So(sink.calls, ShouldBeEmpty)

			st := c.State()
			So(st.Scale.Current, ShouldEqual, cfg.DefaultScale)
			So(st.Position.Current, ShouldResemble, gamemath.Pt(100, 100))

			Convey("and the loop keeps running", func() {
				c.OnFrame(tick)
				So(obs.rendered, ShouldEqual, 1)
				So(sink.calls, ShouldHaveLength, 1)
			})
		})
	})

	Convey("WithStart ignores non-finite positions", t, func() {
		c := cursor.NewController(config.Cursor, nil, cursor.WithStart(gamemath.Pt(math.Inf(-1), 0)))
		So(c.State().Position.Current, ShouldResemble, gamemath.Point{})

		c = cursor.NewController(config.Cursor, nil, cursor.WithStart(gamemath.Pt(640, 360)))
		So(c.State().Position.Current, ShouldResemble, gamemath.Pt(640, 360))
	})
}
