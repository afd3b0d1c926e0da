package systems

import (
	"testing"

	"github.com/automoto/cursorfx/assets"
	"github.com/automoto/cursorfx/components"
	cfg "github.com/automoto/cursorfx/config"
	"github.com/automoto/cursorfx/cursor"
	"github.com/automoto/cursorfx/metrics"
	"github.com/automoto/cursorfx/shared/gamemath"
	"github.com/automoto/cursorfx/shared/pagedata"
	"github.com/automoto/cursorfx/systems/factory"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tick = 1.0 / 60

func newLandingPage() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	page, err := assets.LoadPage("page/landing.tmx")
	So(err, ShouldBeNil)
	_, err = factory.CreatePage(e, page)
	So(err, ShouldBeNil)
	_, err = BuildLayout(e)
	So(err, ShouldBeNil)
	ResizePage(e, 1280, 720)
	return e
}

func elementRect(e *ecs.ECS, id string) gamemath.Rect {
	pe, ok := NewDocument(e.World).ElementByID(id)
	So(ok, ShouldBeTrue)
	return pe.Rect()
}

func TestDocument(t *testing.T) {
	Convey("Given the landing page world", t, func() {
		e := newLandingPage()
		doc := NewDocument(e.World)

		Convey("Hoverables come back in page order", func() {
			var ids []string
			for _, el := range doc.QueryHoverables() {
				ids = append(ids, el.ID())
			}
			So(ids, ShouldResemble, []string{"menu", "cta", "docs", "card-smooth", "card-stretch", "card-magnet"})
		})

		Convey("Each hoverable finds its bounds in page coordinates", func() {
			cta, ok := doc.ElementByID("cta")
			So(ok, ShouldBeTrue)
			b, ok := doc.QueryBounds(cta)
			So(ok, ShouldBeTrue)
			So(b.ID(), ShouldEqual, "cta-bounds")
			So(b.Rect(), ShouldResemble, gamemath.Rect{X: 104, Y: 344, W: 232, H: 96})
		})

		Convey("Bounds follow their owner", func() {
			cta, _ := doc.ElementByID("cta")
			b, _ := doc.QueryBounds(cta)
			cta.MoveTo(gamemath.Pt(200, 400))
			So(b.Rect(), ShouldResemble, gamemath.Rect{X: 184, Y: 384, W: 232, H: 96})
		})

		Convey("Elements without bounds report none", func() {
			headline, ok := doc.ElementByID("headline")
			So(ok, ShouldBeTrue)
			_, ok = doc.QueryBounds(headline)
			So(ok, ShouldBeFalse)
		})

		Convey("The element is its own parallax sink", func() {
			cta, _ := doc.ElementByID("cta")
			sink := ParallaxSinkFor(cta)
			sink.SetOffset(gamemath.Pt(3, -2))
			So(components.Element.Get(cta.Entry()).Offset, ShouldResemble, gamemath.Pt(3, -2))
			sink.ClearOffset()
			So(components.Element.Get(cta.Entry()).Offset, ShouldResemble, gamemath.Point{})
		})
	})
}

func TestSpaceHitTester(t *testing.T) {
	Convey("Given the landing page world", t, func() {
		e := newLandingPage()
		hit := NewSpaceHitTester(e.World)

		Convey("A point inside a bounds area hits it", func() {
			el, ok := hit.HitTest(220, 392)
			So(ok, ShouldBeTrue)
			So(el.ID(), ShouldEqual, "cta-bounds")
		})

		Convey("Bounds are larger than their element", func() {
			el, ok := hit.HitTest(110, 350)
			So(ok, ShouldBeTrue)
			So(el.ID(), ShouldEqual, "cta-bounds")
		})

		Convey("Empty space misses", func() {
			_, ok := hit.HitTest(640, 150)
			So(ok, ShouldBeFalse)
			_, ok = hit.HitTest(-5, -5)
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Overlapping bounds resolve to the later element", t, func() {
		e := ecs.NewECS(donburi.NewWorld())
		_, err := factory.CreatePage(e, &pagedata.Page{
			Width: 200, Height: 200,
			Elements: []pagedata.Element{
				{Name: "under", Kind: "card", X: 0, Y: 0, W: 100, H: 100, Hoverable: true},
				{Name: "over", Kind: "button", X: 50, Y: 50, W: 100, H: 100, Hoverable: true},
			},
			Bounds: []pagedata.Bounds{
				{Name: "under-bounds", Of: "under", X: 0, Y: 0, W: 100, H: 100},
				{Name: "over-bounds", Of: "over", X: 50, Y: 50, W: 100, H: 100},
			},
		})
		So(err, ShouldBeNil)

		el, ok := NewSpaceHitTester(e.World).HitTest(75, 75)
		So(ok, ShouldBeTrue)
		So(el.ID(), ShouldEqual, "over-bounds")
	})
}

func TestResizePage(t *testing.T) {
	Convey("Given the landing page laid out at 1280x720", t, func() {
		e := newLandingPage()
		So(elementRect(e, "header").W, ShouldEqual, 1200)
		So(elementRect(e, "menu"), ShouldResemble, gamemath.Rect{X: 1176, Y: 28, W: 48, H: 48})

		Convey("Widening the window stretches the header and re-pins the menu", func() {
			ResizePage(e, 1600, 900)
			So(elementRect(e, "header").W, ShouldEqual, 1520)
			So(elementRect(e, "menu"), ShouldResemble, gamemath.Rect{X: 1496, Y: 28, W: 48, H: 48})

			Convey("and the menu's hit area moves with it", func() {
				hit := NewSpaceHitTester(e.World)
				el, ok := hit.HitTest(1520, 52)
				So(ok, ShouldBeTrue)
				So(el.ID(), ShouldEqual, "menu-bounds")

				_, ok = hit.HitTest(1180, 30)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("The same size twice is not a resize", func() {
			pageEntry, _ := components.Page.First(e.World)
			l := components.Page.Get(pageEntry).Layout
			before := l.Resizes()
			ResizePage(e, 1280, 720)
			So(l.Resizes(), ShouldEqual, before)
		})
	})
}

func TestCreateCursor(t *testing.T) {
	Convey("Given a cursor over the landing page", t, func() {
		e := newLandingPage()
		rec := metrics.NewRecorder()
		entry, err := CreateCursor(e, rec)
		So(err, ShouldBeNil)
		c := components.Cursor.Get(entry)
		So(c.Tracker.Hoverables(), ShouldHaveLength, 6)

		Convey("Pointing at the call to action attracts the follower", func() {
			c.Tracker.Dispatch(220, 392)
			state := c.Controller.State()
			So(state.Mode, ShouldEqual, cursor.Attracted)
			So(state.HoverTarget.ID(), ShouldEqual, "cta-bounds")
			So(state.Position.Target, ShouldResemble, gamemath.Pt(220, 392))
			So(state.Scale.Target, ShouldEqual, cfg.Cursor.HoverScale)
			So(hoveredElementID(e), ShouldEqual, "cta")

			Convey("moving inside shifts the element by the parallax strength", func() {
				c.Tracker.Dispatch(240, 392)
				cta, _ := NewDocument(e.World).ElementByID("cta")
				So(components.Element.Get(cta.Entry()).Offset.X, ShouldAlmostEqual, 20*cfg.Parallax.Strength, 1e-9)

				bounds, ok := NewDocument(e.World).QueryBounds(cta)
				So(ok, ShouldBeTrue)
				So(bounds.Rect().X, ShouldAlmostEqual, 104+20*cfg.Parallax.Strength, 1e-9)

				// right edge of the shifted bounds, outside the resting ones
				hit := NewSpaceHitTester(e.World)
				_, ok = hit.HitTest(338, 392)
				So(ok, ShouldBeFalse)
				SyncBounds(e.World)
				el, ok := hit.HitTest(338, 392)
				So(ok, ShouldBeTrue)
				So(el.ID(), ShouldEqual, "cta-bounds")
			})

			Convey("and leaving eases the element back to rest", func() {
				c.Tracker.Dispatch(240, 392)
				c.Tracker.Dispatch(20, 150)
				So(c.Controller.Mode(), ShouldEqual, cursor.Free)

				for i := 0; i < int(cfg.Parallax.ReturnDuration/tick)+5; i++ {
					c.Controller.OnFrame(tick)
					c.Tracker.Tick(tick)
				}
				cta, _ := NewDocument(e.World).ElementByID("cta")
				So(components.Element.Get(cta.Entry()).Offset, ShouldResemble, gamemath.Point{})
			})

			Convey("frames reach the sink and the counters", func() {
				c.Controller.OnFrame(tick)
				So(c.Visible, ShouldBeTrue)
				So(rec.Snapshot().FramesRendered, ShouldEqual, 1)
				So(rec.Snapshot().HoverEnters, ShouldEqual, 1)
			})
		})
	})

	Convey("A hoverable without bounds is skipped and counted", t, func() {
		e := ecs.NewECS(donburi.NewWorld())
		_, err := factory.CreatePage(e, &pagedata.Page{
			Elements: []pagedata.Element{
				{Name: "cta", Kind: "button", X: 0, Y: 0, W: 100, H: 40, Hoverable: true},
				{Name: "footer-link", Kind: "link", X: 0, Y: 100, W: 100, H: 20, Hoverable: true},
			},
			Bounds: []pagedata.Bounds{
				{Name: "cta-bounds", Of: "cta", X: 0, Y: 0, W: 100, H: 40},
			},
		})
		So(err, ShouldBeNil)

		rec := metrics.NewRecorder()
		entry, err := CreateCursor(e, rec)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "footer-link")
		So(components.Cursor.Get(entry).Tracker.Hoverables(), ShouldHaveLength, 1)
		So(rec.Snapshot().RegistrationFailures, ShouldEqual, 1)
	})
}

func TestAdvanceIntro(t *testing.T) {
	Convey("Given an intro waiting on its delay", t, func() {
		old := cfg.Intro
		defer func() { cfg.Intro = old }()
		cfg.Intro.Ease = "linear"
		cfg.Intro.Duration = 1
		cfg.Intro.Rise = 20
		cfg.Intro.Delay = 0.5
		cfg.Intro.Stagger = 0.25

		e := ecs.NewECS(donburi.NewWorld())
		entry := factory.CreateElement(e, pagedata.Element{Name: "a", Kind: "text", W: 10, H: 10}, 2)
		StartIntro(e)
		intro := components.Intro.Get(entry)

		So(intro.Alpha, ShouldEqual, 0)
		So(intro.Delay, ShouldAlmostEqual, 1.0, 1e-9)

		Convey("It holds still until the delay runs out", func() {
			advanceIntro(intro, 0.9)
			So(intro.Alpha, ShouldEqual, 0)
			So(intro.Rise, ShouldEqual, 20)
		})

		Convey("The rest of the tick after the delay drives the fade", func() {
			advanceIntro(intro, 0.9)
			advanceIntro(intro, 0.35)
			So(intro.Delay, ShouldEqual, 0)
			So(intro.Alpha, ShouldAlmostEqual, 0.25, 1e-4)
			So(intro.Rise, ShouldAlmostEqual, 15, 1e-3)
		})

		Convey("It ends fully visible in place", func() {
			advanceIntro(intro, 1.0)
			advanceIntro(intro, 2.0)
			So(intro.Transition, ShouldBeNil)
			So(intro.Alpha, ShouldEqual, 1)
			So(intro.Rise, ShouldEqual, 0)
		})
	})
}

func TestFade(t *testing.T) {
	Convey("fade premultiplies by alpha", t, func() {
		c := fade(cfg.White, 0.5)
		So(c.A, ShouldEqual, 127)
		So(c.R, ShouldEqual, 127)
		So(fade(cfg.White, 2), ShouldResemble, cfg.White)
		So(fade(cfg.White, 0).A, ShouldEqual, 0)
	})
}
