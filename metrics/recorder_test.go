package metrics

import (
	"testing"

	"github.com/automoto/cursorfx/cursor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

var _ cursor.Observer = (*Recorder)(nil)

func TestRecorder(t *testing.T) {
	Convey("Given a recorder on its own registry", t, func() {
		r := NewRecorder()

		Convey("Frame counters increase", func() {
			r.FrameRendered()
			r.FrameRendered()
			r.FrameSkipped()
			So(testutil.ToFloat64(r.framesRendered), ShouldEqual, 2)
			So(testutil.ToFloat64(r.framesSkipped), ShouldEqual, 1)
		})

		Convey("Hover enters are labelled by element", func() {
			r.HoverEntered("cta-bounds")
			r.HoverEntered("cta-bounds")
			r.HoverEntered("menu-bounds")
			So(testutil.ToFloat64(r.hoverEnters.WithLabelValues("cta-bounds")), ShouldEqual, 2)
			So(r.Snapshot().HoverEnters, ShouldEqual, 3)
		})

		Convey("Snapshot reads every counter", func() {
			r.FrameRendered()
			r.RegistrationFailed("footer-link")
			s := r.Snapshot()
			So(s.FramesRendered, ShouldEqual, 1)
			So(s.FramesSkipped, ShouldEqual, 0)
			So(s.RegistrationFailures, ShouldEqual, 1)
		})
	})

	Convey("Options rename the series", t, func() {
		reg := prometheus.NewRegistry()
		r := NewRecorder(WithRegistry(reg), WithNamespace("demo"), WithSubsystem("page"))
		r.FrameRendered()
		So(r.Registry(), ShouldEqual, reg)
		n, err := testutil.GatherAndCount(reg, "demo_page_frames_rendered_total")
		So(err, ShouldBeNil)
		So(n, ShouldEqual, 1)
		So(r.Snapshot().FramesRendered, ShouldEqual, 1)
	})
}
