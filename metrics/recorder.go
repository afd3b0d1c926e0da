// Package metrics counts cursor and registration events on a private
// Prometheus registry. The debug HUD reads the counters back.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const (
	defaultNamespace = "cursorfx"
	defaultSubsystem = "cursor"
)

// Recorder implements cursor.Observer.
type Recorder struct {
	namespace string
	subsystem string
	registry  *prometheus.Registry

	framesRendered       prometheus.Counter
	framesSkipped        prometheus.Counter
	hoverEnters          *prometheus.CounterVec
	registrationFailures *prometheus.CounterVec
}

// Option configures a Recorder.
type Option func(*Recorder)

func WithNamespace(namespace string) Option {
	return func(r *Recorder) {
		if namespace != "" {
			r.namespace = namespace
		}
	}
}

func WithSubsystem(subsystem string) Option {
	return func(r *Recorder) {
		if subsystem != "" {
			r.subsystem = subsystem
		}
	}
}

// WithRegistry registers the counters on registry instead of a fresh one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(r *Recorder) {
		if registry != nil {
			r.registry = registry
		}
	}
}

func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		namespace: defaultNamespace,
		subsystem: defaultSubsystem,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = prometheus.NewRegistry()
	}

	auto := promauto.With(r.registry)
	r.framesRendered = auto.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "frames_rendered_total",
		Help:      "Frames whose transform reached the render sink",
	})
	r.framesSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "frames_skipped_total",
		Help:      "Frames dropped after a non-finite update",
	})
	r.hoverEnters = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "hover_enters_total",
		Help:      "Hover enters by bounds element",
	}, []string{"element"})
	r.registrationFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "registration_failures_total",
		Help:      "Hoverables that could not be registered",
	}, []string{"element"})
	return r
}

func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

func (r *Recorder) FrameRendered() { r.framesRendered.Inc() }
func (r *Recorder) FrameSkipped()  { r.framesSkipped.Inc() }

func (r *Recorder) HoverEntered(id string) {
	r.hoverEnters.WithLabelValues(id).Inc()
}

func (r *Recorder) RegistrationFailed(id string) {
	r.registrationFailures.WithLabelValues(id).Inc()
}

// Snapshot is a point-in-time read of every counter.
type Snapshot struct {
	FramesRendered       float64
	FramesSkipped        float64
	HoverEnters          float64
	RegistrationFailures float64
}

// Snapshot gathers the registry and sums labelled series.
func (r *Recorder) Snapshot() Snapshot {
	var s Snapshot
	families, err := r.registry.Gather()
	if err != nil {
		return s
	}
	prefix := r.namespace + "_" + r.subsystem + "_"
	for _, mf := range families {
		total := sumCounters(mf)
		switch mf.GetName() {
		case prefix + "frames_rendered_total":
			s.FramesRendered = total
		case prefix + "frames_skipped_total":
			s.FramesSkipped = total
		case prefix + "hover_enters_total":
			s.HoverEnters = total
		case prefix + "registration_failures_total":
			s.RegistrationFailures = total
		}
	}
	return s
}

func sumCounters(mf *dto.MetricFamily) float64 {
	if mf.GetType() != dto.MetricType_COUNTER {
		return 0
	}
	var total float64
	for _, m := range mf.GetMetric() {
		total += m.GetCounter().GetValue()
	}
	return total
}
