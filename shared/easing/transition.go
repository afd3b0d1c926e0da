package easing

import (
	"github.com/tanema/gween"
)

// Transition tweens a fixed set of channels from one value set to another
// over a duration in seconds. Every channel shares the same curve and clock.
type Transition struct {
	tweens []*gween.Tween
	values []float64
	done   bool
}

// NewTransition starts a transition from -> to. Both slices must have the
// same length. A non-positive duration finishes immediately.
func NewTransition(from, to []float64, duration float64, name string) (*Transition, error) {
	fn, err := lookupTween(name)
	if err != nil {
		return nil, err
	}
	if len(from) != len(to) {
		panic("easing: transition channel count mismatch")
	}

	t := &Transition{values: append([]float64(nil), from...)}
	if duration <= 0 {
		copy(t.values, to)
		t.done = true
		return t, nil
	}

	t.tweens = make([]*gween.Tween, len(from))
	for i := range from {
		t.tweens[i] = gween.New(float32(from[i]), float32(to[i]), float32(duration), fn)
	}
	return t, nil
}

// Update advances the transition by dt seconds and returns the channel
// values and whether the transition has reached its end.
func (t *Transition) Update(dt float64) ([]float64, bool) {
	if t.done {
		return t.values, true
	}
	done := true
	for i, tw := range t.tweens {
		v, finished := tw.Update(float32(dt))
		t.values[i] = float64(v)
		done = done && finished
	}
	t.done = done
	return t.values, done
}

func (t *Transition) Values() []float64 {
	return t.values
}

func (t *Transition) Done() bool {
	return t.done
}
