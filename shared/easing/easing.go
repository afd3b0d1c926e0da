// Package easing names the tween curves used by the page effects and wraps
// gween so they can be driven by elapsed time.
package easing

import (
	"errors"
	"fmt"

	"github.com/tanema/gween/ease"
)

// ErrUnknownEase is returned by Lookup for a name with no registered curve.
var ErrUnknownEase = errors.New("unknown ease")

// Func maps linear progress in [0, 1] to eased progress. Most curves start
// at 0 and end at 1; elastic and back curves overshoot in between.
type Func func(t float64) float64

// Curve names, following the usual "family.direction" convention.
const (
	Linear     = "linear"
	Power1Out  = "power1.out"
	Power2Out  = "power2.out"
	Power3Out  = "power3.out"
	Power4Out  = "power4.out"
	ElasticOut = "elastic.out"
	BackOut    = "back.out"
	SineInOut  = "sine.inout"
)

var curves = map[string]ease.TweenFunc{
	Linear:     ease.Linear,
	Power1Out:  ease.OutQuad,
	Power2Out:  ease.OutCubic,
	Power3Out:  ease.OutQuart,
	Power4Out:  ease.OutQuint,
	ElasticOut: ease.OutElastic,
	BackOut:    ease.OutBack,
	SineInOut:  ease.InOutSine,
}

// Lookup returns the curve registered under name.
func Lookup(name string) (Func, error) {
	fn, err := lookupTween(name)
	if err != nil {
		return nil, err
	}
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}, nil
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Func {
	fn, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return fn
}

// Names lists every registered curve name.
func Names() []string {
	names := make([]string, 0, len(curves))
	for n := range curves {
		names = append(names, n)
	}
	return names
}

func lookupTween(name string) (ease.TweenFunc, error) {
	fn, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	return fn, nil
}
