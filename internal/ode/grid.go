package ode

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// gridTolerance is the relative slack allowed between t[1]-t[0] and h.
const gridTolerance = 1e-9

// Grid returns nSteps+1 evenly spaced times from t0 to tn inclusive.
func Grid(t0, tn float64, nSteps int) []float64 {
	if nSteps < 0 {
		return nil
	}
	t := make([]float64, nSteps+1)
	if nSteps == 0 {
		t[0] = t0
		return t
	}
	return floats.Span(t, t0, tn)
}

// Uniform returns nSteps+1 times t0, t0+h, t0+2h, ...
func Uniform(t0, h float64, nSteps int) []float64 {
	if nSteps < 0 {
		return nil
	}
	t := make([]float64, nSteps+1)
	for i := range t {
		t[i] = t0 + h*float64(i)
	}
	return t
}

// StepSize returns the spacing implied by the first two grid entries,
// or 0 for grids shorter than two.
func StepSize(t []float64) float64 {
	if len(t) < 2 {
		return 0
	}
	return t[1] - t[0]
}

// Finite reports whether every value of the trajectory is finite.
func Finite(y []float64) bool {
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func validate(h float64, nSteps int, t []float64) error {
	switch {
	case math.IsNaN(h) || math.IsInf(h, 0) || h <= 0:
		return &ConfigError{Field: "h", Value: h, Wrapped: ErrStepSize}
	case nSteps < 0:
		return &ConfigError{Field: "nSteps", Value: float64(nSteps), Wrapped: ErrStepCount}
	case len(t) != nSteps+1:
		return &ConfigError{Field: "len(t)", Value: float64(len(t)), Wrapped: ErrGridLength}
	}
	if nSteps > 0 {
		if d := t[1] - t[0]; math.Abs(d-h) > gridTolerance*h {
			return &ConfigError{Field: "t[1]-t[0]", Value: d, Wrapped: ErrGridSpacing}
		}
	}
	return nil
}
