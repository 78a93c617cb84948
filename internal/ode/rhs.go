package ode

// Func1 is the right-hand side of dy/dt = f(t, y).
type Func1 func(t, y float64) float64

// Func2 is the right-hand side of one equation of a two-variable system.
type Func2 func(t, y1, y2 float64) float64

// FuncN is the right-hand side of one equation of an N-variable system.
// y is only valid for the duration of the call and must not be modified.
type FuncN func(t float64, y []float64) float64

// Clamp1 wraps f so that its derivative is saturated to [lo, hi].
func Clamp1(f Func1, lo, hi float64) Func1 {
	return func(t, y float64) float64 {
		return clamp(f(t, y), lo, hi)
	}
}

// Clamp2 wraps f so that its derivative is saturated to [lo, hi].
func Clamp2(f Func2, lo, hi float64) Func2 {
	return func(t, y1, y2 float64) float64 {
		return clamp(f(t, y1, y2), lo, hi)
	}
}

// ClampN wraps f so that its derivative is saturated to [lo, hi].
func ClampN(f FuncN, lo, hi float64) FuncN {
	return func(t float64, y []float64) float64 {
		return clamp(f(t, y), lo, hi)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}
