package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/ode"
	"gonum.org/v1/gonum/stat"
)

// OrderSample is the error of one solve in a refinement study. Order is
// the rate against the previous sample, NaN for the first.
type OrderSample struct {
	Steps int
	H     float64
	Error float64
	Order float64
}

// ObservedOrder solves y' = f(t, y) on [t0, tn] once per step count and
// returns the per-sample errors together with the least-squares slope of
// log(error) against log(h).
func ObservedOrder(m ode.Method, f ode.Func1, exact func(float64) float64, t0, tn, y0 float64, steps []int) ([]OrderSample, float64, error) {
	if len(steps) < 2 {
		return nil, 0, ErrTooFewSamples
	}
	s := ode.NewSolver1(m)
	samples := make([]OrderSample, len(steps))
	logH := make([]float64, len(steps))
	logE := make([]float64, len(steps))

	for i, n := range steps {
		t := ode.Grid(t0, tn, n)
		h := ode.StepSize(t)
		y, err := s.Solve(f, h, n, t, y0)
		if err != nil {
			return nil, 0, fmt.Errorf("%s with %d steps: %w", m, n, err)
		}
		e := MaxError(y, t, exact)
		if e == 0 {
			return nil, 0, fmt.Errorf("%s with %d steps: %w", m, n, ErrExact)
		}
		samples[i] = OrderSample{Steps: n, H: h, Error: e, Order: math.NaN()}
		if i > 0 {
			prev := samples[i-1]
			samples[i].Order = math.Log(prev.Error/e) / math.Log(prev.H/h)
		}
		logH[i], logE[i] = math.Log(h), math.Log(e)
	}

	_, slope := stat.LinearRegression(logH, logE, nil, false)
	return samples, slope, nil
}

// Halvings returns n, 2n, 4n, ... with k entries.
func Halvings(n, k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = n << i
	}
	return out
}
