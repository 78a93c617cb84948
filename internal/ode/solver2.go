package ode

// Solver2 integrates the coupled pair
//
//	dy1/dt = f1(t, y1, y2)
//	dy2/dt = f2(t, y1, y2)
type Solver2 struct {
	method   Method
	coupling Coupling
}

func NewSolver2(m Method, opts ...Option) Solver2 {
	o := buildOptions(opts)
	return Solver2{method: m, coupling: o.coupling}
}

func (s Solver2) Method() Method     { return s.method }
func (s Solver2) Coupling() Coupling { return s.coupling }

// Solve returns both trajectories on the grid t. With Staggered coupling
// every stage of y1 sees y2[i], and every stage of y2 sees the finalized
// y1[i+1].
func (s Solver2) Solve(f1, f2 Func2, h float64, nSteps int, t []float64, y10, y20 float64) ([]float64, []float64, error) {
	tb, err := s.method.tableau()
	if err != nil {
		return nil, nil, err
	}
	if f1 == nil {
		return nil, nil, &ConfigError{Field: "f1", Wrapped: ErrNilFunc}
	}
	if f2 == nil {
		return nil, nil, &ConfigError{Field: "f2", Wrapped: ErrNilFunc}
	}
	if err := validate(h, nSteps, t); err != nil {
		return nil, nil, err
	}

	y1 := make([]float64, nSteps+1)
	y2 := make([]float64, nSteps+1)
	y1[0], y2[0] = y10, y20

	if s.coupling == Simultaneous {
		for i := 0; i < nSteps; i++ {
			y1[i+1], y2[i+1] = tb.advance2(f1, f2, t[i], y1[i], y2[i], h)
		}
		return y1, y2, nil
	}

	for i := 0; i < nSteps; i++ {
		frozen := y2[i]
		y1[i+1] = tb.advance(func(tt, v float64) float64 { return f1(tt, v, frozen) }, t[i], y1[i], h)
		next := y1[i+1]
		y2[i+1] = tb.advance(func(tt, v float64) float64 { return f2(tt, next, v) }, t[i], y2[i], h)
	}
	return y1, y2, nil
}

func (tb *Tableau) advance2(f1, f2 Func2, t, y1, y2, h float64) (float64, float64) {
	var k, l stages
	for s := 0; s < tb.Stages; s++ {
		ts := t + tb.C[s]*h
		u1 := y1 + tb.increment(s, &k, h)
		u2 := y2 + tb.increment(s, &l, h)
		k[s] = f1(ts, u1, u2)
		l[s] = f2(ts, u1, u2)
	}
	return y1 + h*tb.combine(&k), y2 + h*tb.combine(&l)
}
