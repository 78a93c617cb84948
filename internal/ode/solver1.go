package ode

// Solver1 integrates a single scalar equation dy/dt = f(t, y).
type Solver1 struct {
	method Method
}

func NewSolver1(m Method) Solver1 {
	return Solver1{method: m}
}

func (s Solver1) Method() Method { return s.method }

// Solve returns the trajectory y[0..nSteps] on the grid t, with y[0] = y0.
// t must hold nSteps+1 entries spaced by h.
func (s Solver1) Solve(f Func1, h float64, nSteps int, t []float64, y0 float64) ([]float64, error) {
	tb, err := s.method.tableau()
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, &ConfigError{Field: "f", Wrapped: ErrNilFunc}
	}
	if err := validate(h, nSteps, t); err != nil {
		return nil, err
	}

	y := make([]float64, nSteps+1)
	y[0] = y0
	for i := 0; i < nSteps; i++ {
		y[i+1] = tb.advance(f, t[i], y[i], h)
	}
	return y, nil
}
