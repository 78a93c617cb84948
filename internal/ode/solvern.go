package ode

// SolverN integrates N coupled scalar equations dy_j/dt = fs[j](t, y).
type SolverN struct {
	method   Method
	coupling Coupling
}

func NewSolverN(m Method, opts ...Option) SolverN {
	o := buildOptions(opts)
	return SolverN{method: m, coupling: o.coupling}
}

func (s SolverN) Method() Method     { return s.method }
func (s SolverN) Coupling() Coupling { return s.coupling }

// Solve returns one trajectory per equation, each of length nSteps+1.
func (s SolverN) Solve(fs []FuncN, h float64, nSteps int, t []float64, y0 []float64) ([][]float64, error) {
	tb, err := s.method.tableau()
	if err != nil {
		return nil, err
	}
	if len(fs) == 0 || len(fs) != len(y0) {
		return nil, &ConfigError{Field: "len(y0)", Value: float64(len(y0)), Wrapped: ErrDimension}
	}
	for _, f := range fs {
		if f == nil {
			return nil, &ConfigError{Field: "fs", Wrapped: ErrNilFunc}
		}
	}
	if err := validate(h, nSteps, t); err != nil {
		return nil, err
	}

	n := len(fs)
	ys := make([][]float64, n)
	for j := range ys {
		ys[j] = make([]float64, nSteps+1)
		ys[j][0] = y0[j]
	}

	cur := make([]float64, n)
	if s.coupling == Simultaneous {
		ks := make([]stages, n)
		for i := 0; i < nSteps; i++ {
			tb.advanceN(fs, ys, i, t[i], h, cur, ks)
		}
		return ys, nil
	}

	for i := 0; i < nSteps; i++ {
		for j := range cur {
			cur[j] = ys[j][i]
		}
		for j, f := range fs {
			next := tb.advance(func(tt, v float64) float64 {
				cur[j] = v
				return f(tt, cur)
			}, t[i], ys[j][i], h)
			cur[j] = next
			ys[j][i+1] = next
		}
	}
	return ys, nil
}

// advanceN writes step i+1 of every trajectory using shared stage states.
func (tb *Tableau) advanceN(fs []FuncN, ys [][]float64, i int, t, h float64, u []float64, ks []stages) {
	for s := 0; s < tb.Stages; s++ {
		ts := t + tb.C[s]*h
		for j := range u {
			u[j] = ys[j][i] + tb.increment(s, &ks[j], h)
		}
		for j, f := range fs {
			ks[j][s] = f(ts, u)
		}
	}
	for j := range ys {
		ys[j][i+1] = ys[j][i] + h*tb.combine(&ks[j])
	}
}
