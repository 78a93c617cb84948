package models

import (
	"fmt"

	"github.com/san-kum/odelab/internal/ode"
)

// scalar is a one-state model. Several right-hand sides may share the
// same initial value, giving one series each.
type scalar struct {
	base
	rhs   func(p Params) []ode.Func1
	exact func(p Params, y0 float64) func(t float64) float64
}

func (m *scalar) Run(method ode.Method, s Setup, _ ...ode.Option) (*Result, error) {
	if err := s.validate(1); err != nil {
		return nil, err
	}
	t := ode.Grid(0, s.Tn, s.Steps)
	solver := ode.NewSolver1(method)

	fs := m.rhs(m.params)
	ys := make([][]float64, len(fs))
	for i, f := range fs {
		if s.Limit > 0 {
			f = ode.Clamp1(f, -s.Limit, s.Limit)
		}
		y, err := solver.Solve(f, ode.StepSize(t), s.Steps, t, s.Init[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.name, err)
		}
		ys[i] = y
	}
	return m.result(method, ode.Staggered, t, ys...), nil
}

// Exact is nil for models without a closed form; see Analytic.
func (m *scalar) Exact(y0 float64) func(t float64) float64 {
	if m.exact == nil {
		return nil
	}
	return m.exact(m.params, y0)
}

// pair is a two-state model integrated with Solver2.
type pair struct {
	base
	rhs func(p Params) (ode.Func2, ode.Func2)
}

func (m *pair) Run(method ode.Method, s Setup, opts ...ode.Option) (*Result, error) {
	if err := s.validate(2); err != nil {
		return nil, err
	}
	t := ode.Grid(0, s.Tn, s.Steps)
	solver := ode.NewSolver2(method, opts...)

	f1, f2 := m.rhs(m.params)
	if s.Limit > 0 {
		f1, f2 = ode.Clamp2(f1, -s.Limit, s.Limit), ode.Clamp2(f2, -s.Limit, s.Limit)
	}
	y1, y2, err := solver.Solve(f1, f2, ode.StepSize(t), s.Steps, t, s.Init[0], s.Init[1])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.name, err)
	}
	return m.result(method, solver.Coupling(), t, y1, y2), nil
}

// system is an N-state model integrated with SolverN.
type system struct {
	base
	rhs func(p Params) []ode.FuncN
}

func (m *system) Run(method ode.Method, s Setup, opts ...ode.Option) (*Result, error) {
	if err := s.validate(m.dim); err != nil {
		return nil, err
	}
	t := ode.Grid(0, s.Tn, s.Steps)
	solver := ode.NewSolverN(method, opts...)

	fs := m.rhs(m.params)
	if s.Limit > 0 {
		for i, f := range fs {
			fs[i] = ode.ClampN(f, -s.Limit, s.Limit)
		}
	}
	ys, err := solver.Solve(fs, ode.StepSize(t), s.Steps, t, s.Init)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.name, err)
	}
	return m.result(method, solver.Coupling(), t, ys...), nil
}
