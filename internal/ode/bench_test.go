package ode

import "testing"

func BenchmarkSolver1(b *testing.B) {
	const n = 1000
	t := Grid(0, 1, n)
	h := StepSize(t)
	f := func(_, y float64) float64 { return -y }

	for _, m := range []Method{ForwardEuler, Kutta3, Classic4} {
		s := NewSolver1(m)
		b.Run(m.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := s.Solve(f, h, n, t, 1); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSolver2(b *testing.B) {
	const n = 1000
	t := Grid(0, 10, n)
	h := StepSize(t)
	prey := func(_, x, y float64) float64 { return x - 0.1*x*y }
	pred := func(_, x, y float64) float64 { return -y + 0.05*x*y }

	for _, c := range []Coupling{Staggered, Simultaneous} {
		s := NewSolver2(Classic4, WithCoupling(c))
		b.Run(c.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, _, err := s.Solve(prey, pred, h, n, t, 20, 5); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSolverN(b *testing.B) {
	const n = 1000
	t := Grid(0, 10, n)
	h := StepSize(t)
	fs := []FuncN{
		func(_ float64, y []float64) float64 { return -0.3 * y[0] * y[1] },
		func(_ float64, y []float64) float64 { return 0.3*y[0]*y[1] - 0.1*y[1] },
		func(_ float64, y []float64) float64 { return 0.1 * y[1] },
	}
	s := NewSolverN(Classic4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Solve(fs, h, n, t, []float64{0.99, 0.01, 0}); err != nil {
			b.Fatal(err)
		}
	}
}
