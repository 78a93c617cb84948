package ode_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odelab/internal/ode"
)

func methodEntries() []TableEntry {
	entries := make([]TableEntry, 0, len(ode.Methods()))
	for _, m := range ode.Methods() {
		entries = append(entries, Entry(m.String(), m))
	}
	return entries
}

var _ = Describe("Solver1", func() {
	DescribeTable("keeps a zero field constant",
		func(m ode.Method) {
			t := ode.Grid(0, 1, 1)
			y, err := ode.NewSolver1(m).Solve(func(_, _ float64) float64 { return 0 }, 1, 1, t, 3.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(y).To(Equal([]float64{3.5, 3.5}))
		},
		methodEntries(),
	)

	DescribeTable("is exact on a constant derivative",
		func(m ode.Method) {
			const a, n = 2.5, 40
			t := ode.Grid(0, 2, n)
			y, err := ode.NewSolver1(m).Solve(func(_, _ float64) float64 { return a }, ode.StepSize(t), n, t, -1)
			Expect(err).NotTo(HaveOccurred())
			for i := range y {
				Expect(y[i]).To(BeNumerically("~", -1+a*t[i], 1e-12))
			}
		},
		methodEntries(),
	)

	DescribeTable("returns nSteps+1 samples starting at the initial value",
		func(m ode.Method) {
			for _, n := range []int{0, 1, 7, 100} {
				t := ode.Uniform(0, 0.1, n)
				y, err := ode.NewSolver1(m).Solve(func(_, y float64) float64 { return -y }, 0.1, n, t, 4)
				Expect(err).NotTo(HaveOccurred())
				Expect(y).To(HaveLen(n + 1))
				Expect(y[0]).To(Equal(4.0))
			}
		},
		methodEntries(),
	)

	DescribeTable("produces bit-identical trajectories on repeated calls",
		func(m ode.Method) {
			f := func(t, y float64) float64 { return math.Sin(t) - 0.3*y*y }
			t := ode.Grid(0, 5, 500)
			s := ode.NewSolver1(m)
			first, err := s.Solve(f, ode.StepSize(t), 500, t, 0.2)
			Expect(err).NotTo(HaveOccurred())
			second, err := s.Solve(f, ode.StepSize(t), 500, t, 0.2)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		},
		methodEntries(),
	)

	It("converges to e with the classic fourth-order method", func() {
		t := ode.Grid(0, 1, 1000)
		y, err := ode.NewSolver1(ode.Classic4).Solve(func(_, y float64) float64 { return y }, ode.StepSize(t), 1000, t, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(y[1000]).To(BeNumerically("~", math.E, 1e-6))
	})

	It("is more accurate with rk4 than with forward euler at a fixed step", func() {
		const n = 20
		f := func(_, y float64) float64 { return -2 * y }
		t := ode.Grid(0, 1, n)
		h := ode.StepSize(t)

		euler, err := ode.NewSolver1(ode.ForwardEuler).Solve(f, h, n, t, 1)
		Expect(err).NotTo(HaveOccurred())
		rk4, err := ode.NewSolver1(ode.Classic4).Solve(f, h, n, t, 1)
		Expect(err).NotTo(HaveOccurred())

		exact := math.Exp(-2)
		Expect(math.Abs(rk4[n] - exact)).To(BeNumerically("<", math.Abs(euler[n]-exact)))
	})

	It("reproduces the hand-computed explicit midpoint step", func() {
		f := func(t, y float64) float64 { return t + y }
		y, err := ode.NewSolver1(ode.ExplicitMidpoint).Solve(f, 0.5, 1, []float64{0, 0.5}, 1)
		Expect(err).NotTo(HaveOccurred())
		// k1 = 1, k2 = f(0.25, 1.25) = 1.5
		Expect(y[1]).To(BeNumerically("~", 1.75, 1e-15))
	})

	It("reproduces the hand-computed kutta step", func() {
		f := func(_, y float64) float64 { return y }
		y, err := ode.NewSolver1(ode.Kutta3).Solve(f, 1, 1, []float64{0, 1}, 1)
		Expect(err).NotTo(HaveOccurred())
		// k1 = 1, k2 = 1.5, k3 = 1 - 1 + 3 = 3
		Expect(y[1]).To(BeNumerically("~", 1+(1+4*1.5+3)/6, 1e-15))
	})

	Context("with an invalid configuration", func() {
		f := func(_, y float64) float64 { return y }
		s := ode.NewSolver1(ode.Classic4)

		It("rejects a non-positive step size", func() {
			_, err := s.Solve(f, 0, 1, []float64{0, 0}, 1)
			Expect(err).To(MatchError(ode.ErrStepSize))
			Expect(err).To(MatchError(ode.ErrInvalidConfig))
		})

		It("rejects a NaN step size", func() {
			_, err := s.Solve(f, math.NaN(), 1, []float64{0, 1}, 1)
			Expect(err).To(MatchError(ode.ErrStepSize))
		})

		It("rejects a negative step count", func() {
			_, err := s.Solve(f, 0.1, -1, nil, 1)
			Expect(err).To(MatchError(ode.ErrStepCount))
		})

		It("rejects a grid of the wrong length", func() {
			_, err := s.Solve(f, 0.1, 10, ode.Uniform(0, 0.1, 9), 1)
			Expect(err).To(MatchError(ode.ErrGridLength))
			Expect(err).To(MatchError(ode.ErrInvalidConfig))
		})

		It("rejects a grid inconsistent with the step size", func() {
			_, err := s.Solve(f, 0.1, 10, ode.Uniform(0, 0.2, 10), 1)
			Expect(err).To(MatchError(ode.ErrGridSpacing))
		})

		It("rejects a nil function", func() {
			_, err := s.Solve(nil, 0.1, 1, []float64{0, 0.1}, 1)
			Expect(err).To(MatchError(ode.ErrNilFunc))
		})

		It("rejects a method outside the enumeration", func() {
			_, err := ode.NewSolver1(ode.Method(99)).Solve(f, 0.1, 1, []float64{0, 0.1}, 1)
			Expect(err).To(MatchError(ode.ErrUnknownMethod))
		})
	})
})

var _ = Describe("Solver2", func() {
	zero := func(_, _, _ float64) float64 { return 0 }

	DescribeTable("keeps zero fields constant",
		func(m ode.Method) {
			for _, n := range []int{0, 1, 25} {
				t := ode.Uniform(0, 0.05, n)
				y1, y2, err := ode.NewSolver2(m).Solve(zero, zero, 0.05, n, t, 7, -2)
				Expect(err).NotTo(HaveOccurred())
				Expect(y1).To(HaveLen(n + 1))
				Expect(y2).To(HaveLen(n + 1))
				for i := range y1 {
					Expect(y1[i]).To(Equal(7.0))
					Expect(y2[i]).To(Equal(-2.0))
				}
			}
		},
		methodEntries(),
	)

	It("advances y2 from the already updated y1 with forward euler", func() {
		const n = 10
		t := ode.Grid(0, 1, n)
		h := ode.StepSize(t)
		one := func(_, _, _ float64) float64 { return 1 }
		fromY1 := func(_, y1, _ float64) float64 { return y1 }

		y1, y2, err := ode.NewSolver2(ode.ForwardEuler).Solve(one, fromY1, h, n, t, 0, 0)
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < n; i++ {
			Expect(y2[i+1]).To(Equal(y2[i] + h*y1[i+1]))
		}
	})

	DescribeTable("holds y1[i+1] constant across the stages of y2",
		func(m ode.Method) {
			const n = 8
			t := ode.Grid(0, 2, n)
			h := ode.StepSize(t)
			one := func(_, _, _ float64) float64 { return 1 }
			fromY1 := func(_, y1, _ float64) float64 { return y1 }

			y1, y2, err := ode.NewSolver2(m).Solve(one, fromY1, h, n, t, 0, 0)
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < n; i++ {
				Expect(y2[i+1]).To(BeNumerically("~", y2[i]+h*y1[i+1], 1e-12))
			}
		},
		methodEntries(),
	)

	It("uses the step-start y1 when coupling simultaneously", func() {
		const n = 10
		t := ode.Grid(0, 1, n)
		h := ode.StepSize(t)
		one := func(_, _, _ float64) float64 { return 1 }
		fromY1 := func(_, y1, _ float64) float64 { return y1 }

		s := ode.NewSolver2(ode.ForwardEuler, ode.WithCoupling(ode.Simultaneous))
		Expect(s.Coupling()).To(Equal(ode.Simultaneous))
		y1, y2, err := s.Solve(one, fromY1, h, n, t, 0, 0)
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < n; i++ {
			Expect(y2[i+1]).To(Equal(y2[i] + h*y1[i]))
		}
	})

	It("tracks the harmonic oscillator with simultaneous rk4", func() {
		const n = 1000
		t := ode.Grid(0, 2*math.Pi, n)
		x := func(_, _, v float64) float64 { return v }
		v := func(_, x, _ float64) float64 { return -x }

		xs, vs, err := ode.NewSolver2(ode.Classic4, ode.WithCoupling(ode.Simultaneous)).Solve(x, v, ode.StepSize(t), n, t, 1, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(xs[n]).To(BeNumerically("~", 1, 1e-8))
		Expect(vs[n]).To(BeNumerically("~", 0, 1e-8))
	})

	DescribeTable("is idempotent",
		func(m ode.Method) {
			prey := func(_, n, p float64) float64 { return 1.5*n - 0.1*n*p }
			pred := func(_, n, p float64) float64 { return -p + 0.02*n*p }
			t := ode.Grid(0, 3, 300)
			s := ode.NewSolver2(m)
			a1, a2, err := s.Solve(prey, pred, ode.StepSize(t), 300, t, 40, 9)
			Expect(err).NotTo(HaveOccurred())
			b1, b2, err := s.Solve(prey, pred, ode.StepSize(t), 300, t, 40, 9)
			Expect(err).NotTo(HaveOccurred())
			Expect(b1).To(Equal(a1))
			Expect(b2).To(Equal(a2))
		},
		methodEntries(),
	)

	It("rejects a missing second function", func() {
		_, _, err := ode.NewSolver2(ode.Heun2).Solve(zero, nil, 0.1, 1, []float64{0, 0.1}, 0, 0)
		Expect(err).To(MatchError(ode.ErrNilFunc))
	})
})

var _ = Describe("SolverN", func() {
	DescribeTable("matches Solver2 bit for bit on two variables",
		func(m ode.Method, c ode.Coupling) {
			f1 := func(_, a, b float64) float64 { return a*(1-a/50) - 0.05*a*b }
			f2 := func(_, a, b float64) float64 { return 0.01*a*b - 0.4*b }
			t := ode.Grid(0, 4, 400)
			h := ode.StepSize(t)

			y1, y2, err := ode.NewSolver2(m, ode.WithCoupling(c)).Solve(f1, f2, h, 400, t, 30, 4)
			Expect(err).NotTo(HaveOccurred())

			ys, err := ode.NewSolverN(m, ode.WithCoupling(c)).Solve([]ode.FuncN{
				func(t float64, y []float64) float64 { return f1(t, y[0], y[1]) },
				func(t float64, y []float64) float64 { return f2(t, y[0], y[1]) },
			}, h, 400, t, []float64{30, 4})
			Expect(err).NotTo(HaveOccurred())
			Expect(ys[0]).To(Equal(y1))
			Expect(ys[1]).To(Equal(y2))
		},
		Entry("euler staggered", ode.ForwardEuler, ode.Staggered),
		Entry("ralston3 staggered", ode.Ralston3, ode.Staggered),
		Entry("rk38 staggered", ode.ThreeEighths, ode.Staggered),
		Entry("heun2 simultaneous", ode.Heun2, ode.Simultaneous),
		Entry("rk4 simultaneous", ode.Classic4, ode.Simultaneous),
	)

	It("feeds later equations the finalized earlier values", func() {
		const n = 5
		t := ode.Grid(0, 1, n)
		h := ode.StepSize(t)
		ys, err := ode.NewSolverN(ode.ForwardEuler).Solve([]ode.FuncN{
			func(_ float64, _ []float64) float64 { return 1 },
			func(_ float64, y []float64) float64 { return y[0] },
			func(_ float64, y []float64) float64 { return y[1] },
		}, h, n, t, []float64{0, 0, 0})
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < n; i++ {
			Expect(ys[1][i+1]).To(Equal(ys[1][i] + h*ys[0][i+1]))
			Expect(ys[2][i+1]).To(Equal(ys[2][i] + h*ys[1][i+1]))
		}
	})

	It("conserves the population total of an SIR system", func() {
		const n = 2000
		beta, gamma := 0.3, 0.1
		t := ode.Grid(0, 100, n)
		ys, err := ode.NewSolverN(ode.Classic4, ode.WithCoupling(ode.Simultaneous)).Solve([]ode.FuncN{
			func(_ float64, y []float64) float64 { return -beta * y[0] * y[1] },
			func(_ float64, y []float64) float64 { return beta*y[0]*y[1] - gamma*y[1] },
			func(_ float64, y []float64) float64 { return gamma * y[1] },
		}, ode.StepSize(t), n, t, []float64{0.99, 0.01, 0})
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i <= n; i += 100 {
			Expect(ys[0][i] + ys[1][i] + ys[2][i]).To(BeNumerically("~", 1, 1e-9))
		}
	})

	It("rejects mismatched dimensions", func() {
		_, err := ode.NewSolverN(ode.Classic4).Solve([]ode.FuncN{
			func(_ float64, _ []float64) float64 { return 0 },
		}, 0.1, 1, []float64{0, 0.1}, []float64{1, 2})
		Expect(err).To(MatchError(ode.ErrDimension))
		Expect(err).To(MatchError(ode.ErrInvalidConfig))
	})
})
