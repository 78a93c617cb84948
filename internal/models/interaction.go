package models

import "github.com/san-kum/odelab/internal/ode"

func NewLotkaVolterra() Model {
	return &pair{
		base: base{
			name: "lotka_volterra", title: "Predator Prey - Lotka Volterra",
			labels: []string{"preys", "predator"}, dim: 2,
			setup:  Setup{Tn: 1, Steps: 10000, Init: []float64{2000, 100}},
			params: Params{"alpha1": 15, "beta1": 0.1, "alpha2": 10, "beta2": 0.01},
		},
		rhs: func(p Params) (ode.Func2, ode.Func2) {
			a1, b1, a2, b2 := p["alpha1"], p["beta1"], p["alpha2"], p["beta2"]
			return func(_, n, q float64) float64 { return a1*n - b1*n*q },
				func(_, n, q float64) float64 { return -a2*q + b2*n*q }
		},
	}
}

func NewLogisticPredatorPrey() Model {
	return &pair{
		base: base{
			name: "logistic_predator_prey", title: "Logistic Predator Prey",
			labels: []string{"preys", "predator"}, dim: 2,
			setup:  Setup{Tn: 1, Steps: 10000, Init: []float64{2000, 100}},
			params: Params{"alpha1": 15, "beta": 0.1, "alpha2": 10, "gamma": 0.01, "k": 200},
		},
		rhs: func(p Params) (ode.Func2, ode.Func2) {
			a1, beta, a2, gamma, k := p["alpha1"], p["beta"], p["alpha2"], p["gamma"], p["k"]
			return func(_, n, q float64) float64 { return a1 * n * (1 - n/k - beta*q) },
				func(_, n, q float64) float64 { return -a2 * q * (1 - gamma*n) }
		},
	}
}

func NewCompetition() Model {
	return &pair{
		base: base{
			name: "competition", title: "Competition Model",
			labels: []string{"n", "p"}, dim: 2,
			setup:  Setup{Tn: 1, Steps: 10000, Init: []float64{2000, 100}},
			params: Params{"alpha1": 15, "beta1": 0.1, "k1": 500, "alpha2": 10, "beta2": 0.01, "k2": 600},
		},
		rhs: func(p Params) (ode.Func2, ode.Func2) {
			a1, b1, k1 := p["alpha1"], p["beta1"], p["k1"]
			a2, b2, k2 := p["alpha2"], p["beta2"], p["k2"]
			return func(_, n, q float64) float64 { return a1 * n * (1 - (n+b1*q)/k1) },
				func(_, n, q float64) float64 { return a2 * q * (1 - (q+b2*n)/k2) }
		},
	}
}

// NewAnotherCompetition lets both species share one per-capita growth
// rate that falls with the weighted total population.
func NewAnotherCompetition() Model {
	return &pair{
		base: base{
			name: "another_competition", title: "Competition Model (shared resource)",
			labels: []string{"n", "p"}, dim: 2,
			setup:  Setup{Tn: 1, Steps: 10000, Init: []float64{2000, 100}},
			params: Params{"alpha": 15, "gamma": 500, "beta1": 0.1, "beta2": 0.01},
		},
		rhs: func(p Params) (ode.Func2, ode.Func2) {
			alpha, gamma, b1, b2 := p["alpha"], p["gamma"], p["beta1"], p["beta2"]
			rate := func(n, q float64) float64 { return alpha - gamma*(b1*n+b2*q) }
			return func(_, n, q float64) float64 { return rate(n, q) * n },
				func(_, n, q float64) float64 { return rate(n, q) * q }
		},
	}
}

func NewMutualism1() Model {
	return &pair{
		base: base{
			name: "mutualism1", title: "Mutualism 1",
			labels: []string{"n", "p"}, dim: 2,
			setup:  Setup{Tn: 1, Steps: 10000, Init: []float64{2000, 100}},
			params: Params{"alpha1": 15, "beta1": 0.1, "alpha2": 10, "beta2": 0.01},
		},
		rhs: func(p Params) (ode.Func2, ode.Func2) {
			a1, b1, a2, b2 := p["alpha1"], p["beta1"], p["alpha2"], p["beta2"]
			return func(_, n, q float64) float64 { return a1 * n * (1 + b1*q) },
				func(_, n, q float64) float64 { return a2 * q * (1 + b2*n) }
		},
	}
}

func NewMutualism2() Model {
	return &pair{
		base: base{
			name: "mutualism2", title: "Mutualism 2",
			labels: []string{"n", "p"}, dim: 2,
			setup:  Setup{Tn: 1, Steps: 10000, Init: []float64{2000, 100}},
			params: Params{"alpha1": 15, "beta1": 0.1, "k1": 300, "alpha2": 10, "beta2": 0.01, "k2": 400},
		},
		rhs: func(p Params) (ode.Func2, ode.Func2) {
			a1, b1, k1 := p["alpha1"], p["beta1"], p["k1"]
			a2, b2, k2 := p["alpha2"], p["beta2"], p["k2"]
			return func(_, n, q float64) float64 { return a1 * n * (1 - (n-b1*q)/k1) },
				func(_, n, q float64) float64 { return a2 * q * (1 - (q-b2*n)/k2) }
		},
	}
}

// NewPestControl1 releases sterile insects that die off at rate b.
func NewPestControl1() Model {
	return &pair{
		base: base{
			name: "pest_control1", title: "Insect Pest Control",
			labels: []string{"pest", "insect"}, dim: 2,
			setup:  Setup{Tn: 1.6, Steps: 10000, Init: []float64{2, 0.2}},
			params: Params{"a": 1, "b": 2, "k": 10},
		},
		rhs: func(p Params) (ode.Func2, ode.Func2) {
			a, b, k := p["a"], p["b"], p["k"]
			return pestGrowth(a, b, k),
				func(_, _, n float64) float64 { return -b * n }
		},
	}
}

// NewPestControl2 releases sterile insects in proportion to the pest.
func NewPestControl2() Model {
	return &pair{
		base: base{
			name: "pest_control2", title: "Insect Pest Control (proportional release)",
			labels: []string{"pest", "insect"}, dim: 2,
			setup:  Setup{Tn: 1.6, Steps: 10000, Init: []float64{2, 0.2}},
			params: Params{"a": 1, "b": 2, "gamma": 3, "k": 10},
		},
		rhs: func(p Params) (ode.Func2, ode.Func2) {
			a, b, gamma, k := p["a"], p["b"], p["gamma"], p["k"]
			return pestGrowth(a, b, k),
				func(_, pest, n float64) float64 { return gamma*pest - b*n }
		},
	}
}

func pestGrowth(a, b, k float64) ode.Func2 {
	return func(_, pest, n float64) float64 {
		return (a*pest/(pest+n)-b)*pest - k*pest*(pest+n)
	}
}
