package models

import "github.com/san-kum/odelab/internal/ode"

func NewRabiesPest1() Model {
	return &pair{
		base: base{
			name: "rabies_pest1", title: "Rabies Pest 1",
			labels: []string{"susceptible", "infective"}, dim: 2,
			setup:  Setup{Tn: 1, Steps: 10000, Init: []float64{100, 10}},
			params: Params{"r": 0.1, "beta": 0.1, "u": 10, "k": 100},
		},
		rhs: func(p Params) (ode.Func2, ode.Func2) {
			r, beta, u, k := p["r"], p["beta"], p["u"], p["k"]
			return func(_, s, i float64) float64 { return r*(s+i)*(1-s/k) - beta*s*i },
				func(_, s, i float64) float64 { return beta*s*i - u*i }
		},
	}
}

// NewRabiesPest2 adds culling at rate c to both classes.
func NewRabiesPest2() Model {
	return &pair{
		base: base{
			name: "rabies_pest2", title: "Rabies Pest 2 (culling)",
			labels: []string{"susceptible", "infective"}, dim: 2,
			setup:  Setup{Tn: 1, Steps: 10000, Init: []float64{100, 10}},
			params: Params{"r": 0.1, "beta": 0.1, "u": 10, "k": 100, "c": 10},
		},
		rhs: func(p Params) (ode.Func2, ode.Func2) {
			r, beta, u, k, c := p["r"], p["beta"], p["u"], p["k"], p["c"]
			return func(_, s, i float64) float64 { return r*(s+i)*(1-s/k) - beta*s*i - c*s },
				func(_, s, i float64) float64 { return beta*s*i - u*i - c*i }
		},
	}
}

// NewRabiesPest3 scales transmission by the unvaccinated fraction 1-v.
func NewRabiesPest3() Model {
	return &pair{
		base: base{
			name: "rabies_pest3", title: "Rabies Pest 3 (vaccination)",
			labels: []string{"susceptible", "infective"}, dim: 2,
			setup:  Setup{Tn: 1, Steps: 10000, Init: []float64{100, 10}},
			params: Params{"r": 0.1, "beta": 0.1, "u": 10, "k": 100, "v": 10},
		},
		rhs: func(p Params) (ode.Func2, ode.Func2) {
			r, beta, u, k, v := p["r"], p["beta"], p["u"], p["k"], p["v"]
			return func(_, s, i float64) float64 { return r*(s+i)*(1-s/k) - beta*(1-v)*s*i },
				func(_, s, i float64) float64 { return beta*(1-v)*s*i - u*i }
		},
	}
}

// NewSEIR1 is the closed SEIR epidemic; S+E+I+R is conserved.
func NewSEIR1() Model {
	return &system{
		base: base{
			name: "seir1", title: "SEIR Sub-Model 1",
			labels: []string{"S", "E", "I", "R"}, dim: 4,
			setup:  Setup{Tn: 1e4, Steps: 100000, Init: []float64{1000, 700, 100, 0}},
			params: Params{"r": 3e-4, "b": 0.9, "a": 0.5},
		},
		rhs: func(p Params) []ode.FuncN {
			return seir(p["r"], p["b"], p["a"], 0)
		},
	}
}

// NewSEIR2 removes recovered individuals at rate c.
func NewSEIR2() Model {
	return &system{
		base: base{
			name: "seir2", title: "SEIR Sub-Model 2 (waning immunity)",
			labels: []string{"S", "E", "I", "R"}, dim: 4,
			setup:  Setup{Tn: 50, Steps: 100000, Init: []float64{1000, 700, 100, 0}},
			params: Params{"r": 3e-4, "b": 0.9, "a": 0.5, "c": 0.01},
		},
		rhs: func(p Params) []ode.FuncN {
			return seir(p["r"], p["b"], p["a"], p["c"])
		},
	}
}

func seir(r, b, a, c float64) []ode.FuncN {
	return []ode.FuncN{
		func(_ float64, y []float64) float64 { return -r * y[0] * y[2] },
		func(_ float64, y []float64) float64 { return r*y[0]*y[2] - b*y[1] },
		func(_ float64, y []float64) float64 { return b*y[1] - a*y[2] },
		func(_ float64, y []float64) float64 { return a*y[2] - c*y[3] },
	}
}
