package models

import (
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// NewBacteriaGrowth models colony growth in a petri dish, dN/dt = r N^(2/3).
func NewBacteriaGrowth() Model {
	return &scalar{
		base: base{
			name: "bacteria_growth", title: "Bacteria Growth in Petri Dish",
			labels: []string{"bacteria"}, dim: 1,
			setup:  Setup{Tn: 1, Steps: 10000, Init: []float64{0.1}},
			params: Params{"r": 1.5},
		},
		rhs: func(p Params) []ode.Func1 {
			r := p["r"]
			return []ode.Func1{func(_, n float64) float64 { return r * math.Pow(n, 2.0/3.0) }}
		},
		exact: func(p Params, n0 float64) func(float64) float64 {
			r := p["r"]
			return func(t float64) float64 { return math.Pow(math.Cbrt(n0)+r*t/3, 3) }
		},
	}
}

func NewGompertz() Model {
	return &scalar{
		base: base{
			name: "gompertz", title: "Gompertz Model",
			labels: []string{"population"}, dim: 1,
			setup:  Setup{Tn: 2, Steps: 10000, Init: []float64{2}},
			params: Params{"alpha": 0.8, "k": 1},
		},
		rhs: func(p Params) []ode.Func1 {
			alpha, k := p["alpha"], p["k"]
			return []ode.Func1{func(_, n float64) float64 { return -alpha * n * math.Log(n/k) }}
		},
		exact: func(p Params, n0 float64) func(float64) float64 {
			alpha, k := p["alpha"], p["k"]
			return func(t float64) float64 { return k * math.Exp(math.Log(n0/k)*math.Exp(-alpha*t)) }
		},
	}
}

// NewDemographic is the Richards generalisation of logistic growth.
func NewDemographic() Model {
	return &scalar{
		base: base{
			name: "demographic", title: "Demographic Model",
			labels: []string{"population"}, dim: 1,
			setup:  Setup{Tn: 10, Steps: 10000, Init: []float64{2}},
			params: Params{"alpha": 0.8, "a": 1.5, "k": 10},
		},
		rhs: func(p Params) []ode.Func1 {
			alpha, a, k := p["alpha"], p["a"], p["k"]
			return []ode.Func1{func(_, n float64) float64 {
				return a * (n / alpha) * (1 - math.Pow(n/k, alpha))
			}}
		},
		exact: func(p Params, n0 float64) func(float64) float64 {
			alpha, a, k := p["alpha"], p["a"], p["k"]
			q := math.Pow(k/n0, alpha) - 1
			return func(t float64) float64 { return k / math.Pow(1+q*math.Exp(-a*t), 1/alpha) }
		},
	}
}

func NewSeasonalCapacity() Model {
	return &scalar{
		base: base{
			name: "seasonal_capacity", title: "Seasonal Capacity Model",
			labels: []string{"population"}, dim: 1,
			setup:  Setup{Tn: 10, Steps: 10000, Init: []float64{2}},
			params: Params{"alpha": 0.8, "beta": 0.5, "gamma": 1.5, "k": 10},
		},
		rhs: func(p Params) []ode.Func1 {
			alpha, beta, gamma, k := p["alpha"], p["beta"], p["gamma"], p["k"]
			return []ode.Func1{func(t, n float64) float64 {
				return alpha * n * (1 - n*(1+beta*math.Cos(gamma*t))/k)
			}}
		},
	}
}

func NewConstantRateHarvesting() Model {
	return &scalar{
		base: base{
			name: "constant_rate_harvesting", title: "Constant Rate Harvesting",
			labels: []string{"population"}, dim: 1,
			setup:  Setup{Tn: 1.6, Steps: 10000, Init: []float64{2}},
			params: Params{"alpha": 1, "h": 2, "k": 10},
		},
		rhs: func(p Params) []ode.Func1 {
			alpha, h, k := p["alpha"], p["h"], p["k"]
			return []ode.Func1{func(_, n float64) float64 { return alpha*n*(1-n/k) - h }}
		},
	}
}

// NewOptimalHarvesting harvests proportionally to the stock, which keeps
// the model logistic with rate alpha-h.
func NewOptimalHarvesting() Model {
	return &scalar{
		base: base{
			name: "optimal_harvesting", title: "Optimal Harvesting",
			labels: []string{"population"}, dim: 1,
			setup:  Setup{Tn: 10, Steps: 10000, Init: []float64{2}},
			params: Params{"alpha": 1, "h": 2, "k": 10},
		},
		rhs: func(p Params) []ode.Func1 {
			alpha, h, k := p["alpha"], p["h"], p["k"]
			return []ode.Func1{func(_, n float64) float64 { return alpha*n*(1-n/k) - h*n }}
		},
		exact: func(p Params, n0 float64) func(float64) float64 {
			r, c := p["alpha"]-p["h"], p["alpha"]/p["k"]
			if r == 0 {
				return func(t float64) float64 { return n0 / (1 + c*n0*t) }
			}
			return func(t float64) float64 {
				e := math.Exp(r * t)
				return r * n0 * e / (r + c*n0*(e-1))
			}
		},
	}
}

// NewGeneralistVsSpecialist compares two predation terms on the same
// logistic prey: a generalist predator (sigmoid) and a specialist one
// (Holling type II).
func NewGeneralistVsSpecialist() Model {
	return &scalar{
		base: base{
			name: "generalist_vs_specialist", title: "Generalist vs Specialist Predator",
			labels: []string{"generalist", "specialist"}, dim: 1,
			setup:  Setup{Tn: 10, Steps: 10000, Init: []float64{2}},
			params: Params{"r": 0.5, "k": 10, "a": 1.5, "b": 2.5},
		},
		rhs: func(p Params) []ode.Func1 {
			r, k, a, b := p["r"], p["k"], p["a"], p["b"]
			return []ode.Func1{
				func(_, n float64) float64 { return r*n*(1-n/k) - b*(1-math.Exp(-(n*n)/(a*a))) },
				func(_, n float64) float64 { return r*n*(1-n/k) - b*n/(a+n) },
			}
		},
	}
}
