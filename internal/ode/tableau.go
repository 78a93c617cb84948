package ode

const maxStages = 4

// Tableau is the Butcher tableau of an explicit Runge-Kutta method.
// Only the strictly lower triangle of A is used.
type Tableau struct {
	Name   string
	Order  int
	Stages int
	C      [maxStages]float64
	A      [maxStages][maxStages]float64
	B      [maxStages]float64
}

type stages = [maxStages]float64

type matrix = [maxStages][maxStages]float64

var tableaus = [...]Tableau{
	ForwardEuler: {
		Name: "euler", Order: 1, Stages: 1,
		B: stages{1},
	},
	ExplicitMidpoint: {
		Name: "midpoint", Order: 2, Stages: 2,
		C: stages{0, 1.0 / 2.0},
		A: matrix{
			{},
			{1.0 / 2.0},
		},
		B: stages{0, 1},
	},
	Heun2: {
		Name: "heun2", Order: 2, Stages: 2,
		C: stages{0, 1},
		A: matrix{
			{},
			{1},
		},
		B: stages{1.0 / 2.0, 1.0 / 2.0},
	},
	Ralston2: {
		Name: "ralston2", Order: 2, Stages: 2,
		C: stages{0, 2.0 / 3.0},
		A: matrix{
			{},
			{2.0 / 3.0},
		},
		B: stages{1.0 / 4.0, 3.0 / 4.0},
	},
	// Kutta's third-order method.
	Kutta3: {
		Name: "kutta3", Order: 3, Stages: 3,
		C: stages{0, 1.0 / 2.0, 1},
		A: matrix{
			{},
			{1.0 / 2.0},
			{-1, 2},
		},
		B: stages{1.0 / 6.0, 2.0 / 3.0, 1.0 / 6.0},
	},
	// Van der Houwen's / Wray's third-order method.
	Wray3: {
		Name: "wray3", Order: 3, Stages: 3,
		C: stages{0, 8.0 / 15.0, 2.0 / 3.0},
		A: matrix{
			{},
			{8.0 / 15.0},
			{1.0 / 4.0, 5.0 / 12.0},
		},
		B: stages{1.0 / 4.0, 0, 3.0 / 4.0},
	},
	Ralston3: {
		Name: "ralston3", Order: 3, Stages: 3,
		C: stages{0, 1.0 / 2.0, 3.0 / 4.0},
		A: matrix{
			{},
			{1.0 / 2.0},
			{0, 3.0 / 4.0},
		},
		B: stages{2.0 / 9.0, 1.0 / 3.0, 4.0 / 9.0},
	},
	// Third-order strong stability preserving method (Shu-Osher).
	SSPRK3: {
		Name: "ssprk3", Order: 3, Stages: 3,
		C: stages{0, 1, 1.0 / 2.0},
		A: matrix{
			{},
			{1},
			{1.0 / 4.0, 1.0 / 4.0},
		},
		B: stages{1.0 / 6.0, 1.0 / 6.0, 2.0 / 3.0},
	},
	Classic4: {
		Name: "rk4", Order: 4, Stages: 4,
		C: stages{0, 1.0 / 2.0, 1.0 / 2.0, 1},
		A: matrix{
			{},
			{1.0 / 2.0},
			{0, 1.0 / 2.0},
			{0, 0, 1},
		},
		B: stages{1.0 / 6.0, 1.0 / 3.0, 1.0 / 3.0, 1.0 / 6.0},
	},
	ThreeEighths: {
		Name: "rk38", Order: 4, Stages: 4,
		C: stages{0, 1.0 / 3.0, 2.0 / 3.0, 1},
		A: matrix{
			{},
			{1.0 / 3.0},
			{-1.0 / 3.0, 1},
			{1, -1, 1},
		},
		B: stages{1.0 / 8.0, 3.0 / 8.0, 3.0 / 8.0, 1.0 / 8.0},
	},
}

// A method added to the enumeration without a tableau fails to compile here.
var _ [numMethods]Tableau = tableaus

// advance takes one step of y' = g(t, y) from (t, y).
func (tb *Tableau) advance(g Func1, t, y, h float64) float64 {
	var k stages
	for s := 0; s < tb.Stages; s++ {
		k[s] = g(t+tb.C[s]*h, y+tb.increment(s, &k, h))
	}
	return y + h*tb.combine(&k)
}

func (tb *Tableau) combine(k *stages) float64 {
	sum := 0.0
	for s := 0; s < tb.Stages; s++ {
		sum += tb.B[s] * k[s]
	}
	return sum
}

// increment returns h * sum_j A[s][j]*k[j] for stage s.
func (tb *Tableau) increment(s int, k *stages, h float64) float64 {
	acc := 0.0
	for j := 0; j < s; j++ {
		acc += tb.A[s][j] * k[j]
	}
	return h * acc
}
