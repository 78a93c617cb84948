package advection

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/chart"
	"github.com/san-kum/odelab/internal/ode"
	"gonum.org/v1/gonum/mat"
)

// Flow2D advects the velocity field (u, v) by itself on the unit square with
// fixed boundaries u = 0.5 + x + y and v = 0.4 + x + y.
type Flow2D struct {
	NX    int     `yaml:"nx"`
	NY    int     `yaml:"ny"`
	Dt    float64 `yaml:"dt"`
	Steps int     `yaml:"steps"`
}

// DefaultFlow2D returns a 10x10 grid stepped 20 times by 0.05.
func DefaultFlow2D() Flow2D {
	return Flow2D{NX: 10, NY: 10, Dt: 0.05, Steps: 20}
}

// FlowResult holds the final field and the centre probes at every level.
type FlowResult struct {
	T      []float64
	U, V   *mat.Dense
	UProbe []float64
	VProbe []float64
}

// Series returns the u and v probes against time.
func (r *FlowResult) Series() []chart.Series {
	return []chart.Series{
		{Label: "u", X: r.T, Y: r.UProbe},
		{Label: "v", X: r.T, Y: r.VProbe},
	}
}

// Chart returns the probe chart.
func (r *FlowResult) Chart(title string) *chart.Chart {
	c := chart.New(title, r.Series()...)
	c.YLabel = "velocity"
	return c
}

func (f Flow2D) validate() error {
	switch {
	case f.NX < 3 || f.NY < 3:
		return fmt.Errorf("%w: %dx%d, need at least 3x3", ErrInvalidGrid, f.NX, f.NY)
	case !(f.Dt > 0) || math.IsInf(f.Dt, 0):
		return fmt.Errorf("%w: dt = %g", ErrInvalidGrid, f.Dt)
	case f.Steps < 0:
		return fmt.Errorf("%w: steps = %d", ErrInvalidGrid, f.Steps)
	}
	return nil
}

// Solve runs the upwind scheme. Boundary cells keep their initial values.
func (f Flow2D) Solve() (*FlowResult, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	x, y := ode.Grid(0, 1, f.NX-1), ode.Grid(0, 1, f.NY-1)
	dx, dy := ode.StepSize(x), ode.StepSize(y)

	u := mat.NewDense(f.NX, f.NY, nil)
	v := mat.NewDense(f.NX, f.NY, nil)
	for i, xi := range x {
		for j, yj := range y {
			u.Set(i, j, 0.5+xi+yj)
			v.Set(i, j, 0.4+xi+yj)
		}
	}

	ci, cj := f.NX/2, f.NY/2
	res := &FlowResult{
		T:      ode.Uniform(0, f.Dt, f.Steps),
		UProbe: make([]float64, 0, f.Steps+1),
		VProbe: make([]float64, 0, f.Steps+1),
	}
	res.UProbe = append(res.UProbe, u.At(ci, cj))
	res.VProbe = append(res.VProbe, v.At(ci, cj))

	un, vn := mat.DenseCopyOf(u), mat.DenseCopyOf(v)
	for k := 0; k < f.Steps; k++ {
		for i := 1; i < f.NX-1; i++ {
			for j := 1; j < f.NY-1; j++ {
				uij, vij := u.At(i, j), v.At(i, j)
				un.Set(i, j, uij-f.Dt*(uij*(uij-u.At(i-1, j))/dx+vij*(uij-u.At(i, j-1))/dy))
				vn.Set(i, j, vij-f.Dt*(uij*(vij-v.At(i-1, j))/dx+vij*(vij-v.At(i, j-1))/dy))
			}
		}
		u, un = un, u
		v, vn = vn, v
		res.UProbe = append(res.UProbe, u.At(ci, cj))
		res.VProbe = append(res.VProbe, v.At(ci, cj))
	}
	res.U, res.V = u, v
	return res, nil
}
