package advection

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/chart"
	"github.com/san-kum/odelab/internal/ode"
	"gonum.org/v1/gonum/mat"
)

// Burgers1D configures an upwind solve of u_t + u u_x = mu u_xx on [0, XMax].
// NX and NT count grid points, not intervals.
type Burgers1D struct {
	XMax      float64 `yaml:"x_max"`
	TMax      float64 `yaml:"t_max"`
	NX        int     `yaml:"nx"`
	NT        int     `yaml:"nt"`
	Viscosity float64 `yaml:"viscosity"`
	// Limit clips every interior value to [-Limit, Limit]; 0 disables it.
	Limit float64 `yaml:"limit"`
}

// DefaultBurgers returns the lightly viscous setup.
func DefaultBurgers() Burgers1D {
	return Burgers1D{XMax: 2, TMax: 3, NX: 40, NT: 10, Viscosity: 0.001, Limit: 1000}
}

// InitialRamp is u(x, 0) = 2x + 5.
func InitialRamp(x float64) float64 { return 2*x + 5 }

// InflowRamp is u(0, t) = t + 5.
func InflowRamp(t float64) float64 { return t + 5 }

// Field1D is a solved space-time field. Row n of U is the profile at T[n].
type Field1D struct {
	X []float64
	T []float64
	U *mat.Dense
}

func (b Burgers1D) validate() error {
	switch {
	case b.NX < 3:
		return fmt.Errorf("%w: nx = %d, need at least 3", ErrInvalidGrid, b.NX)
	case b.NT < 1:
		return fmt.Errorf("%w: nt = %d, need at least 1", ErrInvalidGrid, b.NT)
	case !(b.XMax > 0) || math.IsInf(b.XMax, 0):
		return fmt.Errorf("%w: x_max = %g", ErrInvalidGrid, b.XMax)
	case b.NT > 1 && (!(b.TMax > 0) || math.IsInf(b.TMax, 0)):
		return fmt.Errorf("%w: t_max = %g", ErrInvalidGrid, b.TMax)
	case b.Viscosity < 0 || b.Limit < 0:
		return fmt.Errorf("%w: viscosity and limit must not be negative", ErrInvalidGrid)
	}
	return nil
}

// Solve marches u0 forward with the left boundary driven by inflow and the
// right boundary copied from the previous level.
func (b Burgers1D) Solve(u0, inflow func(float64) float64) (*Field1D, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if u0 == nil || inflow == nil {
		return nil, fmt.Errorf("%w: nil initial or boundary function", ErrInvalidGrid)
	}

	x := ode.Grid(0, b.XMax, b.NX-1)
	t := ode.Grid(0, b.TMax, b.NT-1)
	dx, dt := ode.StepSize(x), ode.StepSize(t)
	adv, diff := dt/dx, b.Viscosity*dt/(dx*dx)

	u := mat.NewDense(b.NT, b.NX, nil)
	for j, xj := range x {
		u.Set(0, j, u0(xj))
	}

	last := b.NX - 1
	for n := 0; n+1 < b.NT; n++ {
		prev, next := u.RawRowView(n), u.RawRowView(n+1)
		next[0] = inflow(t[n+1])
		for j := 1; j < last; j++ {
			uj := prev[j]
			next[j] = b.clip(uj * (1 + adv*(uj-prev[j+1]) + diff*(2*uj-prev[j+1]-prev[j-1])))
		}
		next[last] = prev[last]
	}
	return &Field1D{X: x, T: t, U: u}, nil
}

func (b Burgers1D) clip(v float64) float64 {
	if b.Limit <= 0 {
		return v
	}
	return math.Max(-b.Limit, math.Min(b.Limit, v))
}

// Profile returns u(x) at time level n.
func (f *Field1D) Profile(n int) chart.Series {
	return chart.Series{
		Label: fmt.Sprintf("t = %.3g", f.T[n]),
		X:     f.X,
		Y:     mat.Row(nil, n, f.U),
	}
}

// Probe returns u(t) at grid column j.
func (f *Field1D) Probe(j int) chart.Series {
	return chart.Series{
		Label: fmt.Sprintf("x = %.3g", f.X[j]),
		X:     f.T,
		Y:     mat.Col(nil, j, f.U),
	}
}

// Animation has one frame per time level, sharing the range of the whole field.
func (f *Field1D) Animation(title string) *chart.Animation {
	y := chart.Range{Min: math.Min(0, mat.Min(f.U)), Max: math.Max(0, mat.Max(f.U))}
	if y.Max == y.Min {
		y.Max++
	}
	x := chart.Range{Min: f.X[0], Max: f.X[len(f.X)-1]}

	a := &chart.Animation{Title: title, Delay: chart.DefaultDelay}
	for n := range f.T {
		c := chart.New(title, f.Profile(n))
		c.XLabel, c.YLabel = "x", "u"
		c.XRange, c.YRange = &x, &y
		a.Frames = append(a.Frames, c)
	}
	return a
}

// CompareViscosity solves the same problem once per viscosity and charts the
// midpoint probe of each.
func (b Burgers1D) CompareViscosity(mus []float64, u0, inflow func(float64) float64) (*chart.Chart, error) {
	if len(mus) == 0 {
		return nil, fmt.Errorf("%w: no viscosities", ErrInvalidGrid)
	}
	c := chart.New("Burgers midpoint velocity")
	c.YLabel = "u"
	for _, mu := range mus {
		run := b
		run.Viscosity = mu
		f, err := run.Solve(u0, inflow)
		if err != nil {
			return nil, fmt.Errorf("viscosity %g: %w", mu, err)
		}
		s := f.Probe(b.NX / 2)
		s.Label = fmt.Sprintf("mu = %g", mu)
		c.Series = append(c.Series, s)
	}
	return c, nil
}
