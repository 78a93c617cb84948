package models

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/odelab/internal/chart"
	"github.com/san-kum/odelab/internal/ode"
)

var (
	// ErrUnknownParam is returned by SetParam for a name the model does not define.
	ErrUnknownParam = errors.New("models: unknown parameter")

	// ErrSetup indicates a horizon, step count or initial state the model cannot run.
	ErrSetup = errors.New("models: invalid setup")
)

// Model is a named ODE model whose right-hand sides are built from its
// current parameters on every Run.
type Model interface {
	Name() string
	Title() string
	// Labels names the plotted series, one per state variable (or per
	// right-hand-side variant for single-state models that compare several).
	Labels() []string
	// Dim is the number of state variables.
	Dim() int
	Defaults() Setup
	Params() Params
	SetParam(name string, v float64) error
	Run(m ode.Method, s Setup, opts ...ode.Option) (*Result, error)
}

// Analytic is implemented by models with a closed-form solution for
// their current parameters.
type Analytic interface {
	Exact(y0 float64) func(t float64) float64
}

// Setup is the time horizon and initial state of a run. Time always
// starts at 0 and the step is Tn/Steps. A positive Limit saturates every
// derivative to [-Limit, Limit].
type Setup struct {
	Tn    float64   `yaml:"tn" json:"tn"`
	Steps int       `yaml:"steps" json:"steps"`
	Init  []float64 `yaml:"init" json:"init"`
	Limit float64   `yaml:"limit,omitempty" json:"limit,omitempty"`
}

// Step returns the step size implied by the setup.
func (s Setup) Step() float64 {
	if s.Steps <= 0 {
		return 0
	}
	return s.Tn / float64(s.Steps)
}

func (s Setup) validate(dim int) error {
	switch {
	case !(s.Tn > 0):
		return fmt.Errorf("%w: horizon %g must be positive", ErrSetup, s.Tn)
	case s.Steps < 1:
		return fmt.Errorf("%w: step count %d must be at least 1", ErrSetup, s.Steps)
	case s.Limit < 0:
		return fmt.Errorf("%w: negative derivative limit %g", ErrSetup, s.Limit)
	case len(s.Init) != dim:
		return fmt.Errorf("%w: %d initial values for %d state variables", ErrSetup, len(s.Init), dim)
	}
	return nil
}

// Params maps parameter names to values.
type Params map[string]float64

// Names returns the parameter names in sorted order.
func (p Params) Names() []string {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (p Params) clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// Result holds the trajectories of one run.
type Result struct {
	Model    string
	Title    string
	Method   ode.Method
	Coupling ode.Coupling
	Time     []float64
	Series   []chart.Series
}

// Chart returns the time-series chart of the result.
func (r *Result) Chart() *chart.Chart {
	c := chart.New(fmt.Sprintf("%s (%s)", r.Title, r.Method), r.Series...)
	return c
}

// Final returns the last value of every series.
func (r *Result) Final() []float64 {
	out := make([]float64, len(r.Series))
	for i, s := range r.Series {
		if n := s.Len(); n > 0 {
			out[i] = s.Y[n-1]
		}
	}
	return out
}

// Finite reports whether every trajectory stayed finite.
func (r *Result) Finite() bool {
	for _, s := range r.Series {
		if !ode.Finite(s.Y) {
			return false
		}
	}
	return true
}

// base carries the metadata and parameters shared by every model kind.
type base struct {
	name   string
	title  string
	labels []string
	dim    int
	setup  Setup
	params Params
}

func (b *base) Name() string     { return b.name }
func (b *base) Title() string    { return b.title }
func (b *base) Labels() []string { return append([]string(nil), b.labels...) }
func (b *base) Dim() int         { return b.dim }
func (b *base) Params() Params   { return b.params.clone() }

func (b *base) Defaults() Setup {
	s := b.setup
	s.Init = append([]float64(nil), b.setup.Init...)
	return s
}

func (b *base) SetParam(name string, v float64) error {
	if _, ok := b.params[name]; !ok {
		return fmt.Errorf("%w: %s has no parameter %q", ErrUnknownParam, b.name, name)
	}
	b.params[name] = v
	return nil
}

func (b *base) result(m ode.Method, c ode.Coupling, t []float64, ys ...[]float64) *Result {
	r := &Result{Model: b.name, Title: b.title, Method: m, Coupling: c, Time: t}
	for i, y := range ys {
		r.Series = append(r.Series, chart.Series{Label: b.labels[i], X: t, Y: y})
	}
	return r
}
