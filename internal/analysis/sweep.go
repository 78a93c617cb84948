package analysis

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/san-kum/odelab/internal/chart"
	"github.com/san-kum/odelab/internal/models"
	"github.com/san-kum/odelab/internal/ode"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// maxSweepValues caps the distinct values kept per parameter value.
const maxSweepValues = 100

// SweepPoint holds the distinct late-time values of one series for one
// parameter value.
type SweepPoint struct {
	Param  float64
	Values []float64
}

// Sweep varies one model parameter over [Min, Max] and records where a
// series settles. A converging run leaves a single value, an oscillating
// one the set of values it visits.
type Sweep struct {
	Param  string
	Min    float64
	Max    float64
	Points int
	// Series indexes the recorded series of the result.
	Series int
	// Transient is the fraction of the run discarded before recording.
	Transient float64
}

func (s Sweep) validate() error {
	switch {
	case s.Param == "":
		return fmt.Errorf("sweep: no parameter")
	case s.Points < 2:
		return fmt.Errorf("sweep: %d points, need at least 2", s.Points)
	case !(s.Max > s.Min):
		return fmt.Errorf("sweep: empty range [%g, %g]", s.Min, s.Max)
	case s.Transient < 0 || s.Transient >= 1:
		return fmt.Errorf("sweep: transient fraction %g outside [0, 1)", s.Transient)
	case s.Series < 0:
		return fmt.Errorf("sweep: negative series index %d", s.Series)
	}
	return nil
}

// Run solves a fresh model per parameter value concurrently. Points are in
// ascending parameter order.
func (s Sweep) Run(ctx context.Context, newModel func() (models.Model, error), setup models.Setup, m ode.Method, opts ...ode.Option) ([]SweepPoint, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	values := floats.Span(make([]float64, s.Points), s.Min, s.Max)
	points := make([]SweepPoint, s.Points)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range values {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			model, err := newModel()
			if err != nil {
				return err
			}
			if err := model.SetParam(s.Param, p); err != nil {
				return err
			}
			res, err := model.Run(m, setup, opts...)
			if err != nil {
				return fmt.Errorf("%s = %g: %w", s.Param, p, err)
			}
			if s.Series >= len(res.Series) {
				return fmt.Errorf("sweep: series %d of %d", s.Series, len(res.Series))
			}
			y := res.Series[s.Series].Y
			points[i] = SweepPoint{Param: p, Values: distinct(y[int(s.Transient*float64(len(y))):])}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// distinct returns the values of y that differ in their first four
// significant digits, in order of appearance.
func distinct(y []float64) []float64 {
	seen := make(map[string]bool)
	out := make([]float64, 0, 8)
	for _, v := range y {
		key := strconv.FormatFloat(v, 'g', 4, 64)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
		if len(out) == maxSweepValues {
			break
		}
	}
	return out
}

// SweepChart draws the lowest and highest recorded value against the
// parameter.
func SweepChart(title, param string, points []SweepPoint) *chart.Chart {
	x := make([]float64, 0, len(points))
	lo := make([]float64, 0, len(points))
	hi := make([]float64, 0, len(points))
	for _, p := range points {
		if len(p.Values) == 0 {
			continue
		}
		x = append(x, p.Param)
		lo = append(lo, floats.Min(p.Values))
		hi = append(hi, floats.Max(p.Values))
	}
	c := chart.New(title,
		chart.Series{Label: "min", X: x, Y: lo},
		chart.Series{Label: "max", X: x, Y: hi})
	c.XLabel = param
	return c
}
