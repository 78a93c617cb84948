package analysis

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/san-kum/odelab/internal/models"
	"github.com/san-kum/odelab/internal/ode"
	"golang.org/x/sync/errgroup"
)

// Problem is a scalar initial value problem with a known solution.
type Problem struct {
	Name   string
	F      ode.Func1
	Exact  func(float64) float64
	T0, Tn float64
	Y0     float64
	Steps  int
}

// Exponential is y' = y, y(0) = 1 on [0, 1].
func Exponential(steps int) Problem {
	return Problem{
		Name:  "exponential",
		F:     func(_, y float64) float64 { return y },
		Exact: math.Exp,
		Tn:    1,
		Y0:    1,
		Steps: steps,
	}
}

// MethodReport is the outcome of one method on a problem.
type MethodReport struct {
	Method   ode.Method
	Final    []float64
	MaxError float64
	Elapsed  time.Duration
}

// CompareMethods solves p with every method concurrently. Reports are in
// the order of methods.
func CompareMethods(ctx context.Context, methods []ode.Method, p Problem) ([]MethodReport, error) {
	t := ode.Grid(p.T0, p.Tn, p.Steps)
	h := ode.StepSize(t)
	return compare(ctx, methods, func(m ode.Method) (MethodReport, error) {
		start := time.Now()
		y, err := ode.NewSolver1(m).Solve(p.F, h, p.Steps, t, p.Y0)
		if err != nil {
			return MethodReport{}, err
		}
		return MethodReport{
			Method:   m,
			Final:    []float64{y[len(y)-1]},
			MaxError: MaxError(y, t, p.Exact),
			Elapsed:  time.Since(start),
		}, nil
	})
}

// ReferenceRefinement is the step multiplier of the reference solution
// used by CompareModel when the model has no closed form.
const ReferenceRefinement = 8

// CompareModel runs a fresh model from newModel once per method. The error
// is measured against the exact solution when the model has one, and
// otherwise against an rk38 solve with ReferenceRefinement times more steps,
// taking the largest deviation over all series.
func CompareModel(ctx context.Context, newModel func() (models.Model, error), s models.Setup, methods []ode.Method, opts ...ode.Option) ([]MethodReport, error) {
	ref, err := newModel()
	if err != nil {
		return nil, err
	}

	var score func(*models.Result) float64
	if a, ok := ref.(models.Analytic); ok && len(s.Init) == 1 {
		if exact := a.Exact(s.Init[0]); exact != nil {
			score = func(r *models.Result) float64 { return MaxError(r.Series[0].Y, r.Time, exact) }
		}
	}
	if score == nil {
		fine := s
		fine.Init = append([]float64(nil), s.Init...)
		fine.Steps = s.Steps * ReferenceRefinement
		refRes, err := ref.Run(ode.ThreeEighths, fine, opts...)
		if err != nil {
			return nil, fmt.Errorf("reference solve: %w", err)
		}
		score = func(r *models.Result) float64 {
			worst := 0.0
			for i, sr := range r.Series {
				d := MaxDeviation(sr.Y, refRes.Series[i].Y, ReferenceRefinement)
				if math.IsNaN(d) {
					return d
				}
				worst = math.Max(worst, d)
			}
			return worst
		}
	}

	return compare(ctx, methods, func(m ode.Method) (MethodReport, error) {
		model, err := newModel()
		if err != nil {
			return MethodReport{}, err
		}
		start := time.Now()
		res, err := model.Run(m, s, opts...)
		if err != nil {
			return MethodReport{}, err
		}
		return MethodReport{
			Method:   m,
			Final:    res.Final(),
			MaxError: score(res),
			Elapsed:  time.Since(start),
		}, nil
	})
}

func compare(ctx context.Context, methods []ode.Method, solve func(ode.Method) (MethodReport, error)) ([]MethodReport, error) {
	reports := make([]MethodReport, len(methods))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range methods {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := solve(m)
			if err != nil {
				return fmt.Errorf("%s: %w", m, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
