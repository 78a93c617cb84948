package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/odelab/internal/advection"
	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/chart"
	"github.com/san-kum/odelab/internal/experiment"
	"github.com/san-kum/odelab/internal/models"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/spf13/cobra"
)

// parseMethods parses names, or returns every method for none.
func parseMethods(names []string) ([]ode.Method, error) {
	if len(names) == 0 {
		return ode.Methods(), nil
	}
	out := make([]ode.Method, 0, len(names))
	for _, name := range names {
		m, err := ode.ParseMethod(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func compareMethods(cmd *cobra.Command, args []string) error {
	methods, err := parseMethods(args[1:])
	if err != nil {
		return err
	}
	cfg, err := buildConfig(cmd, args[:1])
	if err != nil {
		return err
	}
	model, setup, _, c, err := experiment.New(cfg).Setup()
	if err != nil {
		return err
	}

	newModel := func() (models.Model, error) {
		m, _, _, _, err := experiment.New(cfg).Setup()
		return m, err
	}
	reports, err := analysis.CompareModel(cmd.Context(), newModel, setup, methods, ode.WithCoupling(c))
	if err != nil {
		return err
	}

	ref := fmt.Sprintf("rk38 with %d steps", setup.Steps*analysis.ReferenceRefinement)
	if _, ok := model.(models.Analytic); ok && len(setup.Init) == 1 {
		ref = "exact solution"
	}
	fmt.Printf("%s  h=%.4g coupling=%s  reference: %s\n", model.Title(), setup.Step(), c, ref)

	t := newTable("METHOD", "ORDER", "FINAL", "MAX ERROR", "TIME")
	for _, r := range reports {
		t.Row(r.Method.String(), fmt.Sprint(r.Method.Order()), formatValues(r.Final),
			fmt.Sprintf("%.3e", r.MaxError), r.Elapsed.String())
	}
	fmt.Println(t.Render())
	return nil
}

func observedOrder(cmd *cobra.Command, args []string) error {
	methods, err := parseMethods(args)
	if err != nil {
		return err
	}
	if orderBase < 1 || orderLevels < 2 {
		return fmt.Errorf("need --steps >= 1 and --levels >= 2, got %d and %d", orderBase, orderLevels)
	}

	p := analysis.Exponential(orderBase)
	steps := analysis.Halvings(orderBase, orderLevels)
	headers := []string{"METHOD", "ORDER", "FITTED"}
	for _, n := range steps {
		headers = append(headers, fmt.Sprintf("N=%d", n))
	}
	t := newTable(headers...)
	for _, m := range methods {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		samples, slope, err := analysis.ObservedOrder(m, p.F, p.Exact, p.T0, p.Tn, p.Y0, steps)
		if err != nil {
			return err
		}
		row := []string{m.String(), fmt.Sprint(m.Order()), fmt.Sprintf("%.3f", slope)}
		for _, s := range samples {
			row = append(row, fmt.Sprintf("%.2e", s.Error))
		}
		t.Row(row...)
	}
	fmt.Println(t.Render())
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	model, setup, m, c, err := experiment.New(cfg).Setup()
	if err != nil {
		return err
	}
	newModel := func() (models.Model, error) {
		mod, _, _, _, err := experiment.New(cfg).Setup()
		return mod, err
	}

	s := analysis.Sweep{
		Param:     sweepParam,
		Min:       sweepMin,
		Max:       sweepMax,
		Points:    sweepPoints,
		Series:    sweepSeries,
		Transient: sweepTransient,
	}
	logger.Info("sweeping", "model", model.Name(), "param", s.Param, "points", s.Points, "method", m)
	points, err := s.Run(cmd.Context(), newModel, setup, m, ode.WithCoupling(c))
	if err != nil {
		return err
	}

	t := newTable(strings.ToUpper(s.Param), "VALUES", "MIN", "MAX")
	for _, p := range points {
		lo, hi := seriesRange(p.Values)
		t.Row(fmt.Sprintf("%.4g", p.Param), fmt.Sprint(len(p.Values)), fmt.Sprintf("%.6g", lo), fmt.Sprintf("%.6g", hi))
	}
	fmt.Println(t.Render())

	sc := analysis.SweepChart(fmt.Sprintf("%s: %s", model.Title(), s.Param), s.Param, points)
	for _, path := range outputs {
		if err := chart.RenderFile(path, sc); err != nil {
			return err
		}
		logger.Info("wrote output", "path", path)
	}
	return nil
}

func runAdvect(cmd *cobra.Command, args []string) error {
	var (
		c    *chart.Chart
		anim *chart.Animation
	)
	switch args[0] {
	case "burgers", "viscous":
		b := advection.DefaultBurgers()
		if nx > 0 {
			b.NX = nx
		}
		if nt > 0 {
			b.NT = nt
		}
		if xMax > 0 {
			b.XMax = xMax
		}
		if tMax > 0 {
			b.TMax = tMax
		}
		b.Limit = clip

		if args[0] == "viscous" {
			var err error
			if c, err = b.CompareViscosity(viscosities, advection.InitialRamp, advection.InflowRamp); err != nil {
				return err
			}
			break
		}
		b.Viscosity = 0
		f, err := b.Solve(advection.InitialRamp, advection.InflowRamp)
		if err != nil {
			return err
		}
		c = chart.New("Inviscid Burgers profiles", f.Profile(0), f.Profile(len(f.T)/2), f.Profile(len(f.T)-1))
		c.XLabel, c.YLabel = "x", "u"
		anim = f.Animation("Inviscid Burgers")
		logger.Debug("solved burgers", "nx", b.NX, "nt", b.NT, "max", maxAbs(f.Profile(len(f.T)-1).Y))
	case "flow2d":
		fl := advection.DefaultFlow2D()
		if nx > 0 {
			fl.NX, fl.NY = nx, nx
		}
		if nt > 0 {
			fl.Steps = nt
		}
		if dt > 0 {
			fl.Dt = dt
		}
		r, err := fl.Solve()
		if err != nil {
			return err
		}
		c = r.Chart(fmt.Sprintf("2D flow at the centre (%dx%d)", fl.NX, fl.NY))
	default:
		return fmt.Errorf("unknown advection run %q (burgers, viscous, flow2d)", args[0])
	}

	ascii := chart.ASCIIRenderer{Width: 80, Height: 15, Color: !noColor}
	if err := ascii.Render(os.Stdout, c); err != nil {
		return err
	}
	for _, path := range outputs {
		var err error
		if anim != nil && strings.EqualFold(filepath.Ext(path), ".gif") {
			err = chart.RenderAnimationFile(path, anim)
		} else {
			err = chart.RenderFile(path, c)
		}
		if err != nil {
			return err
		}
		logger.Info("wrote output", "path", path)
	}
	return nil
}

func maxAbs(y []float64) float64 {
	m := 0.0
	for _, v := range y {
		m = math.Max(m, math.Abs(v))
	}
	return m
}
