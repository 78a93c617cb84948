package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/chart"
	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/experiment"
	"github.com/san-kum/odelab/internal/models"
	"github.com/san-kum/odelab/internal/storage"
	"github.com/san-kum/odelab/internal/viz"
	"github.com/spf13/cobra"
)

// buildConfig layers a preset or config file, then the changed flags, on
// top of the defaults.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	if preset != "" && configFile != "" {
		return nil, errors.New("use either --preset or --config")
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Model = args[0]
	}
	if preset != "" {
		p := config.GetPreset(cfg.Model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Model))
		}
		cfg = p
	}

	flags := cmd.Flags()
	if flags.Changed("method") {
		cfg.Method = method
	}
	if flags.Changed("coupling") {
		cfg.Coupling = coupling
	}
	if flags.Changed("tn") {
		cfg.Tn = tn
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("init") {
		cfg.Init = initState
	}
	if flags.Changed("limit") {
		cfg.Limit = limit
	}
	if flags.Changed("out") {
		cfg.Outputs = outputs
	}
	if flags.Changed("name") {
		cfg.Name = runName
	}
	if flags.Lookup("store") != nil && (configFile == "" || flags.Changed("store")) {
		cfg.Store = storeRun
	}
	if len(params) > 0 && cfg.Params == nil {
		cfg.Params = make(map[string]float64, len(params))
	}
	for _, kv := range params {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("--param %q: want name=value", kv)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("--param %q: %w", kv, err)
		}
		cfg.Params[strings.TrimSpace(name)] = v
	}
	return cfg, cfg.Validate()
}

func runModel(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg, experiment.WithStore(storage.New(dataDir)), experiment.WithLogger(logger))
	out, err := exp.Execute(cmd.Context())
	if err != nil {
		return err
	}
	res := out.Result

	fmt.Printf("%s  method=%s coupling=%s points=%d\n", res.Title, res.Method, res.Coupling, len(res.Time))
	t := newTable("SERIES", "INITIAL", "FINAL", "MIN", "MAX")
	for _, s := range res.Series {
		lo, hi := seriesRange(s.Y)
		t.Row(s.Label, fmt.Sprintf("%.6g", s.Y[0]), fmt.Sprintf("%.6g", s.Y[s.Len()-1]), fmt.Sprintf("%.6g", lo), fmt.Sprintf("%.6g", hi))
	}
	fmt.Println(t.Render())

	if len(cfg.Outputs) == 0 {
		r := chart.ASCIIRenderer{Width: 80, Height: 15, Color: !noColor}
		if err := r.Render(os.Stdout, res.Chart()); err != nil {
			return err
		}
	}
	if out.RunID != "" {
		fmt.Printf("run id: %s\n", out.RunID)
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := config.LoadFile(args[0])
	if err != nil {
		return err
	}
	logger.Info("running batch", "file", args[0], "experiments", len(f.Experiments))

	start := time.Now()
	outs, err := experiment.RunBatch(cmd.Context(), f.Experiments, jobs,
		experiment.WithStore(storage.New(dataDir)),
		experiment.WithLogger(logger))
	if err != nil {
		return err
	}

	t := newTable("EXPERIMENT", "MODEL", "METHOD", "FINAL", "OUTPUTS", "RUN")
	for _, o := range outs {
		t.Row(o.Config.Label(), o.Result.Model, o.Result.Method.String(), formatValues(o.Result.Final()),
			strconv.Itoa(len(o.Outputs)), o.RunID)
	}
	fmt.Println(t.Render())
	fmt.Printf("completed %d experiments in %v\n", len(outs), time.Since(start).Round(time.Millisecond))
	return nil
}

// solve runs the configured model without rendering or storing.
func solve(cmd *cobra.Command, args []string) (*models.Result, error) {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return nil, err
	}
	cfg.Outputs = nil
	return experiment.New(cfg, experiment.WithLogger(logger)).Run(cmd.Context())
}

func runLive(cmd *cobra.Command, args []string) error {
	res, err := solve(cmd, args)
	if err != nil {
		return err
	}

	c := res.Chart()
	stride := max(1, len(res.Time)/max(frames, 1))
	a, err := chart.Reveal(c, stride)
	if err != nil {
		return err
	}
	a.Delay = time.Second / time.Duration(max(frameRate, 1))

	p := viz.NewPlayer(a).WithTheme(theme).WithColor(!noColor)
	if _, err := tea.NewProgram(p, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	res, err := solve(cmd, args)
	if err != nil {
		return err
	}
	if len(res.Series) < 2 {
		return fmt.Errorf("%s has a single state; the phase plane needs two", res.Model)
	}

	a, b := res.Series[0], res.Series[1]
	pc, err := chart.Phase(fmt.Sprintf("%s phase plane (%s)", res.Title, res.Method), a, b)
	if err != nil {
		return err
	}
	x, y := pc.Bounds()
	canvas := viz.NewCanvas(70, 20)
	canvas.Trace(a.Y, b.Y, x, y)

	fmt.Println(pc.Title)
	fmt.Printf("%s: [%.4g, %.4g]  %s: [%.4g, %.4g]\n", a.Label, x.Min, x.Max, b.Label, y.Min, y.Max)
	fmt.Print(canvas.String())

	h := res.Time[1] - res.Time[0]
	for _, s := range res.Series {
		if p := analysis.DominantPeriod(s.Y, h); p > 0 {
			fmt.Printf("%s dominant period: %.4g\n", s.Label, p)
		}
	}

	for _, path := range outputs {
		if strings.EqualFold(filepath.Ext(path), ".txt") {
			if err := os.WriteFile(path, []byte(pc.Title+"\n"+canvas.String()), 0644); err != nil {
				return err
			}
		} else if err := chart.RenderFile(path, pc); err != nil {
			return err
		}
		logger.Info("wrote output", "path", path)
	}
	return nil
}
