package experiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/san-kum/odelab/internal/chart"
	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/models"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/storage"
)

var (
	ErrUnknownModel  = models.ErrUnknownModel
	ErrUnknownOutput = errors.New("experiment: unsupported output")
)

// gifFrames is the approximate frame count of animated outputs.
const gifFrames = 100

type Experiment struct {
	cfg   *config.Config
	reg   *Registry
	store *storage.Store
	log   *slog.Logger
}

type Option func(*Experiment)

func WithRegistry(r *Registry) Option { return func(e *Experiment) { e.reg = r } }

// WithStore saves results of configs with Store set.
func WithStore(s *storage.Store) Option { return func(e *Experiment) { e.store = s } }

func WithLogger(l *slog.Logger) Option { return func(e *Experiment) { e.log = l } }

func New(cfg *config.Config, opts ...Option) *Experiment {
	e := &Experiment{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.reg == nil {
		e.reg = NewRegistry()
	}
	if e.log == nil {
		e.log = slog.New(slog.DiscardHandler)
	}
	return e
}

// Config returns the experiment configuration.
func (e *Experiment) Config() *config.Config { return e.cfg }

// Outcome is the result of Execute.
type Outcome struct {
	Config  *config.Config
	Result  *models.Result
	Outputs []string
	RunID   string
}

// Setup resolves the model, setup, method and coupling of the experiment
// without solving.
func (e *Experiment) Setup() (models.Model, models.Setup, ode.Method, ode.Coupling, error) {
	var s models.Setup
	if err := e.cfg.Validate(); err != nil {
		return nil, s, 0, 0, err
	}
	for _, out := range e.cfg.Outputs {
		if err := checkOutput(out); err != nil {
			return nil, s, 0, 0, err
		}
	}
	model, err := e.reg.GetModel(e.cfg.Model)
	if err != nil {
		return nil, s, 0, 0, err
	}
	method, err := e.reg.GetMethod(e.cfg.Method)
	if err != nil {
		return nil, s, 0, 0, err
	}
	coupling, err := ode.ParseCoupling(e.cfg.Coupling)
	if err != nil {
		return nil, s, 0, 0, err
	}

	for _, name := range models.Params(e.cfg.Params).Names() {
		if err := model.SetParam(name, e.cfg.Params[name]); err != nil {
			return nil, s, 0, 0, err
		}
	}

	s = model.Defaults()
	if e.cfg.Tn > 0 {
		s.Tn = e.cfg.Tn
	}
	if e.cfg.Steps > 0 {
		s.Steps = e.cfg.Steps
	}
	if len(e.cfg.Init) > 0 {
		s.Init = append([]float64(nil), e.cfg.Init...)
	}
	if e.cfg.Limit > 0 {
		s.Limit = e.cfg.Limit
	}
	return model, s, method, coupling, nil
}

// Run solves the configured model.
func (e *Experiment) Run(ctx context.Context) (*models.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	model, setup, method, coupling, err := e.Setup()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := model.Run(method, setup, ode.WithCoupling(coupling))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.cfg.Label(), err)
	}
	e.log.Info("solved",
		"experiment", e.cfg.Label(),
		"method", method,
		"coupling", coupling,
		"steps", setup.Steps,
		"elapsed", time.Since(start))
	if !res.Finite() {
		e.log.Warn("trajectory left the finite range", "experiment", e.cfg.Label())
	}
	return res, nil
}

// Render writes every configured output. A .gif output is animated.
func (e *Experiment) Render(res *models.Result) error {
	c := res.Chart()
	for _, out := range e.cfg.Outputs {
		if err := renderOutput(out, c); err != nil {
			return fmt.Errorf("%s: %w", out, err)
		}
		e.log.Info("wrote output", "experiment", e.cfg.Label(), "path", out)
	}
	return nil
}

// Execute runs, renders and, when configured, stores the experiment.
func (e *Experiment) Execute(ctx context.Context) (*Outcome, error) {
	res, err := e.Run(ctx)
	if err != nil {
		return nil, err
	}
	if err := e.Render(res); err != nil {
		return nil, err
	}
	out := &Outcome{Config: e.cfg, Result: res, Outputs: e.cfg.Outputs}
	if e.cfg.Store && e.store != nil {
		id, err := e.store.Save(e.metadata(), res)
		if err != nil {
			return nil, fmt.Errorf("store %s: %w", e.cfg.Label(), err)
		}
		out.RunID = id
		e.log.Info("stored run", "experiment", e.cfg.Label(), "id", id)
	}
	return out, nil
}

func (e *Experiment) metadata() storage.RunMetadata {
	meta := storage.RunMetadata{Name: e.cfg.Name, Limit: e.cfg.Limit, Params: e.cfg.Params}
	if model, s, _, _, err := e.Setup(); err == nil {
		meta.Tn, meta.Steps, meta.Init = s.Tn, s.Steps, s.Init
		meta.Params = model.Params()
	}
	return meta
}

func checkOutput(path string) error {
	if strings.EqualFold(filepath.Ext(path), ".gif") {
		return nil
	}
	if _, err := chart.ForPath(path); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownOutput, path)
	}
	return nil
}

func renderOutput(path string, c *chart.Chart) error {
	if !strings.EqualFold(filepath.Ext(path), ".gif") {
		return chart.RenderFile(path, c)
	}
	n := 0
	for _, s := range c.Series {
		n = max(n, s.Len())
	}
	a, err := chart.Reveal(c, max(1, n/gifFrames))
	if err != nil {
		return err
	}
	return chart.RenderAnimationFile(path, a)
}
