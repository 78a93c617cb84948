package experiment

import (
	"context"
	"fmt"
	"runtime"

	"github.com/san-kum/odelab/internal/config"
	"golang.org/x/sync/errgroup"
)

// RunBatch executes the configs concurrently, at most limit at a time
// (GOMAXPROCS when limit < 1). Outcomes are in config order. The first
// failure cancels the experiments that have not started.
func RunBatch(ctx context.Context, cfgs []config.Config, limit int, opts ...Option) ([]*Outcome, error) {
	if limit < 1 {
		limit = runtime.GOMAXPROCS(0)
	}
	out := make([]*Outcome, len(cfgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range cfgs {
		cfg := cfgs[i].Clone()
		g.Go(func() error {
			o, err := New(cfg, opts...).Execute(ctx)
			if err != nil {
				return fmt.Errorf("experiment %d (%s): %w", i+1, cfg.Label(), err)
			}
			out[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
