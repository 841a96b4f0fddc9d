package experiment

import (
	"context"
	"sync"

	"github.com/san-kum/pdelab/internal/config"
	"github.com/san-kum/pdelab/internal/pde"
)

// RunAll runs each configuration concurrently. Every run builds its own
// simulation, so the goroutines share no field storage. The first build
// or run error wins; construction is validated up front so a bad config
// fails before any goroutine starts.
func (r *Registry) RunAll(ctx context.Context, cfgs []*config.Config) ([]*pde.Result, error) {
	for _, cfg := range cfgs {
		if _, err := r.Build(cfg); err != nil {
			return nil, err
		}
	}

	results := make([]*pde.Result, len(cfgs))
	errs := make([]error, len(cfgs))

	var wg sync.WaitGroup
	for i, cfg := range cfgs {
		wg.Add(1)
		go func(idx int, cfg *config.Config) {
			defer wg.Done()
			results[idx], errs[idx] = r.Run(ctx, cfg)
		}(i, cfg)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
