package experiment

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/resilience/config"
)

// RunBatch validates cfg and runs one experiment per seed of cfg.RunSeeds()
// in parallel goroutines, at most GOMAXPROCS at a time. Each run owns its
// graph and random streams. Results are returned in seed order. The first
// failure cancels the remaining runs and is returned.
func RunBatch(ctx context.Context, cfg *config.Config, opts ...Option) ([]*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := newRunner(opts)
	seeds := cfg.RunSeeds()
	results := make([]*Result, len(seeds))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, seed := range seeds {
		eg.Go(func() error {
			res, err := r.run(egCtx, cfg.WithSeed(seed))
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
