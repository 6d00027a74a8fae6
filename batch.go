package rankgo

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/rankgo/model"
)

// BatchOptions contains configuration options for batch retrieval.
type BatchOptions struct {
	// MaxConcurrency bounds the number of queries in flight.
	// Defaults to GOMAXPROCS.
	MaxConcurrency int

	// RateLimiter caps the query rate. Nil means unlimited.
	RateLimiter *rate.Limiter

	// Logger configures structured logging for the batch run.
	Logger *Logger
}

// BatchRetrieve runs the queries against the retriever in parallel and
// returns one ranked result list per query, in query order.
//
// Queries are read-only, so parallel execution does not affect the ordering
// guarantees of the individual result lists. The batch fails as a whole on
// the first query error (failures are all-or-nothing).
func BatchRetrieve(ctx context.Context, r Retriever, queries []Query, k int, optFns ...func(o *BatchOptions)) ([][]model.Result, error) {
	opts := BatchOptions{
		MaxConcurrency: runtime.GOMAXPROCS(0),
		Logger:         NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = 1
	}

	if len(queries) == 0 {
		return nil, fmt.Errorf("%w: no queries", model.ErrEmptyInput)
	}

	logger := opts.Logger.WithStrategy(r.Strategy()).WithK(k)
	logger.Debug("batch retrieve started",
		"queries", len(queries),
		"max_concurrency", opts.MaxConcurrency,
	)

	results := make([][]model.Result, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.MaxConcurrency)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if opts.RateLimiter != nil {
				if err := opts.RateLimiter.Wait(ctx); err != nil {
					return err
				}
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			ranked, err := r.Retrieve(q, k)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = ranked
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("batch retrieve finished", "queries", len(queries))

	return results, nil
}
