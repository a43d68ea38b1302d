package fibsearch

import (
	"cmp"
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// SearchBatch looks up every value in the ascending slice s concurrently.
//
// results[j] is the index of values[j] in s, or NotFound. Lookups are bounded by
// the engine's concurrency and rate limits. If e is nil, the default engine is used.
func SearchBatch[S ~[]E, E cmp.Ordered](ctx context.Context, e *Engine, s S, values []E) ([]int, error) {
	if e == nil {
		e = defaultEngine
	}
	return e.FindBatch(ctx, len(s), len(values), func(j int) func(i int) int {
		return Comparator(s, values[j])
	})
}

// FindBatch runs count searches over the indices [0, n). cmpFor(j) returns
// the comparison callback of the j-th search, as taken by Find.
//
// It returns the first error from ctx; partial results are discarded.
func (e *Engine) FindBatch(ctx context.Context, n, count int, cmpFor func(j int) func(i int) int) ([]int, error) {
	start := time.Now()
	results := make([]int, count)

	g, gctx := errgroup.WithContext(ctx)

	var acquireErr error
	for j := range count {
		if err := e.rc.Acquire(gctx); err != nil {
			acquireErr = err
			break
		}

		g.Go(func() error {
			defer e.rc.Release()

			if err := gctx.Err(); err != nil {
				return err
			}

			t0 := time.Now()
			idx, probes := e.find(n, cmpFor(j), nil)
			e.metrics.RecordSearch(n, probes, idx != NotFound, time.Since(t0))
			results[j] = idx

			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = acquireErr
	}

	e.metrics.RecordBatchSearch(count, time.Since(start), err)
	e.logger.LogBatchSearch(ctx, count, err)

	if err != nil {
		return nil, err
	}
	return results, nil
}
