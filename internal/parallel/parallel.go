// Package parallel runs data-parallel loops over index ranges.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// chunksPerWorker oversubscribes the range so uneven chunks still balance
// across workers.
const chunksPerWorker = 4

// For splits [0,n) into contiguous chunks and invokes fn(begin, end) for
// each, running at most workers chunks at a time. workers <= 0 means
// GOMAXPROCS. The chunk geometry is unspecified; fn must accept any
// disjoint covering split.
//
// The context is checked between chunks only, never inside fn. A canceled
// context leaves the overall work partially done.
func For(ctx context.Context, n, workers int, fn func(begin, end int)) error {
	if n <= 0 {
		return ctx.Err()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(0, n)
		return nil
	}

	grain := n / (workers * chunksPerWorker)
	if grain < 1 {
		grain = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for begin := 0; begin < n; begin += grain {
		begin := begin // per-iteration copy: the closure must not share the loop variable under go <= 1.21
		end := begin + grain
		if end > n {
			end = n
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(begin, end)
			return nil
		})
	}
	return g.Wait()
}
