package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// ParallelFor applies body to every index in [lo, hi) and returns only
// once every invocation has completed (a barrier, per spec.md §5).
// body must behave equivalently whether called from this goroutine or
// another; ParallelFor makes no ordering promise among indices.
//
// The range is split into ceil(n/grain) contiguous chunks, capped at
// Workers() chunks (grain defaults to DefaultGrain, see WithGrain; the
// worker bound can be overridden with WithWorkers), so a chunk may hold
// fewer than grain indices. A range of at most grain indices, or a
// substrate bounded to a single worker, runs
// sequentially in the calling goroutine — this keeps ParallelFor a
// drop-in replacement for a sequential for-loop when the body happens
// to be data-race-free, per spec.md §4.C1.
func ParallelFor(lo, hi int, body func(i int), opts ...Option) {
	if body == nil {
		Abort("parallel: ParallelFor requires a non-nil body")
	}
	if hi < lo {
		Abort("parallel: ParallelFor requires hi >= lo, got lo=%d hi=%d", lo, hi)
	}
	if hi == lo {
		return
	}

	cfg := resolve(opts)
	n := hi - lo
	if cfg.workers <= 1 || n <= cfg.grain {
		logger.Debug().Int("n", n).Int("grain", cfg.grain).Int("workers", cfg.workers).Msg("parallel: ParallelFor running sequentially")
		for i := lo; i < hi; i++ {
			body(i)
		}
		return
	}

	numChunks := n / cfg.grain
	if n%cfg.grain != 0 {
		numChunks++
	}
	if numChunks > cfg.workers {
		numChunks = cfg.workers
	}
	if numChunks < 1 {
		numChunks = 1
	}
	chunkSize := (n + numChunks - 1) / numChunks

	sem := semaphore.NewWeighted(int64(cfg.workers))
	g, ctx := errgroup.WithContext(context.Background())
	for start := lo; start < hi; start += chunkSize {
		end := start + chunkSize
		if end > hi {
			end = hi
		}
		s, e := start, end
		if err := sem.Acquire(ctx, 1); err != nil {
			// Only cancellation from an earlier panic-free error path can
			// reach here; ParallelFor's body never returns an error, so
			// this is unreachable in practice but kept to be honest about
			// ctx-based cancellation semantics.
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			for i := s; i < e; i++ {
				body(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}
