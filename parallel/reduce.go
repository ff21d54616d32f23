package parallel

// Monoid combines two values of T and supplies the identity element.
// Reduce requires Combine to be associative; it may apply Combine in
// any order across chunks.
type Monoid[T any] struct {
	Identity T
	Combine  func(a, b T) T
}

// Reduce folds items using the given monoid, in parallel across
// chunks and sequentially within a chunk, then sequentially combines
// the per-chunk partials. Equivalent to a sequential fold when Combine
// is associative, per spec.md §4.C1.
func Reduce[T any](items []T, m Monoid[T], opts ...Option) T {
	if m.Combine == nil {
		Abort("parallel: Reduce requires a non-nil Combine function")
	}
	n := len(items)
	if n == 0 {
		return m.Identity
	}

	cfg := resolve(opts)
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

	bounds := make([][2]int, 0, numChunks)
	for s := 0; s < n; s += chunkSize {
		e := s + chunkSize
		if e > n {
			e = n
		}
		bounds = append(bounds, [2]int{s, e})
	}

	partials := make([]T, len(bounds))
	ParallelFor(0, len(bounds), func(c int) {
		s, e := bounds[c][0], bounds[c][1]
		acc := m.Identity
		for i := s; i < e; i++ {
			acc = m.Combine(acc, items[i])
		}
		partials[c] = acc
	}, WithGrain(1), WithWorkers(cfg.workers))

	result := m.Identity
	for _, p := range partials {
		result = m.Combine(result, p)
	}
	return result
}

// SumInt64 is the additive monoid over int64, the common case for
// reducing out-degrees and other edge counts.
func SumInt64() Monoid[int64] {
	return Monoid[int64]{Identity: 0, Combine: func(a, b int64) int64 { return a + b }}
}
