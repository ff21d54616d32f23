package parallel

// PackIndex returns, in ascending order, every index i for which
// flags[i] is true. It is the pack_index primitive of spec.md §4.C1 and
// §6: the vertex-subset's dense-to-sparse conversion (subset's
// ToSparse) uses it to compact a per-vertex boolean presence array into
// a sparse member list, without holding a shared lock (spec.md §5,
// "Shared resources").
//
// Implementation: compute an exclusive prefix sum over the flags (as
// 0/1) to get each true index's output position, then scatter in
// parallel.
func PackIndex(flags []bool, opts ...Option) []int {
	n := len(flags)
	if n == 0 {
		return nil
	}

	ones := make([]int, n)
	for i, f := range flags {
		if f {
			ones[i] = 1
		}
	}
	offsets := make([]int, n)
	total := ScanAdd(ones, offsets, opts...)
	if total == 0 {
		return nil
	}

	out := make([]int, total)
	ParallelFor(0, n, func(i int) {
		if flags[i] {
			out[offsets[i]] = i
		}
	}, opts...)
	return out
}

// Filter returns the subsequence of items for which pred holds, in the
// original relative order. Built on PackIndex so it shares the same
// work-efficient compaction strategy.
func Filter[T any](items []T, pred func(T) bool, opts ...Option) []T {
	if pred == nil {
		Abort("parallel: Filter requires a non-nil predicate")
	}
	n := len(items)
	if n == 0 {
		return nil
	}
	flags := make([]bool, n)
	ParallelFor(0, n, func(i int) {
		flags[i] = pred(items[i])
	}, opts...)
	idx := PackIndex(flags, opts...)
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}
