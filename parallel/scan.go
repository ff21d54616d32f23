package parallel

import "golang.org/x/exp/constraints"

// ScanAdd computes the exclusive prefix sum of in into out (which must
// have the same length as in, or ScanAdd aborts) and returns the total
// sum of in. This is the scan_add primitive named in spec.md §4.C1 and
// §6, used by PackIndex and by the bucket structure's update_buckets
// offset table.
//
// Implementation is the standard two-pass work-efficient parallel scan:
// a first pass reduces contiguous chunks to per-chunk totals, a
// sequential pass turns those totals into per-chunk starting offsets
// (the number of chunks is always small relative to n), and a second
// parallel pass writes out[i] = chunk offset + in-chunk exclusive scan.
func ScanAdd[T constraints.Integer](in []T, out []T, opts ...Option) T {
	if len(in) != len(out) {
		Abort("parallel: ScanAdd requires len(in) == len(out), got %d and %d", len(in), len(out))
	}
	n := len(in)
	if n == 0 {
		return 0
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

	totals := make([]T, len(bounds))
	ParallelFor(0, len(bounds), func(c int) {
		s, e := bounds[c][0], bounds[c][1]
		var sum T
		for i := s; i < e; i++ {
			sum += in[i]
		}
		totals[c] = sum
	}, WithGrain(1), WithWorkers(cfg.workers))

	offsets := make([]T, len(bounds))
	var running T
	for c := range bounds {
		offsets[c] = running
		running += totals[c]
	}

	ParallelFor(0, len(bounds), func(c int) {
		s, e := bounds[c][0], bounds[c][1]
		acc := offsets[c]
		for i := s; i < e; i++ {
			out[i] = acc
			acc += in[i]
		}
	}, WithGrain(1), WithWorkers(cfg.workers))

	return running
}
