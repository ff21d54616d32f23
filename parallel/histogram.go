package parallel

import "golang.org/x/exp/constraints"

// Histogram counts, for each key in keys, how many times it falls into
// bucket key (keys must already be in [0, numBuckets); out-of-range
// keys abort). It is the general-purpose histogram primitive of
// spec.md §4.C1; bucket.Buckets builds its own per-block histograms
// for its update_buckets protocol and combines them with ScanAdd
// instead of a sequential merge, because that call site also needs the
// per-block partial offsets, not just the final counts — see
// bucket/update.go.
func Histogram[T constraints.Integer](keys []T, numBuckets int, opts ...Option) []int {
	if numBuckets <= 0 {
		Abort("parallel: Histogram requires numBuckets > 0, got %d", numBuckets)
	}
	n := len(keys)
	counts := make([]int, numBuckets)
	if n == 0 {
		return counts
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

	local := make([][]int, len(bounds))
	ParallelFor(0, len(bounds), func(c int) {
		s, e := bounds[c][0], bounds[c][1]
		h := make([]int, numBuckets)
		for i := s; i < e; i++ {
			b := int(keys[i])
			if b < 0 || b >= numBuckets {
				Abort("parallel: Histogram key %d out of range [0,%d)", b, numBuckets)
			}
			h[b]++
		}
		local[c] = h
	}, WithGrain(1), WithWorkers(cfg.workers))

	for _, h := range local {
		for b, v := range h {
			counts[b] += v
		}
	}
	return counts
}
