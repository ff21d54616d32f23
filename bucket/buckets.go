package bucket

import (
	"github.com/katalvlaran/frontier/graph"
	"github.com/katalvlaran/frontier/parallel"
)

// Buckets is a dynamic identifier-to-bucket mapping materializing a
// fixed window of open buckets plus one overflow bucket (spec.md
// §4.C6). The zero value is not usable; construct with Make.
type Buckets struct {
	n            int
	priority     Priority
	order        Order
	openBuckets  int // totalBuckets - 1; bkts[openBuckets] is the overflow bucket
	totalBuckets int
	curBkt       int
	curRange     int64
	numElms      int
	bkts         [][]graph.Vid
}

// DefaultTotalBuckets matches Julienne's default -nb parameter.
const DefaultTotalBuckets = 128

// Make builds a bucket structure over n identifiers [0, n), whose
// initial bucket assignment is priority(i) for every i. totalBuckets
// bounds how many distinct buckets are materialized at once; pass
// DefaultTotalBuckets absent a reason to tune it.
func Make(n int, priority Priority, order Order, totalBuckets int) *Buckets {
	if n <= 0 {
		Abort("n must be > 0, got %d", n)
	}
	if priority == nil {
		Abort("priority function must not be nil")
	}
	if totalBuckets < 2 {
		Abort("totalBuckets must be >= 2, got %d", totalBuckets)
	}

	b := &Buckets{
		n:            n,
		priority:     priority,
		order:        order,
		openBuckets:  totalBuckets - 1,
		totalBuckets: totalBuckets,
		bkts:         make([][]graph.Vid, totalBuckets),
	}
	b.curRange = b.initialRange()

	initial := make([]Update, n)
	parallel.ParallelFor(0, n, func(i int) {
		initial[i] = Update{Vid: graph.Vid(i), Bkt: priority(graph.Vid(i))}
	})
	b.UpdateBuckets(initial)
	return b
}

func (b *Buckets) initialRange() int64 {
	n := b.n
	vals := make([]uint32, n)
	if b.order == Increasing {
		parallel.ParallelFor(0, n, func(i int) { vals[i] = b.priority(graph.Vid(i)) })
		m := parallel.Reduce(vals, parallel.Monoid[uint32]{
			Identity: NullBucket,
			Combine: func(a, c uint32) uint32 {
				if a < c {
					return a
				}
				return c
			},
		})
		return int64(m) / int64(b.openBuckets)
	}

	parallel.ParallelFor(0, n, func(i int) {
		p := b.priority(graph.Vid(i))
		if p == NullBucket {
			p = 0
		}
		vals[i] = p
	})
	m := parallel.Reduce(vals, parallel.Monoid[uint32]{
		Identity: 0,
		Combine: func(a, c uint32) uint32 {
			if a > c {
				return a
			}
			return c
		},
	})
	return (int64(m) + int64(b.openBuckets)) / int64(b.openBuckets)
}

// N returns the identifier-space size this structure was built over.
func (b *Buckets) N() int { return b.n }

// NumElements returns the number of entries currently held in the open
// and overflow buckets. An identifier relocated by UpdateBuckets is
// counted once per entry until its stale entries are read and dropped.
func (b *Buckets) NumElements() int { return b.numElms }

// toRange maps a global bucket id into the current open window:
// NullBucket if it addresses a bucket the window has already passed,
// an index in [0, openBuckets) if it falls in the current window, or
// openBuckets (the overflow index) if it falls beyond the window.
func (b *Buckets) toRange(bkt ID) ID {
	if bkt == NullBucket {
		return NullBucket
	}
	ob := int64(b.openBuckets)
	if b.order == Increasing {
		if int64(bkt) < b.curRange*ob {
			return NullBucket
		}
		if int64(bkt) < (b.curRange+1)*ob {
			return ID(int64(bkt) % ob)
		}
		return ID(b.openBuckets)
	}
	if int64(bkt) >= b.curRange*ob {
		return NullBucket
	}
	if int64(bkt) >= (b.curRange-1)*ob {
		return ID((ob - int64(bkt)%ob) - 1)
	}
	return ID(b.openBuckets)
}

// curBucketNum returns the current open bucket's global id.
func (b *Buckets) curBucketNum() int64 {
	ob := int64(b.openBuckets)
	if b.order == Increasing {
		return b.curRange*ob + int64(b.curBkt)
	}
	return b.curRange*ob - int64(b.curBkt) - 1
}

// GetBucket computes the range-mapped bucket destination for an
// identifier moving from global bucket prev to global bucket next,
// mirroring bucket.h's get_bucket: used by callers that want to
// reason about bucket destinations without going through
// UpdateBuckets directly.
func (b *Buckets) GetBucket(prev, next ID) ID {
	pb := b.toRange(prev)
	nb := b.toRange(next)
	if nb != NullBucket && (prev == NullBucket || pb != nb || int(nb) == b.curBkt) {
		return nb
	}
	return NullBucket
}
