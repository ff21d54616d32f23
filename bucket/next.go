package bucket

import (
	"github.com/katalvlaran/frontier/graph"
	"github.com/katalvlaran/frontier/parallel"
)

// NextBucket returns the next non-empty bucket in priority order,
// unpacking the overflow bucket and sliding the open window forward
// as many times as needed. Once every identifier has been drained,
// NextBucket returns Bucket{ID: NullBucket} on every subsequent call
// (spec.md §4.C6, "monotone next_bucket() extraction").
func (b *Buckets) NextBucket() Bucket {
	for !b.curBucketNonEmpty() && b.numElms > 0 {
		b.advance()
	}
	if b.numElms == 0 {
		return Bucket{ID: NullBucket}
	}
	return b.getCurBucket()
}

func (b *Buckets) curBucketNonEmpty() bool {
	return len(b.bkts[b.curBkt]) > 0
}

// advance moves to the next open bucket, unpacking the overflow
// bucket and sliding the window once the open range is exhausted.
func (b *Buckets) advance() {
	b.curBkt++
	if b.curBkt == b.openBuckets {
		b.unpack()
		b.curBkt = 0
	}
}

// unpack drains the overflow bucket, slides the priority window one
// step further, and reinserts every drained identifier under its
// current (possibly stale) priority.
func (b *Buckets) unpack() {
	overflow := b.bkts[b.openBuckets]
	m := len(overflow)
	tmp := make([]graph.Vid, m)
	copy(tmp, overflow)
	b.bkts[b.openBuckets] = b.bkts[b.openBuckets][:0]

	if b.order == Increasing {
		b.curRange++
	} else {
		b.curRange--
	}
	logger.Debug().Int64("curRange", b.curRange).Int("overflowSize", m).Msg("bucket: sliding open window")

	if m != b.numElms {
		Abort("corruption: overflow bucket held %d elements but numElms=%d", m, b.numElms)
	}

	updates := make([]Update, m)
	parallel.ParallelFor(0, m, func(i int) {
		v := tmp[i]
		updates[i] = Update{Vid: v, Bkt: b.priority(v)}
	})
	b.UpdateBuckets(updates)
	b.numElms -= m
}

// getCurBucket filters the current open bucket's backing slice down
// to the identifiers whose priority still matches this bucket's
// global id — earlier insertions become stale once an identifier's
// priority is updated without an explicit removal — and drains it. A
// bucket that filters down to nothing is skipped in favor of the next
// one.
func (b *Buckets) getCurBucket() Bucket {
	members := b.bkts[b.curBkt]
	size := len(members)
	b.numElms -= size
	curNum := ID(b.curBucketNum())

	kept := parallel.Filter(members, func(v graph.Vid) bool {
		return b.priority(v) == curNum
	})
	b.bkts[b.curBkt] = b.bkts[b.curBkt][:0]

	if len(kept) == 0 {
		return b.NextBucket()
	}
	return Bucket{ID: curNum, Members: kept}
}
