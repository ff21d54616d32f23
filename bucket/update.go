package bucket

import (
	"github.com/katalvlaran/frontier/graph"
	"github.com/katalvlaran/frontier/parallel"
)

// cacheLinePad is the stride, in int64 slots, between two adjacent
// per-(bucket, block) write-offset counters in the scatter pass's
// offset table. 8 int64s is 64 bytes — one cache line — so two
// neighboring blocks incrementing their own counter for the same
// bucket never invalidate each other's line (spec.md §4.C6).
const cacheLinePad = 8

// seqThreshold is the batch size below which UpdateBuckets falls back
// to a plain sequential insertion loop: below this size the
// histogram/scatter machinery's fixed overhead dominates its
// parallelism gains (mirrors bucket.h's kSequentialForThreshold gate).
const seqThreshold = 2000

// UpdateBuckets inserts every (Vid, Bkt) pair in updates, where Bkt
// is a global bucket id from the algorithm's priority space. Pairs
// whose Bkt is NullBucket, or addresses a bucket the window has
// already passed, are skipped. Inserting an identifier that already
// has an entry leaves the old entry in place; it is filtered out when
// its bucket is read. Returns the net change in NumElements(). This is
// the structure's one batch mutation entry point (spec.md §4.C6).
func (b *Buckets) UpdateBuckets(updates []Update) int {
	if len(updates) == 0 {
		return 0
	}
	if len(updates) < seqThreshold || parallel.Workers() == 1 {
		return b.updateBucketsSeq(updates)
	}
	return b.updateBucketsParallel(updates)
}

func (b *Buckets) updateBucketsSeq(updates []Update) int {
	before := b.numElms
	for _, u := range updates {
		bkt := b.toRange(u.Bkt)
		if bkt == NullBucket {
			continue
		}
		b.bkts[bkt] = append(b.bkts[bkt], u.Vid)
		b.numElms++
	}
	return b.numElms - before
}

func (b *Buckets) updateBucketsParallel(updates []Update) int {
	before := b.numElms
	k := len(updates)
	totalBuckets := b.totalBuckets

	// spec.md §4.C6 rounds this block count to a power of two; kept as
	// a plain quotient here since parallel.ScanAdd and ParallelFor have
	// no power-of-two requirement on their span, and a non-power-of-two
	// block count does not affect the correctness of the histogram,
	// prefix sum, or scatter passes below — only their load balance.
	numBlocks := k / 2000
	if numBlocks < 1 {
		numBlocks = 1
	}
	if w := parallel.Workers(); numBlocks > w {
		numBlocks = w
	}
	blockSize := (k + numBlocks - 1) / numBlocks

	localBkt := make([]ID, k)
	parallel.ParallelFor(0, k, func(i int) {
		localBkt[i] = b.toRange(updates[i].Bkt)
	})

	// 1. Per-block local histograms.
	hist := make([]int64, numBlocks*totalBuckets)
	parallel.ParallelFor(0, numBlocks, func(blk int) {
		s, e := blockRange(blk, blockSize, k)
		row := hist[blk*totalBuckets : (blk+1)*totalBuckets]
		for j := s; j < e; j++ {
			if bkt := localBkt[j]; bkt != NullBucket {
				row[bkt]++
			}
		}
	})

	// 2. Transpose into bucket-major order and exclusive-scan the
	// whole table in one pass: the scan's running total crossing a
	// bucket boundary is exactly the cumulative count of all items
	// destined for the buckets seen so far.
	transposed := make([]int64, numBlocks*totalBuckets)
	parallel.ParallelFor(0, totalBuckets, func(bktIdx int) {
		for blk := 0; blk < numBlocks; blk++ {
			transposed[bktIdx*numBlocks+blk] = hist[blk*totalBuckets+bktIdx]
		}
	})
	outs := make([]int64, numBlocks*totalBuckets+1)
	total := parallel.ScanAdd(transposed, outs[:numBlocks*totalBuckets])
	outs[numBlocks*totalBuckets] = total

	// 3. Grow each bucket's backing slice by its new-insertion count.
	oldSize := make([]int, totalBuckets)
	for i := 0; i < totalBuckets; i++ {
		start := outs[i*numBlocks]
		end := outs[(i+1)*numBlocks]
		inc := int(end - start)
		oldSize[i] = len(b.bkts[i])
		if inc > 0 {
			b.bkts[i] = append(b.bkts[i], make([]graph.Vid, inc)...)
		}
		b.numElms += inc
	}

	// 4. Per-(bucket, block) write-pointer table.
	offsets := make([]int64, totalBuckets*numBlocks*cacheLinePad)
	parallel.ParallelFor(0, totalBuckets, func(i int) {
		start := outs[i*numBlocks]
		for j := 0; j < numBlocks; j++ {
			offsets[(i*numBlocks+j)*cacheLinePad] = outs[i*numBlocks+j] - start
		}
	})

	// 5. Scatter: each block writes its own members into its bucket's
	// reserved range, advancing only its own offset cell.
	parallel.ParallelFor(0, numBlocks, func(blk int) {
		s, e := blockRange(blk, blockSize, k)
		for j := s; j < e; j++ {
			bkt := localBkt[j]
			if bkt == NullBucket {
				continue
			}
			cell := (int(bkt)*numBlocks + blk) * cacheLinePad
			ind := offsets[cell]
			b.bkts[bkt][oldSize[bkt]+int(ind)] = updates[j].Vid
			offsets[cell]++
		}
	})

	return b.numElms - before
}

func blockRange(blk, blockSize, k int) (int, int) {
	s := blk * blockSize
	if s > k {
		s = k
	}
	e := s + blockSize
	if e > k {
		e = k
	}
	return s, e
}
