// Package bucket is the priority-bucket structure of the frontier
// kernel (spec.md §4.C6): a dynamic mapping from vertex identifiers to
// integer priority buckets, materializing only a fixed window of
// "open" buckets plus one overflow bucket, and releasing buckets to
// the caller one at a time in priority order via NextBucket.
//
// This is the Go counterpart of Julienne's bucketing structure
// (src/bucket.h, SPAA'17): very few buckets are ever opened in
// practice even though a vertex's priority can range over the whole
// identifier space, so only totalBuckets-1 buckets are materialized
// at once ("open"); everything outside the current window lands in
// the overflow bucket (index totalBuckets-1) until the window slides
// far enough to cover it (unpack).
//
// UpdateBuckets is the structure's single batch-mutation entry point:
// callers supply a slice of (vertex, new global bucket) pairs — the
// natural output of an algorithm's per-superstep priority recompute —
// and UpdateBuckets range-maps each into the current open window (or
// into the overflow bucket, or drops it if it addresses a bucket the
// window has already passed) and inserts it. The insertion itself is
// parallelized with a histogram-then-scatter protocol: a per-block
// local histogram pass, a prefix sum over per-bucket block totals
// (via the parallel package's ScanAdd) to derive each block's write
// offset into its destination bucket, then a parallel scatter pass.
// The per-(bucket, block) offset counters live in a cache-line-padded
// table so that two blocks scattering into adjacent buckets don't
// false-share a line while incrementing their own offset counter
// (spec.md §4.C6).
//
// Corruption detection: before reinserting the overflow bucket's
// contents, unpack asserts that the overflow bucket holds every
// element the structure still tracks (all open buckets have been
// drained by then); a mismatch means the bucket structure's
// element-count invariant has been violated by caller misuse
// (aliased priority function mutated concurrently, a stale Update)
// and aborts the process (spec.md §7), matching bucket.h's own
// "corruption in bucket structure" assertion.
package bucket
