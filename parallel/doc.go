// Package parallel is the bulk-synchronous primitives substrate the rest
// of the frontier kernel is built on: a cooperative, work-stealing
// parallel-for, the sequence operations (scan, reduce, filter, pack,
// histogram) algorithm authors compose supersteps out of, and the
// atomic CAS / fetch-add / write-min / write-max primitives that let
// otherwise racy data-parallel loops stay deterministic in outcome.
//
// Every operation in this package is a barrier: it returns only once
// every task it spawned has completed, so callers never observe a
// partially-quiesced state (see spec.md §5, "Scheduling model").
//
// Complexity: ParallelFor, Reduce, Filter and Histogram are all
// O(n/P + grain) span with P workers; Scan is two-pass work-efficient
// prefix sum, O(n/P) span.
//
// Errors: there are no recoverable error returns here. A caller that
// violates a precondition (grain <= 0, nil body) gets a panic, in
// keeping with spec.md §7's "preconditions violated → abort" model;
// see Abort and FatalError.
package parallel
