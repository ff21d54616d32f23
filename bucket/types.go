package bucket

import "github.com/katalvlaran/frontier/graph"

// ID is a bucket identifier. It is the same width as graph.Vid so a
// bucket structure can be built over a priority derived from vertex
// ids without a narrowing conversion.
type ID = uint32

// NullBucket marks "not currently in any bucket" — the identifier
// either hasn't been assigned a priority yet or has been permanently
// retired (e.g. already finalized by the algorithm driving this
// structure).
const NullBucket ID = ^ID(0)

// Order selects whether NextBucket releases buckets in increasing or
// decreasing priority order.
type Order int

const (
	Increasing Order = iota
	Decreasing
)

// Priority maps a vertex identifier to its current global bucket. It
// must be safe to call concurrently from multiple goroutines (the
// structure calls it during parallel scans), and must be a pure
// function of the algorithm's own state at the time of the call.
type Priority func(v graph.Vid) ID

// Update is a single (identifier, new global bucket) pair, the unit
// UpdateBuckets consumes. An Update with Bkt == NullBucket inserts
// nothing and does not touch an entry Vid already has; that entry is
// dropped when its bucket is read and Priority no longer returns that
// bucket for Vid.
type Update struct {
	Vid graph.Vid
	Bkt ID
}

// Bucket is a single materialized, non-empty bucket handed back by
// NextBucket: its global id and the members currently assigned to it.
type Bucket struct {
	ID      ID
	Members []graph.Vid
}
