// Package subset is the vertex-subset abstraction of the frontier
// kernel (spec.md §4.C3): a set of vertex identifiers drawn from
// [0, n), with an optional per-vertex payload P (P may be the empty
// struct{} when no payload is needed), represented either sparsely (an
// ordered, duplicate-free slice of ids) or densely (a length-n
// presence bitmap). Both representations always expose the same
// logical set; ToSparse/ToDense convert between them in place and are
// idempotent.
//
// Ownership: a VertexSubset exclusively owns its backing slices.
// Producing a new subset from the edge-traversal operator transfers
// ownership to the caller — subsets are moved, not copied, between
// supersteps (spec.md §3, "Lifecycles").
//
// Complexity: Size/IsEmpty/IsDense are O(1). ToSparse/ToDense are
// O(n) amortized via the parallel package's PackIndex/ParallelFor.
// OutWork is O(size) on first call (parallel reduction), O(1) after.
package subset
