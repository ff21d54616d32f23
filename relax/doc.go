// Package relax is the relaxation-contract abstraction of the
// frontier kernel (spec.md §4.C4): the per-edge (u, v) decision a
// traversal algorithm supplies to the edge-traversal operator in
// package traverse.
//
// A Relaxation[W] is a triple of functions:
//
//   - Cond(v) reports whether v is still a candidate for relaxation
//     (e.g. "not yet visited"). traverse skips edges whose target
//     fails Cond before even evaluating Update, so Cond should be
//     cheap and side-effect free.
//   - Update(u, v, w) applies a relaxation that the caller has
//     already serialized (used only in traverse's dense-pull mode,
//     where a single goroutine owns v for the whole call).
//   - UpdateAtomic(u, v, w) applies a relaxation that may race with
//     other goroutines targeting the same v concurrently (used in
//     traverse's sparse-push mode). Implementations must use the
//     parallel package's CAS/WriteMin/WriteMax helpers rather than a
//     plain read-modify-write.
//
// Both Update and UpdateAtomic return true exactly when the call
// caused v to newly satisfy Cond's negation for the first time this
// superstep (i.e. v should be emitted into the output vertex-subset).
// This mirrors GBBS's EdgeMap_F convention (gbbs/edge_map_data.h).
//
// Sugar: Symmetric assembles a Relaxation from separate cond, update
// and updateAtomic functions, and All does the same with an always-true
// Cond; neither derives the atomic variant from the non-atomic one, so
// callers whose two variants coincide except for atomicity (the common
// case — BFS, unweighted connectivity, thresholded reachability) still
// pass both. Counting adapts a Relaxation into one
// that also keeps a running total of successful updates, for callers
// that want a plain aggregate count alongside the traversal's usual
// output subset — it is not what traverse.NghCount uses, since that
// operator needs a per-destination histogram, not a flat scalar total.
package relax
