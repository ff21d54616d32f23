// Package traverse is the edge-traversal operator of the frontier
// kernel (spec.md §4.C5): the barrier-synchronous primitive that
// applies a relax.Relaxation across every edge leaving (or, with
// InEdges, entering) a subset.VertexSubset frontier, producing the
// next frontier.
//
// EdgeMapData chooses between three execution modes on every call,
// mirroring gbbs/edge_map_data.h's edgeMapData:
//
//   - Sparse (push): each frontier member iterates its own out-edges
//     (or in-edges with InEdges) and relaxes each neighbor with
//     Relaxation.UpdateAtomic, since many source vertices may target
//     the same destination concurrently. Used when the frontier is
//     small or its total out-work is low.
//   - Dense (pull): every vertex in the graph for which Cond holds
//     scans its in-edges (or out-edges with InEdges) looking for a
//     frontier member, using graph.DecodeBreakEarly with
//     Relaxation.Update (serialized per destination, since one
//     goroutine owns the whole scan for a given vertex; with
//     DenseParallel the scan is parallel and uses UpdateAtomic). Used
//     when the frontier's size plus its cumulative out-work exceeds the
//     dense threshold, by default one twentieth of the edge count (see
//     WithThreshold).
//   - DenseForward (push while iterating every vertex, not just the
//     frontier's own array) is a push pass whose driving loop walks
//     every vertex id looking up membership, rather than the
//     frontier's compacted sparse array; selected instead of Dense
//     when the DenseForward flag is set. It pays for an O(n) presence
//     scan but keeps the push access pattern when that is cheaper for
//     the caller's graph layout.
//
// The mode choice is itself deterministic and has no externally
// visible intermediate state: EdgeMapData blocks until the whole pass
// has quiesced (spec.md §3, "Bulk-synchronous / barrier concurrency
// model") before returning the next subset.
//
// EdgeMap is EdgeMapData's no-payload sugar (payload type struct{}).
// NghCount is spec.md §4.C5's count-reducing variant: it histograms,
// per destination, how many active sources relaxed an edge into it
// this superstep, then calls an apply callback once per affected
// destination to build the next subset (gbbs/KCore.h's nghCount).
// VertexMap is spec.md §6's vertex_map: it applies a function to every
// member of a subset in parallel, letting it mutate that member's
// payload in place without dropping or reordering members. Filter is
// a plain predicate-driven subset filter, independent of any edge.
package traverse
