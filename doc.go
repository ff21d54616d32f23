// Package frontier is a parallel graph-algorithms engine for very large
// static graphs on a single shared-memory multicore machine.
//
// What is frontier?
//
//	A frontier-parallel traversal kernel: the data structures and protocols
//	that let algorithms phrase one superstep of a graph computation as
//	"given an active set of vertices, apply a user-defined relaxation to
//	every edge out of (or into) that set, optionally emitting a new active
//	set with per-vertex side-data."
//
// The kernel is organized into six packages, leaves first:
//
//	parallel/  — bulk parallel-for, scan, reduce, filter, histogram, atomics
//	graph/     — read-only graph view (degrees, neighbor iterators)
//	subset/    — sparse/dense vertex-subset with optional per-vertex payload
//	relax/     — the (cond, update, updateAtomic) relaxation contract
//	traverse/  — the edge-traversal operator (EdgeMap / NghCount / VertexMap)
//	bucket/    — the priority-bucket structure for priority-driven algorithms
//
// A typical algorithm constructs an initial vertex-subset over a graph
// view, and repeatedly calls traverse.EdgeMap with a relaxation to obtain
// the next active set, until the active set is empty:
//
//	g, err := graph.NewSymmetricView[struct{}](n, offsets, edges, nil)
//	visited := make([]uint32, n)
//	parents := make([]graph.Vid, n)
//	visited[src] = 1
//
//	frontier := subset.Singleton[struct{}](n, src, struct{}{})
//	for !frontier.IsEmpty() {
//		frontier = traverse.EdgeMap(g, frontier, bfsRelaxation(visited, parents))
//	}
//
// Graph ingestion, compressed adjacency-list encoding, specific
// algorithms built on the core (BFS, connected components,
// biconnectivity, HAC, k-core), command-line drivers, file I/O, and
// timing/telemetry are external collaborators, not part of this module.
package frontier
