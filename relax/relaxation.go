package relax

import "github.com/katalvlaran/frontier/graph"

// Relaxation is the per-edge decision supplied to traverse.EdgeMap
// and its variants. W is the edge-weight type carried by the
// graph.View being traversed (use struct{} for unweighted graphs).
type Relaxation[W any] struct {
	// Cond reports whether v is still a live candidate. Called before
	// Update/UpdateAtomic on every candidate edge; must not mutate
	// algorithm state.
	Cond func(v graph.Vid) bool

	// Update applies the relaxation for edge (u, v, w) when the
	// caller guarantees exclusive access to v's state for the
	// duration of the call. Returns true iff v should be emitted.
	Update func(u, v graph.Vid, w W) bool

	// UpdateAtomic applies the relaxation for edge (u, v, w) when
	// concurrent goroutines may call it for the same v simultaneously.
	// Returns true iff this particular call is the one that caused v
	// to be emitted (at-most-once emission, spec.md §4.C5).
	UpdateAtomic func(u, v graph.Vid, w W) bool
}

// Symmetric builds a Relaxation whose Update and UpdateAtomic bodies
// are identical except for atomicity, from a single pair of
// functions. update is used verbatim for the non-atomic path;
// updateAtomic must perform the equivalent mutation using the
// parallel package's atomic helpers. This is the common shape for
// algorithms like BFS where the "mutation" is a single CAS.
func Symmetric[W any](cond func(graph.Vid) bool, update func(u, v graph.Vid, w W) bool, updateAtomic func(u, v graph.Vid, w W) bool) Relaxation[W] {
	return Relaxation[W]{Cond: cond, Update: update, UpdateAtomic: updateAtomic}
}

// All builds a Relaxation with no Cond filter — every edge is a
// candidate. Useful for algorithms that fold the "already settled"
// check into Update/UpdateAtomic itself (e.g. a weighted relaxation
// that compares against the current best distance inline).
func All[W any](update func(u, v graph.Vid, w W) bool, updateAtomic func(u, v graph.Vid, w W) bool) Relaxation[W] {
	return Relaxation[W]{
		Cond:         func(graph.Vid) bool { return true },
		Update:       update,
		UpdateAtomic: updateAtomic,
	}
}
