package traverse

import (
	"sync"

	"github.com/katalvlaran/frontier/graph"
	"github.com/katalvlaran/frontier/parallel"
	"github.com/katalvlaran/frontier/relax"
	"github.com/katalvlaran/frontier/subset"
)

// EdgeMap is EdgeMapData's no-payload sugar: the output subset's
// payload is always the empty struct, for algorithms (unweighted
// reachability, connectivity) that only need "is this vertex in the
// frontier", not an attached value.
func EdgeMap[W, Pin any](g *graph.View[W], vs *subset.VertexSubset[Pin], r relax.Relaxation[W], opts ...Option) *subset.VertexSubset[struct{}] {
	return EdgeMapData[W, Pin, struct{}](g, vs, r, func(graph.Vid) struct{} { return struct{}{} }, opts...)
}

// NghCountApply is nghCount's per-destination apply callback (spec.md
// §4.C5): v is a destination still satisfying cond, and edgesRemoved
// is the number of active sources that successfully relaxed an edge
// into v this superstep. It returns v's payload for the next subset
// and whether v belongs in it at all; returning ok == false drops v,
// mirroring KCore.h's apply_f returning std::nullopt.
type NghCountApply[Pout any] func(v graph.Vid, edgesRemoved int64) (payload Pout, ok bool)

// NghCount implements spec.md §4.C5's "nghCount / count-reducing
// emit" variant: it first builds a histogram of how many active
// sources relaxed an edge into each still-qualifying destination this
// superstep (one histogram entry per push-direction edge out of vs,
// keyed by destination, via parallel.Histogram), then invokes apply
// once per destination with a nonzero count to decide the next
// subset's membership and payload. Grounded directly on
// benchmarks/KCore/JulienneDBS17/KCore.h's
// nghCount(G, active, cond_f, apply_f, em, no_dense) / apply_f pairing,
// where apply_f receives (v, edgesRemoved) and returns
// Option<(v, new_bucket_id)>.
func NghCount[W, Pin, Pout any](g *graph.View[W], vs *subset.VertexSubset[Pin], cond func(v graph.Vid) bool, apply NghCountApply[Pout], opts ...Option) *subset.VertexSubset[Pout] {
	if g == nil || vs == nil {
		parallel.Abort("traverse: NghCount requires a non-nil graph and vertex subset")
	}
	if cond == nil || apply == nil {
		parallel.Abort("traverse: NghCount requires cond and apply")
	}
	cfg := resolve(opts)
	n := g.N()
	if vs.Size() == 0 {
		return subset.Empty[Pout](n)
	}

	dir := pushDirection(cfg.flags)
	members := vs.Members()

	// Gather one destination id per push-direction edge whose target
	// still satisfies cond, mirroring hist_table's raw (unfiltered,
	// undeduplicated) update stream; parallel.Histogram below turns
	// this into the per-destination "edges removed" count.
	var targets []graph.Vid
	var mu sync.Mutex
	parallel.ParallelFor(0, len(members), func(i int) {
		u := members[i]
		handle := g.GetVertex(u)
		var local []graph.Vid
		graph.Decode(handle, dir, func(v graph.Vid, _ W) {
			if cond(v) {
				local = append(local, v)
			}
		})
		if len(local) == 0 {
			return
		}
		mu.Lock()
		targets = append(targets, local...)
		mu.Unlock()
	})

	counts := parallel.Histogram(targets, n)

	bitmap := make([]bool, n)
	payload := make([]Pout, n)
	parallel.ParallelFor(0, n, func(i int) {
		if counts[i] == 0 {
			return
		}
		v := graph.Vid(i)
		p, ok := apply(v, int64(counts[i]))
		if !ok {
			return
		}
		bitmap[v] = true
		payload[v] = p
	})

	out, err := subset.FromDense(n, bitmap, payload)
	if err != nil {
		parallel.Abort("traverse: NghCount produced an invalid subset: %v", err)
	}
	return out
}

// VertexMap implements spec.md §6's vertex_map(subset, fn): it applies
// fn to every member of vs in parallel, letting fn mutate that
// member's payload in place (e.g. to record a next bucket-target id).
// Unlike a filter, it never drops or reorders members — grounded on
// KCore.h's vertexMap(moved, apply_f), where apply_f is
// (v, uintE &bkt_to_modify) -> void.
func VertexMap[P any](vs *subset.VertexSubset[P], fn func(v graph.Vid, payload *P)) {
	if vs == nil || fn == nil {
		parallel.Abort("traverse: VertexMap requires a non-nil subset and fn")
	}
	members, payload := vs.MembersWithPayload()
	parallel.ParallelFor(0, len(members), func(i int) {
		fn(members[i], &payload[i])
	})
}

// Filter builds a new subset containing only vs's members for which
// keep holds, independent of any edge traversal. This is the frontier
// analogue of a predicate filter; unlike VertexMap it is not spec.md
// §6's vertex_map (which never drops members), so it is named
// separately.
func Filter[P any](vs *subset.VertexSubset[P], keep func(v graph.Vid, payload P) bool) *subset.VertexSubset[P] {
	if vs == nil || keep == nil {
		parallel.Abort("traverse: Filter requires a non-nil subset and predicate")
	}
	members, payload := vs.MembersWithPayload()
	idx := make([]bool, len(members))
	parallel.ParallelFor(0, len(members), func(i int) {
		idx[i] = keep(members[i], payload[i])
	})

	outIDs := make([]graph.Vid, 0, len(members))
	outPayload := make([]P, 0, len(members))
	for i, v := range members {
		if idx[i] {
			outIDs = append(outIDs, v)
			outPayload = append(outPayload, payload[i])
		}
	}

	out, err := subset.FromSparse(vs.N(), outIDs, outPayload)
	if err != nil {
		parallel.Abort("traverse: Filter produced an invalid subset: %v", err)
	}
	return out
}
