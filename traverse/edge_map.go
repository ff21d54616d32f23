package traverse

import (
	"sync"

	"github.com/katalvlaran/frontier/graph"
	"github.com/katalvlaran/frontier/parallel"
	"github.com/katalvlaran/frontier/relax"
	"github.com/katalvlaran/frontier/subset"
)

// pushDirection returns the graph.Direction a sparse-mode push pass
// walks from a frontier member: out-edges normally, in-edges when
// InEdges is set.
func pushDirection(fl Flags) graph.Direction {
	if fl.has(InEdges) {
		return graph.In
	}
	return graph.Out
}

// pullDirection is pushDirection's complement: the direction a
// dense-mode pull pass scans from a candidate destination, looking
// for a frontier member among its neighbors.
func pullDirection(fl Flags) graph.Direction {
	if fl.has(InEdges) {
		return graph.Out
	}
	return graph.In
}

// EdgeMapData applies r across every edge reachable from vs (spec.md
// §4.C5), selecting sparse, dense, or dense-forward mode, and
// returning the next frontier with a freshly computed payload for
// every emitted vertex via makePayload. Pin is the input subset's
// payload type (irrelevant to the traversal itself); Pout is the
// output subset's payload type.
func EdgeMapData[W, Pin, Pout any](g *graph.View[W], vs *subset.VertexSubset[Pin], r relax.Relaxation[W], makePayload func(v graph.Vid) Pout, opts ...Option) *subset.VertexSubset[Pout] {
	if g == nil || vs == nil {
		parallel.Abort("traverse: EdgeMapData requires a non-nil graph and vertex subset")
	}
	if r.Cond == nil || r.Update == nil || r.UpdateAtomic == nil {
		parallel.Abort("traverse: EdgeMapData requires Cond, Update, and UpdateAtomic")
	}
	cfg := resolve(opts)
	n := g.N()

	if vs.Size() == 0 {
		return subset.Empty[Pout](n)
	}

	if vs.IsDense() && vs.Size() > n/10 && !cfg.flags.has(NoDense) {
		return denseDispatch(g, vs, r, makePayload, cfg)
	}

	threshold := cfg.threshold
	if threshold < 0 {
		threshold = g.M() / 20
	}

	degDir := pushDirection(cfg.flags)
	outWork := vs.OutWork(func(v graph.Vid) int { return g.GetVertex(v).Degree(degDir) })
	if outWork == 0 {
		return subset.Empty[Pout](n)
	}

	if int64(vs.Size())+outWork > int64(threshold) && !cfg.flags.has(NoDense) {
		vs.ToDense()
		return denseDispatch(g, vs, r, makePayload, cfg)
	}
	return sparsePush(g, vs, r, makePayload, cfg)
}

func denseDispatch[W, Pin, Pout any](g *graph.View[W], vs *subset.VertexSubset[Pin], r relax.Relaxation[W], makePayload func(v graph.Vid) Pout, cfg config) *subset.VertexSubset[Pout] {
	if cfg.flags.has(DenseForward) {
		return denseForward(g, vs, r, makePayload, cfg)
	}
	return densePull(g, vs, r, makePayload, cfg)
}

// densePull is a pull pass: every vertex v satisfying Cond scans its
// pull-direction neighbors looking for a frontier member, stopping at
// the first successful relaxation (gbbs edgeMapDense).
func densePull[W, Pin, Pout any](g *graph.View[W], vs *subset.VertexSubset[Pin], r relax.Relaxation[W], makePayload func(v graph.Vid) Pout, cfg config) *subset.VertexSubset[Pout] {
	n := g.N()
	dir := pullDirection(cfg.flags)
	vs.ToDense()

	bitmap := make([]bool, n)
	var payload []Pout
	emit := !cfg.flags.has(NoOutput)
	if emit {
		payload = make([]Pout, n)
	}

	grain := parallel.DefaultGrain
	if cfg.flags.has(FineParallel) {
		grain = 1
	}

	// With DenseParallel several sources of one destination run
	// concurrently, so the relaxation must be the atomic variant.
	update := r.Update
	if cfg.flags.has(DenseParallel) {
		update = r.UpdateAtomic
	}

	parallel.ParallelFor(0, n, func(i int) {
		v := graph.Vid(i)
		if !r.Cond(v) {
			return
		}
		handle := g.GetVertex(v)
		scan := func(u graph.Vid, w W) bool {
			if !vs.Present(u) {
				return true // keep scanning
			}
			if !update(u, v, w) {
				return true
			}
			bitmap[v] = true
			if emit {
				payload[v] = makePayload(v)
			}
			return false // accepted; stop scanning v's neighbors
		}
		if cfg.flags.has(DenseParallel) {
			scanParallel(handle, dir, scan)
		} else {
			graph.DecodeBreakEarly(handle, dir, scan)
		}
	}, parallel.WithGrain(grain))

	if !emit {
		return subset.Empty[Pout](n)
	}
	out, err := subset.FromDense(n, bitmap, payload)
	if err != nil {
		parallel.Abort("traverse: densePull produced an invalid subset: %v", err)
	}
	return out
}

// scanParallel is DenseParallel's per-vertex neighbor fan-out: unlike
// graph.DecodeBreakEarly it cannot stop early once any goroutine
// accepts, so every neighbor is still visited, but concurrently. Since
// several neighbors of the same destination may race, densePull's scan
// closure relaxes with Relaxation.UpdateAtomic when DenseParallel is
// set.
func scanParallel[W any](h graph.Vertex[W], dir graph.Direction, visit func(u graph.Vid, w W) bool) {
	deg := h.Degree(dir)
	parallel.ParallelFor(0, deg, func(i int) {
		u, w := h.NeighborAt(dir, i)
		visit(u, w)
	})
}

// denseForward is a push pass driven by an O(n) scan over every
// vertex id rather than the frontier's compacted array (gbbs
// edgeMapDenseForward): each vertex currently in the frontier scans
// its push-direction neighbors and relaxes them with UpdateAtomic,
// since distinct frontier members may race on a shared destination.
func denseForward[W, Pin, Pout any](g *graph.View[W], vs *subset.VertexSubset[Pin], r relax.Relaxation[W], makePayload func(v graph.Vid) Pout, cfg config) *subset.VertexSubset[Pout] {
	n := g.N()
	dir := pushDirection(cfg.flags) // unlike densePull, denseForward walks the same direction sparsePush does (gbbs edgeMapDenseForward)
	vs.ToDense()

	bitmap := make([]bool, n)
	var payload []Pout
	emit := !cfg.flags.has(NoOutput)
	if emit {
		payload = make([]Pout, n)
	}

	parallel.ParallelFor(0, n, func(i int) {
		u := graph.Vid(i)
		if !vs.Present(u) {
			return
		}
		handle := g.GetVertex(u)
		graph.Decode(handle, dir, func(v graph.Vid, w W) {
			if !r.Cond(v) {
				return
			}
			if !r.UpdateAtomic(u, v, w) {
				return
			}
			bitmap[v] = true
			if emit {
				payload[v] = makePayload(v)
			}
		})
	}, parallel.WithGrain(1))

	if !emit {
		return subset.Empty[Pout](n)
	}
	out, err := subset.FromDense(n, bitmap, payload)
	if err != nil {
		parallel.Abort("traverse: denseForward produced an invalid subset: %v", err)
	}
	return out
}

// sparsePush has each frontier member scan its push-direction
// neighbors and relax them with UpdateAtomic, since many members may
// target the same destination concurrently. Emitted vertices are
// appended to one shared output slice under a mutex, so their order in
// the returned subset is not defined.
func sparsePush[W, Pin, Pout any](g *graph.View[W], vs *subset.VertexSubset[Pin], r relax.Relaxation[W], makePayload func(v graph.Vid) Pout, cfg config) *subset.VertexSubset[Pout] {
	n := g.N()
	dir := pushDirection(cfg.flags)
	members := vs.Members()
	emit := !cfg.flags.has(NoOutput)

	var outIDs []graph.Vid
	var outPayload []Pout
	var mu sync.Mutex

	grain := 1
	if cfg.flags.has(SparseBlocked) {
		grain = parallel.DefaultGrain
	}

	parallel.ParallelFor(0, len(members), func(i int) {
		u := members[i]
		handle := g.GetVertex(u)
		graph.Decode(handle, dir, func(v graph.Vid, w W) {
			if !r.Cond(v) {
				return
			}
			if !r.UpdateAtomic(u, v, w) {
				return
			}
			if !emit {
				return
			}
			mu.Lock()
			outIDs = append(outIDs, v)
			outPayload = append(outPayload, makePayload(v))
			mu.Unlock()
		})
	}, parallel.WithGrain(grain))

	if !emit {
		return subset.Empty[Pout](n)
	}
	out, err := subset.FromSparse(n, outIDs, outPayload)
	if err != nil {
		parallel.Abort("traverse: sparsePush produced an invalid subset: %v", err)
	}
	return out
}
