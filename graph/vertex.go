package graph

import "github.com/katalvlaran/frontier/parallel"

// Vertex is a lightweight, borrowed handle into a View's adjacency
// arrays. It owns no memory of its own (spec.md §9: "replace raw
// pointers into a neighbor array inside vertex handles with an index +
// borrowed slice into the graph view; ownership of neighbors stays
// with the graph view, never the vertex handle").
type Vertex[W any] struct {
	g  *View[W]
	id Vid
}

// ID returns the vertex identifier this handle was created for.
func (h Vertex[W]) ID() Vid { return h.id }

// OutDegree returns the number of out-neighbors of this vertex.
func (h Vertex[W]) OutDegree() int {
	return int(h.g.outOffsets[h.id+1] - h.g.outOffsets[h.id])
}

// InDegree returns the number of in-neighbors of this vertex.
func (h Vertex[W]) InDegree() int {
	return int(h.g.inOffsets[h.id+1] - h.g.inOffsets[h.id])
}

// Degree returns the degree in the given direction.
func (h Vertex[W]) Degree(dir Direction) int {
	if dir == Out {
		return h.OutDegree()
	}
	return h.InDegree()
}

// OutNeighborAt returns the i'th out-neighbor (i in [0, OutDegree())),
// in the order the CSR edge array stores them. i out of range is a
// precondition violation and aborts.
func (h Vertex[W]) OutNeighborAt(i int) (Vid, W) {
	return neighborAt(h.g.outOffsets, h.g.outEdges, h.g.outWeights, h.id, i)
}

// InNeighborAt is OutNeighborAt's in-neighbor counterpart.
func (h Vertex[W]) InNeighborAt(i int) (Vid, W) {
	return neighborAt(h.g.inOffsets, h.g.inEdges, h.g.inWeights, h.id, i)
}

// NeighborAt dispatches to OutNeighborAt or InNeighborAt by direction.
func (h Vertex[W]) NeighborAt(dir Direction, i int) (Vid, W) {
	if dir == Out {
		return h.OutNeighborAt(i)
	}
	return h.InNeighborAt(i)
}

func neighborAt[W any](offsets []int32, edges []Vid, weights []W, u Vid, i int) (Vid, W) {
	deg := int(offsets[u+1] - offsets[u])
	if i < 0 || i >= deg {
		parallel.Abort("graph: neighbor index %d out of range [0,%d) for vertex %d", i, deg, u)
	}
	pos := int(offsets[u]) + i
	v := edges[pos]
	var w W
	if weights != nil {
		w = weights[pos]
	}
	return v, w
}

// Decode performs a "full decode": it visits every neighbor of this
// vertex in the given direction, in CSR order, calling visit once per
// neighbor (spec.md §4.C2).
func Decode[W any](h Vertex[W], dir Direction, visit func(v Vid, w W)) {
	deg := h.Degree(dir)
	for i := 0; i < deg; i++ {
		v, w := h.NeighborAt(dir, i)
		visit(v, w)
	}
}

// DecodeBreakEarly performs a "break-early decode": it visits neighbors
// of this vertex in the given direction, in CSR order, until visit
// returns false (meaning the source is no longer "useful" to continue
// decoding) or the neighbors are exhausted. Used by the dense-pull
// traversal mode, where a single accepted update per destination
// suffices (e.g. BFS parent assignment) — spec.md §4.C2/§4.C5.
func DecodeBreakEarly[W any](h Vertex[W], dir Direction, visit func(v Vid, w W) bool) {
	deg := h.Degree(dir)
	for i := 0; i < deg; i++ {
		v, w := h.NeighborAt(dir, i)
		if !visit(v, w) {
			return
		}
	}
}

func fatalOutOfRange(u Vid, n int) {
	parallel.Abort("graph: vertex id %d out of range [0,%d)", u, n)
}
