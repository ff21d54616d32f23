package graphgen

import "github.com/katalvlaran/frontier/graph"

// accumulator collects an undirected edge list (as per-vertex neighbor
// lists, insertion order preserved) and compiles it into a symmetric
// graph.View's CSR arrays in one pass.
type accumulator struct {
	n   int
	adj [][]graph.Vid
}

func newAccumulator(n int) *accumulator {
	return &accumulator{n: n, adj: make([][]graph.Vid, n)}
}

// addEdge records both directions of the undirected edge {u, v}. Self-loops
// (u == v) are recorded once, matching how a CSR adjacency list represents
// them: a single appearance of u in u's own neighbor list.
func (a *accumulator) addEdge(u, v graph.Vid) {
	a.adj[u] = append(a.adj[u], v)
	if u != v {
		a.adj[v] = append(a.adj[v], u)
	}
}

// compile builds a symmetric graph.View from the accumulated adjacency
// lists. Vertex neighbor order is the insertion order used by the caller's
// constructor, matching the deterministic-emission-order contract every
// topology below documents.
func (a *accumulator) compile() (*graph.View[struct{}], error) {
	offsets := make([]int32, a.n+1)
	for i := 0; i < a.n; i++ {
		offsets[i+1] = offsets[i] + int32(len(a.adj[i]))
	}
	edges := make([]graph.Vid, offsets[a.n])
	for i := 0; i < a.n; i++ {
		copy(edges[offsets[i]:], a.adj[i])
	}
	return graph.NewSymmetricView[struct{}](a.n, offsets, edges, nil)
}
