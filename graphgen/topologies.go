package graphgen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/frontier/graph"
)

// Path builds the simple path P_n: 0-1-2-...-(n-1). Requires n >= 2.
func Path(n int) (*graph.View[struct{}], error) {
	if n < 2 {
		return nil, fmt.Errorf("Path: n=%d < 2: %w", n, ErrTooFewVertices)
	}
	a := newAccumulator(n)
	for i := 1; i < n; i++ {
		a.addEdge(graph.Vid(i-1), graph.Vid(i))
	}
	return a.compile()
}

// Cycle builds the simple cycle C_n: 0-1-...-(n-1)-0. Requires n >= 3.
func Cycle(n int) (*graph.View[struct{}], error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle: n=%d < 3: %w", n, ErrTooFewVertices)
	}
	a := newAccumulator(n)
	for i := 0; i < n; i++ {
		a.addEdge(graph.Vid(i), graph.Vid((i+1)%n))
	}
	return a.compile()
}

// Star builds a star with hub vertex 0 and n-1 leaves 1..n-1. Requires
// n >= 2, matching the teacher's Star(n) contract.
func Star(n int) (*graph.View[struct{}], error) {
	if n < 2 {
		return nil, fmt.Errorf("Star: n=%d < 2: %w", n, ErrTooFewVertices)
	}
	a := newAccumulator(n)
	for i := 1; i < n; i++ {
		a.addEdge(0, graph.Vid(i))
	}
	return a.compile()
}

// Wheel builds W_n = C_{n-1} plus a hub vertex (n-1) connected to every
// ring vertex, matching the teacher's "wheel = cycle + center" definition.
// Requires n >= 4 (the ring C_{n-1} must itself be a valid cycle).
func Wheel(n int) (*graph.View[struct{}], error) {
	if n < 4 {
		return nil, fmt.Errorf("Wheel: n=%d < 4: %w", n, ErrTooFewVertices)
	}
	ringSize := n - 1
	hub := graph.Vid(ringSize)
	a := newAccumulator(n)
	for i := 0; i < ringSize; i++ {
		a.addEdge(graph.Vid(i), graph.Vid((i+1)%ringSize))
	}
	for i := 0; i < ringSize; i++ {
		a.addEdge(hub, graph.Vid(i))
	}
	return a.compile()
}

// Complete builds the complete simple graph K_n. Requires n >= 1.
func Complete(n int) (*graph.View[struct{}], error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d < 1: %w", n, ErrTooFewVertices)
	}
	a := newAccumulator(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a.addEdge(graph.Vid(i), graph.Vid(j))
		}
	}
	return a.compile()
}

// Grid builds a rows x cols 4-neighborhood grid, row-major vertex
// numbering (vertex id = r*cols+c), matching the teacher's Grid(rows,cols)
// right/bottom edge-emission order. Requires rows >= 1 and cols >= 1.
func Grid(rows, cols int) (*graph.View[struct{}], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: rows=%d cols=%d: %w", rows, cols, ErrTooFewVertices)
	}
	n := rows * cols
	a := newAccumulator(n)
	id := func(r, c int) graph.Vid { return graph.Vid(r*cols + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				a.addEdge(id(r, c), id(r, c+1))
			}
			if r+1 < rows {
				a.addEdge(id(r, c), id(r+1, c))
			}
		}
	}
	return a.compile()
}

// RandomSparse builds an Erdos-Renyi-like undirected graph over n vertices,
// including each unordered pair {i,j}, i<j, independently with probability
// p, using rng for the Bernoulli trials. Requires n >= 1 and 0 <= p <= 1.
func RandomSparse(n int, p float64, rng *rand.Rand) (*graph.View[struct{}], error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%g not in [0,1]: %w", p, ErrInvalidProbability)
	}
	a := newAccumulator(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				a.addEdge(graph.Vid(i), graph.Vid(j))
			}
		}
	}
	return a.compile()
}
