package graph

import "fmt"

// View is an immutable, thread-safe-for-reads graph with generic edge
// weight type W (an empty weight type such as struct{} is permitted
// for unweighted graphs). It is built once per run from CSR-style
// adjacency arrays and released at the end of the run by letting it be
// garbage-collected; there is no explicit Close.
type View[W any] struct {
	n    int
	kind Kind

	outOffsets []int32
	outEdges   []Vid
	outWeights []W // nil when the view is unweighted

	// inOffsets/inEdges/inWeights alias the out* slices for Symmetric
	// views (in == out), and are independently populated for Asymmetric
	// views.
	inOffsets []int32
	inEdges   []Vid
	inWeights []W
}

// NewSymmetricView builds a View whose edge set is its own transpose:
// out-iteration and in-iteration over any vertex yield the same
// sequence. offsets has length n+1 with offsets[0] == 0 and
// offsets[n] == len(edges); weights may be nil for an unweighted view,
// otherwise it must have the same length as edges.
func NewSymmetricView[W any](n int, offsets []int32, edges []Vid, weights []W) (*View[W], error) {
	if err := validateCSR(n, offsets, edges, weights); err != nil {
		return nil, err
	}
	return &View[W]{
		n:          n,
		kind:       Symmetric,
		outOffsets: offsets,
		outEdges:   edges,
		outWeights: weights,
		inOffsets:  offsets,
		inEdges:    edges,
		inWeights:  weights,
	}, nil
}

// NewAsymmetricView builds a View with independent out- and
// in-adjacency CSR arrays. Both array triples are validated
// independently with validateCSR.
func NewAsymmetricView[W any](
	n int,
	outOffsets []int32, outEdges []Vid, outWeights []W,
	inOffsets []int32, inEdges []Vid, inWeights []W,
) (*View[W], error) {
	if err := validateCSR(n, outOffsets, outEdges, outWeights); err != nil {
		return nil, fmt.Errorf("graph: out-adjacency: %w", err)
	}
	if err := validateCSR(n, inOffsets, inEdges, inWeights); err != nil {
		return nil, fmt.Errorf("graph: in-adjacency: %w", err)
	}
	return &View[W]{
		n:          n,
		kind:       Asymmetric,
		outOffsets: outOffsets,
		outEdges:   outEdges,
		outWeights: outWeights,
		inOffsets:  inOffsets,
		inEdges:    inEdges,
		inWeights:  inWeights,
	}, nil
}

func validateCSR[W any](n int, offsets []int32, edges []Vid, weights []W) error {
	if n <= 0 {
		return ErrZeroVertices
	}
	if len(offsets) != n+1 {
		return ErrBadOffsetsLength
	}
	if offsets[0] != 0 {
		return ErrOffsetsNotMonotone
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return ErrOffsetsNotMonotone
		}
	}
	if int(offsets[n]) != len(edges) {
		return ErrOffsetsEdgesMismatch
	}
	if weights != nil && len(weights) != len(edges) {
		return ErrWeightsLengthMismatch
	}
	for _, v := range edges {
		if int(v) >= n {
			return ErrNeighborOutOfRange
		}
	}
	return nil
}

// N returns the number of vertices.
func (g *View[W]) N() int { return g.n }

// M returns the number of (directed) edges in the out-adjacency, i.e.
// the total out-degree summed over all vertices.
func (g *View[W]) M() int { return len(g.outEdges) }

// Kind reports whether this view is Symmetric or Asymmetric.
func (g *View[W]) Kind() Kind { return g.kind }

// GetVertex returns a lightweight handle for u's neighborhoods. u must
// be in [0, n); an out-of-range u is a precondition violation and
// aborts, per spec.md §7.
func (g *View[W]) GetVertex(u Vid) Vertex[W] {
	if int(u) >= g.n {
		fatalOutOfRange(u, g.n)
	}
	return Vertex[W]{g: g, id: u}
}
