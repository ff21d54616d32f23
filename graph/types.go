package graph

import "errors"

// Vid is a vertex identifier, an unsigned integer in [0, n). AbsentVid,
// the maximum representable Vid, is a reserved sentinel meaning
// "absent" and is never a valid member of [0, n) for any graph this
// package can represent (spec.md §3).
type Vid = uint32

// AbsentVid is the sentinel "no vertex" value. Every package in this
// module that stores a Vid and needs an "absent" marker (parent
// arrays, bucket destination maps, ...) uses this constant rather than
// defining its own.
const AbsentVid Vid = ^Vid(0)

// Direction selects which of a vertex's two neighbor orderings to
// decode: its out-neighbors or its in-neighbors. For a Symmetric view
// the two orderings are defined to be identical.
type Direction int

const (
	// Out decodes out-neighbors (u -> v edges where u is the source).
	Out Direction = iota
	// In decodes in-neighbors (v -> u edges, i.e. edges that target u).
	In
)

// Kind records whether a View's edge set is its own transpose
// (Symmetric: in-iterator and out-iterator produce the same sequence)
// or not (Asymmetric: distinct in/out adjacency).
type Kind int

const (
	// Symmetric views are their own transpose.
	Symmetric Kind = iota
	// Asymmetric views have distinct out- and in-adjacency.
	Asymmetric
)

// Sentinel errors returned by the View constructors. All are
// construction-time precondition violations (spec.md §7); once a View
// is built, every read on it is infallible.
var (
	// ErrZeroVertices indicates n == 0 was passed to a constructor.
	ErrZeroVertices = errors.New("graph: n must be > 0")

	// ErrBadOffsetsLength indicates an offsets array whose length is not n+1.
	ErrBadOffsetsLength = errors.New("graph: offsets array must have length n+1")

	// ErrOffsetsNotMonotone indicates a non-decreasing-violation in the offsets array.
	ErrOffsetsNotMonotone = errors.New("graph: offsets array must be non-decreasing")

	// ErrOffsetsEdgesMismatch indicates offsets[n] does not equal len(edges).
	ErrOffsetsEdgesMismatch = errors.New("graph: offsets[n] must equal len(edges)")

	// ErrWeightsLengthMismatch indicates len(weights) != len(edges) when weights is non-nil.
	ErrWeightsLengthMismatch = errors.New("graph: weights array must have the same length as edges")

	// ErrNeighborOutOfRange indicates an edge array entry >= n.
	ErrNeighborOutOfRange = errors.New("graph: edge array contains a vertex id >= n")
)
