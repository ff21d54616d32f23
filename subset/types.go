package subset

import (
	"errors"
	"sync"

	"github.com/katalvlaran/frontier/graph"
)

// Sentinel errors for VertexSubset construction. All are
// precondition violations, per spec.md §7.
var (
	// ErrZeroVertices indicates n == 0 was passed to a constructor.
	ErrZeroVertices = errors.New("subset: n must be > 0")

	// ErrVidOutOfRange indicates a member vid >= n.
	ErrVidOutOfRange = errors.New("subset: vertex id out of range")

	// ErrDuplicateVid indicates the same vid appears twice in a sparse construction.
	ErrDuplicateVid = errors.New("subset: duplicate vertex id in sparse construction")

	// ErrBadBitmapLength indicates a dense bitmap whose length is not n.
	ErrBadBitmapLength = errors.New("subset: bitmap length must equal n")

	// ErrPayloadLengthMismatch indicates a payload slice whose length
	// disagrees with the member slice/bitmap it was paired with.
	ErrPayloadLengthMismatch = errors.New("subset: payload length mismatch")
)

// VertexSubset is a set of vertex identifiers drawn from [0, n), with
// an optional per-vertex payload P, in either sparse or dense
// representation (spec.md §3/§4.C3).
type VertexSubset[P any] struct {
	n     int
	dense bool

	sparseIDs     []graph.Vid
	sparsePayload []P // nil when no payload was supplied

	denseBitmap  []bool
	densePayload []P // length n; entries meaningful only where denseBitmap[i]
	denseCount   int // maintained incrementally; avoids an O(n) scan in Size()

	outWorkOnce sync.Once
	outWorkVal  int64
}

// N returns the universe size n this subset was built against.
func (s *VertexSubset[P]) N() int { return s.n }

// Size returns the number of members.
func (s *VertexSubset[P]) Size() int {
	if s.dense {
		return s.denseCount
	}
	return len(s.sparseIDs)
}

// IsEmpty reports whether Size() == 0.
func (s *VertexSubset[P]) IsEmpty() bool { return s.Size() == 0 }

// IsDense reports the current representation.
func (s *VertexSubset[P]) IsDense() bool { return s.dense }
