package subset

import (
	"sync"

	"github.com/katalvlaran/frontier/graph"
)

// Empty returns an empty subset over a universe of n vertices.
func Empty[P any](n int) *VertexSubset[P] {
	if n <= 0 {
		Abort("n must be > 0, got %d", n)
	}
	return &VertexSubset[P]{n: n, dense: false}
}

// Singleton returns a one-member sparse subset {v} with the given
// payload. v must be in [0, n).
func Singleton[P any](n int, v graph.Vid, payload P) *VertexSubset[P] {
	if n <= 0 {
		Abort("n must be > 0, got %d", n)
	}
	if int(v) >= n {
		Abort("vertex id %d out of range [0,%d)", v, n)
	}
	return &VertexSubset[P]{
		n:             n,
		dense:         false,
		sparseIDs:     []graph.Vid{v},
		sparsePayload: []P{payload},
	}
}

// FromSparse builds a subset from an explicit, duplicate-free vid
// slice and matching payload slice. The engine takes ownership of both
// slices; callers must not mutate them afterward. payload may be nil
// when P carries no meaningful data (e.g. P = struct{}).
func FromSparse[P any](n int, vids []graph.Vid, payload []P) (*VertexSubset[P], error) {
	if n <= 0 {
		return nil, ErrZeroVertices
	}
	if payload != nil && len(payload) != len(vids) {
		return nil, ErrPayloadLengthMismatch
	}
	seen := make(map[graph.Vid]struct{}, len(vids))
	for _, v := range vids {
		if int(v) >= n {
			return nil, ErrVidOutOfRange
		}
		if _, dup := seen[v]; dup {
			return nil, ErrDuplicateVid
		}
		seen[v] = struct{}{}
	}
	return &VertexSubset[P]{n: n, dense: false, sparseIDs: vids, sparsePayload: payload}, nil
}

// FromDense builds a subset from a length-n presence bitmap and
// matching length-n payload array. payload may be nil when P carries
// no meaningful data.
func FromDense[P any](n int, bitmap []bool, payload []P) (*VertexSubset[P], error) {
	if n <= 0 {
		return nil, ErrZeroVertices
	}
	if len(bitmap) != n {
		return nil, ErrBadBitmapLength
	}
	if payload != nil && len(payload) != n {
		return nil, ErrPayloadLengthMismatch
	}
	if payload == nil {
		payload = make([]P, n)
	}
	count := 0
	for _, present := range bitmap {
		if present {
			count++
		}
	}
	return &VertexSubset[P]{n: n, dense: true, denseBitmap: bitmap, densePayload: payload, denseCount: count}, nil
}

// AddDisjoint appends vids (and their payloads, if payload is non-nil)
// into this subset. The caller must guarantee every vid in vids is not
// already a member; AddDisjoint does not check this, mirroring
// gbbs/edge_map_data.h's add_to_vsubset ("Caller must ensure that every
// v in new_verts is not already in vs"). Converts a dense subset to
// sparse first, since appending to a bitmap in place would require the
// same duplicate-freedom guarantee anyway and sparse append is O(1)
// amortized.
func (s *VertexSubset[P]) AddDisjoint(vids []graph.Vid, payload []P) {
	if payload != nil && len(payload) != len(vids) {
		Abort("AddDisjoint payload length %d does not match vids length %d", len(payload), len(vids))
	}
	s.ToSparse()
	for _, v := range vids {
		if int(v) >= s.n {
			Abort("vertex id %d out of range [0,%d)", v, s.n)
		}
	}
	s.sparseIDs = append(s.sparseIDs, vids...)
	if payload != nil {
		if s.sparsePayload == nil {
			s.sparsePayload = make([]P, len(s.sparseIDs)-len(vids), len(s.sparseIDs))
		}
		s.sparsePayload = append(s.sparsePayload, payload...)
	} else if s.sparsePayload != nil {
		var zero P
		for range vids {
			s.sparsePayload = append(s.sparsePayload, zero)
		}
	}
	s.outWorkOnce = sync.Once{}
}
