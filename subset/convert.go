package subset

import (
	"github.com/katalvlaran/frontier/graph"
	"github.com/katalvlaran/frontier/parallel"
)

// ToSparse converts this subset to the sparse representation in
// place. Idempotent: calling it on an already-sparse subset is a no-op
// (spec.md §4.C3).
func (s *VertexSubset[P]) ToSparse() {
	if !s.dense {
		return
	}
	idx := parallel.PackIndex(s.denseBitmap)
	ids := make([]graph.Vid, len(idx))
	payload := make([]P, len(idx))
	parallel.ParallelFor(0, len(idx), func(i int) {
		ids[i] = graph.Vid(idx[i])
		payload[i] = s.densePayload[idx[i]]
	})

	s.dense = false
	s.sparseIDs = ids
	s.sparsePayload = payload
	s.denseBitmap = nil
	s.densePayload = nil
}

// ToDense converts this subset to the dense representation in place.
// Idempotent.
func (s *VertexSubset[P]) ToDense() {
	if s.dense {
		return
	}
	bitmap := make([]bool, s.n)
	payload := make([]P, s.n)
	hasPayload := s.sparsePayload != nil
	parallel.ParallelFor(0, len(s.sparseIDs), func(i int) {
		v := s.sparseIDs[i]
		bitmap[v] = true
		if hasPayload {
			payload[v] = s.sparsePayload[i]
		}
	})

	s.denseCount = len(s.sparseIDs)
	s.dense = true
	s.denseBitmap = bitmap
	s.densePayload = payload
	s.sparseIDs = nil
	s.sparsePayload = nil
}

// Members returns the member vids in sparse form, converting this
// subset to sparse in place first if it is currently dense.
func (s *VertexSubset[P]) Members() []graph.Vid {
	s.ToSparse()
	return s.sparseIDs
}

// MembersWithPayload is Members, additionally returning the payload
// slice aligned index-for-index with the returned vids. If this
// subset was built without a payload, the returned slice holds zero
// values.
func (s *VertexSubset[P]) MembersWithPayload() ([]graph.Vid, []P) {
	s.ToSparse()
	if s.sparsePayload == nil {
		s.sparsePayload = make([]P, len(s.sparseIDs))
	}
	return s.sparseIDs, s.sparsePayload
}

// Present reports whether v is a member. Valid in either
// representation; a sparse lookup is O(size), so callers scanning many
// vertices should ToDense() first.
func (s *VertexSubset[P]) Present(v graph.Vid) bool {
	if s.dense {
		return s.denseBitmap[v]
	}
	for _, id := range s.sparseIDs {
		if id == v {
			return true
		}
	}
	return false
}

// PayloadAt returns the payload for member v. Only valid when
// IsDense() — callers with a sparse subset should use
// MembersWithPayload instead, which does not require a per-vertex
// probe.
func (s *VertexSubset[P]) PayloadAt(v graph.Vid) P {
	if !s.dense {
		Abort("PayloadAt requires a dense subset; call ToDense first")
	}
	return s.densePayload[v]
}

// OutWork returns the sum of out-degrees of this subset's members,
// computing and caching it on first call via a parallel reduction
// (spec.md §4.C3). degree must return the same value for a given vid
// on every call within a single computation (i.e. it should be backed
// by an immutable graph.View).
func (s *VertexSubset[P]) OutWork(degree func(graph.Vid) int) int64 {
	s.outWorkOnce.Do(func() {
		members := s.Members()
		degrees := make([]int64, len(members))
		parallel.ParallelFor(0, len(members), func(i int) {
			degrees[i] = int64(degree(members[i]))
		})
		s.outWorkVal = parallel.Reduce(degrees, parallel.SumInt64())
	})
	return s.outWorkVal
}
