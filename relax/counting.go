package relax

import (
	"github.com/katalvlaran/frontier/graph"
	"github.com/katalvlaran/frontier/parallel"
)

// Counting wraps a Relaxation so that every successful Update/
// UpdateAtomic call also increments a shared counter: a flat
// aggregate total of successful relaxations across the whole call,
// for callers that only need "how many relaxations succeeded" and not
// a per-destination breakdown. traverse.NghCount needs the latter
// (spec.md §4.C5's per-destination histogram), so it does not use
// this type; Counting remains useful on its own as a lightweight
// diagnostic wrapper. The counter is safe to read once the enclosing
// traverse.EdgeMap* call has returned (the operator's barrier
// semantics guarantee quiescence).
type Counting[W any] struct {
	Relaxation Relaxation[W]
	count      int64
}

// NewCounting adapts base into a Counting relaxation with a fresh,
// zeroed counter.
func NewCounting[W any](base Relaxation[W]) *Counting[W] {
	c := &Counting[W]{}
	c.Relaxation = Relaxation[W]{
		Cond: base.Cond,
		Update: func(u, v graph.Vid, w W) bool {
			ok := base.Update(u, v, w)
			if ok {
				// Update is only serialized per-v: traverse's dense
				// mode still runs distinct v's on distinct
				// goroutines, so the shared counter still needs an
				// atomic increment.
				parallel.FetchAdd64(&c.count, 1)
			}
			return ok
		},
		UpdateAtomic: func(u, v graph.Vid, w W) bool {
			ok := base.UpdateAtomic(u, v, w)
			if ok {
				parallel.FetchAdd64(&c.count, 1)
			}
			return ok
		},
	}
	return c
}

// Count returns the number of successful relaxations observed so
// far. Read only after the traverse call using this relaxation has
// returned.
func (c *Counting[W]) Count() int64 { return c.count }
