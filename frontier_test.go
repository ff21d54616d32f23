package frontier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontier/bucket"
	"github.com/katalvlaran/frontier/graph"
	"github.com/katalvlaran/frontier/relax"
	"github.com/katalvlaran/frontier/subset"
	"github.com/katalvlaran/frontier/traverse"
)

// buildPath8 mirrors spec.md §8 scenario 1: an 8-vertex symmetric path
// graph 0-1-2-...-7.
func buildPath8(t *testing.T) *graph.View[struct{}] {
	t.Helper()
	offsets := []int32{0, 1, 3, 5, 7, 9, 11, 13, 14}
	edges := []graph.Vid{
		1,
		0, 2,
		1, 3,
		2, 4,
		3, 5,
		4, 6,
		5, 7,
		6,
	}
	v, err := graph.NewSymmetricView[struct{}](8, offsets, edges, nil)
	require.NoError(t, err)
	return v
}

func bfsRelaxation(visited []uint32, parent []graph.Vid) relax.Relaxation[struct{}] {
	return relax.Symmetric[struct{}](
		func(v graph.Vid) bool { return visited[v] == 0 },
		func(u, v graph.Vid, _ struct{}) bool {
			if visited[v] != 0 {
				return false
			}
			visited[v] = 1
			parent[v] = u
			return true
		},
		func(u, v graph.Vid, _ struct{}) bool {
			if visited[v] != 0 {
				return false
			}
			visited[v] = 1
			parent[v] = u
			return true
		},
	)
}

// TestEndToEndBFSOverPathGraph exercises graph, subset, relax, and
// traverse together: BFS from vertex 0 must visit every vertex in
// increasing distance order, matching spec.md §8 scenario 1.
func TestEndToEndBFSOverPathGraph(t *testing.T) {
	g := buildPath8(t)
	n := g.N()
	visited := make([]uint32, n)
	parent := make([]graph.Vid, n)
	for i := range parent {
		parent[i] = graph.AbsentVid
	}
	visited[0] = 1
	parent[0] = 0

	frontier := subset.Singleton[struct{}](n, 0, struct{}{})
	var order [][]graph.Vid
	for !frontier.IsEmpty() {
		order = append(order, append([]graph.Vid{}, frontier.Members()...))
		frontier = traverse.EdgeMap(g, frontier, bfsRelaxation(visited, parent))
	}

	require.Len(t, order, 8, "a path graph BFS must take exactly n steps to drain")
	for i, v := range []graph.Vid{0, 1, 2, 3, 4, 5, 6, 7} {
		require.Equal(t, []graph.Vid{v}, order[i])
	}
	for v := graph.Vid(1); v < graph.Vid(n); v++ {
		require.Equal(t, v-1, parent[v])
	}
}

// TestEndToEndDegeneracyOrderingViaBuckets exercises graph, subset,
// traverse.NghCount, and bucket together: a coordination-free peeling
// of the path graph's vertices in increasing remaining-degree order,
// the shape a k-core / degeneracy-ordering algorithm takes (spec.md
// §8 scenario 3's "priority-bucket structure" usage), grounded
// directly on benchmarks/KCore/JulienneDBS17/KCore.h's KCore(): each
// superstep's whole bucket is processed as one active set via
// traverse.NghCount, never one member at a time, and the per-
// destination histogram it produces is the sole source of
// synchronization (no shared slice is mutated from multiple
// goroutines).
func TestEndToEndDegeneracyOrderingViaBuckets(t *testing.T) {
	g := buildPath8(t)
	n := g.N()
	degree := make([]int, n)
	for v := 0; v < n; v++ {
		degree[v] = g.GetVertex(graph.Vid(v)).OutDegree()
	}

	priority := func(v graph.Vid) bucket.ID { return bucket.ID(degree[v]) }
	b := bucket.Make(n, priority, bucket.Increasing, 8)

	var peelOrder []graph.Vid
	finished := 0
	for finished < n {
		bk := b.NextBucket()
		if bk.ID == bucket.NullBucket {
			break
		}
		k := int(bk.ID)
		finished += len(bk.Members)
		peelOrder = append(peelOrder, bk.Members...)

		active, err := subset.FromSparse[struct{}](n, append([]graph.Vid{}, bk.Members...), nil)
		require.NoError(t, err)

		cond := func(graph.Vid) bool { return true }
		apply := func(v graph.Vid, edgesRemoved int64) (bucket.ID, bool) {
			deg := degree[v]
			if deg <= k {
				return 0, false
			}
			newDeg := deg - int(edgesRemoved)
			if newDeg < k {
				newDeg = k
			}
			degree[v] = newDeg
			return priority(v), true
		}

		moved := traverse.NghCount[struct{}, struct{}, bucket.ID](g, active, cond, apply)
		movedIDs, movedBkts := moved.MembersWithPayload()
		updates := make([]bucket.Update, len(movedIDs))
		for i, v := range movedIDs {
			updates[i] = bucket.Update{Vid: v, Bkt: movedBkts[i]}
		}
		b.UpdateBuckets(updates)
	}

	require.Len(t, peelOrder, n)
	require.ElementsMatch(t, []graph.Vid{0, 1, 2, 3, 4, 5, 6, 7}, peelOrder)
	// The path graph's two endpoints have degree 1 and must peel before
	// any interior (degree-2) vertex.
	endpointRank := map[graph.Vid]int{}
	for i, v := range peelOrder {
		endpointRank[v] = i
	}
	require.Less(t, endpointRank[graph.Vid(0)], endpointRank[graph.Vid(3)])
	require.Less(t, endpointRank[graph.Vid(7)], endpointRank[graph.Vid(3)])
}
