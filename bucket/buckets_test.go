package bucket

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontier/graph"
)

func TestMakeBucketsGroupsByInitialPriorityIncreasing(t *testing.T) {
	n := 8
	priority := func(v graph.Vid) ID { return ID(v / 2) }
	b := Make(n, priority, Increasing, 16)

	var drained []Bucket
	for {
		bk := b.NextBucket()
		if bk.ID == NullBucket {
			break
		}
		drained = append(drained, bk)
	}

	require.Len(t, drained, 4)
	for i, bk := range drained {
		require.EqualValues(t, i, bk.ID)
		require.Len(t, bk.Members, 2)
	}
}

func TestMakeBucketsDecreasingReleasesHighestFirst(t *testing.T) {
	n := 8
	priority := func(v graph.Vid) ID { return ID(v) }
	b := Make(n, priority, Decreasing, 16)

	var ids []ID
	for {
		bk := b.NextBucket()
		if bk.ID == NullBucket {
			break
		}
		ids = append(ids, bk.ID)
	}

	require.Len(t, ids, n)
	for i := 1; i < len(ids); i++ {
		require.Greater(t, ids[i-1], ids[i], "decreasing order must release strictly higher buckets first")
	}
	require.EqualValues(t, n-1, ids[0])
	require.EqualValues(t, 0, ids[len(ids)-1])
}

// TestOverflowRoundTrip is spec.md §8's "overflow round-trip" scenario:
// a 100-identifier structure with only 8 total (7 open) buckets, so
// most of the identifier space starts in overflow and must unpack
// across several window slides before draining completes.
func TestOverflowRoundTrip(t *testing.T) {
	n := 100
	priority := func(v graph.Vid) ID { return ID(v) }
	b := Make(n, priority, Increasing, 8)

	seen := make(map[graph.Vid]bool, n)
	var lastID ID
	first := true
	for {
		bk := b.NextBucket()
		if bk.ID == NullBucket {
			break
		}
		require.True(t, first || bk.ID >= lastID, "bucket ids must be released in non-decreasing order")
		first = false
		lastID = bk.ID
		for _, v := range bk.Members {
			require.False(t, seen[v], "each identifier must be emitted at most once across the drain")
			seen[v] = true
		}
	}

	require.Len(t, seen, n, "every identifier must eventually drain out")
	require.Equal(t, 0, b.NumElements())
}

func TestUpdateBucketsRelocatesAnIdentifier(t *testing.T) {
	n := 4
	bkt := make([]ID, n)
	priority := func(v graph.Vid) ID { return bkt[v] }
	b := Make(n, priority, Increasing, 16)

	bkt[2] = 5
	b.UpdateBuckets([]Update{{Vid: 2, Bkt: 5}})

	var ids []ID
	for {
		b2 := b.NextBucket()
		if b2.ID == NullBucket {
			break
		}
		ids = append(ids, b2.ID)
	}
	require.Contains(t, ids, ID(5))
}

func TestGetBucketComputesDestination(t *testing.T) {
	n := 4
	priority := func(graph.Vid) ID { return 0 }
	b := Make(n, priority, Increasing, 16)

	dest := b.GetBucket(NullBucket, 3)
	require.EqualValues(t, 3, dest)

	same := b.GetBucket(3, 3)
	require.Equal(t, NullBucket, same, "moving to the same global bucket is not a relocation")
}

func TestMakeAbortsOnZeroIdentifiers(t *testing.T) {
	require.Panics(t, func() {
		Make(0, func(graph.Vid) ID { return 0 }, Increasing, 16)
	})
}
