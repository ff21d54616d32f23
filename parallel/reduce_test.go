package parallel_test

import (
	"testing"

	"github.com/katalvlaran/frontier/parallel"
	"github.com/stretchr/testify/require"
)

func TestReduceSum(t *testing.T) {
	items := make([]int64, 1000)
	var want int64
	for i := range items {
		items[i] = int64(i)
		want += int64(i)
	}
	got := parallel.Reduce(items, parallel.SumInt64(), parallel.WithGrain(7))
	require.Equal(t, want, got)
}

func TestReduceEmptyReturnsIdentity(t *testing.T) {
	got := parallel.Reduce([]int64{}, parallel.SumInt64())
	require.Zero(t, got)
}

func TestReduceNilCombineAborts(t *testing.T) {
	require.Panics(t, func() {
		parallel.Reduce([]int64{1}, parallel.Monoid[int64]{})
	})
}
