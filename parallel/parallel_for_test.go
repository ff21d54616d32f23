package parallel_test

import (
	"sort"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/frontier/parallel"
	"github.com/stretchr/testify/require"
)

func TestParallelForVisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 10_000
	var hits [n]int32
	parallel.ParallelFor(0, n, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	}, parallel.WithGrain(37))

	for i, h := range hits {
		require.EqualValuesf(t, 1, h, "index %d visited %d times", i, h)
	}
}

func TestParallelForEmptyRange(t *testing.T) {
	called := false
	parallel.ParallelFor(5, 5, func(int) { called = true })
	require.False(t, called)
}

func TestParallelForSequentialFallbackForSmallRange(t *testing.T) {
	var order []int
	parallel.ParallelFor(0, 8, func(i int) {
		order = append(order, i)
	}, parallel.WithGrain(1_000_000))

	require.Len(t, order, 8)
	sorted := append([]int(nil), order...)
	sort.Ints(sorted)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, sorted)
}

func TestParallelForRejectsNilBody(t *testing.T) {
	require.Panics(t, func() {
		parallel.ParallelFor(0, 1, nil)
	})
}

func TestSetWorkersRejectsNonPositive(t *testing.T) {
	require.Panics(t, func() {
		parallel.SetWorkers(0)
	})
}
