package parallel_test

import (
	"testing"

	"github.com/katalvlaran/frontier/parallel"
	"github.com/stretchr/testify/require"
)

func TestPackIndexReturnsTrueIndicesInOrder(t *testing.T) {
	flags := []bool{false, true, false, true, true, false, true}
	require.Equal(t, []int{1, 3, 4, 6}, parallel.PackIndex(flags))
}

func TestPackIndexAllFalse(t *testing.T) {
	require.Nil(t, parallel.PackIndex([]bool{false, false, false}))
}

func TestFilterPreservesRelativeOrder(t *testing.T) {
	items := []int{5, 2, 8, 1, 9, 4}
	even := parallel.Filter(items, func(v int) bool { return v%2 == 0 })
	require.Equal(t, []int{2, 8, 4}, even)
}
