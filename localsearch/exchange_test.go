package localsearch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpcore/model"
)

func locs(xs ...int) []model.LocationIndex {
	out := make([]model.LocationIndex, len(xs))
	for i, x := range xs {
		out[i] = model.LocationIndex(x)
	}
	return out
}

func flags(n int) []bool { return make([]bool, n) }

func TestSpliceWindows_NonOverlapping(t *testing.T) {
	stops := locs(1, 2, 3, 4, 5)
	newStops, _, ok := spliceWindows(stops, flags(5), 0, 1, 3, 1)
	require.True(t, ok)
	// window [0:1]={1} swaps with window [3:4]={4}: result 4,2,3,1,5
	require.Equal(t, locs(4, 2, 3, 1, 5), newStops)
}

func TestSpliceWindows_Relocate(t *testing.T) {
	stops := locs(1, 2, 3, 4, 5)
	// q=0: relocate the block at posA=0,len=2 (clients 1,2) to the gap at
	// position 3 (an empty window, so nothing moves back in its place).
	newStops, _, ok := spliceWindows(stops, flags(5), 0, 2, 3, 0)
	require.True(t, ok)
	require.Equal(t, locs(3, 1, 2, 4, 5), newStops)
}

func TestSpliceWindows_RejectsOverlap(t *testing.T) {
	stops := locs(1, 2, 3, 4, 5)
	_, _, ok := spliceWindows(stops, flags(5), 0, 3, 2, 2)
	require.False(t, ok)
}

func TestSpliceWindows_ReversedArgOrder(t *testing.T) {
	stops := locs(1, 2, 3, 4, 5)
	a, _, okA := spliceWindows(stops, flags(5), 0, 1, 3, 1)
	b, _, okB := spliceWindows(stops, flags(5), 3, 1, 0, 1)
	require.True(t, okA)
	require.True(t, okB)
	require.Equal(t, a, b)
}
