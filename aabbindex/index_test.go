package aabbindex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-clipper/loopoffset/aabbindex"
	"github.com/go-clipper/loopoffset/geom2d"
)

func TestBuilder_EmptyReturnsError(t *testing.T) {
	_, err := aabbindex.NewBuilder(0).Build()
	require.ErrorIs(t, err, aabbindex.ErrEmptyIndex)
}

func TestQueryWithStack_FindsOverlappingBoxes(t *testing.T) {
	b := aabbindex.NewBuilder(5)
	b.Add(0, 0, 1, 1)
	b.Add(5, 5, 6, 6)
	b.Add(0.5, 0.5, 1.5, 1.5)
	b.Add(100, 100, 101, 101)
	b.Add(-1, -1, -0.5, -0.5)

	idx, err := b.Build()
	require.NoError(t, err)

	var stack aabbindex.QueryStack
	got := idx.QueryWithStack(geom2d.AABB{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, &stack)

	require.ElementsMatch(t, []int{0, 2}, got)
}

func TestQueryWithStack_ReusesStackAcrossCalls(t *testing.T) {
	b := aabbindex.NewBuilder(3)
	b.Add(0, 0, 1, 1)
	b.Add(2, 2, 3, 3)
	b.Add(4, 4, 5, 5)
	idx, err := b.Build()
	require.NoError(t, err)

	var stack aabbindex.QueryStack
	first := idx.QueryWithStack(geom2d.AABB{MinX: 0, MinY: 0, MaxX: 0, MaxY: 0}, &stack)
	second := idx.QueryWithStack(geom2d.AABB{MinX: 4, MinY: 4, MaxX: 4, MaxY: 4}, &stack)

	require.Equal(t, []int{0}, first)
	require.Equal(t, []int{2}, second)
}

func TestVisitQueryWithStack_NoAllocationResultSlice(t *testing.T) {
	b := aabbindex.NewBuilder(50)
	for i := 0; i < 50; i++ {
		x := float64(i)
		b.Add(x, x, x+1, x+1)
	}
	idx, err := b.Build()
	require.NoError(t, err)

	var stack aabbindex.QueryStack
	count := 0
	idx.VisitQueryWithStack(geom2d.AABB{MinX: 10, MinY: 10, MaxX: 12, MaxY: 12}, func(int) {
		count++
	}, &stack)

	require.Equal(t, 4, count)
}

func TestBounds_CoversAllItems(t *testing.T) {
	b := aabbindex.NewBuilder(2)
	b.Add(-5, -5, -4, -4)
	b.Add(10, 20, 11, 21)
	idx, err := b.Build()
	require.NoError(t, err)

	require.Equal(t, -5.0, idx.MinX())
	require.Equal(t, -5.0, idx.MinY())
	require.Equal(t, 11.0, idx.MaxX())
	require.Equal(t, 21.0, idx.MaxY())
}
