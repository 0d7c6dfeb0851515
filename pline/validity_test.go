package pline

import (
	"testing"

	"github.com/go-clipper/loopoffset/aabbindex"
	"github.com/go-clipper/loopoffset/geom2d"
	"github.com/stretchr/testify/require"
)

func TestPointValidForOffset_FarPointIsValid(t *testing.T) {
	pl := unitSquareCCW()
	idx, ok := NewIndexedPolyline(pl)
	require.True(t, ok)

	var stack aabbindex.QueryStack
	far := geom2d.Vector2{X: 5, Y: 5}
	require.True(t, PointValidForOffset(far, 0.1, pl, idx.SpatialIndex, &stack, 1e-9, 1e-9))
}

func TestPointValidForOffset_PointTooCloseToLoopIsInvalid(t *testing.T) {
	pl := unitSquareCCW()
	idx, ok := NewIndexedPolyline(pl)
	require.True(t, ok)

	var stack aabbindex.QueryStack
	// Sitting 0.01 away from the bottom edge while requiring 0.5 clearance.
	tooClose := geom2d.Vector2{X: 0.5, Y: 0.01}
	require.False(t, PointValidForOffset(tooClose, 0.5, pl, idx.SpatialIndex, &stack, 1e-9, 1e-9))
}

func TestPointValidForOffset_NilIndexIsAlwaysValid(t *testing.T) {
	pl := unitSquareCCW()
	var stack aabbindex.QueryStack
	require.True(t, PointValidForOffset(geom2d.Vector2{}, 1, pl, nil, &stack, 1e-9, 1e-9))
}
