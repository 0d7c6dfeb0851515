package pline

import (
	"testing"

	"github.com/go-clipper/loopoffset/geom2d"
	"github.com/stretchr/testify/require"
)

func TestFromEntirePline_SpansWholeLoopAndClosesItself(t *testing.T) {
	pl := unitSquareCCW()
	view := FromEntirePline(pl)
	require.Equal(t, pl.VertexCount()+1, view.VertexCount())
	require.True(t, geom2d.FuzzyEqual(view.StartPoint, view.EndPoint, 1e-12))
	require.True(t, geom2d.FuzzyEqual(view.At(0).Pos(), pl.At(0).Pos(), 1e-12))
	require.True(t, geom2d.FuzzyEqual(view.At(view.VertexCount()-1).Pos(), pl.At(0).Pos(), 1e-12))
}

func TestFromSlicePoints_DeclinesOnCoincidentEndpoints(t *testing.T) {
	pl := unitSquareCCW()
	p := geom2d.Vector2{X: 0.5, Y: 0}
	_, ok := FromSlicePoints(pl, p, 0, p, 0, 1e-9)
	require.False(t, ok)
}

func TestFromSlicePoints_SameSegmentShortSubArc(t *testing.T) {
	pl := unitSquareCCW() // segment 0: (0,0) -> (1,0)
	p1 := geom2d.Vector2{X: 0.25, Y: 0}
	p2 := geom2d.Vector2{X: 0.75, Y: 0}
	view, ok := FromSlicePoints(pl, p1, 0, p2, 0, 1e-9)
	require.True(t, ok)
	require.Equal(t, 2, view.VertexCount())
	require.True(t, geom2d.FuzzyEqual(view.At(0).Pos(), p1, 1e-12))
	require.True(t, geom2d.FuzzyEqual(view.At(1).Pos(), p2, 1e-12))
}

func TestFromSlicePoints_AcrossMultipleSegments(t *testing.T) {
	pl := unitSquareCCW() // 0:(0,0)-(1,0) 1:(1,0)-(1,1) 2:(1,1)-(0,1) 3:(0,1)-(0,0)
	p1 := geom2d.Vector2{X: 0.5, Y: 0}
	p2 := geom2d.Vector2{X: 1, Y: 0.5}
	view, ok := FromSlicePoints(pl, p1, 0, p2, 1, 1e-9)
	require.True(t, ok)
	// Expect: (0.5,0) start, (1,0) source vertex 1, (1,0.5) end.
	require.Equal(t, 3, view.VertexCount())
	require.True(t, geom2d.FuzzyEqual(view.At(0).Pos(), p1, 1e-12))
	require.True(t, geom2d.FuzzyEqual(view.At(1).Pos(), geom2d.Vector2{X: 1, Y: 0}, 1e-12))
	require.True(t, geom2d.FuzzyEqual(view.At(2).Pos(), p2, 1e-12))
}

func TestFromSlicePoints_WrapsAroundToSameSegment(t *testing.T) {
	pl := unitSquareCCW()
	// Two points both on segment 0 (0,0)->(1,0), but p2 "behind" p1 along the
	// segment's own direction: the slice must go all the way around the loop.
	p1 := geom2d.Vector2{X: 0.75, Y: 0}
	p2 := geom2d.Vector2{X: 0.25, Y: 0}
	view, ok := FromSlicePoints(pl, p1, 0, p2, 0, 1e-9)
	require.True(t, ok)
	require.Greater(t, view.VertexCount(), 2)
	require.True(t, geom2d.FuzzyEqual(view.At(0).Pos(), p1, 1e-12))
	require.True(t, geom2d.FuzzyEqual(view.At(view.VertexCount()-1).Pos(), p2, 1e-12))
}

func TestExtendRemoveRepeat_DropsDuplicateJoinPoint(t *testing.T) {
	target := NewOpen(nil)
	target.AddVertex(Vertex{X: 0, Y: 0, Bulge: 0})
	target.AddVertex(Vertex{X: 1, Y: 0, Bulge: 0})

	view := PlineViewData{
		StartPoint: geom2d.Vector2{X: 1, Y: 0},
		EndPoint:   geom2d.Vector2{X: 1, Y: 1},
	}
	view.vertices = []Vertex{
		{X: 1, Y: 0, Bulge: 0},
		{X: 1, Y: 1, Bulge: 0},
	}

	ExtendRemoveRepeat(target, view, 1e-9)
	require.Equal(t, 3, target.VertexCount())
	require.True(t, geom2d.FuzzyEqual(target.At(2).Pos(), geom2d.Vector2{X: 1, Y: 1}, 1e-12))
}
