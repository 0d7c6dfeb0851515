package pline

import (
	"math"
	"testing"

	"github.com/go-clipper/loopoffset/geom2d"
	"github.com/stretchr/testify/require"
)

func TestFindIntersects_TwoCrossingLineSegments(t *testing.T) {
	a := NewOpen([]Vertex{{X: -1, Y: 0}, {X: 1, Y: 0}})
	b := NewOpen([]Vertex{{X: 0, Y: -1}, {X: 0, Y: 1}})

	result := a.FindIntersects(b, FindIntersectsOptions{})
	require.Len(t, result.BasicIntersects, 1)
	require.InDelta(t, 0, result.BasicIntersects[0].Point.X, 1e-9)
	require.InDelta(t, 0, result.BasicIntersects[0].Point.Y, 1e-9)
}

func TestFindIntersects_CollinearOverlapReportsRange(t *testing.T) {
	a := NewOpen([]Vertex{{X: 0, Y: 0}, {X: 4, Y: 0}})
	b := NewOpen([]Vertex{{X: 2, Y: 0}, {X: 6, Y: 0}})

	result := a.FindIntersects(b, FindIntersectsOptions{})
	require.Empty(t, result.BasicIntersects)
	require.Len(t, result.OverlappingIntersects, 1)
	ov := result.OverlappingIntersects[0]
	lo, hi := ov.Point1.X, ov.Point2.X
	if lo > hi {
		lo, hi = hi, lo
	}
	require.InDelta(t, 2, lo, 1e-9)
	require.InDelta(t, 4, hi, 1e-9)
}

func TestFindIntersects_LineCrossingCircle(t *testing.T) {
	// A full circle built from two bulge=1 semicircular arcs, radius 1
	// centered at the origin, crossed by a vertical line through x=0.
	circle := NewClosed([]Vertex{
		{X: -1, Y: 0, Bulge: 1},
		{X: 1, Y: 0, Bulge: 1},
	})
	line := NewOpen([]Vertex{{X: 0, Y: -2}, {X: 0, Y: 2}})

	result := line.FindIntersects(circle, FindIntersectsOptions{})
	require.Len(t, result.BasicIntersects, 2)
	for _, pt := range result.BasicIntersects {
		require.InDelta(t, 1.0, math.Hypot(pt.Point.X, pt.Point.Y), 1e-6)
	}
}

func TestFindIntersects_NoCandidatesWhenDisjoint(t *testing.T) {
	a := NewOpen([]Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}})
	b := NewOpen([]Vertex{{X: 10, Y: 10}, {X: 11, Y: 10}})
	result := a.FindIntersects(b, FindIntersectsOptions{})
	require.Empty(t, result.BasicIntersects)
	require.Empty(t, result.OverlappingIntersects)
}

func TestWithinArcSweep_RejectsPointOutsideSweptRange(t *testing.T) {
	center := geom2d.Vector2{X: 0, Y: 0}
	v1 := geom2d.Vector2{X: 1, Y: 0}
	v2 := geom2d.Vector2{X: 0, Y: 1}
	// Quarter circle CCW from (1,0) to (0,1); (-1,0) is on the circle but
	// outside the swept quarter.
	require.True(t, withinArcSweep(center, geom2d.Vector2{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}, v1, v2, 0.4142135623730951))
	require.False(t, withinArcSweep(center, geom2d.Vector2{X: -1, Y: 0}, v1, v2, 0.4142135623730951))
}
