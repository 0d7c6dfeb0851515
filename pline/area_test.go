package pline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func unitSquareCCW() *Polyline {
	return NewClosed([]Vertex{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	})
}

func TestArea_CCWSquareIsPositive(t *testing.T) {
	pl := unitSquareCCW()
	require.InDelta(t, 1.0, pl.Area(), 1e-9)
	require.Equal(t, CounterClockwise, pl.Orientation())
}

func TestArea_CWSquareIsNegative(t *testing.T) {
	pl := NewClosed([]Vertex{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0},
	})
	require.InDelta(t, -1.0, pl.Area(), 1e-9)
	require.Equal(t, Clockwise, pl.Orientation())
}

func TestArea_FullCircleViaTwoSemicircularBulges(t *testing.T) {
	// Two half-circle arcs (bulge = 1, a 180 degree sweep) of radius 1
	// stacked into a closed loop approximate a full circle of radius 1.
	pl := NewClosed([]Vertex{
		{X: -1, Y: 0, Bulge: 1},
		{X: 1, Y: 0, Bulge: 1},
	})
	require.InDelta(t, math.Pi, pl.Area(), 1e-9)
}

func TestArea_DegenerateLoopIsUnknownOrientation(t *testing.T) {
	pl := NewClosed([]Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}})
	require.Equal(t, Unknown, pl.Orientation())
}
