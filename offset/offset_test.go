package offset

import (
	"math"
	"testing"

	"github.com/go-clipper/loopoffset/geom2d"
	"github.com/go-clipper/loopoffset/pline"
	"github.com/stretchr/testify/require"
)

func unitSquareCCW() *pline.Polyline {
	return pline.NewClosed([]pline.Vertex{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	})
}

func TestParallelOffset_SquareInwardProducesSharpCenteredSquare(t *testing.T) {
	square := unitSquareCCW()
	results := ParallelOffset(square, -0.25, Options{})
	require.Len(t, results, 1)
	result := results[0]
	require.Equal(t, 4, result.VertexCount())

	for i := 0; i < result.VertexCount(); i++ {
		require.InDelta(t, 0, result.At(i).Bulge, 1e-9, "inward offset of a convex corner must trim, not arc")
	}

	corners := map[[2]float64]bool{}
	for i := 0; i < result.VertexCount(); i++ {
		v := result.At(i)
		corners[[2]float64{roundTo(v.X), roundTo(v.Y)}] = true
	}
	require.True(t, corners[[2]float64{0.25, 0.25}])
	require.True(t, corners[[2]float64{0.75, 0.25}])
	require.True(t, corners[[2]float64{0.75, 0.75}])
	require.True(t, corners[[2]float64{0.25, 0.75}])

	require.InDelta(t, 0.25, result.Area(), 1e-9)
}

func TestParallelOffset_SquareOutwardAddsRoundedGapArcs(t *testing.T) {
	square := unitSquareCCW()
	results := ParallelOffset(square, 0.25, Options{})
	require.Len(t, results, 1)
	result := results[0]

	// One gap arc per original convex corner means 4 extra vertices beyond
	// the 4 trimmed-corner case.
	require.Equal(t, 8, result.VertexCount())

	gapArcs := 0
	for i := 0; i < result.VertexCount(); i++ {
		if result.At(i).Bulge != 0 {
			gapArcs++
		}
	}
	require.Equal(t, 4, gapArcs)

	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for i := 0; i < result.VertexCount(); i++ {
		v := result.At(i)
		minX, maxX = minF(minX, v.X), maxF(maxX, v.X)
		minY, maxY = minF(minY, v.Y), maxF(maxY, v.Y)
	}
	require.InDelta(t, -0.25, minX, 1e-6)
	require.InDelta(t, -0.25, minY, 1e-6)
	require.InDelta(t, 1.25, maxX, 1e-6)
	require.InDelta(t, 1.25, maxY, 1e-6)

	// Minkowski-sum-with-a-disk area: original + perimeter*dist + pi*dist^2.
	require.InDelta(t, 1+4*0.25+math.Pi*0.25*0.25, result.Area(), 1e-6)
}

func TestParallelOffset_CircleShrinksRadiusUniformly(t *testing.T) {
	circle := pline.NewClosed([]pline.Vertex{
		{X: -1, Y: 0, Bulge: 1},
		{X: 1, Y: 0, Bulge: 1},
	})
	results := ParallelOffset(circle, -0.3, Options{})
	require.Len(t, results, 1)
	result := results[0]
	for i := 0; i < result.VertexCount(); i++ {
		require.InDelta(t, 0.7, geom2d.Dist(result.At(i).Pos(), geom2d.Vector2{}), 1e-9)
	}
}

func TestParallelOffset_TooFewSegmentsReturnsNil(t *testing.T) {
	tiny := pline.NewClosed([]pline.Vertex{{X: 0, Y: 0}})
	require.Nil(t, ParallelOffset(tiny, 0.1, Options{}))
}

func roundTo(f float64) float64 {
	return float64(int(f*1e6+0.5)) / 1e6
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
