package pline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIndexedPolyline_RejectsTooFewVertices(t *testing.T) {
	pl := NewClosed([]Vertex{{X: 0, Y: 0}})
	_, ok := NewIndexedPolyline(pl)
	require.False(t, ok)
}

func TestNewIndexedPolyline_BuildsBoundsCoveringLoop(t *testing.T) {
	pl := unitSquareCCW()
	ip, ok := NewIndexedPolyline(pl)
	require.True(t, ok)
	require.Equal(t, 0.0, ip.MinX())
	require.Equal(t, 0.0, ip.MinY())
	require.Equal(t, 1.0, ip.MaxX())
	require.Equal(t, 1.0, ip.MaxY())
}

func TestIndexedPolyline_Clone_IsIndependent(t *testing.T) {
	pl := unitSquareCCW()
	ip, ok := NewIndexedPolyline(pl)
	require.True(t, ok)
	clone := ip.Clone()
	clone.Polyline.SetAt(0, Vertex{X: -5, Y: -5})
	require.Equal(t, 0.0, ip.Polyline.At(0).X)
	require.Equal(t, -5.0, clone.Polyline.At(0).X)
}
