package pline

import "github.com/go-clipper/loopoffset/aabbindex"

// IndexedPolyline pairs a Polyline with its approximate segment-bounding-box
// spatial index. Construction fails (returns false) if the polyline has
// fewer than two vertices or no AABB index can be built from it.
type IndexedPolyline struct {
	Polyline     *Polyline
	SpatialIndex *aabbindex.StaticAABB2DIndex
}

// NewIndexedPolyline builds the spatial index for pl and returns the pair,
// or ok=false if pl is too degenerate to index (fewer than 2 vertices, or
// index construction failed).
func NewIndexedPolyline(pl *Polyline) (IndexedPolyline, bool) {
	if pl.VertexCount() < 2 {
		return IndexedPolyline{}, false
	}
	idx := pl.CreateApproxAABBIndex()
	if idx == nil {
		return IndexedPolyline{}, false
	}
	return IndexedPolyline{Polyline: pl, SpatialIndex: idx}, true
}

// Clone returns a deep clone of the indexed polyline, rebuilding the index
// over the cloned polyline's (copied) vertex data.
func (ip IndexedPolyline) Clone() IndexedPolyline {
	cloned := ip.Polyline.Clone()
	idx := cloned.CreateApproxAABBIndex()
	return IndexedPolyline{Polyline: cloned, SpatialIndex: idx}
}

// MinX, MinY, MaxX, MaxY shortcut to the spatial index's overall bounding
// box.
func (ip IndexedPolyline) MinX() float64 { return ip.SpatialIndex.MinX() }
func (ip IndexedPolyline) MinY() float64 { return ip.SpatialIndex.MinY() }
func (ip IndexedPolyline) MaxX() float64 { return ip.SpatialIndex.MaxX() }
func (ip IndexedPolyline) MaxY() float64 { return ip.SpatialIndex.MaxY() }
