package pline

import (
	"github.com/go-clipper/loopoffset/aabbindex"
	"github.com/go-clipper/loopoffset/geom2d"
)

// CreateApproxAABBIndex builds one approximate bounding box per segment and
// bulk-loads them into a StaticAABB2DIndex. Returns nil (no error) when the
// polyline has no segments — callers treat a nil index as "failed to
// build." A single-segment polyline gets an index.
func (p *Polyline) CreateApproxAABBIndex() *aabbindex.StaticAABB2DIndex {
	segCount := p.SegmentCount()
	if segCount == 0 {
		return nil
	}
	b := aabbindex.NewBuilder(segCount)
	for i := 0; i < segCount; i++ {
		box := geom2d.SegmentApproxBox(p.SegStart(i), p.SegEnd(i), p.SegBulge(i))
		b.Add(box.MinX, box.MinY, box.MaxX, box.MaxY)
	}
	idx, err := b.Build()
	if err != nil {
		return nil
	}
	return idx
}
