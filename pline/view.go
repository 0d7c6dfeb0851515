package pline

import "github.com/go-clipper/loopoffset/geom2d"

// PlineViewData identifies a contiguous sub-arc of a source Polyline by its
// start and end positions (each lying on, or coinciding with a vertex of, a
// named segment) without copying the source. The sub-arc's vertex sequence
// is materialized once at construction time (the partial first/last
// segments get their bulge recomputed so the open chain reproduces exactly
// the source geometry between StartPoint and EndPoint) and then walked via
// At like any other vertex list.
type PlineViewData struct {
	StartPoint geom2d.Vector2
	EndPoint   geom2d.Vector2

	// vertices is the open (non-closed) chain from StartPoint to EndPoint.
	// The last vertex's bulge is unused (there is no segment past it).
	vertices []Vertex
}

// VertexCount returns the number of vertices in the materialized view.
func (v PlineViewData) VertexCount() int {
	return len(v.vertices)
}

// At returns the i-th vertex of the view.
func (v PlineViewData) At(i int) Vertex {
	return v.vertices[i]
}

// SegmentCount returns the number of segments spanned by the view.
func (v PlineViewData) SegmentCount() int {
	if len(v.vertices) < 2 {
		return 0
	}
	return len(v.vertices) - 1
}

// FromEntirePline returns a view spanning the whole loop, from its first
// vertex back around to itself.
func FromEntirePline(loop *Polyline) PlineViewData {
	n := loop.VertexCount()
	vertices := make([]Vertex, 0, n+1)
	vertices = append(vertices, loop.Vertices()...)
	first := loop.At(0)
	vertices = append(vertices, Vertex{X: first.X, Y: first.Y, Bulge: 0})
	return PlineViewData{
		StartPoint: first.Pos(),
		EndPoint:   first.Pos(),
		vertices:   vertices,
	}
}

// FromSlicePoints builds the view of loop running forward from (pos1 on
// segment seg1) to (pos2 on segment seg2). It declines (ok=false) when the
// two endpoints coincide within eps, or the source loop is too small to
// walk.
func FromSlicePoints(loop *Polyline, pos1 geom2d.Vector2, seg1 int, pos2 geom2d.Vector2, seg2 int, eps float64) (view PlineViewData, ok bool) {
	if geom2d.FuzzyEqual(pos1, pos2, eps) {
		return PlineViewData{}, false
	}
	segCount := loop.SegmentCount()
	if segCount == 0 {
		return PlineViewData{}, false
	}

	var vertices []Vertex
	idx := seg1
	cur := pos1
	maxSteps := segCount + 1

	for step := 0; ; step++ {
		if step > maxSteps {
			return PlineViewData{}, false
		}

		if idx == seg2 {
			ahead := segmentParamAheadOrEqual(loop, idx, cur, pos2, eps)
			if step > 0 || ahead {
				bulge := geom2d.SubArcBulge(loop.SegStart(idx), loop.SegEnd(idx), loop.SegBulge(idx), cur, pos2)
				vertices = append(vertices, Vertex{X: cur.X, Y: cur.Y, Bulge: bulge})
				vertices = append(vertices, Vertex{X: pos2.X, Y: pos2.Y, Bulge: 0})
				break
			}
		}

		segStart, segEnd, segBulge := loop.SegStart(idx), loop.SegEnd(idx), loop.SegBulge(idx)
		var bulgeToEnd float64
		if geom2d.IsStraight(segBulge) {
			bulgeToEnd = 0
		} else {
			bulgeToEnd = geom2d.SubArcBulge(segStart, segEnd, segBulge, cur, segEnd)
		}
		vertices = append(vertices, Vertex{X: cur.X, Y: cur.Y, Bulge: bulgeToEnd})

		cur = segEnd
		idx = loop.NextIndex(idx)
	}

	if len(vertices) < 2 {
		return PlineViewData{}, false
	}
	return PlineViewData{StartPoint: pos1, EndPoint: pos2, vertices: vertices}, true
}

// segmentParamAheadOrEqual reports whether pos2 sits at or ahead of cur
// along segment idx's own direction of travel, used to disambiguate a
// same-segment slice (short local sub-arc) from one that must walk all the
// way around the loop before returning to this segment.
func segmentParamAheadOrEqual(loop *Polyline, idx int, cur, pos2 geom2d.Vector2, eps float64) bool {
	segStart, segEnd, bulge := loop.SegStart(idx), loop.SegEnd(idx), loop.SegBulge(idx)
	if geom2d.IsStraight(bulge) {
		return geom2d.LineParam(segStart, segEnd, pos2) >= geom2d.LineParam(segStart, segEnd, cur)-eps
	}
	return geom2d.ArcParam(segStart, segEnd, bulge, pos2) >= geom2d.ArcParam(segStart, segEnd, bulge, cur)-eps
}

// ExtendRemoveRepeat appends view's vertices (as an open chain) onto the end
// of target, dropping view's first vertex when it coincides with target's
// current last vertex within eps, which suppresses the duplicate point a
// chain of joined slices would otherwise produce at a seam.
func ExtendRemoveRepeat(target *Polyline, view PlineViewData, eps float64) {
	if view.VertexCount() == 0 {
		return
	}
	start := 0
	if n := target.VertexCount(); n > 0 {
		last := target.At(n - 1)
		if geom2d.FuzzyEqual(last.Pos(), view.At(0).Pos(), eps) {
			// The incoming duplicate point carries no bulge of its own (bulge
			// lives on the segment leaving it) — keep target's existing
			// vertex position but adopt the view's outgoing bulge so the
			// segment leaving the join is described correctly.
			target.SetAt(n-1, Vertex{X: last.X, Y: last.Y, Bulge: view.At(0).Bulge})
			start = 1
		}
	}
	for i := start; i < view.VertexCount(); i++ {
		target.AddVertex(view.At(i))
	}
}
