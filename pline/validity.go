package pline

import (
	"math"

	"github.com/go-clipper/loopoffset/aabbindex"
	"github.com/go-clipper/loopoffset/geom2d"
)

// PointValidForOffset reports whether point (assumed to lie on a raw-offset
// slice built at the given offset distance from loop) stays at least
// abs(offset) away from every segment of loop, within offsetTol slack. A
// slice midpoint that fails this check has drifted back closer to the
// original geometry than the requested offset allows (an artifact of a
// self-intersection elsewhere in the shape) and must be discarded by the
// slice validator.
//
// posEqualEps only pads the spatial-index query box (so a segment sitting
// exactly abs(offset) away, to floating-point noise, is never missed);
// offsetTol is the actual slack on the distance comparison itself. These
// two tolerances must stay in step with whichever offset_tol the raw-offset
// generation used, or false positives/negatives appear near joins.
//
// stack is caller-owned scratch reused across calls to avoid per-query
// allocation, matching aabbindex's reusable QueryStack convention.
func PointValidForOffset(point geom2d.Vector2, offset float64, loop *Polyline, loopIndex *aabbindex.StaticAABB2DIndex, stack *aabbindex.QueryStack, posEqualEps, offsetTol float64) bool {
	if loopIndex == nil {
		return true
	}
	absOffset := math.Abs(offset)
	queryBox := geom2d.AABB{
		MinX: point.X - absOffset - posEqualEps,
		MinY: point.Y - absOffset - posEqualEps,
		MaxX: point.X + absOffset + posEqualEps,
		MaxY: point.Y + absOffset + posEqualEps,
	}

	valid := true
	loopIndex.VisitQueryWithStack(queryBox, func(segIdx int) {
		if !valid {
			return
		}
		dist := geom2d.DistPointToSegment(point, loop.SegStart(segIdx), loop.SegEnd(segIdx), loop.SegBulge(segIdx))
		if dist < absOffset-offsetTol {
			valid = false
		}
	}, stack)
	return valid
}
