// Package offset implements the single-polyline parallel offset routine:
// arc-aware segment offsetting, corner joining, and a check of the result
// against its source loop using pline's offset-validity predicate. The shape
// package's raw offset generation is the sole caller.
package offset

import (
	"math"

	"github.com/go-clipper/loopoffset/aabbindex"
	"github.com/go-clipper/loopoffset/geom2d"
	"github.com/go-clipper/loopoffset/pline"
)

// Options configures ParallelOffset. AABBIndex, if set, is the source
// loop's spatial index, used for the validity probe of the result (one is
// built from the loop when it is nil). HandleSelfIntersects is accepted for
// interface parity and is not consulted: every caller in this module passes
// false, and this package performs no self-intersection slicing.
type Options struct {
	AABBIndex            *aabbindex.StaticAABB2DIndex
	HandleSelfIntersects bool
}

// segment is one post-offset (or pre-offset, as orig) straight or arc run.
type segment struct {
	p1, p2 geom2d.Vector2
	bulge  float64
}

// ParallelOffset offsets every point of the closed loop by dist along its
// own right-hand normal and stitches the per-segment results back together
// at each vertex: a connecting arc where the offset opens a gap, or a trim
// to the nearest line/arc intersection where it would otherwise overlap.
// Returns the single resulting raw offset loop, or nil if loop is too small
// to offset (fewer than 2 segments) or the midpoint of the result's first
// segment lies closer than |dist| (less a 1e-4 slack) to loop.
//
// The routine never performs the general self-intersection slicing a
// standalone offset primitive would; beyond the single midpoint probe above,
// the shape package's own area-sign discard rule on each raw offset
// candidate absorbs narrow-region collapse.
func ParallelOffset(loop *pline.Polyline, dist float64, opts Options) []*pline.Polyline {
	n := loop.SegmentCount()
	if n < 2 || !loop.IsClosed() {
		return nil
	}

	orig := make([]segment, n)
	offsetSegs := make([]segment, n)
	for i := 0; i < n; i++ {
		p1, p2, bulge := loop.SegStart(i), loop.SegEnd(i), loop.SegBulge(i)
		orig[i] = segment{p1, p2, bulge}
		if geom2d.IsStraight(bulge) {
			np1, np2 := offsetStraight(p1, p2, dist)
			offsetSegs[i] = segment{np1, np2, 0}
			continue
		}
		np1, np2, nb, ok := offsetArc(p1, p2, bulge, dist)
		if !ok {
			// The offset collapses this arc past its center: leave the
			// segment in place so the corner joins around it still produce
			// a well-formed (if locally wrong) loop for the area-sign
			// discard in RawOffsetGenerator to catch.
			offsetSegs[i] = segment{p1, p2, bulge}
			continue
		}
		offsetSegs[i] = segment{np1, np2, nb}
	}

	var outVerts []pline.Vertex
	for i := 0; i < n; i++ {
		prevIdx := i - 1
		if prevIdx < 0 {
			prevIdx = n - 1
		}
		prevOff, nextOff := offsetSegs[prevIdx], offsetSegs[i]
		prevOrig, nextOrig := orig[prevIdx], orig[i]
		vertex := loop.At(i).Pos()

		gapP1, gapP2, gapBulge, isGap, trimPoint := computeCornerJoin(vertex, dist, prevOff, nextOff, prevOrig, nextOrig)
		if isGap {
			outVerts = append(outVerts, pline.Vertex{X: gapP1.X, Y: gapP1.Y, Bulge: gapBulge})
			outVerts = append(outVerts, pline.Vertex{X: gapP2.X, Y: gapP2.Y, Bulge: nextOff.bulge})
		} else {
			outVerts = append(outVerts, pline.Vertex{X: trimPoint.X, Y: trimPoint.Y, Bulge: nextOff.bulge})
		}
	}

	if len(outVerts) < 2 {
		return nil
	}
	result := pline.NewClosed(outVerts)

	// An offset pushed past the loop's inradius folds back closer to the
	// source loop than |dist|; probing its first segment's midpoint against
	// the source loop discards it.
	idx := opts.AABBIndex
	if idx == nil {
		idx = loop.CreateApproxAABBIndex()
	}
	mid := geom2d.SegMidpoint(result.SegStart(0), result.SegEnd(0), result.SegBulge(0))
	var stack aabbindex.QueryStack
	if !pline.PointValidForOffset(mid, dist, loop, idx, &stack, 1e-5, 1e-4) {
		return nil
	}
	return []*pline.Polyline{result}
}

// offsetStraight moves both endpoints of a straight segment by dist along
// its right-hand normal.
func offsetStraight(p1, p2 geom2d.Vector2, dist float64) (geom2d.Vector2, geom2d.Vector2) {
	delta := p2.Sub(p1).Normalized().RightNormal().Scale(dist)
	return p1.Add(delta), p2.Add(delta)
}

// offsetArc moves every point of the arc radially by dist, leaving its
// center and bulge (included angle) unchanged. A CCW arc's right-hand
// normal points away from the center, so dist grows its radius; a CW arc's
// points toward the center, so dist shrinks it — uniformly captured as
// newRadius = radius + dist*sign(bulge). Returns ok=false if the offset
// would collapse the radius to zero or invert it.
func offsetArc(p1, p2 geom2d.Vector2, bulge, dist float64) (np1, np2 geom2d.Vector2, newBulge float64, ok bool) {
	radius, center := geom2d.ArcRadiusAndCenter(p1, p2, bulge)
	sign := 1.0
	if bulge < 0 {
		sign = -1.0
	}
	newRadius := radius + dist*sign
	if newRadius <= 1e-9 {
		return geom2d.Vector2{}, geom2d.Vector2{}, 0, false
	}
	np1 = center.Add(p1.Sub(center).Normalized().Scale(newRadius))
	np2 = center.Add(p2.Sub(center).Normalized().Scale(newRadius))
	return np1, np2, bulge, true
}

// sweepAngle returns the signed angle swept from ray center->from to ray
// center->to, extended forward (ccw) or backward (cw) so it lands on the
// requested side of the starting ray.
func sweepAngle(center, from, to geom2d.Vector2, ccw bool) float64 {
	a1 := math.Atan2(from.Y-center.Y, from.X-center.X)
	a2 := math.Atan2(to.Y-center.Y, to.X-center.X)
	if ccw {
		for a2 < a1 {
			a2 += 2 * math.Pi
		}
	} else {
		for a2 > a1 {
			a2 -= 2 * math.Pi
		}
	}
	return a2 - a1
}
