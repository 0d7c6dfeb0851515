package pline

import (
	"math"

	"github.com/go-clipper/loopoffset/aabbindex"
	"github.com/go-clipper/loopoffset/geom2d"
)

// intersectEps is the numerical tolerance used inside the segment-segment
// intersection math itself (degeneracy checks, angle-sweep slack). It is
// deliberately distinct from the shape package's join/validity tolerances —
// this is purely about floating point noise in the geometric kernel, not a
// semantic join/validity tolerance.
const intersectEps = 1e-9

// PlineBasicIntersect is a single point where two polylines' segments
// cross, naming the starting vertex index of the segment on each polyline
// that produced it.
type PlineBasicIntersect struct {
	StartIndex1, StartIndex2 int
	Point                    geom2d.Vector2
}

// PlineOverlappingIntersect is a maximal collinear-overlap run between a
// straight segment on each polyline.
type PlineOverlappingIntersect struct {
	StartIndex1, StartIndex2 int
	Point1, Point2           geom2d.Vector2
}

// FindIntersectsOptions configures FindIntersects.
type FindIntersectsOptions struct {
	// Pline1AABBIndex, if set, is used to prune the segment scan instead of
	// rebuilding an index for the receiver on every call.
	Pline1AABBIndex *aabbindex.StaticAABB2DIndex
}

// FindIntersectsResult bundles both intersection shapes: isolated crossing
// points and maximal collinear-overlap runs.
type FindIntersectsResult struct {
	BasicIntersects       []PlineBasicIntersect
	OverlappingIntersects []PlineOverlappingIntersect
}

// FindIntersects finds every point (or collinear overlap) where a segment of
// p1 crosses a segment of other.
func (p1 *Polyline) FindIntersects(other *Polyline, opts FindIntersectsOptions) FindIntersectsResult {
	idx := opts.Pline1AABBIndex
	if idx == nil {
		idx = p1.CreateApproxAABBIndex()
	}
	var result FindIntersectsResult
	if idx == nil {
		return result
	}

	var stack aabbindex.QueryStack
	otherSegCount := other.SegmentCount()
	for j := 0; j < otherSegCount; j++ {
		b2start, b2end, b2bulge := other.SegStart(j), other.SegEnd(j), other.SegBulge(j)
		box := geom2d.SegmentApproxBox(b2start, b2end, b2bulge)

		candidates := idx.QueryWithStack(box, &stack)
		for _, i := range candidates {
			a1start, a1end, a1bulge := p1.SegStart(i), p1.SegEnd(i), p1.SegBulge(i)
			points, overlap := segmentIntersect(a1start, a1end, a1bulge, b2start, b2end, b2bulge)
			for _, pt := range points {
				result.BasicIntersects = append(result.BasicIntersects, PlineBasicIntersect{
					StartIndex1: i, StartIndex2: j, Point: pt,
				})
			}
			if overlap != nil {
				result.OverlappingIntersects = append(result.OverlappingIntersects, PlineOverlappingIntersect{
					StartIndex1: i, StartIndex2: j, Point1: overlap[0], Point2: overlap[1],
				})
			}
		}
	}
	return result
}

// segmentIntersect dispatches to the line-line, line-arc, or arc-arc
// routine based on which of bulge1/bulge2 are zero.
func segmentIntersect(p1a, p1b geom2d.Vector2, bulge1 float64, p2a, p2b geom2d.Vector2, bulge2 float64) (points []geom2d.Vector2, overlap *[2]geom2d.Vector2) {
	straight1 := geom2d.IsStraight(bulge1)
	straight2 := geom2d.IsStraight(bulge2)

	switch {
	case straight1 && straight2:
		return lineLineIntersect(p1a, p1b, p2a, p2b)
	case straight1 && !straight2:
		return lineArcIntersect(p1a, p1b, p2a, p2b, bulge2), nil
	case !straight1 && straight2:
		return lineArcIntersect(p2a, p2b, p1a, p1b, bulge1), nil
	default:
		return arcArcIntersect(p1a, p1b, bulge1, p2a, p2b, bulge2), nil
	}
}

// lineLineIntersect finds the crossing of two line segments, and reports a
// collinear overlap run (as an OverlappingIntersect-shaped pair of points)
// instead of a single point when the segments lie on the same infinite line
// and their parameter ranges overlap.
func lineLineIntersect(a1, a2, b1, b2 geom2d.Vector2) (points []geom2d.Vector2, overlap *[2]geom2d.Vector2) {
	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)
	denom := geom2d.CrossVec(d1, d2)

	if math.Abs(denom) > intersectEps {
		diff := b1.Sub(a1)
		t := geom2d.CrossVec(diff, d2) / denom
		u := geom2d.CrossVec(diff, d1) / denom
		if t >= -intersectEps && t <= 1+intersectEps && u >= -intersectEps && u <= 1+intersectEps {
			return []geom2d.Vector2{geom2d.Lerp(a1, a2, clamp01(t))}, nil
		}
		return nil, nil
	}

	// Parallel. Collinear iff b1 lies on the infinite line through a1,a2.
	if math.Abs(geom2d.Cross(a1, a2, b1)) > intersectEps*math.Max(1, d1.Length()) {
		return nil, nil
	}

	// Project every endpoint onto the a1->a2 parameter axis.
	len2 := d1.X*d1.X + d1.Y*d1.Y
	if len2 < intersectEps {
		return nil, nil
	}
	paramOf := func(p geom2d.Vector2) float64 {
		return geom2d.DotVec(p.Sub(a1), d1) / len2
	}
	ta1, ta2 := 0.0, 1.0
	tb1, tb2 := paramOf(b1), paramOf(b2)
	loB, hiB := tb1, tb2
	if loB > hiB {
		loB, hiB = hiB, loB
	}
	lo := math.Max(ta1, loB)
	hi := math.Min(ta2, hiB)
	if lo > hi+intersectEps {
		return nil, nil
	}
	if hi-lo < intersectEps {
		// touching at a single point, not a true overlap run
		return []geom2d.Vector2{geom2d.Lerp(a1, a2, clamp01(lo))}, nil
	}
	p1 := geom2d.Lerp(a1, a2, clamp01(lo))
	p2 := geom2d.Lerp(a1, a2, clamp01(hi))
	return nil, &[2]geom2d.Vector2{p1, p2}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// lineArcIntersect finds the points where the line segment a1-a2 crosses
// the arc segment c1-c2 (bulge describing the arc from c1 to c2).
func lineArcIntersect(a1, a2, c1, c2 geom2d.Vector2, bulge float64) []geom2d.Vector2 {
	radius, center := geom2d.ArcRadiusAndCenter(c1, c2, bulge)
	d := a2.Sub(a1)
	f := a1.Sub(center)

	A := d.X*d.X + d.Y*d.Y
	if A < intersectEps {
		return nil
	}
	B := 2 * (f.X*d.X + f.Y*d.Y)
	C := f.X*f.X + f.Y*f.Y - radius*radius

	disc := B*B - 4*A*C
	if disc < 0 {
		return nil
	}
	sqrtDisc := math.Sqrt(disc)

	var out []geom2d.Vector2
	for _, t := range []float64{(-B - sqrtDisc) / (2 * A), (-B + sqrtDisc) / (2 * A)} {
		if t < -intersectEps || t > 1+intersectEps {
			continue
		}
		p := geom2d.Lerp(a1, a2, clamp01(t))
		if withinArcSweep(center, p, c1, c2, bulge) {
			out = appendIfNew(out, p)
		}
	}
	return out
}

// arcArcIntersect finds the points where two arc segments cross, via
// circle-circle intersection followed by an angular-sweep bounds check on
// each arc. Concentric, identically-radius circles (a continuum of
// "overlap" rather than discrete points) are treated as non-intersecting,
// a deliberate simplification: this case only arises from two arcs sharing
// an exact center, which a full self-intersection routine would resolve.
func arcArcIntersect(c1a, c1b geom2d.Vector2, bulge1 float64, c2a, c2b geom2d.Vector2, bulge2 float64) []geom2d.Vector2 {
	r1, center1 := geom2d.ArcRadiusAndCenter(c1a, c1b, bulge1)
	r2, center2 := geom2d.ArcRadiusAndCenter(c2a, c2b, bulge2)

	d := geom2d.Dist(center1, center2)
	if d < intersectEps {
		return nil // concentric: skip, see doc comment above
	}
	if d > r1+r2+intersectEps || d < math.Abs(r1-r2)-intersectEps {
		return nil
	}

	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h2 := r1*r1 - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)

	dir := center2.Sub(center1).Scale(1 / d)
	mid := center1.Add(dir.Scale(a))
	perp := dir.LeftNormal()

	candidates := []geom2d.Vector2{mid.Add(perp.Scale(h)), mid.Sub(perp.Scale(h))}

	var out []geom2d.Vector2
	for _, p := range candidates {
		if !withinArcSweep(center1, p, c1a, c1b, bulge1) {
			continue
		}
		if !withinArcSweep(center2, p, c2a, c2b, bulge2) {
			continue
		}
		out = appendIfNew(out, p)
	}
	return out
}

// withinArcSweep reports whether p (assumed to already lie on the arc's
// circle) falls within the angular sweep from v1 to v2 described by bulge.
func withinArcSweep(center, p, v1, v2 geom2d.Vector2, bulge float64) bool {
	const angTol = 1e-7
	startAngle := math.Atan2(v1.Y-center.Y, v1.X-center.X)
	endAngle := math.Atan2(v2.Y-center.Y, v2.X-center.X)
	angle := math.Atan2(p.Y-center.Y, p.X-center.X)

	if bulge > 0 {
		for endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
		for angle < startAngle-angTol {
			angle += 2 * math.Pi
		}
		return angle <= endAngle+angTol
	}
	for endAngle > startAngle {
		endAngle -= 2 * math.Pi
	}
	for angle > startAngle+angTol {
		angle -= 2 * math.Pi
	}
	return angle >= endAngle-angTol
}

func appendIfNew(points []geom2d.Vector2, p geom2d.Vector2) []geom2d.Vector2 {
	for _, existing := range points {
		if geom2d.FuzzyEqual(existing, p, intersectEps) {
			return points
		}
	}
	return append(points, p)
}
