package offset

import (
	"math"

	"github.com/go-clipper/loopoffset/geom2d"
)

const joinEps = 1e-9

// computeCornerJoin decides how the offset of the segment ending at vertex
// (prevOff) meets the offset of the segment starting at vertex (nextOff).
// If the offset opens a gap at this corner (a convex turn being pushed
// outward), it returns the two endpoints of that gap plus the bulge of a
// connecting arc of radius |dist| centered on vertex, with isGap true.
// Otherwise it returns the single point where the two (possibly extended)
// offset segments meet, with isGap false.
func computeCornerJoin(vertex geom2d.Vector2, dist float64, prevOff, nextOff, prevOrig, nextOrig segment) (gapP1, gapP2 geom2d.Vector2, gapBulge float64, isGap bool, trimPoint geom2d.Vector2) {
	incomingDir := geom2d.TangentDirection(prevOrig.p1, prevOrig.p2, prevOrig.bulge, vertex)
	outgoingDir := geom2d.TangentDirection(nextOrig.p1, nextOrig.p2, nextOrig.bulge, vertex)
	turn := geom2d.CrossVec(incomingDir, outgoingDir)

	if dist*turn > joinEps {
		ccw := turn > 0
		angle := sweepAngle(vertex, prevOff.p2, nextOff.p1, ccw)
		return prevOff.p2, nextOff.p1, geom2d.BulgeFromIncludedAngle(angle), true, geom2d.Vector2{}
	}

	pt, ok := trimIntersect(vertex, prevOff, nextOff)
	if !ok {
		pt = geom2d.Lerp(prevOff.p2, nextOff.p1, 0.5)
	}
	return geom2d.Vector2{}, geom2d.Vector2{}, 0, false, pt
}

// trimIntersect finds where the infinite extensions of prev and next meet,
// preferring (for the two-solution arc cases) the candidate nearest near.
func trimIntersect(near geom2d.Vector2, prev, next segment) (geom2d.Vector2, bool) {
	prevStraight := geom2d.IsStraight(prev.bulge)
	nextStraight := geom2d.IsStraight(next.bulge)

	switch {
	case prevStraight && nextStraight:
		return lineLineInfinite(prev.p1, prev.p2, next.p1, next.p2)
	case prevStraight && !nextStraight:
		return lineCircleNearest(prev.p1, prev.p2, next.p1, next.p2, next.bulge, near)
	case !prevStraight && nextStraight:
		return lineCircleNearest(next.p1, next.p2, prev.p1, prev.p2, prev.bulge, near)
	default:
		return circleCircleNearest(prev.p1, prev.p2, prev.bulge, next.p1, next.p2, next.bulge, near)
	}
}

// lineLineInfinite intersects the infinite lines through a1-a2 and b1-b2.
func lineLineInfinite(a1, a2, b1, b2 geom2d.Vector2) (geom2d.Vector2, bool) {
	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)
	denom := geom2d.CrossVec(d1, d2)
	if math.Abs(denom) < joinEps {
		return geom2d.Vector2{}, false
	}
	diff := b1.Sub(a1)
	t := geom2d.CrossVec(diff, d2) / denom
	return a1.Add(d1.Scale(t)), true
}

// lineCircleNearest intersects the infinite line through lineA-lineB with
// the full circle of the arc arcA-arcB (bulge), returning whichever root
// lies closest to near.
func lineCircleNearest(lineA, lineB, arcA, arcB geom2d.Vector2, bulge float64, near geom2d.Vector2) (geom2d.Vector2, bool) {
	radius, center := geom2d.ArcRadiusAndCenter(arcA, arcB, bulge)
	d := lineB.Sub(lineA)
	f := lineA.Sub(center)

	a := d.X*d.X + d.Y*d.Y
	if a < joinEps {
		return geom2d.Vector2{}, false
	}
	b := 2 * (f.X*d.X + f.Y*d.Y)
	c := f.X*f.X + f.Y*f.Y - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return geom2d.Vector2{}, false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	p1 := lineA.Add(d.Scale(t1))
	p2 := lineA.Add(d.Scale(t2))
	if geom2d.Dist(p1, near) <= geom2d.Dist(p2, near) {
		return p1, true
	}
	return p2, true
}

// circleCircleNearest intersects the full circles of the two arcs,
// returning whichever of the (up to two) candidate points lies closest to
// near.
func circleCircleNearest(c1a, c1b geom2d.Vector2, bulge1 float64, c2a, c2b geom2d.Vector2, bulge2 float64, near geom2d.Vector2) (geom2d.Vector2, bool) {
	r1, center1 := geom2d.ArcRadiusAndCenter(c1a, c1b, bulge1)
	r2, center2 := geom2d.ArcRadiusAndCenter(c2a, c2b, bulge2)

	d := geom2d.Dist(center1, center2)
	if d < joinEps {
		return geom2d.Vector2{}, false
	}
	if d > r1+r2+joinEps || d < math.Abs(r1-r2)-joinEps {
		return geom2d.Vector2{}, false
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

	p1 := mid.Add(perp.Scale(h))
	p2 := mid.Sub(perp.Scale(h))
	if geom2d.Dist(p1, near) <= geom2d.Dist(p2, near) {
		return p1, true
	}
	return p2, true
}
