package geom2d

import "math"

// Bulge encodes a circular arc between two successive polyline vertices as
// tan(includedAngle/4), the DXF/LWPOLYLINE convention: zero is a straight
// segment, positive sweeps counter-clockwise from the start vertex to the
// end vertex, negative sweeps clockwise.
type Bulge = float64

// IsStraight reports whether a bulge value denotes a straight segment.
func IsStraight(bulge Bulge) bool {
	return bulge == 0
}

// IncludedAngle returns the signed angle (radians) swept by an arc with the
// given bulge: positive for a counter-clockwise sweep.
func IncludedAngle(bulge Bulge) float64 {
	return 4 * math.Atan(bulge)
}

// BulgeFromIncludedAngle is the inverse of IncludedAngle.
func BulgeFromIncludedAngle(angle float64) Bulge {
	return math.Tan(angle / 4)
}

// ArcRadiusAndCenter recovers the radius and center of the circular arc
// connecting p1 to p2 with the given bulge. Panics-free: callers must not
// invoke this with a zero bulge (IsStraight(bulge) == true).
func ArcRadiusAndCenter(p1, p2 Vector2, bulge Bulge) (radius float64, center Vector2) {
	b := bulge
	d := Dist(p1, p2)
	absB := math.Abs(b)
	radius = d * (1 + b*b) / (4 * absB)

	mid := Vector2{(p1.X + p2.X) / 2, (p1.Y + p2.Y) / 2}
	chord := p2.Sub(p1)
	// apothem: signed distance from the chord midpoint to the center, along
	// the chord's left-hand normal. The sign of b is preserved (not abs),
	// which is what places the center on the correct side for CW vs CCW
	// sweeps.
	apothem := d * (1 - b*b) / (4 * b)
	perp := chord.LeftNormal().Normalized()
	center = Vector2{
		X: mid.X + apothem*perp.X,
		Y: mid.Y + apothem*perp.Y,
	}
	return radius, center
}

// ArcMidpoint returns the point at the angular midpoint of the arc from p1
// to p2 with the given bulge (the point on the arc itself, not the chord
// midpoint).
func ArcMidpoint(p1, p2 Vector2, bulge Bulge) Vector2 {
	radius, center := ArcRadiusAndCenter(p1, p2, bulge)
	startAngle := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	endAngle := math.Atan2(p2.Y-center.Y, p2.X-center.X)

	if bulge > 0 {
		for endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
	} else {
		for endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	}

	midAngle := (startAngle + endAngle) / 2
	return Vector2{
		X: center.X + radius*math.Cos(midAngle),
		Y: center.Y + radius*math.Sin(midAngle),
	}
}

// SegMidpoint returns the midpoint of the segment from v1 to v2, where bulge
// is the bulge stored on v1 (describing the arc from v1 to v2). Straight
// segments use the chord midpoint.
func SegMidpoint(p1, p2 Vector2, bulge Bulge) Vector2 {
	if IsStraight(bulge) {
		return Lerp(p1, p2, 0.5)
	}
	return ArcMidpoint(p1, p2, bulge)
}

// SignedCircularSegmentArea returns the signed area between the chord p1-p2
// and the arc swept by bulge, added to (or subtracted from) the chord's
// shoelace contribution to recover the true polygon area of an arc segment.
func SignedCircularSegmentArea(p1, p2 Vector2, bulge Bulge) float64 {
	if IsStraight(bulge) {
		return 0
	}
	radius, _ := ArcRadiusAndCenter(p1, p2, bulge)
	theta := math.Abs(IncludedAngle(bulge))
	area := radius * radius * (theta - math.Sin(theta)) / 2
	if bulge < 0 {
		area = -area
	}
	return area
}

// TangentDirection returns the unit tangent direction of travel at p, a
// point lying on the segment from v1 to v2 (bulge describes the arc from v1
// to v2, or is zero for a straight segment).
func TangentDirection(v1, v2 Vector2, bulge Bulge, p Vector2) Vector2 {
	if IsStraight(bulge) {
		return v2.Sub(v1).Normalized()
	}
	_, center := ArcRadiusAndCenter(v1, v2, bulge)
	radial := p.Sub(center).Normalized()
	if bulge > 0 {
		// counter-clockwise sweep: tangent is the radial vector rotated +90
		return radial.LeftNormal()
	}
	return radial.RightNormal()
}

// PointOnArc returns the point on the arc from v1 to v2 (bulge describing
// that arc) at signed angular offset from v1, measured in the sweep
// direction.
func PointOnArc(v1, v2 Vector2, bulge Bulge, angleFromStart float64) Vector2 {
	radius, center := ArcRadiusAndCenter(v1, v2, bulge)
	startAngle := math.Atan2(v1.Y-center.Y, v1.X-center.X)
	a := startAngle + angleFromStart
	return Vector2{
		X: center.X + radius*math.Cos(a),
		Y: center.Y + radius*math.Sin(a),
	}
}

// advanceToward nudges angle by whole turns until it sits on the sweep-
// direction side of reference (forward for a CCW/positive sweep, backward
// for CW/negative), the same extension ArcMidpoint and withinArcSweep use to
// compare angles that were each computed independently via atan2.
func advanceToward(angle, reference float64, ccw bool) float64 {
	if ccw {
		for angle < reference {
			angle += 2 * math.Pi
		}
	} else {
		for angle > reference {
			angle -= 2 * math.Pi
		}
	}
	return angle
}

// ArcParam returns how far p (assumed to lie on the arc from v1 to v2, bulge
// describing that arc) has been swept starting from v1, as a signed angle
// with the same sign as bulge: 0 at v1, IncludedAngle(bulge) at v2.
func ArcParam(v1, v2 Vector2, bulge Bulge, p Vector2) float64 {
	_, center := ArcRadiusAndCenter(v1, v2, bulge)
	ccw := bulge > 0
	startAngle := math.Atan2(v1.Y-center.Y, v1.X-center.X)
	angle := math.Atan2(p.Y-center.Y, p.X-center.X)
	angle = advanceToward(angle, startAngle, ccw)
	return angle - startAngle
}

// LineParam returns the parametric position t of p along the line from v1 to
// v2 (p assumed to lie on that line), where t=0 is v1 and t=1 is v2.
func LineParam(v1, v2, p Vector2) float64 {
	d := v2.Sub(v1)
	len2 := d.X*d.X + d.Y*d.Y
	if len2 == 0 {
		return 0
	}
	return DotVec(p.Sub(v1), d) / len2
}

// SubArcBulge returns the bulge of the sub-arc from pFrom to pTo, both
// assumed to lie on the arc from v1 to v2 (bulge describing that arc), with
// pTo swept further along the original sweep direction than pFrom. Returns 0
// for a straight segment (v1/v2/bulge describing a line).
func SubArcBulge(v1, v2 Vector2, bulge Bulge, pFrom, pTo Vector2) Bulge {
	if IsStraight(bulge) {
		return 0
	}
	paramFrom := ArcParam(v1, v2, bulge, pFrom)
	paramTo := ArcParam(v1, v2, bulge, pTo)
	ccw := bulge > 0
	if ccw {
		for paramTo < paramFrom {
			paramTo += 2 * math.Pi
		}
	} else {
		for paramTo > paramFrom {
			paramTo -= 2 * math.Pi
		}
	}
	return BulgeFromIncludedAngle(paramTo - paramFrom)
}
