package geom2d

import "math"

// DistPointToSegment returns the shortest distance from p to the segment
// from v1 to v2 (bulge describing the arc from v1 to v2, or zero for a
// straight segment).
func DistPointToSegment(p, v1, v2 Vector2, bulge Bulge) float64 {
	if IsStraight(bulge) {
		return distPointToLineSegment(p, v1, v2)
	}
	return distPointToArcSegment(p, v1, v2, bulge)
}

func distPointToLineSegment(p, v1, v2 Vector2) float64 {
	t := LineParam(v1, v2, p)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Dist(p, Lerp(v1, v2, t))
}

func distPointToArcSegment(p, v1, v2 Vector2, bulge Bulge) float64 {
	radius, center := ArcRadiusAndCenter(v1, v2, bulge)
	toP := p.Sub(center)
	d := toP.Length()

	onCircle := center
	if d > 0 {
		onCircle = Vector2{X: center.X + toP.X/d*radius, Y: center.Y + toP.Y/d*radius}
	} else {
		onCircle = Vector2{X: center.X + radius, Y: center.Y}
	}

	ccw := bulge > 0
	startAngle := math.Atan2(v1.Y-center.Y, v1.X-center.X)
	endAngle := math.Atan2(v2.Y-center.Y, v2.X-center.X)
	endAngle = advanceToward(endAngle, startAngle, ccw)

	angle := math.Atan2(onCircle.Y-center.Y, onCircle.X-center.X)
	angle = advanceToward(angle, startAngle, ccw)

	within := angle >= startAngle && angle <= endAngle
	if !ccw {
		within = angle <= startAngle && angle >= endAngle
	}
	if within {
		return Dist(p, onCircle)
	}
	return math.Min(Dist(p, v1), Dist(p, v2))
}
