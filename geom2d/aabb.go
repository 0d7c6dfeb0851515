package geom2d

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyAABB returns a box with inverted bounds suitable as the identity
// element for Union (any real box unions it to itself).
func EmptyAABB() AABB {
	return AABB{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// Union returns the smallest box containing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		MinX: math.Min(a.MinX, b.MinX),
		MinY: math.Min(a.MinY, b.MinY),
		MaxX: math.Max(a.MaxX, b.MaxX),
		MaxY: math.Max(a.MaxY, b.MaxY),
	}
}

// Expand returns a grown by margin on every side.
func (a AABB) Expand(margin float64) AABB {
	return AABB{
		MinX: a.MinX - margin, MinY: a.MinY - margin,
		MaxX: a.MaxX + margin, MaxY: a.MaxY + margin,
	}
}

// Intersects reports whether a and b overlap (touching counts as overlap).
func (a AABB) Intersects(b AABB) bool {
	return a.MinX <= b.MaxX && b.MinX <= a.MaxX && a.MinY <= b.MaxY && b.MinY <= a.MaxY
}

// BoxFromPoints returns the bounding box of an arbitrary set of points.
func BoxFromPoints(points ...Vector2) AABB {
	box := EmptyAABB()
	for _, p := range points {
		if p.X < box.MinX {
			box.MinX = p.X
		}
		if p.Y < box.MinY {
			box.MinY = p.Y
		}
		if p.X > box.MaxX {
			box.MaxX = p.X
		}
		if p.Y > box.MaxY {
			box.MaxY = p.Y
		}
	}
	return box
}

// SegmentApproxBox returns an approximate bounding box for the segment from
// v1 to v2 with the given bulge. For straight segments this is exact; for
// arcs it is the chord box expanded by the sagitta (the maximum distance
// from chord to arc), which over-covers the true arc extent slightly but is
// cheap and always conservative.
func SegmentApproxBox(v1, v2 Vector2, bulge Bulge) AABB {
	box := BoxFromPoints(v1, v2)
	if IsStraight(bulge) {
		return box
	}
	radius, _ := ArcRadiusAndCenter(v1, v2, bulge)
	theta := math.Abs(IncludedAngle(bulge))
	sagitta := radius * (1 - math.Cos(theta/2))
	if sagitta < 0 {
		sagitta = 0
	}
	// also make sure the box covers the arc's own extreme bounding circle
	// region near the midpoint, not just the chord endpoints
	mid := ArcMidpoint(v1, v2, bulge)
	box = box.Union(BoxFromPoints(mid))
	return box.Expand(sagitta)
}
