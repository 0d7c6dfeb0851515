package pline

import "github.com/go-clipper/loopoffset/geom2d"

// Orientation classifies a closed polyline's winding direction.
type Orientation int

const (
	// Unknown is returned for degenerate (area ~ 0) loops.
	Unknown Orientation = iota
	CounterClockwise
	Clockwise
)

// Area returns the signed area of the polyline. For an open polyline the
// closing segment from the last vertex back to the first is left out of the
// sum (the shape-level algorithm only ever calls this on loops). Positive
// area is counter-clockwise winding.
//
// The sum is the standard shoelace formula over each segment's chord, plus
// the signed circular-segment correction for arc segments.
func (p *Polyline) Area() float64 {
	n := len(p.vertices)
	if n < 2 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := p.NextIndex(i)
		if !p.closed && j == 0 {
			break
		}
		v1, v2 := p.vertices[i], p.vertices[j]
		area += v1.X*v2.Y - v2.X*v1.Y
		area += 2 * geom2d.SignedCircularSegmentArea(v1.Pos(), v2.Pos(), v1.Bulge)
	}
	return area / 2
}

// Orientation classifies the polyline by the sign of its Area.
func (p *Polyline) Orientation() Orientation {
	a := p.Area()
	switch {
	case a > 0:
		return CounterClockwise
	case a < 0:
		return Clockwise
	default:
		return Unknown
	}
}
