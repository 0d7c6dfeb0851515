// Package pline implements bulge-aware polyline primitives: segment
// geometry, arc midpoint computation, area/orientation, intersection
// between two polylines, and slice/view construction. The shape and offset
// packages are both built on top of this package.
package pline

import (
	"github.com/go-clipper/loopoffset/geom2d"
)

// Vertex is one control point of a Polyline: a position plus the bulge of
// the segment starting at this vertex and ending at the next one.
type Vertex struct {
	X, Y  float64
	Bulge float64
}

// Pos returns the vertex's position as a geom2d.Vector2.
func (v Vertex) Pos() geom2d.Vector2 {
	return geom2d.Vector2{X: v.X, Y: v.Y}
}

// Polyline is a closed or open chain of straight and circular-arc segments.
type Polyline struct {
	vertices []Vertex
	closed   bool
}

// New returns an empty, open polyline.
func New() *Polyline {
	return &Polyline{}
}

// NewClosed returns a closed polyline from the given vertices.
func NewClosed(vertices []Vertex) *Polyline {
	return &Polyline{vertices: append([]Vertex(nil), vertices...), closed: true}
}

// NewOpen returns an open polyline from the given vertices.
func NewOpen(vertices []Vertex) *Polyline {
	return &Polyline{vertices: append([]Vertex(nil), vertices...), closed: false}
}

// VertexCount returns the number of vertices.
func (p *Polyline) VertexCount() int {
	return len(p.vertices)
}

// IsClosed reports whether the polyline wraps from its last vertex back to
// its first.
func (p *Polyline) IsClosed() bool {
	return p.closed
}

// SetIsClosed sets the closed flag.
func (p *Polyline) SetIsClosed(closed bool) {
	p.closed = closed
}

// At returns the i-th vertex.
func (p *Polyline) At(i int) Vertex {
	return p.vertices[i]
}

// SetAt replaces the i-th vertex.
func (p *Polyline) SetAt(i int, v Vertex) {
	p.vertices[i] = v
}

// AddVertex appends a vertex.
func (p *Polyline) AddVertex(v Vertex) {
	p.vertices = append(p.vertices, v)
}

// Add appends a vertex given its raw fields.
func (p *Polyline) Add(x, y, bulge float64) {
	p.vertices = append(p.vertices, Vertex{X: x, Y: y, Bulge: bulge})
}

// RemoveLast drops the final vertex, if any.
func (p *Polyline) RemoveLast() {
	if len(p.vertices) == 0 {
		return
	}
	p.vertices = p.vertices[:len(p.vertices)-1]
}

// SegmentCount returns the number of segments: equal to VertexCount for a
// closed polyline (the last segment wraps from the last vertex to the
// first) and VertexCount-1 for an open one.
func (p *Polyline) SegmentCount() int {
	n := len(p.vertices)
	if n == 0 {
		return 0
	}
	if p.closed {
		return n
	}
	return n - 1
}

// NextIndex returns the vertex index following i, wrapping for closed
// polylines.
func (p *Polyline) NextIndex(i int) int {
	n := len(p.vertices)
	if i+1 < n {
		return i + 1
	}
	return 0
}

// PrevIndex returns the vertex index preceding i, wrapping for closed
// polylines.
func (p *Polyline) PrevIndex(i int) int {
	if i > 0 {
		return i - 1
	}
	return len(p.vertices) - 1
}

// SegStart returns segment i's start position.
func (p *Polyline) SegStart(i int) geom2d.Vector2 {
	return p.vertices[i].Pos()
}

// SegEnd returns segment i's end position.
func (p *Polyline) SegEnd(i int) geom2d.Vector2 {
	return p.vertices[p.NextIndex(i)].Pos()
}

// SegBulge returns segment i's bulge.
func (p *Polyline) SegBulge(i int) float64 {
	return p.vertices[i].Bulge
}

// Clone returns a deep copy.
func (p *Polyline) Clone() *Polyline {
	return &Polyline{
		vertices: append([]Vertex(nil), p.vertices...),
		closed:   p.closed,
	}
}

// Vertices returns the underlying vertex slice for read-only iteration.
// Callers must not mutate the returned slice.
func (p *Polyline) Vertices() []Vertex {
	return p.vertices
}
