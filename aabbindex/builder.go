package aabbindex

import (
	"math"
	"sort"

	"github.com/go-clipper/loopoffset/geom2d"
)

// Builder accumulates item boxes and bulk-loads them into a
// StaticAABB2DIndex on Build.
type Builder struct {
	boxes []geom2d.AABB
}

// NewBuilder creates a Builder with room for capacityHint items (a sizing
// hint only; Add works regardless of how many items are actually added).
func NewBuilder(capacityHint int) *Builder {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Builder{boxes: make([]geom2d.AABB, 0, capacityHint)}
}

// Add appends one item's bounding box.
func (b *Builder) Add(minX, minY, maxX, maxY float64) {
	b.boxes = append(b.boxes, geom2d.AABB{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY})
}

// Build bulk-loads the accumulated boxes into an immutable index using
// sort-tile-recursive packing. Returns an error if no items were added —
// callers construct an index only when they have something to index.
func (b *Builder) Build() (*StaticAABB2DIndex, error) {
	n := len(b.boxes)
	if n == 0 {
		return nil, ErrEmptyIndex
	}

	leaves := strPack(b.boxes)

	idx := &StaticAABB2DIndex{levels: [][]node{leaves}}
	for len(idx.levels[len(idx.levels)-1]) > 1 {
		idx.levels = append(idx.levels, buildParentLevel(idx.levels[len(idx.levels)-1]))
	}

	overall := geom2d.EmptyAABB()
	for _, lf := range leaves {
		overall = overall.Union(lf.box)
	}
	idx.bounds = overall

	return idx, nil
}

// strPack orders items via sort-tile-recursive packing (sort into
// sqrt(n)-ish vertical strips by center X, then sort each strip by center Y)
// and returns the resulting leaf nodes, each remembering its original
// insertion index.
func strPack(boxes []geom2d.AABB) []node {
	n := len(boxes)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	centerX := func(i int) float64 { return (boxes[i].MinX + boxes[i].MaxX) / 2 }
	centerY := func(i int) float64 { return (boxes[i].MinY + boxes[i].MaxY) / 2 }

	sort.Slice(order, func(a, b int) bool { return centerX(order[a]) < centerX(order[b]) })

	numStrips := int(math.Ceil(math.Sqrt(float64(n) / float64(nodeSize))))
	if numStrips < 1 {
		numStrips = 1
	}
	stripSize := int(math.Ceil(float64(n) / float64(numStrips)))
	if stripSize < 1 {
		stripSize = n
	}

	for start := 0; start < n; start += stripSize {
		end := start + stripSize
		if end > n {
			end = n
		}
		strip := order[start:end]
		sort.Slice(strip, func(a, b int) bool { return centerY(strip[a]) < centerY(strip[b]) })
	}

	leaves := make([]node, n)
	for pos, itemIdx := range order {
		leaves[pos] = node{box: boxes[itemIdx], itemIndex: itemIdx, childStart: -1, childEnd: -1}
	}
	return leaves
}

// buildParentLevel groups nodeSize-sized consecutive runs of the child level
// into parent nodes whose box is the union of their children.
func buildParentLevel(children []node) []node {
	parentCount := (len(children) + nodeSize - 1) / nodeSize
	parents := make([]node, 0, parentCount)
	for start := 0; start < len(children); start += nodeSize {
		end := start + nodeSize
		if end > len(children) {
			end = len(children)
		}
		box := geom2d.EmptyAABB()
		for _, c := range children[start:end] {
			box = box.Union(c.box)
		}
		parents = append(parents, node{
			box:        box,
			itemIndex:  -1,
			childStart: start,
			childEnd:   end - 1,
		})
	}
	return parents
}
