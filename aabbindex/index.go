// Package aabbindex implements a static (build-once, query-many) axis-aligned
// bounding box index, bulk-loaded with a sort-tile-recursive (STR) packing.
package aabbindex

import (
	"github.com/go-clipper/loopoffset/geom2d"
)

// nodeSize bounds how many children a single internal node packs.
const nodeSize = 16

type node struct {
	box geom2d.AABB
	// itemIndex is valid (>= 0) only for leaf nodes, naming the original
	// insertion index passed to Builder.Add.
	itemIndex int
	// childStart/childEnd bound (inclusive) the child range in the
	// level below, valid only for internal nodes (itemIndex < 0).
	childStart, childEnd int
}

// StaticAABB2DIndex is an immutable, bulk-loaded bounding-box tree.
type StaticAABB2DIndex struct {
	levels [][]node // levels[0] = leaves; last level has exactly one root node
	bounds geom2d.AABB
}

// MinX, MinY, MaxX, MaxY return the overall bounding box of every item added
// to the index.
func (idx *StaticAABB2DIndex) MinX() float64 { return idx.bounds.MinX }
func (idx *StaticAABB2DIndex) MinY() float64 { return idx.bounds.MinY }
func (idx *StaticAABB2DIndex) MaxX() float64 { return idx.bounds.MaxX }
func (idx *StaticAABB2DIndex) MaxY() float64 { return idx.bounds.MaxY }

// Bounds returns the overall bounding box as a geom2d.AABB.
func (idx *StaticAABB2DIndex) Bounds() geom2d.AABB { return idx.bounds }

// QueryStack is scratch state reused across calls to QueryWithStack /
// VisitQueryWithStack so repeated queries (the pairwise intersector and
// stitcher both query in a loop) don't allocate per call.
type QueryStack struct {
	frames []frame
}

type frame struct {
	level, node int
}

// QueryWithStack returns the original item indices whose boxes intersect the
// query box, reusing stack as scratch space across calls.
func (idx *StaticAABB2DIndex) QueryWithStack(box geom2d.AABB, stack *QueryStack) []int {
	var results []int
	idx.VisitQueryWithStack(box, func(i int) { results = append(results, i) }, stack)
	return results
}

// VisitQueryWithStack calls visit once per original item index whose box
// intersects the query box, reusing stack as scratch space across calls and
// avoiding the result-slice allocation QueryWithStack incurs.
func (idx *StaticAABB2DIndex) VisitQueryWithStack(box geom2d.AABB, visit func(int), stack *QueryStack) {
	if len(idx.levels) == 0 {
		return
	}
	if stack.frames == nil {
		stack.frames = make([]frame, 0, 32)
	}
	stack.frames = stack.frames[:0]

	rootLevel := len(idx.levels) - 1
	stack.frames = append(stack.frames, frame{level: rootLevel, node: 0})

	for len(stack.frames) > 0 {
		f := stack.frames[len(stack.frames)-1]
		stack.frames = stack.frames[:len(stack.frames)-1]

		n := idx.levels[f.level][f.node]
		if !n.box.Intersects(box) {
			continue
		}
		if f.level == 0 {
			visit(n.itemIndex)
			continue
		}
		for c := n.childStart; c <= n.childEnd; c++ {
			stack.frames = append(stack.frames, frame{level: f.level - 1, node: c})
		}
	}
}
