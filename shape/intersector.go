package shape

import (
	"github.com/rs/zerolog"

	"github.com/go-clipper/loopoffset/aabbindex"
	"github.com/go-clipper/loopoffset/geom2d"
	"github.com/go-clipper/loopoffset/pline"
)

// slicePointSet holds every dissection point between an ordered pair
// (loopIdx1 < loopIdx2) of offset loops. Overlapping (collinear) intersects
// are flattened into two basic points apiece before being stored here, so
// their endpoints act as ordinary dissection boundaries.
type slicePointSet struct {
	loopIdx1, loopIdx2 int
	points             []pline.PlineBasicIntersect
}

// intersectPairwise builds a top-level AABB index over every offset loop's
// bounding box, queries it once per loop, visits each unordered pair exactly
// once in canonical (lower, higher) order, and invokes the polyline-polyline
// intersector on each candidate pair. lookup maps a loop index to the
// indices, into the returned slice, of every slicePointSet it participates
// in.
func intersectPairwise(loops []offsetLoop, logger zerolog.Logger) (sets []slicePointSet, lookup map[int][]int) {
	lookup = make(map[int][]int)
	if len(loops) == 0 {
		return nil, lookup
	}

	b := aabbindex.NewBuilder(len(loops))
	for _, l := range loops {
		b.Add(l.indexed.MinX(), l.indexed.MinY(), l.indexed.MaxX(), l.indexed.MaxY())
	}
	topIndex, err := b.Build()
	if err != nil {
		return nil, lookup
	}

	visited := make(map[[2]int]bool)
	var stack aabbindex.QueryStack

	for i, loopI := range loops {
		box := geom2d.AABB{MinX: loopI.indexed.MinX(), MinY: loopI.indexed.MinY(), MaxX: loopI.indexed.MaxX(), MaxY: loopI.indexed.MaxY()}
		candidates := topIndex.QueryWithStack(box, &stack)

		for _, j := range candidates {
			if i == j {
				continue
			}
			lo, hi := i, j
			if lo > hi {
				lo, hi = hi, lo
			}
			key := [2]int{lo, hi}
			if visited[key] {
				continue
			}
			visited[key] = true

			loLoop, hiLoop := loops[lo], loops[hi]
			result := loLoop.indexed.Polyline.FindIntersects(hiLoop.indexed.Polyline, pline.FindIntersectsOptions{
				Pline1AABBIndex: loLoop.indexed.SpatialIndex,
			})

			combined := append([]pline.PlineBasicIntersect(nil), result.BasicIntersects...)
			for _, ov := range result.OverlappingIntersects {
				combined = append(combined,
					pline.PlineBasicIntersect{StartIndex1: ov.StartIndex1, StartIndex2: ov.StartIndex2, Point: ov.Point1},
					pline.PlineBasicIntersect{StartIndex1: ov.StartIndex1, StartIndex2: ov.StartIndex2, Point: ov.Point2},
				)
			}
			if len(combined) == 0 {
				continue
			}

			setIdx := len(sets)
			sets = append(sets, slicePointSet{loopIdx1: lo, loopIdx2: hi, points: combined})
			lookup[lo] = append(lookup[lo], setIdx)
			lookup[hi] = append(lookup[hi], setIdx)
		}
	}

	logger.Debug().Int("loops", len(loops)).Int("slice_point_sets", len(sets)).Msg("pairwise intersection complete")
	return sets, lookup
}
