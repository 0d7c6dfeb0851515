package shape

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/go-clipper/loopoffset/aabbindex"
	"github.com/go-clipper/loopoffset/geom2d"
	"github.com/go-clipper/loopoffset/pline"
)

// dissectedSlice is a sub-arc of one offset loop between two adjacent
// dissection points (or the whole loop), destined for the stitcher.
type dissectedSlice struct {
	sourceIdx int
	view      pline.PlineViewData
}

type dissectionPoint struct {
	segIdx int
	pos    geom2d.Vector2
}

// validateSlices gathers, for every offset loop, the dissection points
// contributed by every slicePointSet the loop participates in, sorts them
// by (segment index, squared distance from the segment's start vertex),
// builds candidate slices, and keeps only those whose first segment's
// midpoint is valid against every input loop except the candidate's own
// parent. Loops with 0 or 1 dissection points produce a whole-loop
// candidate that — if valid — is emitted directly into the result buckets,
// bypassing the stitcher entirely.
func validateSlices(loops []offsetLoop, ccwCount int, inputLoops []pline.IndexedPolyline, sets []slicePointSet, lookup map[int][]int, offsetDist float64, tol Tolerances, logger zerolog.Logger) (pool []dissectedSlice, directCCW, directCW []*pline.Polyline, err error) {
	var scratch aabbindex.QueryStack

	for i, loop := range loops {
		pts := gatherDissectionPoints(i, sets, lookup[i])
		sortDissectionPoints(loop.indexed.Polyline, pts)

		views := buildCandidateViews(loop.indexed.Polyline, pts, tol.PosEqualEps)

		for _, view := range views {
			if view.SegmentCount() == 0 {
				return nil, nil, nil, ErrInconsistentSliceView
			}
			mid := geom2d.SegMidpoint(view.At(0).Pos(), view.At(1).Pos(), view.At(0).Bulge)

			if !isValidAgainstForeignLoops(mid, offsetDist, loop.parentIdx, inputLoops, &scratch, tol) {
				continue
			}

			if len(pts) <= 1 {
				result := loop.indexed.Polyline.Clone()
				if i < ccwCount {
					directCCW = append(directCCW, result)
				} else {
					directCW = append(directCW, result)
				}
				continue
			}
			pool = append(pool, dissectedSlice{sourceIdx: i, view: view})
		}
	}

	logger.Debug().Int("direct_ccw", len(directCCW)).Int("direct_cw", len(directCW)).Int("pool", len(pool)).Msg("slice validation complete")
	return pool, directCCW, directCW, nil
}

func gatherDissectionPoints(loopIdx int, sets []slicePointSet, setIndices []int) []dissectionPoint {
	var pts []dissectionPoint
	for _, setIdx := range setIndices {
		set := sets[setIdx]
		for _, bi := range set.points {
			if set.loopIdx1 == loopIdx {
				pts = append(pts, dissectionPoint{segIdx: bi.StartIndex1, pos: bi.Point})
			} else {
				pts = append(pts, dissectionPoint{segIdx: bi.StartIndex2, pos: bi.Point})
			}
		}
	}
	return pts
}

func sortDissectionPoints(loop *pline.Polyline, pts []dissectionPoint) {
	sort.SliceStable(pts, func(a, b int) bool {
		if pts[a].segIdx != pts[b].segIdx {
			return pts[a].segIdx < pts[b].segIdx
		}
		segStart := loop.At(pts[a].segIdx).Pos()
		da := geom2d.DistSquared(pts[a].pos, segStart)
		db := geom2d.DistSquared(pts[b].pos, segStart)
		return da < db
	})
}

// buildCandidateViews turns a sorted list of dissection points into
// candidate slice views: one view per adjacent pair, plus exactly one more
// closing the gap from the last dissection point back to the first.
func buildCandidateViews(loop *pline.Polyline, pts []dissectionPoint, posEqualEps float64) []pline.PlineViewData {
	if len(pts) <= 1 {
		return []pline.PlineViewData{pline.FromEntirePline(loop)}
	}

	var views []pline.PlineViewData
	for k := 0; k < len(pts)-1; k++ {
		p1, p2 := pts[k], pts[k+1]
		if view, ok := pline.FromSlicePoints(loop, p1.pos, p1.segIdx, p2.pos, p2.segIdx, posEqualEps); ok {
			views = append(views, view)
		}
	}
	last, first := pts[len(pts)-1], pts[0]
	if view, ok := pline.FromSlicePoints(loop, last.pos, last.segIdx, first.pos, first.segIdx, posEqualEps); ok {
		views = append(views, view)
	}
	return views
}

func isValidAgainstForeignLoops(mid geom2d.Vector2, offsetDist float64, parentIdx int, inputLoops []pline.IndexedPolyline, scratch *aabbindex.QueryStack, tol Tolerances) bool {
	for k, inputLoop := range inputLoops {
		if k == parentIdx {
			continue
		}
		if !pline.PointValidForOffset(mid, offsetDist, inputLoop.Polyline, inputLoop.SpatialIndex, scratch, tol.PosEqualEps, tol.OffsetTol) {
			return false
		}
	}
	return true
}
