package shape

import (
	"github.com/rs/zerolog"

	"github.com/go-clipper/loopoffset/aabbindex"
	"github.com/go-clipper/loopoffset/geom2d"
	"github.com/go-clipper/loopoffset/pline"
)

// stitchSlices links the pooled slices back into closed loops by matching
// each chain's current end point against the start point of an unvisited
// slice, within slice_join_eps, preferring a candidate sharing the current
// slice's source loop when more than one matches. A hard cap of len(pool)
// iterations per chain guards against a linking bug turning into an
// infinite loop.
func stitchSlices(pool []dissectedSlice, tol Tolerances, logger zerolog.Logger) (stitchedCCW, stitchedCW []*pline.Polyline, err error) {
	if len(pool) == 0 {
		return nil, nil, nil
	}

	startIndex, err := buildStartPointIndex(pool, tol.SliceJoinEps)
	if err != nil {
		return nil, nil, err
	}

	visited := make([]bool, len(pool))
	var stack aabbindex.QueryStack

	for seed := range pool {
		if visited[seed] {
			continue
		}
		visited[seed] = true

		output := pline.New()
		cur := seed

		for steps := 0; ; steps++ {
			if steps > len(pool) {
				return nil, nil, ErrStitchCycleExceeded
			}

			pline.ExtendRemoveRepeat(output, pool[cur].view, tol.PosEqualEps)

			candidate, found := nextUnvisitedCandidate(pool, visited, cur, startIndex, &stack, tol.SliceJoinEps)
			if !found {
				output.RemoveLast()
				output.SetIsClosed(true)
				if output.VertexCount() < 2 {
					logger.Debug().Int("seed", seed).Msg("stitched chain collapsed to a degenerate loop, discarding")
					break
				}
				switch output.Orientation() {
				case pline.CounterClockwise:
					stitchedCCW = append(stitchedCCW, output)
				case pline.Clockwise:
					stitchedCW = append(stitchedCW, output)
				default:
					logger.Debug().Int("seed", seed).Msg("stitched chain has zero area, discarding")
				}
				break
			}

			// The current chain's trailing vertex is this slice's end point;
			// drop it before the next slice is appended, since that slice's
			// own start vertex (matched within slice_join_eps, not always
			// exactly equal) replaces it.
			output.RemoveLast()
			visited[candidate] = true
			cur = candidate
		}
	}

	logger.Debug().Int("pool", len(pool)).Int("stitched_ccw", len(stitchedCCW)).Int("stitched_cw", len(stitchedCW)).Msg("stitching complete")
	return stitchedCCW, stitchedCW, nil
}

// buildStartPointIndex bounds every slice's start point in a
// 2*eps-sided square, so a query with the same tolerance around a candidate
// end point reliably catches it regardless of floating-point wobble.
func buildStartPointIndex(pool []dissectedSlice, eps float64) (*aabbindex.StaticAABB2DIndex, error) {
	b := aabbindex.NewBuilder(len(pool))
	for _, s := range pool {
		p := s.view.StartPoint
		b.Add(p.X-eps, p.Y-eps, p.X+eps, p.Y+eps)
	}
	return b.Build()
}

// nextUnvisitedCandidate finds an unvisited slice whose start point lies
// within eps of pool[cur]'s end point, preferring one sharing cur's source
// loop (the natural continuation along the same offset loop) over the first
// match found.
func nextUnvisitedCandidate(pool []dissectedSlice, visited []bool, cur int, startIndex *aabbindex.StaticAABB2DIndex, stack *aabbindex.QueryStack, eps float64) (int, bool) {
	end := pool[cur].view.EndPoint
	box := geom2d.AABB{MinX: end.X - eps, MinY: end.Y - eps, MaxX: end.X + eps, MaxY: end.Y + eps}

	best := -1
	for _, i := range startIndex.QueryWithStack(box, stack) {
		if visited[i] {
			continue
		}
		if best == -1 {
			best = i
		}
		if pool[i].sourceIdx == pool[cur].sourceIdx {
			best = i
			break
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
