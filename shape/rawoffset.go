package shape

import (
	"github.com/rs/zerolog"

	"github.com/go-clipper/loopoffset/offset"
	"github.com/go-clipper/loopoffset/pline"
)

// offsetLoop is one raw offset candidate. Within a single pipeline run,
// indices [0, len(ccwOffsets)) are CCW and the rest are CW — the same
// index-range convention Shape itself uses for input loops.
type offsetLoop struct {
	parentIdx int
	indexed   pline.IndexedPolyline
}

// generateRawOffsets invokes the single-polyline offset routine on every
// input loop (CCW loops first, parent indices 0..ccwCount-1, then CW loops
// continuing the parent index) and classifies each resulting candidate by
// the sign of its signed area.
func generateRawOffsets(parents []pline.IndexedPolyline, ccwCount int, dist float64, logger zerolog.Logger) (ccwOffsets, cwOffsets []offsetLoop, err error) {
	for parentIdx, parent := range parents {
		parentIsCCW := parentIdx < ccwCount

		raws := offset.ParallelOffset(parent.Polyline, dist, offset.Options{
			AABBIndex:            parent.SpatialIndex,
			HandleSelfIntersects: false,
		})

		for _, raw := range raws {
			area := raw.Area()
			indexed, ok := pline.NewIndexedPolyline(raw)
			if !ok {
				logger.Debug().Int("parent", parentIdx).Msg("raw offset candidate too degenerate to index, discarding")
				continue
			}

			switch {
			case parentIsCCW:
				if area > 0 {
					ccwOffsets = append(ccwOffsets, offsetLoop{parentIdx: parentIdx, indexed: indexed})
				} else {
					logger.Debug().Int("parent", parentIdx).Msg("CCW input's raw offset collapsed (non-positive area), discarding")
				}
			case area < 0:
				cwOffsets = append(cwOffsets, offsetLoop{parentIdx: parentIdx, indexed: indexed})
			case area > 0:
				// Offsetting a hole inward far enough can spawn a CCW
				// island.
				ccwOffsets = append(ccwOffsets, offsetLoop{parentIdx: parentIdx, indexed: indexed})
			default:
				logger.Debug().Int("parent", parentIdx).Msg("CW input's raw offset collapsed (zero area), discarding")
			}
		}
	}
	return ccwOffsets, cwOffsets, nil
}
