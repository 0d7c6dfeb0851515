// Package shape implements the shape-level parallel offset algorithm: raw
// offset generation, pairwise intersection, slice validation, and
// stitching, built on top of the polyline primitives in pline, the
// single-loop offset routine in offset, and the spatial index in
// aabbindex.
package shape

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/go-clipper/loopoffset/aabbindex"
	"github.com/go-clipper/loopoffset/pline"
)

// Shape is a planar region: an ordered list of CCW outer loops and an
// ordered list of CW hole loops, plus a top-level AABB index over all of
// them. Loop indices run 0..M where [0, len(CCWLoops)) are CCW and
// [len(CCWLoops), M) are CW.
type Shape struct {
	CCWLoops []pline.IndexedPolyline
	CWLoops  []pline.IndexedPolyline
	Index    *aabbindex.StaticAABB2DIndex
}

// NewShape builds a Shape from raw CCW and CW polylines, indexing each one
// and the shape as a whole. Fails with ErrDegenerateInput if any loop is too
// small or not closed to index.
func NewShape(ccw, cw []*pline.Polyline) (*Shape, error) {
	ccwLoops, err := indexAll(ccw)
	if err != nil {
		return nil, err
	}
	cwLoops, err := indexAll(cw)
	if err != nil {
		return nil, err
	}
	s := &Shape{CCWLoops: ccwLoops, CWLoops: cwLoops}
	s.Index = buildTopLevelIndex(s.allLoops())
	return s, nil
}

func indexAll(loops []*pline.Polyline) ([]pline.IndexedPolyline, error) {
	out := make([]pline.IndexedPolyline, 0, len(loops))
	for _, l := range loops {
		if !l.IsClosed() {
			return nil, ErrDegenerateInput
		}
		ip, ok := pline.NewIndexedPolyline(l)
		if !ok {
			return nil, ErrDegenerateInput
		}
		out = append(out, ip)
	}
	return out, nil
}

// LoopCount returns the total number of loops (CCW and CW combined).
func (s *Shape) LoopCount() int {
	return len(s.CCWLoops) + len(s.CWLoops)
}

// Loop returns the i-th loop: [0, len(CCWLoops)) are CCW,
// [len(CCWLoops), LoopCount()) are CW.
func (s *Shape) Loop(i int) pline.IndexedPolyline {
	if i < len(s.CCWLoops) {
		return s.CCWLoops[i]
	}
	return s.CWLoops[i-len(s.CCWLoops)]
}

func (s *Shape) allLoops() []pline.IndexedPolyline {
	all := make([]pline.IndexedPolyline, 0, s.LoopCount())
	all = append(all, s.CCWLoops...)
	all = append(all, s.CWLoops...)
	return all
}

func buildTopLevelIndex(loops []pline.IndexedPolyline) *aabbindex.StaticAABB2DIndex {
	if len(loops) == 0 {
		return nil
	}
	b := aabbindex.NewBuilder(len(loops))
	for _, l := range loops {
		b.Add(l.MinX(), l.MinY(), l.MaxX(), l.MaxY())
	}
	idx, err := b.Build()
	if err != nil {
		return nil
	}
	return idx
}

// Options configures ParallelOffsetWithOptions. A zero Options uses default
// tolerances and a no-op logger.
type Options struct {
	Tolerances Tolerances
	Logger     *zerolog.Logger
}

// ParallelOffset runs the shape-level offset pipeline with default
// tolerances. A nil *Shape with a nil error means "empty shape" (every
// candidate region annihilated), not a failure.
func (s *Shape) ParallelOffset(offset float64) (*Shape, error) {
	return s.ParallelOffsetWithOptions(offset, Options{})
}

// ParallelOffsetWithOptions is ParallelOffset with overridable tolerances
// and an optional zerolog.Logger for stage-boundary diagnostics.
func (s *Shape) ParallelOffsetWithOptions(offset float64, opts Options) (*Shape, error) {
	tol := opts.Tolerances.withDefaults()
	logger := opts.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	rawCCW, rawCW, err := generateRawOffsets(s.allLoops(), len(s.CCWLoops), offset, *logger)
	if err != nil {
		return nil, errors.Wrap(err, "shape: generating raw offsets")
	}
	if len(rawCCW)+len(rawCW) == 0 {
		logger.Debug().Float64("offset", offset).Msg("raw offset generation produced no surviving loops: empty shape")
		return nil, nil
	}

	combined := append(append([]offsetLoop(nil), rawCCW...), rawCW...)
	ccwCount := len(rawCCW)

	slicePointSets, lookup := intersectPairwise(combined, *logger)

	pool, directCCW, directCW, err := validateSlices(combined, ccwCount, s.allLoops(), slicePointSets, lookup, offset, tol, *logger)
	if err != nil {
		return nil, errors.Wrap(err, "shape: validating slices")
	}

	stitchedCCW, stitchedCW, err := stitchSlices(pool, tol, *logger)
	if err != nil {
		return nil, errors.Wrap(err, "shape: stitching slices")
	}

	resultCCW := append(directCCW, stitchedCCW...)
	resultCW := append(directCW, stitchedCW...)
	if len(resultCCW)+len(resultCW) == 0 {
		return nil, nil
	}

	ccwIndexed, err := indexAll(resultCCW)
	if err != nil {
		return nil, errors.Wrap(err, "shape: indexing result CCW loops")
	}
	cwIndexed, err := indexAll(resultCW)
	if err != nil {
		return nil, errors.Wrap(err, "shape: indexing result CW loops")
	}

	result := &Shape{CCWLoops: ccwIndexed, CWLoops: cwIndexed}
	result.Index = buildTopLevelIndex(result.allLoops())
	return result, nil
}
