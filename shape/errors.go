package shape

import "github.com/pkg/errors"

// ErrDegenerateInput is returned when an input polyline cannot produce a
// bounding index — fewer than two vertices, or not closed — violating the
// precondition that every loop of a Shape is a closed, indexable boundary.
var ErrDegenerateInput = errors.New("shape: degenerate input loop (too few vertices, or not closed)")

// ErrStitchCycleExceeded signals that the stitcher's hard iteration cap
// (the slice-pool size) was exceeded while following a single chain of
// slices, indicating a bug in slice linking rather than a valid shape.
var ErrStitchCycleExceeded = errors.New("shape: stitcher exceeded its cycle cap, indicating a bug in slice linking")

// ErrInconsistentSliceView is returned when view construction produces a
// view whose endpoints don't name a consistent (segment index, position)
// pair on its source loop.
var ErrInconsistentSliceView = errors.New("shape: slice view construction returned an inconsistent segment index")
