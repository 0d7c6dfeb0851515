package shape

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Tolerances collects the three epsilon constants the offset pipeline
// tunes. ParallelOffsetWithOptions treats each zero field of
// Options.Tolerances as "use the default", and ParallelOffset always uses
// the defaults, so callers don't have to learn about this struct until they
// need to tune it.
//
// A Tolerances value loads directly from YAML:
//
//	pos_equal_eps: 1e-5
//	offset_tol: 1e-4
//	slice_join_eps: 1e-4
type Tolerances struct {
	// PosEqualEps is the distance under which two positions are treated as
	// the same point (slice endpoint matching, view construction).
	PosEqualEps float64 `yaml:"pos_equal_eps"`
	// OffsetTol is the slack applied to the offset-validity distance
	// comparison; it must stay consistent with whatever tolerance the raw
	// offset generation used.
	OffsetTol float64 `yaml:"offset_tol"`
	// SliceJoinEps is the radius of the start-point index the stitcher
	// builds to match a slice's end point back to another slice's start.
	SliceJoinEps float64 `yaml:"slice_join_eps"`
}

// DefaultTolerances returns the module's default tolerance constants.
func DefaultTolerances() Tolerances {
	return Tolerances{
		PosEqualEps:  1e-5,
		OffsetTol:    1e-4,
		SliceJoinEps: 1e-4,
	}
}

// LoadTolerancesYAML parses a Tolerances override from YAML (see the
// Tolerances doc comment for the expected keys) and fills any field the
// document omits with its default value.
func LoadTolerancesYAML(data []byte) (Tolerances, error) {
	var t Tolerances
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tolerances{}, errors.Wrap(err, "shape: parsing tolerances yaml")
	}
	return t.withDefaults(), nil
}

// withDefaults fills any zero field of t with its default value, so a caller
// can override just one tolerance without repeating the other two.
func (t Tolerances) withDefaults() Tolerances {
	d := DefaultTolerances()
	if t.PosEqualEps == 0 {
		t.PosEqualEps = d.PosEqualEps
	}
	if t.OffsetTol == 0 {
		t.OffsetTol = d.OffsetTol
	}
	if t.SliceJoinEps == 0 {
		t.SliceJoinEps = d.SliceJoinEps
	}
	return t
}
