package intersect

import (
	"math"

	"github.com/katalvlaran/volnav/geom"
)

// Status classifies a Candidate against the surface mask.
type Status int

const (
	// Outside marks a miss: the crossing point lies outside the mask, the
	// ray runs parallel to the plane, or the path falls below the
	// trajectory's overstep tolerance.
	Outside Status = iota

	// Inside marks a genuine prospective crossing.
	Inside
)

// String renders the status for diagnostics.
func (s Status) String() string {
	if s == Inside {
		return "inside"
	}

	return "outside"
}

// Candidate is a prospective intersection of a trajectory with one
// surface. Candidates are produced only by an intersector and ordered by
// Path ascending.
type Candidate struct {
	// Path is the signed distance along the trajectory to the crossing.
	Path float64

	// Status is the inside/outside classification.
	Status Status

	// Object is the index of the intersected surface.
	Object geom.OptIndex

	// Link is the volume reached upon crossing (the surface's edge link).
	Link geom.OptIndex
}

// Func is a pluggable intersection oracle. Implementations must be
// deterministic and side-effect-free for fixed inputs and must fill
// Object and Link from the surface store.
type Func func(tr geom.Track, object int, det *geom.Detector) Candidate

// miss returns the Outside candidate for object, with an infinite path.
func miss(object int, link geom.OptIndex) Candidate {
	return Candidate{
		Path:   math.Inf(1),
		Status: Outside,
		Object: geom.Index(object),
		Link:   link,
	}
}
