package navigator

import (
	"math"

	"github.com/katalvlaran/volnav/geom"
	"github.com/katalvlaran/volnav/intersect"
)

// State caches the information of one navigation stream. It is created
// once per trajectory, mutated exclusively by Navigator calls, and must
// never be shared across goroutines.
type State struct {
	// volume is the volume currently navigated, none once the trajectory
	// left the world.
	volume geom.OptIndex

	// kernel is the candidate cache for the current volume.
	kernel Kernel

	// distance is the cached distance to the next candidate.
	distance float64

	// tolerance decides when the trajectory counts as sitting on a surface.
	tolerance float64

	// status is the navigation status.
	status Status

	// trust grades how much of the kernel may be reused.
	trust TrustLevel

	// object is the surface arrived on, none when between surfaces. It
	// survives kernel clears so a rebuild never re-selects the surface
	// just departed.
	object geom.OptIndex

	// inspector runs after every successful Status/Target call.
	inspector Inspector
}

// NewState creates a navigation state starting in the given volume, with
// status Unknown and no trust in the (empty) kernel.
func NewState(initialVolume int, opts ...StateOption) (*State, error) {
	if initialVolume < 0 {
		return nil, ErrVolumeOutOfRange
	}

	s := &State{
		volume:    geom.Index(initialVolume),
		distance:  math.Inf(1),
		tolerance: defaultTolerance,
		status:    StatusUnknown,
		trust:     NoTrust,
		inspector: func(*State) {},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Distance returns the cached distance to the next candidate. This is the
// value an external stepper aims for.
func (s *State) Distance() float64 { return s.distance }

// Volume returns the volume currently navigated; none once the trajectory
// left the world.
func (s *State) Volume() geom.OptIndex { return s.volume }

// Status returns the navigation status.
func (s *State) Status() Status { return s.status }

// Trust returns the navigation trust level.
func (s *State) Trust() TrustLevel { return s.trust }

// SetTrust downgrades (or restores) the trust level. External actors call
// this after perturbing the trajectory between navigation calls.
func (s *State) SetTrust(lvl TrustLevel) { s.trust = lvl }

// Tolerance returns the on-object tolerance.
func (s *State) Tolerance() float64 { return s.tolerance }

// SetTolerance adjusts the on-object tolerance. Non-positive values are
// ignored.
func (s *State) SetTolerance(tol float64) {
	if tol > 0 {
		s.tolerance = tol
	}
}

// CurrentObject returns the surface the trajectory arrived on, or none
// when between surfaces.
func (s *State) CurrentObject() geom.OptIndex { return s.object }

// Candidates returns a copy of the kernel's candidate cache, in its
// current order.
func (s *State) Candidates() []intersect.Candidate {
	return append([]intersect.Candidate(nil), s.kernel.candidates...)
}

// Next returns the cursor's candidate, or false if the kernel is empty or
// exhausted.
func (s *State) Next() (intersect.Candidate, bool) {
	if s.kernel.Exhausted() {
		return intersect.Candidate{}, false
	}

	return *s.kernel.current(), true
}

// Exhausted reports whether the kernel cursor moved past the last
// candidate.
func (s *State) Exhausted() bool { return s.kernel.Exhausted() }

// abort marks the state unrecoverable. The remaining data is left in
// place for inspection.
func (s *State) abort() bool {
	s.status = StatusAbort
	s.trust = NoTrust

	return false
}

// exit marks the state as having reached the target: the trajectory left
// the world. Navigation stops, successfully.
func (s *State) exit() bool {
	s.status = StatusOnTarget
	s.trust = FullTrust

	return true
}

// inspect runs the inspection hook.
func (s *State) inspect() { s.inspector(s) }
