// Package navigator declares the status and trust enums, sentinel errors,
// and the functional options of Navigator and State construction.
package navigator

import (
	"errors"

	"github.com/katalvlaran/volnav/intersect"
)

// Sentinel errors for construction. Navigation-time failures are never
// errors: they surface as StatusAbort plus a false heartbeat.
var (
	// ErrNilDetector indicates a nil detector was passed to New.
	ErrNilDetector = errors.New("navigator: detector is nil")

	// ErrNilIntersector indicates WithIntersector received a nil func.
	ErrNilIntersector = errors.New("navigator: intersector is nil")

	// ErrVolumeOutOfRange indicates NewState received a negative initial volume.
	ErrVolumeOutOfRange = errors.New("navigator: initial volume out of range")
)

// Status is the navigation status of a State.
type Status int

const (
	// StatusUnknown is the state before the first navigation call.
	StatusUnknown Status = iota

	// StatusTowardsObject means the trajectory is between surfaces, aiming
	// at the cursor's candidate.
	StatusTowardsObject

	// StatusOnObject means the trajectory sits on a surface within the
	// on-object tolerance.
	StatusOnObject

	// StatusOnTarget means the trajectory left the world through a portal
	// with no further volume. Terminal; navigation completed successfully.
	StatusOnTarget

	// StatusAbort means navigation has nowhere to go or an invariant was
	// violated. Terminal and unrecoverable for this State.
	StatusAbort
)

// String renders the status for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusTowardsObject:
		return "towards-object"
	case StatusOnObject:
		return "on-object"
	case StatusOnTarget:
		return "on-target"
	case StatusAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// TrustLevel grades how much of the cached kernel may be reused without
// recomputation. The numeric gaps mirror the grading: any value outside
// the four named levels is an invariant violation.
type TrustLevel int

const (
	// NoTrust forces a full kernel rebuild.
	NoTrust TrustLevel = 0

	// FairTrust re-intersects every cached candidate, then re-sorts.
	FairTrust TrustLevel = 1

	// HighTrust re-intersects only the cursor's candidate.
	HighTrust TrustLevel = 3

	// FullTrust reuses the cached distance without any recomputation.
	FullTrust TrustLevel = 4
)

// String renders the trust level for diagnostics.
func (t TrustLevel) String() string {
	switch t {
	case NoTrust:
		return "no-trust"
	case FairTrust:
		return "fair-trust"
	case HighTrust:
		return "high-trust"
	case FullTrust:
		return "full-trust"
	default:
		return "invalid-trust"
	}
}

// Inspector observes a State at the end of every successful Status and
// Target call. It must not mutate the state.
type Inspector func(*State)

// defaultTolerance is the default on-object tolerance (per mille scale).
const defaultTolerance = 1e-3

// StateOption configures a State at construction.
type StateOption func(*State)

// WithTolerance overrides the on-object tolerance. Non-positive values
// are ignored and keep the default.
func WithTolerance(tol float64) StateOption {
	return func(s *State) {
		if tol > 0 {
			s.tolerance = tol
		}
	}
}

// WithInspector installs an inspection hook on the State. Nil is ignored
// and keeps the no-op default.
func WithInspector(fn Inspector) StateOption {
	return func(s *State) {
		if fn != nil {
			s.inspector = fn
		}
	}
}

// Option configures a Navigator at construction.
type Option func(*Navigator)

// WithIntersector substitutes the intersection oracle. Passing nil is
// recorded and surfaced as ErrNilIntersector by New.
func WithIntersector(fn intersect.Func) Option {
	return func(n *Navigator) {
		n.intersect = fn
	}
}
