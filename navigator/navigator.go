// Package navigator implements the navigation core: the Status/Target
// call pair, the trust-level kernel refresh dispatch, candidate sorting
// and seating, and the volume-switch logic.
//
// Notes on implementation choices:
//
//   - The kernel cursor is an index with len(candidates) as the past-end
//     sentinel, so clearing and rebuilding the cache can never dangle.
//   - Kernel refresh failures are absorbed into an empty/exhausted kernel
//     and surfaced as StatusAbort with a false heartbeat; the core never
//     returns an error on the navigation path.
//   - The fair-trust refresh deliberately re-intersects the surface the
//     trajectory currently sits on, while the no-trust rebuild excludes
//     it. The asymmetry allows re-approaching a surface after a wide
//     trajectory perturbation.
package navigator

import (
	"math"
	"sort"

	"github.com/katalvlaran/volnav/geom"
	"github.com/katalvlaran/volnav/intersect"
)

// Navigator is the stateless orchestrator of the navigation state
// machine. It holds read-only references to the geometry stores and an
// intersection oracle; all per-trajectory mutation happens on the State
// passed into each call.
//
// One Navigator may service many trajectories concurrently, provided each
// goroutine owns its State exclusively. The detector must outlive the
// Navigator.
type Navigator struct {
	det       *geom.Detector
	intersect intersect.Func
}

// New constructs a Navigator over the given detector. The default
// intersection oracle is intersect.Plane; substitute it with
// WithIntersector.
func New(det *geom.Detector, opts ...Option) (*Navigator, error) {
	if det == nil {
		return nil, ErrNilDetector
	}

	n := &Navigator{det: det, intersect: intersect.Plane}
	for _, opt := range opts {
		opt(n)
	}
	if n.intersect == nil {
		return nil, ErrNilIntersector
	}

	return n, nil
}

// Status re-establishes ground truth for the current step: it refreshes
// or rebuilds the kernel against the given trajectory snapshot, detects
// surface arrival, and performs a pending volume switch.
//
// The returned heartbeat is false iff navigation failed permanently.
// Status never mutates the track.
func (n *Navigator) Status(s *State, tr geom.Track) bool {
	if done, heartbeat := terminal(s); done {
		return heartbeat
	}
	if !n.inWorld(s) {
		return s.abort()
	}

	return n.refresh(s, tr)
}

// Target decides how far to aim next. At full trust the cached distance
// is authoritative and Target returns immediately; otherwise an exhausted
// kernel is dropped and the same refresh pipeline as Status runs.
//
// The returned heartbeat is false iff navigation failed permanently.
func (n *Navigator) Target(s *State, tr geom.Track) bool {
	if done, heartbeat := terminal(s); done {
		return heartbeat
	}

	// Fast path: the stepper advanced exactly the promised distance,
	// nothing left to do.
	if s.trust == FullTrust {
		return true
	}

	// A spent cursor means every cached candidate was tried; start over.
	if s.kernel.Exhausted() {
		s.kernel.Clear()
		s.trust = NoTrust
	}

	if !n.inWorld(s) {
		return s.abort()
	}

	return n.refresh(s, tr)
}

// terminal reports whether the state already reached a terminal status,
// re-signalling its heartbeat without mutating anything.
func terminal(s *State) (done, heartbeat bool) {
	switch s.status {
	case StatusAbort:
		return true, false
	case StatusOnTarget:
		return true, true
	default:
		return false, true
	}
}

// inWorld reports whether the state's volume index addresses the volume
// store.
func (n *Navigator) inWorld(s *State) bool {
	return s.volume.Valid() && s.volume.Int() < n.det.NumVolumes()
}

// refresh is the shared tail of Status and Target: update the kernel per
// trust level, abort on an empty result, switch volumes on portal
// arrival, and run the inspection hook.
func (n *Navigator) refresh(s *State, tr geom.Track) bool {
	begin, end := n.det.Volume(s.volume.Int()).FullRange()
	n.updateKernel(s, tr, begin, end)

	// Without candidates we are trapped: even a closed volume must offer
	// its boundary portals.
	if s.kernel.Empty() {
		return s.abort()
	}
	if s.status == StatusAbort {
		return false
	}

	n.checkVolumeSwitch(s)
	s.inspect()

	return true
}

// updateKernel refreshes or rebuilds the candidate cache, dispatching on
// the trust level:
//
//	NoTrust   – full rebuild from the volume's surface range
//	HighTrust – re-intersect the cursor's candidate, advance on rejection
//	FullTrust – same scan (only reachable via Status; Target short-cuts),
//	            unless the kernel is already spent, which is invalid
//	FairTrust – re-intersect every cached candidate, then re-sort
//
// Any other trust value is an invariant violation and aborts.
func (n *Navigator) updateKernel(s *State, tr geom.Track, begin, end int) {
	switch {
	case s.trust == NoTrust:
		n.initializeKernel(s, tr, begin, end)

	case s.trust == FullTrust && s.kernel.Exhausted():
		// Full trust promises a valid cursor; a spent kernel here means
		// the caller mishandled the trust level.
		s.abort()

	case s.trust >= HighTrust:
		n.refreshNext(s, tr)

	case s.trust == FairTrust:
		n.refreshAll(s, tr)

	default:
		// No refresh strategy applies: externally set invalid trust.
		s.abort()
	}
}

// initializeKernel performs the no-trust full rebuild: intersect every
// surface of the volume range, keep the acceptable candidates, then sort
// and seat the cursor.
//
// A candidate is discarded if its path undercuts the track's overstep
// tolerance, if it classifies outside, or if it is the surface the
// trajectory just departed.
//
// Complexity: O(R log R) for a range of R surfaces.
func (n *Navigator) initializeKernel(s *State, tr geom.Track, begin, end int) {
	s.kernel.candidates = s.kernel.candidates[:0]
	if cap(s.kernel.candidates) < end-begin {
		s.kernel.candidates = make([]intersect.Candidate, 0, end-begin)
	}

	var cand intersect.Candidate
	for obj := begin; obj < end; obj++ {
		cand = n.intersect(tr, obj, n.det)

		// Overstepped too far: this crossing lies behind the trajectory.
		if cand.Path < tr.OverstepTolerance {
			continue
		}
		// Accept if inside, but not the surface we are already on.
		if cand.Status != intersect.Inside || cand.Object == s.object {
			continue
		}

		s.kernel.candidates = append(s.kernel.candidates, cand)
	}

	n.sortAndSet(s)
}

// refreshNext performs the high-trust incremental refresh: only the
// cursor's candidate could plausibly have changed, so re-intersect it and
// either accept it in place or advance the cursor and retry.
//
// On acceptance the state classifies OnObject (within tolerance, trust
// stays HighTrust to force a recheck of the following candidate) or
// TowardsObject (trust is restored to FullTrust — nothing else changed).
// If the cursor runs past the end, the caller observes the exhausted
// kernel and falls through to a rebuild on the next Target call.
//
// Complexity: O(K) worst case for K remaining candidates, O(1) typical.
func (n *Navigator) refreshNext(s *State, tr geom.Track) {
	var cand intersect.Candidate
	for !s.kernel.Exhausted() {
		obj := s.kernel.current().Object.Int()
		cand = n.intersect(tr, obj, n.det)

		if cand.Status == intersect.Inside && cand.Object != s.object {
			// Overwrite in place; the tail stays sorted, no re-sort.
			*s.kernel.current() = cand
			s.distance = cand.Path

			if math.Abs(cand.Path) < s.tolerance {
				s.object = cand.Object
				s.kernel.on = cand.Object
				s.status = StatusOnObject
				s.trust = HighTrust
			} else {
				s.status = StatusTowardsObject
				s.trust = FullTrust
			}

			return
		}

		// Rejected: step the cursor to the next candidate.
		s.kernel.next++
	}
}

// refreshAll performs the fair-trust bulk refresh: re-intersect every
// cached candidate in place (same surfaces, new intersection), then
// re-sort and re-seat the cursor. Unlike the no-trust rebuild, the
// current surface is not excluded here.
//
// Complexity: O(K log K) for K cached candidates.
func (n *Navigator) refreshAll(s *State, tr geom.Track) {
	for i := range s.kernel.candidates {
		s.kernel.candidates[i] = n.intersect(tr, s.kernel.candidates[i].Object.Int(), n.det)
	}

	n.sortAndSet(s)
}

// sortAndSet sorts the candidate cache ascending by path and seats the
// cursor on the first element, granting full trust. If the previous
// distance already sat below the on-object tolerance, that first
// candidate is the surface just arrived on: it is recorded as the current
// object, the cursor advances past it, and trust drops to HighTrust since
// the following candidate is not yet independently verified.
//
// An empty cache aborts: after a full evaluation there is nowhere to go.
func (n *Navigator) sortAndSet(s *State) {
	k := &s.kernel
	if k.Empty() {
		s.abort()

		return
	}

	s.trust = FullTrust
	sort.SliceStable(k.candidates, func(i, j int) bool {
		return k.candidates[i].Path < k.candidates[j].Path
	})
	k.next = 0

	// Still on a surface? Then the nearest candidate is that surface;
	// aim at the one after it. This also skips adjacent portals right
	// after a volume switch.
	if s.distance < s.tolerance {
		s.object = k.candidates[0].Object
		k.on = k.candidates[0].Object
		k.next++
		s.trust = HighTrust
	} else {
		s.object = geom.NoIndex()
		k.on = geom.NoIndex()
	}

	s.status = StatusTowardsObject
	if k.Exhausted() {
		// The arrived surface was the only candidate; the next Target
		// call rebuilds.
		s.distance = math.Inf(1)

		return
	}
	s.distance = k.current().Path
}

// checkVolumeSwitch hands the trajectory over to the next volume when it
// arrived on a portal: the volume index follows the candidate's link, the
// kernel is dropped, and trust falls to NoTrust so the next call rebuilds
// in the new volume. A link to nowhere means the trajectory left the
// world: navigation exits with StatusOnTarget.
func (n *Navigator) checkVolumeSwitch(s *State) {
	if s.status != StatusOnObject || s.kernel.Exhausted() {
		return
	}
	link := s.kernel.current().Link
	if link == s.volume {
		return
	}

	s.volume = link
	s.kernel.Clear()
	s.trust = NoTrust

	if !link.Valid() {
		s.exit()
	}
}
