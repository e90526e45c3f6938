package navigator

import (
	"github.com/katalvlaran/volnav/geom"
	"github.com/katalvlaran/volnav/intersect"
)

// Kernel is the cached, ordered set of candidates for the current volume,
// plus a cursor to the current best candidate. A Kernel is owned
// exclusively by one State and rebuilt from scratch on every volume
// change.
//
// Invariant: whenever the cursor is not past the end, candidates[next:]
// is sorted ascending by path and candidates[next].Path equals the
// state's distance to next.
type Kernel struct {
	// candidates holds the cached intersections, sorted by sortAndSet.
	candidates []intersect.Candidate

	// next is the cursor: an index into candidates, with len(candidates)
	// acting as the past-end sentinel.
	next int

	// on is the surface the cursor was seated past after an arrival, or
	// none when the trajectory is between surfaces.
	on geom.OptIndex
}

// Empty reports whether the kernel holds no candidates.
func (k *Kernel) Empty() bool { return len(k.candidates) == 0 }

// Len returns the number of cached candidates.
func (k *Kernel) Len() int { return len(k.candidates) }

// Exhausted reports whether the cursor moved past the last candidate.
func (k *Kernel) Exhausted() bool { return k.next >= len(k.candidates) }

// Clear drops all candidates and resets the cursor to the past-end
// sentinel.
func (k *Kernel) Clear() {
	k.candidates = k.candidates[:0]
	k.next = 0
	k.on = geom.NoIndex()
}

// current returns the cursor's candidate. Only called when not exhausted.
func (k *Kernel) current() *intersect.Candidate { return &k.candidates[k.next] }
