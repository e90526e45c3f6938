// Package navigator implements the navigation state machine of volnav:
// a cached, sorted set of intersection candidates per volume, a trust
// level deciding how much of that cache may be reused after an external
// step, and a boundary-crossing state machine that hands the trajectory
// over from volume to volume.
//
// 🚀 How it works
//
//	An external stepping loop alternates two calls on the same State:
//	  • Status(state, track) – re-establish ground truth for the step just
//	    taken: refresh or rebuild the kernel, detect surface arrival and
//	    portal crossing
//	  • Target(state, track) – decide how far to aim next: a zero-cost
//	    fast path at full trust, otherwise the same refresh pipeline
//	Both return a heartbeat; false means navigation failed permanently.
//
// # Trust levels
//
// The four levels trade recomputation cost against cache validity:
//
//	NoTrust   – full rebuild: intersect every surface of the volume,
//	            discard overstepped, outside and just-departed candidates.
//	FairTrust – bulk refresh: re-intersect every cached candidate in
//	            place, then re-sort and re-seat the cursor.
//	HighTrust – incremental refresh: re-intersect only the cursor's
//	            candidate, advancing the cursor on rejection.
//	FullTrust – the stepper advanced exactly the promised distance; the
//	            cached distance is authoritative, nothing is recomputed.
//
// Any other trust value is an invariant violation and aborts navigation.
//
// # Status state machine
//
//	Unknown → TowardsObject ⇄ OnObject → TowardsObject   (same volume)
//	                                   → OnTarget        (left the world; terminal)
//	                        any state  → Abort           (no candidates; terminal)
//
// OnTarget and Abort are permanent: subsequent calls re-signal the
// terminal condition without mutating the state.
//
// # Concurrency
//
// A Navigator is stateless and holds only read-only references to the
// geometry stores; one instance may service many trajectories on separate
// goroutines, provided each goroutine owns its State exclusively. No
// internal locking, no suspension points; every call is O(kernel size).
//
// # Inspection
//
// An optional inspector hook runs at the end of every successful Status
// and Target call. It must not mutate the state it observes; the default
// is a no-op.
package navigator
