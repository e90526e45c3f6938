// Package geom defines the read-only geometry data model consumed by the
// navigation core: optional store indices, surface and volume descriptors,
// placement planes, boundary masks, trajectory snapshots, and the Detector
// aggregate that bundles the four stores together.
//
// 🚀 What is geom?
//
//	The flat, index-linked description of a partitioned space:
//	  • Volume  – a region owning a contiguous range of surfaces
//	  • Surface – a sensitive plane or a boundary portal; a portal carries
//	    an Edge link to the volume reached upon crossing it
//	  • Plane   – the placement frame of a surface (center, normal, axes)
//	  • Mask    – the in-plane boundary check (rectangle, annulus, unbounded)
//	  • Track   – an immutable trajectory snapshot (position, direction,
//	    overstep tolerance)
//
// Index links between stores use OptIndex, a tagged "valid index vs none"
// value, instead of a reserved magic integer. The zero OptIndex is "none",
// which makes an unset link impossible to confuse with store entry 0.
//
// # Immutability
//
// A Detector is immutable after construction. Every navigation call only
// reads from it, so a single Detector may back any number of concurrent
// trajectories without locking. The Detector must outlive every navigator
// and state constructed on top of it.
//
// # Construction
//
// NewDetector validates all cross-store links up front and fails fast with
// sentinel errors (ErrNoVolumes, ErrRangeOutOfBounds, ErrBadPlaneIndex,
// ErrBadMaskIndex, ErrBadVolumeLink), so navigation never has to re-check
// them on the hot path.
//
// Vector math uses github.com/deadsy/sdfx/vec/v3 (world space) and vec/v2
// (in-plane local space).
package geom
