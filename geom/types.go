// Package geom declares the core value types of the geometry data model:
// OptIndex, Surface, Volume, Track, and the sentinel errors raised during
// Detector construction.
package geom

import (
	"errors"
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Sentinel errors for Detector construction.
var (
	// ErrNoVolumes indicates the detector was built with an empty volume store.
	ErrNoVolumes = errors.New("geom: detector must contain at least one volume")

	// ErrRangeOutOfBounds indicates a volume's surface range does not fit the surface store.
	ErrRangeOutOfBounds = errors.New("geom: volume surface range out of bounds")

	// ErrBadPlaneIndex indicates a surface references a missing placement plane.
	ErrBadPlaneIndex = errors.New("geom: surface plane index out of bounds")

	// ErrBadMaskIndex indicates a surface references a missing mask.
	ErrBadMaskIndex = errors.New("geom: surface mask index out of bounds")

	// ErrBadVolumeLink indicates a surface's edge link points at a missing volume.
	ErrBadVolumeLink = errors.New("geom: surface edge links to a volume that does not exist")
)

// OptIndex is an optional index into one of the detector stores: either a
// valid index or "none". The zero value is "none", so an unset link can
// never alias store entry 0. OptIndex is comparable; two values are equal
// under == iff both are none or both hold the same index.
type OptIndex struct {
	idx int
	ok  bool
}

// Index wraps i as a valid OptIndex.
func Index(i int) OptIndex { return OptIndex{idx: i, ok: true} }

// NoIndex returns the "none" OptIndex. Equivalent to the zero value.
func NoIndex() OptIndex { return OptIndex{} }

// Valid reports whether o holds an index.
func (o OptIndex) Valid() bool { return o.ok }

// Int returns the held index. The result is only meaningful if Valid.
func (o OptIndex) Int() int { return o.idx }

// String renders the index or "none", for diagnostics.
func (o OptIndex) String() string {
	if !o.ok {
		return "none"
	}

	return fmt.Sprintf("%d", o.idx)
}

// Surface describes one object of the detector: a sensitive plane or a
// boundary portal. All fields are indices into sibling stores.
//
// Plane and Mask locate the placement frame and the in-plane boundary of
// the surface. Volume is the owning volume. Edge is the volume reached if
// the surface is crossed: portals link to a neighbouring volume (or to
// none at the world boundary), ordinary surfaces link back to their own
// volume.
type Surface struct {
	// Plane indexes the placement plane store.
	Plane int

	// Mask indexes the mask store.
	Mask int

	// Volume is the owning volume.
	Volume OptIndex

	// Edge is the volume reached upon crossing this surface.
	Edge OptIndex
}

// NextVolume returns the volume the trajectory switches to if it crosses
// this surface. None signals the world boundary.
func (s Surface) NextVolume() OptIndex { return s.Edge }

// Volume is a region of space owning a contiguous, half-open range of
// surfaces in the detector's flat surface store.
type Volume struct {
	// Begin is the first owned surface index.
	Begin int

	// End is one past the last owned surface index.
	End int
}

// FullRange returns the half-open [begin, end) surface range of the volume.
func (v Volume) FullRange() (int, int) { return v.Begin, v.End }

// Track is an immutable trajectory snapshot consumed per navigation call.
// Advancing it between calls is the external stepper's responsibility.
type Track struct {
	// Pos is the current position in world space.
	Pos v3.Vec

	// Dir is the unit direction of motion.
	Dir v3.Vec

	// OverstepTolerance is a small negative path cutoff guarding against
	// re-selecting the surface just departed.
	OverstepTolerance float64
}
