package geom

import "fmt"

// Detector bundles the four read-only geometry stores: volumes, surfaces,
// placement planes and masks. It is immutable after construction and safe
// for concurrent readers.
type Detector struct {
	volumes  []Volume
	surfaces []Surface
	planes   []Plane
	masks    []Mask
}

// NewDetector validates all cross-store links and returns an immutable
// Detector. The input slices are copied, so the caller may reuse them.
//
// Validation (in order):
//  1. At least one volume (ErrNoVolumes).
//  2. Every volume range fits the surface store (ErrRangeOutOfBounds).
//  3. Every surface's plane index is in bounds (ErrBadPlaneIndex).
//  4. Every surface's mask index is in bounds (ErrBadMaskIndex).
//  5. Every valid edge link points at an existing volume (ErrBadVolumeLink);
//     a "none" edge is legal and marks the world boundary.
//
// Complexity: O(V + S) for V volumes and S surfaces.
func NewDetector(volumes []Volume, surfaces []Surface, planes []Plane, masks []Mask) (*Detector, error) {
	if len(volumes) == 0 {
		return nil, ErrNoVolumes
	}

	for i, vol := range volumes {
		if vol.Begin < 0 || vol.End < vol.Begin || vol.End > len(surfaces) {
			return nil, fmt.Errorf("%w: volume %d range [%d,%d) with %d surfaces",
				ErrRangeOutOfBounds, i, vol.Begin, vol.End, len(surfaces))
		}
	}

	for i, sf := range surfaces {
		if sf.Plane < 0 || sf.Plane >= len(planes) {
			return nil, fmt.Errorf("%w: surface %d plane %d", ErrBadPlaneIndex, i, sf.Plane)
		}
		if sf.Mask < 0 || sf.Mask >= len(masks) {
			return nil, fmt.Errorf("%w: surface %d mask %d", ErrBadMaskIndex, i, sf.Mask)
		}
		if sf.Edge.Valid() && sf.Edge.Int() >= len(volumes) {
			return nil, fmt.Errorf("%w: surface %d edge %s", ErrBadVolumeLink, i, sf.Edge)
		}
	}

	d := &Detector{
		volumes:  append([]Volume(nil), volumes...),
		surfaces: append([]Surface(nil), surfaces...),
		planes:   append([]Plane(nil), planes...),
		masks:    append([]Mask(nil), masks...),
	}

	return d, nil
}

// NumVolumes returns the size of the volume store.
func (d *Detector) NumVolumes() int { return len(d.volumes) }

// NumSurfaces returns the size of the surface store.
func (d *Detector) NumSurfaces() int { return len(d.surfaces) }

// Volume returns the volume descriptor at index i.
func (d *Detector) Volume(i int) Volume { return d.volumes[i] }

// Surface returns the surface descriptor at index i.
func (d *Detector) Surface(i int) Surface { return d.surfaces[i] }

// Plane returns the placement plane at index i.
func (d *Detector) Plane(i int) Plane { return d.planes[i] }

// Mask returns the mask at index i.
func (d *Detector) Mask(i int) Mask { return d.masks[i] }
