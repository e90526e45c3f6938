package toydet

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/katalvlaran/volnav/geom"
)

// Volume indices of the toy detector.
const (
	VolumeBeampipe = 0
	VolumeLayer    = 1
	VolumeGap      = 2
)

// Surface indices of the toy detector, in store order.
const (
	// PortalBeampipe bounds volume 0 and links into the layer.
	PortalBeampipe = 0

	// PortalLayerEntry is the layer's own copy of the beampipe boundary.
	PortalLayerEntry = 1

	// ModuleFirst..ModuleLast are the layer's sensitive modules.
	ModuleFirst = 2
	ModuleLast  = 5

	// PortalLayerExit links the layer into the gap.
	PortalLayerExit = 6

	// PortalGapEntry is the gap's own copy of the layer boundary.
	PortalGapEntry = 7

	// PortalGapExit links out of the world.
	PortalGapExit = 8
)

// Shell distances along the beam diagonal.
const (
	DistBeampipe  = 27.0
	DistModule0   = 29.0
	DistModule1   = 31.0
	DistModule2   = 33.0
	DistModule3   = 35.0
	DistLayerExit = 38.0
	DistGapExit   = 42.0
)

// defaultOverstep is the overstep tolerance handed to NewTrack.
const defaultOverstep = -1e-4

// BeamDir returns the normalized beam diagonal (1,1,0)/√2.
func BeamDir() v3.Vec {
	return v3.Vec{X: 1, Y: 1}.Normalize()
}

// NewTrack returns a trajectory snapshot at the origin, heading along
// BeamDir, with the default overstep tolerance.
func NewTrack() geom.Track {
	return geom.Track{
		Pos:               v3.Vec{},
		Dir:               BeamDir(),
		OverstepTolerance: defaultOverstep,
	}
}

// Step returns tr advanced by path along its direction. Convenience for
// stepping loops in tests and examples.
func Step(tr geom.Track, path float64) geom.Track {
	tr.Pos = tr.Pos.Add(tr.Dir.MulScalar(path))

	return tr
}

// Build assembles the toy detector. Errors only on a programming mistake
// in the tables below, so callers in tests may require.NoError it.
func Build() (*geom.Detector, error) {
	dir := BeamDir()

	// One placement plane per shell; boundary planes are shared between
	// the two volumes they separate.
	shell := func(d float64) geom.Plane {
		return geom.NewPlane(dir.MulScalar(d), dir)
	}
	planes := []geom.Plane{
		shell(DistBeampipe),  // 0: beampipe boundary
		shell(DistModule0),   // 1
		shell(DistModule1),   // 2
		shell(DistModule2),   // 3
		shell(DistModule3),   // 4
		shell(DistLayerExit), // 5: layer/gap boundary
		shell(DistGapExit),   // 6: world boundary
	}

	masks := []geom.Mask{
		geom.AnnulusMask{RMin: 0, RMax: 15}, // 0: portal disc
		geom.RectMask{HalfX: 12, HalfY: 12}, // 1: sensitive module
	}

	const portal, module = 0, 1
	vol := geom.Index
	surfaces := []geom.Surface{
		// volume 0: beampipe
		{Plane: 0, Mask: portal, Volume: vol(VolumeBeampipe), Edge: vol(VolumeLayer)},
		// volume 1: layer
		{Plane: 0, Mask: portal, Volume: vol(VolumeLayer), Edge: vol(VolumeBeampipe)},
		{Plane: 1, Mask: module, Volume: vol(VolumeLayer), Edge: vol(VolumeLayer)},
		{Plane: 2, Mask: module, Volume: vol(VolumeLayer), Edge: vol(VolumeLayer)},
		{Plane: 3, Mask: module, Volume: vol(VolumeLayer), Edge: vol(VolumeLayer)},
		{Plane: 4, Mask: module, Volume: vol(VolumeLayer), Edge: vol(VolumeLayer)},
		{Plane: 5, Mask: portal, Volume: vol(VolumeLayer), Edge: vol(VolumeGap)},
		// volume 2: gap
		{Plane: 5, Mask: portal, Volume: vol(VolumeGap), Edge: vol(VolumeLayer)},
		{Plane: 6, Mask: portal, Volume: vol(VolumeGap), Edge: geom.NoIndex()},
	}

	volumes := []geom.Volume{
		{Begin: 0, End: 1}, // beampipe
		{Begin: 1, End: 7}, // layer
		{Begin: 7, End: 9}, // gap
	}

	return geom.NewDetector(volumes, surfaces, planes, masks)
}
