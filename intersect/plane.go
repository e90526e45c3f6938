package intersect

import (
	"github.com/katalvlaran/volnav/geom"
)

// maskTolerance loosens the mask boundary check by a fixed margin, so
// crossings that graze an edge within numerical noise still classify as
// Inside.
const maskTolerance = 1e-4

// Plane intersects a straight trajectory with the bounded plane of one
// surface. It is the default intersector of the navigation core.
//
// The signed path solves n·(c − o + s·d) = 0 for s, where n is the plane
// normal, c a point on the plane, o the trajectory position and d its
// direction. The candidate classifies Inside iff:
//  1. the ray is not parallel to the plane,
//  2. the path does not undercut the trajectory's overstep tolerance, and
//  3. the crossing point lies within the surface mask.
//
// Complexity: O(1).
func Plane(tr geom.Track, object int, det *geom.Detector) Candidate {
	sf := det.Surface(object)
	pl := det.Plane(sf.Plane)

	// 1) Parallel rays never cross the plane.
	denom := tr.Dir.Dot(pl.Normal)
	if denom == 0 {
		return miss(object, sf.NextVolume())
	}

	// 2) Solve for the signed path.
	c := Candidate{
		Path:   pl.Normal.Dot(pl.Center.Sub(tr.Pos)) / denom,
		Status: Outside,
		Object: geom.Index(object),
		Link:   sf.NextVolume(),
	}

	// Paths below the overstep tolerance point backwards: the trajectory
	// already departed this crossing.
	if c.Path < tr.OverstepTolerance {
		return c
	}

	// 3) Project the crossing point into the plane frame and check the mask.
	at := tr.Pos.Add(tr.Dir.MulScalar(c.Path))
	if det.Mask(sf.Mask).Inside(pl.ToLocal(at), maskTolerance) {
		c.Status = Inside
	}

	return c
}
