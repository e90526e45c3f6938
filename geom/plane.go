package geom

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Plane is the placement frame of a surface: a point on the plane, the
// unit normal, and an orthonormal in-plane axis pair used to project world
// points into the 2D local frame consumed by masks.
//
// Planes are built with NewPlane and treated as immutable afterwards.
type Plane struct {
	// Center is a reference point on the plane (the local origin).
	Center v3.Vec

	// Normal is the unit plane normal.
	Normal v3.Vec

	// XAxis is the unit in-plane axis spanning the local x direction.
	XAxis v3.Vec
}

// NewPlane builds a placement frame from a point on the plane and a (not
// necessarily normalized) normal. The in-plane axis pair is chosen
// deterministically: XAxis is the world axis least aligned with the normal,
// projected into the plane and normalized.
//
// Complexity: O(1).
func NewPlane(center, normal v3.Vec) Plane {
	n := normal.Normalize()

	// Pick the world axis least aligned with n as the projection seed.
	seed := v3.Vec{X: 1}
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	if ay <= ax && ay <= az {
		seed = v3.Vec{Y: 1}
	} else if az <= ax && az <= ay {
		seed = v3.Vec{Z: 1}
	}

	// Gram-Schmidt: remove the normal component, normalize.
	x := seed.Sub(n.MulScalar(seed.Dot(n))).Normalize()

	return Plane{Center: center, Normal: n, XAxis: x}
}

// YAxis returns the second in-plane axis, completing the right-handed
// frame (Normal × XAxis).
func (p Plane) YAxis() v3.Vec { return p.Normal.Cross(p.XAxis) }

// ToLocal projects a world point into the plane's 2D local frame.
// The out-of-plane component is discarded; masks only see in-plane
// coordinates.
func (p Plane) ToLocal(pt v3.Vec) v2.Vec {
	d := pt.Sub(p.Center)

	return v2.Vec{X: d.Dot(p.XAxis), Y: d.Dot(p.YAxis())}
}
