package geom

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Mask is the in-plane boundary of a surface. Inside reports whether the
// local point lies within the boundary, loosened by tol on every edge.
// Implementations must be immutable and safe for concurrent use.
type Mask interface {
	Inside(local v2.Vec, tol float64) bool
}

// RectMask bounds a surface by an axis-aligned rectangle, centered on the
// plane's local origin, with half-extents HalfX and HalfY.
type RectMask struct {
	HalfX, HalfY float64
}

// Inside reports whether local lies within the rectangle, loosened by tol.
func (m RectMask) Inside(local v2.Vec, tol float64) bool {
	if local.X < -m.HalfX-tol || local.X > m.HalfX+tol {
		return false
	}

	return local.Y >= -m.HalfY-tol && local.Y <= m.HalfY+tol
}

// AnnulusMask bounds a surface by a ring around the local origin with
// radii [RMin, RMax]. RMin = 0 degenerates to a full disc.
type AnnulusMask struct {
	RMin, RMax float64
}

// Inside reports whether local lies within the ring, loosened by tol.
func (m AnnulusMask) Inside(local v2.Vec, tol float64) bool {
	r := local.Length()

	return r >= m.RMin-tol && r <= m.RMax+tol
}

// Unbounded accepts every local point. Useful for conceptually infinite
// boundary planes and as a neutral element in tests.
type Unbounded struct{}

// Inside always reports true.
func (Unbounded) Inside(v2.Vec, float64) bool { return true }
