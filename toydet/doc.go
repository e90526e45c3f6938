// Package toydet builds a small three-volume toy detector for tests,
// examples and benchmarks of the navigation core.
//
// 🚀 Layout
//
//	Plane shells perpendicular to the beam diagonal (1,1,0)/√2, at fixed
//	distances along it:
//
//	  volume 0 (beampipe): one boundary portal at 27
//	  volume 1 (layer):    entry portal 27, four sensitive modules at
//	                       29/31/33/35, exit portal at 38
//	  volume 2 (gap):      entry portal 38, exit portal 42 → world exit
//
//	  0────portal(27)│ m m m m │portal(38)│ portal(42)──▶ out
//	     vol 0       │  vol 1  │   vol 2  │
//
// Boundary planes are shared between adjacent volumes: each volume owns
// its own portal surface, but both reference the same placement plane, so
// a trajectory crossing the boundary sees a coincident "adjacent portal"
// at path ≈ 0 in the new volume.
//
// A track launched with NewTrack from the origin along BeamDir crosses
// every shell at exactly its nominal distance, which makes expected paths
// in tests trivial to read.
package toydet
