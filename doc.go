// Package volnav is your in-memory engine for guiding a moving trajectory
// through a partitioned three-dimensional space — volume by volume, object
// by object, with a continuously re-evaluated cache of upcoming crossings.
//
// 🚀 What is volnav?
//
//	A small, deterministic navigation core that answers one question on
//	every step of an external stepping loop: "what is the next surface or
//	boundary portal the trajectory will reach, and did it just cross one?"
//		• Geometry stores: volumes, surfaces/portals, placement planes, masks
//		• Candidate kernel: a sorted, partially-trusted cache of intersections
//		• Trust levels: from full rebuild down to a zero-cost fast path
//		• Volume switching: portals hand the trajectory over to the next volume
//
// ✨ Why choose volnav?
//
//   - Predictable – the navigator is stateless; all mutation lives in one
//     per-trajectory State that the caller owns exclusively
//   - Cheap – the kernel is refreshed incrementally whenever the previous
//     step kept its promise, and rebuilt only after a discontinuity
//   - Pluggable – the intersection oracle and the inspection hook are
//     runtime-replaceable functions with trivial defaults
//   - Pure Go – no cgo, read-only geometry, safe for one State per goroutine
//
// Under the hood, everything is organized under four subpackages:
//
//	geom/      — Detector stores: Volume, Surface, Plane, Mask, Track, OptIndex
//	intersect/ — the ray–plane intersection oracle producing Candidates
//	navigator/ — the navigation state machine: Status/Target, kernel, trust
//	toydet/    — a toy multi-volume detector for tests, examples and benches
//
// Quick ASCII example:
//
//	   vol 0      vol 1        vol 2
//	  ┌──────┬───────────────┬───────┐
//	  │  ●───┼──▶ s s  s s ──┼──▶    │ exit
//	  └──────┴───────────────┴───────┘
//	        portal          portal
//
//	a trajectory (●) crosses a portal into volume 1, sweeps its sensitive
//	surfaces (s) in path order, and leaves the world through the last portal.
//
// Dive into the per-package docs for the full state machine, the trust-level
// contract, and end-to-end stepping examples.
//
//	go get github.com/katalvlaran/volnav/navigator
package volnav
