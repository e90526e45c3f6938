// Package intersect is the intersection oracle of the navigation core: a
// pure function from (trajectory snapshot, surface, detector stores) to a
// Candidate holding the signed path length and an inside/outside
// classification.
//
// 🚀 What is a Candidate?
//
//	A prospective crossing of the trajectory with one surface:
//	  • Path   – signed distance along the trajectory to the crossing point
//	  • Status – Inside if the crossing point lies within the surface mask,
//	    Outside for misses, parallel rays, and paths below the trajectory's
//	    overstep tolerance
//	  • Object – index of the intersected surface
//	  • Link   – volume reached if the surface is crossed (the surface's
//	    edge link, "none" at the world boundary)
//
// Candidates are totally ordered by Path ascending; ties keep their input
// order (the navigator sorts stably and imposes no further tie-break).
//
// # Contract
//
// An intersector must be deterministic and side-effect-free for fixed
// inputs. Plane is the default implementation (straight ray against a
// bounded plane); Func lets callers substitute any oracle honoring the
// same contract, e.g. for curved trajectory models or exotic surface
// shapes.
//
// Complexity: Plane is O(1) per surface — two dot products, one mask check.
package intersect
