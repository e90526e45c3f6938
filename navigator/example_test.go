package navigator_test

import (
	"fmt"

	"github.com/katalvlaran/volnav/navigator"
	"github.com/katalvlaran/volnav/toydet"
)

// Example drives a straight track through the toy detector with the
// canonical stepping loop: Status confirms the step just taken, Target
// decides the next aim, the stepper advances exactly the promised
// distance (so trust stays full between calls).
//
// Scenario:
//
//   - volume 0 (beampipe): one portal shell at path 27
//   - volume 1 (layer): four sensitive modules, then an exit portal
//   - volume 2 (gap): a single exit portal out of the world
//
// Complexity: O(candidates) per call, O(1) on the full-trust fast path.
func Example() {
	det, _ := toydet.Build()
	nav, _ := navigator.New(det)
	state, _ := navigator.NewState(toydet.VolumeBeampipe)

	tr := toydet.NewTrack()
	total := 0.0

	heartbeat := nav.Status(state, tr)
	for heartbeat && state.Status() != navigator.StatusOnTarget {
		if heartbeat = nav.Target(state, tr); !heartbeat {
			break
		}
		if state.Status() == navigator.StatusOnTarget {
			break
		}

		step := state.Distance()
		tr = toydet.Step(tr, step)
		total += step

		if heartbeat = nav.Status(state, tr); !heartbeat {
			break
		}
		if state.Status() == navigator.StatusOnObject {
			fmt.Printf("on surface %s → volume %s\n", state.CurrentObject(), state.Volume())
		}
	}

	fmt.Printf("status %s, total path %.1f\n", state.Status(), total)

	// Output:
	// on surface 0 → volume 1
	// on surface 2 → volume 1
	// on surface 3 → volume 1
	// on surface 4 → volume 1
	// on surface 5 → volume 1
	// on surface 6 → volume 2
	// status on-target, total path 42.0
}
