package navigator_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/volnav/geom"
	"github.com/katalvlaran/volnav/navigator"
)

// TestNewStateDefaults verifies the documented initial state.
func TestNewStateDefaults(t *testing.T) {
	state, err := navigator.NewState(3)
	if err != nil {
		t.Fatalf("NewState error: %v", err)
	}

	if got := state.Volume(); got != geom.Index(3) {
		t.Errorf("Volume() = %v; want 3", got)
	}
	if got := state.Status(); got != navigator.StatusUnknown {
		t.Errorf("Status() = %v; want unknown", got)
	}
	if got := state.Trust(); got != navigator.NoTrust {
		t.Errorf("Trust() = %v; want no-trust", got)
	}
	if !math.IsInf(state.Distance(), 1) {
		t.Errorf("Distance() = %v; want +Inf", state.Distance())
	}
	if got := state.Tolerance(); got != 1e-3 {
		t.Errorf("Tolerance() = %v; want 1e-3", got)
	}
	if state.CurrentObject().Valid() {
		t.Errorf("CurrentObject() = %v; want none", state.CurrentObject())
	}
	if !state.Exhausted() {
		t.Error("Exhausted() = false; want true on an empty kernel")
	}
}

// TestNewStateErrors rejects a negative initial volume.
func TestNewStateErrors(t *testing.T) {
	if _, err := navigator.NewState(-1); !errors.Is(err, navigator.ErrVolumeOutOfRange) {
		t.Errorf("NewState(-1) error = %v; want ErrVolumeOutOfRange", err)
	}
}

// TestStateOptions verifies option application and the guards against
// nonsensical values.
func TestStateOptions(t *testing.T) {
	state, err := navigator.NewState(0,
		navigator.WithTolerance(5e-4),
		navigator.WithInspector(nil), // ignored, keeps the no-op default
	)
	if err != nil {
		t.Fatalf("NewState error: %v", err)
	}
	if got := state.Tolerance(); got != 5e-4 {
		t.Errorf("Tolerance() = %v; want 5e-4", got)
	}

	state, err = navigator.NewState(0, navigator.WithTolerance(-1))
	if err != nil {
		t.Fatalf("NewState error: %v", err)
	}
	if got := state.Tolerance(); got != 1e-3 {
		t.Errorf("Tolerance() after WithTolerance(-1) = %v; want default 1e-3", got)
	}

	state.SetTolerance(2e-3)
	if got := state.Tolerance(); got != 2e-3 {
		t.Errorf("SetTolerance(2e-3): Tolerance() = %v", got)
	}
	state.SetTolerance(0)
	if got := state.Tolerance(); got != 2e-3 {
		t.Errorf("SetTolerance(0) must be ignored; Tolerance() = %v", got)
	}
}

// TestStatusAndTrustStrings pins the diagnostic renderings.
func TestStatusAndTrustStrings(t *testing.T) {
	statuses := map[navigator.Status]string{
		navigator.StatusUnknown:       "unknown",
		navigator.StatusTowardsObject: "towards-object",
		navigator.StatusOnObject:      "on-object",
		navigator.StatusOnTarget:      "on-target",
		navigator.StatusAbort:         "abort",
	}
	for st, want := range statuses {
		if got := st.String(); got != want {
			t.Errorf("Status(%d).String() = %q; want %q", st, got, want)
		}
	}

	trusts := map[navigator.TrustLevel]string{
		navigator.NoTrust:        "no-trust",
		navigator.FairTrust:      "fair-trust",
		navigator.HighTrust:      "high-trust",
		navigator.FullTrust:      "full-trust",
		navigator.TrustLevel(2):  "invalid-trust",
		navigator.TrustLevel(-1): "invalid-trust",
	}
	for tl, want := range trusts {
		if got := tl.String(); got != want {
			t.Errorf("TrustLevel(%d).String() = %q; want %q", tl, got, want)
		}
	}
}

// TestKernelZeroValue checks the empty-kernel invariants via the State
// accessors and the Kernel methods on a zero value.
func TestKernelZeroValue(t *testing.T) {
	var k navigator.Kernel

	if !k.Empty() {
		t.Error("zero Kernel: Empty() = false")
	}
	if !k.Exhausted() {
		t.Error("zero Kernel: Exhausted() = false")
	}
	if k.Len() != 0 {
		t.Errorf("zero Kernel: Len() = %d", k.Len())
	}

	k.Clear() // must be a no-op on an empty kernel
	if !k.Empty() || !k.Exhausted() {
		t.Error("Clear() on zero Kernel broke invariants")
	}
}
