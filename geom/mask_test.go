package geom_test

import (
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/katalvlaran/volnav/geom"
)

// TestRectMask covers interior, edge-within-tolerance and exterior points.
func TestRectMask(t *testing.T) {
	m := geom.RectMask{HalfX: 2, HalfY: 1}

	cases := []struct {
		name  string
		local v2.Vec
		tol   float64
		want  bool
	}{
		{"Center", v2.Vec{}, 0, true},
		{"Corner", v2.Vec{X: 2, Y: 1}, 0, true},
		{"JustOutsideX", v2.Vec{X: 2.01, Y: 0}, 0, false},
		{"JustOutsideXWithTol", v2.Vec{X: 2.01, Y: 0}, 0.02, true},
		{"JustOutsideY", v2.Vec{X: 0, Y: -1.01}, 0, false},
		{"FarAway", v2.Vec{X: 10, Y: 10}, 0.5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Inside(tc.local, tc.tol); got != tc.want {
				t.Errorf("Inside(%v, %v) = %v; want %v", tc.local, tc.tol, got, tc.want)
			}
		})
	}
}

// TestAnnulusMask covers the ring bounds, including the degenerate disc.
func TestAnnulusMask(t *testing.T) {
	ring := geom.AnnulusMask{RMin: 1, RMax: 3}
	disc := geom.AnnulusMask{RMin: 0, RMax: 2}

	cases := []struct {
		name  string
		mask  geom.Mask
		local v2.Vec
		tol   float64
		want  bool
	}{
		{"RingMid", ring, v2.Vec{X: 2}, 0, true},
		{"RingHole", ring, v2.Vec{X: 0.5}, 0, false},
		{"RingHoleWithTol", ring, v2.Vec{X: 0.95}, 0.1, true},
		{"RingBeyond", ring, v2.Vec{X: 0, Y: 3.5}, 0, false},
		{"DiscCenter", disc, v2.Vec{}, 0, true},
		{"DiscRim", disc, v2.Vec{X: 2}, 0, true},
		{"DiscBeyond", disc, v2.Vec{X: 2.5}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.mask.Inside(tc.local, tc.tol); got != tc.want {
				t.Errorf("Inside(%v, %v) = %v; want %v", tc.local, tc.tol, got, tc.want)
			}
		})
	}
}

// TestUnbounded accepts everything.
func TestUnbounded(t *testing.T) {
	var m geom.Unbounded
	if !m.Inside(v2.Vec{X: 1e9, Y: -1e9}, 0) {
		t.Error("Unbounded must accept every point")
	}
}
