// Package estimate - Estimator invariant tests
// These tests pin the rounding policy: access points round UP, devices
// round DOWN, and both are floored at 1.
package estimate

import (
	"testing"

	"wifi-estimator/core/types"
)

func survey(area, building, usage float64) *types.CoverageRequest {
	return &types.CoverageRequest{
		Area:           area,
		BuildingFactor: building,
		UsageFactor:    usage,
		BuildingType:   "office space",
	}
}

// TestComputeBoundaries pins the documented boundary cases.
func TestComputeBoundaries(t *testing.T) {
	tests := []struct {
		name         string
		area         float64
		building     float64
		usage        float64
		accessPoints int
		devices      int
	}{
		{"one AP exactly at base coverage", 1500, 1, 1, 1, 30},
		{"two APs at double base coverage", 3000, 1, 1, 2, 60},
		{"minimum area", 100, 1, 1, 1, 2},
		{"just over one AP rounds up", 1501, 1, 1, 2, 30},
		{"building factor raises load", 1500, 1.5, 1, 2, 30},
		{"usage factor raises both", 1500, 1, 1.3, 2, 39},
		{"maximum area", 100000, 1, 1, 67, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(survey(tt.area, tt.building, tt.usage))
			if got.AccessPoints != tt.accessPoints {
				t.Errorf("AccessPoints = %d, want %d", got.AccessPoints, tt.accessPoints)
			}
			if got.Devices != tt.devices {
				t.Errorf("Devices = %d, want %d", got.Devices, tt.devices)
			}
		})
	}
}

// TestComputeFloorInvariant proves both counts stay at least 1 no
// matter how small the valid input is.
func TestComputeFloorInvariant(t *testing.T) {
	areas := []float64{100, 150, 500, 1499, 1500, 99999, 100000}
	factors := []float64{0.1, 0.5, 0.8, 1, 1.3, 1.6}

	for _, area := range areas {
		for _, building := range factors {
			for _, usage := range factors {
				got := Compute(survey(area, building, usage))
				if got.AccessPoints < 1 {
					t.Fatalf("AccessPoints = %d for area=%v building=%v usage=%v, want >= 1",
						got.AccessPoints, area, building, usage)
				}
				if got.Devices < 1 {
					t.Fatalf("Devices = %d for area=%v building=%v usage=%v, want >= 1",
						got.Devices, area, building, usage)
				}
			}
		}
	}
}

// TestComputeMonotonic proves estimates never shrink when any input grows.
func TestComputeMonotonic(t *testing.T) {
	areas := []float64{100, 500, 1500, 3000, 10000, 50000, 100000}
	prev := Compute(survey(areas[0], 1, 1))
	for _, area := range areas[1:] {
		got := Compute(survey(area, 1, 1))
		if got.AccessPoints < prev.AccessPoints {
			t.Errorf("AccessPoints decreased from %d to %d at area %v", prev.AccessPoints, got.AccessPoints, area)
		}
		if got.Devices < prev.Devices {
			t.Errorf("Devices decreased from %d to %d at area %v", prev.Devices, got.Devices, area)
		}
		prev = got
	}

	factors := []float64{0.5, 0.8, 1, 1.2, 1.5, 2}
	prev = Compute(survey(5000, factors[0], 1))
	for _, f := range factors[1:] {
		got := Compute(survey(5000, f, 1))
		if got.AccessPoints < prev.AccessPoints {
			t.Errorf("AccessPoints decreased at building factor %v", f)
		}
		prev = got
	}

	prev = Compute(survey(5000, 1, factors[0]))
	for _, f := range factors[1:] {
		got := Compute(survey(5000, 1, f))
		if got.AccessPoints < prev.AccessPoints {
			t.Errorf("AccessPoints decreased at usage factor %v", f)
		}
		if got.Devices < prev.Devices {
			t.Errorf("Devices decreased at usage factor %v", f)
		}
		prev = got
	}
}

// TestComputeIdempotent proves Compute is pure: identical input,
// identical output, no hidden state between calls.
func TestComputeIdempotent(t *testing.T) {
	req := survey(7342, 1.3, 1.6)
	first := Compute(req)
	second := Compute(req)
	if first != second {
		t.Errorf("Compute not idempotent: %+v != %+v", first, second)
	}
}

// TestAdditionalServices pins the fixed display order and the distinct
// empty result.
func TestAdditionalServices(t *testing.T) {
	tests := []struct {
		name     string
		cabling  bool
		cctv     bool
		security bool
		want     []string
	}{
		{"none requested", false, false, false, []string{}},
		{"cctv only", false, true, false, []string{ServiceCCTV}},
		{"security only", false, false, true, []string{ServiceSecurity}},
		{"all requested keep fixed order", true, true, true,
			[]string{ServiceCabling, ServiceCCTV, ServiceSecurity}},
		{"security and cabling keep fixed order", true, false, true,
			[]string{ServiceCabling, ServiceSecurity}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := survey(5000, 1, 1)
			req.NeedsCabling = tt.cabling
			req.NeedsCCTV = tt.cctv
			req.NeedsSecurity = tt.security

			got := AdditionalServices(req)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d services %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("service[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
