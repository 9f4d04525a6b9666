// Package estimate is the coverage estimation engine.
// Compute is a pure function over an already-validated request; callers
// reject invalid input at the parsing boundary before reaching it.
package estimate

import (
	"github.com/shopspring/decimal"

	"wifi-estimator/core/types"
)

const (
	// BaseCoverage is the square footage one access point covers at baseline
	BaseCoverage = 1500

	// DeviceFactor is the assumed device count per 100 sq ft per
	// usage-intensity unit
	DeviceFactor = 2
)

// Compute derives the equipment estimate for a validated request.
//
// Access points round UP so coverage is never under-provisioned; the
// device capacity rounds DOWN for a conservative estimate. Both counts
// are floored at 1 no matter how small the site is. The rounding
// directions are load-bearing and must not change.
func Compute(req *types.CoverageRequest) types.CoverageEstimate {
	area := decimal.NewFromFloat(req.Area)
	building := decimal.NewFromFloat(req.BuildingFactor)
	usage := decimal.NewFromFloat(req.UsageFactor)

	load := area.Mul(building).Mul(usage)
	accessPoints := load.Div(decimal.NewFromInt(BaseCoverage)).Ceil().IntPart()

	devices := area.Div(decimal.NewFromInt(100)).
		Mul(usage).
		Mul(decimal.NewFromInt(DeviceFactor)).
		Floor().IntPart()

	if accessPoints < 1 {
		accessPoints = 1
	}
	if devices < 1 {
		devices = 1
	}

	return types.CoverageEstimate{
		AccessPoints: int(accessPoints),
		Devices:      int(devices),
	}
}
