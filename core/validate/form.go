package validate

import (
	"wifi-estimator/core/catalog"
	"wifi-estimator/core/types"
	"wifi-estimator/internal/errors"
)

// RawForm carries survey values exactly as the host view submitted
// them: strings for typed fields, booleans for checkboxes. No coercion
// happens before ParseRequest.
type RawForm struct {
	// Area is the unparsed area field
	Area string

	// BuildingType is the selected building-type catalog key
	BuildingType string

	// UsageProfile is the selected usage-profile catalog key
	UsageProfile string

	// Cabling is the structured-cabling checkbox
	Cabling bool

	// CCTV is the CCTV-installation checkbox
	CCTV bool

	// Security is the network-security checkbox
	Security bool
}

// ParseRequest converts a raw form into a validated CoverageRequest
// against the given catalog. It returns a TypeValidation error naming
// the offending field when a value is rejected; the engine is never
// invoked on a request that failed here.
func ParseRequest(form RawForm, cat *catalog.Catalog) (*types.CoverageRequest, error) {
	area := Area(form.Area)
	if !area.OK() {
		return nil, errors.Validation("area", area.Message())
	}

	if form.BuildingType == "" {
		return nil, errors.Validation("building_type", "Please select a building type")
	}
	bt, ok := cat.BuildingType(form.BuildingType)
	if !ok {
		return nil, errors.NotFound("building type", form.BuildingType)
	}

	if form.UsageProfile == "" {
		return nil, errors.Validation("usage_profile", "Please select a usage level")
	}
	up, ok := cat.UsageProfile(form.UsageProfile)
	if !ok {
		return nil, errors.NotFound("usage profile", form.UsageProfile)
	}

	return &types.CoverageRequest{
		Area:           area.Value,
		BuildingFactor: bt.Factor,
		UsageFactor:    up.Factor,
		NeedsCabling:   form.Cabling,
		NeedsCCTV:      form.CCTV,
		NeedsSecurity:  form.Security,
		BuildingType:   bt.Label,
	}, nil
}
