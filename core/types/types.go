// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// CoverageRequest is a validated site survey ready for estimation.
// Area is in square feet and must already be inside [MinArea, MaxArea];
// the parsing boundary rejects out-of-range values, it never clamps them.
type CoverageRequest struct {
	// Area is the site floor area in square feet
	Area float64 `json:"area"`

	// BuildingFactor is the building-type coverage multiplier
	BuildingFactor float64 `json:"building_factor"`

	// UsageFactor is the usage-intensity multiplier
	UsageFactor float64 `json:"usage_factor"`

	// NeedsCabling requests structured cabling as an additional service
	NeedsCabling bool `json:"needs_cabling"`

	// NeedsCCTV requests CCTV installation as an additional service
	NeedsCCTV bool `json:"needs_cctv"`

	// NeedsSecurity requests network security as an additional service
	NeedsSecurity bool `json:"needs_security"`

	// BuildingType is the human-readable building type label
	BuildingType string `json:"building_type"`
}

// CoverageEstimate is a derived equipment estimate. Both counts are at
// least 1 for any valid request. Estimates are immutable and recomputed
// fresh per request.
type CoverageEstimate struct {
	// AccessPoints is the recommended access point count
	AccessPoints int `json:"access_points"`

	// Devices is the supported concurrent device count
	Devices int `json:"devices"`
}

// PortfolioItem is a single portfolio card.
// Category holds the item's tags as one space-separated string; filter
// matching tests the string for containment of the filter token, so a
// card tagged "wifi security" matches both "wifi" and "security".
type PortfolioItem struct {
	// Title is the card headline
	Title string `json:"title"`

	// Category is the space-separated tag set
	Category string `json:"category"`

	// Visible is derived from the active filter, presentation-only
	Visible bool `json:"visible"`
}
