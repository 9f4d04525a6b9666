// Package api - API types for coverage estimation
// These types define the contract for the /estimate and
// /portfolio/filter endpoints. The API is stateless and deterministic.
package api

import (
	"time"

	"wifi-estimator/core/output"
	"wifi-estimator/core/types"
)

// EstimateRequest is the POST /estimate payload. It mirrors the survey
// form: a numeric area, two catalog keys, three service checkboxes.
type EstimateRequest struct {
	// Area is the site floor area in square feet
	Area float64 `json:"area"`

	// BuildingType is a building-type catalog key
	BuildingType string `json:"building_type"`

	// UsageProfile is a usage-profile catalog key
	UsageProfile string `json:"usage_profile"`

	// Cabling requests structured cabling
	Cabling bool `json:"cabling"`

	// CCTV requests CCTV installation
	CCTV bool `json:"cctv"`

	// Security requests network security
	Security bool `json:"security"`
}

// EstimateResponse is the POST /estimate result envelope.
type EstimateResponse struct {
	// RequestID uniquely identifies this request
	RequestID string `json:"request_id"`

	// Timestamp is when the request was processed
	Timestamp time.Time `json:"timestamp"`

	// Status is "success" or "error"
	Status string `json:"status"`

	// Estimate is the computed equipment estimate
	Estimate *types.CoverageEstimate `json:"estimate,omitempty"`

	// Summary is the rendered display text
	Summary *output.Summary `json:"summary,omitempty"`

	// Message is a human-readable status message
	Message string `json:"message,omitempty"`

	// Errors contains error details on failure
	Errors []ErrorDetail `json:"errors,omitempty"`

	// Metadata contains response metadata
	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// ErrorDetail describes a single error
type ErrorDetail struct {
	// Code is a stable machine-readable error code
	Code string `json:"code"`

	// Message is the human-readable description
	Message string `json:"message"`

	// Field names the offending form field, when applicable
	Field string `json:"field,omitempty"`
}

// ResponseMetadata carries processing metadata
type ResponseMetadata struct {
	// EngineVersion is the estimator version
	EngineVersion string `json:"engine_version"`

	// DurationMs is the processing time in milliseconds
	DurationMs int64 `json:"duration_ms"`
}

// FilterRequest is the POST /portfolio/filter payload.
type FilterRequest struct {
	// Items is the portfolio card list with category tags
	Items []types.PortfolioItem `json:"items"`

	// Filter is the filter token to apply
	Filter string `json:"filter"`
}

// FilterResponse is the POST /portfolio/filter result.
type FilterResponse struct {
	// RequestID uniquely identifies this request
	RequestID string `json:"request_id"`

	// Filter is the token that was applied
	Filter string `json:"filter"`

	// Items is the input list with derived visibility, input order
	Items []types.PortfolioItem `json:"items"`

	// VisibleCount is the number of visible items
	VisibleCount int `json:"visible_count"`
}

// OptionPayload is a catalog entry in listing responses.
type OptionPayload struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
}
