// Package validate classifies raw survey input and converts it into a
// typed CoverageRequest. It is the only layer that deals with the host
// view's untyped string values; the estimation engine never sees them.
package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Area bounds in square feet. Values outside the range are rejected,
// never clamped.
const (
	MinArea = 100
	MaxArea = 100000
)

// AreaStatus classifies a raw area value
type AreaStatus int

const (
	// AreaValid means the value parsed and is inside [MinArea, MaxArea]
	AreaValid AreaStatus = iota

	// AreaTooSmall means the value parsed but is below MinArea
	AreaTooSmall

	// AreaTooLarge means the value parsed but is above MaxArea
	AreaTooLarge

	// AreaNotANumber means the value did not parse as a finite number
	AreaNotANumber
)

// String returns string representation
func (s AreaStatus) String() string {
	switch s {
	case AreaValid:
		return "valid"
	case AreaTooSmall:
		return "too_small"
	case AreaTooLarge:
		return "too_large"
	case AreaNotANumber:
		return "not_a_number"
	default:
		return "unknown"
	}
}

// AreaResult is the outcome of classifying a raw area value
type AreaResult struct {
	// Status is the classification
	Status AreaStatus

	// Value is the parsed area, set only when Status is AreaValid
	Value float64

	// Min is the lower bound, set when Status is AreaTooSmall
	Min float64

	// Max is the upper bound, set when Status is AreaTooLarge
	Max float64
}

// OK reports whether the value passed validation
func (r AreaResult) OK() bool {
	return r.Status == AreaValid
}

// Message returns the field-level feedback text for invalid results,
// or "" for valid ones. Used both for live input feedback and for
// pre-submit gating.
func (r AreaResult) Message() string {
	switch r.Status {
	case AreaTooSmall:
		return fmt.Sprintf("Area must be at least %.0f sq ft", r.Min)
	case AreaTooLarge:
		return fmt.Sprintf("Area must not exceed %.0f sq ft", r.Max)
	case AreaNotANumber:
		return "Please enter a valid area in square feet"
	default:
		return ""
	}
}

// Area classifies a raw area string from the host view.
func Area(raw string) AreaResult {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return AreaResult{Status: AreaNotANumber}
	}
	return AreaValue(v)
}

// AreaValue classifies an already-numeric area value.
func AreaValue(v float64) AreaResult {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return AreaResult{Status: AreaNotANumber}
	}
	if v < MinArea {
		return AreaResult{Status: AreaTooSmall, Min: MinArea}
	}
	if v > MaxArea {
		return AreaResult{Status: AreaTooLarge, Max: MaxArea}
	}
	return AreaResult{Status: AreaValid, Value: v}
}
