// Package output provides output formatting interfaces.
// This package renders estimates for humans and machines; it performs
// no estimation logic of its own.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"wifi-estimator/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatText is a human-readable plain-text summary
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Call-to-action labels. The complete-solution label is used whenever
// at least one additional service was requested.
const (
	CTAComplete = "Get Complete Solution Quote"
	CTABasic    = "Get Free Professional Quote"

	// BasicNote accompanies CTABasic when no services were requested
	BasicNote = "Basic WiFi assessment only"
)

// Summary is the fully rendered estimate, ready for any host view.
type Summary struct {
	// Headline names the area and building type
	Headline string `json:"headline"`

	// Equipment is the access point recommendation sentence
	Equipment string `json:"equipment"`

	// Services are the requested add-on service labels, in fixed order
	Services []string `json:"services,omitempty"`

	// ServicesLine is the rendered services sentence, "" when none
	ServicesLine string `json:"services_line,omitempty"`

	// Note is the basic-assessment note, "" when services were requested
	Note string `json:"note,omitempty"`

	// CallToAction is the quote button label
	CallToAction string `json:"call_to_action"`

	// Devices is the supported device count
	Devices int `json:"devices"`

	// DevicesLine is the rendered device capacity sentence
	DevicesLine string `json:"devices_line"`

	// Year is the current calendar year display string
	Year string `json:"year"`
}

// startYear is captured once at process start for display purposes.
var startYear = time.Now().Year()

// Year returns the process-start calendar year as a display string.
func Year() string {
	return fmt.Sprintf("%d", startYear)
}

// BuildSummary renders an estimate and its service selection into
// display text. The wording is part of the external contract: a single
// access point is presented as one high-performance system, more are
// presented as an access point count.
func BuildSummary(req *types.CoverageRequest, est types.CoverageEstimate, services []string) *Summary {
	s := &Summary{
		Headline:    fmt.Sprintf("For your %.0f sq ft %s, we recommend:", req.Area, req.BuildingType),
		Services:    services,
		Devices:     est.Devices,
		DevicesLine: fmt.Sprintf("Supports approximately %d connected devices", est.Devices),
		Year:        Year(),
	}

	if est.AccessPoints <= 1 {
		s.Equipment = "1 high-performance WiFi system"
	} else {
		s.Equipment = fmt.Sprintf("%d WiFi access points", est.AccessPoints)
	}

	if len(services) > 0 {
		s.ServicesLine = fmt.Sprintf("Recommended additional services: %s", strings.Join(services, ", "))
		s.CallToAction = CTAComplete
	} else {
		s.Note = BasicNote
		s.CallToAction = CTABasic
	}

	return s
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the summary
	Render(w io.Writer, s *Summary) error
}

// NewFormatter returns the formatter for a format, defaulting to text.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &jsonFormatter{}
	default:
		return &textFormatter{}
	}
}
