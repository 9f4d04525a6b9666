// Package analytics defines the optional event-tracking collaborator.
// The estimator fires one event per successful estimate; a missing or
// failing tracker must never affect the estimate flow.
package analytics

import (
	"go.uber.org/zap"

	"wifi-estimator/internal/logging"
)

// Event is a single analytics beacon.
type Event struct {
	// Category groups related events
	Category string `json:"category"`

	// Label names the specific interaction
	Label string `json:"label"`
}

// EstimateCalculated is the event fired after every successful estimate.
func EstimateCalculated() Event {
	return Event{Category: "engagement", Label: "WiFi Coverage Calculation"}
}

// Tracker receives analytics events. Implementations must not block
// and must not return errors into the estimate flow.
type Tracker interface {
	Track(event Event)
}

// NopTracker discards all events. It is the default collaborator.
type NopTracker struct{}

// Track implements Tracker.
func (NopTracker) Track(Event) {}

// LogTracker writes events to the structured log.
type LogTracker struct{}

// Track implements Tracker.
func (LogTracker) Track(event Event) {
	logging.Info("analytics event",
		zap.String("category", event.Category),
		zap.String("label", event.Label))
}
