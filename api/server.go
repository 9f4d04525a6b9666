// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine
// orchestration, output serialization. It performs no estimation logic.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wifi-estimator/core/analytics"
	"wifi-estimator/core/catalog"
	"wifi-estimator/core/estimate"
	"wifi-estimator/core/output"
	"wifi-estimator/core/portfolio"
	"wifi-estimator/core/validate"
	"wifi-estimator/internal/errors"
	"wifi-estimator/internal/logging"
)

// notifyMessage is the generic failure message for unexpected errors.
const notifyMessage = "An error occurred while processing your request. Please try again."

// Server is the API server
type Server struct {
	mux     *http.ServeMux
	version string
	catalog *catalog.Catalog
	filters []string
	tracker analytics.Tracker
}

// NewServer creates a new API server with the default catalog,
// filter set, and a no-op tracker.
func NewServer(version string) *Server {
	return NewServerWith(version, catalog.Default(), portfolio.DefaultFilters(), analytics.NopTracker{})
}

// NewServerWith creates a new API server with explicit collaborators.
func NewServerWith(version string, cat *catalog.Catalog, filters []string, tracker analytics.Tracker) *Server {
	if tracker == nil {
		tracker = analytics.NopTracker{}
	}
	s := &Server{
		mux:     http.NewServeMux(),
		version: version,
		catalog: cat,
		filters: filters,
		tracker: tracker,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)
	s.mux.HandleFunc("POST /portfolio/filter", s.handleFilter)

	// Supporting endpoints
	s.mux.HandleFunc("GET /building-types", s.handleBuildingTypes)
	s.mux.HandleFunc("GET /usage-profiles", s.handleUsageProfiles)
	s.mux.HandleFunc("GET /filters", s.handleFilters)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := generateRequestID()

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeEstimateError(w, requestID, ErrorDetail{
			Code: "INVALID_JSON", Message: err.Error(),
		}, http.StatusBadRequest)
		return
	}

	// Route through the same parsing boundary the view layer uses so
	// range rejection and catalog resolution behave identically.
	form := validate.RawForm{
		Area:         strconv.FormatFloat(req.Area, 'f', -1, 64),
		BuildingType: req.BuildingType,
		UsageProfile: req.UsageProfile,
		Cabling:      req.Cabling,
		CCTV:         req.CCTV,
		Security:     req.Security,
	}

	parsed, err := validate.ParseRequest(form, s.catalog)
	if err != nil {
		s.writeParseError(w, requestID, err)
		return
	}

	est := estimate.Compute(parsed)
	services := estimate.AdditionalServices(parsed)
	summary := output.BuildSummary(parsed, est, services)

	s.tracker.Track(analytics.EstimateCalculated())

	s.writeJSON(w, &EstimateResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Status:    "success",
		Estimate:  &est,
		Summary:   summary,
		Metadata: &ResponseMetadata{
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// handleFilter handles POST /portfolio/filter
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var req FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	if req.Filter == "" {
		req.Filter = portfolio.FilterAll
	}

	selection := portfolio.NewSelection(s.filters...)
	if err := selection.Activate(req.Filter); err != nil {
		s.writeError(w, "UNKNOWN_FILTER", err.Error(), http.StatusBadRequest)
		return
	}

	items := portfolio.Filter(req.Items, selection.Current())
	visible := 0
	for _, item := range items {
		if item.Visible {
			visible++
		}
	}

	s.writeJSON(w, &FilterResponse{
		RequestID:    requestID,
		Filter:       selection.Current(),
		Items:        items,
		VisibleCount: visible,
	}, http.StatusOK)
}

// handleBuildingTypes handles GET /building-types
func (s *Server) handleBuildingTypes(w http.ResponseWriter, r *http.Request) {
	options := make([]OptionPayload, 0)
	for _, bt := range s.catalog.BuildingTypes() {
		options = append(options, OptionPayload{Key: bt.Key, Label: bt.Label, Factor: bt.Factor})
	}
	s.writeJSON(w, map[string]interface{}{"building_types": options}, http.StatusOK)
}

// handleUsageProfiles handles GET /usage-profiles
func (s *Server) handleUsageProfiles(w http.ResponseWriter, r *http.Request) {
	options := make([]OptionPayload, 0)
	for _, up := range s.catalog.UsageProfiles() {
		options = append(options, OptionPayload{Key: up.Key, Label: up.Label, Factor: up.Factor})
	}
	s.writeJSON(w, map[string]interface{}{"usage_profiles": options}, http.StatusOK)
}

// handleFilters handles GET /filters
func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{"filters": s.filters}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "wifi-estimator",
		"year":    output.Year(),
	}, http.StatusOK)
}

// writeParseError maps a parsing-boundary error onto the wire. Field
// validation stays a 400 with the field named; anything unexpected is
// the generic notification with a 500, never a crash.
func (s *Server) writeParseError(w http.ResponseWriter, requestID string, err error) {
	if e := errors.AsError(err); e != nil {
		switch e.Type {
		case errors.TypeValidation:
			s.writeEstimateError(w, requestID, ErrorDetail{
				Code: string(e.Type), Message: e.Message, Field: e.Field(),
			}, http.StatusBadRequest)
			return
		case errors.TypeNotFound:
			s.writeEstimateError(w, requestID, ErrorDetail{
				Code: string(e.Type), Message: e.Message,
			}, http.StatusBadRequest)
			return
		}
	}
	logging.Error("estimate request failed", zap.Error(err))
	s.writeEstimateError(w, requestID, ErrorDetail{
		Code: string(errors.TypeInternal), Message: notifyMessage,
	}, http.StatusInternalServerError)
}

func (s *Server) writeEstimateError(w http.ResponseWriter, requestID string, detail ErrorDetail, status int) {
	s.writeJSON(w, &EstimateResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Status:    "error",
		Message:   detail.Message,
		Errors:    []ErrorDetail{detail},
	}, status)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

func generateRequestID() string {
	return "est-" + uuid.NewString()
}
