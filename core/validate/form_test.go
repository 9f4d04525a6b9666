package validate

import (
	"testing"

	"wifi-estimator/core/catalog"
	"wifi-estimator/internal/errors"
)

func validForm() RawForm {
	return RawForm{
		Area:         "5000",
		BuildingType: "office",
		UsageProfile: "moderate",
		CCTV:         true,
	}
}

// TestParseRequest converts a raw form into a typed request with the
// catalog multipliers resolved.
func TestParseRequest(t *testing.T) {
	req, err := ParseRequest(validForm(), catalog.Default())
	if err != nil {
		t.Fatalf("ParseRequest failed: %v", err)
	}

	if req.Area != 5000 {
		t.Errorf("Area = %v, want 5000", req.Area)
	}
	if req.BuildingFactor != 1.0 {
		t.Errorf("BuildingFactor = %v, want 1.0", req.BuildingFactor)
	}
	if req.UsageFactor != 1.0 {
		t.Errorf("UsageFactor = %v, want 1.0", req.UsageFactor)
	}
	if req.BuildingType != "office space" {
		t.Errorf("BuildingType = %q, want the catalog label", req.BuildingType)
	}
	if !req.NeedsCCTV || req.NeedsCabling || req.NeedsSecurity {
		t.Errorf("service flags not carried over: %+v", req)
	}
}

// TestParseRequestRejections pins which failures are field-level
// validation errors and which are assembly failures.
func TestParseRequestRejections(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*RawForm)
		wantType errors.Type
		field    string
	}{
		{"area below range", func(f *RawForm) { f.Area = "50" }, errors.TypeValidation, "area"},
		{"area above range", func(f *RawForm) { f.Area = "500000" }, errors.TypeValidation, "area"},
		{"area not numeric", func(f *RawForm) { f.Area = "big" }, errors.TypeValidation, "area"},
		{"building type missing", func(f *RawForm) { f.BuildingType = "" }, errors.TypeValidation, "building_type"},
		{"usage profile missing", func(f *RawForm) { f.UsageProfile = "" }, errors.TypeValidation, "usage_profile"},
		{"building type unknown", func(f *RawForm) { f.BuildingType = "castle" }, errors.TypeNotFound, ""},
		{"usage profile unknown", func(f *RawForm) { f.UsageProfile = "extreme" }, errors.TypeNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			req, err := ParseRequest(form, catalog.Default())
			if err == nil {
				t.Fatalf("expected error, got request %+v", req)
			}
			if !errors.IsType(err, tt.wantType) {
				t.Errorf("error type = %v, want %v", err, tt.wantType)
			}
			if tt.field != "" {
				if e := errors.AsError(err); e.Field() != tt.field {
					t.Errorf("error field = %q, want %q", e.Field(), tt.field)
				}
			}
		})
	}
}
