package validate

import (
	"strings"
	"testing"
)

// TestAreaClassification pins the boundary behavior: values outside
// [MinArea, MaxArea] are rejected, never clamped.
func TestAreaClassification(t *testing.T) {
	tests := []struct {
		raw  string
		want AreaStatus
	}{
		{"99", AreaTooSmall},
		{"100", AreaValid},
		{"100000", AreaValid},
		{"100001", AreaTooLarge},
		{"abc", AreaNotANumber},
		{"", AreaNotANumber},
		{"NaN", AreaNotANumber},
		{"+Inf", AreaNotANumber},
		{" 2500 ", AreaValid},
		{"1e4", AreaValid},
		{"2500.5", AreaValid},
		{"-500", AreaTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Area(tt.raw)
			if got.Status != tt.want {
				t.Errorf("Area(%q).Status = %v, want %v", tt.raw, got.Status, tt.want)
			}
			if tt.want == AreaValid && got.Message() != "" {
				t.Errorf("valid result has message %q", got.Message())
			}
			if tt.want != AreaValid && got.Message() == "" {
				t.Error("invalid result has no field message")
			}
		})
	}
}

// TestAreaResultBounds checks the bounds carried for feedback text.
func TestAreaResultBounds(t *testing.T) {
	small := Area("50")
	if small.Min != MinArea {
		t.Errorf("TooSmall.Min = %v, want %v", small.Min, MinArea)
	}
	if !strings.Contains(small.Message(), "100") {
		t.Errorf("TooSmall message %q does not name the bound", small.Message())
	}

	large := Area("200000")
	if large.Max != MaxArea {
		t.Errorf("TooLarge.Max = %v, want %v", large.Max, MaxArea)
	}
	if !strings.Contains(large.Message(), "100000") {
		t.Errorf("TooLarge message %q does not name the bound", large.Message())
	}

	valid := Area("2500")
	if valid.Value != 2500 {
		t.Errorf("Valid.Value = %v, want 2500", valid.Value)
	}
}
