package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"wifi-estimator/internal/errors"
)

// TestDefaultCatalog sanity-checks the compiled-in entries.
func TestDefaultCatalog(t *testing.T) {
	c := Default()

	office, ok := c.BuildingType("office")
	if !ok {
		t.Fatal("office building type missing")
	}
	if office.Factor != 1.0 {
		t.Errorf("office factor = %v, want 1.0", office.Factor)
	}
	if office.Label != "office space" {
		t.Errorf("office label = %q", office.Label)
	}

	moderate, ok := c.UsageProfile("moderate")
	if !ok {
		t.Fatal("moderate usage profile missing")
	}
	if moderate.Factor != 1.0 {
		t.Errorf("moderate factor = %v, want 1.0", moderate.Factor)
	}

	if _, ok := c.BuildingType("castle"); ok {
		t.Error("unknown building type resolved")
	}

	for _, bt := range c.BuildingTypes() {
		if bt.Factor <= 0 {
			t.Errorf("building type %q has non-positive factor", bt.Key)
		}
	}
	for _, up := range c.UsageProfiles() {
		if up.Factor <= 0 {
			t.Errorf("usage profile %q has non-positive factor", up.Key)
		}
	}
}

// TestCatalogOrder proves listings preserve registration order.
func TestCatalogOrder(t *testing.T) {
	c := NewCatalog()
	c.RegisterBuildingType(BuildingType{Key: "b", Label: "b", Factor: 1})
	c.RegisterBuildingType(BuildingType{Key: "a", Label: "a", Factor: 1})
	c.RegisterBuildingType(BuildingType{Key: "b", Label: "b2", Factor: 2})

	got := c.BuildingTypes()
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Key != "b" || got[1].Key != "a" {
		t.Errorf("order = [%s %s], want [b a]", got[0].Key, got[1].Key)
	}
	if got[0].Factor != 2 {
		t.Errorf("re-registration did not replace entry, factor = %v", got[0].Factor)
	}
}

// TestLoadFile proves HCL overrides merge over the defaults.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	src := `
building_type "office" {
  label  = "open-plan office"
  factor = 1.1
}

building_type "clinic" {
  label  = "medical clinic"
  factor = 1.25
}

usage_profile "heavy" {
  label  = "heavy"
  factor = 1.4
}
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	office, _ := c.BuildingType("office")
	if office == nil || office.Factor != 1.1 || office.Label != "open-plan office" {
		t.Errorf("office override not applied: %+v", office)
	}

	clinic, ok := c.BuildingType("clinic")
	if !ok || clinic.Factor != 1.25 {
		t.Errorf("new entry not added: %+v", clinic)
	}

	heavy, _ := c.UsageProfile("heavy")
	if heavy == nil || heavy.Factor != 1.4 {
		t.Errorf("usage override not applied: %+v", heavy)
	}

	// Untouched defaults survive the merge
	if _, ok := c.BuildingType("hotel"); !ok {
		t.Error("default hotel entry lost after merge")
	}
}

// TestLoadFileRejectsBadFactor proves non-positive multipliers are a
// catalog error, not a silent default.
func TestLoadFileRejectsBadFactor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	src := `
building_type "office" {
  label  = "office"
  factor = 0
}
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); !errors.IsType(err, errors.TypeCatalog) {
		t.Errorf("got %v, want a catalog error", err)
	}
}

// TestLoadFileMissing proves an unreadable file is reported, not
// swallowed.
func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.hcl")); err == nil {
		t.Error("LoadFile on missing file succeeded")
	}
}
