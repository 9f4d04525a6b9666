// Package catalog - Authoritative building-type and usage-profile catalog
// Defines the finite option sets behind the survey form's two selects,
// each carrying its estimation multiplier.
// This is the source of truth for coverage factors.
package catalog

// BuildingType is a catalog entry for a building category
type BuildingType struct {
	// Key is the stable identifier used by clients
	Key string

	// Label is the human-readable name rendered in summaries
	Label string

	// Factor is the coverage multiplier applied to the site area
	Factor float64
}

// UsageProfile is a catalog entry for a usage-intensity level
type UsageProfile struct {
	// Key is the stable identifier used by clients
	Key string

	// Label is the human-readable name
	Label string

	// Factor is the usage-intensity multiplier
	Factor float64
}

// Catalog holds the registered option sets. Registration order is
// preserved so clients render options the way the catalog defines them.
type Catalog struct {
	buildings     map[string]*BuildingType
	buildingOrder []string
	profiles      map[string]*UsageProfile
	profileOrder  []string
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		buildings: make(map[string]*BuildingType),
		profiles:  make(map[string]*UsageProfile),
	}
}

// RegisterBuildingType adds or replaces a building type
func (c *Catalog) RegisterBuildingType(bt BuildingType) {
	if _, exists := c.buildings[bt.Key]; !exists {
		c.buildingOrder = append(c.buildingOrder, bt.Key)
	}
	c.buildings[bt.Key] = &bt
}

// RegisterUsageProfile adds or replaces a usage profile
func (c *Catalog) RegisterUsageProfile(up UsageProfile) {
	if _, exists := c.profiles[up.Key]; !exists {
		c.profileOrder = append(c.profileOrder, up.Key)
	}
	c.profiles[up.Key] = &up
}

// BuildingType returns the entry for a key
func (c *Catalog) BuildingType(key string) (*BuildingType, bool) {
	bt, ok := c.buildings[key]
	return bt, ok
}

// UsageProfile returns the entry for a key
func (c *Catalog) UsageProfile(key string) (*UsageProfile, bool) {
	up, ok := c.profiles[key]
	return up, ok
}

// BuildingTypes returns all building types in registration order
func (c *Catalog) BuildingTypes() []*BuildingType {
	out := make([]*BuildingType, 0, len(c.buildingOrder))
	for _, key := range c.buildingOrder {
		out = append(out, c.buildings[key])
	}
	return out
}

// UsageProfiles returns all usage profiles in registration order
func (c *Catalog) UsageProfiles() []*UsageProfile {
	out := make([]*UsageProfile, 0, len(c.profileOrder))
	for _, key := range c.profileOrder {
		out = append(out, c.profiles[key])
	}
	return out
}

// Default returns the compiled-in catalog. Deployments can override the
// multipliers with an HCL catalog file (see LoadFile).
func Default() *Catalog {
	c := NewCatalog()

	c.RegisterBuildingType(BuildingType{Key: "office", Label: "office space", Factor: 1.0})
	c.RegisterBuildingType(BuildingType{Key: "retail", Label: "retail store", Factor: 1.2})
	c.RegisterBuildingType(BuildingType{Key: "restaurant", Label: "restaurant", Factor: 1.3})
	c.RegisterBuildingType(BuildingType{Key: "hotel", Label: "hotel", Factor: 1.4})
	c.RegisterBuildingType(BuildingType{Key: "warehouse", Label: "warehouse", Factor: 1.5})
	c.RegisterBuildingType(BuildingType{Key: "school", Label: "school", Factor: 1.2})

	c.RegisterUsageProfile(UsageProfile{Key: "light", Label: "light (email, browsing)", Factor: 0.8})
	c.RegisterUsageProfile(UsageProfile{Key: "moderate", Label: "moderate (video calls, cloud apps)", Factor: 1.0})
	c.RegisterUsageProfile(UsageProfile{Key: "heavy", Label: "heavy (streaming, large transfers)", Factor: 1.3})
	c.RegisterUsageProfile(UsageProfile{Key: "intensive", Label: "intensive (dense device deployments)", Factor: 1.6})

	return c
}
