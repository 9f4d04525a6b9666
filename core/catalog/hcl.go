package catalog

import (
	"github.com/hashicorp/hcl/v2/hclsimple"

	"wifi-estimator/internal/errors"
)

// catalogFile is the HCL schema for a catalog override file:
//
//	building_type "office" {
//	  label  = "office space"
//	  factor = 1.0
//	}
//
//	usage_profile "moderate" {
//	  label  = "moderate (video calls, cloud apps)"
//	  factor = 1.0
//	}
type catalogFile struct {
	BuildingTypes []buildingTypeBlock `hcl:"building_type,block"`
	UsageProfiles []usageProfileBlock `hcl:"usage_profile,block"`
}

type buildingTypeBlock struct {
	Key    string  `hcl:"key,label"`
	Label  string  `hcl:"label"`
	Factor float64 `hcl:"factor"`
}

type usageProfileBlock struct {
	Key    string  `hcl:"key,label"`
	Label  string  `hcl:"label"`
	Factor float64 `hcl:"factor"`
}

// LoadFile parses an HCL catalog file and merges its entries over the
// default catalog. Entries sharing a key with a compiled-in entry
// replace it; new keys extend the option sets.
func LoadFile(path string) (*Catalog, error) {
	var file catalogFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Catalog("failed to parse catalog file", err).
			WithContext("path", path)
	}

	c := Default()
	for _, bt := range file.BuildingTypes {
		if bt.Factor <= 0 {
			return nil, errors.Newf(errors.TypeCatalog,
				"building type %q has non-positive factor %v", bt.Key, bt.Factor)
		}
		c.RegisterBuildingType(BuildingType(bt))
	}
	for _, up := range file.UsageProfiles {
		if up.Factor <= 0 {
			return nil, errors.Newf(errors.TypeCatalog,
				"usage profile %q has non-positive factor %v", up.Key, up.Factor)
		}
		c.RegisterUsageProfile(UsageProfile(up))
	}

	return c, nil
}
