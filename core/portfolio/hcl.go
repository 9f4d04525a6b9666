package portfolio

import (
	"github.com/hashicorp/hcl/v2/hclsimple"

	"wifi-estimator/core/types"
	"wifi-estimator/internal/errors"
)

// portfolioFile is the HCL schema for a portfolio definition file:
//
//	item "guest-wifi-rollout" {
//	  title    = "Guest WiFi rollout for a boutique hotel"
//	  category = "wifi networking"
//	}
type portfolioFile struct {
	Items []itemBlock `hcl:"item,block"`
}

type itemBlock struct {
	Name     string `hcl:"name,label"`
	Title    string `hcl:"title"`
	Category string `hcl:"category"`
}

// LoadFile parses an HCL portfolio file into items, preserving file
// order. Items start hidden; visibility is derived by Filter.
func LoadFile(path string) ([]types.PortfolioItem, error) {
	var file portfolioFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Catalog("failed to parse portfolio file", err).
			WithContext("path", path)
	}

	items := make([]types.PortfolioItem, 0, len(file.Items))
	for _, it := range file.Items {
		if it.Category == "" {
			return nil, errors.Newf(errors.TypeCatalog,
				"portfolio item %q has no category", it.Name)
		}
		items = append(items, types.PortfolioItem{
			Title:    it.Title,
			Category: it.Category,
		})
	}
	return items, nil
}
