package estimate

import "wifi-estimator/core/types"

// Additional service labels, in display order.
const (
	ServiceCabling  = "structured cabling"
	ServiceCCTV     = "CCTV installation"
	ServiceSecurity = "network security"
)

// AdditionalServices returns the requested add-on services.
// The order is fixed (cabling, CCTV, security) because the rendered
// sentence joins the labels as-is. An empty slice is a distinct result:
// it selects the "basic assessment only" messaging path.
func AdditionalServices(req *types.CoverageRequest) []string {
	services := make([]string, 0, 3)
	if req.NeedsCabling {
		services = append(services, ServiceCabling)
	}
	if req.NeedsCCTV {
		services = append(services, ServiceCCTV)
	}
	if req.NeedsSecurity {
		services = append(services, ServiceSecurity)
	}
	return services
}
