// Package cmd - estimate command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wifi-estimator/core/catalog"
	"wifi-estimator/core/estimate"
	"wifi-estimator/core/output"
	"wifi-estimator/core/validate"
	"wifi-estimator/internal/config"
	"wifi-estimator/internal/errors"
	"wifi-estimator/internal/logging"
)

var (
	areaFlag     string
	buildingFlag string
	usageFlag    string
	cablingFlag  bool
	cctvFlag     bool
	securityFlag bool
	formatFlag   string
	catalogFlag  string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate WiFi equipment for a site",
	Long: `Compute a WiFi equipment estimate from a site survey.

Area must be between 100 and 100000 square feet. Building type and
usage level come from the catalog (see "wifi-estimator catalog").

Examples:
  wifi-estimator estimate --area 5000 --building office --usage moderate
  wifi-estimator estimate --area 3000 --building retail --usage heavy --cabling
  wifi-estimator estimate --area 5000 --building office --usage moderate --format json`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&areaFlag, "area", "a", "", "site area in square feet (required)")
	estimateCmd.Flags().StringVarP(&buildingFlag, "building", "b", "", "building type key (required)")
	estimateCmd.Flags().StringVarP(&usageFlag, "usage", "u", "", "usage profile key (required)")
	estimateCmd.Flags().BoolVar(&cablingFlag, "cabling", false, "include structured cabling")
	estimateCmd.Flags().BoolVar(&cctvFlag, "cctv", false, "include CCTV installation")
	estimateCmd.Flags().BoolVar(&securityFlag, "security", false, "include network security")
	estimateCmd.Flags().StringVarP(&formatFlag, "format", "f", "text", "output format (text, json)")
	estimateCmd.Flags().StringVar(&catalogFlag, "catalog", "", "HCL catalog file overriding built-in multipliers")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	form := validate.RawForm{
		Area:         areaFlag,
		BuildingType: buildingFlag,
		UsageProfile: usageFlag,
		Cabling:      cablingFlag,
		CCTV:         cctvFlag,
		Security:     securityFlag,
	}

	req, err := validate.ParseRequest(form, cat)
	if err != nil {
		if e := errors.AsError(err); e != nil && e.Type == errors.TypeValidation {
			return fmt.Errorf("%s", e.Message)
		}
		return err
	}

	logging.Debug("computing estimate",
		zap.Float64("area", req.Area),
		zap.String("building_type", req.BuildingType))

	est := estimate.Compute(req)
	services := estimate.AdditionalServices(req)
	summary := output.BuildSummary(req, est, services)

	formatter := output.NewFormatter(output.Format(formatFlag))
	return formatter.Render(os.Stdout, summary)
}

func loadCatalog() (*catalog.Catalog, error) {
	path := catalogFlag
	if path == "" {
		path = config.Get().Estimator.CatalogPath
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}
