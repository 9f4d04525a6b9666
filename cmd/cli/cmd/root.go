// Package cmd provides the CLI commands for wifi-estimator.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wifi-estimator/internal/config"
	"wifi-estimator/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wifi-estimator",
	Short: "Estimate WiFi equipment for a site survey",
	Long: `wifi-estimator computes heuristic WiFi equipment estimates and
portfolio-card visibility for a managed-IT services site.

It takes a short site survey (area, building type, usage intensity,
optional add-on services) and recommends an access point count and a
supported device capacity.

Examples:
  wifi-estimator estimate --area 5000 --building office --usage moderate
  wifi-estimator estimate --area 12000 --building hotel --usage heavy --cctv --security
  wifi-estimator portfolio ./portfolio.hcl --filter security`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wifi-estimator.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(portfolioCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("wifi-estimator version 1.0.0")
	},
}
