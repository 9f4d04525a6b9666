// Package cmd - catalog command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// catalogCmd lists the building types and usage profiles
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List building types and usage profiles",
	Long: `List the catalog entries accepted by the estimate command,
with their coverage multipliers.

An HCL catalog file given with --catalog (or configured via
estimator.catalog_path) overrides the built-in entries.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFlag, "catalog", "", "HCL catalog file overriding built-in multipliers")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	fmt.Println("Building types:")
	for _, bt := range cat.BuildingTypes() {
		fmt.Printf("  %-12s %-45s x%.2f\n", bt.Key, bt.Label, bt.Factor)
	}

	fmt.Println("\nUsage profiles:")
	for _, up := range cat.UsageProfiles() {
		fmt.Printf("  %-12s %-45s x%.2f\n", up.Key, up.Label, up.Factor)
	}

	return nil
}
