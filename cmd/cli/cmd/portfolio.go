// Package cmd - portfolio command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wifi-estimator/core/portfolio"
	"wifi-estimator/internal/config"
)

var filterFlag string

// portfolioCmd represents the portfolio command
var portfolioCmd = &cobra.Command{
	Use:   "portfolio [file]",
	Short: "Filter a portfolio definition by category",
	Long: `Load an HCL portfolio file and show which cards are visible
under a filter token.

Examples:
  wifi-estimator portfolio ./portfolio.hcl
  wifi-estimator portfolio ./portfolio.hcl --filter security`,
	Args: cobra.ExactArgs(1),
	RunE: runPortfolio,
}

func init() {
	portfolioCmd.Flags().StringVarP(&filterFlag, "filter", "f", portfolio.FilterAll, "filter token to apply")
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	items, err := portfolio.LoadFile(args[0])
	if err != nil {
		return err
	}

	filters := config.Get().Portfolio.Filters
	if len(filters) == 0 {
		filters = portfolio.DefaultFilters()
	}

	selection := portfolio.NewSelection(filters...)
	if err := selection.Activate(filterFlag); err != nil {
		return fmt.Errorf("unknown filter %q (known: %v)", filterFlag, filters)
	}

	filtered := portfolio.Filter(items, selection.Current())
	visible := 0
	for _, item := range filtered {
		marker := " "
		if item.Visible {
			marker = "x"
			visible++
		}
		fmt.Printf("[%s] %-40s %s\n", marker, item.Title, item.Category)
	}
	fmt.Printf("\n%d of %d items visible under %q\n", visible, len(filtered), selection.Current())

	return nil
}
