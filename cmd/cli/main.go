// Package main is the entry point for the wifi-estimator CLI.
package main

import (
	"os"

	"wifi-estimator/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
