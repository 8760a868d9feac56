package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shopsight",
	Short: "Shopsight - Customer Shopping Behavior Reports",
	Long: `Shopsight loads a customer shopping behavior dataset (CSV export or
MySQL table), cleans it, and runs a fixed catalog of descriptive reports:
revenue breakdowns, top products, discount usage, shipping and
subscription comparisons, and customer segmentation.

Reports can be run from the CLI or served as JSON over HTTP.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
