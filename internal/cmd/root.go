// Package cmd implements the labelctl command line interface: shipping
// labels and packing summaries straight from an exported CSV file, without
// running the web server.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "labelctl",
	Short: "Shipping labels and packing summaries from WooCommerce exports",
	Long: `labelctl turns a row-per-line-item WooCommerce CSV export into
order-level shipping labels and a cross-order packing summary.

Labels print as text by default or render as a PDF, one page per package.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
