package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"woolabels/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <export.csv>",
	Short: "Print the cross-order packing summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	handler := queries.NewBuildSummaryQueryHandler()
	entries, err := handler.Handle(cmd.Context(), queries.NewBuildSummaryQuery(string(data)))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Prodotto\tRighe")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%d\n", entry.ProductName, entry.Count)
	}
	return w.Flush()
}
