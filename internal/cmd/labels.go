package cmd

import (
	"fmt"
	"io"
	"os"

	"woolabels/internal/adapters/out/pdf"
	"woolabels/internal/config"
	"woolabels/internal/core/application/usecases/queries"
	"woolabels/internal/core/domain/model/order"
	"woolabels/internal/core/domain/model/product"
	"woolabels/internal/core/domain/services"

	"github.com/spf13/cobra"
)

var (
	labelsPDFPath       string
	labelsPackagingPath string
	labelsCatalogPath   string
	labelsNoMultipack   bool
)

var labelsCmd = &cobra.Command{
	Use:   "labels <export.csv>",
	Short: "Build shipping labels from an order export",
	Args:  cobra.ExactArgs(1),
	RunE:  runLabels,
}

func init() {
	labelsCmd.Flags().StringVarP(&labelsPDFPath, "pdf", "o", "",
		"write the labels as a PDF to the given path instead of printing text")
	labelsCmd.Flags().StringVar(&labelsPackagingPath, "packaging", "",
		"yaml file overriding the packaging thresholds")
	labelsCmd.Flags().StringVar(&labelsCatalogPath, "catalog", "",
		"semicolon-delimited product catalog used for barcode lookups")
	labelsCmd.Flags().BoolVar(&labelsNoMultipack, "no-multipack", false,
		"ship every order as a single package regardless of its total")
	rootCmd.AddCommand(labelsCmd)
}

func runLabels(cmd *cobra.Command, args []string) error {
	orders, err := buildOrders(cmd, args[0])
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(labelsCatalogPath)
	if err != nil {
		return err
	}

	if labelsPDFPath != "" {
		return writeLabelsPDF(cmd, orders, catalog)
	}

	printLabels(cmd.OutOrStdout(), orders)
	return nil
}

func buildOrders(cmd *cobra.Command, path string) ([]*order.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	packaging, err := config.LoadPackaging(labelsPackagingPath)
	if err != nil {
		return nil, err
	}

	handler := queries.NewBuildLabelsQueryHandler(services.NewLabelAssembler(packaging.Thresholds()))
	query := queries.NewBuildLabelsQuery(string(data), !labelsNoMultipack)
	return handler.Handle(cmd.Context(), query)
}

func loadCatalog(path string) (*product.Catalog, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return product.ParseCatalog(string(data))
}

func writeLabelsPDF(cmd *cobra.Command, orders []*order.Order, catalog *product.Catalog) error {
	out, err := os.Create(labelsPDFPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", labelsPDFPath, err)
	}
	defer out.Close()

	writer := pdf.NewLabelWriter()
	if catalog != nil {
		writer = pdf.NewLabelWriterWithEANs(catalog)
	}
	if err := writer.Write(out, orders); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d deliveries to %s\n", len(orders), labelsPDFPath)
	return nil
}

func printLabels(out io.Writer, orders []*order.Order) {
	for _, o := range orders {
		fmt.Fprintf(out, "Ordine N.: %d\n", o.ID())
		fmt.Fprintf(out, "Data: %s\n", o.OrderDate())
		fmt.Fprintf(out, "Tel.: %s\n", o.Phone())
		fmt.Fprintf(out, "Indirizzo: %s, %s %s, Milano, %s, Italia\n",
			o.CustomerName(), o.AddressLine1(), o.AddressLine2(), o.Postcode())
		fmt.Fprintf(out, "%d collo/i\n", len(o.Packages()))

		for i, pkg := range o.Packages() {
			fmt.Fprintf(out, "-- collo %d --\n", i+1)
			for _, item := range pkg {
				fmt.Fprintf(out, "  %d  %s\n", item.Quantity(), item.ProductName())
			}
			for _, detail := range o.DeliveryDetails(i) {
				if detail.Name != "" {
					fmt.Fprintf(out, "  %s: %s\n", detail.Name, detail.Data)
				} else {
					fmt.Fprintf(out, "  %s\n", detail.Data)
				}
			}
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Number of deliveries: %d\n", len(orders))
}
