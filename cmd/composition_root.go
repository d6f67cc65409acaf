package cmd

import (
	"fmt"
	"os"

	"woolabels/internal/config"
	"woolabels/internal/core/application/usecases/queries"
	"woolabels/internal/core/domain/model/order"
	"woolabels/internal/core/domain/model/product"
	"woolabels/internal/core/domain/services"
	"woolabels/internal/core/ports"
)

// CompositionRoot wires the application from configuration: packaging
// thresholds from the optional yaml file and the optional product catalog
// backing barcode lookups.
type CompositionRoot struct {
	thresholds order.Thresholds
	catalog    *product.Catalog
}

func NewCompositionRoot(configs Config) (CompositionRoot, error) {
	packaging, err := config.LoadPackaging(configs.PackagingConfigPath)
	if err != nil {
		return CompositionRoot{}, err
	}

	root := CompositionRoot{thresholds: packaging.Thresholds()}

	if configs.ProductCSVPath != "" {
		data, readErr := os.ReadFile(configs.ProductCSVPath)
		if readErr != nil {
			return CompositionRoot{}, fmt.Errorf("failed to read product catalog: %w", readErr)
		}

		catalog, parseErr := product.ParseCatalog(string(data))
		if parseErr != nil {
			return CompositionRoot{}, parseErr
		}
		root.catalog = catalog
	}

	return root, nil
}

func (c *CompositionRoot) CreateBuildLabelsQueryHandler() queries.BuildLabelsQueryHandler {
	return queries.NewBuildLabelsQueryHandler(services.NewLabelAssembler(c.thresholds))
}

func (c *CompositionRoot) CreateBuildSummaryQueryHandler() queries.BuildSummaryQueryHandler {
	return queries.NewBuildSummaryQueryHandler()
}

// EANProvider returns the catalog-backed barcode lookup, or nil when no
// catalog is configured.
func (c *CompositionRoot) EANProvider() ports.EANProvider {
	if c.catalog == nil {
		return nil
	}
	return c.catalog
}
