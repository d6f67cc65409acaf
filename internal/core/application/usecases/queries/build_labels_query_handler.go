package queries

import (
	"context"

	"woolabels/internal/core/domain/model/lineitem"
	"woolabels/internal/core/domain/model/order"
	"woolabels/internal/core/domain/services"
)

// BuildLabelsQueryHandler parses an order export and assembles the order
// aggregates its labels are rendered from. The computation is pure: no
// state is kept between calls, and a failed parse or assembly returns no
// partial orders.
type BuildLabelsQueryHandler struct {
	assembler services.LabelAssembler
}

// NewBuildLabelsQueryHandler creates a handler using the given assembler.
func NewBuildLabelsQueryHandler(assembler services.LabelAssembler) BuildLabelsQueryHandler {
	return BuildLabelsQueryHandler{assembler: assembler}
}

// Handle parses the query's CSV text and groups the rows into orders.
// Returns a *errs.RowParseError on malformed input and a
// *errs.PriceParseError when a monetary column is not numeric.
func (h BuildLabelsQueryHandler) Handle(
	ctx context.Context,
	query BuildLabelsQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	input, err := lineitem.ParseInput(query.CSVText())
	if err != nil {
		return nil, err
	}

	return h.assembler.Assemble(input, query.Multipack())
}
