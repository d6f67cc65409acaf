package queries

import (
	"context"

	"woolabels/internal/core/domain/model/lineitem"
)

// BuildSummaryQueryHandler parses an order export and aggregates its rows
// into the packing summary. Each row counts once toward its product,
// regardless of the row's quantity column.
type BuildSummaryQueryHandler struct{}

// NewBuildSummaryQueryHandler creates a summary handler.
func NewBuildSummaryQueryHandler() BuildSummaryQueryHandler {
	return BuildSummaryQueryHandler{}
}

// Handle parses the query's CSV text and returns the summary entries
// sorted by product name. A malformed export aborts with a
// *errs.RowParseError and no partial summary.
func (h BuildSummaryQueryHandler) Handle(
	ctx context.Context,
	query BuildSummaryQuery,
) ([]lineitem.SummaryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	input, err := lineitem.ParseInput(query.CSVText())
	if err != nil {
		return nil, err
	}

	return input.Summarize(), nil
}
