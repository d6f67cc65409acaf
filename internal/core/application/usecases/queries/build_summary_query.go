package queries

import (
	"errors"

	"woolabels/internal/pkg/guard"
)

var (
	ErrBuildSummaryQueryIsNotConstructed = errors.New(
		"BuildSummaryQuery must be created via NewBuildSummaryQuery constructor",
	)
)

// BuildSummaryQuery computes the cross-order packing summary of one pasted
// order export: how many line items reference each product name.
type BuildSummaryQuery struct {
	csvText string
	guard   guard.ConstructorGuard
}

// NewBuildSummaryQuery creates a query for one export snapshot.
func NewBuildSummaryQuery(csvText string) BuildSummaryQuery {
	return BuildSummaryQuery{csvText: csvText, guard: guard.NewConstructorGuard()}
}

// CSVText returns the raw export text.
func (q BuildSummaryQuery) CSVText() string {
	return q.csvText
}

// Validate ensures the query was created through the constructor.
// Returns ErrBuildSummaryQueryIsNotConstructed if validation fails.
func (q BuildSummaryQuery) Validate() error {
	return q.guard.Validate(ErrBuildSummaryQueryIsNotConstructed)
}
