package queries

import (
	"errors"

	"woolabels/internal/pkg/guard"
)

var (
	ErrBuildLabelsQueryIsNotConstructed = errors.New(
		"BuildLabelsQuery must be created via NewBuildLabelsQuery constructor",
	)
)

// BuildLabelsQuery turns one pasted order export into shipping labels.
// The CSV text may be empty: an empty export is a valid parse yielding zero
// orders. Multipack mirrors the caller's splitting toggle: when false,
// every order ships as one package regardless of its total value.
//
// Example:
//
//	query := NewBuildLabelsQuery(csvText, true)
//	handler := NewBuildLabelsQueryHandler(assembler)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build labels: %w", err)
//	}
//
//	fmt.Printf("Number of deliveries: %d\n", len(orders))
type BuildLabelsQuery struct {
	csvText   string
	multipack bool
	guard     guard.ConstructorGuard
}

// NewBuildLabelsQuery creates a query for one export snapshot.
func NewBuildLabelsQuery(csvText string, multipack bool) BuildLabelsQuery {
	return BuildLabelsQuery{
		csvText:   csvText,
		multipack: multipack,
		guard:     guard.NewConstructorGuard(),
	}
}

// CSVText returns the raw export text.
func (q BuildLabelsQuery) CSVText() string {
	return q.csvText
}

// Multipack reports whether orders may be split over multiple packages.
func (q BuildLabelsQuery) Multipack() bool {
	return q.multipack
}

// Validate ensures the query was created through the constructor.
// Returns ErrBuildLabelsQueryIsNotConstructed if validation fails.
func (q BuildLabelsQuery) Validate() error {
	return q.guard.Validate(ErrBuildLabelsQueryIsNotConstructed)
}
