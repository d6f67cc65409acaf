package queries_test

import (
	"context"
	"testing"

	"woolabels/internal/core/application/usecases/queries"
	"woolabels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummaryQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	handler := queries.NewBuildSummaryQueryHandler()

	t.Run("should count line items per product across orders", func(t *testing.T) {
		query := queries.NewBuildSummaryQuery(exportData)

		entries, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, entries, 3)

		counts := make(map[string]uint32, len(entries))
		for _, entry := range entries {
			counts[entry.ProductName] = entry.Count
		}
		assert.Equal(t, uint32(2), counts[`SELEZIONE B "IL VEGETARIANO"`])
		assert.Equal(t, uint32(1), counts["INSALATA VARIA 500 g"])
	})

	t.Run("should return no entries for empty input", func(t *testing.T) {
		query := queries.NewBuildSummaryQuery("")

		entries, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("should reject an unconstructed query", func(t *testing.T) {
		var query queries.BuildSummaryQuery

		entries, err := handler.Handle(ctx, query)

		require.Error(t, err)
		assert.Nil(t, entries)
		assert.Equal(t, queries.ErrBuildSummaryQueryIsNotConstructed, err)
	})

	t.Run("should surface a row parse failure", func(t *testing.T) {
		query := queries.NewBuildSummaryQuery("header\nnot,enough,columns\n")

		entries, err := handler.Handle(ctx, query)

		require.Error(t, err)
		assert.Nil(t, entries)
		assert.ErrorIs(t, err, errs.ErrRowIsNotParsable)
	})
}
