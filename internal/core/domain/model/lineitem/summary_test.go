package lineitem_test

import (
	"sort"
	"testing"

	"woolabels/internal/core/domain/model/lineitem"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputData_Summarize(t *testing.T) {
	t.Run("should count rows per product across all orders", func(t *testing.T) {
		input, err := lineitem.ParseInput(exportData)
		require.NoError(t, err)

		summary := input.Summarize()

		require.Len(t, summary, 8)

		counts := make(map[string]uint32, len(summary))
		for _, entry := range summary {
			counts[entry.ProductName] = entry.Count
		}
		assert.Equal(t, uint32(2), counts[`SELEZIONE B "IL VEGETARIANO"`])
		assert.Equal(t, uint32(1), counts["CARNE TRITA DI MANZO PER RAGU' E POLPETTE 500 g"])
		assert.Equal(t, uint32(1), counts["PANE AI CEREALI ANTICHI 500 g"])
	})

	t.Run("should sort entries by product name", func(t *testing.T) {
		input, err := lineitem.ParseInput(exportData)
		require.NoError(t, err)

		summary := input.Summarize()

		assert.True(t, sort.SliceIsSorted(summary, func(i, j int) bool {
			return summary[i].ProductName < summary[j].ProductName
		}))
		assert.Equal(t, "10 ARROSTICINI DI SUINO 300 g", summary[0].ProductName)
	})

	t.Run("should count each row once regardless of its quantity", func(t *testing.T) {
		data := "header\n" +
			`1,2020/05/24,processing,"A","10",0,gw,fr,a1,a2,20146,333,tx,"PRODUCT",3,10` + "\n"

		input, err := lineitem.ParseInput(data)
		require.NoError(t, err)

		summary := input.Summarize()

		require.Len(t, summary, 1)
		assert.Equal(t, uint32(1), summary[0].Count)
	})

	t.Run("should return no entries for empty input", func(t *testing.T) {
		var input lineitem.InputData

		assert.Empty(t, input.Summarize())
	})
}
