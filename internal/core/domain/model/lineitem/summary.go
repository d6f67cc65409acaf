package lineitem

import "sort"

// SummaryEntry is one line of the cross-order packing summary.
type SummaryEntry struct {
	ProductName string
	Count       uint32
}

// Summarize counts, per distinct product name, how many line items reference
// it across the whole input. Each row contributes exactly one to its
// product's count; the row's quantity column does not participate. Entries
// come out sorted by product name ascending.
func (d InputData) Summarize() []SummaryEntry {
	counts := make(map[string]uint32, len(d.rows))
	for _, row := range d.rows {
		counts[row.productName]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]SummaryEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, SummaryEntry{ProductName: name, Count: counts[name]})
	}
	return entries
}
