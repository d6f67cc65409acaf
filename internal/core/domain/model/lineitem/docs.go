// Package lineitem models the raw WooCommerce order export: one CSV row per
// purchased line item, sixteen positional columns, comma-delimited.
//
// ParseInput is the single entry point. It validates the whole export
// eagerly and fails fast: one bad row aborts the parse and no partial data
// escapes. The resulting InputData keeps the rows in file order, which is
// what the downstream grouping into orders relies on.
package lineitem
