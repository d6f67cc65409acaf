// Package ports defines the interfaces through which the application core
// talks to the outside world, following the ports and adapters pattern.
package ports

// EANProvider resolves a product name to its barcode when one is known.
// Implementations are best-effort: ok is false when the product has no
// catalog entry or no usable code. The core never depends on the catalog's
// file shape; adapters inject a provider where barcodes are rendered.
type EANProvider interface {
	EAN(productName string) (string, bool)
}
