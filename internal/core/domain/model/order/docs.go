// Package order provides the order aggregate of the label engine: one
// customer order assembled from a contiguous group of export rows, split
// into the packages it ships in.
//
// The package includes:
//   - Order: the aggregate root carrying the label header fields, the
//     order total, the delivery description, and the packages
//   - Item: one purchased product inside a package
//   - Package: an ordered run of items shipped in one parcel
//   - Thresholds: the order-total brackets driving the parcel count
//   - DeliveryDetail: the display lines rendered under a package's items
//
// Key business rules:
//   - The parcel count is derived from the order total: one parcel up to
//     the single bracket, two up to the double bracket, three above it
//   - Items are sorted by product name and chunked into consecutive
//     parcels of ceiling size, so the last parcel may be shorter
//   - Only the last parcel carries the delivery/payment/total lines;
//     multi-parcel orders mark every parcel with its position
//
// The package follows Domain-Driven Design principles: orders can only be
// created through NewOrder and keep their invariants behind private fields.
package order
