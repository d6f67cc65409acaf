// Package services provides domain services that orchestrate business
// operations across multiple domain entities of the label engine. It
// implements workflows that don't naturally belong to a single aggregate.
//
// The package includes:
//   - LabelAssembler: a domain service that regroups the flat row sequence
//     of an export into order aggregates ready for label rendering
//
// Domain services coordinate between aggregates, implementing logic that
// spans the raw input model and the order model following Domain-Driven
// Design principles.
package services
