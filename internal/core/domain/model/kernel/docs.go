// Package kernel provides core domain primitives for the label engine.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - Price: A value object for locale-formatted monetary amounts that keeps
//     the verbatim display text alongside the normalized numeric value
//   - ParseUintField / ParseDecimalField: shared cell parsers that turn raw
//     CSV text into typed values with column-aware errors
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
