// Package errs provides standardized error types for the label engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes generic validation errors plus the three failure kinds
// of the CSV ingestion pipeline:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value lies outside an allowed range
//   - FieldParseError: For a CSV cell that does not match its expected type
//   - RowParseError: For a CSV row rejected as a whole, carrying the raw row
//   - PriceParseError: For a monetary display string that is not numeric
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrRowIsNotParsable)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where applicable
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
//     (RowParseError additionally exposes its cause through the chain)
//
// Parse failures are never recovered locally: any field, row, or price
// failure aborts the operation it occurred in and surfaces to the caller as
// one of these typed failures.
package errs
