package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValueIsRequired is the sentinel for missing required values.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid is the sentinel for values that fail validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange is the sentinel for values outside an allowed range.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrFieldIsNotParsable is the sentinel for a CSV cell that does not match
	// its expected type.
	ErrFieldIsNotParsable = errors.New("field is not parsable")

	// ErrRowIsNotParsable is the sentinel for a CSV row rejected as a whole.
	ErrRowIsNotParsable = errors.New("row is not parsable")

	// ErrPriceIsNotNumeric is the sentinel for a monetary display string that
	// is not a valid decimal after locale normalization.
	ErrPriceIsNotNumeric = errors.New("price is not numeric")
)

// sanitize flattens a value into a single log-safe line.
func sanitize(value any) string {
	s := fmt.Sprintf("%s", value)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value lies outside an allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max, e.Cause)
	}
	return fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// FieldParseError indicates that a single CSV cell does not match the type the
// schema expects at its position. Column names the positional field, Text is
// the offending cell verbatim.
type FieldParseError struct {
	Column string
	Text   string
	Cause  error
}

// NewFieldParseError creates a FieldParseError for the named column.
func NewFieldParseError(column, text string, cause error) *FieldParseError {
	return &FieldParseError{Column: column, Text: text, Cause: cause}
}

func (e *FieldParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %q (cause: %s)", ErrFieldIsNotParsable, e.Column, sanitize(e.Text), e.Cause)
	}
	return fmt.Sprintf("%s: %s is %q", ErrFieldIsNotParsable, e.Column, sanitize(e.Text))
}

func (e *FieldParseError) Unwrap() error {
	return ErrFieldIsNotParsable
}

// RowParseError indicates that an entire CSV row was rejected. It carries the
// 1-based line number and the raw field values so callers can show a precise
// diagnostic. Cause is typically a *FieldParseError.
type RowParseError struct {
	Line   int
	Fields []string
	Cause  error
}

// NewRowParseError creates a RowParseError carrying the raw row as context.
func NewRowParseError(line int, fields []string, cause error) *RowParseError {
	return &RowParseError{Line: line, Fields: fields, Cause: cause}
}

func (e *RowParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: line %d %q (cause: %s)", ErrRowIsNotParsable, e.Line, e.Fields, e.Cause)
	}
	return fmt.Sprintf("%s: line %d %q", ErrRowIsNotParsable, e.Line, e.Fields)
}

// Unwrap exposes the sentinel and the cause, so errors.Is matches
// ErrRowIsNotParsable and errors.As still reaches the underlying
// *FieldParseError through a row error.
func (e *RowParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrRowIsNotParsable}
	}
	return []error{ErrRowIsNotParsable, e.Cause}
}

// PriceParseError indicates that a monetary display string could not be
// converted to a number after locale normalization.
type PriceParseError struct {
	Display string
	Cause   error
}

// NewPriceParseError creates a PriceParseError for the given display text.
func NewPriceParseError(display string, cause error) *PriceParseError {
	return &PriceParseError{Display: display, Cause: cause}
}

func (e *PriceParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %q (cause: %s)", ErrPriceIsNotNumeric, sanitize(e.Display), e.Cause)
	}
	return fmt.Sprintf("%s: %q", ErrPriceIsNotNumeric, sanitize(e.Display))
}

func (e *PriceParseError) Unwrap() error {
	return ErrPriceIsNotNumeric
}
