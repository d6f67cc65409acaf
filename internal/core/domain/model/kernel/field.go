package kernel

import (
	"strconv"
	"strings"

	"woolabels/internal/pkg/errs"
)

// ParseUintField converts a CSV cell into an unsigned integer.
// Failures produce a *errs.FieldParseError naming the positional column and
// carrying the offending text verbatim.
func ParseUintField(column, text string) (uint32, error) {
	value, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, errs.NewFieldParseError(column, text, err)
	}
	return uint32(value), nil
}

// ParseDecimalField converts a CSV cell into a number, accepting the
// export's comma decimal separator as well as period-formatted values.
// The first comma is treated as the decimal separator.
func ParseDecimalField(column, text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.Replace(text, ",", ".", 1), 64)
	if err != nil {
		return 0, errs.NewFieldParseError(column, text, err)
	}
	return value, nil
}
