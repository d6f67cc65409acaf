package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"woolabels/internal/pkg/errs"
	"woolabels/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when validating a zero-value Price.
// Prices must be created via NewPrice so the display text and numeric value
// stay consistent.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice constructor")

// Price is a value object for a monetary amount as it appears in a
// WooCommerce export. The export writes decimals with a comma separator
// (e.g. "57,10"), but rows occasionally carry period-formatted numbers
// (e.g. "3.5"); both parse. The verbatim display text is retained because
// rendering uses the original formatting, not the normalized number.
//
// Example:
//
//	price, err := kernel.NewPrice("57,10")
//	if err != nil {
//	    // not a number after locale normalization
//	}
//	price.Value()   // 57.1
//	price.Display() // "57,10"
type Price struct {
	value   float64
	display string
	guard   guard.ConstructorGuard
}

// NewPrice parses a locale-formatted monetary display string into a Price.
// The first comma is treated as the decimal separator and replaced with a
// period before conversion. Returns a *errs.PriceParseError when the result
// is not a valid decimal number (letters, multiple separators, empty text).
func NewPrice(display string) (Price, error) {
	normalized := strings.Replace(display, ",", ".", 1)
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return Price{}, errs.NewPriceParseError(display, err)
	}

	return Price{
		value:   value,
		display: display,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Value returns the normalized numeric value.
func (p Price) Value() float64 {
	return p.value
}

// Display returns the original monetary text verbatim.
func (p Price) Display() string {
	return p.display
}

// Validate checks that the Price was created via NewPrice.
// The zero value is invalid.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// IsEqual compares two prices by their numeric value.
// Display formatting does not participate: "40" and "40,00" are equal.
func (p Price) IsEqual(other Price) bool {
	return p.value == other.value
}

// String returns the display text, implementing fmt.Stringer.
func (p Price) String() string {
	return fmt.Sprintf("Price(%s)", p.display)
}
