package errs_test

import (
	"errors"
	"testing"

	"woolabels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerName")

		assert.Equal(t, "customerName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("customerName", cause)

		assert.Equal(t, "customerName", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerName (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("packageCount", 5, 1, 3)

		assert.Equal(t, "packageCount", err.ParamName)
		assert.Equal(t, 5, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 3, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 5 is packageCount, min value is 1, max value is 3", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestFieldParseError(t *testing.T) {
	t.Run("NewFieldParseError", func(t *testing.T) {
		cause := errors.New("invalid syntax")
		err := errs.NewFieldParseError("quantity", "two", cause)

		assert.Equal(t, "quantity", err.Column)
		assert.Equal(t, "two", err.Text)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, `field is not parsable: quantity is "two" (cause: invalid syntax)`, err.Error())
		assert.Equal(t, errs.ErrFieldIsNotParsable, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewFieldParseError("order_id", "", nil)

		assert.Equal(t, `field is not parsable: order_id is ""`, err.Error())
		require.ErrorIs(t, err, errs.ErrFieldIsNotParsable)
	})
}

func TestRowParseError(t *testing.T) {
	t.Run("NewRowParseError", func(t *testing.T) {
		fieldErr := errs.NewFieldParseError("quantity", "two", errors.New("invalid syntax"))
		err := errs.NewRowParseError(3, []string{"5358", "two"}, fieldErr)

		assert.Equal(t, 3, err.Line)
		assert.Equal(t, []string{"5358", "two"}, err.Fields)
		assert.Equal(t, error(fieldErr), err.Cause)
		assert.Contains(t, err.Error(), "row is not parsable: line 3")
		assert.Contains(t, err.Error(), "5358")
		assert.Contains(t, err.Error(), "field is not parsable: quantity")
		require.ErrorIs(t, err, errs.ErrRowIsNotParsable)
	})

	t.Run("exposes the field failure through the chain", func(t *testing.T) {
		fieldErr := errs.NewFieldParseError("quantity", "two", errors.New("invalid syntax"))
		err := errs.NewRowParseError(3, []string{"5358", "two"}, fieldErr)

		require.ErrorIs(t, err, errs.ErrFieldIsNotParsable)

		var unwrapped *errs.FieldParseError
		require.ErrorAs(t, error(err), &unwrapped)
		assert.Equal(t, "quantity", unwrapped.Column)
	})

	t.Run("carries raw row for diagnostics", func(t *testing.T) {
		err := errs.NewRowParseError(7, []string{"a", "b", "c"}, nil)

		var rowErr *errs.RowParseError
		require.ErrorAs(t, error(err), &rowErr)
		assert.Equal(t, []string{"a", "b", "c"}, rowErr.Fields)
	})
}

func TestPriceParseError(t *testing.T) {
	t.Run("NewPriceParseError", func(t *testing.T) {
		cause := errors.New("invalid syntax")
		err := errs.NewPriceParseError("57,10,5", cause)

		assert.Equal(t, "57,10,5", err.Display)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, `price is not numeric: "57,10,5" (cause: invalid syntax)`, err.Error())
		assert.Equal(t, errs.ErrPriceIsNotNumeric, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrFieldIsNotParsable)
		require.Error(t, errs.ErrRowIsNotParsable)
		require.Error(t, errs.ErrPriceIsNotNumeric)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "field is not parsable", errs.ErrFieldIsNotParsable.Error())
		assert.Equal(t, "row is not parsable", errs.ErrRowIsNotParsable.Error())
		assert.Equal(t, "price is not numeric", errs.ErrPriceIsNotNumeric.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		requiredErr := errs.NewValueIsRequiredError("customerName")
		require.ErrorIs(t, requiredErr, errs.ErrValueIsRequired)

		invalidErr := errs.NewValueIsInvalidError("quantity")
		require.ErrorIs(t, invalidErr, errs.ErrValueIsInvalid)

		rangeErr := errs.NewValueIsOutOfRangeError("packageCount", 5, 1, 3)
		require.ErrorIs(t, rangeErr, errs.ErrValueIsOutOfRange)

		fieldErr := errs.NewFieldParseError("order_id", "abc", errors.New("invalid syntax"))
		require.ErrorIs(t, fieldErr, errs.ErrFieldIsNotParsable)

		rowErr := errs.NewRowParseError(2, []string{"abc"}, fieldErr)
		require.ErrorIs(t, rowErr, errs.ErrRowIsNotParsable)

		priceErr := errs.NewPriceParseError("abc", errors.New("invalid syntax"))
		require.ErrorIs(t, priceErr, errs.ErrPriceIsNotNumeric)
	})
}
