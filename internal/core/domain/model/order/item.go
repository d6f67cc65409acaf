package order

import (
	"fmt"

	"woolabels/internal/core/domain/model/kernel"
	"woolabels/internal/pkg/errs"
)

// Item is one purchased product inside a package. It is a value object:
// immutable after construction and compared by its fields.
type Item struct {
	productName string
	quantity    uint32
	price       kernel.Price
}

// NewItem creates an item with a positive quantity and a constructed price.
// The product name is free text straight from the export, empty included.
func NewItem(productName string, quantity uint32, price kernel.Price) (Item, error) {
	if quantity == 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := price.Validate(); err != nil {
		return Item{}, err
	}

	return Item{
		productName: productName,
		quantity:    quantity,
		price:       price,
	}, nil
}

// ProductName returns the product name verbatim from the export.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns how many units of the product the row sold.
func (i Item) Quantity() uint32 {
	return i.quantity
}

// Price returns the per-unit price excluding tax.
func (i Item) Price() kernel.Price {
	return i.price
}
