package order

import (
	"errors"
	"sort"

	"woolabels/internal/core/domain/model/kernel"
	"woolabels/internal/core/domain/model/lineitem"
	"woolabels/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoLineItems is returned when NewOrder receives an empty row group.
	ErrNoLineItems = errs.NewValueIsRequiredError("rows")
)

// Order is the aggregate root for one shipping label set: a customer order
// reassembled from a contiguous group of export rows. The first row of the
// group supplies the header fields; every row contributes one item. The
// aggregate is immutable after construction.
//
// Order follows these invariants:
//   - Built from at least one line item row
//   - The order total parses as a price; its verbatim display is kept
//   - Every item has a positive quantity and a parsed price
//   - Items are sorted by product name and chunked into packages by the
//     order total, so every item belongs to exactly one package
//   - Can only be created through the NewOrder constructor
type Order struct {
	id             uint32
	orderDate      string
	customerName   string
	paymentGateway string
	addressLine1   string
	addressLine2   string
	postcode       string
	phone          string
	total          kernel.Price
	delivery       string
	packages       []Package
	isConstructed  bool
}

// NewOrder builds the aggregate from one contiguous group of rows sharing
// an order id. The caller guarantees grouping; NewOrder does not inspect
// the ids beyond the first row. With multipack disabled the order ships as
// a single package regardless of its total value.
//
// Returns a *errs.PriceParseError when the order total or any item price is
// not numeric after locale normalization. The whole order fails; there is
// no partial aggregate.
func NewOrder(rows []lineitem.Row, thresholds Thresholds, multipack bool) (*Order, error) {
	if len(rows) == 0 {
		return nil, ErrNoLineItems
	}
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}

	first := rows[0]
	total, err := kernel.NewPrice(first.OrderTotal())
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		price, priceErr := kernel.NewPrice(row.ItemPrice())
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := NewItem(row.ProductName(), row.Quantity(), price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].productName < items[j].productName
	})

	count := 1
	if multipack {
		count = thresholds.PackageCount(total.Value())
	}

	return &Order{
		id:             first.OrderID(),
		orderDate:      first.OrderDate(),
		customerName:   first.CustomerName(),
		paymentGateway: first.PaymentGateway(),
		addressLine1:   first.AddressLine1(),
		addressLine2:   first.AddressLine2(),
		postcode:       first.Postcode(),
		phone:          first.Phone(),
		total:          total,
		delivery:       DeliveryDescription(first.ShippingCost()),
		packages:       splitIntoPackages(items, count),
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. The zero value and nil are invalid.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their export order id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the export order id.
func (o *Order) ID() uint32 {
	return o.id
}

// OrderDate returns the order date text verbatim from the export.
func (o *Order) OrderDate() string {
	return o.orderDate
}

// CustomerName returns the customer's full name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// PaymentGateway returns the payment method description.
func (o *Order) PaymentGateway() string {
	return o.paymentGateway
}

// AddressLine1 returns the first shipping address line.
func (o *Order) AddressLine1() string {
	return o.addressLine1
}

// AddressLine2 returns the second shipping address line, possibly empty.
func (o *Order) AddressLine2() string {
	return o.addressLine2
}

// Postcode returns the shipping postcode.
func (o *Order) Postcode() string {
	return o.postcode
}

// Phone returns the billing phone number.
func (o *Order) Phone() string {
	return o.phone
}

// Total returns the order total as a price, display formatting preserved.
func (o *Order) Total() kernel.Price {
	return o.total
}

// Delivery returns the derived delivery description.
func (o *Order) Delivery() string {
	return o.delivery
}

// Packages returns the parcels the order ships in, in label order.
func (o *Order) Packages() []Package {
	return o.packages
}

// Items returns all items across the packages, in package order.
func (o *Order) Items() []Item {
	items := make([]Item, 0)
	for _, pkg := range o.packages {
		items = append(items, pkg...)
	}
	return items
}
