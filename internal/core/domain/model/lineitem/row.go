package lineitem

import (
	"fmt"

	"woolabels/internal/core/domain/model/kernel"
	"woolabels/internal/pkg/errs"
)

// FieldCount is the number of positional columns in the order export schema.
const FieldCount = 16

// Positional columns of the order export schema. The export carries no
// usable header names, so binding is strictly by position.
const (
	colOrderID = iota
	colOrderDate
	colOrderStatus
	colCustomerName
	colOrderTotal
	colShippingCost
	colPaymentGateway
	colShippingMethod
	colAddressLine1
	colAddressLine2
	colPostcode
	colPhone
	colTransactionID
	colProductName
	colQuantity
	colItemPrice
)

// Row is one line item of the order export with its typed fields. Monetary
// displays (order total, item price) stay verbatim strings here; they are
// converted to kernel.Price only when an order aggregate is built.
// Rows are immutable after construction.
type Row struct {
	orderID        uint32
	orderDate      string
	orderStatus    string
	customerName   string
	orderTotal     string
	shippingCost   float64
	paymentGateway string
	shippingMethod string
	addressLine1   string
	addressLine2   string
	postcode       string
	phone          string
	transactionID  string
	productName    string
	quantity       uint32
	itemPrice      string
}

// NewRow builds a typed Row from one raw CSV record. The record must carry
// at least FieldCount columns; order_id and quantity must be unsigned
// integers, quantity positive, and shipping_cost a decimal (comma or period
// separator). Every other column is free text and always accepted, empty
// included.
func NewRow(record []string) (Row, error) {
	if len(record) < FieldCount {
		return Row{}, errs.NewFieldParseError("record", fmt.Sprintf("%d columns", len(record)),
			fmt.Errorf("expected %d columns", FieldCount))
	}

	orderID, err := kernel.ParseUintField("order_id", record[colOrderID])
	if err != nil {
		return Row{}, err
	}

	shippingCost, err := kernel.ParseDecimalField("shipping_cost", record[colShippingCost])
	if err != nil {
		return Row{}, err
	}

	quantity, err := kernel.ParseUintField("quantity", record[colQuantity])
	if err != nil {
		return Row{}, err
	}
	if quantity == 0 {
		return Row{}, errs.NewFieldParseError("quantity", record[colQuantity],
			fmt.Errorf("quantity must be positive"))
	}

	return Row{
		orderID:        orderID,
		orderDate:      record[colOrderDate],
		orderStatus:    record[colOrderStatus],
		customerName:   record[colCustomerName],
		orderTotal:     record[colOrderTotal],
		shippingCost:   shippingCost,
		paymentGateway: record[colPaymentGateway],
		shippingMethod: record[colShippingMethod],
		addressLine1:   record[colAddressLine1],
		addressLine2:   record[colAddressLine2],
		postcode:       record[colPostcode],
		phone:          record[colPhone],
		transactionID:  record[colTransactionID],
		productName:    record[colProductName],
		quantity:       quantity,
		itemPrice:      record[colItemPrice],
	}, nil
}

func (r Row) OrderID() uint32        { return r.orderID }
func (r Row) OrderDate() string      { return r.orderDate }
func (r Row) OrderStatus() string    { return r.orderStatus }
func (r Row) CustomerName() string   { return r.customerName }
func (r Row) OrderTotal() string     { return r.orderTotal }
func (r Row) ShippingCost() float64  { return r.shippingCost }
func (r Row) PaymentGateway() string { return r.paymentGateway }
func (r Row) ShippingMethod() string { return r.shippingMethod }
func (r Row) AddressLine1() string   { return r.addressLine1 }
func (r Row) AddressLine2() string   { return r.addressLine2 }
func (r Row) Postcode() string       { return r.postcode }
func (r Row) Phone() string          { return r.phone }
func (r Row) TransactionID() string  { return r.transactionID }
func (r Row) ProductName() string    { return r.productName }
func (r Row) Quantity() uint32       { return r.quantity }
func (r Row) ItemPrice() string      { return r.itemPrice }
