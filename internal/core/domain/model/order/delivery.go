package order

import (
	"fmt"
	"strconv"
)

// PickUpDescription is the delivery text of a free-shipping order: the
// customer collects instead of receiving a courier delivery.
const PickUpDescription = "local pick up"

// DeliveryDescription derives the human-readable delivery method from the
// order's shipping cost. A zero cost means pick up; any other cost is
// rendered as a euro amount with minimal decimals ("5 €", "5.5 €").
func DeliveryDescription(shippingCost float64) string {
	if shippingCost == 0 {
		return PickUpDescription
	}

	return strconv.FormatFloat(shippingCost, 'f', -1, 64) + " €"
}

// DeliveryDetail is one (name, data) display line rendered under a
// package's item table. Details are derived on demand and never stored.
type DeliveryDetail struct {
	Name string
	Data string
}

// DeliveryDetails returns the display lines of the package at the given
// index. The last package carries the delivery summary (Consegna,
// Pagamento, Totale); multi-parcel orders additionally mark every package
// with "COLLO i DI n". The marker shows the customer name on every parcel
// except the first, where the name is already printed in the address block.
// An out-of-range index yields no lines.
func (o *Order) DeliveryDetails(packageIndex int) []DeliveryDetail {
	if packageIndex < 0 || packageIndex >= len(o.packages) {
		return nil
	}

	details := make([]DeliveryDetail, 0, 4)
	if packageIndex == len(o.packages)-1 {
		details = append(details,
			DeliveryDetail{Name: "Consegna", Data: o.delivery},
			DeliveryDetail{Name: "Pagamento", Data: o.paymentGateway},
			DeliveryDetail{Name: "Totale", Data: o.total.Display() + "€"},
		)
	}

	if len(o.packages) > 1 {
		name := ""
		if packageIndex > 0 {
			name = o.customerName
		}
		details = append(details, DeliveryDetail{
			Name: name,
			Data: fmt.Sprintf("COLLO %d DI %d", packageIndex+1, len(o.packages)),
		})
	}

	return details
}
