package http

import (
	"woolabels/internal/core/domain/model/lineitem"
	"woolabels/internal/core/domain/model/order"
	"woolabels/internal/core/ports"
)

// Error is the JSON error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LabelsResponse carries the rendered labels of one export upload.
type LabelsResponse struct {
	BatchID    string  `json:"batch_id"`
	Deliveries int     `json:"deliveries"`
	Orders     []Order `json:"orders"`
}

// Order is the label view of one order aggregate.
type Order struct {
	OrderID        uint32    `json:"order_id"`
	OrderDate      string    `json:"order_date"`
	CustomerName   string    `json:"customer_name"`
	AddressLine1   string    `json:"address_line_1"`
	AddressLine2   string    `json:"address_line_2"`
	Postcode       string    `json:"postcode"`
	Phone          string    `json:"phone"`
	PaymentGateway string    `json:"payment_gateway"`
	Total          string    `json:"total"`
	Delivery       string    `json:"delivery"`
	Packages       []Package `json:"packages"`
}

// Package is one parcel: its items and the display lines under them.
type Package struct {
	Items           []Item           `json:"items"`
	DeliveryDetails []DeliveryDetail `json:"delivery_details"`
}

// Item is one product line of a parcel.
type Item struct {
	Quantity    uint32  `json:"quantity"`
	ProductName string  `json:"product_name"`
	ItemPrice   float64 `json:"item_price"`
	EAN         string  `json:"ean,omitempty"`
}

// DeliveryDetail is one (name, data) display line.
type DeliveryDetail struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// SummaryResponse carries the packing summary of one export upload.
type SummaryResponse struct {
	BatchID string         `json:"batch_id"`
	Entries []SummaryEntry `json:"entries"`
}

// SummaryEntry is one product count of the summary.
type SummaryEntry struct {
	ProductName string `json:"product_name"`
	Count       uint32 `json:"count"`
}

func newLabelsResponse(batchID string, orders []*order.Order, eans ports.EANProvider) LabelsResponse {
	response := LabelsResponse{
		BatchID:    batchID,
		Deliveries: len(orders),
		Orders:     make([]Order, 0, len(orders)),
	}

	for _, o := range orders {
		dto := Order{
			OrderID:        o.ID(),
			OrderDate:      o.OrderDate(),
			CustomerName:   o.CustomerName(),
			AddressLine1:   o.AddressLine1(),
			AddressLine2:   o.AddressLine2(),
			Postcode:       o.Postcode(),
			Phone:          o.Phone(),
			PaymentGateway: o.PaymentGateway(),
			Total:          o.Total().Display(),
			Delivery:       o.Delivery(),
			Packages:       make([]Package, 0, len(o.Packages())),
		}

		for i, pkg := range o.Packages() {
			pkgDTO := Package{
				Items:           make([]Item, 0, len(pkg)),
				DeliveryDetails: make([]DeliveryDetail, 0, 4),
			}

			for _, item := range pkg {
				itemDTO := Item{
					Quantity:    item.Quantity(),
					ProductName: item.ProductName(),
					ItemPrice:   item.Price().Value(),
				}
				if eans != nil {
					if ean, ok := eans.EAN(item.ProductName()); ok {
						itemDTO.EAN = ean
					}
				}
				pkgDTO.Items = append(pkgDTO.Items, itemDTO)
			}

			for _, detail := range o.DeliveryDetails(i) {
				pkgDTO.DeliveryDetails = append(pkgDTO.DeliveryDetails, DeliveryDetail{
					Name: detail.Name,
					Data: detail.Data,
				})
			}

			dto.Packages = append(dto.Packages, pkgDTO)
		}

		response.Orders = append(response.Orders, dto)
	}

	return response
}

func newSummaryResponse(batchID string, entries []lineitem.SummaryEntry) SummaryResponse {
	response := SummaryResponse{
		BatchID: batchID,
		Entries: make([]SummaryEntry, 0, len(entries)),
	}

	for _, entry := range entries {
		response.Entries = append(response.Entries, SummaryEntry{
			ProductName: entry.ProductName,
			Count:       entry.Count,
		})
	}

	return response
}
