package response

import (
	"pedido_venda/internal/domain/entities"
	"pedido_venda/internal/domain/ledger"
	"pedido_venda/internal/layout"
	"time"
)

type LineItemResponse struct {
	ID                 string  `json:"id"`
	Description        string  `json:"description"`
	Unit               string  `json:"unit"`
	Quantity           string  `json:"quantity"`
	UnitPrice          float64 `json:"unit_price"`
	LineTotal          float64 `json:"line_total"`
	LineTotalFormatted string  `json:"line_total_formatted"`
}

type OrderResponse struct {
	ID                  string             `json:"id"`
	Salesperson         string             `json:"salesperson"`
	OrderCode           string             `json:"order_code"`
	PurchaseOrderRef    string             `json:"purchase_order_ref"`
	Date                string             `json:"date"`
	Client              entities.Client    `json:"client"`
	BillingAddress      entities.Address   `json:"billing_address"`
	ShippingAddress     entities.Address   `json:"shipping_address"`
	LineItems           []LineItemResponse `json:"line_items"`
	GrandTotal          float64            `json:"grand_total"`
	GrandTotalFormatted string             `json:"grand_total_formatted"`
	Payment             entities.Payment   `json:"payment"`
	Delivery            entities.Delivery  `json:"delivery"`
	Notes               string             `json:"notes"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

func FromLineItem(it entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:                 it.ID,
		Description:        it.Description,
		Unit:               it.Unit,
		Quantity:           it.Quantity,
		UnitPrice:          it.UnitPrice,
		LineTotal:          it.LineTotal,
		LineTotalFormatted: layout.FormatCurrency(it.LineTotal),
	}
}

// FromOrder maps an order and computes its grand total at response time.
func FromOrder(o entities.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.LineItems))
	for _, it := range o.LineItems {
		items = append(items, FromLineItem(it))
	}
	total := ledger.Sum(o.LineItems)

	return OrderResponse{
		ID:                  o.ID,
		Salesperson:         o.Salesperson,
		OrderCode:           o.OrderCode,
		PurchaseOrderRef:    o.PurchaseOrderRef,
		Date:                o.Date,
		Client:              o.Client,
		BillingAddress:      o.BillingAddress,
		ShippingAddress:     o.ShippingAddress,
		LineItems:           items,
		GrandTotal:          total,
		GrandTotalFormatted: layout.FormatCurrency(total),
		Payment:             o.Payment,
		Delivery:            o.Delivery,
		Notes:               o.Notes,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}
