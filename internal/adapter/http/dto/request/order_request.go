package request

import "pedido_venda/internal/domain/entities"

type AddressRequest struct {
	Street     *string `json:"street"`
	PostalCode *string `json:"postal_code"`
	City       *string `json:"city"`
	District   *string `json:"district"`
	State      *string `json:"state"`
}

type ClientRequest struct {
	LegalName         *string `json:"legal_name"`
	PersonType        *string `json:"person_type"`
	TaxID             *string `json:"tax_id"`
	StateRegistration *string `json:"state_registration"`
	ContactName       *string `json:"contact_name"`
	Phone             *string `json:"phone"`
	Email             *string `json:"email"`
}

type PaymentRequest struct {
	Mode            *string `json:"mode"`
	Currency        *string `json:"currency"`
	DueDate         *string `json:"due_date"`
	BarterCommodity *string `json:"barter_commodity"`
	BarterValue     *string `json:"barter_value"`
	BankDetails     *string `json:"bank_details"`
}

type DeliveryRequest struct {
	WarehouseCity  *string `json:"warehouse_city"`
	WarehouseState *string `json:"warehouse_state"`
	CropCycle      *string `json:"crop_cycle"`
	Freight        *string `json:"freight"`
}

// UpdateOrderRequest is the PATCH body for an order. It mirrors the order
// JSON; absent fields are left unchanged and nested objects may be partial.
type UpdateOrderRequest struct {
	Salesperson      *string          `json:"salesperson"`
	OrderCode        *string          `json:"order_code"`
	PurchaseOrderRef *string          `json:"purchase_order_ref"`
	Date             *string          `json:"date"`
	Client           *ClientRequest   `json:"client"`
	BillingAddress   *AddressRequest  `json:"billing_address"`
	ShippingAddress  *AddressRequest  `json:"shipping_address"`
	Payment          *PaymentRequest  `json:"payment"`
	Delivery         *DeliveryRequest `json:"delivery"`
	Notes            *string          `json:"notes"`
}

func (r UpdateOrderRequest) ToPatch() entities.OrderPatch {
	p := entities.OrderPatch{
		Salesperson:      r.Salesperson,
		OrderCode:        r.OrderCode,
		PurchaseOrderRef: r.PurchaseOrderRef,
		Date:             r.Date,
		Notes:            r.Notes,
	}

	if c := r.Client; c != nil {
		p.LegalName = c.LegalName
		p.PersonType = enumPtr[entities.PersonType](c.PersonType)
		p.TaxID = c.TaxID
		p.StateRegistration = c.StateRegistration
		p.ContactName = c.ContactName
		p.Phone = c.Phone
		p.Email = c.Email
	}
	p.BillingAddress = r.BillingAddress.toPatch()
	p.ShippingAddress = r.ShippingAddress.toPatch()

	if pay := r.Payment; pay != nil {
		p.PaymentMode = enumPtr[entities.PaymentMode](pay.Mode)
		p.Currency = enumPtr[entities.Currency](pay.Currency)
		p.DueDate = pay.DueDate
		p.BarterCommodity = enumPtr[entities.BarterCommodity](pay.BarterCommodity)
		p.BarterValue = pay.BarterValue
		p.BankDetails = pay.BankDetails
	}
	if d := r.Delivery; d != nil {
		p.WarehouseCity = d.WarehouseCity
		p.WarehouseState = d.WarehouseState
		p.CropCycle = enumPtr[entities.CropCycle](d.CropCycle)
		p.Freight = enumPtr[entities.Freight](d.Freight)
	}
	return p
}

func (a *AddressRequest) toPatch() entities.AddressPatch {
	if a == nil {
		return entities.AddressPatch{}
	}
	return entities.AddressPatch{
		Street:     a.Street,
		PostalCode: a.PostalCode,
		City:       a.City,
		District:   a.District,
		State:      a.State,
	}
}

func enumPtr[T ~string](v *string) *T {
	if v == nil {
		return nil
	}
	out := T(*v)
	return &out
}
