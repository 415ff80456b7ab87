package entities

// OrderPatch carries a partial order update. Nil fields are left untouched.
type OrderPatch struct {
	Salesperson      *string
	OrderCode        *string
	PurchaseOrderRef *string
	Date             *string

	LegalName         *string
	PersonType        *PersonType
	TaxID             *string
	StateRegistration *string
	ContactName       *string
	Phone             *string
	Email             *string

	BillingAddress  AddressPatch
	ShippingAddress AddressPatch

	PaymentMode     *PaymentMode
	Currency        *Currency
	DueDate         *string
	BarterCommodity *BarterCommodity
	BarterValue     *string
	BankDetails     *string

	WarehouseCity  *string
	WarehouseState *string
	CropCycle      *CropCycle
	Freight        *Freight

	Notes *string
}

type AddressPatch struct {
	Street     *string
	PostalCode *string
	City       *string
	District   *string
	State      *string
}

func (a *Address) apply(p AddressPatch) {
	setString(&a.Street, p.Street)
	setString(&a.PostalCode, p.PostalCode)
	setString(&a.City, p.City)
	setString(&a.District, p.District)
	setString(&a.State, p.State)
}

// Apply copies every non-nil field of p into o.
func (o *Order) Apply(p OrderPatch) {
	setString(&o.Salesperson, p.Salesperson)
	setString(&o.OrderCode, p.OrderCode)
	setString(&o.PurchaseOrderRef, p.PurchaseOrderRef)
	setString(&o.Date, p.Date)

	setString(&o.Client.LegalName, p.LegalName)
	if p.PersonType != nil {
		o.Client.PersonType = *p.PersonType
	}
	setString(&o.Client.TaxID, p.TaxID)
	setString(&o.Client.StateRegistration, p.StateRegistration)
	setString(&o.Client.ContactName, p.ContactName)
	setString(&o.Client.Phone, p.Phone)
	setString(&o.Client.Email, p.Email)

	o.BillingAddress.apply(p.BillingAddress)
	o.ShippingAddress.apply(p.ShippingAddress)

	if p.PaymentMode != nil {
		o.Payment.Mode = *p.PaymentMode
	}
	if p.Currency != nil {
		o.Payment.Currency = *p.Currency
	}
	setString(&o.Payment.DueDate, p.DueDate)
	if p.BarterCommodity != nil {
		o.Payment.BarterCommodity = *p.BarterCommodity
	}
	setString(&o.Payment.BarterValue, p.BarterValue)
	setString(&o.Payment.BankDetails, p.BankDetails)

	setString(&o.Delivery.WarehouseCity, p.WarehouseCity)
	setString(&o.Delivery.WarehouseState, p.WarehouseState)
	if p.CropCycle != nil {
		o.Delivery.CropCycle = *p.CropCycle
	}
	if p.Freight != nil {
		o.Delivery.Freight = *p.Freight
	}

	setString(&o.Notes, p.Notes)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
