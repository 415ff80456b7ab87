package entities

import "time"

// PersonType distinguishes individual (física) from company (jurídica) clients.
//
// Domain notes:
//   - The client tax identifier is a CPF for física and a CNPJ for jurídica.
//   - The secondary registration is an RG for física and an inscrição estadual for jurídica.

type PersonType string

const (
	PersonTypeFisica   PersonType = "fisica"
	PersonTypeJuridica PersonType = "juridica"
)

var PersonTypes = []PersonType{PersonTypeFisica, PersonTypeJuridica}

func (p PersonType) Valid() bool { return oneOf(p, PersonTypes) }

// PaymentMode is the commercial payment condition of the order.

type PaymentMode string

const (
	PaymentModeAVista      PaymentMode = "avista"
	PaymentModeAPrazo      PaymentMode = "aprazo"
	PaymentModeBonificacao PaymentMode = "bonificacao"
	PaymentModeTroca       PaymentMode = "troca"
)

var PaymentModes = []PaymentMode{PaymentModeAVista, PaymentModeAPrazo, PaymentModeBonificacao, PaymentModeTroca}

func (m PaymentMode) Valid() bool { return oneOf(m, PaymentModes) }

// Currency only matters for term (a prazo) payments.

type Currency string

const (
	CurrencyReal  Currency = "real"
	CurrencyDolar Currency = "dolar"
)

var Currencies = []Currency{CurrencyReal, CurrencyDolar}

func (c Currency) Valid() bool { return oneOf(c, Currencies) }

// BarterCommodity only matters for barter (troca) payments.

type BarterCommodity string

const (
	BarterCommoditySoja    BarterCommodity = "soja"
	BarterCommodityMilho   BarterCommodity = "milho"
	BarterCommoditySemente BarterCommodity = "semente"
)

var BarterCommodities = []BarterCommodity{BarterCommoditySoja, BarterCommodityMilho, BarterCommoditySemente}

func (b BarterCommodity) Valid() bool { return oneOf(b, BarterCommodities) }

type CropCycle string

const (
	CropCycleSafra    CropCycle = "safra"
	CropCycleSafrinha CropCycle = "safrinha"
)

var CropCycles = []CropCycle{CropCycleSafra, CropCycleSafrinha}

func (c CropCycle) Valid() bool { return oneOf(c, CropCycles) }

type Freight string

const (
	FreightCIF Freight = "cif"
	FreightFOB Freight = "fob"
)

var Freights = []Freight{FreightCIF, FreightFOB}

func (f Freight) Valid() bool { return oneOf(f, Freights) }

func oneOf[T comparable](v T, set []T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

type Address struct {
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	District   string `json:"district"`
	State      string `json:"state"`
}

type Client struct {
	LegalName         string     `json:"legal_name"`
	PersonType        PersonType `json:"person_type"`
	TaxID             string     `json:"tax_id"`
	StateRegistration string     `json:"state_registration"`
	ContactName       string     `json:"contact_name"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
}

// Payment groups the payment conditions. Currency and DueDate are only shown
// for term payments; BarterCommodity and BarterValue only for barter.
type Payment struct {
	Mode            PaymentMode     `json:"mode"`
	Currency        Currency        `json:"currency"`
	DueDate         string          `json:"due_date"`
	BarterCommodity BarterCommodity `json:"barter_commodity"`
	BarterValue     string          `json:"barter_value"`
	BankDetails     string          `json:"bank_details"`
}

type Delivery struct {
	WarehouseCity  string    `json:"warehouse_city"`
	WarehouseState string    `json:"warehouse_state"`
	CropCycle      CropCycle `json:"crop_cycle"`
	Freight        Freight   `json:"freight"`
}

// Order is the sales order (pedido de venda) a salesperson fills in.
//
// Session model:
//   - One Order lives per editing session and is held in memory only.
//   - ID identifies the session; OrderCode is the commercial code typed by the user.
//
// Dates:
//   - Date is kept as typed, normally YYYY-MM-DD; it is reformatted only on render.
//
type Order struct {
	ID               string     `json:"id"`
	Salesperson      string     `json:"salesperson"`
	OrderCode        string     `json:"order_code"`
	PurchaseOrderRef string     `json:"purchase_order_ref"`
	Date             string     `json:"date"`
	Client           Client     `json:"client"`
	BillingAddress   Address    `json:"billing_address"`
	ShippingAddress  Address    `json:"shipping_address"`
	LineItems        []LineItem `json:"line_items"`
	Payment          Payment    `json:"payment"`
	Delivery         Delivery   `json:"delivery"`
	Notes            string     `json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

const DateLayout = "2006-01-02"

// NewOrder returns a blank order with every option at its default value and
// the date set to today.
func NewOrder(today time.Time) Order {
	return Order{
		Date:      today.Format(DateLayout),
		Client:    Client{PersonType: PersonTypeJuridica},
		LineItems: []LineItem{},
		Payment: Payment{
			Mode:            PaymentModeAVista,
			Currency:        CurrencyReal,
			BarterCommodity: BarterCommoditySoja,
		},
		Delivery: Delivery{
			CropCycle: CropCycleSafra,
			Freight:   FreightCIF,
		},
	}
}

// ApplyDefaults fills zero-valued option fields, used for orders loaded from
// outside the session store.
func (o *Order) ApplyDefaults() {
	if o.Client.PersonType == "" {
		o.Client.PersonType = PersonTypeJuridica
	}
	if o.Payment.Mode == "" {
		o.Payment.Mode = PaymentModeAVista
	}
	if o.Payment.Currency == "" {
		o.Payment.Currency = CurrencyReal
	}
	if o.Payment.BarterCommodity == "" {
		o.Payment.BarterCommodity = BarterCommoditySoja
	}
	if o.Delivery.CropCycle == "" {
		o.Delivery.CropCycle = CropCycleSafra
	}
	if o.Delivery.Freight == "" {
		o.Delivery.Freight = FreightCIF
	}
	if o.LineItems == nil {
		o.LineItems = []LineItem{}
	}
}

// ValidateOptions reports the first enumerated field holding a value outside
// its closed set.
func (o Order) ValidateOptions() (field string, ok bool) {
	switch {
	case !o.Client.PersonType.Valid():
		return "person_type", false
	case !o.Payment.Mode.Valid():
		return "payment_mode", false
	case !o.Payment.Currency.Valid():
		return "currency", false
	case !o.Payment.BarterCommodity.Valid():
		return "barter_commodity", false
	case !o.Delivery.CropCycle.Valid():
		return "crop_cycle", false
	case !o.Delivery.Freight.Valid():
		return "freight", false
	}
	return "", true
}
