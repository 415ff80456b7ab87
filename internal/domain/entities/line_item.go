package entities

// LineItem is one product row of the order.
//
// Quantity keeps the raw text typed by the salesperson ("10", "2,5 t" etc.);
// LineTotal is derived from its leading numeric value times UnitPrice and is
// never set directly by callers.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    string  `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// ItemField names the editable column of a line item.
type ItemField string

const (
	ItemFieldDescription ItemField = "description"
	ItemFieldUnit        ItemField = "unit"
	ItemFieldQuantity    ItemField = "quantity"
	ItemFieldUnitPrice   ItemField = "unit_price"
)

// ItemUpdate is a single-field edit of the row ID. Text carries the value for the text
// columns and Price for unit_price.
type ItemUpdate struct {
	ID    string
	Field ItemField
	Text  string
	Price float64
}
