package entities

import (
	"testing"
	"time"
)

func TestNewOrder_Defaults(t *testing.T) {
	o := NewOrder(time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC))

	if o.Date != "2024-03-05" {
		t.Fatalf("expected today, got %q", o.Date)
	}
	if field, ok := o.ValidateOptions(); !ok {
		t.Fatalf("default order has invalid option %s", field)
	}
	if o.LineItems == nil || len(o.LineItems) != 0 {
		t.Fatalf("expected empty, non-nil items")
	}
}

func TestOrder_Apply(t *testing.T) {
	o := NewOrder(time.Now())
	o.BillingAddress = Address{Street: "Rua A", City: "Sorriso"}

	city := "Sinop"
	mode := PaymentModeAPrazo
	notes := ""
	o.Apply(OrderPatch{
		BillingAddress: AddressPatch{City: &city},
		PaymentMode:    &mode,
		Notes:          &notes,
	})

	if o.BillingAddress.Street != "Rua A" || o.BillingAddress.City != "Sinop" {
		t.Fatalf("partial address patch failed: %+v", o.BillingAddress)
	}
	if o.Payment.Mode != PaymentModeAPrazo || o.Payment.Currency != CurrencyReal {
		t.Fatalf("unexpected payment %+v", o.Payment)
	}
}

func TestOrder_ValidateOptions(t *testing.T) {
	o := NewOrder(time.Now())
	o.Payment.BarterCommodity = "cafe"

	field, ok := o.ValidateOptions()
	if ok || field != "barter_commodity" {
		t.Fatalf("expected barter_commodity to be invalid, got %q ok=%v", field, ok)
	}
}

func TestApplyDefaults(t *testing.T) {
	var o Order
	o.ApplyDefaults()
	if _, ok := o.ValidateOptions(); !ok {
		t.Fatalf("expected defaults to be valid: %+v", o)
	}
}

func TestDocumentFileName(t *testing.T) {
	cases := []struct {
		salesperson string
		code        string
		format      ExportFormat
		want        string
	}{
		{"Ana", "PV-001", ExportFormatPDF, "Order_Ana_PV-001.pdf"},
		{" Ana ", "2024/15", ExportFormatXLSX, "Order_Ana_2024-15.xlsx"},
		{"a\\b", "c:d\ne", ExportFormatPDF, "Order_a-b_c-d-e.pdf"},
	}
	for _, tc := range cases {
		if got := DocumentFileName(tc.salesperson, tc.code, tc.format); got != tc.want {
			t.Fatalf("DocumentFileName(%q, %q) = %q, want %q", tc.salesperson, tc.code, got, tc.want)
		}
	}
}
