package spreadsheet

import (
	"bytes"
	"fmt"
	"pedido_venda/internal/domain/entities"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestWriter_Encode(t *testing.T) {
	o := entities.NewOrder(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	o.Salesperson = "Ana"
	o.OrderCode = "PV-001"
	o.Payment.Mode = entities.PaymentModeTroca
	o.Payment.BarterCommodity = entities.BarterCommodityMilho
	o.Payment.BarterValue = "1200 sc"
	o.LineItems = []entities.LineItem{
		{ID: "1", Description: "Fertilizer", Unit: "kg", Quantity: "10", UnitPrice: 25.5, LineTotal: 255},
		{ID: "2", Description: "Adubo", Unit: "sc", Quantity: "2", UnitPrice: 100, LineTotal: 200},
	}

	data, err := NewWriter().Encode(o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	get := func(cell string) string {
		t.Helper()
		v, err := f.GetCellValue(SheetName, cell)
		if err != nil {
			t.Fatalf("read %s: %v", cell, err)
		}
		return v
	}

	t.Run("identification", func(t *testing.T) {
		if got := get("B3"); got != "PV-001" {
			t.Fatalf("expected order code, got %q", got)
		}
		if got := get("B4"); got != "Ana" {
			t.Fatalf("expected salesperson, got %q", got)
		}
		if got := get("B6"); got != "05/03/2024" {
			t.Fatalf("expected formatted date, got %q", got)
		}
	})

	t.Run("items and total", func(t *testing.T) {
		if got := get(fmt.Sprintf("A%d", ItemsHeaderRow+1)); got != "Fertilizer" {
			t.Fatalf("expected first item, got %q", got)
		}
		if got := get(fmt.Sprintf("C%d", ItemsHeaderRow+2)); got != "2" {
			t.Fatalf("expected raw quantity, got %q", got)
		}
		raw, err := f.GetCellValue(SheetName, fmt.Sprintf("E%d", ItemsHeaderRow+3), excelize.Options{RawCellValue: true})
		if err != nil {
			t.Fatalf("read total: %v", err)
		}
		if raw != "455" {
			t.Fatalf("expected total 455, got %q", raw)
		}
	})

	t.Run("payment summary", func(t *testing.T) {
		if got := get("B16"); got != "Troca, Milho em Grãos (ML$), valor 1200 sc" {
			t.Fatalf("unexpected payment summary %q", got)
		}
	})
}
