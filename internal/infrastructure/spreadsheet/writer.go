// Package spreadsheet exports an order as an XLSX workbook.
package spreadsheet

import (
	"fmt"
	"pedido_venda/internal/domain/entities"
	"pedido_venda/internal/domain/ledger"
	"pedido_venda/internal/layout"
	"strings"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Pedido"

// ItemsHeaderRow is the row holding the item table column titles.
const ItemsHeaderRow = 22

// moneyFormat is the built-in "#,##0.00" number format.
const moneyFormat = 4

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

type pair struct {
	label string
	value string
}

// Encode writes identification, client, address, payment and delivery data
// as label/value rows followed by the item table and its total.
func (w *Writer) Encode(order entities.Order) ([]byte, error) {
	order.ApplyDefaults()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("spreadsheet: rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14, Color: "1E643C"}})
	if err != nil {
		return nil, err
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1E643C"}},
	})
	if err != nil {
		return nil, err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat})
	if err != nil {
		return nil, err
	}
	totalMoney, err := f.NewStyle(&excelize.Style{
		NumFmt: moneyFormat,
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCEBE1"}},
	})
	if err != nil {
		return nil, err
	}

	f.SetCellValue(SheetName, "A1", "PEDIDO DE VENDA")
	f.SetCellStyle(SheetName, "A1", "A1", title)

	c := order.Client
	rows := []pair{
		{"Código", order.OrderCode},
		{"Vendedor", order.Salesperson},
		{"Ordem de Compra", order.PurchaseOrderRef},
		{"Data", layout.FormatDate(order.Date)},
		{"Razão Social", c.LegalName},
		{"Pessoa", personLabel(c.PersonType)},
		{"CNPJ/CPF", c.TaxID},
		{"IE/RG", c.StateRegistration},
		{"Contato", c.ContactName},
		{"Telefone", c.Phone},
		{"E-mail", c.Email},
		{"Endereço de Faturamento", formatAddress(order.BillingAddress)},
		{"Endereço de Entrega", formatAddress(order.ShippingAddress)},
		{"Pagamento", paymentLabel(order.Payment)},
		{"Dados Bancários", order.Payment.BankDetails},
		{"Armazém", formatWarehouse(order.Delivery)},
		{"Ciclo / Frete", cycleLabel(order.Delivery.CropCycle) + " / " + freightLabel(order.Delivery.Freight)},
		{"Observações", order.Notes},
	}
	for i, p := range rows {
		row := i + 3
		f.SetCellValue(SheetName, fmt.Sprintf("A%d", row), p.label)
		f.SetCellValue(SheetName, fmt.Sprintf("B%d", row), p.value)
		f.SetCellStyle(SheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), bold)
	}

	headers := []string{"Descrição", "Unid.", "Volume", "Preço Unit.", "Valor Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, ItemsHeaderRow)
		f.SetCellValue(SheetName, cell, h)
	}
	f.SetCellStyle(SheetName, fmt.Sprintf("A%d", ItemsHeaderRow), fmt.Sprintf("E%d", ItemsHeaderRow), header)

	row := ItemsHeaderRow
	for _, it := range order.LineItems {
		row++
		f.SetCellValue(SheetName, fmt.Sprintf("A%d", row), it.Description)
		f.SetCellValue(SheetName, fmt.Sprintf("B%d", row), it.Unit)
		f.SetCellValue(SheetName, fmt.Sprintf("C%d", row), it.Quantity)
		f.SetCellValue(SheetName, fmt.Sprintf("D%d", row), it.UnitPrice)
		f.SetCellValue(SheetName, fmt.Sprintf("E%d", row), it.LineTotal)
		f.SetCellStyle(SheetName, fmt.Sprintf("D%d", row), fmt.Sprintf("E%d", row), money)
	}

	row++
	f.SetCellValue(SheetName, fmt.Sprintf("D%d", row), "VALOR TOTAL")
	f.SetCellStyle(SheetName, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), bold)
	f.SetCellValue(SheetName, fmt.Sprintf("E%d", row), ledger.Sum(order.LineItems))
	f.SetCellStyle(SheetName, fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), totalMoney)

	f.SetColWidth(SheetName, "A", "A", 28)
	f.SetColWidth(SheetName, "B", "B", 40)
	f.SetColWidth(SheetName, "C", "E", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: write: %w", err)
	}
	return buf.Bytes(), nil
}

func formatAddress(a entities.Address) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.District, a.City, a.State, a.PostalCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func formatWarehouse(d entities.Delivery) string {
	if d.WarehouseState == "" {
		return d.WarehouseCity
	}
	return d.WarehouseCity + "/" + d.WarehouseState
}

func personLabel(p entities.PersonType) string {
	if p == entities.PersonTypeFisica {
		return "Física"
	}
	return "Jurídica"
}

func paymentLabel(p entities.Payment) string {
	switch p.Mode {
	case entities.PaymentModeAPrazo:
		cur := "Real (R$)"
		if p.Currency == entities.CurrencyDolar {
			cur = "Dólar (US$)"
		}
		return fmt.Sprintf("À Prazo, %s, vencimento %s", cur, layout.FormatDate(p.DueDate))
	case entities.PaymentModeBonificacao:
		return "Bonificação"
	case entities.PaymentModeTroca:
		commodity := map[entities.BarterCommodity]string{
			entities.BarterCommoditySoja:    "Soja em Grãos (SJ$)",
			entities.BarterCommodityMilho:   "Milho em Grãos (ML$)",
			entities.BarterCommoditySemente: "Semente de Soja (SM$)",
		}[p.BarterCommodity]
		return fmt.Sprintf("Troca, %s, valor %s", commodity, p.BarterValue)
	default:
		return "À Vista"
	}
}

func cycleLabel(c entities.CropCycle) string {
	if c == entities.CropCycleSafrinha {
		return "Safrinha"
	}
	return "Safra"
}

func freightLabel(f entities.Freight) string {
	if f == entities.FreightFOB {
		return "FOB"
	}
	return "CIF"
}
