package layout

import (
	"math"
	"pedido_venda/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatMoney renders v with two decimals, "." as thousands separator and ","
// as decimal separator: 1234.5 -> "1.234,50". Amounts that round to zero
// cents print unsigned.
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ptBR.Sprintf("%.2f", 0.0)
	}
	cents := decimal.NewFromFloat(v).Round(2)
	if cents.IsZero() {
		return ptBR.Sprintf("%.2f", 0.0)
	}
	return ptBR.Sprintf("%.2f", cents.InexactFloat64())
}

// FormatCurrency is FormatMoney with the "R$ " prefix.
func FormatCurrency(v float64) string {
	return "R$ " + FormatMoney(v)
}

// FormatDate converts a YYYY-MM-DD date to DD/MM/YYYY. Empty input stays
// empty and anything that does not parse is returned unchanged.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	d, err := time.Parse(entities.DateLayout, s)
	if err != nil {
		return s
	}
	return d.Format("02/01/2006")
}
