package entities

import (
	"fmt"
	"strings"
)

// ExportFormat is the encoding of an exported order document.

type ExportFormat string

const (
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatXLSX ExportFormat = "xlsx"
)

func (f ExportFormat) ContentType() string {
	switch f {
	case ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/pdf"
	}
}

// Artifact is an encoded order document ready to be downloaded or submitted.
type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
}

// DocumentFileName builds Order_<salesperson>_<code>.<ext>. Path separators
// and control characters are replaced so the name is always a single path
// element.
func DocumentFileName(salesperson, orderCode string, format ExportFormat) string {
	return fmt.Sprintf("Order_%s_%s.%s", sanitizeFileToken(salesperson), sanitizeFileToken(orderCode), format)
}

func sanitizeFileToken(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '/', r == '\\', r == ':':
			return '-'
		case r < 0x20, r == 0x7f:
			return '-'
		}
		return r
	}, s)
}
