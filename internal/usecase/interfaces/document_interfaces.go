package interfaces

import (
	"pedido_venda/internal/domain/entities"
	"pedido_venda/internal/layout"
)

// IDocumentRenderer lays out an order. Implementations must be pure.
type IDocumentRenderer interface {
	Render(order entities.Order) layout.Document
}

// IDocumentEncoder turns a laid-out document into PDF bytes.
type IDocumentEncoder interface {
	Encode(doc layout.Document) ([]byte, error)
}

// ISpreadsheetEncoder exports the order data as a workbook.
type ISpreadsheetEncoder interface {
	Encode(order entities.Order) ([]byte, error)
}
