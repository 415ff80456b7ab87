// Package layout turns an order into a paginated, device-independent
// Document. Rendering is pure: the same order and options always produce the
// same Document, and encoders only draw what is already placed.
package layout

import (
	"errors"
	"fmt"
	"pedido_venda/internal/domain/entities"
	"strings"
)

// A4 portrait geometry, in millimetres.
const (
	PageWidth       = 210.0
	PageHeight      = 297.0
	Margin          = 15.0
	ContentWidth    = PageWidth - 2*Margin
	HeaderHeight    = 35.0
	FirstBlockY     = 42.0
	ContinuationTop = 20.0
	MaxY            = 282.0

	// FormTableRows is the minimum number of product rows in the form variant.
	FormTableRows = 8
)

// Section tags carried by every element.
const (
	SectionHeader     = "header"
	SectionMetadata   = "metadata"
	SectionClient     = "client"
	SectionBilling    = "billing_address"
	SectionShipping   = "shipping_address"
	SectionProducts   = "products"
	SectionPayment    = "payment"
	SectionDelivery   = "delivery"
	SectionNotes      = "notes"
	SectionDisclaimer = "disclaimer"
	SectionSignatures = "signatures"
)

const Disclaimer = "PEDIDO VÁLIDO SOMENTE APÓS APROVAÇÃO DO DPTO. CRÉDITO/COMERCIAL."

// Variant selects the visual treatment of fields and the product table.
type Variant string

const (
	// VariantForm draws bordered grid cells and pads the product table.
	VariantForm Variant = "form"
	// VariantTable draws borderless label/value pairs and only the real rows.
	VariantTable Variant = "table"
)

var ErrUnknownVariant = errors.New("unknown layout variant")

func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case "", VariantForm:
		return VariantForm, nil
	case VariantTable:
		return VariantTable, nil
	}
	return VariantForm, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Company is the identity block printed in the header band.
type Company struct {
	Name      string
	LegalName string
	TaxInfo   string
	Contact   string
}

var DefaultCompany = Company{
	Name:      "AGROVIDA",
	LegalName: "AGROVIDA INSUMOS E NUTRIÇÃO VEGETAL LTDA",
	TaxInfo:   "CNPJ: 12.345.678/0001-90 | IE.: 10.203.040-5",
	Contact:   "E-mail: comercial@agrovida.com.br | Fone: (66) 3000-1000",
}

type Options struct {
	Variant Variant
	Company Company
	// Logo replaces the company text block when it decodes as PNG or JPEG.
	Logo *Image
}

type Engine struct {
	opts Options
}

func NewEngine(opts Options) *Engine {
	if opts.Variant != VariantTable {
		opts.Variant = VariantForm
	}
	if opts.Company == (Company{}) {
		opts.Company = DefaultCompany
	}
	return &Engine{opts: opts}
}

func (e *Engine) Variant() Variant {
	return e.opts.Variant
}

// Render lays out every section of the order. It never fails: blank values
// render as empty text and unusable assets are replaced by text.
func (e *Engine) Render(order entities.Order) Document {
	order.ApplyDefaults()

	r := &renderer{
		opts: e.opts,
		doc: Document{
			Title:      strings.TrimSpace("Pedido de Venda " + strings.TrimSpace(order.OrderCode)),
			PageWidth:  PageWidth,
			PageHeight: PageHeight,
		},
	}
	r.newPage()

	r.header(order)
	r.metadata(order)
	r.client(order.Client)
	r.address(SectionBilling, "ENDEREÇO DE FATURAMENTO", order.BillingAddress)
	r.address(SectionShipping, "ENDEREÇO DE ENTREGA", order.ShippingAddress)
	r.products(order.LineItems)
	r.payment(order.Payment)
	r.delivery(order.Delivery)
	r.notes(order.Notes)
	r.disclaimer()
	r.signatures()

	return r.doc
}

type renderer struct {
	opts Options
	doc  Document
	y    float64
}

func (r *renderer) form() bool {
	return r.opts.Variant == VariantForm
}

func (r *renderer) newPage() {
	r.doc.Pages = append(r.doc.Pages, Page{Number: len(r.doc.Pages) + 1})
	r.y = ContinuationTop
}

// reserve starts a new page when a block of height h does not fit below the
// cursor. It reports whether a page break happened.
func (r *renderer) reserve(h float64) bool {
	if r.y+h > MaxY {
		r.newPage()
		return true
	}
	return false
}

func (r *renderer) add(el Element) {
	p := &r.doc.Pages[len(r.doc.Pages)-1]
	p.Elements = append(p.Elements, el)
}

func (r *renderer) substitute(note string) {
	r.doc.Substitutions = append(r.doc.Substitutions, note)
}
