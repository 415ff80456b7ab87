package layout

import (
	"fmt"
	"pedido_venda/internal/domain/entities"
	"pedido_venda/internal/domain/ledger"
	"strings"
)

func (r *renderer) header(o entities.Order) {
	r.rect(SectionHeader, "header.band", 0, 0, PageWidth, HeaderHeight, Style{Fill: &brandGreen})

	drewLogo := false
	if r.opts.Logo != nil {
		el, err := placeLogo(r.opts.Logo)
		if err != nil {
			r.substitute(fmt.Sprintf("logo %q replaced by company text: %v", r.opts.Logo.Name, err))
		} else {
			r.add(el)
			drewLogo = true
		}
	}
	if !drewLogo {
		c := r.opts.Company
		r.text(SectionHeader, "header.company.name", Margin, 13, c.Name, Style{Size: 16, Bold: true, Color: white})
		r.text(SectionHeader, "header.company.legal_name", Margin, 19, c.LegalName, Style{Size: 8, Bold: true, Color: white})
		r.text(SectionHeader, "header.company.tax_info", Margin, 24, c.TaxInfo, Style{Size: 7, Color: white})
		r.text(SectionHeader, "header.company.contact", Margin, 29, c.Contact, Style{Size: 7, Color: white})
	}

	right := PageWidth - Margin
	r.text(SectionHeader, "header.title", right, 14, "PEDIDO DE VENDA", Style{Size: 14, Bold: true, Color: white, Align: AlignRight})
	r.text(SectionHeader, "header.order_code", right, 22, "Código: "+fit(o.OrderCode, 60, 10), Style{Size: 10, Color: white, Align: AlignRight})
	r.text(SectionHeader, "header.salesperson", right, 28, "Vendedor: "+fit(o.Salesperson, 60, 10), Style{Size: 10, Color: white, Align: AlignRight})

	r.y = FirstBlockY
}

func (r *renderer) metadata(o entities.Order) {
	r.reserve(rowAdvance)
	r.field(SectionMetadata, "metadata.purchase_order_ref", "ORDEM COMPRA", o.PurchaseOrderRef, Margin, 88)
	r.field(SectionMetadata, "metadata.date", "DATA", FormatDate(o.Date), 105, 90)
	r.y += rowAdvance + 1
}

func (r *renderer) client(c entities.Client) {
	r.reserve(titleHeight + 3*rowAdvance + 1)
	r.sectionTitle(SectionClient, "DADOS DO CLIENTE")

	r.field(SectionClient, "client.legal_name", "RAZÃO SOCIAL", c.LegalName, Margin, 120)
	r.indicators(SectionClient, "client.person", "PESSOA", 140, 25, []option{
		{key: string(entities.PersonTypeFisica), label: "Física", checked: c.PersonType == entities.PersonTypeFisica},
		{key: string(entities.PersonTypeJuridica), label: "Jurídica", checked: c.PersonType == entities.PersonTypeJuridica},
	})
	r.y += rowAdvance

	taxLabel, regLabel := "CNPJ", "INSCRIÇÃO ESTADUAL"
	if c.PersonType == entities.PersonTypeFisica {
		taxLabel, regLabel = "CPF", "RG"
	}
	r.field(SectionClient, "client.tax_id", taxLabel, c.TaxID, Margin, 63)
	r.field(SectionClient, "client.state_registration", regLabel, c.StateRegistration, 80, 115)
	r.y += rowAdvance

	r.field(SectionClient, "client.contact_name", "CONTATO", c.ContactName, Margin, 63)
	r.field(SectionClient, "client.phone", "TELEFONE", c.Phone, 80, 48)
	r.field(SectionClient, "client.email", "E-MAIL", c.Email, 130, 65)
	r.y += rowAdvance + 1
}

func (r *renderer) address(section, title string, a entities.Address) {
	r.reserve(titleHeight + rowAdvance + 1)
	r.sectionTitle(section, title)

	r.field(section, section+".street", "ENDEREÇO", a.Street, Margin, 62)
	r.field(section, section+".postal_code", "CEP", a.PostalCode, 79, 22)
	r.field(section, section+".city", "CIDADE", a.City, 103, 38)
	r.field(section, section+".district", "BAIRRO", a.District, 143, 34)
	r.field(section, section+".state", "UF", a.State, 179, 16)
	r.y += rowAdvance + 1
}

type column struct {
	key   string
	title string
	x, w  float64
	align Align
}

var productColumns = []column{
	{key: "description", title: "DESCRIÇÃO", x: 15, w: 70, align: AlignLeft},
	{key: "unit", title: "UNID.", x: 85, w: 20, align: AlignCenter},
	{key: "quantity", title: "VOLUME", x: 105, w: 25, align: AlignCenter},
	{key: "unit_price", title: "PREÇO UNIT.", x: 130, w: 32.5, align: AlignRight},
	{key: "line_total", title: "VALOR TOTAL", x: 162.5, w: 32.5, align: AlignRight},
}

const (
	tableRowHeight   = 6.0
	tableTotalHeight = 8.0
)

// products draws the item table. Rows are the unit of pagination and the
// column header is repeated at the top of every continuation page.
func (r *renderer) products(items []entities.LineItem) {
	pad := 0
	if r.form() && len(items) < FormTableRows {
		pad = FormTableRows - len(items)
	}
	first := tableRowHeight
	if len(items)+pad == 0 {
		first = tableTotalHeight
	}
	r.reserve(titleHeight + tableRowHeight + first)
	r.sectionTitle(SectionProducts, "DISCRIMINAÇÃO DO PRODUTO")
	r.tableHeader()

	row := 0
	for i, it := range items {
		if r.reserve(tableRowHeight) {
			r.tableHeader()
		}
		r.tableRow(fmt.Sprintf("products.row.%d", i), row, []string{
			it.Description,
			it.Unit,
			it.Quantity,
			FormatCurrency(it.UnitPrice),
			FormatCurrency(it.LineTotal),
		})
		row++
	}
	for i := 0; i < pad; i++ {
		if r.reserve(tableRowHeight) {
			r.tableHeader()
		}
		r.tableRow(fmt.Sprintf("products.pad.%d", i), row, make([]string, len(productColumns)))
		row++
	}

	if r.reserve(tableTotalHeight) {
		r.tableHeader()
	}
	last := productColumns[len(productColumns)-1]
	st := Style{Size: 9, Bold: true, Color: black, Fill: &totalShade, Border: r.form(), Align: AlignRight}
	r.cell(SectionProducts, "products.total.label", Margin, r.y, last.x-Margin, tableTotalHeight, "VALOR TOTAL DO PEDIDO", st)
	r.cell(SectionProducts, "products.total", last.x, r.y, last.w, tableTotalHeight, FormatCurrency(ledger.Sum(items)), st)
	r.y += tableTotalHeight + 3
}

func (r *renderer) tableHeader() {
	for _, c := range productColumns {
		st := Style{Size: 7.5, Bold: true, Color: white, Fill: &brandGreen, Border: r.form(), Align: c.align}
		r.cell(SectionProducts, "products.header."+c.key, c.x, r.y, c.w, tableRowHeight, c.title, st)
	}
	r.y += tableRowHeight
}

func (r *renderer) tableRow(key string, n int, values []string) {
	for i, c := range productColumns {
		st := Style{Size: 8, Color: black, Border: r.form(), Align: c.align}
		if !r.form() && n%2 == 1 {
			st.Fill = &zebra
		}
		r.cell(SectionProducts, key+"."+c.key, c.x, r.y, c.w, tableRowHeight, values[i], st)
	}
	r.y += tableRowHeight
}

func (r *renderer) payment(p entities.Payment) {
	h := titleHeight + 7 + rowAdvance + 1
	switch p.Mode {
	case entities.PaymentModeAPrazo:
		h += rowAdvance
	case entities.PaymentModeTroca:
		h += 2 * rowAdvance
	}
	r.reserve(h)
	r.sectionTitle(SectionPayment, "CONDIÇÕES DE PAGAMENTO")

	r.indicators(SectionPayment, "payment.mode", "", Margin, 40, []option{
		{key: string(entities.PaymentModeAVista), label: "À Vista", checked: p.Mode == entities.PaymentModeAVista},
		{key: string(entities.PaymentModeAPrazo), label: "À Prazo", checked: p.Mode == entities.PaymentModeAPrazo},
		{key: string(entities.PaymentModeBonificacao), label: "Bonificação", checked: p.Mode == entities.PaymentModeBonificacao},
		{key: string(entities.PaymentModeTroca), label: "Troca", checked: p.Mode == entities.PaymentModeTroca},
	})
	r.y += 7

	switch p.Mode {
	case entities.PaymentModeAPrazo:
		r.indicators(SectionPayment, "payment.currency", "MOEDA", Margin, 35, []option{
			{key: string(entities.CurrencyReal), label: "Real (R$)", checked: p.Currency == entities.CurrencyReal},
			{key: string(entities.CurrencyDolar), label: "Dólar (US$)", checked: p.Currency == entities.CurrencyDolar},
		})
		r.field(SectionPayment, "payment.due_date", "VENCIMENTO", FormatDate(p.DueDate), 100, 95)
		r.y += rowAdvance
	case entities.PaymentModeTroca:
		r.indicators(SectionPayment, "payment.barter", "COMMODITY", Margin, 55, []option{
			{key: string(entities.BarterCommoditySoja), label: "Soja em Grãos (SJ$)", checked: p.BarterCommodity == entities.BarterCommoditySoja},
			{key: string(entities.BarterCommodityMilho), label: "Milho em Grãos (ML$)", checked: p.BarterCommodity == entities.BarterCommodityMilho},
			{key: string(entities.BarterCommoditySemente), label: "Semente de Soja (SM$)", checked: p.BarterCommodity == entities.BarterCommoditySemente},
		})
		r.y += rowAdvance
		r.field(SectionPayment, "payment.barter_value", "VALOR", p.BarterValue, Margin, 63)
		r.y += rowAdvance
	}

	r.field(SectionPayment, "payment.bank_details", "DADOS BANCÁRIOS", p.BankDetails, Margin, ContentWidth)
	r.y += rowAdvance + 1
}

func (r *renderer) delivery(d entities.Delivery) {
	r.reserve(titleHeight + rowAdvance + 1)
	r.sectionTitle(SectionDelivery, "ENTREGA")

	r.field(SectionDelivery, "delivery.warehouse_city", "ARMAZÉM (CIDADE)", d.WarehouseCity, Margin, 60)
	r.field(SectionDelivery, "delivery.warehouse_state", "UF", d.WarehouseState, 77, 16)
	r.indicators(SectionDelivery, "delivery.cycle", "CICLO", 100, 22, []option{
		{key: string(entities.CropCycleSafra), label: "Safra", checked: d.CropCycle == entities.CropCycleSafra},
		{key: string(entities.CropCycleSafrinha), label: "Safrinha", checked: d.CropCycle == entities.CropCycleSafrinha},
	})
	r.indicators(SectionDelivery, "delivery.freight", "FRETE", 150, 20, []option{
		{key: string(entities.FreightCIF), label: "CIF", checked: d.Freight == entities.FreightCIF},
		{key: string(entities.FreightFOB), label: "FOB", checked: d.Freight == entities.FreightFOB},
	})
	r.y += rowAdvance + 1
}

const notesLineHeight = 4.5

// notes is skipped entirely for blank text. Wrapped lines are the unit of
// pagination: the box closes at the bottom of a page and continues on the
// next one, so no text is dropped.
func (r *renderer) notes(notes string) {
	if strings.TrimSpace(notes) == "" {
		return
	}
	lines := wrap(notes, columns(ContentWidth-4, valueSize))

	r.reserve(titleHeight + notesLineHeight + 3)
	r.sectionTitle(SectionNotes, "OBSERVAÇÕES")

	for part, first := 0, 0; first < len(lines); part++ {
		if part > 0 {
			r.newPage()
		}
		avail := MaxY - r.y - 3
		fits := int(avail / notesLineHeight)
		if fits < 1 {
			fits = 1
		}
		last := min(first+fits, len(lines))

		body := float64(last-first)*notesLineHeight + 2
		if r.form() {
			key := "notes.box"
			if part > 0 {
				key = fmt.Sprintf("notes.box.%d", part)
			}
			r.rect(SectionNotes, key, Margin, r.y, ContentWidth, body, Style{Border: true, Color: gray})
		}
		for i := first; i < last; i++ {
			y := r.y + 4 + float64(i-first)*notesLineHeight
			r.text(SectionNotes, fmt.Sprintf("notes.line.%d", i), Margin+2, y, lines[i], valueStyle())
		}
		r.y += body + 1
		first = last
	}
}

func (r *renderer) disclaimer() {
	r.reserve(7)
	r.text(SectionDisclaimer, "disclaimer", PageWidth/2, r.y+4, Disclaimer, Style{Size: 7, Bold: true, Color: gray, Align: AlignCenter})
	r.y += 7
}

var signatureSlots = []struct {
	key     string
	caption string
	x1, x2  float64
}{
	{key: "signatures.seller", caption: "Assinatura do Vendedor", x1: 15, x2: 70},
	{key: "signatures.credit", caption: "Visto Depto. Crédito", x1: 77.5, x2: 132.5},
	{key: "signatures.client", caption: "Assinatura do Cliente", x1: 140, x2: 195},
}

func (r *renderer) signatures() {
	r.reserve(20)
	ly := r.y + 13
	for _, s := range signatureSlots {
		r.line(SectionSignatures, s.key+".line", s.x1, ly, s.x2, ly)
		r.text(SectionSignatures, s.key, (s.x1+s.x2)/2, ly+4, s.caption, Style{Size: 7, Color: gray, Align: AlignCenter})
	}
	r.y += 20
}
