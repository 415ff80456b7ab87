// Package pdf draws a laid-out order Document with gofpdf core fonts.
package pdf

import (
	"bytes"
	"fmt"
	"pedido_venda/internal/layout"
	"time"

	"github.com/phpdave11/gofpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const fontFamily = "Helvetica"

// documentDate is written as both creation and modification date so that the
// same Document always encodes to the same bytes.
var documentDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type Writer struct {
	date time.Time
}

func NewWriter() *Writer {
	return &Writer{date: documentDate}
}

// Encode draws every page of doc and returns the PDF bytes.
func (w *Writer) Encode(doc layout.Document) ([]byte, error) {
	f := gofpdf.New("P", "mm", "A4", "")
	f.SetAutoPageBreak(false, 0)
	f.SetMargins(0, 0, 0)
	f.SetCatalogSort(true)
	f.SetCreationDate(w.date)
	f.SetModificationDate(w.date)

	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	d := &drawer{f: f, enc: enc}

	f.SetTitle(d.str(doc.Title), false)
	f.SetCreator("pedido_venda", false)

	pages := doc.Pages
	if len(pages) == 0 {
		pages = []layout.Page{{Number: 1}}
	}
	for _, p := range pages {
		f.AddPage()
		for _, el := range p.Elements {
			d.draw(el)
		}
	}

	if f.Err() {
		return nil, fmt.Errorf("pdf: draw: %w", f.Error())
	}
	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: output: %w", err)
	}
	return buf.Bytes(), nil
}

type drawer struct {
	f   *gofpdf.Fpdf
	enc *encoding.Encoder
}

// str converts UTF-8 to the Windows-1252 bytes core fonts expect.
func (d *drawer) str(s string) string {
	out, err := d.enc.String(s)
	if err != nil {
		return s
	}
	return out
}

func (d *drawer) font(st layout.Style) {
	style := ""
	if st.Bold {
		style = "B"
	}
	size := st.Size
	if size <= 0 {
		size = 9
	}
	d.f.SetFont(fontFamily, style, size)
	d.f.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
}

func (d *drawer) draw(el layout.Element) {
	switch el.Kind {
	case layout.KindText:
		d.text(el)
	case layout.KindRect:
		d.rect(el)
	case layout.KindLine:
		d.f.SetDrawColor(el.Style.Color.R, el.Style.Color.G, el.Style.Color.B)
		d.f.SetLineWidth(0.2)
		d.f.Line(el.X, el.Y, el.X2, el.Y2)
	case layout.KindCell:
		d.cell(el)
	case layout.KindCheckbox:
		d.checkbox(el)
	case layout.KindImage:
		d.image(el)
	}
}

func (d *drawer) text(el layout.Element) {
	d.font(el.Style)
	s := d.str(el.Text)
	x := el.X
	switch el.Style.Align {
	case layout.AlignRight:
		x -= d.f.GetStringWidth(s)
	case layout.AlignCenter:
		x -= d.f.GetStringWidth(s) / 2
	}
	d.f.Text(x, el.Y, s)
}

func (d *drawer) rect(el layout.Element) {
	style := ""
	if el.Style.Fill != nil {
		fill := el.Style.Fill
		d.f.SetFillColor(fill.R, fill.G, fill.B)
		style = "F"
	}
	if el.Style.Border {
		d.f.SetDrawColor(el.Style.Color.R, el.Style.Color.G, el.Style.Color.B)
		d.f.SetLineWidth(0.2)
		style += "D"
	}
	if style == "" {
		return
	}
	d.f.Rect(el.X, el.Y, el.W, el.H, style)
}

func (d *drawer) cell(el layout.Element) {
	d.font(el.Style)
	fill := false
	if el.Style.Fill != nil {
		d.f.SetFillColor(el.Style.Fill.R, el.Style.Fill.G, el.Style.Fill.B)
		fill = true
	}
	border := ""
	if el.Style.Border {
		d.f.SetDrawColor(150, 150, 150)
		d.f.SetLineWidth(0.2)
		border = "1"
	}
	align := string(el.Style.Align)
	if align == "" {
		align = string(layout.AlignLeft)
	}
	d.f.SetXY(el.X, el.Y)
	d.f.CellFormat(el.W, el.H, d.str(el.Text), border, 0, align+"M", fill, 0, "")
}

func (d *drawer) checkbox(el layout.Element) {
	d.f.SetDrawColor(0, 0, 0)
	d.f.SetLineWidth(0.3)
	d.f.Rect(el.X, el.Y, el.H, el.H, "D")
	if el.Checked {
		d.f.SetFillColor(0, 0, 0)
		inset := el.H * 0.2
		d.f.Rect(el.X+inset, el.Y+inset, el.H-2*inset, el.H-2*inset, "F")
	}
	d.font(el.Style)
	d.f.Text(el.X+el.H+1.5, el.Y+el.H-0.5, d.str(el.Text))
}

func (d *drawer) image(el layout.Element) {
	if el.Image == nil {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: el.Image.Type}
	d.f.RegisterImageOptionsReader(el.Image.Name, opts, bytes.NewReader(el.Image.Data))
	d.f.ImageOptions(el.Image.Name, el.X, el.Y, el.W, el.H, false, opts, 0, "")
}
