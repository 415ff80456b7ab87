package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	brandGreen = Color{30, 100, 60}
	white      = Color{255, 255, 255}
	black      = Color{0, 0, 0}
	gray       = Color{100, 100, 100}
	zebra      = Color{240, 247, 242}
	totalShade = Color{220, 235, 225}
)

const (
	fieldHeight = 9.0
	rowAdvance  = 10.0
	titleHeight = 8.0
	boxSize     = 3.5
	labelSize   = 6.5
	valueSize   = 9.0
)

func labelStyle() Style { return Style{Size: labelSize, Bold: true, Color: gray, Align: AlignLeft} }
func valueStyle() Style { return Style{Size: valueSize, Color: black, Align: AlignLeft} }

func (r *renderer) text(section, key string, x, y float64, s string, st Style) {
	r.add(Element{Kind: KindText, Section: section, Key: key, X: x, Y: y, Text: s, Style: st})
}

func (r *renderer) rect(section, key string, x, y, w, h float64, st Style) {
	r.add(Element{Kind: KindRect, Section: section, Key: key, X: x, Y: y, W: w, H: h, Style: st})
}

func (r *renderer) line(section, key string, x1, y1, x2, y2 float64) {
	r.add(Element{Kind: KindLine, Section: section, Key: key, X: x1, Y: y1, X2: x2, Y2: y2, Style: Style{Color: black}})
}

func (r *renderer) cell(section, key string, x, y, w, h float64, s string, st Style) {
	r.add(Element{Kind: KindCell, Section: section, Key: key, X: x, Y: y, W: w, H: h, Text: fit(s, w-2, st.Size), Style: st})
}

// sectionTitle draws the shaded title bar at the cursor and moves below it.
func (r *renderer) sectionTitle(section, title string) {
	r.rect(section, section+".title.bar", Margin, r.y, ContentWidth, 6, Style{Fill: &brandGreen})
	r.text(section, section+".title", Margin+3, r.y+4.2, title, Style{Size: 9, Bold: true, Color: white})
	r.y += titleHeight
}

// field draws a label/value pair in a column of width w starting at x. The
// form variant frames it in a bordered cell.
func (r *renderer) field(section, key, label, value string, x, w float64) {
	if r.form() {
		r.rect(section, key+".box", x, r.y, w, fieldHeight, Style{Border: true, Color: gray})
	}
	r.text(section, key+".label", x+1, r.y+3, label, labelStyle())
	r.text(section, key, x+1, r.y+7.5, fit(value, w-2, valueSize), valueStyle())
}

type option struct {
	key     string
	label   string
	checked bool
}

// indicators draws a row of checkboxes, optionally headed by a label.
func (r *renderer) indicators(section, key, label string, x, spacing float64, opts []option) {
	by := r.y + 1.5
	if label != "" {
		r.text(section, key+".label", x, r.y+3, label, labelStyle())
		by = r.y + 4.5
	}
	for i, o := range opts {
		r.add(Element{
			Kind:    KindCheckbox,
			Section: section,
			Key:     key + "." + o.key,
			X:       x + float64(i)*spacing,
			Y:       by,
			W:       boxSize,
			H:       boxSize,
			Text:    o.label,
			Checked: o.checked,
			Style:   Style{Size: 8, Color: black},
		})
	}
}

// charWidth approximates the average Helvetica glyph width in mm at size pt.
func charWidth(size float64) float64 {
	if size <= 0 {
		size = valueSize
	}
	return size * 0.3528 * 0.5
}

func columns(w, size float64) int {
	n := int(w / charWidth(size))
	if n < 1 {
		return 1
	}
	return n
}

// fit flattens s to a single line and truncates it to the column width.
func fit(s string, w, size float64) string {
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.Truncate(s, columns(w, size), "...")
}

// wrap breaks s into lines of at most cols cells, on word boundaries when it
// can. Explicit line breaks are kept.
func wrap(s string, cols int) []string {
	var lines []string
	for _, para := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := ""
		for _, w := range words {
			if runewidth.StringWidth(w) > cols {
				if cur != "" {
					lines = append(lines, cur)
					cur = ""
				}
				parts := strings.Split(runewidth.Wrap(w, cols), "\n")
				lines = append(lines, parts[:len(parts)-1]...)
				cur = parts[len(parts)-1]
				continue
			}
			switch {
			case cur == "":
				cur = w
			case runewidth.StringWidth(cur)+1+runewidth.StringWidth(w) <= cols:
				cur += " " + w
			default:
				lines = append(lines, cur)
				cur = w
			}
		}
		lines = append(lines, cur)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
