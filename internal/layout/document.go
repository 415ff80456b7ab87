package layout

// Document is the device-independent result of laying out an order. All
// coordinates are millimetres from the top-left corner of the page.
type Document struct {
	Title      string
	PageWidth  float64
	PageHeight float64
	Pages      []Page
	// Substitutions lists assets that could not be used and were replaced by
	// a text fallback.
	Substitutions []string
}

type Page struct {
	Number   int
	Elements []Element
}

type ElementKind string

const (
	KindText     ElementKind = "text"
	KindRect     ElementKind = "rect"
	KindLine     ElementKind = "line"
	KindCell     ElementKind = "cell"
	KindCheckbox ElementKind = "checkbox"
	KindImage    ElementKind = "image"
)

type Color struct {
	R, G, B int
}

type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

type Style struct {
	Size   float64
	Bold   bool
	Color  Color
	Fill   *Color
	Border bool
	Align  Align
}

// Element is one drawing primitive.
//
//   - text: Text drawn with its baseline at Y; X is the left, centre or right
//     edge depending on Style.Align.
//   - rect, cell: box at X,Y of size W x H; a cell also carries Text.
//   - line: from X,Y to X2,Y2.
//   - checkbox: H x H box at X,Y followed by the Text label; Checked marks it.
//   - image: Image drawn into the X,Y,W,H box.
//
// Section and Key identify the element for consumers that inspect a layout.
type Element struct {
	Kind    ElementKind
	Section string
	Key     string
	X, Y    float64
	W, H    float64
	X2, Y2  float64
	Text    string
	Checked bool
	Style   Style
	Image   *Image
}

// Image is an embeddable raster asset. Type is "PNG" or "JPG".
type Image struct {
	Name string
	Type string
	Data []byte
}

// Find returns the first element with the given key across all pages.
func (d Document) Find(key string) (Element, int, bool) {
	for _, p := range d.Pages {
		for _, el := range p.Elements {
			if el.Key == key {
				return el, p.Number, true
			}
		}
	}
	return Element{}, 0, false
}

// Section returns every element tagged with section, in drawing order.
func (d Document) Section(section string) []Element {
	var out []Element
	for _, p := range d.Pages {
		for _, el := range p.Elements {
			if el.Section == section {
				out = append(out, el)
			}
		}
	}
	return out
}
