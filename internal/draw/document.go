// Package draw is a renderer-independent description of a paginated document.
// Coordinates are millimetres from the top-left corner of the page.
package draw

// Size of an A4 portrait sheet.
const (
	PageWidth  = 210.0
	PageHeight = 297.0
)

// OpKind identifies the primitive an Op describes.
type OpKind int

const (
	OpRect OpKind = iota
	OpLine
	OpText
	OpTextBlock
	OpArt
	OpTable
	OpCircle
)

func (k OpKind) String() string {
	switch k {
	case OpRect:
		return "rect"
	case OpLine:
		return "line"
	case OpText:
		return "text"
	case OpTextBlock:
		return "text_block"
	case OpArt:
		return "art"
	case OpTable:
		return "table"
	case OpCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Align is a horizontal text alignment.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Color is an RGB triple.
type Color struct{ R, G, B int }

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Grey  = Color{110, 110, 110}
	Brand = Color{176, 28, 46}
	Shade = Color{235, 235, 235}
)

// Font selects a typeface style and size in points.
type Font struct {
	Bold   bool
	Italic bool
	Size   float64
}

// Box is an axis-aligned rectangle.
type Box struct{ X, Y, W, H float64 }

// Bottom returns the y coordinate of the lower edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Op is one drawing primitive. Only the fields relevant to Kind are set.
type Op struct {
	Kind OpKind

	Box    Box
	Fill   *Color
	Stroke *Color
	Width  float64 // line width

	X2, Y2 float64 // line end point; Box.X/Box.Y is the start

	Text  string
	Font  Font
	Color Color
	Align Align
	// LineHeight applies to OpTextBlock, which wraps Text inside Box.W.
	LineHeight float64

	Art   *Art
	Table *Table

	// Tag names an op for inspection, e.g. "carried_forward".
	Tag string
}

// Art is a resolved header or footer: either a decoded image or vector fallback ops.
// Fallback ops are positioned relative to the art box origin.
type Art struct {
	Name     string
	Image    []byte
	Format   string // "JPG" or "PNG"
	Fallback []Op
}

// IsImage reports whether the art carries bitmap data.
func (a *Art) IsImage() bool { return a != nil && len(a.Image) > 0 }

// Page is the ordered op list of one page.
type Page struct {
	Number int
	Ops    []Op
}

// Add appends ops to the page.
func (p *Page) Add(ops ...Op) { p.Ops = append(p.Ops, ops...) }

// Tagged returns the ops carrying tag.
func (p *Page) Tagged(tag string) []Op {
	var out []Op
	for _, op := range p.Ops {
		if op.Tag == tag {
			out = append(out, op)
		}
	}
	return out
}

// Tables returns the table ops on the page.
func (p *Page) Tables() []*Table {
	var out []*Table
	for _, op := range p.Ops {
		if op.Kind == OpTable && op.Table != nil {
			out = append(out, op.Table)
		}
	}
	return out
}

// Document is a fully laid out, renderer-ready document.
type Document struct {
	Title  string
	Author string
	Pages  []Page
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return len(d.Pages) }
