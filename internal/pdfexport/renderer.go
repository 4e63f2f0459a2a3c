// Package pdfexport renders laid-out documents with gofpdf.
package pdfexport

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/jung-kurt/gofpdf"

	"adinvoice/internal/domain"
	"adinvoice/internal/draw"
	"adinvoice/internal/layout"
	"adinvoice/internal/port"
)

type renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a PDF DocumentRenderer.
func NewRenderer(logger *slog.Logger) port.DocumentRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &renderer{logger: logger}
}

// Render draws every page of doc in order. It never reads back from the PDF.
func (r *renderer) Render(doc *draw.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCellMargin(1)
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.Author, true)
	pdf.SetCreator("invoicegen", false)

	p := &painter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), images: map[string]bool{}}
	for i := range doc.Pages {
		pdf.AddPage()
		for j, op := range doc.Pages[i].Ops {
			p.op(op, 0, 0)
			// gofpdf ignores every call after its first error.
			if pdf.Err() {
				return nil, fmt.Errorf("%w: page %d, %s op %d: %v", domain.ErrRenderFailed, i+1, op.Kind, j, pdf.Error())
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	r.logger.Debug("pdf rendered", "title", doc.Title, "pages", pdf.PageCount(), "bytes", buf.Len())
	return buf.Bytes(), nil
}

type painter struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	images map[string]bool
}

func (p *painter) setFont(f draw.Font) {
	size := f.Size
	if size <= 0 {
		size = 8
	}
	p.pdf.SetFont(fontFamily, fontStyle(f), size)
}

func (p *painter) setStroke(c *draw.Color, width float64) {
	col := draw.Black
	if c != nil {
		col = *c
	}
	p.pdf.SetDrawColor(col.R, col.G, col.B)
	if width <= 0 {
		width = 0.2
	}
	p.pdf.SetLineWidth(width)
}

// op draws one primitive offset by (dx, dy); fallback art is drawn relative to its box.
func (p *painter) op(op draw.Op, dx, dy float64) {
	b := draw.Box{X: op.Box.X + dx, Y: op.Box.Y + dy, W: op.Box.W, H: op.Box.H}
	switch op.Kind {
	case draw.OpRect:
		style := ""
		if op.Fill != nil {
			p.pdf.SetFillColor(op.Fill.R, op.Fill.G, op.Fill.B)
			style += "F"
		}
		if op.Stroke != nil || op.Fill == nil {
			p.setStroke(op.Stroke, op.Width)
			style += "D"
		}
		p.pdf.Rect(b.X, b.Y, b.W, b.H, style)
	case draw.OpLine:
		p.setStroke(op.Stroke, op.Width)
		p.pdf.Line(b.X, b.Y, op.X2+dx, op.Y2+dy)
	case draw.OpCircle:
		p.setStroke(op.Stroke, op.Width)
		p.pdf.Circle(b.X, b.Y, b.W, "D")
	case draw.OpText:
		p.setFont(op.Font)
		p.pdf.SetTextColor(op.Color.R, op.Color.G, op.Color.B)
		p.pdf.SetXY(b.X, b.Y)
		p.pdf.CellFormat(b.W, b.H, p.tr(op.Text), "", 0, string(op.Align)+"M", false, 0, "")
	case draw.OpTextBlock:
		p.setFont(op.Font)
		p.pdf.SetTextColor(op.Color.R, op.Color.G, op.Color.B)
		p.pdf.SetXY(b.X, b.Y)
		p.pdf.MultiCell(b.W, op.LineHeight, p.tr(op.Text), "", string(op.Align), false)
	case draw.OpArt:
		p.art(op.Art, b)
	case draw.OpTable:
		p.table(op.Table)
	}
}

func (p *painter) art(a *draw.Art, b draw.Box) {
	if a == nil {
		return
	}
	if a.IsImage() {
		opts := gofpdf.ImageOptions{ImageType: a.Format}
		if !p.images[a.Name] {
			p.pdf.RegisterImageOptionsReader(a.Name, opts, bytes.NewReader(a.Image))
			p.images[a.Name] = true
		}
		p.pdf.ImageOptions(a.Name, b.X, b.Y, b.W, b.H, false, opts, 0, "")
		return
	}
	for _, op := range a.Fallback {
		p.op(op, b.X, b.Y)
	}
}

func (p *painter) table(t *draw.Table) {
	if t == nil {
		return
	}
	y := t.Y
	p.row(t, t.Header, y)
	y += t.Header.Height
	for _, r := range t.Rows {
		p.row(t, r, y)
		y += r.Height
	}
}

func (p *painter) row(t *draw.Table, r draw.Row, y float64) {
	x := t.X
	for i, c := range r.Cells {
		if i >= len(t.Widths) {
			break
		}
		w := t.Widths[i]
		p.cell(c, x, y, w, r.Height, t.CellPaddingX)
		x += w
	}
}

func (p *painter) cell(c draw.Cell, x, y, w, h, pad float64) {
	if c.Fill != nil {
		p.pdf.SetFillColor(c.Fill.R, c.Fill.G, c.Fill.B)
		p.pdf.Rect(x, y, w, h, "F")
	}
	if c.Border {
		p.setStroke(nil, 0.2)
		p.pdf.Rect(x, y, w, h, "D")
	}
	if c.Text == "" {
		return
	}

	font := draw.Font{Bold: c.Bold, Size: c.FontSize}
	p.setFont(font)
	p.pdf.SetTextColor(0, 0, 0)
	align := string(c.Align)
	if align == "" {
		align = string(draw.AlignLeft)
	}

	if c.Wrap {
		lh := layout.LineHeight(c.FontSize)
		lines := p.pdf.SplitLines([]byte(p.tr(c.Text)), w-2*pad)
		top := y + (h-float64(len(lines))*lh)/2
		for i, l := range lines {
			p.pdf.SetXY(x, top+float64(i)*lh)
			p.pdf.CellFormat(w, lh, string(l), "", 0, align+"M", false, 0, "")
		}
		return
	}

	p.pdf.ClipRect(x, y, w, h, false)
	p.pdf.SetXY(x, y)
	p.pdf.CellFormat(w, h, p.tr(c.Text), "", 0, align+"M", false, 0, "")
	p.pdf.ClipEnd()
}
