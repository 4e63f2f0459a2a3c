package pdfexport

import (
	"github.com/jung-kurt/gofpdf"

	"adinvoice/internal/draw"
	"adinvoice/internal/layout"
)

const fontFamily = "Helvetica"

func fontStyle(f draw.Font) string {
	style := ""
	if f.Bold {
		style += "B"
	}
	if f.Italic {
		style += "I"
	}
	return style
}

// Measurer splits text with the core Helvetica metrics gofpdf renders with.
type Measurer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

var _ layout.Measurer = (*Measurer)(nil)

// NewMeasurer creates a Measurer backed by a scratch document.
func NewMeasurer() *Measurer {
	pdf := gofpdf.New("P", "mm", "A4", "")
	return &Measurer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// SplitText implements layout.Measurer.
func (m *Measurer) SplitText(text string, font draw.Font, width float64) []string {
	m.pdf.SetFont(fontFamily, fontStyle(font), font.Size)
	raw := m.pdf.SplitLines([]byte(m.tr(text)), width)
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = string(l)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
