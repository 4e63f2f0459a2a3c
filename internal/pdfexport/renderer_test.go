package pdfexport_test

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adinvoice/internal/assets"
	"adinvoice/internal/config"
	"adinvoice/internal/domain"
	"adinvoice/internal/draw"
	"adinvoice/internal/layout"
	"adinvoice/internal/pdfexport"
)

func company() config.CompanyConfig {
	return config.CompanyConfig{
		Name:       "SHREE GANESH ADVERTISING",
		Address:    []string{"Pandri Main Road", "Raipur"},
		GSTIN:      "22AKJPD0941N4Z8",
		Membership: "Member: IOAA",
		Signatory:  "Authorised Signatory",
	}
}

func sampleInvoice(items int) *domain.Invoice {
	inv := &domain.Invoice{
		InvoiceNumber: "SGA/24/7",
		InvoiceDate:   "01/04/2024",
		Party:         domain.BillingParty{Name: "Acme Foods", Address: "14 MG Road", City: "Pune", State: "Maharashtra", GSTIN: "27AAPFU0939F1ZV"},
		GSTRate:       18,
		Interstate:    true,
		Terms:         []string{"Payment within 15 days."},
	}
	for i := 0; i < items; i++ {
		inv.Items = append(inv.Items, domain.InvoiceItem{
			SequenceNumber: i + 1, Town: "Raipur", Location: fmt.Sprintf("Telibandha Chowk facing GE Road %d", i),
			HSN: "998366", Media: "Hoarding", Size: "20x10", Area: "200", Type: "Front Lit",
			MonthlyRate: "30000", Period: "01/04/2024 to 30/04/2024", Amount: 30000,
		})
		inv.Subtotal += 30000
	}
	inv.IGST = inv.Subtotal * 18 / 100
	inv.GrandTotal = inv.Subtotal + inv.IGST
	inv.TotalInWords = "Rupees Only"
	return inv
}

func pageObjects(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page\n"))
}

func renderInvoice(t *testing.T, inv *domain.Invoice, a layout.Assets) []byte {
	t.Helper()
	doc := layout.NewEngine(pdfexport.NewMeasurer(), company()).Layout(inv, a)
	data, err := pdfexport.NewRenderer(slog.New(slog.NewTextHandler(io.Discard, nil))).Render(doc)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Equal(t, doc.PageCount(), pageObjects(data))
	return data
}

func fallbackAssets() layout.Assets {
	return layout.Assets{
		Header: &draw.Art{Name: "header", Fallback: assets.HeaderFallback(company(), layout.HeaderArtBox.W, layout.HeaderArtBox.H)},
		Footer: &draw.Art{Name: "footer", Fallback: assets.FooterFallback(company(), layout.FooterArtBox.W, layout.FooterArtBox.H)},
	}
}

func TestRender_SinglePage(t *testing.T) {
	data := renderInvoice(t, sampleInvoice(3), fallbackAssets())
	assert.Equal(t, 1, pageObjects(data))
}

func TestRender_MultiPage(t *testing.T) {
	data := renderInvoice(t, sampleInvoice(40), fallbackAssets())
	assert.Greater(t, pageObjects(data), 1)
}

func TestRender_ImageArt(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 20, 4))))
	art := &draw.Art{Name: "header-image.png", Image: buf.Bytes(), Format: "PNG"}

	data := renderInvoice(t, sampleInvoice(9), layout.Assets{Header: art, Footer: art})
	assert.Contains(t, string(data), "/Subtype /Image")
}

func TestRender_UndrawableImageReturnsError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA64(image.Rect(0, 0, 20, 4))))
	art := &draw.Art{Name: "header-image.png", Image: buf.Bytes(), Format: "PNG"}

	doc := layout.NewEngine(pdfexport.NewMeasurer(), company()).Layout(sampleInvoice(3), layout.Assets{Header: art})
	var (
		data []byte
		err  error
	)
	require.NotPanics(t, func() {
		data, err = pdfexport.NewRenderer(slog.New(slog.NewTextHandler(io.Discard, nil))).Render(doc)
	})
	assert.Nil(t, data)
	assert.ErrorIs(t, err, domain.ErrRenderFailed)
}

func TestMeasurer_SplitText(t *testing.T) {
	m := pdfexport.NewMeasurer()
	f := draw.Font{Size: 8}

	assert.Len(t, m.SplitText("short", f, 100), 1)
	long := m.SplitText("Opposite the old bus stand near the railway over bridge on GE Road", f, 30)
	assert.Greater(t, len(long), 1)
	assert.Len(t, m.SplitText("", f, 30), 1)
}
