package layout_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adinvoice/internal/config"
	"adinvoice/internal/domain"
	"adinvoice/internal/draw"
	"adinvoice/internal/layout"
)

func testCompany() config.CompanyConfig {
	return config.CompanyConfig{Name: "SHREE GANESH ADVERTISING", GSTIN: "22AKJPD0941N4Z8", Signatory: "Authorised Signatory"}
}

func invoiceWithItems(n int) *domain.Invoice {
	inv := &domain.Invoice{
		InvoiceNumber: "SGA/24/042",
		InvoiceDate:   "01/04/2024",
		Party:         domain.BillingParty{Name: "Acme Foods", State: "Chhattisgarh", GSTIN: "22AAAAA0000A1Z5"},
		GSTRate:       18,
		Terms:         []string{"Payment within 15 days.", "Subject to Raipur jurisdiction."},
	}
	for i := 0; i < n; i++ {
		inv.Items = append(inv.Items, domain.InvoiceItem{
			SequenceNumber: i + 1,
			Town:           "Raipur",
			Location:       fmt.Sprintf("Site %d", i+1),
			HSN:            "998366",
			Media:          "Hoarding",
			Size:           "20x10",
			Area:           "200",
			Type:           "Front Lit",
			MonthlyRate:    "30000",
			Period:         "01/04/2024 to 30/04/2024",
			Amount:         30000,
		})
		inv.Subtotal += 30000
	}
	inv.CGST = inv.Subtotal * 9 / 100
	inv.SGST = inv.CGST
	inv.GrandTotal = inv.Subtotal + inv.CGST + inv.SGST
	inv.TotalInWords = "Some Amount Only"
	return inv
}

func render(inv *domain.Invoice) *draw.Document {
	return layout.NewEngine(layout.EstimateMeasurer{}, testCompany()).Layout(inv, layout.Assets{
		Header: &draw.Art{Name: "header"},
		Footer: &draw.Art{Name: "footer"},
	})
}

func tableRowCount(p draw.Page) int {
	n := 0
	for _, t := range p.Tables() {
		n += len(t.Rows)
	}
	return n
}

func TestColumns_PercentagesSumTo100(t *testing.T) {
	var sum float64
	for _, c := range layout.Columns {
		sum += c.Percent
	}
	assert.Len(t, layout.Columns, 11)
	assert.InDelta(t, 100, sum, 1e-9)

	var width float64
	for _, w := range layout.ColumnWidths(layout.ContentWidth) {
		width += w
	}
	assert.InDelta(t, layout.ContentWidth, width, 1e-9)
}

func TestFontSizeFor(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		budget   int
		wantSize float64
		wantWrap bool
	}{
		{"within_budget", 10, 10, 8, false},
		{"one_and_half", 15, 10, 7, false},
		{"double", 20, 10, 6, false},
		{"beyond_double", 25, 10, 5, false},
		{"triple_clips", 30, 10, 5, false},
		{"over_triple_wraps", 31, 10, 5, true},
		{"empty", 0, 10, 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, wrap := layout.FontSizeFor(strings.Repeat("x", tt.length), tt.budget)
			assert.Equal(t, tt.wantSize, size)
			assert.Equal(t, tt.wantWrap, wrap)
		})
	}
}

func TestTotalRows_FixedOrder(t *testing.T) {
	t.Run("intrastate", func(t *testing.T) {
		inv := invoiceWithItems(2)
		rows := layout.TotalRows(inv)
		require.Len(t, rows, layout.TotalRowCount)

		var labels, values []string
		for _, r := range rows {
			assert.True(t, r.Total)
			labels = append(labels, r.Cells[9].Text)
			values = append(values, r.Cells[10].Text)
			for i := 0; i < 9; i++ {
				assert.Empty(t, r.Cells[i].Text)
				assert.False(t, r.Cells[i].Border)
			}
		}
		assert.Equal(t, []string{"SUB TOTAL", "CGST @ 9%", "SGST @ 9%", "IGST @ 18%", "Less : PO", "GRAND TOTAL"}, labels)
		assert.Equal(t, []string{"60,000", "5,400", "5,400", "0", "0", "70,800"}, values)
	})

	t.Run("interstate_zero_lines_render_zero", func(t *testing.T) {
		inv := invoiceWithItems(2)
		inv.CGST, inv.SGST, inv.IGST = 0, 0, 10800
		rows := layout.TotalRows(inv)
		assert.Equal(t, "0", rows[1].Cells[10].Text)
		assert.Equal(t, "0", rows[2].Cells[10].Text)
		assert.Equal(t, "10,800", rows[3].Cells[10].Text)
	})

	t.Run("fractional_rate_label", func(t *testing.T) {
		inv := invoiceWithItems(1)
		inv.GSTRate = 5
		rows := layout.TotalRows(inv)
		assert.Equal(t, "CGST @ 2.5%", rows[1].Cells[9].Text)
		assert.Equal(t, "IGST @ 5%", rows[3].Cells[9].Text)
	})
}

func TestBuildRows_ItemsThenTotals(t *testing.T) {
	inv := invoiceWithItems(3)
	rows := layout.BuildRows(inv, layout.ColumnWidths(layout.ContentWidth), layout.EstimateMeasurer{})
	require.Len(t, rows, 3+layout.TotalRowCount)

	for i := 0; i < 3; i++ {
		assert.False(t, rows[i].Total)
		assert.Equal(t, fmt.Sprint(i+1), rows[i].Cells[0].Text)
		assert.Equal(t, "30,000", rows[i].Cells[8].Text)
		assert.Equal(t, "30,000", rows[i].Cells[10].Text)
		assert.GreaterOrEqual(t, rows[i].Height, layout.ItemRowMinimum)
	}
	assert.Equal(t, "SUB TOTAL", rows[3].Cells[9].Text)
	assert.Equal(t, "GRAND TOTAL", rows[8].Cells[9].Text)
}

func TestItemRow_LongTextWrapsAndGrows(t *testing.T) {
	it := domain.InvoiceItem{
		SequenceNumber: 1,
		Location:       strings.Repeat("Near Railway Station Main Gate ", 4),
		Amount:         0,
	}
	row := layout.ItemRow(it, layout.ColumnWidths(layout.ContentWidth), layout.EstimateMeasurer{})

	loc := row.Cells[2]
	assert.True(t, loc.Wrap)
	assert.Equal(t, layout.MinFontSize, loc.FontSize)
	assert.Greater(t, row.Height, layout.ItemRowMinimum)
	assert.Empty(t, row.Cells[10].Text, "zero amount renders blank")
}

func TestLayout_SevenItemsFitOnePage(t *testing.T) {
	doc := render(invoiceWithItems(7))

	require.Equal(t, 1, doc.PageCount())
	page := doc.Pages[0]
	assert.Equal(t, 13, tableRowCount(page))
	assert.Empty(t, page.Tagged(layout.TagCarriedForward))
	assert.Empty(t, page.Tagged(layout.TagBroughtForward))
	assert.NotEmpty(t, page.Tagged(layout.TagAmountInWords))
	assert.NotEmpty(t, page.Tagged(layout.TagTerms))
	assert.NotEmpty(t, page.Tagged(layout.TagSignature))

	num := page.Tagged(layout.TagPageNumber)
	require.Len(t, num, 1)
	assert.Equal(t, "Page 1 of 1", num[0].Text)
}

func TestLayout_EightItemsCarryOneRow(t *testing.T) {
	doc := render(invoiceWithItems(8))

	require.Equal(t, 2, doc.PageCount())
	first, second := doc.Pages[0], doc.Pages[1]

	assert.Equal(t, 13, tableRowCount(first))
	assert.Len(t, first.Tagged(layout.TagCarriedForward), 1)
	assert.Empty(t, first.Tagged(layout.TagBroughtForward))
	assert.Empty(t, first.Tagged(layout.TagAmountInWords))

	assert.Equal(t, 1, tableRowCount(second))
	assert.Equal(t, "GRAND TOTAL", second.Tables()[0].Rows[0].Cells[9].Text)
	assert.Len(t, second.Tagged(layout.TagBroughtForward), 1)
	assert.Empty(t, second.Tagged(layout.TagCarriedForward))
	assert.NotEmpty(t, second.Tagged(layout.TagAmountInWords))

	assert.Equal(t, "Page 2 of 2", second.Tagged(layout.TagPageNumber)[0].Text)
}

func TestLayout_ClosingBlockPageGetsMarkers(t *testing.T) {
	inv := invoiceWithItems(7)
	inv.Terms = nil
	for i := 0; i < 30; i++ {
		inv.Terms = append(inv.Terms, fmt.Sprintf("Condition number %d applies to every site on this invoice.", i+1))
	}
	doc := render(inv)

	require.Equal(t, 2, doc.PageCount())
	first, second := doc.Pages[0], doc.Pages[1]

	assert.Equal(t, 13, tableRowCount(first))
	assert.Len(t, first.Tagged(layout.TagCarriedForward), 1)
	assert.Empty(t, first.Tagged(layout.TagAmountInWords))

	assert.Zero(t, tableRowCount(second))
	assert.Len(t, second.Tagged(layout.TagBroughtForward), 1)
	assert.Empty(t, second.Tagged(layout.TagCarriedForward))
	assert.NotEmpty(t, second.Tagged(layout.TagSignature))
}

func TestLayout_PageNumberBelowCarriedForward(t *testing.T) {
	doc := render(invoiceWithItems(8))
	first := doc.Pages[0]

	carried := first.Tagged(layout.TagCarriedForward)
	num := first.Tagged(layout.TagPageNumber)
	require.Len(t, carried, 1)
	require.Len(t, num, 1)

	assert.GreaterOrEqual(t, num[0].Box.Y, carried[0].Box.Bottom())
	assert.LessOrEqual(t, num[0].Box.Bottom(), layout.BoundaryBottom)
	assert.Greater(t, num[0].Box.H, 0.0)
}

func TestLayout_ManyItemsFlowAcrossPages(t *testing.T) {
	inv := invoiceWithItems(80)
	doc := render(inv)

	require.Greater(t, doc.PageCount(), 3)
	total := 0
	for i, page := range doc.Pages {
		assert.Equal(t, i+1, page.Number)
		assert.Len(t, page.Tagged(layout.TagHeaderArt), 1)
		assert.Len(t, page.Tagged(layout.TagFooterArt), 1)
		assert.Len(t, page.Tagged(layout.TagBoundary), 1)
		assert.Equal(t, fmt.Sprintf("Page %d of %d", i+1, doc.PageCount()), page.Tagged(layout.TagPageNumber)[0].Text)

		for _, tbl := range page.Tables() {
			assert.LessOrEqual(t, tbl.Bottom(), layout.TableLimit+1e-9)
		}
		total += tableRowCount(page)

		last := i == doc.PageCount()-1
		assert.Equal(t, !last, len(page.Tagged(layout.TagCarriedForward)) == 1, "page %d", i+1)
		assert.Equal(t, i > 0, len(page.Tagged(layout.TagBroughtForward)) == 1, "page %d", i+1)
		assert.Equal(t, last, len(page.Tagged(layout.TagSignature)) > 0, "page %d", i+1)
	}
	assert.Equal(t, 80+layout.TotalRowCount, total)
}

func TestLayout_RowOrderPreservedAcrossPages(t *testing.T) {
	doc := render(invoiceWithItems(30))

	var serials []string
	for _, page := range doc.Pages {
		for _, tbl := range page.Tables() {
			for _, r := range tbl.Rows {
				if !r.Total {
					serials = append(serials, r.Cells[0].Text)
				}
			}
		}
	}
	require.Len(t, serials, 30)
	for i, s := range serials {
		assert.Equal(t, fmt.Sprint(i+1), s)
	}
}

func TestLayout_NoArtSkipsArtOps(t *testing.T) {
	doc := layout.NewEngine(nil, testCompany()).Layout(invoiceWithItems(1), layout.Assets{})
	page := doc.Pages[0]
	assert.Empty(t, page.Tagged(layout.TagHeaderArt))
	assert.Len(t, page.Tagged(layout.TagBoundary), 1)
}
