package layout

import (
	"strconv"

	"adinvoice/internal/amount"
	"adinvoice/internal/domain"
	"adinvoice/internal/draw"
)

// TotalRowCount is the number of fixed rows appended after the items.
const TotalRowCount = 6

const cellPadding = 1.0

// HeaderRow returns the column title row.
func HeaderRow() draw.Row {
	cells := make([]draw.Cell, len(Columns))
	for i, c := range Columns {
		cells[i] = draw.Cell{
			Text: c.Title, FontSize: 7, Bold: true, Align: draw.AlignCenter,
			Wrap: true, Border: true, Fill: &draw.Shade,
		}
	}
	return draw.Row{Cells: cells, Height: HeaderRowHeight}
}

func itemTexts(it domain.InvoiceItem) []string {
	return []string{
		strconv.Itoa(it.SequenceNumber),
		it.Town,
		it.Location,
		it.HSN,
		it.Media,
		it.Size,
		it.Area,
		it.Type,
		amount.FormatText(it.MonthlyRate),
		it.Period,
		amount.FormatCurrency(float64(it.Amount)),
	}
}

// ItemRow builds the row for one item, sizing each cell to its column budget and
// measuring wrapped cells to set the row height.
func ItemRow(it domain.InvoiceItem, widths []float64, m Measurer) draw.Row {
	texts := itemTexts(it)
	row := draw.Row{Cells: make([]draw.Cell, len(texts)), Height: ItemRowMinimum}
	for i, text := range texts {
		size, wrap := FontSizeFor(text, Columns[i].Budget)
		row.Cells[i] = draw.Cell{Text: text, FontSize: size, Align: Columns[i].Align, Wrap: wrap, Border: true}
		if wrap {
			h := textHeight(m, text, draw.Font{Size: size}, widths[i]-2*cellPadding) + 2*cellPadding
			if h > row.Height {
				row.Height = h
			}
		}
	}
	return row
}

func taxValue(v int64) string {
	if v == 0 {
		return "0"
	}
	return amount.Group(v)
}

func percent(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64) + "%"
}

func totalRow(label, value string, bold bool) draw.Row {
	// leading cells stay blank and borderless
	cells := make([]draw.Cell, len(Columns))
	cells[periodColumn] = draw.Cell{Text: label, FontSize: BaseFontSize, Bold: bold, Align: draw.AlignLeft, Border: true}
	cells[amountColumn] = draw.Cell{Text: value, FontSize: BaseFontSize, Bold: bold, Align: draw.AlignRight, Border: true}
	if bold {
		cells[periodColumn].Fill = &draw.Shade
		cells[amountColumn].Fill = &draw.Shade
	}
	return draw.Row{Cells: cells, Height: TotalRowHeight, Total: true}
}

// TotalRows returns the six fixed totals rows. All tax lines are always present;
// the ones not charged show "0".
func TotalRows(inv *domain.Invoice) []draw.Row {
	half := inv.GSTRate / 2
	return []draw.Row{
		totalRow("SUB TOTAL", amount.FormatCurrency(float64(inv.Subtotal)), true),
		totalRow("CGST @ "+percent(half), taxValue(inv.CGST), false),
		totalRow("SGST @ "+percent(half), taxValue(inv.SGST), false),
		totalRow("IGST @ "+percent(inv.GSTRate), taxValue(inv.IGST), false),
		totalRow("Less : PO", "0", false),
		totalRow("GRAND TOTAL", amount.FormatCurrency(float64(inv.GrandTotal)), true),
	}
}

// BuildRows returns the combined table rows: every item, then the totals.
func BuildRows(inv *domain.Invoice, widths []float64, m Measurer) []draw.Row {
	rows := make([]draw.Row, 0, len(inv.Items)+TotalRowCount)
	for _, it := range inv.Items {
		rows = append(rows, ItemRow(it, widths, m))
	}
	return append(rows, TotalRows(inv)...)
}
