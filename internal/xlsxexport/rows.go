// Package xlsxexport writes the invoice as a single-sheet workbook.
package xlsxexport

import (
	"strconv"
	"strings"

	"adinvoice/internal/amount"
	"adinvoice/internal/config"
	"adinvoice/internal/domain"
	"adinvoice/internal/gst"
	"adinvoice/internal/layout"
)

// RowStyle selects how a sheet row is formatted.
type RowStyle int

const (
	StylePlain RowStyle = iota
	// StyleTitle rows are bold, centred and merged across every column.
	StyleTitle
	// StyleColumnHeader is the row of column titles.
	StyleColumnHeader
	StyleBold
	StyleItem
	StyleTotal
	StyleGrandTotal
)

// Row is one sheet row. Numeric cells hold int64 so the sheet can sum them.
type Row struct {
	Cells []any
	Style RowStyle
}

// ColumnCount is the width of the sheet in columns.
var ColumnCount = len(layout.Columns)

const (
	labelColumn = 9
	valueColumn = 10
)

func title(text string) Row {
	return Row{Cells: []any{text}, Style: StyleTitle}
}

func blank() Row { return Row{} }

func totalRow(label string, v int64, style RowStyle) Row {
	cells := make([]any, ColumnCount)
	for i := range cells {
		cells[i] = ""
	}
	cells[labelColumn] = label
	cells[valueColumn] = v
	return Row{Cells: cells, Style: style}
}

// numeric returns an int64 for numeric text so rate cells stay numbers, or the text as typed.
func numeric(s string) any {
	d, ok := amount.Parse(s)
	if !ok {
		return s
	}
	if d.IsInteger() {
		return d.IntPart()
	}
	f, _ := d.Float64()
	return f
}

// BuildRows lays the invoice out as a flat row sequence: company header, invoice
// metadata, billing party, column titles, items, tax summary, amount in words and terms.
func BuildRows(inv *domain.Invoice, company config.CompanyConfig) []Row {
	rows := []Row{
		title(company.Name),
		title(strings.Join(company.Address, ", ")),
		title(joinNonEmpty(" | ", prefixed("Ph: ", company.Phone), prefixed("Email: ", company.Email), company.Website)),
		title(joinNonEmpty(" | ", prefixed("GSTIN: ", company.GSTIN), prefixed("PAN: ", company.PAN))),
		title("TAX INVOICE"),
		blank(),
		{Cells: []any{"Invoice No:", inv.InvoiceNumber, "", "Invoice Date:", inv.InvoiceDate}},
		{Cells: []any{"Due Date:", inv.DueDate, "", "PO No:", inv.PONumber}},
		{Cells: []any{"PO Date:", inv.PODate, "", "Duration (days):", inv.Duration}},
		{Cells: []any{"Display:", inv.DisplayName}},
		blank(),
		{Cells: []any{"Bill To:"}, Style: StyleBold},
		{Cells: []any{inv.Party.Name}, Style: StyleBold},
		{Cells: []any{inv.Party.Address}},
		{Cells: []any{joinNonEmpty(", ", inv.Party.City, inv.Party.State, inv.Party.Pincode)}},
		{Cells: []any{"GSTIN:", inv.Party.GSTIN, "", "State Code:", stateCode(inv.Party)}},
		blank(),
	}

	header := make([]any, ColumnCount)
	for i, c := range layout.Columns {
		header[i] = c.Title
	}
	rows = append(rows, Row{Cells: header, Style: StyleColumnHeader})

	for _, it := range inv.Items {
		rows = append(rows, Row{Style: StyleItem, Cells: []any{
			int64(it.SequenceNumber), it.Town, it.Location, it.HSN, it.Media, it.Size,
			numeric(it.Area), it.Type, numeric(it.MonthlyRate), it.Period, it.Amount,
		}})
	}

	rows = append(rows, totalRow("Sub Total", inv.Subtotal, StyleTotal))
	half := strconv.FormatFloat(inv.GSTRate/2, 'f', -1, 64)
	full := strconv.FormatFloat(inv.GSTRate, 'f', -1, 64)
	switch {
	case inv.CGST != 0 || inv.SGST != 0:
		rows = append(rows,
			totalRow("CGST @ "+half+"%", inv.CGST, StyleTotal),
			totalRow("SGST @ "+half+"%", inv.SGST, StyleTotal),
		)
	case inv.IGST != 0:
		rows = append(rows, totalRow("IGST @ "+full+"%", inv.IGST, StyleTotal))
	}
	rows = append(rows, totalRow("Grand Total", inv.GrandTotal, StyleGrandTotal), blank(),
		Row{Cells: []any{"Amount in Words: Rupees " + inv.TotalInWords}, Style: StyleBold},
	)

	if len(inv.Terms) > 0 {
		rows = append(rows, blank(), Row{Cells: []any{"Terms & Conditions:"}, Style: StyleBold})
		for i, t := range inv.Terms {
			rows = append(rows, Row{Cells: []any{strconv.Itoa(i+1) + ". " + t}})
		}
	}
	return rows
}

func stateCode(p domain.BillingParty) string {
	if info, ok := gst.StateFromGSTIN(p.GSTIN); ok {
		return info.Code
	}
	if info, ok := gst.StateByName(p.State); ok {
		return info.Code
	}
	return ""
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func prefixed(prefix, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return prefix + value
}
