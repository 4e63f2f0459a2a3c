package xlsxexport

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"adinvoice/internal/config"
	"adinvoice/internal/domain"
	"adinvoice/internal/port"
)

// SheetName is the only sheet in the workbook.
const SheetName = "Invoice"

// indianNumFmt groups digits 2-then-3, e.g. 12,34,567.
const indianNumFmt = `[>=10000000]##\,##\,##\,##0;[>=100000]##\,##\,##0;##,##0`

// columnWidths are in Excel character units, one per table column.
var columnWidths = []float64{6, 14, 30, 10, 12, 10, 10, 12, 13, 24, 14}

type writer struct{}

// NewWriter creates an excelize-backed SpreadsheetWriter.
func NewWriter() port.SpreadsheetWriter {
	return &writer{}
}

type styles struct {
	title, header, bold, item, amount, total, grand int
}

func newStyles(f *excelize.File) (*styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	numFmt := indianNumFmt
	s := &styles{}
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}},
		{&s.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"EBEBEB"}},
			Border:    border,
		}},
		{&s.bold, &excelize.Style{Font: &excelize.Font{Bold: true}}},
		{&s.item, &excelize.Style{
			Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
			Border:    border,
		}},
		{&s.amount, &excelize.Style{Border: border, CustomNumFmt: &numFmt}},
		{&s.total, &excelize.Style{CustomNumFmt: &numFmt}},
		{&s.grand, &excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &numFmt}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return nil, fmt.Errorf("creating style: %w", err)
		}
		*d.dst = id
	}
	return s, nil
}

// Write lays the invoice out with BuildRows and writes it onto one sheet.
func (w *writer) Write(inv *domain.Invoice, company config.CompanyConfig) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	lastCol, _ := excelize.ColumnNumberToName(ColumnCount)
	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("setting width of column %s: %w", col, err)
		}
	}

	for i, row := range BuildRows(inv, company) {
		n := i + 1
		first := fmt.Sprintf("A%d", n)
		last := fmt.Sprintf("%s%d", lastCol, n)
		if len(row.Cells) > 0 {
			cells := row.Cells
			if err := f.SetSheetRow(SheetName, first, &cells); err != nil {
				return nil, fmt.Errorf("writing row %d: %w", n, err)
			}
		}
		if err := applyStyle(f, st, row.Style, n, first, last); err != nil {
			return nil, fmt.Errorf("styling row %d: %w", n, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

func applyStyle(f *excelize.File, st *styles, style RowStyle, n int, first, last string) error {
	valueCell, _ := excelize.CoordinatesToCellName(valueColumn+1, n)
	switch style {
	case StyleTitle:
		if err := f.MergeCell(SheetName, first, last); err != nil {
			return err
		}
		return f.SetCellStyle(SheetName, first, last, st.title)
	case StyleColumnHeader:
		if err := f.SetRowHeight(SheetName, n, 24); err != nil {
			return err
		}
		return f.SetCellStyle(SheetName, first, last, st.header)
	case StyleBold:
		return f.SetCellStyle(SheetName, first, first, st.bold)
	case StyleItem:
		if err := f.SetCellStyle(SheetName, first, last, st.item); err != nil {
			return err
		}
		return f.SetCellStyle(SheetName, valueCell, valueCell, st.amount)
	case StyleTotal:
		return f.SetCellStyle(SheetName, valueCell, valueCell, st.total)
	case StyleGrandTotal:
		labelCell, _ := excelize.CoordinatesToCellName(labelColumn+1, n)
		return f.SetCellStyle(SheetName, labelCell, valueCell, st.grand)
	}
	return nil
}
