package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"adinvoice/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (16 columns).
var columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Party Name",
	"Party GSTIN",
	"Party State",
	"S.No",
	"Town",
	"Location",
	"HSN/SAC",
	"Media",
	"Size",
	"Area (Sq.ft)",
	"Type",
	"Rate / Month",
	"Period",
	"Amount",
}

// Writer wraps csv.Writer for exporting invoice line items as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoice writes one row per line item followed by the tax summary rows.
func (w *Writer) WriteInvoice(inv *domain.Invoice) error {
	for i := range inv.Items {
		if err := w.csv.Write(itemToRow(inv, &inv.Items[i])); err != nil {
			return err
		}
	}
	for _, row := range summaryRows(inv) {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// Encode returns the whole invoice as BOM-prefixed CSV bytes.
func Encode(inv *domain.Invoice) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(BOM)
	w := NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}
	if err := w.WriteInvoice(inv); err != nil {
		return nil, fmt.Errorf("writing csv rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}

func itemToRow(inv *domain.Invoice, it *domain.InvoiceItem) []string {
	return []string{
		inv.InvoiceNumber,
		inv.InvoiceDate,
		inv.Party.Name,
		inv.Party.GSTIN,
		inv.Party.State,
		strconv.Itoa(it.SequenceNumber),
		it.Town,
		it.Location,
		it.HSN,
		it.Media,
		it.Size,
		it.Area,
		it.Type,
		it.MonthlyRate,
		it.Period,
		strconv.FormatInt(it.Amount, 10),
	}
}

// summaryRows puts each label in the Period column and its value under Amount.
// Zero tax lines are skipped.
func summaryRows(inv *domain.Invoice) [][]string {
	rate := strconv.FormatFloat(inv.GSTRate, 'f', -1, 64)
	half := strconv.FormatFloat(inv.GSTRate/2, 'f', -1, 64)

	lines := []struct {
		label string
		value int64
		keep  bool
	}{
		{"Sub Total", inv.Subtotal, true},
		{"CGST @ " + half + "%", inv.CGST, inv.CGST != 0},
		{"SGST @ " + half + "%", inv.SGST, inv.SGST != 0},
		{"IGST @ " + rate + "%", inv.IGST, inv.IGST != 0},
		{"Grand Total", inv.GrandTotal, true},
	}

	var rows [][]string
	for _, l := range lines {
		if !l.keep {
			continue
		}
		row := make([]string, len(columns))
		row[len(columns)-2] = l.label
		row[len(columns)-1] = strconv.FormatInt(l.value, 10)
		rows = append(rows, row)
	}
	return rows
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans an invoice number for use in a file name.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns the download name for an invoice export.
// Format: Invoice_{sanitized_invoice_number}.{ext}
func BuildFilename(invoiceNumber string, format domain.ExportFormat) string {
	sanitized := SanitizeFilename(invoiceNumber)
	if sanitized == "" {
		sanitized = "draft"
	}
	return fmt.Sprintf("Invoice_%s.%s", sanitized, format)
}
