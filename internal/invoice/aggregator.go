// Package invoice turns a form snapshot into the immutable Invoice handed to exporters.
package invoice

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"adinvoice/internal/amount"
	"adinvoice/internal/domain"
	"adinvoice/internal/form"
	"adinvoice/internal/gst"
)

// Build aggregates the form into an Invoice. It is pure: the same State always
// yields an identical Invoice, and the result shares no memory with s.
func Build(s form.State) domain.Invoice {
	items := slices.Clone(s.Items)

	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromInt(it.Amount))
	}
	subtotal := sum.Round(0).IntPart()

	b := gst.Calculate(float64(subtotal), s.GSTRate)
	cgst, sgst, igst := b.Apply(s.Interstate)
	grand := subtotal + cgst + sgst + igst

	return domain.Invoice{
		InvoiceNumber: s.Header.InvoiceNumber,
		InvoiceDate:   s.Header.InvoiceDate,
		DueDate:       s.Header.DueDate,
		PONumber:      s.Header.PONumber,
		PODate:        s.Header.PODate,
		DisplayName:   s.Header.DisplayName,
		Duration:      s.Duration,
		Party:         s.Party,
		Items:         items,
		GSTRate:       s.GSTRate,
		Interstate:    s.Interstate,
		Subtotal:      subtotal,
		CGST:          cgst,
		SGST:          sgst,
		IGST:          igst,
		GrandTotal:    grand,
		TotalInWords:  amount.NumberToWords(grand),
		Terms:         SplitTerms(s.Terms),
	}
}

// SplitTerms splits free-text terms into lines, dropping blank ones.
func SplitTerms(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
