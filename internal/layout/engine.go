// Package layout turns an invoice into pages of draw ops in two passes: pass one
// paginates the table and places the closing block, pass two stamps the per-page
// decoration once the page count is known.
package layout

import (
	"fmt"
	"strings"

	"adinvoice/internal/config"
	"adinvoice/internal/domain"
	"adinvoice/internal/draw"
	"adinvoice/internal/gst"
)

// Op tags.
const (
	TagHeaderArt      = "header_art"
	TagFooterArt      = "footer_art"
	TagBoundary       = "boundary"
	TagBroughtForward = "brought_forward"
	TagCarriedForward = "carried_forward"
	TagPageNumber     = "page_number"
	TagAmountInWords  = "amount_in_words"
	TagTerms          = "terms"
	TagSignature      = "signature"
)

// Assets are the resolved header and footer art. Either may be nil.
type Assets struct {
	Header *draw.Art
	Footer *draw.Art
}

// Engine lays out invoices for one issuing company.
type Engine struct {
	measurer Measurer
	company  config.CompanyConfig
}

// NewEngine creates a layout engine.
func NewEngine(m Measurer, company config.CompanyConfig) *Engine {
	if m == nil {
		m = EstimateMeasurer{}
	}
	return &Engine{measurer: m, company: company}
}

// Layout produces the complete document for inv.
func (e *Engine) Layout(inv *domain.Invoice, assets Assets) *draw.Document {
	widths := ColumnWidths(ContentWidth)
	rows := BuildRows(inv, widths, e.measurer)

	final := e.finalBlock(inv)
	plans := Paginate(rows, final.height)

	doc := &draw.Document{
		Title:  "Invoice " + inv.InvoiceNumber,
		Author: e.company.Name,
		Pages:  make([]draw.Page, len(plans)),
	}

	// pass one: content
	for i, p := range plans {
		page := &doc.Pages[i]
		page.Number = i + 1
		if p.State == FirstPage {
			page.Add(e.firstPageBlocks(inv)...)
		}
		if p.HasTable() {
			page.Add(draw.Op{Kind: draw.OpTable, Table: &draw.Table{
				X:            Margin,
				Y:            p.TableY,
				Widths:       widths,
				Header:       HeaderRow(),
				Rows:         p.Rows,
				CellPaddingX: cellPadding,
			}})
		}
		if p.HasFinal {
			page.Add(final.place(p.FinalY)...)
		}
	}

	// pass two: decoration, with the page count known. Every page after the
	// first gets Brought Forward and every page before the last gets Carried
	// Forward, including a page that holds only the closing block.
	total := len(plans)
	for i := range plans {
		page := &doc.Pages[i]
		stamps := e.pageStamps(assets)
		if i > 0 {
			stamps = append(stamps, draw.Tagged(draw.Text(
				draw.Box{X: Margin + 2, Y: BroughtForwardY, W: ContentWidth - 4, H: MarkerHeight},
				"Brought Forward", draw.Font{Bold: true, Italic: true, Size: 8}, draw.Grey, draw.AlignLeft,
			), TagBroughtForward))
		}
		if i < total-1 {
			stamps = append(stamps, draw.Tagged(draw.Text(
				draw.Box{X: Margin + 2, Y: CarriedForwardY, W: ContentWidth - 4, H: MarkerHeight},
				"Carried Forward", draw.Font{Bold: true, Italic: true, Size: 8}, draw.Grey, draw.AlignRight,
			), TagCarriedForward))
		}
		stamps = append(stamps, draw.Tagged(draw.Text(
			draw.Box{X: Margin, Y: PageNumberY, W: ContentWidth, H: PageNumberHeight},
			fmt.Sprintf("Page %d of %d", i+1, total), draw.Font{Size: 7}, draw.Grey, draw.AlignCenter,
		), TagPageNumber))
		page.Ops = append(stamps, page.Ops...)
	}
	return doc
}

func (e *Engine) pageStamps(assets Assets) []draw.Op {
	var ops []draw.Op
	if assets.Header != nil {
		ops = append(ops, draw.Tagged(draw.ArtOp(HeaderArtBox, assets.Header), TagHeaderArt))
	}
	if assets.Footer != nil {
		ops = append(ops, draw.Tagged(draw.ArtOp(FooterArtBox, assets.Footer), TagFooterArt))
	}
	ops = append(ops, draw.Tagged(draw.Rect(BoundaryBox, draw.Black, 0.4), TagBoundary))
	return ops
}

const (
	titleBarHeight = 7.0
	partyWidth     = 105.0
	metaStep       = 5.0
	labelFont      = 8.0
)

// firstPageBlocks draws the title bar, the billing party box and the metadata box.
func (e *Engine) firstPageBlocks(inv *domain.Invoice) []draw.Op {
	bold := draw.Font{Bold: true, Size: labelFont}
	plain := draw.Font{Size: labelFont}

	title := draw.Box{X: Margin, Y: BoundaryTop, W: ContentWidth, H: titleBarHeight}
	blockTop := title.Bottom()
	blockH := FirstTableTop - 2 - blockTop
	party := draw.Box{X: Margin, Y: blockTop, W: partyWidth, H: blockH}
	meta := draw.Box{X: party.Right(), Y: blockTop, W: ContentWidth - partyWidth, H: blockH}

	ops := []draw.Op{
		draw.FilledRect(title, draw.Shade, &draw.Black),
		draw.Text(title, "TAX INVOICE", draw.Font{Bold: true, Size: 12}, draw.Black, draw.AlignCenter),
		draw.Rect(party, draw.Black, 0.2),
		draw.Rect(meta, draw.Black, 0.2),
	}

	// billing party
	x := party.X + 2
	w := party.W - 4
	y := party.Y + 2
	p := inv.Party
	ops = append(ops,
		draw.Text(draw.Box{X: x, Y: y, W: w, H: 4}, "Bill To:", bold, draw.Grey, draw.AlignLeft),
		draw.Text(draw.Box{X: x, Y: y + 5, W: w, H: 5}, p.Name, draw.Font{Bold: true, Size: 10}, draw.Black, draw.AlignLeft),
		draw.TextBlock(draw.Box{X: x, Y: y + 11, W: w, H: 8}, p.Address, plain, LineHeight(labelFont), draw.AlignLeft),
	)
	lines := []string{joinNonEmpty(", ", p.City, p.State, p.Pincode)}
	if p.GSTIN != "" {
		lines = append(lines, "GSTIN: "+p.GSTIN)
	}
	if info, ok := gst.StateByName(p.State); ok {
		lines = append(lines, fmt.Sprintf("State: %s   Code: %s", info.Name, info.Code))
	}
	if contact := joinNonEmpty("   ", prefixed("Ph: ", p.Phone), prefixed("Email: ", p.Email)); contact != "" {
		lines = append(lines, contact)
	}
	ly := y + 20
	for _, l := range lines {
		ops = append(ops, draw.Text(draw.Box{X: x, Y: ly, W: w, H: 4}, l, plain, draw.Black, draw.AlignLeft))
		ly += 4.5
	}

	// invoice metadata
	pairs := [][2]string{
		{"Invoice No.", inv.InvoiceNumber},
		{"Invoice Date", inv.InvoiceDate},
		{"Due Date", inv.DueDate},
		{"PO No.", inv.PONumber},
		{"PO Date", inv.PODate},
		{"Campaign", inv.DisplayName},
		{"Duration", prefixed("", inv.Duration, " days")},
		{"Our GSTIN", e.company.GSTIN},
	}
	my := meta.Y + 2
	for _, kv := range pairs {
		if kv[1] == "" {
			continue
		}
		ops = append(ops,
			draw.Text(draw.Box{X: meta.X + 2, Y: my, W: 26, H: 4}, kv[0], bold, draw.Black, draw.AlignLeft),
			draw.Text(draw.Box{X: meta.X + 28, Y: my, W: meta.W - 30, H: 4}, ": "+kv[1], plain, draw.Black, draw.AlignLeft),
		)
		my += metaStep
	}
	return ops
}

// closing is the amount-in-words, terms and signature block, positioned on demand.
type closing struct {
	height float64
	place  func(y float64) []draw.Op
}

const (
	closingLeftWidth  = 128.0
	signatureWidth    = 60.0
	signatureHeight   = 26.0
	termsFontSize     = 7.0
	closingLabelSpace = 4.5
)

// finalBlock measures the closing block so pass one can decide where it goes.
func (e *Engine) finalBlock(inv *domain.Invoice) closing {
	wordsFont := draw.Font{Bold: true, Italic: true, Size: labelFont}
	termsFont := draw.Font{Size: termsFontSize}
	left := Margin + 2

	wordsH := textHeight(e.measurer, "Rupees "+inv.TotalInWords, wordsFont, closingLeftWidth)
	terms := make([]string, len(inv.Terms))
	termsH := 0.0
	for i, t := range inv.Terms {
		terms[i] = fmt.Sprintf("%d. %s", i+1, t)
		termsH += textHeight(e.measurer, terms[i], termsFont, closingLeftWidth)
	}

	leftH := closingLabelSpace + wordsH
	if len(terms) > 0 {
		leftH += 2 + closingLabelSpace + termsH
	}
	height := leftH
	if signatureHeight > height {
		height = signatureHeight
	}

	place := func(y float64) []draw.Op {
		bold := draw.Font{Bold: true, Size: labelFont}
		ops := []draw.Op{
			draw.Tagged(draw.Text(draw.Box{X: left, Y: y, W: closingLeftWidth, H: 4}, "Amount in Words:", bold, draw.Black, draw.AlignLeft), TagAmountInWords),
			draw.Tagged(draw.TextBlock(draw.Box{X: left, Y: y + closingLabelSpace, W: closingLeftWidth, H: wordsH}, "Rupees "+inv.TotalInWords, wordsFont, LineHeight(labelFont), draw.AlignLeft), TagAmountInWords),
		}
		ty := y + closingLabelSpace + wordsH + 2
		if len(terms) > 0 {
			ops = append(ops, draw.Tagged(draw.Text(draw.Box{X: left, Y: ty, W: closingLeftWidth, H: 4}, "Terms & Conditions:", bold, draw.Black, draw.AlignLeft), TagTerms))
			ty += closingLabelSpace
			for _, t := range terms {
				h := textHeight(e.measurer, t, termsFont, closingLeftWidth)
				ops = append(ops, draw.Tagged(draw.TextBlock(draw.Box{X: left, Y: ty, W: closingLeftWidth, H: h}, t, termsFont, LineHeight(termsFontSize), draw.AlignLeft), TagTerms))
				ty += h
			}
		}

		sx := Margin + ContentWidth - signatureWidth - 2
		sig := draw.Box{X: sx, Y: y, W: signatureWidth, H: signatureHeight}
		ops = append(ops,
			draw.Tagged(draw.Text(draw.Box{X: sx, Y: y, W: signatureWidth, H: 5}, "For "+e.company.Name, bold, draw.Black, draw.AlignCenter), TagSignature),
			draw.Tagged(draw.Line(sx+6, sig.Bottom()-6, sig.Right()-6, sig.Bottom()-6, draw.Black, 0.2), TagSignature),
			draw.Tagged(draw.Text(draw.Box{X: sx, Y: sig.Bottom() - 5, W: signatureWidth, H: 4}, e.company.Signatory, draw.Font{Size: 7}, draw.Black, draw.AlignCenter), TagSignature),
		)
		return ops
	}
	return closing{height: height, place: place}
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

// prefixed wraps a non-empty value; empty values stay empty.
func prefixed(prefix, value string, suffix ...string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return prefix + value + strings.Join(suffix, "")
}
