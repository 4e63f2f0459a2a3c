package layout

import "adinvoice/internal/draw"

// Page geometry in millimetres on A4 portrait.
const (
	Margin = 8.0

	ContentWidth = draw.PageWidth - 2*Margin

	// BoundaryTop and BoundaryBottom delimit the invoice boundary box between header and footer art.
	BoundaryTop    = 44.0
	BoundaryBottom = 269.0

	FirstTableTop = 96.0
	ContTableTop  = 52.0
	TableLimit    = 258.0

	BroughtForwardY = 46.0
	CarriedForwardY = 262.0
	MarkerHeight    = 5.0

	// The page number sits in its own band between the Carried Forward row
	// and the bottom edge of the boundary box.
	PageNumberY      = CarriedForwardY + MarkerHeight
	PageNumberHeight = BoundaryBottom - PageNumberY

	// FinalContentLimit is the lowest y final content may reach on the last page.
	FinalContentLimit = BoundaryBottom - 2
	finalContentGap   = 3.0

	HeaderRowHeight = 8.0
	ItemRowMinimum  = 7.0
	TotalRowHeight  = 6.0

	// FirstPageRowBudget caps the combined item and total rows on page one.
	FirstPageRowBudget = 13
)

var (
	HeaderArtBox = draw.Box{X: Margin, Y: 6, W: ContentWidth, H: 36}
	FooterArtBox = draw.Box{X: Margin, Y: 271, W: ContentWidth, H: 20}
	BoundaryBox  = draw.Box{X: Margin, Y: BoundaryTop, W: ContentWidth, H: BoundaryBottom - BoundaryTop}
)

// LineHeight returns the leading used for a font size in points.
func LineHeight(size float64) float64 {
	return size * 0.44
}
