package layout

import "unicode/utf8"

// Font sizes in points for table cells.
const (
	BaseFontSize = 8.0
	MinFontSize  = 5.0
)

// FontSizeFor picks a cell font size from the text length relative to the column budget.
// Text longer than three budgets wraps at the minimum size; shorter overflow is clipped.
func FontSizeFor(text string, budget int) (size float64, wrap bool) {
	n := float64(utf8.RuneCountInString(text))
	b := float64(budget)
	if budget <= 0 {
		return BaseFontSize, false
	}
	switch {
	case n <= b:
		return BaseFontSize, false
	case n <= 1.5*b:
		return BaseFontSize - 1, false
	case n <= 2*b:
		return BaseFontSize - 2, false
	default:
		return MinFontSize, n > 3*b
	}
}
