package layout

import "adinvoice/internal/draw"

// PageState is the role a page plays in the layout.
type PageState int

const (
	// FirstPage carries the invoice metadata, billing party and up to FirstPageRowBudget rows.
	FirstPage PageState = iota
	// ContinuationPage carries rows that did not fit on earlier pages.
	ContinuationPage
	// FinalContent is a page added only because the closing block did not fit under the last table.
	FinalContent
)

func (s PageState) String() string {
	switch s {
	case FirstPage:
		return "first_page"
	case ContinuationPage:
		return "continuation_page"
	case FinalContent:
		return "final_content"
	default:
		return "unknown"
	}
}

// PagePlan records what pass one put on a page.
type PagePlan struct {
	State  PageState
	Rows   []draw.Row
	TableY float64
	// HasFinal is set on the last page, where the closing block starts at FinalY.
	HasFinal bool
	FinalY   float64
}

// HasTable reports whether the page carries table rows.
func (p PagePlan) HasTable() bool { return len(p.Rows) > 0 }

// TableBottom returns the y just below the page's table.
func (p PagePlan) TableBottom() float64 {
	if !p.HasTable() {
		return p.TableY
	}
	h := HeaderRowHeight
	for _, r := range p.Rows {
		h += r.Height
	}
	return p.TableY + h
}

// fill takes rows from the front of rows while they fit in avail, up to limit rows.
// At least one row is always taken so a single oversized row cannot stall pagination.
func fill(rows []draw.Row, avail float64, limit int) int {
	used := 0.0
	n := 0
	for n < len(rows) && n < limit && used+rows[n].Height <= avail {
		used += rows[n].Height
		n++
	}
	if n == 0 && len(rows) > 0 {
		n = 1
	}
	return n
}

// Paginate is pass one: it splits rows over pages by row budget and measured height,
// then anchors the closing block of finalHeight under the last table, adding a
// FinalContent page when the block would cross FinalContentLimit.
func Paginate(rows []draw.Row, finalHeight float64) []PagePlan {
	n := fill(rows, TableLimit-FirstTableTop-HeaderRowHeight, FirstPageRowBudget)
	plans := []PagePlan{{State: FirstPage, Rows: rows[:n], TableY: FirstTableTop}}
	rest := rows[n:]

	for len(rest) > 0 {
		n = fill(rest, TableLimit-ContTableTop-HeaderRowHeight, len(rest))
		plans = append(plans, PagePlan{State: ContinuationPage, Rows: rest[:n], TableY: ContTableTop})
		rest = rest[n:]
	}

	last := &plans[len(plans)-1]
	finalY := last.TableBottom() + finalContentGap
	if finalY+finalHeight > FinalContentLimit {
		plans = append(plans, PagePlan{State: FinalContent, TableY: ContTableTop})
		last = &plans[len(plans)-1]
		finalY = ContTableTop
	}
	last.HasFinal = true
	last.FinalY = finalY
	return plans
}
