package draw

// Cell is one table cell.
type Cell struct {
	Text     string
	FontSize float64
	Bold     bool
	Align    Align
	// Wrap breaks long text over several lines; otherwise the text is clipped to the cell.
	Wrap   bool
	Border bool
	Fill   *Color
}

// Row is a table row with its measured height.
type Row struct {
	Cells  []Cell
	Height float64
	// Total marks a synthesized totals row.
	Total bool
}

// Table is a positioned grid. Widths are absolute millimetres.
type Table struct {
	X, Y         float64
	Widths       []float64
	Header       Row
	Rows         []Row
	CellPaddingX float64
}

// Height returns the drawn height including the header row.
func (t *Table) Height() float64 {
	h := t.Header.Height
	for _, r := range t.Rows {
		h += r.Height
	}
	return h
}

// Bottom returns the y coordinate just below the last row.
func (t *Table) Bottom() float64 { return t.Y + t.Height() }

// Width returns the sum of the column widths.
func (t *Table) Width() float64 {
	var w float64
	for _, c := range t.Widths {
		w += c
	}
	return w
}
