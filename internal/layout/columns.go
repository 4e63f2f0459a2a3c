package layout

import "adinvoice/internal/draw"

// Column describes one of the fixed invoice table columns.
type Column struct {
	Key     string
	Title   string
	Percent float64
	// Budget is the text length that still prints at full size.
	Budget int
	Align  draw.Align
}

// Columns are the eleven table columns, left to right. Percentages sum to 100.
var Columns = []Column{
	{Key: "serial", Title: "S.No", Percent: 4, Budget: 3, Align: draw.AlignCenter},
	{Key: "town", Title: "Town", Percent: 9, Budget: 10, Align: draw.AlignLeft},
	{Key: "location", Title: "Location", Percent: 17, Budget: 22, Align: draw.AlignLeft},
	{Key: "hsn", Title: "HSN/SAC", Percent: 7, Budget: 8, Align: draw.AlignCenter},
	{Key: "media", Title: "Media", Percent: 8, Budget: 9, Align: draw.AlignCenter},
	{Key: "size", Title: "Size", Percent: 8, Budget: 9, Align: draw.AlignCenter},
	{Key: "area", Title: "Area (Sq.ft)", Percent: 7, Budget: 7, Align: draw.AlignCenter},
	{Key: "type", Title: "Type", Percent: 7, Budget: 7, Align: draw.AlignCenter},
	{Key: "rate", Title: "Rate / Month", Percent: 9, Budget: 9, Align: draw.AlignRight},
	{Key: "period", Title: "Period", Percent: 14, Budget: 12, Align: draw.AlignCenter},
	{Key: "amount", Title: "Amount", Percent: 10, Budget: 11, Align: draw.AlignRight},
}

// Column indexes used by the totals rows.
const (
	periodColumn = 9
	amountColumn = 10
)

// ColumnWidths converts the column percentages to absolute widths over total.
func ColumnWidths(total float64) []float64 {
	widths := make([]float64, len(Columns))
	for i, c := range Columns {
		widths[i] = total * c.Percent / 100
	}
	return widths
}
