package draw

// Rect builds an outlined rectangle.
func Rect(b Box, stroke Color, width float64) Op {
	return Op{Kind: OpRect, Box: b, Stroke: &stroke, Width: width}
}

// FilledRect builds a filled rectangle, optionally outlined.
func FilledRect(b Box, fill Color, stroke *Color) Op {
	return Op{Kind: OpRect, Box: b, Fill: &fill, Stroke: stroke, Width: 0.2}
}

// Line builds a straight line.
func Line(x1, y1, x2, y2 float64, c Color, width float64) Op {
	return Op{Kind: OpLine, Box: Box{X: x1, Y: y1}, X2: x2, Y2: y2, Stroke: &c, Width: width}
}

// Circle builds an outlined circle of radius r centred at (cx, cy). The radius is kept in Box.W.
func Circle(cx, cy, r float64, c Color) Op {
	return Op{Kind: OpCircle, Box: Box{X: cx, Y: cy, W: r}, Stroke: &c, Width: 0.3}
}

// Text builds a single-line label with its baseline cell at b.
func Text(b Box, s string, f Font, c Color, a Align) Op {
	return Op{Kind: OpText, Box: b, Text: s, Font: f, Color: c, Align: a}
}

// TextBlock builds wrapped text inside b.W starting at b.Y.
func TextBlock(b Box, s string, f Font, lineHeight float64, a Align) Op {
	return Op{Kind: OpTextBlock, Box: b, Text: s, Font: f, Color: Black, Align: a, LineHeight: lineHeight}
}

// ArtOp places resolved art in b.
func ArtOp(b Box, a *Art) Op {
	return Op{Kind: OpArt, Box: b, Art: a}
}

// Tagged sets op.Tag.
func Tagged(op Op, tag string) Op {
	op.Tag = tag
	return op
}
