package assets

import (
	"strings"

	"adinvoice/internal/config"
	"adinvoice/internal/draw"
)

// HeaderFallback draws the company letterhead in w x h with vector ops only.
// The result depends only on its inputs.
func HeaderFallback(c config.CompanyConfig, w, h float64) []draw.Op {
	ops := []draw.Op{
		draw.Rect(draw.Box{W: w, H: h}, draw.Brand, 0.6),
		draw.FilledRect(draw.Box{X: 0, Y: 0, W: w, H: 2.5}, draw.Brand, nil),
		draw.FilledRect(draw.Box{X: 0, Y: h - 1.2, W: w, H: 1.2}, draw.Brand, nil),
	}

	// logo mark: concentric rings with a bar
	cx, cy := 18.0, h/2+1
	ops = append(ops,
		draw.Circle(cx, cy, 11, draw.Brand),
		draw.Circle(cx, cy, 8, draw.Brand),
		draw.FilledRect(draw.Box{X: cx - 6, Y: cy - 1, W: 12, H: 2}, draw.Brand, nil),
	)

	x := 34.0
	tw := w - x - 4
	ops = append(ops,
		draw.Text(draw.Box{X: x, Y: 5, W: tw, H: 9}, c.Name, draw.Font{Bold: true, Size: 18}, draw.Brand, draw.AlignLeft),
	)
	y := 14.5
	if c.Tagline != "" {
		ops = append(ops, draw.Text(draw.Box{X: x, Y: y, W: tw, H: 4}, c.Tagline, draw.Font{Italic: true, Size: 8}, draw.Grey, draw.AlignLeft))
		y += 5
	}
	for _, line := range c.Address {
		ops = append(ops, draw.Text(draw.Box{X: x, Y: y, W: tw, H: 4}, line, draw.Font{Size: 8}, draw.Black, draw.AlignLeft))
		y += 4
	}
	contact := joinNonEmpty("  |  ", prefixed("Ph: ", c.Phone), prefixed("Email: ", c.Email), c.Website)
	if contact != "" {
		ops = append(ops, draw.Text(draw.Box{X: x, Y: y, W: tw, H: 4}, contact, draw.Font{Size: 7.5}, draw.Black, draw.AlignLeft))
	}
	return ops
}

// FooterFallback draws the registration details and membership box in w x h.
func FooterFallback(c config.CompanyConfig, w, h float64) []draw.Op {
	ops := []draw.Op{
		draw.Rect(draw.Box{W: w, H: h}, draw.Brand, 0.4),
		draw.Line(4, 2, w-4, 2, draw.Brand, 0.8),
	}

	ids := joinNonEmpty("   ", prefixed("GSTIN: ", c.GSTIN), prefixed("PAN: ", c.PAN))
	ops = append(ops,
		draw.Text(draw.Box{X: 4, Y: 4, W: w * 0.6, H: 4}, ids, draw.Font{Bold: true, Size: 8}, draw.Black, draw.AlignLeft),
		draw.Text(draw.Box{X: 4, Y: 9, W: w * 0.6, H: 4}, strings.Join(c.Address, ", "), draw.Font{Size: 7}, draw.Grey, draw.AlignLeft),
		draw.Text(draw.Box{X: 4, Y: 13.5, W: w * 0.6, H: 4},
			joinNonEmpty("  |  ", c.Phone, c.Email, c.Website), draw.Font{Size: 7}, draw.Grey, draw.AlignLeft),
	)

	if c.Membership != "" {
		box := draw.Box{X: w * 0.64, Y: 4, W: w*0.36 - 4, H: h - 8}
		ops = append(ops,
			draw.Rect(box, draw.Brand, 0.3),
			draw.TextBlock(draw.Box{X: box.X + 2, Y: box.Y + 2, W: box.W - 4, H: box.H - 4},
				c.Membership, draw.Font{Bold: true, Size: 7}, 3.2, draw.AlignCenter),
		)
	}
	return ops
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

func prefixed(prefix, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return prefix + value
}
