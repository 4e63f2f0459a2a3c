package layout

import (
	"strings"
	"unicode/utf8"

	"adinvoice/internal/draw"
)

// Measurer breaks text into lines that fit a width. The PDF renderer supplies
// one backed by real font metrics.
type Measurer interface {
	SplitText(text string, font draw.Font, width float64) []string
}

const pointToMM = 25.4 / 72

// EstimateMeasurer approximates Helvetica with a fixed average glyph width.
// It is deterministic and needs no font files, which makes it suitable for tests.
type EstimateMeasurer struct{}

func (EstimateMeasurer) charWidth(f draw.Font) float64 {
	em := 0.5
	if f.Bold {
		em = 0.55
	}
	return f.Size * pointToMM * em
}

// SplitText wraps on spaces and hard-breaks words longer than width.
func (m EstimateMeasurer) SplitText(text string, font draw.Font, width float64) []string {
	perLine := int(width / m.charWidth(font))
	if perLine < 1 {
		perLine = 1
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var cur string
		for _, word := range strings.Fields(para) {
			for utf8.RuneCountInString(word) > perLine {
				if cur != "" {
					lines = append(lines, cur)
					cur = ""
				}
				r := []rune(word)
				lines = append(lines, string(r[:perLine]))
				word = string(r[perLine:])
			}
			switch {
			case cur == "":
				cur = word
			case utf8.RuneCountInString(cur)+1+utf8.RuneCountInString(word) <= perLine:
				cur += " " + word
			default:
				lines = append(lines, cur)
				cur = word
			}
		}
		lines = append(lines, cur)
	}
	return lines
}

// textHeight returns the height of text wrapped to width.
func textHeight(m Measurer, text string, f draw.Font, width float64) float64 {
	if text == "" {
		return 0
	}
	return float64(len(m.SplitText(text, f, width))) * LineHeight(f.Size)
}
