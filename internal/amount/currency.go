package amount

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Group formats n with en-IN digit grouping: the last three digits, then pairs.
// 1234567 -> "12,34,567".
func Group(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return sign + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	if lead := len(head) % 2; lead > 0 {
		groups = append(groups, head[:lead])
		head = head[lead:]
	}
	for len(head) > 0 {
		groups = append(groups, head[:2])
		head = head[2:]
	}
	groups = append(groups, tail)
	return sign + strings.Join(groups, ",")
}

// FormatCurrency renders a whole-rupee table value. Zero renders as "" so empty
// cells stay blank; callers that must show an explicit zero use Group(0).
func FormatCurrency(a float64) string {
	r := math.Round(a)
	if r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return ""
	}
	return Group(int64(r))
}

// FormatText formats a free-text cell: numeric text is grouped, anything else is kept as typed.
func FormatText(s string) string {
	d, ok := Parse(s)
	if !ok {
		return strings.TrimSpace(s)
	}
	f, _ := d.Float64()
	return FormatCurrency(f)
}

var amountNoise = strings.NewReplacer(",", "", " ", "", "₹", "", "Rs.", "", "Rs", "", "/-", "")

// Parse reads a user-typed amount ("12,500", "Rs. 4000/-"). It reports false for
// anything that is not a plain number after the noise is stripped.
func Parse(s string) (decimal.Decimal, bool) {
	clean := amountNoise.Replace(strings.TrimSpace(s))
	if clean == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
