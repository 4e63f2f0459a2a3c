package amount

import "strings"

const (
	crore    = 10000000
	lakh     = 100000
	thousand = 1000
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
}

var teens = []string{
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// NumberToWords spells a rupee amount using Indian grouping, e.g.
//
//	150000   -> "One Lakh Fifty Thousand Only"
//	12345678 -> "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Only"
//
// Zero is "Zero" with no suffix.
func NumberToWords(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + NumberToWords(-n)
	}
	return indianWords(n) + " Only"
}

func indianWords(n int64) string {
	var parts []string

	if c := n / crore; c > 0 {
		// groups above 999 crore are spelled recursively ("One Thousand Crore")
		if c > 999 {
			parts = append(parts, indianWords(c)+" Crore")
		} else {
			parts = append(parts, hundreds(int(c))+" Crore")
		}
		n %= crore
	}
	if l := n / lakh; l > 0 {
		parts = append(parts, hundreds(int(l))+" Lakh")
		n %= lakh
	}
	if t := n / thousand; t > 0 {
		parts = append(parts, hundreds(int(t))+" Thousand")
		n %= thousand
	}
	if n > 0 {
		parts = append(parts, hundreds(int(n)))
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

// hundreds converts 1-999.
func hundreds(n int) string {
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, ones[h]+" Hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		parts = append(parts, tens[n/10])
		if n%10 > 0 {
			parts = append(parts, ones[n%10])
		}
	case n >= 10:
		parts = append(parts, teens[n-10])
	case n > 0:
		parts = append(parts, ones[n])
	}
	return strings.Join(parts, " ")
}
