package gst

import (
	"regexp"
	"strings"
)

var gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// ValidGSTIN reports whether s has the 15-character GSTIN shape.
// It does not verify the check digit.
func ValidGSTIN(s string) bool {
	return gstinPattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// PANFromGSTIN returns the embedded PAN (characters 3-12), or "" for short input.
func PANFromGSTIN(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 12 {
		return ""
	}
	return strings.ToUpper(s[2:12])
}
