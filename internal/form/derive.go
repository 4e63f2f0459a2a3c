package form

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"adinvoice/internal/amount"
)

// DaysPerMonth is the billing month used for pro-rating monthly rates.
const DaysPerMonth = 30

const displayDateLayout = "02/01/2006"

// inputDateLayouts are tried in order when reading a start date.
var inputDateLayouts = []string{"2006-01-02", displayDateLayout}

// CalculatePeriodFromDates returns "DD/MM/YYYY to DD/MM/YYYY" for an inclusive
// range of durationDays starting at start. Invalid or missing input yields "".
func CalculatePeriodFromDates(start, durationDays string) string {
	from, ok := parseDate(start)
	if !ok {
		return ""
	}
	days, ok := parseDays(durationDays)
	if !ok {
		return ""
	}
	to := from.AddDate(0, 0, days-1)
	return from.Format(displayDateLayout) + " to " + to.Format(displayDateLayout)
}

// CalculateAmountFromDuration pro-rates a monthly rate over durationDays using
// 30-day months: whole months at the full rate, leftover days at rate/30.
// Invalid or missing input yields 0.
func CalculateAmountFromDuration(ratePerMonth, durationDays string) int64 {
	rate, ok := amount.Parse(ratePerMonth)
	if !ok {
		return 0
	}
	days, ok := parseDays(durationDays)
	if !ok {
		return 0
	}

	months := decimal.NewFromInt(int64(days / DaysPerMonth))
	rest := decimal.NewFromInt(int64(days % DaysPerMonth))
	perDay := rate.Div(decimal.NewFromInt(DaysPerMonth))

	total := rate.Mul(months).Add(perDay.Mul(rest))
	return total.Round(0).IntPart()
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range inputDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseDays(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
