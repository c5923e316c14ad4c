package domain

import (
	"strings"
	"time"
)

const monthLabelLayout = "January 2006"

// DefaultEarningsEpoch is the first month earnings were reported.
var DefaultEarningsEpoch = time.Date(2022, time.November, 1, 0, 0, 0, 0, time.UTC)

func firstOfMonth(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func MonthLabel(t time.Time) string {
	return firstOfMonth(t).Format(monthLabelLayout)
}

// EarningsPeriods lists every month from the epoch month to the month of now,
// newest first.
func EarningsPeriods(epoch, now time.Time) []EarningsPeriod {
	first := firstOfMonth(epoch)
	last := firstOfMonth(now)
	if last.Before(first) {
		return nil
	}

	var out []EarningsPeriod
	for m := last; !m.Before(first); m = m.AddDate(0, -1, 0) {
		out = append(out, EarningsPeriod{Label: m.Format(monthLabelLayout), Month: m})
	}
	return out
}

// MonthRange covers the calendar month of t: [first of month, first of next month].
func MonthRange(t time.Time) DateRange {
	start := firstOfMonth(t)
	return DateRange{Start: start, End: start.AddDate(0, 1, 0)}
}

func parseMonthLabel(s string) (time.Time, bool) {
	m, err := time.Parse(monthLabelLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return m, true
}
