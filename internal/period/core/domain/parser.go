package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var customRangeRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}) (\d{4}-\d{2}-\d{2})$`)

// Parser turns period descriptors into date ranges.
type Parser struct {
	// Location holds the calendar used for literal ranges. Dates are built
	// from their parts here, never shifted through UTC.
	Location *time.Location
	Epoch    time.Time
	Now      func() time.Time
}

func NewParser(epoch time.Time, loc *time.Location, now func() time.Time) *Parser {
	if loc == nil {
		loc = time.Local
	}
	if epoch.IsZero() {
		epoch = DefaultEarningsEpoch
	}
	if now == nil {
		now = time.Now
	}
	return &Parser{Location: loc, Epoch: epoch, Now: now}
}

// Parse resolves s. Order: token table, earnings month, literal range,
// then the default 7 day window. Only a malformed literal range errors.
func (p *Parser) Parse(s string) (Resolution, error) {
	now := p.Now()

	if t, ok := LookupToken(s); ok {
		return pastDays(now, t.Days), nil
	}

	if month, ok := parseMonthLabel(s); ok {
		return p.earnings(now, month), nil
	}

	if customRangeRe.MatchString(strings.TrimSpace(s)) {
		r, err := p.ParseDateRange(s)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Kind: KindDateRange, Range: r}, nil
	}

	return pastDays(now, DefaultTokenDays), nil
}

func pastDays(now time.Time, days int) Resolution {
	return Resolution{
		Kind:  KindPastNUnits,
		Days:  days,
		Range: PastRange(now, UnitDay, days),
	}
}

func (p *Parser) earnings(now, month time.Time) Resolution {
	periods := EarningsPeriods(p.Epoch, now)
	pick := firstOfMonth(p.Epoch)
	for _, ep := range periods {
		if ep.Month.Equal(firstOfMonth(month)) {
			pick = ep.Month
			break
		}
	}
	return Resolution{Kind: KindEarnings, Range: MonthRange(pick)}
}

// ParseDateRange parses "YYYY-MM-DD YYYY-MM-DD".
func (p *Parser) ParseDateRange(s string) (DateRange, error) {
	m := customRangeRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return DateRange{}, fmt.Errorf("%w: %q does not match YYYY-MM-DD YYYY-MM-DD", ErrInvalidRange, s)
	}

	start, err := time.ParseInLocation(dateLayout, m[1], p.Location)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start date: %v", ErrInvalidRange, err)
	}
	end, err := time.ParseInLocation(dateLayout, m[2], p.Location)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end date: %v", ErrInvalidRange, err)
	}
	if start.After(end) {
		return DateRange{}, fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange, m[1], m[2])
	}

	return DateRange{Start: start, End: end}, nil
}

// FormatDateRange is the inverse of ParseDateRange.
func FormatDateRange(r DateRange) string {
	return r.Start.Format(dateLayout) + " " + r.End.Format(dateLayout)
}

// Canonical is the selector string that parses back to r, suitable for
// persisting in ?period=.
func (r Resolution) Canonical() string {
	switch r.Kind {
	case KindEarnings:
		return MonthLabel(r.Range.Start)
	case KindDateRange:
		return FormatDateRange(r.Range)
	default:
		if t, ok := TokenByDays(r.Days); ok {
			return t.Query
		}
		return DefaultToken().Query
	}
}
