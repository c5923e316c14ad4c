package usecase

import (
	"time"

	"node-metrics-dashboard/internal/period/core/domain"
)

type Catalog struct {
	Tokens   []domain.Token
	Default  domain.Token
	Earnings []domain.EarningsPeriod
	// PayoutDate is the day this month's earnings are paid out.
	PayoutDate time.Time
}

type Resolved struct {
	// Canonical is the value to persist in ?period= for this selection.
	Canonical  string
	Resolution domain.Resolution
	Chart      domain.ChartProps
}

type PeriodUseCase struct {
	parser        *domain.Parser
	payoutWeekday time.Weekday
	payoutNth     int
}

func NewPeriodUseCase(parser *domain.Parser, payoutWeekday time.Weekday, payoutNth int) *PeriodUseCase {
	return &PeriodUseCase{parser: parser, payoutWeekday: payoutWeekday, payoutNth: payoutNth}
}

func (uc *PeriodUseCase) Catalog() Catalog {
	now := uc.parser.Now()
	return Catalog{
		Tokens:     domain.Tokens,
		Default:    domain.DefaultToken(),
		Earnings:   domain.EarningsPeriods(uc.parser.Epoch, now),
		PayoutDate: domain.NthWeekdayOfMonth(now, uc.payoutWeekday, uc.payoutNth),
	}
}

// Resolve parses period and derives the chart props every chart on the page
// shares.
func (uc *PeriodUseCase) Resolve(period string) (*Resolved, error) {
	res, err := uc.parser.Parse(period)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Canonical:  res.Canonical(),
		Resolution: res,
		Chart:      domain.ResolveChart(res),
	}, nil
}
