package domain

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("invalid date range")

// DateRange is always Start <= End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Kind tells which parser rule produced a Resolution.
type Kind string

const (
	KindPastNUnits Kind = "past_n_units"
	KindEarnings   Kind = "earnings"
	KindDateRange  Kind = "date_range"
)

// Step is the aggregation granularity requested from the metrics service.
type Step string

const (
	StepHour Step = "hour"
	StepDay  Step = "day"
)

func (s Step) Duration() time.Duration {
	if s == StepHour {
		return time.Hour
	}
	return 24 * time.Hour
}

func (s Step) Valid() bool {
	return s == StepHour || s == StepDay
}

type Resolution struct {
	Kind  Kind
	Days  int // PastNUnits only
	Range DateRange
}

// Axis mirrors the resolved range for chart rendering.
type Axis struct {
	Unit Step
	Min  time.Time
	Max  time.Time
}

type ChartProps struct {
	Step    Step
	Axis    Axis
	SpanGap time.Duration
}

type EarningsPeriod struct {
	Label string
	Month time.Time // first of month, UTC
}
