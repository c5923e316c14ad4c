package domain

import (
	"iter"
	"time"
)

type Unit string

const (
	UnitHour  Unit = "hour"
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
	UnitYear  Unit = "year"
)

func StartOfToday(now time.Time) time.Time {
	return FloorDay(now)
}

// FloorDay returns UTC midnight of the day containing t.
func FloorDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func EndOfDay(t time.Time) time.Time {
	return FloorDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// PastRange ends at now (UTC, truncated to the minute) and starts count units
// earlier. Months and years are calendar steps, so the day of month can move
// when the target month is shorter.
func PastRange(now time.Time, unit Unit, count int) DateRange {
	if count < 1 {
		count = 1
	}
	end := now.UTC().Truncate(time.Minute)

	var start time.Time
	switch unit {
	case UnitHour:
		start = end.Add(-time.Duration(count) * time.Hour)
	case UnitWeek:
		start = end.AddDate(0, 0, -7*count)
	case UnitMonth:
		start = end.AddDate(0, -count, 0)
	case UnitYear:
		start = end.AddDate(-count, 0, 0)
	default:
		start = end.AddDate(0, 0, -count)
	}

	return DateRange{Start: start, End: end}
}

// DayInterval yields every UTC midnight from start to end inclusive.
// Both bounds must already be floored to UTC midnight.
func DayInterval(start, end time.Time) iter.Seq[time.Time] {
	return Interval(start, end, StepDay)
}

// Interval yields start, start+step, ... up to and including end.
func Interval(start, end time.Time, step Step) iter.Seq[time.Time] {
	start, end = start.UTC(), end.UTC()
	return func(yield func(time.Time) bool) {
		for t := start; !t.After(end); t = advance(t, step) {
			if !yield(t) {
				return
			}
		}
	}
}

func advance(t time.Time, step Step) time.Time {
	if step == StepHour {
		return t.Add(time.Hour)
	}
	return t.AddDate(0, 0, 1)
}

// NthWeekdayOfMonth returns the nth occurrence (1-based) of weekday in the
// UTC month containing now.
func NthWeekdayOfMonth(now time.Time, weekday time.Weekday, nth int) time.Time {
	if nth < 1 {
		nth = 1
	}
	y, m, _ := now.UTC().Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)

	offset := int(weekday) - int(first.Weekday())
	if offset < 0 {
		offset += 7
	}
	return first.AddDate(0, 0, offset+7*(nth-1))
}
