package domain

import (
	"iter"
	"time"
)

// FillGaps walks interval and points in lockstep and returns one record per
// interval slot. Slots with no point get filler(slot). Both inputs must be
// ascending; instants are compared at millisecond precision.
func FillGaps[T any](interval iter.Seq[time.Time], points []T, dateOf func(T) time.Time, filler func(time.Time) T) []T {
	var out []T
	i := 0

	for slot := range interval {
		ms := slot.UnixMilli()

		// points that fall before the slot can never match a later one
		for i < len(points) && dateOf(points[i]).UnixMilli() < ms {
			i++
		}

		if i < len(points) && dateOf(points[i]).UnixMilli() == ms {
			out = append(out, points[i])
			i++
			continue
		}
		out = append(out, filler(slot))
	}

	return out
}

func FillMetrics(interval iter.Seq[time.Time], metrics []Metric) []Metric {
	return FillGaps(interval, metrics,
		func(m Metric) time.Time { return m.Timestamp },
		func(t time.Time) Metric { return Metric{Timestamp: t, Filled: true} },
	)
}

func FillEarnings(interval iter.Seq[time.Time], earnings []Earning) []Earning {
	return FillGaps(interval, earnings,
		func(e Earning) time.Time { return e.Timestamp },
		func(t time.Time) Earning { return Earning{Timestamp: t, Filled: true} },
	)
}

// Summarize totals a result. The service's global stats win when present.
func Summarize(address string, res *MetricsResult) *Overview {
	o := &Overview{Address: address}

	if res.GlobalStats != nil {
		o.TotalEarnings = res.GlobalStats.TotalEarnings
		o.TotalBandwidth = res.GlobalStats.TotalBandwidth
		o.TotalRetrievals = res.GlobalStats.TotalRetrievals
	} else {
		for _, e := range res.Earnings {
			o.TotalEarnings += e.FILAmount
		}
		for _, m := range res.Metrics {
			o.TotalBandwidth += m.NumBytes
			o.TotalRetrievals += m.NumRequests
		}
	}

	for _, n := range res.Nodes {
		switch n.State {
		case "active":
			o.NumActiveNodes += n.Count
		case "inactive":
			o.NumInactiveNodes += n.Count
		case "down":
			o.NumDownNodes += n.Count
		}
	}

	return o
}
