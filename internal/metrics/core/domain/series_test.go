package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perioddomain "node-metrics-dashboard/internal/period/core/domain"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestFillEarnings_Scenario(t *testing.T) {
	interval := perioddomain.DayInterval(day(1), day(5))
	sparse := []Earning{
		{Timestamp: day(1), FILAmount: 5},
		{Timestamp: day(3), FILAmount: 9},
	}

	got := FillEarnings(interval, sparse)

	require.Len(t, got, 5)
	assert.Equal(t, Earning{Timestamp: day(1), FILAmount: 5}, got[0])
	assert.Equal(t, Earning{Timestamp: day(2), Filled: true}, got[1])
	assert.Equal(t, Earning{Timestamp: day(3), FILAmount: 9}, got[2])
	assert.Equal(t, Earning{Timestamp: day(4), Filled: true}, got[3])
	assert.Equal(t, Earning{Timestamp: day(5), Filled: true}, got[4])
}

func TestFillGaps_Density(t *testing.T) {
	interval := perioddomain.DayInterval(day(1), day(31))

	// every third day present
	var sparse []Metric
	for d := 1; d <= 31; d += 3 {
		sparse = append(sparse, Metric{Timestamp: day(d), NumBytes: int64(d)})
	}

	got := FillMetrics(interval, sparse)

	require.Len(t, got, 31)
	for i, m := range got {
		assert.True(t, m.Timestamp.Equal(day(i+1)))
		if (i)%3 == 0 {
			assert.False(t, m.Filled)
			assert.Equal(t, int64(i+1), m.NumBytes)
		} else {
			assert.True(t, m.Filled)
			assert.Zero(t, m.NumBytes)
		}
	}
}

func TestFillGaps_EmptyInputs(t *testing.T) {
	assert.Len(t, FillMetrics(perioddomain.DayInterval(day(1), day(3)), nil), 3)
	assert.Empty(t, FillMetrics(perioddomain.DayInterval(day(3), day(1)), []Metric{{Timestamp: day(2)}}))
}

func TestFillGaps_MatchesAcrossZones(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// same instant as Jan 2 UTC midnight
	sparse := []Metric{{Timestamp: time.Date(2024, 1, 2, 9, 0, 0, 0, tokyo), NumRequests: 4}}

	got := FillMetrics(perioddomain.DayInterval(day(1), day(3)), sparse)

	require.Len(t, got, 3)
	assert.Equal(t, int64(4), got[1].NumRequests)
	assert.False(t, got[1].Filled)
}

func TestFillGaps_HourlyInterval(t *testing.T) {
	start := day(1)
	sparse := []Metric{{Timestamp: start.Add(5 * time.Hour), NumRequests: 1}}

	got := FillMetrics(perioddomain.Interval(start, start.Add(23*time.Hour), perioddomain.StepHour), sparse)

	require.Len(t, got, 24)
	assert.Equal(t, int64(1), got[5].NumRequests)
}

func TestSummarize(t *testing.T) {
	res := &MetricsResult{
		Metrics:  []Metric{{NumBytes: 10, NumRequests: 1}, {NumBytes: 20, NumRequests: 2}},
		Earnings: []Earning{{FILAmount: 1.5}, {FILAmount: 2}},
		Nodes: []NodeStateCount{
			{State: "active", Count: 3},
			{State: "inactive", Count: 1},
			{State: "down", Count: 2},
		},
	}

	o := Summarize("f01234", res)
	assert.Equal(t, 3.5, o.TotalEarnings)
	assert.Equal(t, int64(30), o.TotalBandwidth)
	assert.Equal(t, int64(3), o.TotalRetrievals)
	assert.Equal(t, 3, o.NumActiveNodes)
	assert.Equal(t, 1, o.NumInactiveNodes)
	assert.Equal(t, 2, o.NumDownNodes)

	res.GlobalStats = &GlobalStats{TotalEarnings: 100, TotalBandwidth: 200, TotalRetrievals: 300}
	o = Summarize("f01234", res)
	assert.Equal(t, 100.0, o.TotalEarnings)
	assert.Equal(t, int64(200), o.TotalBandwidth)
	assert.Equal(t, int64(300), o.TotalRetrievals)
}
