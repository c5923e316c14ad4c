package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedParser(t *testing.T, now string) *Parser {
	t.Helper()
	ts := mustTime(t, now)
	return NewParser(DefaultEarningsEpoch, time.UTC, func() time.Time { return ts })
}

func TestParse_Tokens(t *testing.T) {
	p := fixedParser(t, "2024-03-10T15:32:00Z")

	for _, tok := range Tokens {
		for _, s := range append([]string{tok.Label, tok.Query}, tok.Aliases...) {
			res, err := p.Parse(s)
			require.NoError(t, err, s)
			assert.Equal(t, KindPastNUnits, res.Kind, s)
			assert.Equal(t, tok.Days, res.Days, s)
			assert.False(t, res.Range.Start.After(res.Range.End), s)
			assert.Equal(t, mustTime(t, "2024-03-10T15:32:00Z"), res.Range.End)
		}
	}
}

func TestParse_UnknownTokenDefaultsToSevenDays(t *testing.T) {
	p := fixedParser(t, "2024-03-10T15:32:00Z")

	for _, s := range []string{"", "6 Months", "garbage", "Past 2 days"} {
		res, err := p.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, KindPastNUnits, res.Kind)
		assert.Equal(t, 7, res.Days)
		assert.Equal(t, mustTime(t, "2024-03-03T15:32:00Z"), res.Range.Start)
	}
}

func TestParse_EarningsMonth(t *testing.T) {
	p := fixedParser(t, "2024-03-10T15:32:00Z")

	res, err := p.Parse("February 2024")
	require.NoError(t, err)

	assert.Equal(t, KindEarnings, res.Kind)
	assert.Equal(t, mustTime(t, "2024-02-01T00:00:00Z"), res.Range.Start)
	assert.Equal(t, mustTime(t, "2024-03-01T00:00:00Z"), res.Range.End)
}

func TestParse_EarningsMonthOutsideListFallsBackToEarliest(t *testing.T) {
	p := fixedParser(t, "2024-03-10T15:32:00Z")

	for _, s := range []string{"January 2021", "December 2030"} {
		res, err := p.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, KindEarnings, res.Kind)
		assert.Equal(t, mustTime(t, "2022-11-01T00:00:00Z"), res.Range.Start)
		assert.Equal(t, mustTime(t, "2022-12-01T00:00:00Z"), res.Range.End)
	}
}

func TestParse_LiteralRange(t *testing.T) {
	p := fixedParser(t, "2024-03-10T15:32:00Z")

	res, err := p.Parse("2024-01-01 2024-01-31")
	require.NoError(t, err)

	assert.Equal(t, KindDateRange, res.Kind)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), res.Range.Start)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), res.Range.End)
}

func TestParse_InvalidLiteralRange(t *testing.T) {
	p := fixedParser(t, "2024-03-10T15:32:00Z")

	for _, s := range []string{"2024-02-01 2024-01-01", "2024-13-01 2024-12-31", "2024-02-30 2024-03-01"} {
		_, err := p.Parse(s)
		assert.ErrorIs(t, err, ErrInvalidRange, s)
	}
}

func TestParseDateRange_LocalDateParts(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	p := NewParser(DefaultEarningsEpoch, loc, nil)

	r, err := p.ParseDateRange("2024-01-01 2024-01-31")
	require.NoError(t, err)

	y, m, d := r.Start.Date()
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.January, m)
	assert.Equal(t, 1, d)
	assert.Equal(t, 0, r.Start.Hour())
	assert.Equal(t, loc, r.Start.Location())
}

func TestDateRange_RoundTrip(t *testing.T) {
	p := fixedParser(t, "2024-03-10T15:32:00Z")

	ranges := []DateRange{
		{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Start: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{Start: time.Date(1999, 6, 15, 0, 0, 0, 0, time.UTC), End: time.Date(2030, 9, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, r := range ranges {
		got, err := p.ParseDateRange(FormatDateRange(r))
		require.NoError(t, err)
		if diff := cmp.Diff(r, got); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestEarningsPeriods(t *testing.T) {
	periods := EarningsPeriods(DefaultEarningsEpoch, mustTime(t, "2023-02-15T00:00:00Z"))

	labels := make([]string, 0, len(periods))
	for _, p := range periods {
		labels = append(labels, p.Label)
	}

	assert.Equal(t, []string{"February 2023", "January 2023", "December 2022", "November 2022"}, labels)
	assert.Nil(t, EarningsPeriods(DefaultEarningsEpoch, mustTime(t, "2022-01-01T00:00:00Z")))
}

func TestValidateTokens(t *testing.T) {
	require.NoError(t, ValidateTokens(fixedParser(t, "2024-03-10T15:32:00Z")))
}
