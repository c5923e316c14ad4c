package usecase_test

import (
	"errors"
	"testing"
	"time"

	"node-metrics-dashboard/internal/period/core/domain"
	"node-metrics-dashboard/internal/period/core/usecase"
)

func newUseCase() *usecase.PeriodUseCase {
	now := time.Date(2024, 3, 10, 15, 32, 0, 0, time.UTC)
	p := domain.NewParser(domain.DefaultEarningsEpoch, time.UTC, func() time.Time { return now })
	return usecase.NewPeriodUseCase(p, time.Tuesday, 2)
}

func TestCatalog(t *testing.T) {
	c := newUseCase().Catalog()

	if len(c.Tokens) != len(domain.Tokens) {
		t.Fatalf("expected %d tokens, got %d", len(domain.Tokens), len(c.Tokens))
	}
	if c.Default.Days != 7 {
		t.Fatalf("expected default of 7 days, got %d", c.Default.Days)
	}
	// Nov 2022 .. Mar 2024
	if len(c.Earnings) != 17 {
		t.Fatalf("expected 17 earnings months, got %d", len(c.Earnings))
	}
	if c.Earnings[0].Label != "March 2024" {
		t.Fatalf("expected newest month first, got %s", c.Earnings[0].Label)
	}
	if !c.PayoutDate.Equal(time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected payout date %v", c.PayoutDate)
	}
}

func TestResolve_Canonical(t *testing.T) {
	uc := newUseCase()

	tests := map[string]string{
		"Past 30 days":          "30d",
		"7 Days":                "7d",
		"unknown":               "7d",
		"February 2024":         "February 2024",
		"2024-01-01 2024-01-31": "2024-01-01 2024-01-31",
	}

	for in, want := range tests {
		r, err := uc.Resolve(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if r.Canonical != want {
			t.Fatalf("%q: expected canonical %q, got %q", in, want, r.Canonical)
		}
	}
}

func TestResolve_ChartProps(t *testing.T) {
	r, err := newUseCase().Resolve("24h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Chart.Step != domain.StepHour || r.Chart.Axis.Unit != domain.StepHour {
		t.Fatalf("expected hourly chart, got %+v", r.Chart)
	}
	if !r.Chart.Axis.Min.Equal(r.Resolution.Range.Start) || !r.Chart.Axis.Max.Equal(r.Resolution.Range.End) {
		t.Fatalf("axis must mirror the range")
	}
}

func TestResolve_InvalidRange(t *testing.T) {
	_, err := newUseCase().Resolve("2024-02-01 2024-01-01")
	if !errors.Is(err, domain.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}
