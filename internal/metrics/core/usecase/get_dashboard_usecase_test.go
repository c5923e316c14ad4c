package usecase_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"node-metrics-dashboard/internal/metrics/core/domain"
	"node-metrics-dashboard/internal/metrics/core/ports"
	"node-metrics-dashboard/internal/metrics/core/usecase"
	perioddomain "node-metrics-dashboard/internal/period/core/domain"
)

var testNow = time.Date(2024, 3, 10, 15, 32, 0, 0, time.UTC)

func testParser() *perioddomain.Parser {
	return perioddomain.NewParser(perioddomain.DefaultEarningsEpoch, time.UTC, func() time.Time { return testNow })
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// ------------------------------------------------------------
// SUCCESS: address, 30 days, daily densified series
// ------------------------------------------------------------

func TestGetDashboard_Address_ThirtyDays(t *testing.T) {
	reader := &fakeMetricsReader{
		QueryFn: func(ctx context.Context, q ports.MetricsQuery) (*domain.MetricsResult, error) {
			if q.Step != perioddomain.StepDay {
				t.Fatalf("expected step=day, got %s", q.Step)
			}
			return &domain.MetricsResult{
				Metrics: []domain.Metric{
					{Timestamp: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), NumBytes: 100, NumRequests: 5},
				},
				Earnings: []domain.Earning{
					{Timestamp: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), FILAmount: 1.25},
				},
				GlobalStats: &domain.GlobalStats{TotalEarnings: 1.25, TotalBandwidth: 100, TotalRetrievals: 5},
				Nodes:       []domain.NodeStateCount{{State: "active", Count: 2}},
				PerNodeMetrics: []domain.PerNodeMetric{
					{NodeID: "node-1", FILAmount: 1.25, NumBytes: 100, NumRequests: 5},
				},
			}, nil
		},
	}

	uc := usecase.NewGetDashboardUseCase(reader, testParser(), quietLogger())

	d, err := uc.Execute(context.Background(), usecase.GetDashboardInput{
		FilAddress: "f1abc",
		Period:     "30d",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Feb 9 .. Mar 10 inclusive
	if len(d.Metrics) != 31 {
		t.Fatalf("expected 31 metric points, got %d", len(d.Metrics))
	}
	if len(d.Earnings) != 31 {
		t.Fatalf("expected 31 earning points, got %d", len(d.Earnings))
	}
	if d.Overview == nil || d.Overview.NumActiveNodes != 2 || d.Overview.TotalBandwidth != 100 {
		t.Fatalf("unexpected overview: %+v", d.Overview)
	}
	if len(d.PerNodeMetrics) != 1 {
		t.Fatalf("expected per node metrics, got %d", len(d.PerNodeMetrics))
	}
	if d.Chart.Axis.Unit != perioddomain.StepDay || d.Chart.SpanGap != 24*time.Hour {
		t.Fatalf("unexpected chart props: %+v", d.Chart)
	}
}

// ------------------------------------------------------------
// SUCCESS: address + node fetched concurrently
// ------------------------------------------------------------

func TestGetDashboard_AddressAndNode(t *testing.T) {
	var mu sync.Mutex
	var queries []ports.MetricsQuery

	reader := &fakeMetricsReader{
		QueryFn: func(ctx context.Context, q ports.MetricsQuery) (*domain.MetricsResult, error) {
			mu.Lock()
			queries = append(queries, q)
			mu.Unlock()

			if q.NodeID != "" {
				return &domain.MetricsResult{
					Metrics: []domain.Metric{{Timestamp: time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC), NumRequests: 7}},
				}, nil
			}
			return &domain.MetricsResult{
				GlobalStats: &domain.GlobalStats{TotalRetrievals: 99},
			}, nil
		},
	}
	// the fake records lastQuery without locking, so wrap it
	safe := &lockedReader{inner: reader}

	uc := usecase.NewGetDashboardUseCase(safe, testParser(), quietLogger())

	d, err := uc.Execute(context.Background(), usecase.GetDashboardInput{
		FilAddress: "f1abc",
		NodeID:     "node-1",
		Period:     "Past 24 hours",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queries) != 2 {
		t.Fatalf("expected 2 upstream queries, got %d", len(queries))
	}
	if d.Overview == nil || d.Overview.TotalRetrievals != 99 {
		t.Fatalf("overview should come from the address query: %+v", d.Overview)
	}
	// 2024-03-09T15:00 .. 2024-03-10T15:00 hourly
	if len(d.Metrics) != 25 {
		t.Fatalf("expected 25 hourly points, got %d", len(d.Metrics))
	}
	if d.Metrics[23].NumRequests != 7 || d.Metrics[23].Filled {
		t.Fatalf("expected node metric at 14:00 slot, got %+v", d.Metrics[23])
	}
}

type lockedReader struct {
	mu    sync.Mutex
	inner *fakeMetricsReader
}

func (l *lockedReader) QueryMetrics(ctx context.Context, q ports.MetricsQuery) (*domain.MetricsResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.QueryMetrics(ctx, q)
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------

func TestGetDashboard_MissingIdentifier(t *testing.T) {
	reader := &fakeMetricsReader{}
	uc := usecase.NewGetDashboardUseCase(reader, testParser(), quietLogger())

	_, err := uc.Execute(context.Background(), usecase.GetDashboardInput{Period: "7d"})
	if !errors.Is(err, usecase.ErrInvalidDashboardQuery) {
		t.Fatalf("expected ErrInvalidDashboardQuery, got %v", err)
	}
	if reader.called {
		t.Fatalf("reader should not be called")
	}
}

func TestGetDashboard_InvalidRangeDoesNotFetch(t *testing.T) {
	reader := &fakeMetricsReader{}
	uc := usecase.NewGetDashboardUseCase(reader, testParser(), quietLogger())

	_, err := uc.Execute(context.Background(), usecase.GetDashboardInput{
		FilAddress: "f1abc",
		Period:     "2024-02-01 2024-01-01",
	})
	if !errors.Is(err, perioddomain.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if reader.called {
		t.Fatalf("reader must not be called for an invalid range")
	}
}

// ------------------------------------------------------------
// UPSTREAM ERROR
// ------------------------------------------------------------

func TestGetDashboard_UpstreamError(t *testing.T) {
	reader := &fakeMetricsReader{
		QueryFn: func(ctx context.Context, q ports.MetricsQuery) (*domain.MetricsResult, error) {
			return nil, errors.New("boom")
		},
	}
	uc := usecase.NewGetDashboardUseCase(reader, testParser(), quietLogger())

	_, err := uc.Execute(context.Background(), usecase.GetDashboardInput{FilAddress: "f1abc", Period: "7d"})
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

// ------------------------------------------------------------
// LAST REQUEST WINS
// ------------------------------------------------------------

func TestGetDashboard_LastRequestWins(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	reader := &fakeMetricsReader{
		QueryFn: func(ctx context.Context, q ports.MetricsQuery) (*domain.MetricsResult, error) {
			if q.Step == perioddomain.StepDay {
				// first request (30 days): block until released, ignoring cancellation
				close(firstStarted)
				<-releaseFirst
				return &domain.MetricsResult{GlobalStats: &domain.GlobalStats{TotalRetrievals: 1}}, nil
			}
			return &domain.MetricsResult{GlobalStats: &domain.GlobalStats{TotalRetrievals: 2}}, nil
		},
	}
	uc := usecase.NewGetDashboardUseCase(&lockFreeReader{reader}, testParser(), quietLogger())

	firstErr := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), usecase.GetDashboardInput{
			FilAddress: "f1abc", Period: "30d", ViewID: "view-1",
		})
		firstErr <- err
	}()
	<-firstStarted

	d, err := uc.Execute(context.Background(), usecase.GetDashboardInput{
		FilAddress: "f1abc", Period: "7d", ViewID: "view-1",
	})
	if err != nil {
		t.Fatalf("second request: unexpected error: %v", err)
	}
	if d.Overview.TotalRetrievals != 2 {
		t.Fatalf("expected second result, got %+v", d.Overview)
	}

	// the first response arrives late and must be discarded
	close(releaseFirst)
	if err := <-firstErr; !errors.Is(err, usecase.ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded for first request, got %v", err)
	}

	latest, ok := uc.Latest("view-1")
	if !ok || latest.Overview.TotalRetrievals != 2 {
		t.Fatalf("visible state must hold the second result, got %+v", latest)
	}
}

// lockFreeReader forwards without touching the fake's bookkeeping, which
// would race between the two concurrent requests.
type lockFreeReader struct {
	inner *fakeMetricsReader
}

func (l *lockFreeReader) QueryMetrics(ctx context.Context, q ports.MetricsQuery) (*domain.MetricsResult, error) {
	return l.inner.QueryFn(ctx, q)
}
