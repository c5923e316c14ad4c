package ports

import (
	"context"
	"time"

	"node-metrics-dashboard/internal/metrics/core/domain"
	perioddomain "node-metrics-dashboard/internal/period/core/domain"
)

// MetricsQuery selects either an address or a single node.
type MetricsQuery struct {
	FilAddress string
	NodeID     string
	Start      time.Time
	End        time.Time
	Step       perioddomain.Step
}

type MetricsReaderPort interface {
	QueryMetrics(ctx context.Context, q MetricsQuery) (*domain.MetricsResult, error)
}

type PeriodResolverPort interface {
	Parse(period string) (perioddomain.Resolution, error)
}
