package ports

import (
	"context"

	"node-metrics-dashboard/internal/nodes/core/domain"
)

type StatsReaderPort interface {
	// FetchStats returns the raw node list. token may be empty.
	FetchStats(ctx context.Context, token string) (*domain.Stats, error)
	// CheckToken reports whether the stats service accepts token.
	CheckToken(ctx context.Context, token string) (bool, error)
}
