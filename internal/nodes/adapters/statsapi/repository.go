package statsapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"node-metrics-dashboard/internal/nodes/core/domain"
	"node-metrics-dashboard/internal/nodes/core/ports"
	"node-metrics-dashboard/internal/upstream"
)

// StatsRepository reads the node list from the stats service.
type StatsRepository struct {
	client *upstream.Client
}

var _ ports.StatsReaderPort = (*StatsRepository)(nil)

func NewStatsRepository(client *upstream.Client) *StatsRepository {
	return &StatsRepository{client: client}
}

func authHeader(token string) http.Header {
	if token == "" {
		return nil
	}
	return http.Header{"Authorization": {token}}
}

func (r *StatsRepository) FetchStats(ctx context.Context, token string) (*domain.Stats, error) {
	var resp statsResponse
	q := url.Values{"sortColumn": {"id"}}
	if err := r.client.GetJSON(ctx, "/stats", q, authHeader(token), &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

// CheckToken is false on 401; other failures are returned as errors.
func (r *StatsRepository) CheckToken(ctx context.Context, token string) (bool, error) {
	err := r.client.GetJSON(ctx, "/login", nil, authHeader(token), nil)
	if err == nil {
		return true, nil
	}

	var fe *upstream.FetchError
	if errors.As(err, &fe) && fe.Status == http.StatusUnauthorized {
		return false, nil
	}
	return false, err
}
