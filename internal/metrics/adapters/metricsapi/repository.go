package metricsapi

import (
	"context"

	"node-metrics-dashboard/internal/metrics/core/domain"
	"node-metrics-dashboard/internal/metrics/core/ports"
	"node-metrics-dashboard/internal/upstream"
)

// MetricsRepository reads metrics from the remote metrics service.
type MetricsRepository struct {
	client *upstream.Client
}

var _ ports.MetricsReaderPort = (*MetricsRepository)(nil)

func NewMetricsRepository(client *upstream.Client) *MetricsRepository {
	return &MetricsRepository{client: client}
}

func (r *MetricsRepository) QueryMetrics(ctx context.Context, q ports.MetricsQuery) (*domain.MetricsResult, error) {
	params, err := EncodeQuery(q)
	if err != nil {
		return nil, err
	}

	var resp metricsResponse
	if err := r.client.GetJSON(ctx, "", params, nil, &resp); err != nil {
		return nil, err
	}

	return toDomain(resp), nil
}

func toDomain(resp metricsResponse) *domain.MetricsResult {
	res := &domain.MetricsResult{
		Metrics:        make([]domain.Metric, 0, len(resp.Metrics)),
		Earnings:       make([]domain.Earning, 0, len(resp.Earnings)),
		Nodes:          make([]domain.NodeStateCount, 0, len(resp.Nodes)),
		PerNodeMetrics: make([]domain.PerNodeMetric, 0, len(resp.PerNodeMetrics)),
	}

	for _, m := range resp.Metrics {
		res.Metrics = append(res.Metrics, domain.Metric{
			Timestamp:   m.TimeStamp.UTC(),
			NumBytes:    m.NumBytes,
			NumRequests: m.NumRequests,
		})
	}
	for _, e := range resp.Earnings {
		res.Earnings = append(res.Earnings, domain.Earning{
			Timestamp: e.Timestamp.UTC(),
			FILAmount: e.FILAmount,
		})
	}
	if resp.GlobalStats != nil {
		res.GlobalStats = &domain.GlobalStats{
			TotalEarnings:   resp.GlobalStats.TotalEarnings,
			TotalBandwidth:  resp.GlobalStats.TotalBandwidth,
			TotalRetrievals: resp.GlobalStats.TotalRetrievals,
		}
	}
	for _, n := range resp.Nodes {
		res.Nodes = append(res.Nodes, domain.NodeStateCount{State: n.State, Count: n.Count})
	}
	for _, p := range resp.PerNodeMetrics {
		res.PerNodeMetrics = append(res.PerNodeMetrics, domain.PerNodeMetric{
			NodeID:       p.NodeID,
			FILAmount:    p.FILAmount,
			NumBytes:     p.NumBytes,
			NumRequests:  p.NumRequests,
			PayoutStatus: p.PayoutStatus,
		})
	}

	return res
}
