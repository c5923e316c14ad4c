package fiber

import (
	"github.com/dustin/go-humanize"

	"node-metrics-dashboard/internal/metrics/core/domain"
	periodhttp "node-metrics-dashboard/internal/period/adapters/http/fiber"
)

type MetricResponse struct {
	Timestamp   int64 `json:"timestamp"`
	NumBytes    int64 `json:"numBytes"`
	NumRequests int64 `json:"numRequests"`
	Filled      bool  `json:"filled,omitempty"`
}

type EarningResponse struct {
	Timestamp int64   `json:"timestamp"`
	FILAmount float64 `json:"filAmount"`
	Filled    bool    `json:"filled,omitempty"`
}

type GlobalStatsResponse struct {
	TotalEarnings   float64 `json:"totalEarnings"`
	TotalBandwidth  int64   `json:"totalBandwidth"`
	TotalRetrievals int64   `json:"totalRetrievals"`
}

type NodeStateResponse struct {
	State string `json:"state" example:"active"`
	Count int    `json:"count"`
}

type PerNodeMetricResponse struct {
	NodeID       string  `json:"nodeId"`
	FILAmount    float64 `json:"filAmount"`
	NumBytes     int64   `json:"numBytes"`
	NumRequests  int64   `json:"numRequests"`
	PayoutStatus string  `json:"payoutStatus" example:"valid"`
}

// MetricsResponse mirrors what the metrics service sent, without gap filling.
type MetricsResponse struct {
	Metrics        []MetricResponse        `json:"metrics"`
	Earnings       []EarningResponse       `json:"earnings"`
	GlobalStats    *GlobalStatsResponse    `json:"globalStats,omitempty"`
	Nodes          []NodeStateResponse     `json:"nodes,omitempty"`
	PerNodeMetrics []PerNodeMetricResponse `json:"perNodeMetrics,omitempty"`
}

type OverviewResponse struct {
	Address          string  `json:"address"`
	TotalEarnings    float64 `json:"totalEarnings"`
	TotalBandwidth   int64   `json:"totalBandwidth"`
	BandwidthHuman   string  `json:"bandwidthHuman" example:"1.2 TB"`
	TotalRetrievals  int64   `json:"totalRetrievals"`
	RetrievalsHuman  string  `json:"retrievalsHuman" example:"1,204,332"`
	NumActiveNodes   int     `json:"numActiveNodes"`
	NumInactiveNodes int     `json:"numInactiveNodes"`
	NumDownNodes     int     `json:"numDownNodes"`
}

type DashboardResponse struct {
	ViewID         string                     `json:"viewId,omitempty"`
	FilAddress     string                     `json:"filAddress,omitempty"`
	NodeID         string                     `json:"nodeId,omitempty"`
	Period         periodhttp.ResolveResponse `json:"period"`
	Overview       *OverviewResponse          `json:"overview,omitempty"`
	Metrics        []MetricResponse           `json:"metrics"`
	Earnings       []EarningResponse          `json:"earnings"`
	PerNodeMetrics []PerNodeMetricResponse    `json:"perNodeMetrics,omitempty"`
	GeneratedAt    int64                      `json:"generatedAt"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"upstream_error"`
	Message string `json:"message" example:"Address not found"`
}

func toMetrics(in []domain.Metric) []MetricResponse {
	out := make([]MetricResponse, 0, len(in))
	for _, m := range in {
		out = append(out, MetricResponse{
			Timestamp:   m.Timestamp.UnixMilli(),
			NumBytes:    m.NumBytes,
			NumRequests: m.NumRequests,
			Filled:      m.Filled,
		})
	}
	return out
}

func toEarnings(in []domain.Earning) []EarningResponse {
	out := make([]EarningResponse, 0, len(in))
	for _, e := range in {
		out = append(out, EarningResponse{
			Timestamp: e.Timestamp.UnixMilli(),
			FILAmount: e.FILAmount,
			Filled:    e.Filled,
		})
	}
	return out
}

func toPerNode(in []domain.PerNodeMetric) []PerNodeMetricResponse {
	if len(in) == 0 {
		return nil
	}
	out := make([]PerNodeMetricResponse, 0, len(in))
	for _, p := range in {
		out = append(out, PerNodeMetricResponse{
			NodeID:       p.NodeID,
			FILAmount:    p.FILAmount,
			NumBytes:     p.NumBytes,
			NumRequests:  p.NumRequests,
			PayoutStatus: p.PayoutStatus,
		})
	}
	return out
}

func toMetricsResponse(res *domain.MetricsResult) MetricsResponse {
	resp := MetricsResponse{
		Metrics:        toMetrics(res.Metrics),
		Earnings:       toEarnings(res.Earnings),
		PerNodeMetrics: toPerNode(res.PerNodeMetrics),
	}
	if res.GlobalStats != nil {
		resp.GlobalStats = &GlobalStatsResponse{
			TotalEarnings:   res.GlobalStats.TotalEarnings,
			TotalBandwidth:  res.GlobalStats.TotalBandwidth,
			TotalRetrievals: res.GlobalStats.TotalRetrievals,
		}
	}
	for _, n := range res.Nodes {
		resp.Nodes = append(resp.Nodes, NodeStateResponse{State: n.State, Count: n.Count})
	}
	return resp
}

func toDashboardResponse(d *domain.Dashboard, canonical string) DashboardResponse {
	resp := DashboardResponse{
		ViewID:         d.ViewID,
		FilAddress:     d.FilAddress,
		NodeID:         d.NodeID,
		Period:         periodhttp.ToResolveResponse(canonical, d.Resolution, d.Chart),
		Metrics:        toMetrics(d.Metrics),
		Earnings:       toEarnings(d.Earnings),
		PerNodeMetrics: toPerNode(d.PerNodeMetrics),
		GeneratedAt:    d.GeneratedAt.UnixMilli(),
	}
	if o := d.Overview; o != nil {
		resp.Overview = &OverviewResponse{
			Address:          o.Address,
			TotalEarnings:    o.TotalEarnings,
			TotalBandwidth:   o.TotalBandwidth,
			BandwidthHuman:   humanize.Bytes(uint64(max(o.TotalBandwidth, 0))),
			TotalRetrievals:  o.TotalRetrievals,
			RetrievalsHuman:  humanize.Comma(o.TotalRetrievals),
			NumActiveNodes:   o.NumActiveNodes,
			NumInactiveNodes: o.NumInactiveNodes,
			NumDownNodes:     o.NumDownNodes,
		}
	}
	return resp
}
